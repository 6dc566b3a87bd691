// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"net/netip"

	"github.com/ava-labs/avalanchego/ids"
)

const (
	DefaultHTTPPort    uint16 = 9650
	DefaultStakingPort uint16 = 9651
)

type NodeVersions struct {
	AvalancheGoVersion string            `json:"avalancheGoVersion"`
	DatabaseVersion    string            `json:"databaseVersion"`
	GitCommit          string            `json:"gitCommit"`
	RPCProtocolVersion uint32            `json:"rpcProtocolVersion"`
	VMVersions         map[string]string `json:"vmVersions"`
}

// NodeUptime is only known for nodes validating the Primary Network
type NodeUptime struct {
	RewardingStakePercentage  float64 `json:"rewardingStakePercentage"`
	WeightedAveragePercentage float64 `json:"weightedAveragePercentage"`
}

// Node is an avalanchego node reached through its own HTTP endpoint.
// It is not owned by any Network, see Network.SubnetsValidatedBy.
type Node struct {
	ID           ids.NodeID   `json:"id"`
	Network      string       `json:"network"`
	HTTPHost     string       `json:"httpHost"`
	HTTPPort     uint16       `json:"httpPort"`
	HTTPSEnabled bool         `json:"httpsEnabled"`
	PublicIP     netip.Addr   `json:"publicIP"`
	StakingPort  uint16       `json:"stakingPort"`
	Versions     NodeVersions `json:"versions"`
	Uptime       NodeUptime   `json:"uptime"`
}

func NewNode(httpHost string, httpPort uint16, httpsEnabled bool) *Node {
	if httpPort == 0 {
		httpPort = DefaultHTTPPort
	}
	return &Node{
		HTTPHost:     httpHost,
		HTTPPort:     httpPort,
		HTTPSEnabled: httpsEnabled,
		StakingPort:  DefaultStakingPort,
	}
}

func (n *Node) HTTPEndpoint() string {
	scheme := "http"
	if n.HTTPSEnabled {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, n.HTTPHost, n.HTTPPort)
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package info

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/sdk/constants"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"

	"github.com/ava-labs/avalanchego/ids"
	avajson "github.com/ava-labs/avalanchego/utils/json"
)

// Client queries the info API of a single node
type Client struct {
	rpc jsonrpc.Caller
	url string
}

// NewClient talks to the info API of the node serving [baseURL] (e.g. http://127.0.0.1:9650)
func NewClient(rpc jsonrpc.Caller, baseURL string) *Client {
	return &Client{rpc: rpc, url: baseURL + constants.InfoAPIEndpoint}
}

func (c *Client) URL() string {
	return c.url
}

func (c *Client) GetNodeID(ctx context.Context) (ids.NodeID, error) {
	reply := struct {
		NodeID ids.NodeID `json:"nodeID"`
	}{}
	err := c.rpc.Call(ctx, c.url, "info.getNodeID", nil, &reply)
	return reply.NodeID, err
}

// GetNodeIP returns the public IP and staking port the node advertises
func (c *Client) GetNodeIP(ctx context.Context) (netip.AddrPort, error) {
	reply := struct {
		IP string `json:"ip"`
	}{}
	if err := c.rpc.Call(ctx, c.url, "info.getNodeIP", nil, &reply); err != nil {
		return netip.AddrPort{}, err
	}
	addrPort, err := netip.ParseAddrPort(reply.IP)
	if err != nil {
		return netip.AddrPort{}, &jsonrpc.DecodeError{URL: c.url, Method: "info.getNodeIP", Err: err}
	}
	return addrPort, nil
}

type getNodeVersionReply struct {
	Version            string            `json:"version"`
	DatabaseVersion    string            `json:"databaseVersion"`
	RPCProtocolVersion avajson.Uint32    `json:"rpcProtocolVersion"`
	GitCommit          string            `json:"gitCommit"`
	VMVersions         map[string]string `json:"vmVersions"`
}

func (c *Client) GetNodeVersion(ctx context.Context) (models.NodeVersions, error) {
	reply := getNodeVersionReply{}
	if err := c.rpc.Call(ctx, c.url, "info.getNodeVersion", nil, &reply); err != nil {
		return models.NodeVersions{}, err
	}
	return models.NodeVersions{
		AvalancheGoVersion: reply.Version,
		DatabaseVersion:    reply.DatabaseVersion,
		GitCommit:          reply.GitCommit,
		RPCProtocolVersion: uint32(reply.RPCProtocolVersion),
		VMVersions:         reply.VMVersions,
	}, nil
}

func (c *Client) GetNetworkName(ctx context.Context) (string, error) {
	reply := struct {
		NetworkName string `json:"networkName"`
	}{}
	err := c.rpc.Call(ctx, c.url, "info.getNetworkName", nil, &reply)
	return reply.NetworkName, err
}

// Uptime fails with an RPC error when the node does not validate the Primary Network
func (c *Client) Uptime(ctx context.Context) (models.NodeUptime, error) {
	reply := struct {
		RewardingStakePercentage  avajson.Float64 `json:"rewardingStakePercentage"`
		WeightedAveragePercentage avajson.Float64 `json:"weightedAveragePercentage"`
	}{}
	if err := c.rpc.Call(ctx, c.url, "info.uptime", nil, &reply); err != nil {
		return models.NodeUptime{}, err
	}
	return models.NodeUptime{
		RewardingStakePercentage:  float64(reply.RewardingStakePercentage),
		WeightedAveragePercentage: float64(reply.WeightedAveragePercentage),
	}, nil
}

// IsBootstrapped tells whether the node finished bootstrapping [chain], an ID or alias
func (c *Client) IsBootstrapped(ctx context.Context, chain string) (bool, error) {
	reply := struct {
		IsBootstrapped bool `json:"isBootstrapped"`
	}{}
	args := struct {
		Chain string `json:"chain"`
	}{Chain: chain}
	err := c.rpc.Call(ctx, c.url, "info.isBootstrapped", args, &reply)
	return reply.IsBootstrapped, err
}

type Peer struct {
	IP             string     `json:"ip"`
	PublicIP       string     `json:"publicIP"`
	NodeID         ids.NodeID `json:"nodeID"`
	Version        string     `json:"version"`
	LastSent       string     `json:"lastSent"`
	LastReceived   string     `json:"lastReceived"`
	ObservedUptime uint32     `json:"observedUptime"`
	Benched        []string   `json:"benched"`
}

type apiPeer struct {
	IP             string         `json:"ip"`
	PublicIP       string         `json:"publicIP"`
	NodeID         ids.NodeID     `json:"nodeID"`
	Version        string         `json:"version"`
	LastSent       string         `json:"lastSent"`
	LastReceived   string         `json:"lastReceived"`
	ObservedUptime avajson.Uint32 `json:"observedUptime"`
	Benched        []string       `json:"benched"`
}

// Peers lists the peers of the node, optionally restricted to [nodeIDs]
func (c *Client) Peers(ctx context.Context, nodeIDs ...ids.NodeID) ([]Peer, error) {
	if nodeIDs == nil {
		nodeIDs = []ids.NodeID{}
	}
	args := struct {
		NodeIDs []ids.NodeID `json:"nodeIDs"`
	}{NodeIDs: nodeIDs}
	reply := struct {
		NumPeers avajson.Uint64 `json:"numPeers"`
		Peers    []apiPeer      `json:"peers"`
	}{}
	if err := c.rpc.Call(ctx, c.url, "info.peers", args, &reply); err != nil {
		return nil, err
	}
	peers := make([]Peer, 0, len(reply.Peers))
	for _, p := range reply.Peers {
		peers = append(peers, Peer{
			IP:             p.IP,
			PublicIP:       p.PublicIP,
			NodeID:         p.NodeID,
			Version:        p.Version,
			LastSent:       p.LastSent,
			LastReceived:   p.LastReceived,
			ObservedUptime: uint32(p.ObservedUptime),
			Benched:        p.Benched,
		})
	}
	return peers, nil
}

// GetVMs returns the aliases of every VM installed on the node
func (c *Client) GetVMs(ctx context.Context) (map[ids.ID][]string, error) {
	reply := struct {
		VMs map[string][]string `json:"vms"`
	}{}
	if err := c.rpc.Call(ctx, c.url, "info.getVMs", nil, &reply); err != nil {
		return nil, err
	}
	vms := make(map[ids.ID][]string, len(reply.VMs))
	for vmIDStr, aliases := range reply.VMs {
		vmID, err := ids.FromString(vmIDStr)
		if err != nil {
			return nil, &jsonrpc.DecodeError{
				URL:    c.url,
				Method: "info.getVMs",
				Err:    fmt.Errorf("invalid VM ID %q: %w", vmIDStr, err),
			}
		}
		vms[vmID] = aliases
	}
	return vms, nil
}

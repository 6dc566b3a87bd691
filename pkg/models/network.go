// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"strings"

	"github.com/ash-center/ash-cli/sdk/constants"
	"github.com/ava-labs/avalanchego/ids"
)

const (
	CChainName = "C-Chain"
	XChainName = "X-Chain"
	PChainName = "P-Chain"
)

// Network is a named Avalanche network and the Subnets known to exist on it.
// Subnets keep the order they were loaded or discovered in.
type Network struct {
	Name             string    `json:"name"`
	PrimaryNetworkID ids.ID    `json:"primaryNetworkID"`
	Subnets          []*Subnet `json:"subnets"`
}

func (n *Network) GetSubnet(id ids.ID) (*Subnet, error) {
	for _, subnet := range n.Subnets {
		if subnet.ID == id {
			return subnet, nil
		}
	}
	return nil, &NotFoundError{Kind: SubnetKind, Key: id.String(), Parent: n.Name}
}

func (n *Network) PrimaryNetwork() (*Subnet, error) {
	return n.GetSubnet(n.PrimaryNetworkID)
}

// PChain is the blockchain sharing the Primary Network ID
func (n *Network) PChain() (*Blockchain, error) {
	primary, err := n.PrimaryNetwork()
	if err != nil {
		return nil, err
	}
	return primary.GetBlockchain(n.PrimaryNetworkID)
}

func (n *Network) CChain() (*Blockchain, error) {
	primary, err := n.PrimaryNetwork()
	if err != nil {
		return nil, err
	}
	return primary.GetBlockchainByName(CChainName)
}

func (n *Network) XChain() (*Blockchain, error) {
	primary, err := n.PrimaryNetwork()
	if err != nil {
		return nil, err
	}
	return primary.GetBlockchainByName(XChainName)
}

// GetBlockchain looks the blockchain up in every Subnet of the network
func (n *Network) GetBlockchain(id ids.ID) (*Blockchain, error) {
	for _, subnet := range n.Subnets {
		if chain := subnet.findBlockchain(id); chain != nil {
			return chain, nil
		}
	}
	return nil, &NotFoundError{Kind: BlockchainKind, Key: id.String(), Parent: n.Name}
}

// GetBlockchainByName returns the first blockchain named [name], in Subnet order
func (n *Network) GetBlockchainByName(name string) (*Blockchain, error) {
	for _, subnet := range n.Subnets {
		for _, chain := range subnet.Blockchains {
			if chain.Name == name {
				return chain, nil
			}
		}
	}
	return nil, &NotFoundError{Kind: BlockchainKind, Key: name, Parent: n.Name}
}

// SubnetsValidatedBy returns the Subnets whose current validator set includes [nodeID]
func (n *Network) SubnetsValidatedBy(nodeID ids.NodeID) []*Subnet {
	subnets := []*Subnet{}
	for _, subnet := range n.Subnets {
		if subnet.findValidator(nodeID) != nil {
			subnets = append(subnets, subnet)
		}
	}
	return subnets
}

// PChainURL is the endpoint every topology refresh of the network starts from
func (n *Network) PChainURL() (string, error) {
	pChain, err := n.PChain()
	if err != nil {
		return "", err
	}
	if pChain.RPCURL == "" {
		return "", fmt.Errorf("P-Chain of network %s has no RPC URL", n.Name)
	}
	return pChain.RPCURL, nil
}

// APIBaseURL is the node URL serving the network APIs, as found in front of
// /ext/ in the P-Chain RPC URL
func (n *Network) APIBaseURL() (string, error) {
	pChainURL, err := n.PChainURL()
	if err != nil {
		return "", err
	}
	return APIBaseURL(pChainURL), nil
}

// APIBaseURL strips the /ext/... API path from [rpcURL]
func APIBaseURL(rpcURL string) string {
	if i := strings.Index(rpcURL, constants.ExtAPIPathSeparator); i >= 0 {
		return rpcURL[:i]
	}
	return strings.TrimSuffix(rpcURL, "/")
}

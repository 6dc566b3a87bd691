// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package pchain

import (
	"context"
	"fmt"
	"sync"

	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"

	"github.com/ava-labs/avalanchego/ids"
	"golang.org/x/sync/singleflight"
)

// Client queries the platform API served at a P-Chain RPC URL.
// The blockchain list is fetched once per Client: build a new Client to see
// blockchains created since.
type Client struct {
	rpc jsonrpc.Caller
	url string

	blockchainsFlight singleflight.Group
	lock              sync.Mutex
	blockchains       []apiBlockchain
}

// NewClient talks to [url], the P-Chain endpoint (e.g. https://api.avax.network/ext/bc/P)
func NewClient(rpc jsonrpc.Caller, url string) *Client {
	return &Client{rpc: rpc, url: url}
}

func (c *Client) URL() string {
	return c.url
}

// GetSubnets lists every Subnet known to the P-Chain, in API order.
// The returned Subnets carry no blockchains nor validators.
func (c *Client) GetSubnets(ctx context.Context) ([]*models.Subnet, error) {
	reply := getSubnetsReply{}
	if err := c.rpc.Call(ctx, c.url, "platform.getSubnets", getSubnetsArgs{IDs: []ids.ID{}}, &reply); err != nil {
		return nil, err
	}
	subnets := make([]*models.Subnet, 0, len(reply.Subnets))
	for _, subnet := range reply.Subnets {
		subnets = append(subnets, subnet.toModel())
	}
	return subnets, nil
}

// GetBlockchains lists the blockchains of [subnetID], in API order.
// VM types are left unresolved.
func (c *Client) GetBlockchains(ctx context.Context, subnetID ids.ID) ([]*models.Blockchain, error) {
	all, err := c.allBlockchains(ctx)
	if err != nil {
		return nil, err
	}
	blockchains := []*models.Blockchain{}
	for _, blockchain := range all {
		if blockchain.SubnetID == subnetID {
			blockchains = append(blockchains, blockchain.toModel())
		}
	}
	return blockchains, nil
}

// allBlockchains returns the reply of platform.getBlockchains. Concurrent
// callers share one request and only successful replies are kept.
func (c *Client) allBlockchains(ctx context.Context) ([]apiBlockchain, error) {
	c.lock.Lock()
	cached := c.blockchains
	c.lock.Unlock()
	if cached != nil {
		return cached, nil
	}
	v, err, _ := c.blockchainsFlight.Do("platform.getBlockchains", func() (interface{}, error) {
		reply := getBlockchainsReply{}
		if err := c.rpc.Call(ctx, c.url, "platform.getBlockchains", nil, &reply); err != nil {
			return nil, err
		}
		if reply.Blockchains == nil {
			reply.Blockchains = []apiBlockchain{}
		}
		c.lock.Lock()
		c.blockchains = reply.Blockchains
		c.lock.Unlock()
		return reply.Blockchains, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]apiBlockchain), nil
}

func (c *Client) GetCurrentValidators(ctx context.Context, subnetID ids.ID) ([]*models.Validator, error) {
	reply := getCurrentValidatorsReply{}
	args := getCurrentValidatorsArgs{SubnetID: subnetID, NodeIDs: []ids.NodeID{}}
	if err := c.rpc.Call(ctx, c.url, "platform.getCurrentValidators", args, &reply); err != nil {
		return nil, err
	}
	validators := make([]*models.Validator, 0, len(reply.Validators))
	for _, validator := range reply.Validators {
		validators = append(validators, validator.toModel(subnetID))
	}
	return validators, nil
}

func (c *Client) GetHeight(ctx context.Context) (uint64, error) {
	reply := getHeightReply{}
	if err := c.rpc.Call(ctx, c.url, "platform.getHeight", nil, &reply); err != nil {
		return 0, fmt.Errorf("failed to get P-Chain height: %w", err)
	}
	return uint64(reply.Height), nil
}

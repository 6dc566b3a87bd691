// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package xchain

import (
	"context"
	"fmt"

	"github.com/ash-center/ash-cli/sdk/jsonrpc"

	"github.com/ava-labs/avalanchego/utils/formatting/address"
	avajson "github.com/ava-labs/avalanchego/utils/json"
)

const (
	ChainAlias = "X"
	AVAXAsset  = "AVAX"
)

// Client queries the AVM API served at an X-Chain RPC URL
type Client struct {
	rpc jsonrpc.Caller
	url string
}

func NewClient(rpc jsonrpc.Caller, url string) *Client {
	return &Client{rpc: rpc, url: url}
}

type Balance struct {
	Address string   `json:"address"`
	AssetID string   `json:"assetID"`
	Balance uint64   `json:"balance"`
	UTXOIDs []string `json:"utxoIDs"`
}

// ParseAddress checks [addr] is a bech32 X-Chain address such as X-avax1...
func ParseAddress(addr string) (string, []byte, error) {
	chainAlias, hrp, addrBytes, err := address.Parse(addr)
	if err != nil {
		return "", nil, fmt.Errorf("invalid address %s: %w", addr, err)
	}
	if chainAlias != ChainAlias {
		return "", nil, fmt.Errorf("address %s does not belong to the X-Chain", addr)
	}
	return hrp, addrBytes, nil
}

// GetBalance returns the balance of [addr] in [assetID], AVAX when empty
func (c *Client) GetBalance(ctx context.Context, addr string, assetID string) (Balance, error) {
	if _, _, err := ParseAddress(addr); err != nil {
		return Balance{}, err
	}
	if assetID == "" {
		assetID = AVAXAsset
	}
	args := struct {
		Address string `json:"address"`
		AssetID string `json:"assetID"`
	}{Address: addr, AssetID: assetID}
	reply := struct {
		Balance avajson.Uint64 `json:"balance"`
		UTXOIDs []struct {
			TxID        string `json:"txID"`
			OutputIndex uint32 `json:"outputIndex"`
		} `json:"utxoIDs"`
	}{}
	if err := c.rpc.Call(ctx, c.url, "avm.getBalance", args, &reply); err != nil {
		return Balance{}, err
	}
	balance := Balance{
		Address: addr,
		AssetID: assetID,
		Balance: uint64(reply.Balance),
		UTXOIDs: []string{},
	}
	for _, utxoID := range reply.UTXOIDs {
		balance.UTXOIDs = append(balance.UTXOIDs, fmt.Sprintf("%s:%d", utxoID.TxID, utxoID.OutputIndex))
	}
	return balance, nil
}

func (c *Client) GetHeight(ctx context.Context) (uint64, error) {
	reply := struct {
		Height avajson.Uint64 `json:"height"`
	}{}
	if err := c.rpc.Call(ctx, c.url, "avm.getHeight", nil, &reply); err != nil {
		return 0, fmt.Errorf("failed to get X-Chain height: %w", err)
	}
	return uint64(reply.Height), nil
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ash-center/ash-cli/pkg/clierrors"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/vm"
	"github.com/ash-center/ash-cli/sdk/evm"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"
	"github.com/ash-center/ash-cli/sdk/pchain"
	"github.com/ash-center/ash-cli/sdk/xchain"

	"github.com/ava-labs/avalanchego/ids"
)

// RPCClient is a JSON-RPC caller whose HTTP client can be shared with other protocols
type RPCClient interface {
	jsonrpc.Caller
	HTTPClient() *http.Client
}

// ProbeResult is what a blockchain RPC endpoint reports about its head
type ProbeResult struct {
	BlockchainID ids.ID   `json:"blockchainID"`
	VMType       vm.Type  `json:"vmType"`
	RPCURL       string   `json:"rpcUrl"`
	ChainID      *big.Int `json:"chainID,omitempty"`
	Height       uint64   `json:"height"`
}

// Probe queries the RPC endpoint of [chain] with the API of its VM type.
// EVM chains report their chain ID and last block, platform and AVM chains their height.
func Probe(ctx context.Context, client RPCClient, chain *models.Blockchain) (ProbeResult, error) {
	if chain.RPCURL == "" {
		return ProbeResult{}, fmt.Errorf("%s (%s): %w", chain.Name, chain.ID, clierrors.ErrNoRPCURL)
	}
	result := ProbeResult{
		BlockchainID: chain.ID,
		VMType:       chain.VMType,
		RPCURL:       chain.RPCURL,
	}
	switch {
	case chain.VMType.IsEVM():
		evmClient, err := evm.GetClient(ctx, chain.RPCURL, client.HTTPClient())
		if err != nil {
			return ProbeResult{}, err
		}
		defer evmClient.Close()
		chainInfo, err := evmClient.Probe(ctx)
		if err != nil {
			return ProbeResult{}, err
		}
		result.ChainID = chainInfo.ChainID
		result.Height = chainInfo.BlockNumber
	case chain.VMType.Kind == vm.PlatformVM:
		height, err := pchain.NewClient(client, chain.RPCURL).GetHeight(ctx)
		if err != nil {
			return ProbeResult{}, err
		}
		result.Height = height
	case chain.VMType.Kind == vm.AvalancheVM:
		height, err := xchain.NewClient(client, chain.RPCURL).GetHeight(ctx)
		if err != nil {
			return ProbeResult{}, err
		}
		result.Height = height
	default:
		return ProbeResult{}, fmt.Errorf("%s (%s) runs %s: %w", chain.Name, chain.ID, chain.VMType, clierrors.ErrProbeNotSupported)
	}
	return result, nil
}

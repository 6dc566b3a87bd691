// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package blockchain

import (
	"context"
	"math/big"
	"testing"

	"github.com/ash-center/ash-cli/internal/testutils"
	"github.com/ash-center/ash-cli/pkg/clierrors"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/vm"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func newTestBlockchain(server *testutils.RPCServer, name string, vmType vm.Type) *models.Blockchain {
	chainID := ids.GenerateTestID()
	return &models.Blockchain{
		ID:     chainID,
		Name:   name,
		VMType: vmType,
		RPCURL: models.BlockchainRPCURL(server.URL, chainID, vmType),
	}
}

func TestProbe(t *testing.T) {
	server := testutils.NewRPCServer(t)
	server.HandleResult("eth_chainId", "0xa869")
	server.HandleResult("eth_blockNumber", "0x2a")
	server.HandleResult("platform.getHeight", map[string]string{"height": "1234"})
	server.HandleResult("avm.getHeight", map[string]string{"height": "5678"})
	client, err := jsonrpc.NewClient()
	require.NoError(t, err)

	tests := []struct {
		name    string
		vmType  vm.Type
		chainID *big.Int
		height  uint64
	}{
		{"C-Chain", vm.Type{Kind: vm.Coreth}, big.NewInt(43113), 42},
		{"dexalot", vm.Type{Kind: vm.SubnetEVM}, big.NewInt(43113), 42},
		{"P-Chain", vm.Type{Kind: vm.PlatformVM}, nil, 1234},
		{"X-Chain", vm.Type{Kind: vm.AvalancheVM}, nil, 5678},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			chain := newTestBlockchain(server, tt.name, tt.vmType)
			result, err := Probe(context.Background(), client, chain)
			require.NoError(err)
			require.Equal(chain.ID, result.BlockchainID)
			require.Equal(tt.chainID, result.ChainID)
			require.Equal(tt.height, result.Height)
		})
	}
}

func TestProbeFailures(t *testing.T) {
	require := require.New(t)
	server := testutils.NewRPCServer(t)
	server.HandleError("platform.getHeight", -32000, "not bootstrapped")
	client, err := jsonrpc.NewClient()
	require.NoError(err)

	_, err = Probe(context.Background(), client, &models.Blockchain{Name: "orphan", VMType: vm.Type{Kind: vm.EVM}})
	require.ErrorIs(err, clierrors.ErrNoRPCURL)

	_, err = Probe(context.Background(), client, newTestBlockchain(server, "custom", vm.NewCustom("spacesvm")))
	require.ErrorIs(err, clierrors.ErrProbeNotSupported)

	_, err = Probe(context.Background(), client, newTestBlockchain(server, "P-Chain", vm.Type{Kind: vm.PlatformVM}))
	require.ErrorIs(err, jsonrpc.ErrRPC)
	require.ErrorContains(err, "failed to get P-Chain height")
}

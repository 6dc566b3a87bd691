// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package node

import (
	"context"
	"testing"

	"github.com/ash-center/ash-cli/internal/testutils"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/sdk/info"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/staking"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testNodeID = "NodeID-7Xhw2mDxuDS44j42TCB6U5579esbSt3Lg"

func newTestInfoClient(t *testing.T) (*info.Client, *testutils.RPCServer) {
	server := testutils.NewRPCServer(t)
	server.HandleResult("info.getNodeID", map[string]string{"nodeID": testNodeID})
	server.HandleResult("info.getNodeIP", map[string]string{"ip": "192.0.2.10:9651"})
	server.HandleResult("info.getNetworkName", map[string]string{"networkName": "fuji"})
	server.HandleResult("info.getNodeVersion", map[string]interface{}{
		"version":            "avalanchego/1.13.5",
		"databaseVersion":    "v1.4.5",
		"rpcProtocolVersion": "42",
		"gitCommit":          "f0e1d2c3",
		"vmVersions":         map[string]string{"platform": "v1.13.5"},
	})
	rpc, err := jsonrpc.NewClient()
	require.NoError(t, err)
	return info.NewClient(rpc, server.URL), server
}

func TestUpdateInfo(t *testing.T) {
	require := require.New(t)
	client, server := newTestInfoClient(t)
	server.HandleResult("info.uptime", map[string]string{
		"rewardingStakePercentage":  "100.0000",
		"weightedAveragePercentage": "99.5000",
	})

	node := models.NewNode("127.0.0.1", 0, false)
	require.NoError(UpdateInfo(context.Background(), node, client))
	require.Equal(testNodeID, node.ID.String())
	require.Equal("192.0.2.10", node.PublicIP.String())
	require.Equal(uint16(9651), node.StakingPort)
	require.Equal("fuji", node.Network)
	require.Equal("avalanchego/1.13.5", node.Versions.AvalancheGoVersion)
	require.InDelta(99.5, node.Uptime.WeightedAveragePercentage, 0.0001)
	require.Equal("http://127.0.0.1:9650", node.HTTPEndpoint())
}

func TestUpdateInfoNotValidator(t *testing.T) {
	require := require.New(t)
	client, server := newTestInfoClient(t)
	server.HandleError("info.uptime", ServerErrorCode, "couldn't get uptime: node is not a validator")

	node := models.NewNode("127.0.0.1", 0, false)
	require.NoError(UpdateInfo(context.Background(), node, client))
	require.Equal(models.NodeUptime{}, node.Uptime)
	require.Equal("fuji", node.Network)
}

func TestUpdateInfoUptimeFailure(t *testing.T) {
	require := require.New(t)
	client, server := newTestInfoClient(t)
	server.HandleError("info.uptime", ServerErrorCode, "database closed")

	node := models.NewNode("127.0.0.1", 0, false)
	err := UpdateInfo(context.Background(), node, client)
	require.ErrorIs(err, jsonrpc.ErrRPC)
	require.ErrorContains(err, "failed to get uptime of node http://127.0.0.1:9650")
	require.Empty(node.Network)
}

func TestCheckChainBootstrapping(t *testing.T) {
	require := require.New(t)
	client, server := newTestInfoClient(t)
	server.HandleResult("info.isBootstrapped", map[string]bool{"isBootstrapped": false})

	node := models.NewNode("127.0.0.1", 0, false)
	bootstrapped, err := CheckChainBootstrapping(context.Background(), node, client, "C")
	require.NoError(err)
	require.False(bootstrapped)

	server.HandleError("info.isBootstrapped", ServerErrorCode, "there is no chain with alias/ID 'Z'")
	_, err = CheckChainBootstrapping(context.Background(), node, client, "Z")
	require.ErrorContains(err, "failed to get Z chain bootstrapping")
}

func TestNodeIDFromCert(t *testing.T) {
	require := require.New(t)
	certBytes, keyBytes, err := staking.NewCertAndKeyBytes()
	require.NoError(err)
	tlsCert, err := staking.LoadTLSCertFromBytes(keyBytes, certBytes)
	require.NoError(err)

	fs := afero.NewMemMapFs()
	require.NoError(afero.WriteFile(fs, "/staking/staker.crt", certBytes, 0o600))
	nodeID, err := NodeIDFromCertFile(fs, "/staking/staker.crt")
	require.NoError(err)
	require.Equal(ids.NodeIDFromCert(&staking.Certificate{Raw: tlsCert.Leaf.Raw, PublicKey: tlsCert.Leaf.PublicKey}), nodeID)

	// key first, certificate second
	nodeIDFromBundle, err := NodeIDFromCert(append(append([]byte{}, keyBytes...), certBytes...))
	require.NoError(err)
	require.Equal(nodeID, nodeIDFromBundle)

	_, err = NodeIDFromCert(keyBytes)
	require.ErrorIs(err, errNoCertificate)

	_, err = NodeIDFromCertFile(fs, "/staking/missing.crt")
	require.Error(err)
}

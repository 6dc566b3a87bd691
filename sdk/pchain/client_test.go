// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package pchain

import (
	"context"
	"testing"

	"github.com/ash-center/ash-cli/internal/testutils"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

const validatorNodeID = "NodeID-7Xhw2mDxuDS44j42TCB6U5579esbSt3Lg"

var (
	dexalotSubnetID = ids.GenerateTestID().String()
	dexalotChainID  = ids.GenerateTestID().String()
	dexalotVMID     = ids.GenerateTestID().String()
	validatorTxID   = ids.GenerateTestID().String()
)

func newTestClient(t *testing.T) (*Client, *testutils.RPCServer) {
	server := testutils.NewRPCServer(t)
	rpc, err := jsonrpc.NewClient()
	require.NoError(t, err)
	return NewClient(rpc, server.URL+"/ext/bc/P"), server
}

func TestGetSubnets(t *testing.T) {
	require := require.New(t)
	client, server := newTestClient(t)
	server.HandleResult("platform.getSubnets", map[string]interface{}{
		"subnets": []map[string]interface{}{
			{
				"id":          "11111111111111111111111111111111LpoYY",
				"controlKeys": []string{},
				"threshold":   "0",
			},
			{
				"id":          dexalotSubnetID,
				"controlKeys": []string{"P-avax1control0", "P-avax1control1"},
				"threshold":   "2",
			},
		},
	})

	subnets, err := client.GetSubnets(context.Background())
	require.NoError(err)
	require.Len(subnets, 2)

	require.Equal(ids.Empty, subnets[0].ID)
	require.Equal(models.PrimaryNetworkSubnet, subnets[0].Type)
	require.Empty(subnets[0].ControlKeys)

	require.Equal(dexalotSubnetID, subnets[1].ID.String())
	require.Equal(models.GeneralSubnet, subnets[1].Type)
	require.Len(subnets[1].ControlKeys, 2)
	require.Equal(uint32(2), subnets[1].Threshold)
	require.Empty(subnets[1].Blockchains)
	require.Empty(subnets[1].Validators)
}

func TestGetBlockchainsFiltersBySubnet(t *testing.T) {
	require := require.New(t)
	client, server := newTestClient(t)
	server.HandleResult("platform.getBlockchains", map[string]interface{}{
		"blockchains": []map[string]string{
			{
				"id":       "2q9e4r6Mu3U68nU1fYjgbR6JvwrRx36CohpAX5UQxse55x1Q5",
				"name":     "C-Chain",
				"subnetID": "11111111111111111111111111111111LpoYY",
				"vmID":     "mgj786NP7uDwBCcq6YwThhaN8FLyybkCa4zBWTQbNgmK6k9A6",
			},
			{
				"id":       dexalotChainID,
				"name":     "dexalot",
				"subnetID": dexalotSubnetID,
				"vmID":     dexalotVMID,
			},
		},
	})

	subnetID, err := ids.FromString(dexalotSubnetID)
	require.NoError(err)
	blockchains, err := client.GetBlockchains(context.Background(), subnetID)
	require.NoError(err)
	require.Len(blockchains, 1)
	require.Equal("dexalot", blockchains[0].Name)
	require.Equal(subnetID, blockchains[0].SubnetID)
	require.False(blockchains[0].VMType.IsResolved())

	blockchains, err = client.GetBlockchains(context.Background(), ids.GenerateTestID())
	require.NoError(err)
	require.Empty(blockchains)

	// the list is fetched once per client
	require.Equal(1, server.Calls("platform.getBlockchains"))
}

func TestGetBlockchainsRetriesAfterError(t *testing.T) {
	require := require.New(t)
	client, server := newTestClient(t)
	server.HandleError("platform.getBlockchains", -32603, "internal error")
	_, err := client.GetBlockchains(context.Background(), ids.Empty)
	require.ErrorIs(err, jsonrpc.ErrRPC)

	server.HandleResult("platform.getBlockchains", map[string]interface{}{"blockchains": []interface{}{}})
	blockchains, err := client.GetBlockchains(context.Background(), ids.Empty)
	require.NoError(err)
	require.Empty(blockchains)
	require.Equal(2, server.Calls("platform.getBlockchains"))
}

func TestGetCurrentValidators(t *testing.T) {
	require := require.New(t)
	client, server := newTestClient(t)
	server.HandleResult("platform.getCurrentValidators", map[string]interface{}{
		"validators": []map[string]interface{}{
			{
				"txID":            validatorTxID,
				"nodeID":          validatorNodeID,
				"startTime":       "1662422400",
				"endTime":         "1693958400",
				"weight":          "2000000000000",
				"stakeAmount":     "2000000000000",
				"potentialReward": "105000000000",
				"delegationFee":   "2.0000",
				"uptime":          "99.8750",
				"connected":       true,
				"delegatorCount":  "1",
				"delegatorWeight": "25000000000",
				"validationRewardOwner": map[string]interface{}{
					"locktime":  "0",
					"threshold": "1",
					"addresses": []string{"P-avax1kj06lhgx84h39snsljcey3tpc046ze68mek3g5"},
				},
				"delegators": []map[string]interface{}{
					{
						"txID":      validatorTxID,
						"nodeID":    validatorNodeID,
						"startTime": "1662422400",
						"endTime":   "1663422400",
						"weight":    "25000000000",
					},
				},
			},
		},
	})

	validators, err := client.GetCurrentValidators(context.Background(), ids.Empty)
	require.NoError(err)
	require.Len(validators, 1)

	validator := validators[0]
	require.Equal(validatorNodeID, validator.NodeID.String())
	require.Equal(ids.Empty, validator.SubnetID)
	require.Equal(uint64(1662422400), validator.StartTime)
	require.Equal(uint64(2_000_000_000_000), validator.Weight)
	require.Equal(uint64(105_000_000_000), *validator.PotentialReward)
	require.InDelta(2.0, *validator.DelegationFee, 0.0001)
	require.InDelta(99.875, *validator.Uptime, 0.0001)
	require.True(*validator.Connected)
	require.Equal(uint64(1), *validator.DelegatorCount)
	require.Equal(uint32(1), validator.ValidationRewardOwner.Threshold)
	require.Nil(validator.DelegationRewardOwner)
	require.Len(validator.Delegators, 1)
	require.Equal(uint64(25_000_000_000), validator.Delegators[0].StakeAmount)

	params := server.Params("platform.getCurrentValidators")
	require.Len(params, 1)
	require.JSONEq(`{"subnetID":"11111111111111111111111111111111LpoYY","nodeIDs":[]}`, string(params[0]))
}

func TestGetCurrentValidatorsSubnet(t *testing.T) {
	require := require.New(t)
	client, server := newTestClient(t)
	// Subnet validators only report their weight
	server.HandleResult("platform.getCurrentValidators", map[string]interface{}{
		"validators": []map[string]string{
			{
				"txID":      validatorTxID,
				"nodeID":    validatorNodeID,
				"startTime": "1662422400",
				"endTime":   "1693958400",
				"weight":    "20",
			},
		},
	})

	subnetID, err := ids.FromString(dexalotSubnetID)
	require.NoError(err)
	validators, err := client.GetCurrentValidators(context.Background(), subnetID)
	require.NoError(err)
	require.Len(validators, 1)
	require.Equal(subnetID, validators[0].SubnetID)
	require.Equal(uint64(20), validators[0].Weight)
	require.Nil(validators[0].StakeAmount)
	require.Nil(validators[0].Connected)
	require.Empty(validators[0].Delegators)
}

func TestGetHeight(t *testing.T) {
	require := require.New(t)
	client, server := newTestClient(t)
	server.HandleResult("platform.getHeight", map[string]string{"height": "4242"})

	height, err := client.GetHeight(context.Background())
	require.NoError(err)
	require.Equal(uint64(4242), height)
}

func TestErrorsPropagate(t *testing.T) {
	require := require.New(t)
	client, server := newTestClient(t)
	server.HandleError("platform.getSubnets", -32000, "problem while getting subnets")
	server.HandleResult("platform.getBlockchains", map[string]string{"blockchains": "not a list"})

	_, err := client.GetSubnets(context.Background())
	require.ErrorIs(err, jsonrpc.ErrRPC)

	_, err = client.GetBlockchains(context.Background(), ids.Empty)
	require.ErrorIs(err, jsonrpc.ErrDecode)
}

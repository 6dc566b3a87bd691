// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"context"
	"errors"
	"syscall"
	"testing"

	"github.com/ash-center/ash-cli/internal/mocks"
	"github.com/ash-center/ash-cli/internal/testutils"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/vm"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"

	"github.com/ava-labs/avalanchego/ids"
	avagoconstants "github.com/ava-labs/avalanchego/utils/constants"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	localPChainURL = "http://127.0.0.1:9650/ext/bc/P"
	localBaseURL   = "http://127.0.0.1:9650"
)

func localNetwork() *models.Network {
	return &models.Network{
		Name:             "local",
		PrimaryNetworkID: ids.Empty,
		Subnets: []*models.Subnet{
			{
				ID:   ids.Empty,
				Type: models.PrimaryNetworkSubnet,
				Blockchains: []*models.Blockchain{
					{
						ID:     ids.Empty,
						Name:   models.PChainName,
						VMID:   avagoconstants.PlatformVMID,
						VMType: vm.Type{Kind: vm.PlatformVM},
						RPCURL: localPChainURL,
					},
				},
			},
		},
	}
}

func newTestRefresher(pClient *mocks.PClient, iClient *mocks.InfoClient) *Refresher {
	return &Refresher{
		PClient: func(pChainURL string) PClient {
			return pClient
		},
		InfoClient: func(baseURL string) InfoClient {
			return iClient
		},
		Log:                   logging.NoLog{},
		MaxConcurrentRequests: 2,
	}
}

func subnetReply(subnetIDs ...ids.ID) []*models.Subnet {
	subnets := []*models.Subnet{
		{ID: ids.Empty, Type: models.PrimaryNetworkSubnet, ControlKeys: []string{}},
	}
	for i, subnetID := range subnetIDs {
		subnets = append(subnets, &models.Subnet{
			ID:          subnetID,
			Type:        models.GeneralSubnet,
			ControlKeys: []string{"P-local1key"},
			Threshold:   uint32(i + 1),
			Blockchains: []*models.Blockchain{},
			Validators:  []*models.Validator{},
		})
	}
	return subnets
}

func TestRefreshSubnetsIsIdempotent(t *testing.T) {
	require := require.New(t)
	pClient := mocks.NewPClient(t)
	subnetA, subnetB := ids.GenerateTestID(), ids.GenerateTestID()
	pClient.On("GetSubnets", mock.Anything).Return(func(context.Context) ([]*models.Subnet, error) {
		return subnetReply(subnetA, subnetB), nil
	})
	refresher := newTestRefresher(pClient, nil)
	network := localNetwork()

	require.NoError(refresher.RefreshSubnets(context.Background(), network))
	require.Len(network.Subnets, 3)
	first := network.Clone()

	require.NoError(refresher.RefreshSubnets(context.Background(), network))
	require.Equal(first, network)
	require.Equal(subnetA, network.Subnets[1].ID)
	require.Equal(subnetB, network.Subnets[2].ID)
	// the configured P-Chain survives
	pChain, err := network.PChain()
	require.NoError(err)
	require.Equal(localPChainURL, pChain.RPCURL)
}

func TestRefreshSubnetsUpdatesInPlace(t *testing.T) {
	require := require.New(t)
	pClient := mocks.NewPClient(t)
	subnetA, subnetB, subnetC := ids.GenerateTestID(), ids.GenerateTestID(), ids.GenerateTestID()
	network := localNetwork()
	chain := &models.Blockchain{ID: ids.GenerateTestID(), Name: "chain-b", SubnetID: subnetB}
	network.Subnets = append(network.Subnets,
		&models.Subnet{ID: subnetA, Type: models.GeneralSubnet},
		&models.Subnet{ID: subnetB, Type: models.GeneralSubnet, Blockchains: []*models.Blockchain{chain}},
	)
	subnetBPtr := network.Subnets[2]

	// B is reported first and with new control keys; C is new; A is missing
	pClient.On("GetSubnets", mock.Anything).Return([]*models.Subnet{
		{ID: subnetB, Type: models.GeneralSubnet, ControlKeys: []string{"P-local1new"}, Threshold: 1},
		{ID: subnetC, Type: models.GeneralSubnet, ControlKeys: []string{}},
	}, nil)

	require.NoError(newTestRefresher(pClient, nil).RefreshSubnets(context.Background(), network))
	require.Len(network.Subnets, 4)
	require.Equal(ids.Empty, network.Subnets[0].ID)
	require.Equal(subnetA, network.Subnets[1].ID)
	require.Same(subnetBPtr, network.Subnets[2])
	require.Equal([]string{"P-local1new"}, subnetBPtr.ControlKeys)
	require.Equal(uint32(1), subnetBPtr.Threshold)
	require.Equal([]*models.Blockchain{chain}, subnetBPtr.Blockchains)
	require.Equal(subnetC, network.Subnets[3].ID)
}

func TestRefreshSubnetsErrors(t *testing.T) {
	require := require.New(t)
	pClient := mocks.NewPClient(t)
	transportErr := &jsonrpc.TransportError{URL: localPChainURL, Method: "platform.getSubnets", Err: syscall.ECONNREFUSED}
	pClient.On("GetSubnets", mock.Anything).Return(nil, transportErr)

	network := localNetwork()
	err := newTestRefresher(pClient, nil).RefreshSubnets(context.Background(), network)
	require.ErrorIs(err, jsonrpc.ErrTransport)
	require.ErrorIs(err, syscall.ECONNREFUSED)
	require.ErrorContains(err, "failed to refresh subnets of network local")
	require.Len(network.Subnets, 1)

	network.Subnets = nil
	err = newTestRefresher(pClient, nil).RefreshSubnets(context.Background(), network)
	require.ErrorIs(err, models.ErrNotFound)
}

func TestRefreshBlockchains(t *testing.T) {
	require := require.New(t)
	pClient := mocks.NewPClient(t)
	iClient := mocks.NewInfoClient(t)

	cChainID, xChainID, customChainID := ids.GenerateTestID(), ids.GenerateTestID(), ids.GenerateTestID()
	subnetID := ids.GenerateTestID()
	customVMID, unknownVMID := ids.GenerateTestID(), ids.GenerateTestID()
	unknownChainID := ids.GenerateTestID()

	network := localNetwork()
	// configured C-Chain with its own type and URL
	network.Subnets[0].Blockchains = append(network.Subnets[0].Blockchains, &models.Blockchain{
		ID:     cChainID,
		Name:   models.CChainName,
		VMType: vm.Type{Kind: vm.EVM},
		RPCURL: "https://cchain.example/rpc",
	})
	network.Subnets = append(network.Subnets, &models.Subnet{ID: subnetID, Type: models.GeneralSubnet})

	pClient.On("GetBlockchains", mock.Anything, ids.Empty).Return(func(context.Context, ids.ID) ([]*models.Blockchain, error) {
		return []*models.Blockchain{
			{ID: cChainID, Name: models.CChainName, SubnetID: ids.Empty, VMID: avagoconstants.EVMID},
			{ID: xChainID, Name: models.XChainName, SubnetID: ids.Empty, VMID: avagoconstants.AVMID},
		}, nil
	})
	pClient.On("GetBlockchains", mock.Anything, subnetID).Return(func(context.Context, ids.ID) ([]*models.Blockchain, error) {
		return []*models.Blockchain{
			{ID: customChainID, Name: "dex", SubnetID: subnetID, VMID: customVMID},
			{ID: unknownChainID, Name: "mystery", SubnetID: subnetID, VMID: unknownVMID},
		}, nil
	})
	iClient.On("GetVMs", mock.Anything).Return(map[ids.ID][]string{
		customVMID: {"dexevm"},
	}, nil).Once()

	refresher := newTestRefresher(pClient, iClient)
	require.NoError(refresher.RefreshBlockchains(context.Background(), network))

	primary := network.Subnets[0]
	require.Len(primary.Blockchains, 3)
	require.Equal(models.PChainName, primary.Blockchains[0].Name)

	cChain := primary.Blockchains[1]
	require.Equal(vm.Type{Kind: vm.EVM}, cChain.VMType)
	require.Equal("https://cchain.example/rpc", cChain.RPCURL)
	require.Equal(avagoconstants.EVMID, cChain.VMID)

	xChain := primary.Blockchains[2]
	require.Equal(vm.Type{Kind: vm.AvalancheVM}, xChain.VMType)
	require.Equal(localBaseURL+"/ext/bc/"+xChainID.String(), xChain.RPCURL)

	subnet := network.Subnets[1]
	require.Len(subnet.Blockchains, 2)
	require.Equal(vm.Type{Kind: vm.EVM}, subnet.Blockchains[0].VMType)
	require.Equal(localBaseURL+"/ext/bc/"+customChainID.String()+"/rpc", subnet.Blockchains[0].RPCURL)
	require.Equal(vm.NewCustom(unknownVMID.String()), subnet.Blockchains[1].VMType)
	require.Equal(localBaseURL+"/ext/bc/"+unknownChainID.String(), subnet.Blockchains[1].RPCURL)

	// a second pass changes nothing and never asks for aliases again
	first := network.Clone()
	require.NoError(refresher.RefreshBlockchains(context.Background(), network))
	require.Equal(first, network)
}

func TestRefreshBlockchainsPartialFailure(t *testing.T) {
	require := require.New(t)
	pClient := mocks.NewPClient(t)
	iClient := mocks.NewInfoClient(t)

	network := localNetwork()
	subnetIDs := []ids.ID{ids.GenerateTestID(), ids.GenerateTestID(), ids.GenerateTestID()}
	for _, subnetID := range subnetIDs {
		network.Subnets = append(network.Subnets, &models.Subnet{ID: subnetID, Type: models.GeneralSubnet})
	}
	failedID := subnetIDs[1]
	for _, subnetID := range []ids.ID{subnetIDs[0], subnetIDs[2]} {
		pClient.On("GetBlockchains", mock.Anything, subnetID).Return([]*models.Blockchain{
			{ID: ids.GenerateTestID(), Name: "chain", SubnetID: subnetID, VMID: vm.SubnetEVMID},
		}, nil)
	}
	pClient.On("GetBlockchains", mock.Anything, failedID).Return(nil, &jsonrpc.TransportError{
		URL:    localPChainURL,
		Method: "platform.getBlockchains",
		Err:    syscall.ECONNREFUSED,
	})

	err := newTestRefresher(pClient, iClient).RefreshBlockchains(context.Background(), network, subnetIDs...)
	require.ErrorIs(err, ErrPartialFailure)
	require.ErrorIs(err, jsonrpc.ErrTransport)

	var partialErr *PartialFailureError
	require.ErrorAs(err, &partialErr)
	require.Equal([]ids.ID{failedID}, partialErr.FailedIDs())
	require.ElementsMatch([]ids.ID{subnetIDs[0], subnetIDs[2]}, partialErr.Succeeded)
	require.True(partialErr.Retriable())
	require.True(IsRetriable(err))

	require.Len(network.Subnets[1].Blockchains, 1)
	require.Equal(vm.Type{Kind: vm.SubnetEVM}, network.Subnets[1].Blockchains[0].VMType)
	require.Empty(network.Subnets[2].Blockchains)
	require.Len(network.Subnets[3].Blockchains, 1)
}

func TestRefreshBlockchainsUnknownSubnet(t *testing.T) {
	err := newTestRefresher(mocks.NewPClient(t), mocks.NewInfoClient(t)).
		RefreshBlockchains(context.Background(), localNetwork(), ids.GenerateTestID())
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestRefreshBlockchainsVMResolutionFailure(t *testing.T) {
	require := require.New(t)
	pClient := mocks.NewPClient(t)
	iClient := mocks.NewInfoClient(t)
	network := localNetwork()
	subnetID := ids.GenerateTestID()
	network.Subnets = append(network.Subnets, &models.Subnet{ID: subnetID})

	pClient.On("GetBlockchains", mock.Anything, subnetID).Return([]*models.Blockchain{
		{ID: ids.GenerateTestID(), Name: "custom", SubnetID: subnetID, VMID: ids.GenerateTestID()},
	}, nil)
	iClient.On("GetVMs", mock.Anything).Return(nil, &jsonrpc.RPCError{Code: -32601, Message: "the method info.getVMs does not exist"})

	err := newTestRefresher(pClient, iClient).RefreshBlockchains(context.Background(), network, subnetID)
	var partialErr *PartialFailureError
	require.ErrorAs(err, &partialErr)
	require.Contains(partialErr.Failed, subnetID)
	require.ErrorIs(err, jsonrpc.ErrRPC)
	require.False(IsRetriable(err))
	require.Empty(network.Subnets[1].Blockchains)
}

func TestRefreshBlockchainsWithRetry(t *testing.T) {
	require := require.New(t)
	pClient := mocks.NewPClient(t)
	network := localNetwork()
	okID, flakyID := ids.GenerateTestID(), ids.GenerateTestID()
	network.Subnets = append(network.Subnets,
		&models.Subnet{ID: okID},
		&models.Subnet{ID: flakyID},
	)

	pClient.On("GetBlockchains", mock.Anything, ids.Empty).Return([]*models.Blockchain{}, nil).Once()
	pClient.On("GetBlockchains", mock.Anything, okID).Return([]*models.Blockchain{}, nil).Once()
	pClient.On("GetBlockchains", mock.Anything, flakyID).Return(nil, &jsonrpc.RPCError{
		Code:    jsonrpc.CodeLimitExceeded,
		Message: "rate limited",
	}).Once()
	pClient.On("GetBlockchains", mock.Anything, flakyID).Return([]*models.Blockchain{
		{ID: ids.GenerateTestID(), Name: "flaky", SubnetID: flakyID, VMID: avagoconstants.EVMID},
	}, nil).Once()

	err := newTestRefresher(pClient, nil).RefreshBlockchainsWithRetry(context.Background(), network, 3)
	require.NoError(err)
	require.Len(network.Subnets[2].Blockchains, 1)
	pClient.AssertNumberOfCalls(t, "GetBlockchains", 4)
}

func TestRefreshBlockchainsWithRetryStopsOnPermanentFailure(t *testing.T) {
	require := require.New(t)
	pClient := mocks.NewPClient(t)
	network := localNetwork()
	okID, brokenID := ids.GenerateTestID(), ids.GenerateTestID()
	network.Subnets = append(network.Subnets, &models.Subnet{ID: okID}, &models.Subnet{ID: brokenID})

	pClient.On("GetBlockchains", mock.Anything, okID).Return([]*models.Blockchain{}, nil)
	pClient.On("GetBlockchains", mock.Anything, brokenID).Return(nil, &jsonrpc.DecodeError{
		Method: "platform.getBlockchains",
		Err:    errors.New("unexpected end of JSON input"),
	})

	err := newTestRefresher(pClient, nil).RefreshBlockchainsWithRetry(context.Background(), network, 5, okID, brokenID)
	var partialErr *PartialFailureError
	require.ErrorAs(err, &partialErr)
	require.Equal([]ids.ID{okID}, partialErr.Succeeded)
	pClient.AssertNumberOfCalls(t, "GetBlockchains", 2)
}

func TestRefreshValidatorsReplacesSet(t *testing.T) {
	require := require.New(t)
	pClient := mocks.NewPClient(t)
	network := localNetwork()
	stale := &models.Validator{NodeID: ids.GenerateTestNodeID(), SubnetID: ids.Empty}
	kept := ids.GenerateTestNodeID()
	network.Subnets[0].Validators = []*models.Validator{stale, {NodeID: kept, Weight: 1}}

	pClient.On("GetCurrentValidators", mock.Anything, ids.Empty).Return([]*models.Validator{
		{NodeID: kept, SubnetID: ids.Empty, Weight: 2},
		{NodeID: ids.GenerateTestNodeID(), SubnetID: ids.Empty, Weight: 3},
	}, nil)

	require.NoError(newTestRefresher(pClient, nil).RefreshValidators(context.Background(), network, ids.Empty))
	primary := network.Subnets[0]
	require.Len(primary.Validators, 2)
	_, err := primary.GetValidator(stale.NodeID)
	require.ErrorIs(err, models.ErrNotFound)
	validator, err := primary.GetValidator(kept)
	require.NoError(err)
	require.Equal(uint64(2), validator.Weight)

	err = newTestRefresher(pClient, nil).RefreshValidators(context.Background(), network, ids.GenerateTestID())
	require.ErrorIs(err, models.ErrNotFound)
}

func TestRefreshOverJSONRPC(t *testing.T) {
	require := require.New(t)
	server := testutils.NewRPCServer(t)
	subnetID := ids.GenerateTestID()
	chainID := ids.GenerateTestID()
	nodeID := ids.GenerateTestNodeID()

	server.HandleResult("platform.getSubnets", map[string]interface{}{
		"subnets": []map[string]interface{}{
			{"id": ids.Empty.String(), "controlKeys": []string{}, "threshold": "0"},
			{"id": subnetID.String(), "controlKeys": []string{"P-local1key"}, "threshold": "1"},
		},
	})
	server.HandleResult("platform.getBlockchains", map[string]interface{}{
		"blockchains": []map[string]string{
			{"id": chainID.String(), "name": "subnet-chain", "subnetID": subnetID.String(), "vmID": vm.SubnetEVMID.String()},
		},
	})
	server.HandleResult("platform.getCurrentValidators", map[string]interface{}{
		"validators": []map[string]string{
			{"txID": ids.GenerateTestID().String(), "nodeID": nodeID.String(), "startTime": "1", "endTime": "2", "weight": "20"},
		},
	})

	rpc, err := jsonrpc.NewClient()
	require.NoError(err)
	network := localNetwork()
	network.Subnets[0].Blockchains[0].RPCURL = server.URL + "/ext/bc/P"
	refresher := NewRefresher(rpc, logging.NoLog{})

	require.NoError(refresher.RefreshSubnets(context.Background(), network))
	require.NoError(refresher.RefreshBlockchains(context.Background(), network, subnetID))
	require.NoError(refresher.RefreshValidators(context.Background(), network, subnetID))

	chain, err := network.GetBlockchain(chainID)
	require.NoError(err)
	require.Equal(server.URL+"/ext/bc/"+chainID.String()+"/rpc", chain.RPCURL)
	require.Equal(vm.Type{Kind: vm.SubnetEVM}, chain.VMType)

	subnets := network.SubnetsValidatedBy(nodeID)
	require.Len(subnets, 1)
	require.Equal(subnetID, subnets[0].ID)
	require.Zero(server.Calls("info.getVMs"))
}

func TestRefreshBlockchainsDuplicateSubnetIDs(t *testing.T) {
	require := require.New(t)
	pClient := mocks.NewPClient(t)
	iClient := mocks.NewInfoClient(t)

	network := localNetwork()
	pClient.On("GetBlockchains", mock.Anything, ids.Empty).Return([]*models.Blockchain{}, nil).Once()

	refresher := newTestRefresher(pClient, iClient)
	require.NoError(refresher.RefreshBlockchains(context.Background(), network, ids.Empty, ids.Empty))
	require.Len(network.Subnets[0].Blockchains, 1)
}

func TestRefreshBlockchainsFetchesListOnce(t *testing.T) {
	require := require.New(t)
	server := testutils.NewRPCServer(t)

	network := localNetwork()
	network.Subnets[0].Blockchains[0].RPCURL = server.URL + "/ext/bc/P"
	blockchains := []map[string]string{}
	for i := 0; i < 20; i++ {
		subnetID := ids.GenerateTestID()
		network.Subnets = append(network.Subnets, &models.Subnet{ID: subnetID, Type: models.GeneralSubnet})
		blockchains = append(blockchains, map[string]string{
			"id":       ids.GenerateTestID().String(),
			"name":     "chain",
			"subnetID": subnetID.String(),
			"vmID":     vm.SubnetEVMID.String(),
		})
	}
	server.HandleResult("platform.getBlockchains", map[string]interface{}{"blockchains": blockchains})

	client, err := jsonrpc.NewClient()
	require.NoError(err)
	refresher := NewRefresher(client, logging.NoLog{})
	require.NoError(refresher.RefreshBlockchains(context.Background(), network))

	require.Equal(1, server.Calls("platform.getBlockchains"))
	for _, subnet := range network.Subnets[1:] {
		require.Len(subnet.Blockchains, 1)
		require.Equal(vm.SubnetEVM, subnet.Blockchains[0].VMType.Kind)
	}
}

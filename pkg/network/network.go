// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/vm"
	"github.com/ash-center/ash-cli/sdk/constants"
	"github.com/ash-center/ash-cli/sdk/info"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"
	"github.com/ash-center/ash-cli/sdk/pchain"
	"github.com/ash-center/ash-cli/sdk/utils"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PClient is the subset of the platform API the topology refresh relies on
type PClient interface {
	GetSubnets(ctx context.Context) ([]*models.Subnet, error)
	GetBlockchains(ctx context.Context, subnetID ids.ID) ([]*models.Blockchain, error)
	GetCurrentValidators(ctx context.Context, subnetID ids.ID) ([]*models.Validator, error)
}

// InfoClient resolves VM aliases on the node serving the network APIs
type InfoClient interface {
	GetVMs(ctx context.Context) (map[ids.ID][]string, error)
}

// Refresher reconciles a Network tree with the state reported by its P-Chain.
// Refreshes of the same Network must not run concurrently.
type Refresher struct {
	// PClient returns a platform API client for a P-Chain RPC URL
	PClient func(pChainURL string) PClient
	// InfoClient returns an info API client for a node base URL
	InfoClient            func(baseURL string) InfoClient
	Log                   logging.Logger
	MaxConcurrentRequests int
}

func NewRefresher(rpc jsonrpc.Caller, log logging.Logger) *Refresher {
	return &Refresher{
		PClient: func(pChainURL string) PClient {
			return pchain.NewClient(rpc, pChainURL)
		},
		InfoClient: func(baseURL string) InfoClient {
			return info.NewClient(rpc, baseURL)
		},
		Log:                   log,
		MaxConcurrentRequests: constants.DefaultMaxConcurrentRequests,
	}
}

func (r *Refresher) log() logging.Logger {
	if r.Log == nil {
		return logging.NoLog{}
	}
	return r.Log
}

// RefreshSubnets appends the Subnets the P-Chain reports and [network] does
// not know yet, and updates the metadata of the known ones in place.
// Known Subnets missing from the reply are kept.
func (r *Refresher) RefreshSubnets(ctx context.Context, network *models.Network) error {
	pChainURL, err := network.PChainURL()
	if err != nil {
		return fmt.Errorf("failed to refresh subnets of network %s: %w", network.Name, err)
	}
	subnets, err := r.PClient(pChainURL).GetSubnets(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh subnets of network %s: %w", network.Name, err)
	}
	added := 0
	for _, subnet := range subnets {
		existing, err := network.GetSubnet(subnet.ID)
		if err != nil {
			network.Subnets = append(network.Subnets, subnet)
			added++
			continue
		}
		existing.ControlKeys = subnet.ControlKeys
		existing.Threshold = subnet.Threshold
		existing.Type = subnet.Type
	}
	r.log().Debug("refreshed subnets",
		zap.String("network", network.Name),
		zap.Int("reported", len(subnets)),
		zap.Int("added", added),
	)
	return nil
}

// RefreshBlockchains fetches the blockchains of [subnetIDs], all Subnets of
// [network] when empty, and merges them by ID into their Subnet. Subnets are
// fetched concurrently and merged one at a time. When some Subnets fail the
// others stay merged and a *PartialFailureError is returned.
func (r *Refresher) RefreshBlockchains(ctx context.Context, network *models.Network, subnetIDs ...ids.ID) error {
	pChainURL, err := network.PChainURL()
	if err != nil {
		return fmt.Errorf("failed to refresh blockchains of network %s: %w", network.Name, err)
	}
	baseURL := models.APIBaseURL(pChainURL)

	targets := make([]*models.Subnet, 0, len(subnetIDs))
	if len(subnetIDs) == 0 {
		targets = append(targets, network.Subnets...)
	}
	for _, subnetID := range utils.Unique(subnetIDs) {
		subnet, err := network.GetSubnet(subnetID)
		if err != nil {
			return fmt.Errorf("failed to refresh blockchains of network %s: %w", network.Name, err)
		}
		targets = append(targets, subnet)
	}

	// VM types already known, so the fan-out never reads the tree
	knownTypes := map[ids.ID]vm.Type{}
	for _, subnet := range network.Subnets {
		for _, chain := range subnet.Blockchains {
			if chain.VMType.IsResolved() {
				knownTypes[chain.ID] = chain.VMType
			}
		}
	}

	pClient := r.PClient(pChainURL)
	resolver := &vmResolver{client: r.InfoClient(baseURL)}
	results := make([][]*models.Blockchain, len(targets))
	errs := make([]error, len(targets))

	g := errgroup.Group{}
	if r.MaxConcurrentRequests > 0 {
		g.SetLimit(r.MaxConcurrentRequests)
	}
	for i, subnet := range targets {
		subnetID := subnet.ID
		g.Go(func() error {
			results[i], errs[i] = r.fetchBlockchains(ctx, pClient, resolver, baseURL, subnetID, knownTypes)
			return nil
		})
	}
	_ = g.Wait()

	var (
		succeeded []ids.ID
		failed    = map[ids.ID]error{}
	)
	for i, subnet := range targets {
		if errs[i] != nil {
			failed[subnet.ID] = errs[i]
			r.log().Debug("failed to refresh subnet blockchains",
				zap.String("network", network.Name),
				zap.Stringer("subnetID", subnet.ID),
				zap.Error(errs[i]),
			)
			continue
		}
		mergeBlockchains(subnet, results[i])
		succeeded = append(succeeded, subnet.ID)
	}
	if len(failed) > 0 {
		return &PartialFailureError{
			Network:   network.Name,
			Operation: "refresh blockchains",
			Succeeded: succeeded,
			Failed:    failed,
		}
	}
	return nil
}

func (*Refresher) fetchBlockchains(
	ctx context.Context,
	pClient PClient,
	resolver *vmResolver,
	baseURL string,
	subnetID ids.ID,
	knownTypes map[ids.ID]vm.Type,
) ([]*models.Blockchain, error) {
	blockchains, err := pClient.GetBlockchains(ctx, subnetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get blockchains of subnet %s: %w", subnetID, err)
	}
	for _, chain := range blockchains {
		vmType, ok := knownTypes[chain.ID]
		if !ok {
			vmType, err = resolver.resolve(ctx, chain.VMID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve VM %s of blockchain %s: %w", chain.VMID, chain.ID, err)
			}
		}
		chain.VMType = vmType
		chain.RPCURL = models.BlockchainRPCURL(baseURL, chain.ID, vmType)
	}
	return blockchains, nil
}

// mergeBlockchains updates known blockchains in place and appends new ones.
// Configured RPC URLs and VM types win over derived ones.
func mergeBlockchains(subnet *models.Subnet, blockchains []*models.Blockchain) {
	for _, chain := range blockchains {
		existing, err := subnet.GetBlockchain(chain.ID)
		if err != nil {
			subnet.Blockchains = append(subnet.Blockchains, chain)
			continue
		}
		existing.Name = chain.Name
		existing.SubnetID = chain.SubnetID
		existing.VMID = chain.VMID
		if !existing.VMType.IsResolved() {
			existing.VMType = chain.VMType
		}
		if existing.RPCURL == "" {
			existing.RPCURL = chain.RPCURL
		}
	}
}

// RefreshValidators replaces the validator set of [subnetID] with the current one
func (r *Refresher) RefreshValidators(ctx context.Context, network *models.Network, subnetID ids.ID) error {
	subnet, err := network.GetSubnet(subnetID)
	if err != nil {
		return fmt.Errorf("failed to refresh validators of network %s: %w", network.Name, err)
	}
	pChainURL, err := network.PChainURL()
	if err != nil {
		return fmt.Errorf("failed to refresh validators of network %s: %w", network.Name, err)
	}
	validators, err := r.PClient(pChainURL).GetCurrentValidators(ctx, subnetID)
	if err != nil {
		return fmt.Errorf("failed to refresh validators of subnet %s in network %s: %w", subnetID, network.Name, err)
	}
	subnet.Validators = validators
	r.log().Debug("refreshed validators",
		zap.String("network", network.Name),
		zap.Stringer("subnetID", subnetID),
		zap.Int("validators", len(validators)),
	)
	return nil
}

// vmResolver asks the node for its VM aliases at most once per refresh.
// A failed lookup is not cached.
type vmResolver struct {
	client InfoClient

	lock sync.Mutex
	vms  map[ids.ID][]string
}

func (v *vmResolver) resolve(ctx context.Context, vmID ids.ID) (vm.Type, error) {
	if vmType, ok := vm.FromID(vmID); ok {
		return vmType, nil
	}
	v.lock.Lock()
	defer v.lock.Unlock()
	if v.vms == nil {
		vms, err := v.client.GetVMs(ctx)
		if err != nil {
			return vm.Type{}, err
		}
		v.vms = vms
	}
	return vm.FromAliases(vmID, v.vms[vmID]), nil
}

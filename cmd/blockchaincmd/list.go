// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package blockchaincmd

import (
	"context"
	"fmt"

	"github.com/ash-center/ash-cli/cmd/flags"
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ash avalanche blockchain list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the blockchains of the network",
		Long: `The blockchain list command fetches the blockchains of every Subnet of the network,
or of the Subnet given with --subnet, and prints them.`,
		RunE: list,
		Args: cobrautils.ExactArgs(0),
	}
}

// refreshedNetwork fetches the Subnets of the network, then the blockchains
// of the --subnet Subnet or of all of them
func refreshedNetwork(ctx context.Context) (*models.Network, []*models.Subnet, error) {
	network, err := app.GetNetwork("")
	if err != nil {
		return nil, nil, err
	}
	if err := app.RefreshSubnets(ctx, network); err != nil {
		return nil, nil, err
	}
	if subnet == "" {
		if err := app.RefreshBlockchains(ctx, network); err != nil {
			return nil, nil, err
		}
		return network, network.Subnets, nil
	}
	subnetID, err := flags.ParseSubnetID(network, subnet)
	if err != nil {
		return nil, nil, err
	}
	if err := app.RefreshBlockchains(ctx, network, subnetID); err != nil {
		return nil, nil, err
	}
	target, err := network.GetSubnet(subnetID)
	if err != nil {
		return nil, nil, err
	}
	return network, []*models.Subnet{target}, nil
}

func list(cmd *cobra.Command, _ []string) error {
	network, subnets, err := refreshedNetwork(cmd.Context())
	if err != nil {
		return err
	}
	blockchains := []*models.Blockchain{}
	for _, s := range subnets {
		blockchains = append(blockchains, s.Blockchains...)
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(blockchains)
	}
	t := ux.DefaultTable(
		fmt.Sprintf("%s blockchains", network.Name),
		table.Row{"Name", "ID", "Subnet", "VM", "RPC URL"},
	)
	for _, chain := range blockchains {
		subnetID := chain.SubnetID.String()
		if chain.SubnetID == ids.Empty {
			subnetID = string(models.PrimaryNetworkSubnet)
		}
		t.AppendRow(table.Row{chain.Name, chain.ID, subnetID, chain.VMType, chain.RPCURL})
	}
	ux.Logger.PrintTable(t)
	return nil
}

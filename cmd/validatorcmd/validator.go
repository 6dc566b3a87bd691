// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"context"

	"github.com/ash-center/ash-cli/cmd/flags"
	"github.com/ash-center/ash-cli/pkg/application"
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/models"

	"github.com/spf13/cobra"
)

var (
	app    *application.Ash
	subnet string
)

// ash avalanche validator
func NewCmd(injectedApp *application.Ash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validator",
		Short: "Inspect the validators of a Subnet",
		Long: `The validator command suite lists the current validators of a Subnet of the
network selected with --network, the Primary Network unless --subnet is given.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	flags.AddSubnetFlag(cmd, &subnet, "Subnet ID, the Primary Network when empty")
	// validator list
	cmd.AddCommand(newListCmd())
	// validator info
	cmd.AddCommand(newInfoCmd())
	return cmd
}

func refreshedSubnet(ctx context.Context) (*models.Network, *models.Subnet, error) {
	network, err := app.GetNetwork("")
	if err != nil {
		return nil, nil, err
	}
	subnetID, err := flags.ParseSubnetID(network, subnet)
	if err != nil {
		return nil, nil, err
	}
	if _, err := network.GetSubnet(subnetID); err != nil {
		if err := app.RefreshSubnets(ctx, network); err != nil {
			return nil, nil, err
		}
	}
	target, err := network.GetSubnet(subnetID)
	if err != nil {
		return nil, nil, err
	}
	if err := app.RefreshValidators(ctx, network, subnetID); err != nil {
		return nil, nil, err
	}
	return network, target, nil
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package blockchaincmd

import (
	"github.com/ash-center/ash-cli/cmd/flags"
	"github.com/ash-center/ash-cli/pkg/application"
	"github.com/ash-center/ash-cli/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var (
	app    *application.Ash
	subnet string
)

// ash avalanche blockchain
func NewCmd(injectedApp *application.Ash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blockchain",
		Short: "Inspect the blockchains of a network",
		Long: `The blockchain command suite lists the blockchains of the network selected with
--network and shows their VM and RPC endpoint.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	flags.AddSubnetFlag(cmd, &subnet, "only consider the blockchains of this Subnet ID")
	// blockchain list
	cmd.AddCommand(newListCmd())
	// blockchain info
	cmd.AddCommand(newInfoCmd())
	return cmd
}

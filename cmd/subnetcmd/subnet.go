// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package subnetcmd

import (
	"github.com/ash-center/ash-cli/pkg/application"
	"github.com/ash-center/ash-cli/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var app *application.Ash

// ash avalanche subnet
func NewCmd(injectedApp *application.Ash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subnet",
		Short: "Inspect the Subnets of a network",
		Long: `The subnet command suite lists the Subnets of the network selected with
--network, as reported by its P-Chain, and shows their blockchains and validators.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// subnet list
	cmd.AddCommand(newListCmd())
	// subnet info
	cmd.AddCommand(newInfoCmd())
	return cmd
}

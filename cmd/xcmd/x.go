// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package xcmd

import (
	"github.com/ash-center/ash-cli/pkg/application"
	"github.com/ash-center/ash-cli/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var app *application.Ash

// ash avalanche x
func NewCmd(injectedApp *application.Ash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "x",
		Short: "Interact with the X-Chain",
		Long:  `The x command suite queries the X-Chain of the network selected with --network.`,
		RunE:  cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// x balance
	cmd.AddCommand(newBalanceCmd())
	return cmd
}

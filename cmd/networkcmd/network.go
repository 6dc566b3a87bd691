// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"github.com/ash-center/ash-cli/pkg/application"
	"github.com/ash-center/ash-cli/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var app *application.Ash

// ash avalanche network
func NewCmd(injectedApp *application.Ash) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Show the configured Avalanche networks",
		Long: `The network command suite lists the Avalanche networks known from the
configuration and shows their Subnets and blockchains.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cobrautils.CommandSuiteUsage(cmd, args)
		},
		Args: cobrautils.ExactArgs(0),
	}
	// network list
	cmd.AddCommand(newListCmd())
	// network info
	cmd.AddCommand(newInfoCmd())
	return cmd
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package confcmd

import (
	"github.com/ash-center/ash-cli/pkg/application"
	"github.com/ash-center/ash-cli/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var app *application.Ash

// ash conf
func NewCmd(injectedApp *application.Ash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conf",
		Short: "Manage the Ash CLI configuration",
		Long: `The conf command suite writes and shows the configuration of the networks
known to Ash CLI.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// conf init
	cmd.AddCommand(newInitCmd())
	// conf show
	cmd.AddCommand(newShowCmd())
	return cmd
}

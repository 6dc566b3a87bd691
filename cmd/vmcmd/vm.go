// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package vmcmd

import (
	"github.com/ash-center/ash-cli/pkg/application"
	"github.com/ash-center/ash-cli/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var app *application.Ash

// ash avalanche vm
func NewCmd(injectedApp *application.Ash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vm",
		Short: "Identify virtual machines",
		Long: `The vm command suite maps VM IDs to the VM types Ash CLI knows, and VM names
to their VM ID.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// vm info
	cmd.AddCommand(newInfoCmd())
	// vm id
	cmd.AddCommand(newIDCmd())
	return cmd
}

// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package avalanchecmd

import (
	"github.com/ash-center/ash-cli/cmd/blockchaincmd"
	"github.com/ash-center/ash-cli/cmd/flags"
	"github.com/ash-center/ash-cli/cmd/networkcmd"
	"github.com/ash-center/ash-cli/cmd/nodecmd"
	"github.com/ash-center/ash-cli/cmd/subnetcmd"
	"github.com/ash-center/ash-cli/cmd/validatorcmd"
	"github.com/ash-center/ash-cli/cmd/vmcmd"
	"github.com/ash-center/ash-cli/cmd/xcmd"
	"github.com/ash-center/ash-cli/pkg/application"
	"github.com/ash-center/ash-cli/pkg/cobrautils"

	"github.com/spf13/cobra"
)

// ash avalanche
func NewCmd(app *application.Ash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avalanche",
		Short: "Interact with Avalanche networks",
		Long: `The avalanche command suite provides a collection of tools for inspecting the
networks, Subnets, blockchains, validators and nodes of the Avalanche networks
defined in the configuration.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	flags.AddNetworkFlag(cmd)
	cmd.AddCommand(networkcmd.NewCmd(app))
	cmd.AddCommand(subnetcmd.NewCmd(app))
	cmd.AddCommand(blockchaincmd.NewCmd(app))
	cmd.AddCommand(validatorcmd.NewCmd(app))
	cmd.AddCommand(nodecmd.NewCmd(app))
	cmd.AddCommand(vmcmd.NewCmd(app))
	cmd.AddCommand(xcmd.NewCmd(app))
	return cmd
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package subnetcmd

import (
	"fmt"
	"strings"

	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ash avalanche subnet list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the Subnets of the network",
		Long:  `The subnet list command fetches the Subnets of the network from its P-Chain and prints them.`,
		RunE:  list,
		Args:  cobrautils.ExactArgs(0),
	}
}

func list(cmd *cobra.Command, _ []string) error {
	network, err := app.GetNetwork("")
	if err != nil {
		return err
	}
	if err := app.RefreshSubnets(cmd.Context(), network); err != nil {
		return err
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(network.Subnets)
	}
	t := ux.DefaultTable(
		fmt.Sprintf("%s Subnets", network.Name),
		table.Row{"ID", "Type", "Control Keys", "Threshold", "Blockchains"},
	)
	for _, subnet := range network.Subnets {
		t.AppendRow(table.Row{
			subnet.ID,
			subnet.Type,
			strings.Join(subnet.ControlKeys, "\n"),
			subnet.Threshold,
			len(subnet.Blockchains),
		})
	}
	ux.Logger.PrintTable(t)
	return nil
}

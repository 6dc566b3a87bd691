// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package subnetcmd

import (
	"fmt"
	"strings"

	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ash avalanche subnet info
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [subnetID]",
		Short: "Show a Subnet with its blockchains and validators",
		Long: `The subnet info command fetches a Subnet of the network, its blockchains and its
current validators, and prints them.`,
		RunE: info,
		Args: cobrautils.ExactArgs(1),
	}
}

func info(cmd *cobra.Command, args []string) error {
	subnetID, err := ids.FromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid subnet ID %q: %w", args[0], err)
	}
	network, err := app.GetNetwork("")
	if err != nil {
		return err
	}
	if err := app.RefreshSubnets(cmd.Context(), network); err != nil {
		return err
	}
	subnet, err := network.GetSubnet(subnetID)
	if err != nil {
		return err
	}
	if err := app.RefreshBlockchains(cmd.Context(), network, subnetID); err != nil {
		return err
	}
	if err := app.RefreshValidators(cmd.Context(), network, subnetID); err != nil {
		return err
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(subnet)
	}

	t := ux.DefaultTable(fmt.Sprintf("Subnet %s", subnet.ID), nil)
	t.AppendRow(table.Row{"Type", subnet.Type})
	t.AppendRow(table.Row{"Control Keys", strings.Join(subnet.ControlKeys, "\n")})
	t.AppendRow(table.Row{"Threshold", subnet.Threshold})
	t.AppendRow(table.Row{"Validators", len(subnet.Validators)})
	ux.Logger.PrintTable(t)
	ux.Logger.PrintLineSeparator()

	chains := ux.DefaultTable("Blockchains", table.Row{"Name", "ID", "VM ID", "VM", "RPC URL"})
	for _, chain := range subnet.Blockchains {
		chains.AppendRow(table.Row{chain.Name, chain.ID, chain.VMID, chain.VMType, chain.RPCURL})
	}
	ux.Logger.PrintTable(chains)
	return nil
}

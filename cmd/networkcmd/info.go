// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var refresh bool

// ash avalanche network info
func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [networkName]",
		Short: "Show a network and its blockchains",
		Long: `The network info command prints the Subnets and blockchains of a network, the
one selected with --network when no name is given. With --refresh, Subnets and
blockchains are first fetched from the network P-Chain.`,
		RunE: info,
		Args: cobrautils.MaximumNArgs(1),
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "fetch Subnets and blockchains from the P-Chain")
	return cmd
}

func info(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	network, err := app.GetNetwork(name)
	if err != nil {
		return err
	}
	if refresh {
		if err := app.RefreshSubnets(cmd.Context(), network); err != nil {
			return err
		}
		if err := app.RefreshBlockchains(cmd.Context(), network); err != nil {
			return err
		}
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(network)
	}
	t := ux.DefaultTable(network.Name, table.Row{"Subnet", "Type", "Blockchain", "ID", "VM", "RPC URL"})
	for _, subnet := range network.Subnets {
		if len(subnet.Blockchains) == 0 {
			t.AppendRow(table.Row{subnet.ID, subnet.Type, "", "", "", ""})
		}
		for _, chain := range subnet.Blockchains {
			t.AppendRow(table.Row{subnet.ID, subnet.Type, chain.Name, chain.ID, chain.VMType, chain.RPCURL})
		}
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true}, {Number: 2, AutoMerge: true}})
	ux.Logger.PrintTable(t)
	return nil
}

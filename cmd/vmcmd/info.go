// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package vmcmd

import (
	"fmt"

	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/ux"
	"github.com/ash-center/ash-cli/pkg/vm"
	"github.com/ash-center/ash-cli/sdk/info"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type vmInfo struct {
	ID      ids.ID   `json:"id"`
	Type    vm.Type  `json:"type"`
	Aliases []string `json:"aliases,omitempty"`
}

// ash avalanche vm info
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [vmID]",
		Short: "Show the type of a VM",
		Long: `The vm info command resolves the type of a VM ID. VMs unknown to Ash CLI are
looked up in the VM aliases of the node serving the network selected with --network.`,
		RunE: vmInfoCmd,
		Args: cobrautils.ExactArgs(1),
	}
}

func vmInfoCmd(cmd *cobra.Command, args []string) error {
	vmID, err := ids.FromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid VM ID %q: %w", args[0], err)
	}
	result := vmInfo{ID: vmID}
	if vmType, ok := vm.FromID(vmID); ok {
		result.Type = vmType
	} else {
		network, err := app.GetNetwork("")
		if err != nil {
			return err
		}
		baseURL, err := network.APIBaseURL()
		if err != nil {
			return err
		}
		rpc, err := app.RPCClient()
		if err != nil {
			return err
		}
		aliases, err := info.NewClient(rpc, baseURL).GetVMs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get VMs of network %s: %w", network.Name, err)
		}
		result.Aliases = aliases[vmID]
		result.Type = vm.FromAliases(vmID, result.Aliases)
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(result)
	}
	t := ux.DefaultTable(fmt.Sprintf("VM %s", vmID), nil)
	t.AppendRow(table.Row{"Type", result.Type})
	if len(result.Aliases) > 0 {
		t.AppendRow(table.Row{"Aliases", result.Aliases})
	}
	ux.Logger.PrintTable(t)
	return nil
}

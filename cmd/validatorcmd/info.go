// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"fmt"
	"time"

	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [nodeID]",
		Short: "Show a validator of a Subnet",
		Long:  `The validator info command prints the current validation of a node on a Subnet.`,
		RunE:  info,
		Args:  cobrautils.ExactArgs(1),
	}
}

func info(cmd *cobra.Command, args []string) error {
	nodeID, err := ids.NodeIDFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid node ID %q: %w", args[0], err)
	}
	_, subnet, err := refreshedSubnet(cmd.Context())
	if err != nil {
		return err
	}
	validator, err := subnet.GetValidator(nodeID)
	if err != nil {
		return err
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(validator)
	}
	t := ux.DefaultTable(validator.NodeID.String(), nil)
	t.AppendRow(table.Row{"Subnet", subnet.ID})
	t.AppendRow(table.Row{"Tx ID", validator.TxID})
	t.AppendRow(table.Row{"Stake", stake(subnet, validator)})
	t.AppendRow(table.Row{"Start", validator.Start().Format(time.RFC3339)})
	t.AppendRow(table.Row{"End", validator.End().Format(time.RFC3339)})
	if validator.PotentialReward != nil {
		t.AppendRow(table.Row{"Potential Reward", ux.FormatAVAX(*validator.PotentialReward)})
	}
	if validator.DelegationFee != nil {
		t.AppendRow(table.Row{"Delegation Fee", fmt.Sprintf("%.2f%%", *validator.DelegationFee)})
	}
	if validator.Uptime != nil {
		t.AppendRow(table.Row{"Uptime", fmt.Sprintf("%.2f%%", *validator.Uptime)})
	}
	if validator.Connected != nil {
		t.AppendRow(table.Row{"Connected", *validator.Connected})
	}
	t.AppendRow(table.Row{"Delegators", len(validator.Delegators)})
	ux.Logger.PrintTable(t)
	return nil
}

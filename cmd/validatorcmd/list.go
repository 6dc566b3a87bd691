// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"fmt"
	"time"

	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the current validators of a Subnet",
		Long:  `The validator list command fetches the current validators of a Subnet and prints them.`,
		RunE:  list,
		Args:  cobrautils.ExactArgs(0),
	}
}

// stake is shown in AVAX for the Primary Network, as a raw weight otherwise
func stake(subnet *models.Subnet, validator *models.Validator) string {
	if subnet.IsPrimaryNetwork() && validator.StakeAmount != nil {
		return ux.FormatAVAX(*validator.StakeAmount)
	}
	return ux.ConvertToStringWithThousandSeparator(validator.Weight)
}

func list(cmd *cobra.Command, _ []string) error {
	network, subnet, err := refreshedSubnet(cmd.Context())
	if err != nil {
		return err
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(subnet.Validators)
	}
	t := ux.DefaultTable(
		fmt.Sprintf("%s validators of %s", network.Name, subnet.ID),
		table.Row{"Node ID", "Stake", "Start", "Ends In", "Connected"},
	)
	now := time.Now().UTC()
	for _, validator := range subnet.Validators {
		connected := ""
		if validator.Connected != nil {
			connected = fmt.Sprint(*validator.Connected)
		}
		t.AppendRow(table.Row{
			validator.NodeID,
			stake(subnet, validator),
			validator.Start().Format(time.RFC3339),
			ux.FormatDuration(validator.End().Sub(now)),
			connected,
		})
	}
	ux.Logger.PrintTable(t)
	return nil
}

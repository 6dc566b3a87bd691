// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nodecmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/node"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ash avalanche node info
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show node information",
		Long:  `The node info command prints the identity, versions and uptime reported by a node.`,
		RunE:  nodeInfo,
		Args:  cobrautils.ExactArgs(0),
	}
}

func nodeInfo(cmd *cobra.Command, _ []string) error {
	n := models.NewNode(httpHost, httpPort, useHTTPS)
	client, err := infoClient(n)
	if err != nil {
		return err
	}
	if err := node.UpdateInfo(cmd.Context(), n, client); err != nil {
		return err
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(n)
	}
	vms := make([]string, 0, len(n.Versions.VMVersions))
	for vmName, version := range n.Versions.VMVersions {
		vms = append(vms, fmt.Sprintf("%s: %s", vmName, version))
	}
	sort.Strings(vms)

	t := ux.DefaultTable(fmt.Sprintf("Node %s", n.HTTPEndpoint()), nil)
	t.AppendRow(table.Row{"Node ID", n.ID})
	t.AppendRow(table.Row{"Network", n.Network})
	t.AppendRow(table.Row{"Public IP", n.PublicIP})
	t.AppendRow(table.Row{"Staking Port", n.StakingPort})
	t.AppendRow(table.Row{"AvalancheGo Version", n.Versions.AvalancheGoVersion})
	t.AppendRow(table.Row{"Database Version", n.Versions.DatabaseVersion})
	t.AppendRow(table.Row{"Git Commit", n.Versions.GitCommit})
	t.AppendRow(table.Row{"RPC Protocol Version", n.Versions.RPCProtocolVersion})
	t.AppendRow(table.Row{"VM Versions", strings.Join(vms, "\n")})
	t.AppendRow(table.Row{"Rewarding Stake", fmt.Sprintf("%.2f%%", n.Uptime.RewardingStakePercentage)})
	t.AppendRow(table.Row{"Weighted Average Uptime", fmt.Sprintf("%.2f%%", n.Uptime.WeightedAveragePercentage)})
	ux.Logger.PrintTable(t)
	return nil
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type networkSummary struct {
	Name      string `json:"name"`
	Subnets   int    `json:"subnets"`
	PChainURL string `json:"pChainUrl"`
}

// ash avalanche network list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured networks",
		Long:  `The network list command prints the networks defined in the configuration.`,
		RunE:  list,
		Args:  cobrautils.ExactArgs(0),
	}
}

func summarize(network *models.Network) networkSummary {
	// a network without P-Chain URL is listed with an empty one
	pChainURL, _ := network.PChainURL()
	return networkSummary{
		Name:      network.Name,
		Subnets:   len(network.Subnets),
		PChainURL: pChainURL,
	}
}

func list(*cobra.Command, []string) error {
	registry, err := app.LoadRegistry()
	if err != nil {
		return err
	}
	summaries := make([]networkSummary, 0, len(registry.Networks))
	for _, network := range registry.Networks {
		summaries = append(summaries, summarize(network))
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(summaries)
	}
	t := ux.DefaultTable("Avalanche networks", table.Row{"Name", "Subnets", "P-Chain RPC URL"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.Name, s.Subnets, s.PChainURL})
	}
	ux.Logger.PrintTable(t)
	return nil
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nodecmd

import (
	"fmt"

	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ash avalanche node peers
func newPeersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peers [nodeID...]",
		Short: "List the peers of the node",
		Long: `The node peers command lists the peers the node is connected to, restricted to the
given node IDs if any.`,
		RunE: peers,
	}
}

func peers(cmd *cobra.Command, args []string) error {
	nodeIDs := make([]ids.NodeID, 0, len(args))
	for _, arg := range args {
		nodeID, err := ids.NodeIDFromString(arg)
		if err != nil {
			return fmt.Errorf("invalid node ID %q: %w", arg, err)
		}
		nodeIDs = append(nodeIDs, nodeID)
	}
	n := models.NewNode(httpHost, httpPort, useHTTPS)
	client, err := infoClient(n)
	if err != nil {
		return err
	}
	nodePeers, err := client.Peers(cmd.Context(), nodeIDs...)
	if err != nil {
		return fmt.Errorf("failed to get peers of node %s: %w", n.HTTPEndpoint(), err)
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(nodePeers)
	}
	t := ux.DefaultTable(
		fmt.Sprintf("Peers of %s", n.HTTPEndpoint()),
		table.Row{"Node ID", "IP", "Version", "Observed Uptime", "Benched"},
	)
	for _, p := range nodePeers {
		t.AppendRow(table.Row{p.NodeID, p.IP, p.Version, fmt.Sprintf("%d%%", p.ObservedUptime), len(p.Benched)})
	}
	ux.Logger.PrintTable(t)
	return nil
}

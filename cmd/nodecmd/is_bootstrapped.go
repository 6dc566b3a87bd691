// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nodecmd

import (
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/config"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/node"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/spf13/cobra"
)

var chain string

// ash avalanche node is-bootstrapped
func newIsBootstrappedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "is-bootstrapped",
		Short: "Check if a chain is done bootstrapping on the node",
		Long:  `The node is-bootstrapped command checks whether the node is done bootstrapping a chain.`,
		RunE:  isBootstrapped,
		Args:  cobrautils.ExactArgs(0),
	}
	cmd.Flags().StringVar(&chain, config.ChainKey, "P", "chain ID or alias")
	return cmd
}

func isBootstrapped(cmd *cobra.Command, _ []string) error {
	n := models.NewNode(httpHost, httpPort, useHTTPS)
	client, err := infoClient(n)
	if err != nil {
		return err
	}
	bootstrapped, err := node.CheckChainBootstrapping(cmd.Context(), n, client, chain)
	if err != nil {
		return err
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(map[string]interface{}{"chain": chain, "isBootstrapped": bootstrapped})
	}
	if bootstrapped {
		ux.Logger.GreenCheckmarkToUser("Chain %s on node %s: bootstrapped", ux.Colorize(chain), ux.Colorize(n.HTTPEndpoint()))
	} else {
		ux.Logger.RedXToUser("Chain %s on node %s: not yet bootstrapped", ux.Colorize(chain), ux.Colorize(n.HTTPEndpoint()))
	}
	return nil
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nodecmd

import (
	"github.com/ash-center/ash-cli/pkg/application"
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/config"
	"github.com/ash-center/ash-cli/pkg/constants"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/sdk/info"

	"github.com/spf13/cobra"
)

var (
	app      *application.Ash
	httpHost string
	httpPort uint16
	useHTTPS bool
)

// ash avalanche node
func NewCmd(injectedApp *application.Ash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Interact with Avalanche nodes",
		Long: `The node command suite queries the info API of an avalanchego node reachable at
--http-host and --http-port.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	cmd.PersistentFlags().StringVar(&httpHost, config.HTTPHostKey, constants.DefaultNodeHTTPHost, "node HTTP host, IP address or FQDN")
	cmd.PersistentFlags().Uint16Var(&httpPort, config.HTTPPortKey, models.DefaultHTTPPort, "node HTTP port")
	cmd.PersistentFlags().BoolVar(&useHTTPS, config.HTTPSKey, false, "reach the node over HTTPS")
	// node info
	cmd.AddCommand(newInfoCmd())
	// node is-bootstrapped
	cmd.AddCommand(newIsBootstrappedCmd())
	// node id-from-cert
	cmd.AddCommand(newIDFromCertCmd())
	// node peers
	cmd.AddCommand(newPeersCmd())
	return cmd
}

func infoClient(node *models.Node) (*info.Client, error) {
	rpc, err := app.RPCClient()
	if err != nil {
		return nil, err
	}
	return info.NewClient(rpc, node.HTTPEndpoint()), nil
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nodecmd

import (
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/node"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/spf13/cobra"
)

// ash avalanche node id-from-cert
func newIDFromCertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id-from-cert [certPath]",
		Short: "Compute a node ID from its staking certificate",
		Long:  `The node id-from-cert command prints the node ID of a PEM encoded staking certificate.`,
		RunE:  idFromCert,
		Args:  cobrautils.ExactArgs(1),
	}
}

func idFromCert(_ *cobra.Command, args []string) error {
	nodeID, err := node.NodeIDFromCertFile(app.FS, args[0])
	if err != nil {
		return err
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(map[string]string{"nodeID": nodeID.String()})
	}
	ux.Logger.PrintToUser("%s", nodeID)
	return nil
}

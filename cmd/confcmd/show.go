// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package confcmd

import (
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/config"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/spf13/cobra"
)

// ash conf show
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration",
		Long: `The conf show command prints the configuration resulting from the default
configuration and the configuration files, in the configuration file format.`,
		RunE: showConf,
		Args: cobrautils.ExactArgs(0),
	}
}

func showConf(*cobra.Command, []string) error {
	registry, err := app.LoadRegistry()
	if err != nil {
		return err
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(registry)
	}
	out, err := config.Dump(registry)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("%s", out)
	return nil
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package confcmd

import (
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/config"
	"github.com/ash-center/ash-cli/pkg/ux"
	"github.com/ash-center/ash-cli/sdk/utils"

	"github.com/spf13/cobra"
)

var force bool

// ash conf init
func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to a file",
		Long: `The conf init command writes the default configuration to the file given with
--config, ~/.ash/ash.yml otherwise, so that it can be edited.`,
		RunE: initConf,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().BoolVarP(&force, config.ForceKey, "f", false, "overwrite an existing configuration file")
	return cmd
}

func initConf(*cobra.Command, []string) error {
	path := app.GetDefaultConfigPath()
	if configPath := app.Conf.GetConfigStringValue(config.ConfigKey); configPath != "" {
		path = utils.ExpandHome(configPath)
	}
	if err := config.WriteDefault(app.FS, path, force); err != nil {
		return err
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(map[string]string{"configFile": path})
	}
	ux.Logger.GreenCheckmarkToUser("Configuration written to %s", path)
	return nil
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/ash-center/ash-cli/cmd/avalanchecmd"
	"github.com/ash-center/ash-cli/cmd/confcmd"
	"github.com/ash-center/ash-cli/cmd/consolecmd"
	"github.com/ash-center/ash-cli/pkg/application"
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/config"
	"github.com/ash-center/ash-cli/pkg/constants"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var Version = ""

// NewRootCmd builds the ash command tree. Files are read from [fs],
// logs are written under [baseDir] and user output goes to [out].
func NewRootCmd(baseDir string, fs afero.Fs, out io.Writer) *cobra.Command {
	app := application.New()
	conf := config.New()
	var logFactory logging.Factory

	rootCmd := &cobra.Command{
		Use: "ash",
		Long: `Ash CLI gives access to the Avalanche networks described in its configuration.

Networks, Subnets, blockchains and validators are loaded from the embedded default
configuration, then from ~/.ash/ash.yml and the file given with --config, and
refreshed from the P-Chain of the selected network.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := conf.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			log, factory, err := setupLogging(baseDir, conf)
			if err != nil {
				return err
			}
			logFactory = factory
			ux.NewUserLog(log, out)
			if out == os.Stdout && !conf.GetConfigBoolValue(config.JSONKey) {
				ux.Logger.SpinnerWriter = os.Stderr
			}
			app.Setup(baseDir, log, conf, fs)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logFactory != nil {
				logFactory.Close()
			}
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cobrautils.ConfigureRootCmd(rootCmd)
	rootCmd.SetOut(out)

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().String(config.ConfigKey, "", "configuration file merged over the default configuration (env ASH_CONFIG)")
	rootCmd.PersistentFlags().Bool(config.JSONKey, false, "output in JSON format")
	rootCmd.PersistentFlags().String(config.LogLevelKey, constants.DefaultLogLevel, "log level displayed on the console")
	rootCmd.PersistentFlags().String(config.CAFileKey, "", "PEM file of additional CA certificates trusted for HTTPS endpoints")
	rootCmd.PersistentFlags().Bool(config.InsecureKey, false, "skip TLS certificate verification")
	rootCmd.PersistentFlags().Duration(config.TimeoutKey, constants.DefaultTimeout, "timeout of each RPC request")
	rootCmd.PersistentFlags().Int(config.RetriesKey, constants.DefaultRetries, "attempts of refreshes failing with transient errors")

	// add sub commands
	rootCmd.AddCommand(confcmd.NewCmd(app))
	rootCmd.AddCommand(avalanchecmd.NewCmd(app))
	rootCmd.AddCommand(consolecmd.NewCmd(app))
	return rootCmd
}

func setupLogging(baseDir string, conf *config.Config) (logging.Logger, logging.Factory, error) {
	logLevel := conf.GetConfigStringValue(config.LogLevelKey)
	logConfig := logging.Config{}
	logConfig.LogLevel = logging.Info
	displayLevel, err := logging.ToLevel(logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	logConfig.DisplayLevel = displayLevel
	logConfig.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logConfig.Directory, perms.ReadWriteExecute); err != nil {
		return nil, nil, fmt.Errorf("failed creating log directory: %w", err)
	}
	// keep stdout clean for machine readable output
	logConfig.DisableWriterDisplaying = conf.GetConfigBoolValue(config.JSONKey)

	// some logging config params
	logConfig.LogFormat = logging.Colors
	logConfig.MaxSize = constants.MaxLogFileSize
	logConfig.MaxFiles = constants.MaxNumOfLogFiles
	logConfig.MaxAge = constants.RetainOldFiles

	factory := logging.NewFactory(logConfig)
	log, err := factory.Make(constants.LogNameMain)
	if err != nil {
		factory.Close()
		return nil, nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	return log, factory, nil
}

// Execute runs the command line against the user's home directory.
// This is called by main.main().
func Execute() {
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		os.Exit(1)
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)
	if err := os.MkdirAll(baseDir, constants.DefaultPerms755); err != nil {
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		os.Exit(1)
	}
	cobrautils.HandleErrors(NewRootCmd(baseDir, afero.NewOsFs(), os.Stdout).Execute())
}

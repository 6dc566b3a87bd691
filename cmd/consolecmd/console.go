// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package consolecmd

import (
	"errors"
	"strings"

	"github.com/ash-center/ash-cli/pkg/application"
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	app *application.Ash

	errNoConsole = errors.New("no ashConsole block in the configuration")
)

// ash console
func NewCmd(injectedApp *application.Ash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Show the Ash Console settings",
		Long:  `The console command suite shows how Ash CLI reaches the Ash Console API.`,
		RunE:  cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	cmd.AddCommand(newInfoCmd())
	return cmd
}

// ash console info
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the Ash Console API and OAuth2 endpoints",
		Long:  `The console info command prints the ashConsole block of the configuration.`,
		RunE:  info,
		Args:  cobrautils.ExactArgs(0),
	}
}

func info(*cobra.Command, []string) error {
	registry, err := app.LoadRegistry()
	if err != nil {
		return err
	}
	if registry.Console == nil {
		return errNoConsole
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(registry.Console)
	}
	oauth2Config := registry.Console.OAuth2Client("openid")
	t := ux.DefaultTable("Ash Console", nil)
	t.AppendRow(table.Row{"API URL", registry.Console.APIURL})
	t.AppendRow(table.Row{"Client ID", oauth2Config.ClientID})
	t.AppendRow(table.Row{"Authorization URL", oauth2Config.Endpoint.AuthURL})
	t.AppendRow(table.Row{"Token URL", oauth2Config.Endpoint.TokenURL})
	t.AppendRow(table.Row{"Device Authorization URL", oauth2Config.Endpoint.DeviceAuthURL})
	t.AppendRow(table.Row{"Introspection URL", registry.Console.OAuth2.IntrospectionURL})
	t.AppendRow(table.Row{"Scopes", strings.Join(oauth2Config.Scopes, " ")})
	ux.Logger.PrintTable(t)
	return nil
}

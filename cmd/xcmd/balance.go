// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package xcmd

import (
	"github.com/ash-center/ash-cli/pkg/clierrors"
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/config"
	"github.com/ash-center/ash-cli/pkg/ux"
	"github.com/ash-center/ash-cli/sdk/xchain"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var assetID string

// ash avalanche x balance
func newBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Show the balance of an X-Chain address",
		Long:  `The x balance command prints the balance of an X-Chain address for an asset, AVAX by default.`,
		RunE:  balance,
		Args:  cobrautils.ExactArgs(1),
	}
	cmd.Flags().StringVar(&assetID, config.AssetIDKey, xchain.AVAXAsset, "asset ID or alias")
	return cmd
}

func balance(cmd *cobra.Command, args []string) error {
	network, err := app.GetNetwork("")
	if err != nil {
		return err
	}
	xChain, err := network.XChain()
	if err != nil {
		return err
	}
	if xChain.RPCURL == "" {
		return clierrors.ErrNoRPCURL
	}
	rpc, err := app.RPCClient()
	if err != nil {
		return err
	}
	b, err := xchain.NewClient(rpc, xChain.RPCURL).GetBalance(cmd.Context(), args[0], assetID)
	if err != nil {
		return err
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(b)
	}
	amount := ux.ConvertToStringWithThousandSeparator(b.Balance)
	if assetID == xchain.AVAXAsset {
		amount = ux.FormatAVAX(b.Balance)
	}
	t := ux.DefaultTable("X-Chain balance", nil)
	t.AppendRow(table.Row{"Address", b.Address})
	t.AppendRow(table.Row{"Asset", b.AssetID})
	t.AppendRow(table.Row{"Balance", amount})
	t.AppendRow(table.Row{"UTXOs", len(b.UTXOIDs)})
	ux.Logger.PrintTable(t)
	return nil
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package blockchaincmd

import (
	"fmt"

	"github.com/ash-center/ash-cli/pkg/blockchain"
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/config"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/ux"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var probe bool

type blockchainInfo struct {
	*models.Blockchain
	Probe *blockchain.ProbeResult `json:"probe,omitempty"`
}

// ash avalanche blockchain info
func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [blockchainIDOrName]",
		Short: "Show a blockchain",
		Long: `The blockchain info command prints a blockchain of the network, found by ID or by
name. With --probe, its RPC endpoint is queried for the current chain head.`,
		RunE: info,
		Args: cobrautils.ExactArgs(1),
	}
	cmd.Flags().BoolVar(&probe, config.ProbeKey, false, "query the blockchain RPC endpoint")
	return cmd
}

func findBlockchain(subnets []*models.Subnet, idOrName string) (*models.Blockchain, error) {
	chainID, idErr := ids.FromString(idOrName)
	for _, s := range subnets {
		var (
			chain *models.Blockchain
			err   error
		)
		if idErr == nil {
			chain, err = s.GetBlockchain(chainID)
		} else {
			chain, err = s.GetBlockchainByName(idOrName)
		}
		if err == nil {
			return chain, nil
		}
	}
	return nil, &models.NotFoundError{Kind: models.BlockchainKind, Key: idOrName}
}

func info(cmd *cobra.Command, args []string) error {
	network, subnets, err := refreshedNetwork(cmd.Context())
	if err != nil {
		return err
	}
	chain, err := findBlockchain(subnets, args[0])
	if err != nil {
		return fmt.Errorf("network %s: %w", network.Name, err)
	}
	result := blockchainInfo{Blockchain: chain}
	if probe {
		client, err := app.RPCClient()
		if err != nil {
			return err
		}
		var probeResult blockchain.ProbeResult
		err = ux.Logger.Spin(fmt.Sprintf("Probing %s", chain.RPCURL), func() error {
			probeResult, err = blockchain.Probe(cmd.Context(), client, chain)
			return err
		})
		if err != nil {
			return err
		}
		result.Probe = &probeResult
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(result)
	}
	t := ux.DefaultTable(chain.Name, nil)
	t.AppendRow(table.Row{"ID", chain.ID})
	t.AppendRow(table.Row{"Subnet", chain.SubnetID})
	t.AppendRow(table.Row{"VM ID", chain.VMID})
	t.AppendRow(table.Row{"VM", chain.VMType})
	t.AppendRow(table.Row{"RPC URL", chain.RPCURL})
	if result.Probe != nil {
		if result.Probe.ChainID != nil {
			t.AppendRow(table.Row{"Chain ID", result.Probe.ChainID})
		}
		t.AppendRow(table.Row{"Height", ux.ConvertToStringWithThousandSeparator(result.Probe.Height)})
	}
	ux.Logger.PrintTable(t)
	return nil
}

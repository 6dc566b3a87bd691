// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"

	"github.com/ash-center/ash-cli/pkg/config"
	"github.com/ash-center/ash-cli/pkg/constants"
	"github.com/ash-center/ash-cli/pkg/models"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"
)

// AddNetworkFlag adds --network to [cmd] and all of its subcommands
func AddNetworkFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(
		config.NetworkKey,
		"n",
		constants.DefaultNetwork,
		"avalanche network to use, as named in the configuration",
	)
}

// AddSubnetFlag adds --subnet to [cmd] and all of its subcommands
func AddSubnetFlag(cmd *cobra.Command, subnet *string, usage string) {
	cmd.PersistentFlags().StringVarP(subnet, config.SubnetKey, "s", "", usage)
}

// ParseSubnetID parses a --subnet value. The Primary Network is used when empty.
func ParseSubnetID(network *models.Network, subnet string) (ids.ID, error) {
	if subnet == "" {
		return network.PrimaryNetworkID, nil
	}
	subnetID, err := ids.FromString(subnet)
	if err != nil {
		return ids.Empty, fmt.Errorf("invalid subnet ID %q: %w", subnet, err)
	}
	return subnetID, nil
}

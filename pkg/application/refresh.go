// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"context"
	"fmt"

	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/network"
	"github.com/ash-center/ash-cli/pkg/ux"
	"github.com/ash-center/ash-cli/sdk/utils"

	"github.com/ava-labs/avalanchego/ids"
)

// RefreshSubnets discovers the Subnets of [net], retrying transient failures
func (app *Ash) RefreshSubnets(ctx context.Context, net *models.Network) error {
	refresher, err := app.NewRefresher()
	if err != nil {
		return err
	}
	return ux.Logger.Spin(fmt.Sprintf("Fetching subnets of %s", net.Name), func() error {
		_, err := utils.RetryTransient(ctx, app.Retries(), network.IsRetriable, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, refresher.RefreshSubnets(ctx, net)
		})
		return err
	})
}

// RefreshBlockchains fetches the blockchains of [subnetIDs], all Subnets when empty.
// Retries only cover the Subnets that failed.
func (app *Ash) RefreshBlockchains(ctx context.Context, net *models.Network, subnetIDs ...ids.ID) error {
	refresher, err := app.NewRefresher()
	if err != nil {
		return err
	}
	return ux.Logger.Spin(fmt.Sprintf("Fetching blockchains of %s", net.Name), func() error {
		return refresher.RefreshBlockchainsWithRetry(ctx, net, app.Retries(), subnetIDs...)
	})
}

func (app *Ash) RefreshValidators(ctx context.Context, net *models.Network, subnetID ids.ID) error {
	refresher, err := app.NewRefresher()
	if err != nil {
		return err
	}
	return ux.Logger.Spin(fmt.Sprintf("Fetching validators of subnet %s", subnetID), func() error {
		_, err := utils.RetryTransient(ctx, app.Retries(), network.IsRetriable, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, refresher.RefreshValidators(ctx, net, subnetID)
		})
		return err
	})
}

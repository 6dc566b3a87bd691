// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"context"
	"errors"

	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"
	"github.com/ash-center/ash-cli/sdk/utils"

	"github.com/ava-labs/avalanchego/ids"
	"go.uber.org/zap"
)

// IsRetriable tells whether a refresh failure may clear up on a new attempt.
// A partial failure is retriable only when all of its causes are.
func IsRetriable(err error) bool {
	var partialErr *PartialFailureError
	if errors.As(err, &partialErr) {
		return partialErr.Retriable()
	}
	return jsonrpc.IsRetriable(err)
}

// RefreshBlockchainsWithRetry runs RefreshBlockchains up to [maxAttempts]
// times, each new attempt covering only the Subnets that failed the previous one.
// The returned partial failure lists every Subnet merged along the way.
func (r *Refresher) RefreshBlockchainsWithRetry(
	ctx context.Context,
	network *models.Network,
	maxAttempts int,
	subnetIDs ...ids.ID,
) error {
	targets := subnetIDs
	var succeeded []ids.ID
	attempt := 0
	_, err := utils.RetryTransient(ctx, maxAttempts, IsRetriable, func(ctx context.Context) (struct{}, error) {
		attempt++
		if attempt > 1 {
			r.log().Info("retrying blockchain refresh",
				zap.String("network", network.Name),
				zap.Int("attempt", attempt),
				zap.Int("subnets", len(targets)),
			)
		}
		err := r.RefreshBlockchains(ctx, network, targets...)
		var partialErr *PartialFailureError
		if errors.As(err, &partialErr) {
			succeeded = append(succeeded, partialErr.Succeeded...)
			targets = partialErr.FailedIDs()
		}
		return struct{}{}, err
	})
	var partialErr *PartialFailureError
	if errors.As(err, &partialErr) {
		partialErr.Succeeded = succeeded
	}
	return err
}

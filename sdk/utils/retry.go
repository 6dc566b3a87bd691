// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"context"
	"fmt"

	"github.com/ash-center/ash-cli/sdk/constants"

	"github.com/cenkalti/backoff/v4"
)

// RetryTransient calls [fn] until it succeeds, returns an error [isRetriable]
// rejects, [ctx] is done, or [maxAttempts] calls have been made.
// maxAttempts <= 1 means a single call with no retry.
func RetryTransient[T any](
	ctx context.Context,
	maxAttempts int,
	isRetriable func(error) bool,
	fn func(context.Context) (T, error),
) (T, error) {
	if maxAttempts <= 1 {
		return fn(ctx)
	}
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = constants.DefaultRetryInitialInterval
	expBackoff.MaxInterval = constants.DefaultRetryMaxInterval
	expBackoff.MaxElapsedTime = 0
	policy := backoff.WithContext(
		backoff.WithMaxRetries(expBackoff, uint64(maxAttempts-1)),
		ctx,
	)
	attempts := 0
	result, err := backoff.RetryWithData(func() (T, error) {
		attempts++
		result, err := fn(ctx)
		if err != nil && !isRetriable(err) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}, policy)
	if err != nil && attempts >= maxAttempts && isRetriable(err) {
		return result, fmt.Errorf("maximum retry attempts %d reached: %w", maxAttempts, err)
	}
	return result, err
}

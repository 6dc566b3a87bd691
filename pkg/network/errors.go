// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ash-center/ash-cli/sdk/jsonrpc"

	"github.com/ava-labs/avalanchego/ids"
)

// ErrPartialFailure matches every *PartialFailureError with errors.Is
var ErrPartialFailure = errors.New("partial failure")

// PartialFailureError reports a batch refresh where some Subnets failed.
// Succeeded Subnets were merged into the tree.
type PartialFailureError struct {
	Network   string
	Operation string
	Succeeded []ids.ID
	Failed    map[ids.ID]error
}

func (e *PartialFailureError) Error() string {
	failed := e.FailedIDs()
	msgs := make([]string, 0, len(failed))
	for _, id := range failed {
		msgs = append(msgs, fmt.Sprintf("%s: %v", id, e.Failed[id]))
	}
	return fmt.Sprintf("%s of network %s failed for %d of %d subnets: %s",
		e.Operation,
		e.Network,
		len(e.Failed),
		len(e.Failed)+len(e.Succeeded),
		strings.Join(msgs, "; "),
	)
}

func (*PartialFailureError) Is(target error) bool {
	return target == ErrPartialFailure
}

// Unwrap exposes every per-Subnet cause
func (e *PartialFailureError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, id := range e.FailedIDs() {
		errs = append(errs, e.Failed[id])
	}
	return errs
}

// FailedIDs returns the failed Subnet IDs in a stable order
func (e *PartialFailureError) FailedIDs() []ids.ID {
	failed := make([]ids.ID, 0, len(e.Failed))
	for id := range e.Failed {
		failed = append(failed, id)
	}
	sort.Slice(failed, func(i, j int) bool {
		return failed[i].Compare(failed[j]) < 0
	})
	return failed
}

// Retriable tells whether every failure may clear up on a new attempt
func (e *PartialFailureError) Retriable() bool {
	for _, err := range e.Failed {
		if !jsonrpc.IsRetriable(err) {
			return false
		}
	}
	return len(e.Failed) > 0
}

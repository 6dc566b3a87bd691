// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package clierrors

import (
	"errors"

	"github.com/ash-center/ash-cli/pkg/config"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/network"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"
)

var (
	ErrConfig         = config.ErrConfig
	ErrTransport      = jsonrpc.ErrTransport
	ErrRPC            = jsonrpc.ErrRPC
	ErrDecode         = jsonrpc.ErrDecode
	ErrNotFound       = models.ErrNotFound
	ErrPartialFailure = network.ErrPartialFailure

	ErrNoRPCURL          = errors.New("blockchain has no RPC URL, set its rpcUrl in the configuration or refresh the network")
	ErrProbeNotSupported = errors.New("probing is not supported for this VM type")
)

// Kind names the error category shown to the user
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPartialFailure):
		return "partial failure"
	case errors.Is(err, ErrConfig):
		return "configuration error"
	case errors.Is(err, ErrNotFound):
		return "not found"
	case errors.Is(err, ErrTransport):
		return "transport error"
	case errors.Is(err, ErrRPC):
		return "RPC error"
	case errors.Is(err, ErrDecode):
		return "decode error"
	default:
		return "error"
	}
}

// PartialFailure extracts the per-Subnet outcome of a batch refresh
func PartialFailure(err error) (*network.PartialFailureError, bool) {
	var partialErr *network.PartialFailureError
	if errors.As(err, &partialErr) {
		return partialErr, true
	}
	return nil, false
}

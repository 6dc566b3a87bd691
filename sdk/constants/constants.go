// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	// http
	APIRequestTimeout = 30 * time.Second

	// node API endpoints, relative to the node base URL
	InfoAPIEndpoint      = "/ext/info"
	PChainAPIEndpoint    = "/ext/bc/P"
	XChainAPIEndpoint    = "/ext/bc/X"
	BlockchainAPIPrefix  = "/ext/bc/"
	ExtAPIPathSeparator  = "/ext/"
	EVMRPCEndpointSuffix = "/rpc"

	// refresh fan-out
	DefaultMaxConcurrentRequests = 8

	// retries on transient failures
	DefaultRetryInitialInterval = 500 * time.Millisecond
	DefaultRetryMaxInterval     = 5 * time.Second

	// files
	WriteReadUserOnlyPerms    = 0o600
	WriteReadUserOnlyDirPerms = 0o700
)

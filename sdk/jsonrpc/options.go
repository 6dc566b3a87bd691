// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package jsonrpc

import (
	"time"

	"github.com/ash-center/ash-cli/sdk/constants"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/prometheus/client_golang/prometheus"
)

type Option func(*options)

type options struct {
	timeout            time.Duration
	caCertFile         string
	caCertPEM          []byte
	insecureSkipVerify bool
	registerer         prometheus.Registerer
	log                logging.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		timeout: constants.APIRequestTimeout,
		log:     logging.NoLog{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTimeout bounds every request, connect to last byte read
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithCACertFile trusts the PEM certificates found at [path] in addition to the system roots
func WithCACertFile(path string) Option {
	return func(o *options) {
		o.caCertFile = path
	}
}

// WithCACertPEM trusts the given PEM certificates in addition to the system roots
func WithCACertPEM(pem []byte) Option {
	return func(o *options) {
		o.caCertPEM = pem
	}
}

// WithInsecureSkipVerify disables server certificate verification
func WithInsecureSkipVerify() Option {
	return func(o *options) {
		o.insecureSkipVerify = true
	}
}

// WithRegisterer exports request metrics to [registerer]
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = registerer
	}
}

func WithLogger(log logging.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

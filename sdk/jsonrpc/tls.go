// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package jsonrpc

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"
	"os"
)

var errNoPEMCertificates = errors.New("no PEM certificates found")

func newTransport(o *options) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if o.caCertFile == "" && len(o.caCertPEM) == 0 && !o.insecureSkipVerify {
		return transport, nil
	}
	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: o.insecureSkipVerify, //nolint:gosec
	}
	if o.caCertFile != "" || len(o.caCertPEM) != 0 {
		rootCAs, err := certPool(o)
		if err != nil {
			return nil, err
		}
		tlsConfig.RootCAs = rootCAs
	}
	transport.TLSClientConfig = tlsConfig
	return transport, nil
}

// certPool starts from the system roots so public endpoints keep working
// alongside private ones signed by the supplied CA.
func certPool(o *options) (*x509.CertPool, error) {
	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if o.caCertFile != "" {
		pemBytes, err := os.ReadFile(o.caCertFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate file %s: %w", o.caCertFile, err)
		}
		if !pool.AppendCertsFromPEM(pemBytes) {
			return nil, fmt.Errorf("%w in %s", errNoPEMCertificates, o.caCertFile)
		}
	}
	if len(o.caCertPEM) != 0 && !pool.AppendCertsFromPEM(o.caCertPEM) {
		return nil, errNoPEMCertificates
	}
	return pool, nil
}

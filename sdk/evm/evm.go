// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strings"

	"github.com/ash-center/ash-cli/sdk/jsonrpc"

	"github.com/ava-labs/libevm/ethclient"
	"github.com/ava-labs/libevm/rpc"
)

// used to mock the connection function
var rpcDialOptions = rpc.DialOptions

// Client wraps over ethclient for the read-only calls used to probe an EVM chain.
// Failures are reported with the jsonrpc error taxonomy.
type Client struct {
	EthClient *ethclient.Client
	URL       string
}

// ChainInfo is what a probe learns about an EVM chain
type ChainInfo struct {
	ChainID     *big.Int `json:"chainID"`
	BlockNumber uint64   `json:"blockNumber"`
}

// indicates if the given rpc url has schema or not
func HasScheme(rpcURL string) (bool, error) {
	if parsedURL, err := url.Parse(rpcURL); err != nil {
		if !strings.Contains(err.Error(), "first path segment in URL cannot contain colon") {
			return false, err
		}
		return false, nil
	} else {
		return strings.Contains(rpcURL, "://") && parsedURL.Scheme != "", nil
	}
}

// GetClient connects to [rpcURL] using [httpClient] for transport, so the
// caller's TLS trust roots and timeout apply. URLs without scheme are taken as https.
func GetClient(ctx context.Context, rpcURL string, httpClient *http.Client) (*Client, error) {
	hasScheme, err := HasScheme(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failure determining the scheme of url %s: %w", rpcURL, err)
	}
	if !hasScheme {
		rpcURL = "https://" + rpcURL
	}
	opts := []rpc.ClientOption{}
	if httpClient != nil {
		opts = append(opts, rpc.WithHTTPClient(httpClient))
	}
	rpcClient, err := rpcDialOptions(ctx, rpcURL, opts...)
	if err != nil {
		return nil, &jsonrpc.TransportError{URL: rpcURL, Method: "dial", Err: err}
	}
	return &Client{
		EthClient: ethclient.NewClient(rpcClient),
		URL:       rpcURL,
	}, nil
}

// closes underlying ethclient connection
func (client *Client) Close() {
	client.EthClient.Close()
}

func (client *Client) ChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := client.EthClient.ChainID(ctx)
	if err != nil {
		return nil, client.classify("eth_chainId", err)
	}
	return chainID, nil
}

func (client *Client) BlockNumber(ctx context.Context) (uint64, error) {
	blockNumber, err := client.EthClient.BlockNumber(ctx)
	if err != nil {
		return 0, client.classify("eth_blockNumber", err)
	}
	return blockNumber, nil
}

// Probe returns the chain ID and the last accepted block number
func (client *Client) Probe(ctx context.Context) (ChainInfo, error) {
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return ChainInfo{}, err
	}
	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		return ChainInfo{}, err
	}
	return ChainInfo{ChainID: chainID, BlockNumber: blockNumber}, nil
}

func (client *Client) classify(method string, err error) error {
	var (
		httpErr   rpc.HTTPError
		rpcErr    rpc.Error
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &httpErr):
		return &jsonrpc.TransportError{URL: client.URL, Method: method, StatusCode: httpErr.StatusCode, Err: err}
	case errors.As(err, &rpcErr):
		e := &jsonrpc.RPCError{URL: client.URL, Method: method, Code: rpcErr.ErrorCode(), Message: rpcErr.Error()}
		var dataErr rpc.DataError
		if errors.As(err, &dataErr) {
			e.Data = dataErr.ErrorData()
		}
		return e
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return &jsonrpc.DecodeError{URL: client.URL, Method: method, Err: err}
	}
	return &jsonrpc.TransportError{URL: client.URL, Method: method, Err: err}
}

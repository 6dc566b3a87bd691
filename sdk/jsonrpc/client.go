// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/gorilla/rpc/v2/json2"
	"go.uber.org/zap"
)

// Client sends JSON-RPC 2.0 requests over HTTP.
// It keeps no per-request state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	log        logging.Logger
	metrics    *metrics
}

func NewClient(opts ...Option) (*Client, error) {
	o := newOptions(opts)
	transport, err := newTransport(o)
	if err != nil {
		return nil, err
	}
	c := &Client{
		httpClient: &http.Client{
			Timeout:   o.timeout,
			Transport: transport,
		},
		log: o.log,
	}
	if o.registerer != nil {
		c.metrics, err = newMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to register json-rpc metrics: %w", err)
		}
	}
	return c, nil
}

// HTTPClient returns the underlying client, sharing timeout and TLS trust roots
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Call sends [method] with [params] to [url] and decodes the result into [reply].
// The returned error is a *TransportError, *RPCError or *DecodeError.
func (c *Client) Call(ctx context.Context, url string, method string, params interface{}, reply interface{}) error {
	start := time.Now()
	err := c.call(ctx, url, method, params, reply)
	elapsed := time.Since(start)
	c.metrics.observe(method, elapsed, err)
	if err != nil {
		c.log.Debug("json-rpc request failed",
			zap.String("method", method),
			zap.String("url", redactURL(url)),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return err
	}
	c.log.Verbo("json-rpc request succeeded",
		zap.String("method", method),
		zap.String("url", redactURL(url)),
		zap.Duration("elapsed", elapsed),
	)
	return nil
}

func (c *Client) call(ctx context.Context, url string, method string, params interface{}, reply interface{}) error {
	// avalanchego services reject a null params field
	if params == nil {
		params = struct{}{}
	}
	requestBody, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", method, err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return &TransportError{URL: url, Method: method, Err: err}
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return &TransportError{URL: url, Method: method, Err: err}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{URL: url, Method: method, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// some gateways answer JSON-RPC errors with a non-2xx status
		var raw json.RawMessage
		var serverErr *json2.Error
		if err := json2.DecodeClientResponse(bytes.NewReader(responseBody), &raw); errors.As(err, &serverErr) {
			return newRPCError(url, method, serverErr)
		}
		return &TransportError{
			URL:        url,
			Method:     method,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response %q", truncate(responseBody)),
		}
	}

	err = json2.DecodeClientResponse(bytes.NewReader(responseBody), reply)
	var serverErr *json2.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &serverErr):
		return newRPCError(url, method, serverErr)
	default:
		return &DecodeError{URL: url, Method: method, Err: err}
	}
}

func newRPCError(url string, method string, serverErr *json2.Error) *RPCError {
	return &RPCError{
		URL:     url,
		Method:  method,
		Code:    int(serverErr.Code),
		Message: serverErr.Message,
		Data:    serverErr.Data,
	}
}

const maxErrorBodyLen = 256

func truncate(body []byte) string {
	if len(body) > maxErrorBodyLen {
		return string(body[:maxErrorBodyLen]) + "..."
	}
	return string(body)
}

// Caller is implemented by *Client. API clients accept it so tests can stub the transport.
type Caller interface {
	Call(ctx context.Context, url string, method string, params interface{}, reply interface{}) error
}

var _ Caller = (*Client)(nil)

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package jsonrpc

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ash-center/ash-cli/sdk/constants"
)

const redacted = "xxxxx"

var (
	// ErrTransport matches every *TransportError with errors.Is
	ErrTransport = errors.New("transport error")
	// ErrRPC matches every *RPCError with errors.Is
	ErrRPC = errors.New("rpc error")
	// ErrDecode matches every *DecodeError with errors.Is
	ErrDecode = errors.New("decode error")
)

// JSON-RPC error codes the server uses for conditions that may clear up on their own
const (
	CodeInternalError = -32603
	CodeLimitExceeded = -32005
)

// TransportError is returned when the request could not be delivered or the
// response could not be read: connection refused, timeout, TLS failure, or a
// non-2xx HTTP status without a JSON-RPC body.
type TransportError struct {
	URL        string
	Method     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to call %s on %s: HTTP status %d: %v", e.Method, redactURL(e.URL), e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to call %s on %s: %v", e.Method, redactURL(e.URL), e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (*TransportError) Is(target error) bool {
	return target == ErrTransport
}

// RPCError is a well formed JSON-RPC error response
type RPCError struct {
	URL     string
	Method  string
	Code    int
	Message string
	Data    interface{}
}

func (e *RPCError) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("%s on %s returned error code %d: %s (data: %v)", e.Method, redactURL(e.URL), e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("%s on %s returned error code %d: %s", e.Method, redactURL(e.URL), e.Code, e.Message)
}

func (*RPCError) Is(target error) bool {
	return target == ErrRPC
}

// Transient tells whether the server reported a condition worth retrying
func (e *RPCError) Transient() bool {
	switch e.Code {
	case CodeInternalError, CodeLimitExceeded:
		return true
	}
	return false
}

// DecodeError is returned when the response body is not valid JSON-RPC or
// the result does not match the expected shape.
type DecodeError struct {
	URL    string
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response from %s: %v", e.Method, redactURL(e.URL), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (*DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// IsRetriable reports whether a caller may retry the request that produced [err]
func IsRetriable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Transient()
	}
	return false
}

// ErrorKind classifies [err] as one of transport, rpc, decode or other
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrRPC):
		return "rpc"
	case errors.Is(err, ErrDecode):
		return "decode"
	default:
		return "other"
	}
}

// redactURL hides the credentials a provider URL may carry: the password,
// the path in front of /ext/ (e.g. <endpoint>/<token>/ext/bc/P) and the query
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return redacted
	}
	if i := strings.Index(u.Path, constants.ExtAPIPathSeparator); i > 0 {
		u.Path = "/" + redacted + u.Path[i:]
		u.RawPath = ""
	}
	if u.RawQuery != "" {
		u.RawQuery = redacted
	}
	return u.Redacted()
}

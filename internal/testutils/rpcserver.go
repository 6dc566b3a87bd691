// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const codeMethodNotFound = -32601

// RPCServerError is the error object of a JSON-RPC 2.0 response
type RPCServerError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RPCHandler answers a single JSON-RPC method. Returning a non nil error
// object produces an error response instead of a result.
type RPCHandler func(params json.RawMessage) (interface{}, *RPCServerError)

type rpcRequest struct {
	Version string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      json.RawMessage `json:"id"`
}

type rpcResponse struct {
	Version string          `json:"jsonrpc"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *RPCServerError `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

// RPCServer is a JSON-RPC 2.0 fake served over httptest.
// Every path of the server answers with the same method table.
type RPCServer struct {
	*httptest.Server

	lock     sync.Mutex
	handlers map[string]RPCHandler
	calls    map[string]int
	params   map[string][]json.RawMessage
}

func NewRPCServer(t *testing.T) *RPCServer {
	s := newRPCServer()
	s.Server = httptest.NewServer(s)
	t.Cleanup(s.Close)
	return s
}

func NewTLSRPCServer(t *testing.T) *RPCServer {
	s := newRPCServer()
	s.Server = httptest.NewTLSServer(s)
	t.Cleanup(s.Close)
	return s
}

func newRPCServer() *RPCServer {
	return &RPCServer{
		handlers: map[string]RPCHandler{},
		calls:    map[string]int{},
		params:   map[string][]json.RawMessage{},
	}
}

func (s *RPCServer) Handle(method string, handler RPCHandler) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.handlers[method] = handler
}

// HandleResult answers [method] with a fixed result
func (s *RPCServer) HandleResult(method string, result interface{}) {
	s.Handle(method, func(json.RawMessage) (interface{}, *RPCServerError) {
		return result, nil
	})
}

// HandleError answers [method] with a fixed error object
func (s *RPCServer) HandleError(method string, code int, message string) {
	s.Handle(method, func(json.RawMessage) (interface{}, *RPCServerError) {
		return nil, &RPCServerError{Code: code, Message: message}
	})
}

// Calls returns how many times [method] was requested
func (s *RPCServer) Calls(method string) int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.calls[method]
}

// Params returns the raw params of every [method] request, in arrival order
func (s *RPCServer) Params(method string) []json.RawMessage {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]json.RawMessage(nil), s.params[method]...)
}

func (s *RPCServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.lock.Lock()
	handler, ok := s.handlers[req.Method]
	s.calls[req.Method]++
	s.params[req.Method] = append(s.params[req.Method], req.Params)
	s.lock.Unlock()

	resp := rpcResponse{Version: "2.0", ID: req.ID}
	if !ok {
		resp.Error = &RPCServerError{Code: codeMethodNotFound, Message: "method not found: " + req.Method}
	} else {
		resp.Result, resp.Error = handler(req.Params)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

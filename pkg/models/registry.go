// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"github.com/ash-center/ash-cli/pkg/console"
)

// Registry holds every network known to the configuration.
// It is read-mostly once loaded; each Network tree has a single writer.
type Registry struct {
	Networks []*Network      `json:"avalancheNetworks"`
	Console  *console.Config `json:"ashConsole,omitempty"`
}

func (r *Registry) Get(name string) (*Network, error) {
	for _, network := range r.Networks {
		if network.Name == name {
			return network, nil
		}
	}
	return nil, &NotFoundError{Kind: NetworkKind, Key: name}
}

func (r *Registry) NetworkNames() []string {
	names := make([]string, 0, len(r.Networks))
	for _, network := range r.Networks {
		names = append(names, network.Name)
	}
	return names
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every *NotFoundError with errors.Is
var ErrNotFound = errors.New("not found")

const (
	NetworkKind    = "network"
	SubnetKind     = "subnet"
	BlockchainKind = "blockchain"
	ValidatorKind  = "validator"
)

// NotFoundError reports an unknown network, Subnet, blockchain or validator
type NotFoundError struct {
	Kind   string
	Key    string
	Parent string
}

func (e *NotFoundError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
	}
	return fmt.Sprintf("%s %s not found in %s", e.Kind, e.Key, e.Parent)
}

func (*NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
)

// ErrConfig matches every *Error with errors.Is
var ErrConfig = errors.New("configuration error")

// Error reports a configuration document that is malformed or inconsistent
type Error struct {
	// Source is the file the document was read from, or "default"
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid configuration %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (*Error) Is(target error) bool {
	return target == ErrConfig
}

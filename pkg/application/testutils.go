// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"testing"

	"github.com/ash-center/ash-cli/pkg/config"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/afero"
)

// NewTestApp returns an app on an in-memory filesystem
func NewTestApp(t *testing.T) *Ash {
	app := New()
	app.Setup(t.TempDir(), logging.NoLog{}, config.New(), afero.NewMemMapFs())
	return app
}

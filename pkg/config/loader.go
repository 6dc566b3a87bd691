// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/sdk/constants"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const DefaultSource = "default"

//go:embed default.yml
var defaultDocument []byte

// DefaultDocument returns the configuration shipped with the binary
func DefaultDocument() []byte {
	return append([]byte(nil), defaultDocument...)
}

// Loader builds a Registry from a default document and optional override files
type Loader struct {
	fs       afero.Fs
	defaults []byte
	log      logging.Logger
}

func NewLoader(fs afero.Fs, defaults []byte, log logging.Logger) *Loader {
	if log == nil {
		log = logging.NoLog{}
	}
	return &Loader{
		fs:       fs,
		defaults: defaults,
		log:      log,
	}
}

// Load parses the default document, then each of [paths] in order.
// Missing files are skipped. A network defined in a later document replaces
// the network of the same name; new networks are appended. A later ashConsole
// block replaces the earlier one.
func (l *Loader) Load(paths ...string) (*models.Registry, error) {
	registry := &models.Registry{Networks: []*models.Network{}}
	if err := l.merge(registry, DefaultSource, l.defaults); err != nil {
		return nil, err
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		exists, err := afero.Exists(l.fs, path)
		if err != nil {
			return nil, &Error{Source: path, Err: err}
		}
		if !exists {
			l.log.Debug("configuration file not found, skipping", zap.String("config-file", path))
			continue
		}
		data, err := afero.ReadFile(l.fs, path)
		if err != nil {
			return nil, &Error{Source: path, Err: err}
		}
		l.log.Debug("merging configuration file", zap.String("config-file", path))
		if err := l.merge(registry, path, data); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func (*Loader) merge(registry *models.Registry, source string, data []byte) error {
	doc, err := ParseDocument(data)
	if err != nil {
		return &Error{Source: source, Err: err}
	}
	networks, err := doc.Networks()
	if err != nil {
		return &Error{Source: source, Err: err}
	}
	if doc.AshConsole != nil {
		if err := doc.AshConsole.Validate(); err != nil {
			return &Error{Source: source, Err: fmt.Errorf("ashConsole: %w", err)}
		}
		registry.Console = doc.AshConsole
	}
	for _, network := range networks {
		replaced := false
		for i, existing := range registry.Networks {
			if existing.Name == network.Name {
				registry.Networks[i] = network
				replaced = true
				break
			}
		}
		if !replaced {
			registry.Networks = append(registry.Networks, network)
		}
	}
	return nil
}

// Dump serializes [registry] back to the configuration layout
func Dump(registry *models.Registry) ([]byte, error) {
	return DocumentFromRegistry(registry).Marshal()
}

// WriteDefault writes the default configuration to [path].
// An existing file is only overwritten when [force] is set.
func WriteDefault(fs afero.Fs, path string, force bool) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("configuration file %s already exists, use --force to overwrite it", path)
	}
	if err := fs.MkdirAll(filepath.Dir(path), constants.WriteReadUserOnlyDirPerms); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, defaultDocument, os.FileMode(constants.WriteReadUserOnlyPerms))
}

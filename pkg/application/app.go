// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/ash-center/ash-cli/pkg/config"
	"github.com/ash-center/ash-cli/pkg/constants"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/network"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"
	"github.com/ash-center/ash-cli/sdk/utils"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Ash struct {
	Log     logging.Logger
	baseDir string
	Conf    *config.Config
	FS      afero.Fs

	defaults []byte

	lock     sync.Mutex
	registry *models.Registry
	rpc      *jsonrpc.Client
}

func New() *Ash {
	return &Ash{}
}

func (app *Ash) Setup(baseDir string, log logging.Logger, conf *config.Config, fs afero.Fs) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.FS = fs
	app.defaults = config.DefaultDocument()
}

func (app *Ash) GetBaseDir() string {
	return app.baseDir
}

func (app *Ash) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Ash) GetDefaultConfigPath() string {
	return filepath.Join(app.baseDir, constants.DefaultConfigFileName)
}

// ConfigPaths lists the override documents in merge order: the user config
// in the base dir, then the one given with --config or ASH_CONFIG
func (app *Ash) ConfigPaths() []string {
	paths := []string{app.GetDefaultConfigPath()}
	if path := app.Conf.GetConfigStringValue(config.ConfigKey); path != "" {
		if path = utils.ExpandHome(path); path != paths[0] {
			paths = append(paths, path)
		}
	}
	return paths
}

// LoadRegistry loads the networks once per process
func (app *Ash) LoadRegistry() (*models.Registry, error) {
	app.lock.Lock()
	defer app.lock.Unlock()
	if app.registry != nil {
		return app.registry, nil
	}
	registry, err := config.NewLoader(app.FS, app.defaults, app.Log).Load(app.ConfigPaths()...)
	if err != nil {
		return nil, err
	}
	app.Log.Debug("configuration loaded", zap.Strings("networks", registry.NetworkNames()))
	app.registry = registry
	return registry, nil
}

// GetNetwork returns a copy of the network selected with --network when [name]
// is empty. Refreshes of the copy leave the loaded registry untouched.
func (app *Ash) GetNetwork(name string) (*models.Network, error) {
	if name == "" {
		name = app.Conf.GetConfigStringValue(config.NetworkKey)
	}
	if name == "" {
		name = constants.DefaultNetwork
	}
	registry, err := app.LoadRegistry()
	if err != nil {
		return nil, err
	}
	network, err := registry.Get(name)
	if err != nil {
		return nil, err
	}
	return network.Clone(), nil
}

// RPCClient builds the JSON-RPC client from the transport settings
func (app *Ash) RPCClient() (*jsonrpc.Client, error) {
	app.lock.Lock()
	defer app.lock.Unlock()
	if app.rpc != nil {
		return app.rpc, nil
	}
	opts := []jsonrpc.Option{jsonrpc.WithLogger(app.Log)}
	if timeout := app.Conf.GetConfigDurationValue(config.TimeoutKey); timeout > 0 {
		opts = append(opts, jsonrpc.WithTimeout(timeout))
	}
	if caFile := app.Conf.GetConfigStringValue(config.CAFileKey); caFile != "" {
		opts = append(opts, jsonrpc.WithCACertFile(utils.ExpandHome(caFile)))
	}
	if app.Conf.GetConfigBoolValue(config.InsecureKey) {
		app.Log.Warn("TLS certificate verification disabled")
		opts = append(opts, jsonrpc.WithInsecureSkipVerify())
	}
	client, err := jsonrpc.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create RPC client: %w", err)
	}
	app.rpc = client
	return client, nil
}

func (app *Ash) NewRefresher() (*network.Refresher, error) {
	client, err := app.RPCClient()
	if err != nil {
		return nil, err
	}
	return network.NewRefresher(client, app.Log), nil
}

// Retries is the number of attempts of retriable refreshes
func (app *Ash) Retries() int {
	if !app.Conf.ConfigValueIsSet(config.RetriesKey) {
		return constants.DefaultRetries
	}
	if retries := app.Conf.GetConfigIntValue(config.RetriesKey); retries > 0 {
		return retries
	}
	return 1
}

func (app *Ash) JSONOutput() bool {
	return app.Conf.GetConfigBoolValue(config.JSONKey)
}

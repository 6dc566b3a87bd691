// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Application setting keys, shared by flags and ASH_ environment variables
const (
	EnvPrefix = "ASH"

	ConfigKey    = "config"
	JSONKey      = "json"
	LogLevelKey  = "log-level"
	CAFileKey    = "ca-file"
	InsecureKey  = "insecure"
	TimeoutKey   = "timeout"
	RetriesKey   = "retries"
	NetworkKey   = "network"
	SubnetKey    = "subnet"
	ForceKey     = "force"
	ProbeKey     = "probe"
	AssetIDKey   = "asset-id"
	HTTPSKey     = "https"
	HTTPHostKey  = "http-host"
	HTTPPortKey  = "http-port"
	ChainKey     = "chain"
	LogLevelInfo = "info"
)

// Config resolves application settings from flags, then environment, then defaults
type Config struct {
	v *viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // read in environment variables that match
	return &Config{v: v}
}

// BindFlags makes every flag of [flags] a setting of the same name
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	return c.v.BindPFlags(flags)
}

func (c *Config) SetDefault(key string, value interface{}) {
	c.v.SetDefault(key, value)
}

// Set overrides any flag, environment or default value of [key]
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) ConfigValueIsSet(key string) bool {
	return c.v.IsSet(key)
}

func (c *Config) GetConfigBoolValue(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetConfigIntValue(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetConfigDurationValue(key string) time.Duration {
	return c.v.GetDuration(key)
}

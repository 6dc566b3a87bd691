// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestConfigFlagsOverrideEnv(t *testing.T) {
	require := require.New(t)
	t.Setenv("ASH_LOG_LEVEL", "debug")
	t.Setenv("ASH_NETWORK", "fuji")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(LogLevelKey, LogLevelInfo, "")
	flags.String(NetworkKey, "mainnet", "")
	flags.Duration(TimeoutKey, 30*time.Second, "")
	flags.Bool(JSONKey, false, "")
	require.NoError(flags.Parse([]string{"--network", "local", "--json"}))

	conf := New()
	require.NoError(conf.BindFlags(flags))

	require.Equal("local", conf.GetConfigStringValue(NetworkKey))
	require.Equal("debug", conf.GetConfigStringValue(LogLevelKey))
	require.True(conf.GetConfigBoolValue(JSONKey))
	require.Equal(30*time.Second, conf.GetConfigDurationValue(TimeoutKey))
}

func TestConfigDefaults(t *testing.T) {
	require := require.New(t)
	conf := New()
	require.False(conf.ConfigValueIsSet(RetriesKey))
	conf.SetDefault(RetriesKey, 3)
	require.True(conf.ConfigValueIsSet(RetriesKey))
	require.Equal(3, conf.GetConfigIntValue(RetriesKey))

	t.Setenv("ASH_RETRIES", "5")
	require.Equal(5, conf.GetConfigIntValue(RetriesKey))
}

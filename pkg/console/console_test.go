// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package console

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testConfig() *Config {
	return &Config{
		APIURL: "https://api.ash.center",
		OAuth2: OAuth2Config{
			ClientID:               "cf83e1357eefb8bd",
			AuthorizationURL:       "https://auth.ash.center/realms/ash/protocol/openid-connect/auth",
			TokenURL:               "https://auth.ash.center/realms/ash/protocol/openid-connect/token",
			IntrospectionURL:       "https://auth.ash.center/realms/ash/protocol/openid-connect/token/introspect",
			DeviceAuthorizationURL: "https://auth.ash.center/realms/ash/protocol/openid-connect/auth/device",
		},
	}
}

func TestValidate(t *testing.T) {
	require := require.New(t)
	require.NoError(testConfig().Validate())

	conf := testConfig()
	conf.APIURL = ""
	require.ErrorIs(conf.Validate(), errMissingAPIURL)

	conf = testConfig()
	conf.OAuth2.TokenURL = "/token"
	require.ErrorContains(conf.Validate(), "oauth2.tokenUrl")
}

func TestOAuth2Client(t *testing.T) {
	require := require.New(t)
	client := testConfig().OAuth2Client("openid")
	require.Equal("cf83e1357eefb8bd", client.ClientID)
	require.Equal([]string{"openid"}, client.Scopes)
	require.Equal("https://auth.ash.center/realms/ash/protocol/openid-connect/token", client.Endpoint.TokenURL)
	require.Equal("https://auth.ash.center/realms/ash/protocol/openid-connect/auth/device", client.Endpoint.DeviceAuthURL)
	require.Equal(oauth2.AuthStyleInParams, client.Endpoint.AuthStyle)
	require.Contains(client.AuthCodeURL("state"), "client_id=cf83e1357eefb8bd")
}

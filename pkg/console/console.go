// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package console

import (
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/oauth2"
)

var errMissingAPIURL = errors.New("ash console API URL is not set")

// Config describes how to reach the Ash Console API and its OAuth2 provider
type Config struct {
	APIURL string       `yaml:"apiUrl" json:"apiUrl"`
	OAuth2 OAuth2Config `yaml:"oauth2" json:"oauth2"`
}

type OAuth2Config struct {
	ClientID               string `yaml:"clientId" json:"clientId"`
	ClientSecret           string `yaml:"clientSecret,omitempty" json:"-"`
	AuthorizationURL       string `yaml:"authorizationUrl" json:"authorizationUrl"`
	TokenURL               string `yaml:"tokenUrl" json:"tokenUrl"`
	IntrospectionURL       string `yaml:"introspectionUrl,omitempty" json:"introspectionUrl,omitempty"`
	DeviceAuthorizationURL string `yaml:"deviceAuthorizationUrl,omitempty" json:"deviceAuthorizationUrl,omitempty"`
	RedirectURL            string `yaml:"redirectUrl,omitempty" json:"redirectUrl,omitempty"`
}

// Validate checks every configured URL is absolute
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return errMissingAPIURL
	}
	for name, rawURL := range map[string]string{
		"apiUrl":                        c.APIURL,
		"oauth2.authorizationUrl":       c.OAuth2.AuthorizationURL,
		"oauth2.tokenUrl":               c.OAuth2.TokenURL,
		"oauth2.introspectionUrl":       c.OAuth2.IntrospectionURL,
		"oauth2.deviceAuthorizationUrl": c.OAuth2.DeviceAuthorizationURL,
	} {
		if rawURL == "" {
			continue
		}
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, rawURL, err)
		}
		if !u.IsAbs() {
			return fmt.Errorf("invalid %s %q: URL must be absolute", name, rawURL)
		}
	}
	return nil
}

// OAuth2Client builds the client configuration for the console identity provider
func (c *Config) OAuth2Client(scopes ...string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.OAuth2.ClientID,
		ClientSecret: c.OAuth2.ClientSecret,
		RedirectURL:  c.OAuth2.RedirectURL,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:       c.OAuth2.AuthorizationURL,
			TokenURL:      c.OAuth2.TokenURL,
			DeviceAuthURL: c.OAuth2.DeviceAuthorizationURL,
			AuthStyle:     oauth2.AuthStyleInParams,
		},
	}
}

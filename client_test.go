// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{
	AccessID:  "test-id",
	AccessKey: "test-key",
	Domain:    "http://api.senscloud.example",
}

func TestNewClient_ok(t *testing.T) {
	client, err := NewClient(testConfig)

	require.NoError(t, err)
	assert.Equal(t, "http://api.senscloud.example", client.EndpointURI.String())
}

func TestNewClient_default_domain(t *testing.T) {
	client, err := NewClient(Config{AccessID: "test-id", AccessKey: "test-key"})

	require.NoError(t, err)
	assert.Equal(t, DefaultDomain, client.EndpointURI.String())
}

func TestNewClient_missing_access_id(t *testing.T) {
	_, err := NewClient(Config{AccessKey: "test-key"})

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "AccessID")
}

func TestNewClient_missing_access_key(t *testing.T) {
	_, err := NewClient(Config{AccessID: "test-id"})

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "AccessKey")
}

func TestNewClient_bad_domain(t *testing.T) {
	_, err := NewClient(Config{
		AccessID:  "test-id",
		AccessKey: "test-key",
		Domain:    "not-a-url",
	})

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewClient_bad_trust_anchor(t *testing.T) {
	_, err := NewClient(Config{
		AccessID:    "test-id",
		AccessKey:   "test-key",
		Domain:      "https://api.senscloud.example",
		TrustAnchor: []byte("not a pem block"),
	})

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "trust anchor")
}

func TestNewClient_trust_anchor_ignored_for_http(t *testing.T) {
	// a plain-HTTP domain never gets trust material attached
	client, err := NewClient(Config{
		AccessID:    "test-id",
		AccessKey:   "test-key",
		Domain:      "http://api.senscloud.example",
		TrustAnchor: []byte("not a pem block"),
	})

	require.NoError(t, err)
	assert.Nil(t, client.Client.HTTPClient.Transport)
}

func TestClient_SetClient_nil_client(t *testing.T) {
	client, err := NewClient(testConfig)
	require.NoError(t, err)

	assert.EqualError(t, client.SetClient(nil), "no client supplied")
}

func TestConfigFromMap_ok(t *testing.T) {
	cfg, err := ConfigFromMap(map[string]interface{}{
		"access_id":  "test-id",
		"access_key": "test-key",
		"domain":     "http://api.senscloud.example",
		"debug":      true,
	})

	require.NoError(t, err)
	assert.Equal(t, "test-id", cfg.AccessID)
	assert.Equal(t, "test-key", cfg.AccessKey)
	assert.Equal(t, "http://api.senscloud.example", cfg.Domain)
	assert.True(t, cfg.Debug)
}

func TestConfigFromMap_unexpected_fields(t *testing.T) {
	_, err := ConfigFromMap(map[string]interface{}{
		"access_id":  "test-id",
		"access_key": "test-key",
		"token":      "nope",
	})

	assert.EqualError(t, err, "unexpected fields in config: token")
}

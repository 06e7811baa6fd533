// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/apex/log"

	"github.com/senscloud/apiclient/auth"
	"github.com/senscloud/apiclient/common"
)

// Client issues signed requests against one Senscloud endpoint. All fields
// derived from the Config are read-only after construction, so concurrent
// in-flight requests never race with each other.
type Client struct {
	// Client is the underlying client used for HTTP requests.
	Client *common.Client

	// EndpointURI is the top-level service API URL. Individual operation
	// paths are relative to this.
	EndpointURI *url.URL

	credentials auth.Credentials
	logger      common.Logger
}

// NewClient validates cfg and constructs a Client. The domain defaults to
// DefaultDomain when unset; missing credentials or an unusable domain fail
// with a *ConfigurationError. When the domain is HTTPS and trust-anchor
// material was supplied, the underlying transport is configured to trust
// it; plain-HTTP domains get the default transport.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}

	domain := cfg.Domain
	if domain == "" {
		domain = DefaultDomain
	}

	u, err := url.Parse(domain)
	if err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("malformed domain %q: %v", domain, err)}
	}

	if !u.IsAbs() || u.Host == "" {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("domain %q is not an absolute URL", domain)}
	}

	hc := common.NewClient()
	if cfg.Timeout != 0 {
		hc.HTTPClient.Timeout = cfg.Timeout
	}

	if u.Scheme == "https" && (len(cfg.TrustAnchor) > 0 || len(cfg.TrustAnchorPaths) > 0) {
		transport, err := auth.NewTLSTransport(cfg.TrustAnchorPaths, cfg.TrustAnchor)
		if err != nil {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("trust anchor: %v", err)}
		}
		hc.HTTPClient.Transport = transport
	}

	logger := cfg.Logger
	if logger == nil && cfg.Debug {
		logger = log.Log
	}

	return &Client{
		Client:      hc,
		EndpointURI: u,
		credentials: auth.Credentials{AccessID: cfg.AccessID, AccessKey: cfg.AccessKey},
		logger:      common.ValidLoggerOrDefault(logger),
	}, nil
}

// SetClient replaces the HTTP(s) client connection configuration, e.g. to
// supply a custom transport in tests.
func (c *Client) SetClient(client *common.Client) error {
	if client == nil {
		return errors.New("no client supplied")
	}
	c.Client = client
	return nil
}

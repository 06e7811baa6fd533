// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"net/http"
	"time"
)

// Client holds configuration data associated with the HTTP(s) session.
// Credentials and trust material are attached once at construction and are
// shared read-only by every request issued through it.
type Client struct {
	HTTPClient http.Client
}

// NewClient instantiates a new Client
func NewClient() *Client {
	return &Client{
		HTTPClient: http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Do executes req on the underlying HTTP client. Transport-level failures
// (DNS, connection refused, timeout, cancellation) are returned as-is;
// classification of completed responses is the caller's concern.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/senscloud/apiclient/auth"
	"github.com/senscloud/apiclient/common"
)

// Request describes one fully-resolved call: the caller has already
// substituted path templates and checked required parameters (Operation
// and Client.Call do both for described operations).
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Query   map[string]interface{}
	Body    map[string]interface{}
	Form    url.Values
}

// Dispatch signs and executes one HTTP call. The signature covers the
// union of Body and Query (Body wins on key collision); the resulting auth
// code travels in the AuthHeader header. A sessionToken entry found in
// Query or Body is promoted to the session-token header and removed from
// the wire representation. Non-empty Form switches the body to
// form-encoding; otherwise a non-nil Body is sent as JSON.
//
// The call blocks until the transport completes, times out, or ctx is
// cancelled; all three transport-level failures return the raw error,
// unclassified and never retried. Completed responses classify as: 204 →
// empty Outcome (body discarded); other 2xx → Outcome with body; anything
// else → *APIError.
func (c *Client) Dispatch(ctx context.Context, req *Request) (*Outcome, error) {
	signed := make(map[string]interface{}, len(req.Query)+len(req.Body))
	for k, v := range req.Query {
		signed[k] = v
	}
	for k, v := range req.Body {
		signed[k] = v
	}

	authCode := auth.SignatureInput{
		Method:     req.Method,
		AccessID:   c.credentials.AccessID,
		AccessKey:  c.credentials.AccessKey,
		Parameters: signed,
		Logger:     c.logger,
	}.AuthCode()

	uri := c.EndpointURI.ResolveReference(&url.URL{Path: req.Path})

	sessionToken := ""

	query := url.Values{}
	for k, v := range req.Query {
		s, ok := auth.FormatValue(v)
		if !ok {
			continue
		}
		if k == auth.SessionTokenParam {
			sessionToken = s
			continue
		}
		query.Set(k, s)
	}
	uri.RawQuery = query.Encode()

	var bodyReader io.Reader
	contentType := ""

	switch {
	case len(req.Form) > 0:
		bodyReader = strings.NewReader(req.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.Body != nil:
		wireBody := req.Body
		if tok, ok := wireBody[auth.SessionTokenParam]; ok {
			if s, ok := auth.FormatValue(tok); ok {
				sessionToken = s
			}
			wireBody = make(map[string]interface{}, len(req.Body))
			for k, v := range req.Body {
				if k != auth.SessionTokenParam {
					wireBody[k] = v
				}
			}
		}
		encoded, err := json.Marshal(wireBody)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, strings.ToUpper(req.Method), uri.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building %s %s request: %w", req.Method, req.Path, err)
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if sessionToken != "" {
		httpReq.Header.Set(SessionTokenHeader, sessionToken)
	}
	httpReq.Header.Set(AuthHeader, authCode)

	c.logger.Debugf("dispatch %s %s", httpReq.Method, uri.String())

	res, err := c.Client.Do(httpReq)
	if err != nil {
		return nil, err
	}

	return c.classify(res)
}

// classify drains the response and maps it onto the Outcome taxonomy. The
// body is decoded as JSON only when the response declares a JSON media
// type; a declared-JSON body that does not parse is passed through raw
// rather than failing the call.
func (c *Client) classify(res *http.Response) (*Outcome, error) {
	defer res.Body.Close()

	if res.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, res.Body)
		return &Outcome{Response: res, Empty: true}, nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var decoded interface{}
	if common.IsJSONMediaType(res.Header.Get("Content-Type")) {
		if err := json.Unmarshal(body, &decoded); err != nil {
			c.logger.Debugf("response body did not parse as JSON: %v", err)
			decoded = nil
		}
	}

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return &Outcome{Response: res, Body: body, JSON: decoded}, nil
	}

	return nil, &APIError{
		Response: res,
		Body:     body,
		JSON:     decoded,
		Problem:  common.ProblemFromResponse(res, body),
	}
}

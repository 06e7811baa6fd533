// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"context"
	"net/url"
	"strings"

	"github.com/senscloud/apiclient/auth"
)

// Operation describes one API endpoint: its verb, path template, and how
// each named parameter travels. The generated endpoint layer reduces to a
// table of Operation values consumed by Client.Call; see the device
// subpackage for the intended shape.
type Operation struct {
	// Name identifies the operation in errors.
	Name string

	// Method is the HTTP verb.
	Method string

	// PathTemplate is the endpoint path with {name} placeholders.
	PathTemplate string

	// Required lists parameters that must be present; absence rejects the
	// call before any signing or network I/O.
	Required []string

	// Path, Query and Body classify parameter names by destination. Path
	// parameters substitute into the template; Query and Body parameters
	// are picked from the supplied map when present.
	Path  []string
	Query []string
	Body  []string

	// Header maps a parameter name to the header carrying it, e.g.
	// sessionToken to the session-token header.
	Header map[string]string
}

// Call checks required parameters, resolves the path template, classifies
// params into query/body/headers per op, and dispatches the result.
func (c *Client) Call(ctx context.Context, op Operation, params map[string]interface{}) (*Outcome, error) {
	for _, name := range op.Required {
		if v, ok := params[name]; !ok || v == nil {
			return nil, &MissingParameterError{Operation: op.Name, Parameter: name}
		}
	}

	path := op.PathTemplate
	for _, name := range op.Path {
		v, ok := auth.FormatValue(params[name])
		if !ok {
			return nil, &MissingParameterError{Operation: op.Name, Parameter: name}
		}
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(v))
	}

	req := Request{Method: op.Method, Path: path}

	for _, name := range op.Query {
		if v, ok := params[name]; ok {
			if req.Query == nil {
				req.Query = make(map[string]interface{})
			}
			req.Query[name] = v
		}
	}

	for _, name := range op.Body {
		if v, ok := params[name]; ok {
			if req.Body == nil {
				req.Body = make(map[string]interface{})
			}
			req.Body[name] = v
		}
	}

	for name, header := range op.Header {
		if v, ok := auth.FormatValue(params[name]); ok {
			if req.Headers == nil {
				req.Headers = make(map[string]string)
			}
			req.Headers[header] = v
		}
	}

	return c.Dispatch(ctx, &req)
}

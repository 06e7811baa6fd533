// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"fmt"
	"net/http"

	"github.com/senscloud/apiclient/common"
)

// MissingParameterError reports a parameter an operation declares required
// but the call site did not supply. It is raised before any signing or
// network I/O.
type MissingParameterError struct {
	Operation string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Operation, e.Parameter)
}

// APIError reports a completed round trip with a non-2xx status. The raw
// body is always retained; JSON and Problem are best-effort decodes and may
// be nil. Transport-level failures are not wrapped in an APIError.
type APIError struct {
	Response *http.Response
	Body     []byte
	JSON     interface{}
	Problem  *common.ProblemError
}

func (e *APIError) Error() string {
	if e.Problem != nil {
		return e.Problem.Error()
	}

	return fmt.Sprintf("unexpected HTTP response code %d", e.Response.StatusCode)
}

// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import "net/http"

// Outcome is the classification of a completed, successful round trip. A
// 204 response yields an empty Outcome; any other 2xx carries the body.
// Non-2xx responses are returned as *APIError instead, never as an Outcome.
type Outcome struct {
	// Response is the raw HTTP response; its body has been drained and
	// closed.
	Response *http.Response

	// Body is the raw response body. Nil for 204 responses, whose body is
	// discarded.
	Body []byte

	// JSON is the best-effort decoded body: non-nil only when the response
	// declared a JSON media type and the body parsed. When decoding fails
	// the raw Body is still available.
	JSON interface{}

	// Empty reports a 204 No Content response.
	Empty bool
}

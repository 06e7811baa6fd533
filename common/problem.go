// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/moogar0880/problems"
)

// ProblemError wraps an RFC 7807 problem document returned by the service
// on a failed call.
type ProblemError struct {
	problems.DefaultProblem
}

func (o *ProblemError) Error() string {
	return fmt.Sprintf("%d %s: %s", o.ProblemStatus(), o.ProblemTitle(), o.Detail)
}

// ProblemFromResponse decodes body into a ProblemError when the response
// declares the problem+json media type. It returns nil when the media type
// does not match or the document does not parse; the caller keeps the raw
// body either way.
func ProblemFromResponse(res *http.Response, body []byte) *ProblemError {
	if res.Header.Get("Content-Type") != problems.ProblemMediaType {
		return nil
	}

	var prob ProblemError

	if err := json.Unmarshal(body, &prob.DefaultProblem); err != nil {
		return nil
	}

	return &prob
}

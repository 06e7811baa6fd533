// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"fmt"
	"mime"
	"net/url"
	"strings"
)

// ResolveReference resolves referenceURI against baseURI unless it is
// already absolute.
func ResolveReference(baseURI, referenceURI string) (string, error) {
	u, err := url.Parse(referenceURI)
	if err != nil {
		return "", fmt.Errorf("parsing reference URI: %w", err)
	}

	if u.IsAbs() {
		return referenceURI, nil
	}

	base, err := url.Parse(baseURI)
	if err != nil {
		return "", fmt.Errorf("parsing base URI: %w", err)
	}

	return base.ResolveReference(u).String(), nil
}

// IsJSONMediaType reports whether a Content-Type header value declares a
// JSON body, either application/json or a +json structured syntax such as
// application/problem+json.
func IsJSONMediaType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/senscloud/apiclient/common"
)

const (
	// DefaultDomain is the production API endpoint, used when Config.Domain
	// is left empty.
	DefaultDomain = "https://api.senscloud.io"

	// AuthHeader carries the computed auth code on every request.
	AuthHeader = "authCode"

	// SessionTokenHeader carries the caller-supplied session token. The
	// value is transmitted only as a header and never participates in
	// signing.
	SessionTokenHeader = "session-token"
)

// Config collects everything needed to construct a Client. It is read by
// NewClient once; the resulting client never mutates it, and all in-flight
// requests share the derived state read-only.
type Config struct {
	// AccessID and AccessKey are the credential pair issued by the
	// platform console.
	AccessID  string `mapstructure:"access_id" validate:"required"`
	AccessKey string `mapstructure:"access_key" validate:"required"`

	// Domain is the API endpoint; DefaultDomain when empty.
	Domain string `mapstructure:"domain" validate:"omitempty,url"`

	// TrustAnchor holds raw PEM certificate material added to the system
	// pool when the domain is HTTPS; TrustAnchorPaths name PEM files to
	// load in addition. Both are ignored for plain-HTTP domains.
	TrustAnchor      []byte   `mapstructure:"trust_anchor"`
	TrustAnchorPaths []string `mapstructure:"trust_anchor_paths"`

	// Debug turns on stage-by-stage reporting of signing and dispatch.
	Debug bool `mapstructure:"debug"`

	// Logger receives debug output. When nil and Debug is set, the
	// apex/log standard logger is used; when nil otherwise, output is
	// discarded. Debug output never affects signing or control flow.
	Logger common.Logger `mapstructure:"-"`

	// Timeout bounds each request round trip; the common.Client default
	// applies when zero.
	Timeout time.Duration `mapstructure:"timeout"`
}

// ConfigurationError reports invalid or missing construction-time settings.
// It is fatal: the client is never partially constructed and nothing is
// retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

var validate = validator.New()

func (cfg Config) check() error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ConfigurationError{
				Reason: fmt.Sprintf("field %s fails %q constraint",
					verrs[0].Field(), verrs[0].Tag()),
			}
		}
		return &ConfigurationError{Reason: err.Error()}
	}

	return nil
}

// ConfigFromMap decodes a settings map (e.g. loaded from a config file)
// into a Config, rejecting unexpected fields. Validation happens in
// NewClient, not here.
func ConfigFromMap(m map[string]interface{}) (Config, error) {
	var decoded struct {
		Config `mapstructure:",squash"`
		Rest   map[string]interface{} `mapstructure:",remain"`
	}

	if err := mapstructure.Decode(m, &decoded); err != nil {
		return Config{}, err
	}

	if len(decoded.Rest) > 0 {
		var unexpected []string
		for k := range decoded.Rest {
			unexpected = append(unexpected, k)
		}
		return Config{}, fmt.Errorf("unexpected fields in config: %s",
			joinSorted(unexpected))
	}

	return decoded.Config, nil
}

func joinSorted(keys []string) string {
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Credentials identify the API caller: AccessID names the account and
// AccessKey is the HMAC secret proven by every signed request. Both are
// issued out-of-band and are immutable for the lifetime of a client.
type Credentials struct {
	AccessID  string
	AccessKey string
}

// Configure populates the Credentials from a settings map, rejecting
// unexpected fields.
func (o *Credentials) Configure(cfg map[string]interface{}) error {
	decoded := struct {
		AccessID  string                 `mapstructure:"access_id"`
		AccessKey string                 `mapstructure:"access_key"`
		Rest      map[string]interface{} `mapstructure:",remain"`
	}{}

	if err := mapstructure.Decode(cfg, &decoded); err != nil {
		return err
	}

	o.AccessID = decoded.AccessID
	o.AccessKey = decoded.AccessKey

	if err := o.Validate(); err != nil {
		return err
	}

	if len(decoded.Rest) > 0 {
		var unexpected []string
		for k := range decoded.Rest {
			unexpected = append(unexpected, k)
		}
		sort.Strings(unexpected)
		return fmt.Errorf("unexpected fields in config: %s",
			strings.Join(unexpected, ", "))
	}

	return nil
}

// Validate checks that both halves of the credential pair are present.
func (o *Credentials) Validate() error {
	if o.AccessID == "" {
		return errors.New("missing access ID")
	}

	if o.AccessKey == "" {
		return errors.New("missing access key")
	}

	return nil
}

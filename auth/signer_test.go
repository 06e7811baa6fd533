// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testAccessID  = "AID"
	testAccessKey = "KEY"
	testNonce     = "N1"
	testTimestamp = int64(1000)
)

func testInput(params map[string]interface{}) SignatureInput {
	return SignatureInput{
		Method:     "GET",
		AccessID:   testAccessID,
		AccessKey:  testAccessKey,
		Nonce:      testNonce,
		Timestamp:  testTimestamp,
		Parameters: params,
	}
}

func TestSignatureInput_AuthCode_known_vector(t *testing.T) {
	// Vector checked against an independent HMAC-SHA1 implementation:
	// prefix "accessId=AID&nonce=N1&timestamp=1000", signature content
	// "GET-z=1" (the "a" key is dropped for being empty).
	expected := "accessId=AID&nonce=N1&timestamp=1000&signature=CoKlxHRIaniCVh4P7iAVuZIvWuw%3D"

	got := testInput(map[string]interface{}{"z": "1", "a": ""}).AuthCode()

	assert.Equal(t, expected, got)
}

func TestSignatureInput_AuthCode_known_vector_post(t *testing.T) {
	// Signature content:
	// "POST-active=false&count=0&ids=%5B1%2C2%5D&name=pump"
	expected := "accessId=acct-1&nonce=00000000-0000-1000-8000-000000000000&timestamp=1700000000000" +
		"&signature=He%2BgENvz6HQcHFmTBNYdNHt2ajg%3D"

	got := SignatureInput{
		Method:    "post",
		AccessID:  "acct-1",
		AccessKey: "s3cr3t",
		Nonce:     "00000000-0000-1000-8000-000000000000",
		Timestamp: 1700000000000,
		Parameters: map[string]interface{}{
			"name":   "pump",
			"count":  0,
			"active": false,
			"ids":    []int{1, 2},
		},
	}.AuthCode()

	assert.Equal(t, expected, got)
}

func TestSignatureInput_AuthCode_deterministic(t *testing.T) {
	in := testInput(map[string]interface{}{"b": "2", "a": "1", "c": 3})

	first := in.AuthCode()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, in.AuthCode())
	}
}

func TestSignatureInput_AuthCode_key_order_invariance(t *testing.T) {
	forward := map[string]interface{}{}
	forward["a"] = 1
	forward["b"] = 2

	backward := map[string]interface{}{}
	backward["b"] = 2
	backward["a"] = 1

	assert.Equal(t,
		testInput(forward).AuthCode(),
		testInput(backward).AuthCode(),
	)
}

func TestSignatureInput_AuthCode_session_token_excluded(t *testing.T) {
	without := testInput(map[string]interface{}{"z": "1"}).AuthCode()
	with := testInput(map[string]interface{}{"z": "1", SessionTokenParam: "X"}).AuthCode()

	assert.Equal(t, without, with)
}

func TestSignatureInput_AuthCode_fresh_nonce_per_call(t *testing.T) {
	in := SignatureInput{
		Method:     "GET",
		AccessID:   testAccessID,
		AccessKey:  testAccessKey,
		Parameters: map[string]interface{}{"z": "1"},
	}

	shape := regexp.MustCompile(`^accessId=AID&nonce=[0-9a-f-]+&timestamp=\d+&signature=.+$`)

	first := in.AuthCode()
	second := in.AuthCode()

	require.Regexp(t, shape, first)
	require.Regexp(t, shape, second)
	assert.NotEqual(t, first, second)
}

func TestSignatureInput_AuthCode_logger_does_not_change_output(t *testing.T) {
	in := testInput(map[string]interface{}{"z": "1"})
	silent := in.AuthCode()

	in.Logger = &capturingLogger{}
	assert.Equal(t, silent, in.AuthCode())
}

func TestCanonicalQuery_falsy_values(t *testing.T) {
	got := CanonicalQuery(map[string]interface{}{
		"a": 0,
		"b": false,
		"c": "",
		"d": nil,
	})

	assert.Equal(t, "a=0&b=false", got)
}

func TestCanonicalQuery_structured_values(t *testing.T) {
	assert.Equal(t, "ids=%5B1%2C2%5D",
		CanonicalQuery(map[string]interface{}{"ids": []int{1, 2}}))

	assert.Equal(t, "filter=%7B%22k%22%3A%22v%22%7D",
		CanonicalQuery(map[string]interface{}{"filter": map[string]string{"k": "v"}}))
}

func TestCanonicalQuery_sorted_keys(t *testing.T) {
	got := CanonicalQuery(map[string]interface{}{
		"zeta":  "1",
		"alpha": "2",
		"Beta":  "3",
	})

	// ordinal sort: uppercase before lowercase
	assert.Equal(t, "Beta=3&alpha=2&zeta=1", got)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
		included bool
	}{
		{nil, "", false},
		{"", "", false},
		{"x", "x", true},
		{0, "0", true},
		{int64(0), "0", true},
		{false, "false", true},
		{true, "true", true},
		{1.5, "1.5", true},
		{float64(5), "5", true},
		{[]string{}, "[]", true},
		{[]int{1, 2}, "[1,2]", true},
	}

	for _, test := range tests {
		got, ok := FormatValue(test.value)
		assert.Equal(t, test.included, ok, "value %#v", test.value)
		assert.Equal(t, test.expected, got, "value %#v", test.value)
	}
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "a%20b!*'()~-_.", EncodeURIComponent("a b!*'()~-_."))
	assert.Equal(t, "%2B%2F%3D", EncodeURIComponent("+/="))
}

type capturingLogger struct {
	lines []string
}

func (o *capturingLogger) Debug(msg string) {
	o.lines = append(o.lines, msg)
}

func (o *capturingLogger) Debugf(format string, v ...interface{}) {
	o.Debug(format)
}

// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

// Package auth implements the Senscloud request-signing scheme: a
// per-request auth code derived from the caller's credentials through a
// chained HMAC-SHA1, proving possession of the access key without ever
// transmitting it.
package auth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/senscloud/apiclient/common"
)

// SessionTokenParam is the parameter name excluded from signing. The value
// travels in the session-token header instead and the server never includes
// it when recomputing the signature.
const SessionTokenParam = "sessionToken"

// SignatureInput collects everything that participates in computing the
// auth code for one request. Inputs are built fresh per request: Nonce and
// Timestamp are normally left zero and default to a new v1 UUID and the
// current epoch milliseconds, so two dispatches of the same logical call
// never share a signature. Explicit values exist for reproducibility only.
type SignatureInput struct {
	Method     string
	AccessID   string
	AccessKey  string
	Nonce      string
	Timestamp  int64
	Parameters map[string]interface{}
	Logger     common.Logger
}

// AuthCode computes the authentication string attached to the request:
//
//	accessId=<id>&nonce=<nonce>&timestamp=<ms>&signature=<urlencoded sig>
//
// The prefix order is fixed and unsorted; it is part of the protocol. The
// signature chain is HMAC-SHA1(content, HMAC-SHA1(prefix, accessKey)), both
// stages base64-encoded. There is no failure path: well-formedness of the
// credentials is checked at client construction, not here.
func (in SignatureInput) AuthCode() string {
	logger := common.ValidLoggerOrDefault(in.Logger)

	nonce := in.Nonce
	if nonce == "" {
		nonce = newNonce()
	}

	timestamp := in.Timestamp
	if timestamp == 0 {
		timestamp = time.Now().UnixMilli()
	}

	prefix := fmt.Sprintf("accessId=%s&nonce=%s&timestamp=%d", in.AccessID, nonce, timestamp)
	logger.Debugf("auth prefix: %s", prefix)

	signingKey := hmacSHA1(prefix, in.AccessKey)
	logger.Debugf("signing key: %s", signingKey)

	content := strings.ToUpper(in.Method) + "-" + CanonicalQuery(in.Parameters)
	logger.Debugf("signature content: %s", content)

	return prefix + "&signature=" + EncodeURIComponent(hmacSHA1(content, signingKey))
}

// CanonicalQuery produces the deterministic key=value&... view of params
// used as signing input: sessionToken removed, keys sorted (ordinal,
// case-sensitive), values rendered by FormatValue and percent-encoded.
// Insertion order of the map never influences the result.
func CanonicalQuery(params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == SessionTokenParam {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v, ok := FormatValue(params[k])
		if !ok {
			continue
		}
		pairs = append(pairs, k+"="+EncodeURIComponent(v))
	}

	return strings.Join(pairs, "&")
}

// FormatValue renders a parameter value for signing or for the wire query
// string, reporting whether the pair should be included at all. Empty
// strings and nils are dropped; the number 0 and booleans are retained.
// Structured values (slices, maps, structs) render as their canonical JSON
// text rather than any native string coercion.
func FormatValue(v interface{}) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, t != ""
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case json.Number:
		return t.String(), t != ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		s := string(b)
		if s == "null" || s == `""` {
			return "", false
		}
		return s, true
	}
}

// EncodeURIComponent percent-encodes s the way the ECMAScript function of
// the same name does, which is what the server-side verifier expects:
// spaces become %20 rather than +, and ! ' ( ) * stay literal.
func EncodeURIComponent(s string) string {
	return uriComponentFixups.Replace(url.QueryEscape(s))
}

var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func hmacSHA1(message, key string) string {
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(message))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// newNonce returns a fresh v1 UUID. uuid.NewUUID fails only when the
// node interface or clock sequence cannot be read; a random UUID is an
// acceptable nonce in that case.
func newNonce() string {
	if u, err := uuid.NewUUID(); err == nil {
		return u.String()
	}

	return uuid.NewString()
}

// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

/*
Package apiclient implements the client side of the Senscloud IoT platform
API: per-request HMAC-SHA1 auth-code signing, dispatch, and uniform outcome
classification.

A client is constructed once from credentials and (optionally) a domain,
trust-anchor material, and a debug sink:

	client, err := apiclient.NewClient(apiclient.Config{
		AccessID:  "my-access-id",
		AccessKey: "my-access-key",
	})

Endpoint operations are described declaratively and invoked through the
generic Call entry point:

	out, err := client.Call(ctx, apiclient.Operation{
		Name:         "getDevice",
		Method:       "GET",
		PathTemplate: "/v1/devices/{deviceId}",
		Required:     []string{"deviceId"},
		Path:         []string{"deviceId"},
	}, map[string]interface{}{"deviceId": "dev-1"})

On a 2xx response the Outcome carries the raw body and, when the server
declared a JSON media type, its decoded form. A 204 yields an empty
Outcome. Any other status is returned as an *APIError holding the response
and body; transport failures come back as the raw transport error.

Every outbound request is signed afresh: the auth code embeds a new nonce
and timestamp, so a caller-initiated retry of the same logical call always
produces a new, independently verifiable signature.

The device subpackage shows the intended shape of generated endpoint
wrappers on top of Call.
*/
package apiclient

// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

// Package device wraps the device-management slice of the Senscloud API.
// Each endpoint is one Operation table entry behind a thin typed method;
// this is the shape every generated endpoint wrapper follows.
package device

import (
	"context"
	"errors"

	"github.com/senscloud/apiclient"
)

// Service is the primary interface to the device API.
type Service struct {
	// Client is the underlying signing client used for all requests.
	Client *apiclient.Client
}

// NewService creates a new Service instance using the provided client.
func NewService(client *apiclient.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("no client supplied")
	}

	return &Service{Client: client}, nil
}

var (
	listOp = apiclient.Operation{
		Name:         "listDevices",
		Method:       "GET",
		PathTemplate: "/v1/devices",
		Query:        []string{"productId", "page", "pageSize"},
		Header:       map[string]string{"sessionToken": apiclient.SessionTokenHeader},
	}

	getOp = apiclient.Operation{
		Name:         "getDevice",
		Method:       "GET",
		PathTemplate: "/v1/devices/{deviceId}",
		Required:     []string{"deviceId"},
		Path:         []string{"deviceId"},
	}

	sendCommandOp = apiclient.Operation{
		Name:         "sendCommand",
		Method:       "POST",
		PathTemplate: "/v1/devices/{deviceId}/commands",
		Required:     []string{"deviceId", "command"},
		Path:         []string{"deviceId"},
		Body:         []string{"command", "params"},
	}

	deleteOp = apiclient.Operation{
		Name:         "deleteDevice",
		Method:       "DELETE",
		PathTemplate: "/v1/devices/{deviceId}",
		Required:     []string{"deviceId"},
		Path:         []string{"deviceId"},
	}
)

// ListOptions narrows a List call; zero values are omitted from the
// request.
type ListOptions struct {
	ProductID    string
	Page         int
	PageSize     int
	SessionToken string
}

// List retrieves the devices visible to the caller.
func (o *Service) List(ctx context.Context, opts ListOptions) (*apiclient.Outcome, error) {
	params := map[string]interface{}{}
	if opts.ProductID != "" {
		params["productId"] = opts.ProductID
	}
	if opts.Page > 0 {
		params["page"] = opts.Page
	}
	if opts.PageSize > 0 {
		params["pageSize"] = opts.PageSize
	}
	if opts.SessionToken != "" {
		params["sessionToken"] = opts.SessionToken
	}

	return o.Client.Call(ctx, listOp, params)
}

// Get retrieves one device by its ID.
func (o *Service) Get(ctx context.Context, deviceID string) (*apiclient.Outcome, error) {
	return o.Client.Call(ctx, getOp, map[string]interface{}{
		"deviceId": deviceID,
	})
}

// SendCommand issues a named command, with optional parameters, to one
// device.
func (o *Service) SendCommand(ctx context.Context, deviceID, command string, params map[string]interface{}) (*apiclient.Outcome, error) {
	args := map[string]interface{}{
		"deviceId": deviceID,
		"command":  command,
	}
	if len(params) > 0 {
		args["params"] = params
	}

	return o.Client.Call(ctx, sendCommandOp, args)
}

// Delete removes one device by its ID.
func (o *Service) Delete(ctx context.Context, deviceID string) (*apiclient.Outcome, error) {
	return o.Client.Call(ctx, deleteOp, map[string]interface{}{
		"deviceId": deviceID,
	})
}

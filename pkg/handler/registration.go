// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"strings"

	"github.com/stacklok/authrelay/pkg/decision"
)

// ClientRegistrationParams is the envelope for a dynamic client
// registration request (RFC 7591) or a registration management request
// (RFC 7592).
type ClientRegistrationParams struct {
	// Operation selects register, get, update, or delete.
	Operation decision.ClientRegistrationOperation

	// Body is the raw JSON client metadata document. Required for
	// register and update.
	Body string

	// Authorization is the value of the Authorization header carrying the
	// registration access token for the management operations.
	Authorization string

	// ClientID identifies the client for the management operations.
	ClientID string
}

// ClientRegistrationHandler handles dynamic client registration and
// registration management requests.
type ClientRegistrationHandler struct {
	base
}

// NewClientRegistrationHandler creates a handler for the client
// registration endpoint.
func NewClientRegistrationHandler(client decision.Client, opts ...Option) *ClientRegistrationHandler {
	return &ClientRegistrationHandler{base: newBase(client, opts...)}
}

// Handle processes a client registration request and always returns a
// complete response.
func (h *ClientRegistrationHandler) Handle(ctx context.Context, params *ClientRegistrationParams, opts decision.Options) *Response {
	res, err := h.process(ctx, params, opts)
	if err != nil {
		return h.fail(ctx, err)
	}
	return res
}

func (h *ClientRegistrationHandler) process(ctx context.Context, params *ClientRegistrationParams, opts decision.Options) (*Response, error) {
	res, err := h.client.ClientRegistration(ctx, &decision.ClientRegistrationRequest{
		Operation: params.Operation,
		JSON:      params.Body,
		Token:     bearerToken(params.Authorization),
		ClientID:  params.ClientID,
	}, opts)
	if err != nil {
		return nil, errUnexpected(EndpointClientRegistration, err)
	}

	response, ok := render(EndpointClientRegistration, string(res.Action), res.ResponseContent, nil)
	if !ok {
		return nil, errUnknownAction(EndpointClientRegistration, string(res.Action))
	}
	return response, nil
}

// bearerToken strips the Bearer scheme from an Authorization header
// value. A header without the scheme is passed through as-is; the
// decision service decides whether it is acceptable.
func bearerToken(header string) string {
	scheme, rest, found := strings.Cut(header, " ")
	if found && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return header
}

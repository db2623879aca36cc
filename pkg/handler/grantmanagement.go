// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"net/http"

	"github.com/stacklok/authrelay/pkg/decision"
)

// GrantManagementParams is the envelope for a grant management request
// (query or revoke) addressed to a specific grant.
type GrantManagementParams struct {
	// Operation selects query or revoke.
	Operation decision.GrantManagementOperation

	// GrantID identifies the grant.
	GrantID string

	// AccessToken is the access token presented with the request.
	AccessToken string

	// ClientCertificate is the client's mTLS certificate in PEM format,
	// if any.
	ClientCertificate string

	// DPoP, HTM, and HTU carry the proof-of-possession fields, if any.
	DPoP string
	HTM  string
	HTU  string
}

// GrantManagementHandler handles grant management requests.
type GrantManagementHandler struct {
	base
}

// NewGrantManagementHandler creates a handler for the grant management
// endpoint.
func NewGrantManagementHandler(client decision.Client, opts ...Option) *GrantManagementHandler {
	return &GrantManagementHandler{base: newBase(client, opts...)}
}

// Handle processes a grant management request and always returns a
// complete response.
func (h *GrantManagementHandler) Handle(ctx context.Context, params *GrantManagementParams, opts decision.Options) *Response {
	res, err := h.process(ctx, params, opts)
	if err != nil {
		return h.fail(ctx, err)
	}
	return res
}

func (h *GrantManagementHandler) process(ctx context.Context, params *GrantManagementParams, opts decision.Options) (*Response, error) {
	res, err := h.client.GrantManagement(ctx, &decision.GrantManagementRequest{
		Operation:         params.Operation,
		GrantID:           params.GrantID,
		AccessToken:       params.AccessToken,
		ClientCertificate: params.ClientCertificate,
		DPoP:              params.DPoP,
		HTM:               params.HTM,
		HTU:               params.HTU,
	}, opts)
	if err != nil {
		return nil, errUnexpected(EndpointGrantManagement, err)
	}

	header := http.Header{}
	if res.DPoPNonce != "" {
		header.Set("DPoP-Nonce", res.DPoPNonce)
	}
	if res.WWWAuthenticate != "" {
		header.Set("WWW-Authenticate", res.WWWAuthenticate)
	}

	response, ok := render(EndpointGrantManagement, string(res.Action), res.ResponseContent, header)
	if !ok {
		return nil, errUnknownAction(EndpointGrantManagement, string(res.Action))
	}
	return response, nil
}

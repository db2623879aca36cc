// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"net/url"

	"github.com/stacklok/authrelay/pkg/clientauth"
	"github.com/stacklok/authrelay/pkg/decision"
)

// PushedAuthReqParams is the envelope for a pushed authorization request
// (RFC 9126). Build it once from the incoming request; handlers treat it
// as read-only.
type PushedAuthReqParams struct {
	// Parameters are the form parameters of the request.
	Parameters url.Values

	// Authorization is the value of the Authorization header, if any.
	Authorization string

	// ClientCertificateChain is the client's mTLS certificate path in PEM
	// format, the client's own certificate first.
	ClientCertificateChain []string

	// DPoP is the value of the DPoP header (the proof JWT), if any.
	DPoP string

	// HTM is the HTTP method of the request, for DPoP validation.
	HTM string

	// HTU is the URL of the request, for DPoP validation.
	HTU string
}

// PushedAuthReqHandler handles pushed authorization requests.
type PushedAuthReqHandler struct {
	base
}

// NewPushedAuthReqHandler creates a handler for the pushed authorization
// endpoint.
func NewPushedAuthReqHandler(client decision.Client, opts ...Option) *PushedAuthReqHandler {
	return &PushedAuthReqHandler{base: newBase(client, opts...)}
}

// Handle processes a pushed authorization request and always returns a
// complete response.
func (h *PushedAuthReqHandler) Handle(ctx context.Context, params *PushedAuthReqParams, opts decision.Options) *Response {
	res, err := h.process(ctx, params, opts)
	if err != nil {
		return h.fail(ctx, err)
	}
	return res
}

func (h *PushedAuthReqHandler) process(ctx context.Context, params *PushedAuthReqParams, opts decision.Options) (*Response, error) {
	// Client credentials from the Authorization header. A malformed
	// header degrades to no credentials.
	var clientID, clientSecret string
	if creds := clientauth.ParseBasic(params.Authorization); creds != nil {
		clientID = creds.UserID
		clientSecret = creds.Password
	}

	cert, certPath := splitChain(params.ClientCertificateChain)

	res, err := h.client.PushedAuthReq(ctx, &decision.PushedAuthReqRequest{
		Parameters:            params.Parameters.Encode(),
		ClientID:              clientID,
		ClientSecret:          clientSecret,
		ClientCertificate:     cert,
		ClientCertificatePath: certPath,
		DPoP:                  params.DPoP,
		HTM:                   params.HTM,
		HTU:                   params.HTU,
	}, opts)
	if err != nil {
		return nil, errUnexpected(EndpointPushedAuthReq, err)
	}

	response, ok := render(EndpointPushedAuthReq, string(res.Action), res.ResponseContent,
		dpopNonceHeader(res.DPoPNonce))
	if !ok {
		return nil, errUnknownAction(EndpointPushedAuthReq, string(res.Action))
	}
	return response, nil
}

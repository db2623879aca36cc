// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"

	"github.com/stacklok/authrelay/pkg/decision"
)

// CredentialOfferParams is the envelope for a credential offer URI
// request.
type CredentialOfferParams struct {
	// Identifier identifies the credential offer.
	Identifier string
}

// CredentialOfferHandler handles credential offer URI requests: it
// resolves an offer identifier into the credential offer document.
type CredentialOfferHandler struct {
	base
}

// NewCredentialOfferHandler creates a handler for the credential offer
// URI endpoint.
func NewCredentialOfferHandler(client decision.Client, opts ...Option) *CredentialOfferHandler {
	return &CredentialOfferHandler{base: newBase(client, opts...)}
}

// Handle processes a credential offer URI request and always returns a
// complete response.
func (h *CredentialOfferHandler) Handle(ctx context.Context, params *CredentialOfferParams, opts decision.Options) *Response {
	res, err := h.process(ctx, params, opts)
	if err != nil {
		return h.fail(ctx, err)
	}
	return res
}

func (h *CredentialOfferHandler) process(ctx context.Context, params *CredentialOfferParams, opts decision.Options) (*Response, error) {
	res, err := h.client.CredentialOfferInfo(ctx, &decision.CredentialOfferInfoRequest{
		Identifier: params.Identifier,
	}, opts)
	if err != nil {
		return nil, errUnexpected(EndpointCredentialOffer, err)
	}

	// The offer document itself is the success body.
	body := res.ResponseContent
	if res.Action == decision.CredentialOfferInfoOK && res.CredentialOffer != "" {
		body = res.CredentialOffer
	}

	response, ok := render(EndpointCredentialOffer, string(res.Action), body, nil)
	if !ok {
		return nil, errUnknownAction(EndpointCredentialOffer, string(res.Action))
	}
	return response, nil
}

// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stacklok/authrelay/pkg/clientauth"
	"github.com/stacklok/authrelay/pkg/decision"
)

// basicChallenge is the WWW-Authenticate challenge attached to
// invalid-client responses from the token endpoint.
const basicChallenge = `Basic realm="token"`

// unsupportedGrantTypeBody is the fixed body returned when the decision
// service delegates a grant type to the deployment and the deployment
// declines to handle it.
const unsupportedGrantTypeBody = `{"error":"unsupported_grant_type","error_description":"This grant type is not supported by this deployment"}`

// TokenParams is the envelope for a token request.
type TokenParams struct {
	// Parameters are the form parameters of the request.
	Parameters url.Values

	// Authorization is the value of the Authorization header, if any.
	Authorization string

	// ClientCertificateChain is the client's mTLS certificate path in PEM
	// format, the client's own certificate first.
	ClientCertificateChain []string

	// DPoP, HTM, and HTU carry the proof-of-possession fields, if any.
	DPoP string
	HTM  string
	HTU  string

	// Properties are extra properties to bind to any token issued for
	// this request, before the Provider's own extras are merged in.
	Properties []decision.Property
}

// TokenHandler handles token requests. Most grant types resolve within
// the single Token call; the resource owner password credentials grant
// verifies the credentials through the Provider and then issues or fails
// with a second call, and flagged grant types are delegated to the
// Provider wholesale.
type TokenHandler struct {
	base
	provider Provider
}

// NewTokenHandler creates a handler for the token endpoint.
func NewTokenHandler(client decision.Client, provider Provider, opts ...Option) *TokenHandler {
	return &TokenHandler{base: newBase(client, opts...), provider: provider}
}

// Handle processes a token request and always returns a complete
// response.
func (h *TokenHandler) Handle(ctx context.Context, params *TokenParams, opts decision.Options) *Response {
	res, err := h.process(ctx, params, opts)
	if err != nil {
		return h.fail(ctx, err)
	}
	return res
}

func (h *TokenHandler) process(ctx context.Context, params *TokenParams, opts decision.Options) (*Response, error) {
	var clientID, clientSecret string
	if creds := clientauth.ParseBasic(params.Authorization); creds != nil {
		clientID = creds.UserID
		clientSecret = creds.Password
	}

	cert, certPath := splitChain(params.ClientCertificateChain)

	res, err := h.client.Token(ctx, &decision.TokenRequest{
		Parameters:            params.Parameters.Encode(),
		ClientID:              clientID,
		ClientSecret:          clientSecret,
		ClientCertificate:     cert,
		ClientCertificatePath: certPath,
		DPoP:                  params.DPoP,
		HTM:                   params.HTM,
		HTU:                   params.HTU,
		Properties:            params.Properties,
	}, opts)
	if err != nil {
		return nil, errUnexpected(EndpointToken, err)
	}

	switch res.Action {
	case decision.TokenPassword:
		return h.passwordGrant(ctx, res, opts)
	case decision.TokenTokenExchange:
		return h.customGrant(GrantKindTokenExchange, res)
	case decision.TokenJWTBearer:
		return h.customGrant(GrantKindJWTBearer, res)
	}

	header := dpopNonceHeader(res.DPoPNonce)
	if res.Action == decision.TokenInvalidClient {
		if header == nil {
			header = http.Header{}
		}
		header.Set("WWW-Authenticate", basicChallenge)
	}

	response, ok := render(EndpointToken, string(res.Action), res.ResponseContent, header)
	if !ok {
		return nil, errUnknownAction(EndpointToken, string(res.Action))
	}
	return response, nil
}

// passwordGrant verifies the resource owner's credentials through the
// Provider, then either issues tokens for the ticket or fails it.
func (h *TokenHandler) passwordGrant(ctx context.Context, res *decision.TokenResponse, opts decision.Options) (*Response, error) {
	var subject string
	if h.provider != nil {
		subject = h.provider.AuthenticateUser(res.Username, res.Password)
	}

	if subject == "" {
		return h.tokenFail(ctx, res.Ticket, decision.TokenFailReasonInvalidResourceOwnerCredentials, opts)
	}

	properties := res.Properties
	if h.provider != nil {
		properties = MergeProperties(properties, h.provider.ExtraProperties())
	}

	issueRes, err := h.client.TokenIssue(ctx, &decision.TokenIssueRequest{
		Ticket:     res.Ticket,
		Subject:    subject,
		Properties: properties,
	}, opts)
	if err != nil {
		return nil, errUnexpected(EndpointTokenIssue, err)
	}

	response, ok := render(EndpointTokenIssue, string(issueRes.Action), issueRes.ResponseContent,
		dpopNonceHeader(issueRes.DPoPNonce))
	if !ok {
		return nil, errUnknownAction(EndpointTokenIssue, string(issueRes.Action))
	}
	return response, nil
}

func (h *TokenHandler) tokenFail(ctx context.Context, ticket string, reason decision.TokenFailReason, opts decision.Options) (*Response, error) {
	failRes, err := h.client.TokenFail(ctx, &decision.TokenFailRequest{
		Ticket: ticket,
		Reason: reason,
	}, opts)
	if err != nil {
		return nil, errUnexpected(EndpointTokenFail, err)
	}

	response, ok := render(EndpointTokenFail, string(failRes.Action), failRes.ResponseContent, nil)
	if !ok {
		return nil, errUnknownAction(EndpointTokenFail, string(failRes.Action))
	}
	return response, nil
}

// customGrant hands the whole token response to the deployment. A nil
// result is the predicted unsupported-grant-type outcome, not a fault.
func (h *TokenHandler) customGrant(kind CustomGrantKind, res *decision.TokenResponse) (*Response, error) {
	if h.provider != nil {
		if response := h.provider.CustomGrantResponse(kind, res); response != nil {
			return response, nil
		}
	}
	return newResponse(http.StatusBadRequest, unsupportedGrantTypeBody, mediaTypeJSON, nil), nil
}

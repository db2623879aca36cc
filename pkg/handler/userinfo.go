// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/stacklok/authrelay/pkg/decision"
)

// denialChallenge is the fixed challenge returned when the deployment
// refuses to release claims for an otherwise valid token.
const denialChallenge = `Bearer error="access_denied",error_description="The deployment denied access to the userinfo endpoint"`

// Claim names resolved from dedicated Provider capabilities rather than
// Claim lookups.
const (
	claimSub      = "sub"
	claimACR      = "acr"
	claimAuthTime = "auth_time"
)

// UserInfoParams is the envelope for a userinfo request.
type UserInfoParams struct {
	// AccessToken is the access token presented with the request.
	AccessToken string

	// ClientCertificate is the client's mTLS certificate in PEM format,
	// if any. Required for certificate-bound access tokens.
	ClientCertificate string

	// DPoP, HTM, and HTU carry the proof-of-possession fields, if any.
	DPoP string
	HTM  string
	HTU  string
}

// UserInfoHandler handles userinfo requests. The decision service
// validates the token; the Provider supplies the end-user's claims, which
// a second call turns into the final payload.
type UserInfoHandler struct {
	base
	provider Provider
}

// NewUserInfoHandler creates a handler for the userinfo endpoint.
func NewUserInfoHandler(client decision.Client, provider Provider, opts ...Option) *UserInfoHandler {
	return &UserInfoHandler{base: newBase(client, opts...), provider: provider}
}

// Handle processes a userinfo request and always returns a complete
// response.
func (h *UserInfoHandler) Handle(ctx context.Context, params *UserInfoParams, opts decision.Options) *Response {
	res, err := h.process(ctx, params, opts)
	if err != nil {
		return h.fail(ctx, err)
	}
	return res
}

func (h *UserInfoHandler) process(ctx context.Context, params *UserInfoParams, opts decision.Options) (*Response, error) {
	res, err := h.client.UserInfo(ctx, &decision.UserInfoRequest{
		Token:             params.AccessToken,
		ClientCertificate: params.ClientCertificate,
		DPoP:              params.DPoP,
		HTM:               params.HTM,
		HTU:               params.HTU,
	}, opts)
	if err != nil {
		return nil, errUnexpected(EndpointUserInfo, err)
	}

	// OK selects the issue path; every other recognized action is an
	// error whose response content is the WWW-Authenticate challenge.
	if res.Action == decision.UserInfoOK {
		return h.issue(ctx, res, opts)
	}

	response, ok := render(EndpointUserInfo, string(res.Action), "",
		challengeHeader(res.ResponseContent, res.DPoPNonce))
	if !ok {
		return nil, errUnknownAction(EndpointUserInfo, string(res.Action))
	}
	return response, nil
}

// issue collects the end-user's claims from the Provider and asks the
// decision service to build the userinfo payload.
func (h *UserInfoHandler) issue(ctx context.Context, res *decision.UserInfoResponse, opts decision.Options) (*Response, error) {
	// No provider means no deployment hook to release claims through.
	if h.provider == nil || !h.provider.IsAuthorized() {
		return newResponse(http.StatusForbidden, "", mediaTypeJSON,
			challengeHeader(denialChallenge, "")), nil
	}

	subject := h.provider.Subject()
	if subject == "" {
		return nil, errUnexpected(EndpointUserInfo,
			fmt.Errorf("provider authorized the request but returned no subject"))
	}

	claims := h.collectClaims(res.Claims)

	var claimsJSON string
	if len(claims) > 0 {
		encoded, err := json.Marshal(claims)
		if err != nil {
			return nil, errUnexpected(EndpointUserInfo, err)
		}
		claimsJSON = string(encoded)
	}

	issueRes, err := h.client.UserInfoIssue(ctx, &decision.UserInfoIssueRequest{
		Token:  res.Token,
		Claims: claimsJSON,
	}, opts)
	if err != nil {
		return nil, errUnexpected(EndpointUserInfoIssue, err)
	}

	var body, challenge string
	switch issueRes.Action {
	case decision.UserInfoIssueJSON, decision.UserInfoIssueJWT:
		body = issueRes.ResponseContent
	default:
		challenge = issueRes.ResponseContent
	}

	response, ok := render(EndpointUserInfoIssue, string(issueRes.Action), body,
		challengeHeader(challenge, issueRes.DPoPNonce))
	if !ok {
		return nil, errUnknownAction(EndpointUserInfoIssue, string(issueRes.Action))
	}
	return response, nil
}

// collectClaims resolves the requested claim names through the Provider.
// A requested name may carry a language tag ("family_name#ja"); the tag
// is split off and passed alongside the base name. Claims the Provider
// does not know are simply omitted.
func (h *UserInfoHandler) collectClaims(names []string) map[string]any {
	claims := map[string]any{}

	for _, name := range names {
		base, tag, _ := strings.Cut(name, "#")
		if base == "" {
			continue
		}

		var value any
		switch base {
		case claimSub:
			value = h.provider.Subject()
		case claimACR:
			if acr := h.provider.ACR(); acr != "" {
				value = acr
			}
		case claimAuthTime:
			if at := h.provider.AuthenticatedAt(); at > 0 {
				value = at
			}
		default:
			value = h.provider.Claim(base, tag)
		}

		if value != nil {
			claims[name] = value
		}
	}
	return claims
}

// challengeHeader assembles the error headers for userinfo and grant
// management error responses.
func challengeHeader(challenge, dpopNonce string) http.Header {
	header := http.Header{}
	if challenge != "" {
		header.Set("WWW-Authenticate", challenge)
	}
	if dpopNonce != "" {
		header.Set("DPoP-Nonce", dpopNonce)
	}
	if len(header) == 0 {
		return nil
	}
	return header
}

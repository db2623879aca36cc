// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package decision

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks -source=client.go Client

import (
	"context"
)

// Options is an open, call-specific tuning bag passed through to the
// decision service verbatim. Handlers never inspect it.
type Options map[string]any

// Client is the outbound boundary to the remote decision service. One
// method per decision API; each is a single blocking exchange. A non-nil
// error means the exchange itself failed (transport error, malformed
// response) and is treated as fatal by callers.
type Client interface {
	// PushedAuthReq processes a pushed authorization request (PAR).
	PushedAuthReq(ctx context.Context, req *PushedAuthReqRequest, opts Options) (*PushedAuthReqResponse, error)

	// GrantManagement queries or revokes a grant.
	GrantManagement(ctx context.Context, req *GrantManagementRequest, opts Options) (*GrantManagementResponse, error)

	// UserInfo validates an access token presented at the userinfo endpoint.
	UserInfo(ctx context.Context, req *UserInfoRequest, opts Options) (*UserInfoResponse, error)

	// UserInfoIssue builds the userinfo payload for a validated token.
	UserInfoIssue(ctx context.Context, req *UserInfoIssueRequest, opts Options) (*UserInfoIssueResponse, error)

	// Token processes a token request.
	Token(ctx context.Context, req *TokenRequest, opts Options) (*TokenResponse, error)

	// TokenIssue issues tokens for a ticket obtained from Token.
	TokenIssue(ctx context.Context, req *TokenIssueRequest, opts Options) (*TokenIssueResponse, error)

	// TokenFail generates the error response for a ticket obtained from Token.
	TokenFail(ctx context.Context, req *TokenFailRequest, opts Options) (*TokenFailResponse, error)

	// ClientRegistration handles dynamic client registration and the
	// registration management operations (get, update, delete).
	ClientRegistration(ctx context.Context, req *ClientRegistrationRequest, opts Options) (*ClientRegistrationResponse, error)

	// CredentialOfferInfo resolves a credential offer by identifier.
	CredentialOfferInfo(ctx context.Context, req *CredentialOfferInfoRequest, opts Options) (*CredentialOfferInfoResponse, error)
}

// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package decision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// API paths on the decision service, one per Client method.
const (
	pathPushedAuthReq       = "/api/pushed_auth_req"
	pathGrantManagement     = "/api/gm"
	pathUserInfo            = "/api/userinfo"
	pathUserInfoIssue       = "/api/userinfo/issue"
	pathToken               = "/api/token"
	pathTokenIssue          = "/api/token/issue"
	pathTokenFail           = "/api/token/fail"
	pathClientRegistration  = "/api/client/registration"
	pathCredentialOfferInfo = "/api/credential_offer/info"
)

const defaultTimeout = 30 * time.Second

// HTTPClient is the default Client implementation. It exchanges JSON with
// the decision service over HTTPS, authenticating each call with a bearer
// service credential. Calls are fail-fast: one attempt, no retries.
type HTTPClient struct {
	baseURL    string
	tokenSrc   oauth2.TokenSource
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Client = (*HTTPClient)(nil)

// HTTPClientOption configures an HTTPClient.
type HTTPClientOption func(*HTTPClient)

// WithServiceToken authenticates calls with a static service access token.
func WithServiceToken(token string) HTTPClientOption {
	return func(c *HTTPClient) {
		c.tokenSrc = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	}
}

// WithTokenSource authenticates calls with tokens drawn from src. Use this
// when the service credential is rotated or fetched at runtime.
func WithTokenSource(src oauth2.TokenSource) HTTPClientOption {
	return func(c *HTTPClient) {
		c.tokenSrc = src
	}
}

// WithHTTPClient replaces the underlying *http.Client. Timeout and proxy
// policy live on the supplied client.
func WithHTTPClient(hc *http.Client) HTTPClientOption {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for call diagnostics.
func WithLogger(logger *slog.Logger) HTTPClientOption {
	return func(c *HTTPClient) {
		c.logger = logger
	}
}

// NewHTTPClient creates an HTTPClient for the decision service rooted at
// baseURL.
func NewHTTPClient(baseURL string, opts ...HTTPClientOption) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PushedAuthReq implements Client.
func (c *HTTPClient) PushedAuthReq(ctx context.Context, req *PushedAuthReqRequest, opts Options) (*PushedAuthReqResponse, error) {
	var res PushedAuthReqResponse
	if err := c.post(ctx, pathPushedAuthReq, req, &res, opts); err != nil {
		return nil, err
	}
	return &res, nil
}

// GrantManagement implements Client.
func (c *HTTPClient) GrantManagement(ctx context.Context, req *GrantManagementRequest, opts Options) (*GrantManagementResponse, error) {
	var res GrantManagementResponse
	if err := c.post(ctx, pathGrantManagement, req, &res, opts); err != nil {
		return nil, err
	}
	return &res, nil
}

// UserInfo implements Client.
func (c *HTTPClient) UserInfo(ctx context.Context, req *UserInfoRequest, opts Options) (*UserInfoResponse, error) {
	var res UserInfoResponse
	if err := c.post(ctx, pathUserInfo, req, &res, opts); err != nil {
		return nil, err
	}
	return &res, nil
}

// UserInfoIssue implements Client.
func (c *HTTPClient) UserInfoIssue(ctx context.Context, req *UserInfoIssueRequest, opts Options) (*UserInfoIssueResponse, error) {
	var res UserInfoIssueResponse
	if err := c.post(ctx, pathUserInfoIssue, req, &res, opts); err != nil {
		return nil, err
	}
	return &res, nil
}

// Token implements Client.
func (c *HTTPClient) Token(ctx context.Context, req *TokenRequest, opts Options) (*TokenResponse, error) {
	var res TokenResponse
	if err := c.post(ctx, pathToken, req, &res, opts); err != nil {
		return nil, err
	}
	return &res, nil
}

// TokenIssue implements Client.
func (c *HTTPClient) TokenIssue(ctx context.Context, req *TokenIssueRequest, opts Options) (*TokenIssueResponse, error) {
	var res TokenIssueResponse
	if err := c.post(ctx, pathTokenIssue, req, &res, opts); err != nil {
		return nil, err
	}
	return &res, nil
}

// TokenFail implements Client.
func (c *HTTPClient) TokenFail(ctx context.Context, req *TokenFailRequest, opts Options) (*TokenFailResponse, error) {
	var res TokenFailResponse
	if err := c.post(ctx, pathTokenFail, req, &res, opts); err != nil {
		return nil, err
	}
	return &res, nil
}

// ClientRegistration implements Client.
func (c *HTTPClient) ClientRegistration(ctx context.Context, req *ClientRegistrationRequest, opts Options) (*ClientRegistrationResponse, error) {
	var res ClientRegistrationResponse
	if err := c.post(ctx, pathClientRegistration, req, &res, opts); err != nil {
		return nil, err
	}
	return &res, nil
}

// CredentialOfferInfo implements Client.
func (c *HTTPClient) CredentialOfferInfo(ctx context.Context, req *CredentialOfferInfoRequest, opts Options) (*CredentialOfferInfoResponse, error) {
	var res CredentialOfferInfoResponse
	if err := c.post(ctx, pathCredentialOfferInfo, req, &res, opts); err != nil {
		return nil, err
	}
	return &res, nil
}

// post performs one JSON exchange with the decision service. Options
// entries with string values are forwarded as request headers; everything
// else in the bag is ignored at this layer.
func (c *HTTPClient) post(ctx context.Context, path string, in, out any, opts Options) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.tokenSrc != nil {
		tok, err := c.tokenSrc.Token()
		if err != nil {
			return fmt.Errorf("failed to obtain service credential for %s: %w", path, err)
		}
		tok.SetAuthHeader(req)
	}

	for k, v := range opts {
		if s, ok := v.(string); ok {
			req.Header.Set(k, s)
		}
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("decision service call %s failed: %w", path, err)
	}
	defer res.Body.Close()

	c.logger.DebugContext(ctx, "decision service call",
		"path", path,
		"status", res.StatusCode,
		"duration", time.Since(start),
	)

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("decision service call %s returned status %d: %s",
			path, res.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("malformed response from %s: %w", path, err)
	}
	return nil
}

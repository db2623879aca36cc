// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package endpoint_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/authrelay/pkg/decision"
	decisionmocks "github.com/stacklok/authrelay/pkg/decision/mocks"
	"github.com/stacklok/authrelay/pkg/endpoint"
)

func newRouter(t *testing.T, client decision.Client, opts ...endpoint.Option) http.Handler {
	t.Helper()
	opts = append([]endpoint.Option{
		endpoint.WithLogger(slog.New(slog.DiscardHandler)),
	}, opts...)
	return endpoint.NewRouter(client, opts...).Routes()
}

func TestRouterPushedAuthReq(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := decisionmocks.NewMockClient(ctrl)

	var sent *decision.PushedAuthReqRequest
	client.EXPECT().
		PushedAuthReq(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *decision.PushedAuthReqRequest, _ decision.Options) (*decision.PushedAuthReqResponse, error) {
			sent = req
			return &decision.PushedAuthReqResponse{
				Action:          decision.PushedAuthReqCreated,
				ResponseContent: `{"request_uri":"urn:ietf:params:oauth:request_uri:x","expires_in":60}`,
			}, nil
		})

	form := url.Values{
		"response_type": {"code"},
		"client_id":     {"client-1"},
	}
	req := httptest.NewRequest(http.MethodPost, "/par", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("client-1", "s-e-c-r-e-t")

	rec := httptest.NewRecorder()
	newRouter(t, client).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "request_uri")

	require.NotNil(t, sent)
	assert.Equal(t, form.Encode(), sent.Parameters)
	assert.Equal(t, "client-1", sent.ClientID)
	assert.Equal(t, "s-e-c-r-e-t", sent.ClientSecret)
}

func TestRouterGrantManagementOperations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		wantOp decision.GrantManagementOperation
	}{
		{http.MethodGet, decision.GrantManagementQuery},
		{http.MethodDelete, decision.GrantManagementRevoke},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := decisionmocks.NewMockClient(ctrl)

			var sent *decision.GrantManagementRequest
			client.EXPECT().
				GrantManagement(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req *decision.GrantManagementRequest, _ decision.Options) (*decision.GrantManagementResponse, error) {
					sent = req
					return &decision.GrantManagementResponse{Action: decision.GrantManagementNoContent}, nil
				})

			req := httptest.NewRequest(tt.method, "/gm/grant-123", nil)
			req.Header.Set("Authorization", "DPoP at-1")
			req.Header.Set("DPoP", "proof-jwt")

			rec := httptest.NewRecorder()
			newRouter(t, client).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)

			require.NotNil(t, sent)
			assert.Equal(t, tt.wantOp, sent.Operation)
			assert.Equal(t, "grant-123", sent.GrantID)
			assert.Equal(t, "at-1", sent.AccessToken)
			assert.Equal(t, "proof-jwt", sent.DPoP)
			assert.Equal(t, tt.method, sent.HTM)
			assert.Equal(t, "http://example.com/gm/grant-123", sent.HTU)
		})
	}
}

func TestRouterUserInfoBearerToken(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := decisionmocks.NewMockClient(ctrl)

	var sent *decision.UserInfoRequest
	client.EXPECT().
		UserInfo(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *decision.UserInfoRequest, _ decision.Options) (*decision.UserInfoResponse, error) {
			sent = req
			return &decision.UserInfoResponse{
				Action:          decision.UserInfoUnauthorized,
				ResponseContent: `Bearer error="invalid_token"`,
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/userinfo", nil)
	req.Header.Set("Authorization", "Bearer at-2")

	rec := httptest.NewRecorder()
	newRouter(t, client).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `Bearer error="invalid_token"`, rec.Header().Get("WWW-Authenticate"))
	assert.Empty(t, rec.Body.String())

	require.NotNil(t, sent)
	assert.Equal(t, "at-2", sent.Token)
}

func TestRouterUserInfoFormToken(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := decisionmocks.NewMockClient(ctrl)

	var sent *decision.UserInfoRequest
	client.EXPECT().
		UserInfo(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *decision.UserInfoRequest, _ decision.Options) (*decision.UserInfoResponse, error) {
			sent = req
			return &decision.UserInfoResponse{
				Action:          decision.UserInfoBadRequest,
				ResponseContent: `Bearer error="invalid_request"`,
			}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/userinfo", strings.NewReader("access_token=at-3"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	newRouter(t, client).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	require.NotNil(t, sent)
	assert.Equal(t, "at-3", sent.Token)
}

func TestRouterToken(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := decisionmocks.NewMockClient(ctrl)
	client.EXPECT().
		Token(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&decision.TokenResponse{
			Action:          decision.TokenOK,
			ResponseContent: `{"access_token":"at-new","token_type":"Bearer"}`,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/token",
		strings.NewReader("grant_type=authorization_code&code=abc"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	newRouter(t, client).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json;charset=UTF-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "at-new")
}

func TestRouterClientRegistrationOperations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantOp     decision.ClientRegistrationOperation
		wantClient string
		wantBody   string
	}{
		{
			name:     "register",
			method:   http.MethodPost,
			target:   "/register",
			body:     `{"client_name":"My App"}`,
			wantOp:   decision.ClientRegistrationOpRegister,
			wantBody: `{"client_name":"My App"}`,
		},
		{
			name:       "get",
			method:     http.MethodGet,
			target:     "/register/c-1",
			wantOp:     decision.ClientRegistrationOpGet,
			wantClient: "c-1",
		},
		{
			name:       "update",
			method:     http.MethodPut,
			target:     "/register/c-1",
			body:       `{"client_name":"Renamed"}`,
			wantOp:     decision.ClientRegistrationOpUpdate,
			wantClient: "c-1",
			wantBody:   `{"client_name":"Renamed"}`,
		},
		{
			name:       "delete",
			method:     http.MethodDelete,
			target:     "/register/c-1",
			wantOp:     decision.ClientRegistrationOpDelete,
			wantClient: "c-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := decisionmocks.NewMockClient(ctrl)

			var sent *decision.ClientRegistrationRequest
			client.EXPECT().
				ClientRegistration(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req *decision.ClientRegistrationRequest, _ decision.Options) (*decision.ClientRegistrationResponse, error) {
					sent = req
					return &decision.ClientRegistrationResponse{Action: decision.ClientRegistrationOK}, nil
				})

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Authorization", "Bearer reg-at")

			rec := httptest.NewRecorder()
			newRouter(t, client).ServeHTTP(rec, req)

			require.NotNil(t, sent)
			assert.Equal(t, tt.wantOp, sent.Operation)
			assert.Equal(t, tt.wantClient, sent.ClientID)
			assert.Equal(t, tt.wantBody, sent.JSON)
			assert.Equal(t, "reg-at", sent.Token)
		})
	}
}

func TestRouterOversizedRegistrationBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := decisionmocks.NewMockClient(ctrl)
	// No decision call may happen; the body is rejected before dispatch.

	body := strings.Repeat("a", 1<<20+1)
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	newRouter(t, client).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouterOversizedTokenForm(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := decisionmocks.NewMockClient(ctrl)

	form := "grant_type=" + strings.Repeat("a", 1<<20+1)
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	newRouter(t, client).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouterCredentialOffer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := decisionmocks.NewMockClient(ctrl)

	var sent *decision.CredentialOfferInfoRequest
	client.EXPECT().
		CredentialOfferInfo(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *decision.CredentialOfferInfoRequest, _ decision.Options) (*decision.CredentialOfferInfoResponse, error) {
			sent = req
			return &decision.CredentialOfferInfoResponse{
				Action:          decision.CredentialOfferInfoOK,
				CredentialOffer: `{"credential_issuer":"https://issuer.example.com"}`,
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/offer/offer-1", nil)
	rec := httptest.NewRecorder()
	newRouter(t, client).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "credential_issuer")

	require.NotNil(t, sent)
	assert.Equal(t, "offer-1", sent.Identifier)
}

func TestRouterForwardedCertificate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := decisionmocks.NewMockClient(ctrl)

	var sent *decision.PushedAuthReqRequest
	client.EXPECT().
		PushedAuthReq(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *decision.PushedAuthReqRequest, _ decision.Options) (*decision.PushedAuthReqResponse, error) {
			sent = req
			return &decision.PushedAuthReqResponse{Action: decision.PushedAuthReqCreated}, nil
		})

	leaf := "-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----"
	req := httptest.NewRequest(http.MethodPost, "/par", strings.NewReader("client_id=c-1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Ssl-Cert", leaf)

	rec := httptest.NewRecorder()
	newRouter(t, client).ServeHTTP(rec, req)

	require.NotNil(t, sent)
	assert.Equal(t, leaf, sent.ClientCertificate)
	assert.Empty(t, sent.ClientCertificatePath)
}

func TestRouterRequestOptions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := decisionmocks.NewMockClient(ctrl)

	var sent decision.Options
	client.EXPECT().
		CredentialOfferInfo(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *decision.CredentialOfferInfoRequest, opts decision.Options) (*decision.CredentialOfferInfoResponse, error) {
			sent = opts
			return &decision.CredentialOfferInfoResponse{Action: decision.CredentialOfferInfoOK}, nil
		})

	router := newRouter(t, client, endpoint.WithRequestOptions(func(r *http.Request) decision.Options {
		return decision.Options{"Tenant": r.Header.Get("X-Tenant")}
	}))

	req := httptest.NewRequest(http.MethodGet, "/offer/offer-1", nil)
	req.Header.Set("X-Tenant", "acme")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, decision.Options{"Tenant": "acme"}, sent)
}

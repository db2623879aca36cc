// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"
)

// Endpoint identifies an endpoint kind. It doubles as the call-path label
// in fatal-error diagnostics.
type Endpoint string

// Endpoint kinds handled by this package. The issue and fail variants are
// the second leg of the two-call flows.
const (
	EndpointPushedAuthReq      Endpoint = "pushed_auth_req"
	EndpointGrantManagement    Endpoint = "gm"
	EndpointUserInfo           Endpoint = "userinfo"
	EndpointUserInfoIssue      Endpoint = "userinfo/issue"
	EndpointToken              Endpoint = "token"
	EndpointTokenIssue         Endpoint = "token/issue"
	EndpointTokenFail          Endpoint = "token/fail"
	EndpointClientRegistration Endpoint = "client/registration"
	EndpointCredentialOffer    Endpoint = "credential_offer_info"
)

// statusTables fixes the HTTP status for every recognized (endpoint,
// action) pair. Actions that select a follow-up flow instead of a direct
// response (userinfo OK, token PASSWORD/TOKEN_EXCHANGE/JWT_BEARER) are
// deliberately absent; their handlers resolve them before rendering.
var statusTables = map[Endpoint]map[string]int{
	EndpointPushedAuthReq: {
		"CREATED":               http.StatusCreated,
		"BAD_REQUEST":           http.StatusBadRequest,
		"UNAUTHORIZED":          http.StatusUnauthorized,
		"FORBIDDEN":             http.StatusForbidden,
		"PAYLOAD_TOO_LARGE":     http.StatusRequestEntityTooLarge,
		"INTERNAL_SERVER_ERROR": http.StatusInternalServerError,
	},
	EndpointGrantManagement: {
		"OK":           http.StatusOK,
		"NO_CONTENT":   http.StatusNoContent,
		"UNAUTHORIZED": http.StatusUnauthorized,
		"FORBIDDEN":    http.StatusForbidden,
		"NOT_FOUND":    http.StatusNotFound,
		"CALLER_ERROR": http.StatusInternalServerError,
		"SERVER_ERROR": http.StatusInternalServerError,
	},
	EndpointUserInfo: {
		"BAD_REQUEST":           http.StatusBadRequest,
		"UNAUTHORIZED":          http.StatusUnauthorized,
		"FORBIDDEN":             http.StatusForbidden,
		"INTERNAL_SERVER_ERROR": http.StatusInternalServerError,
	},
	EndpointUserInfoIssue: {
		"JSON":                  http.StatusOK,
		"JWT":                   http.StatusOK,
		"BAD_REQUEST":           http.StatusBadRequest,
		"UNAUTHORIZED":          http.StatusUnauthorized,
		"FORBIDDEN":             http.StatusForbidden,
		"INTERNAL_SERVER_ERROR": http.StatusInternalServerError,
	},
	EndpointToken: {
		"OK":                    http.StatusOK,
		"BAD_REQUEST":           http.StatusBadRequest,
		"INVALID_CLIENT":        http.StatusUnauthorized,
		"INTERNAL_SERVER_ERROR": http.StatusInternalServerError,
	},
	EndpointTokenIssue: {
		"OK":                    http.StatusOK,
		"INTERNAL_SERVER_ERROR": http.StatusInternalServerError,
	},
	EndpointTokenFail: {
		"BAD_REQUEST":           http.StatusBadRequest,
		"INTERNAL_SERVER_ERROR": http.StatusInternalServerError,
	},
	EndpointClientRegistration: {
		"CREATED":               http.StatusCreated,
		"OK":                    http.StatusOK,
		"UPDATED":               http.StatusOK,
		"DELETED":               http.StatusNoContent,
		"BAD_REQUEST":           http.StatusBadRequest,
		"UNAUTHORIZED":          http.StatusUnauthorized,
		"INTERNAL_SERVER_ERROR": http.StatusInternalServerError,
	},
	EndpointCredentialOffer: {
		"OK":           http.StatusOK,
		"FORBIDDEN":    http.StatusForbidden,
		"NOT_FOUND":    http.StatusNotFound,
		"CALLER_ERROR": http.StatusInternalServerError,
		"SERVER_ERROR": http.StatusInternalServerError,
	},
}

// contentTypes lists the per-action media-type exceptions. Everything
// else with a body is JSON.
var contentTypes = map[Endpoint]map[string]string{
	EndpointUserInfoIssue: {
		"JWT": mediaTypeJWT,
	},
}

// render maps (endpoint, action) to a response through the status tables.
// body is attached verbatim; extra headers are attached only when
// supplied. The second return is false when the action is outside the
// endpoint's closed set; the caller must treat that as fatal.
func render(endpoint Endpoint, action, body string, extra http.Header) (*Response, bool) {
	status, ok := statusTables[endpoint][action]
	if !ok {
		return nil, false
	}

	contentType := mediaTypeJSON
	if ct, ok := contentTypes[endpoint][action]; ok {
		contentType = ct
	}

	return newResponse(status, body, contentType, extra), true
}

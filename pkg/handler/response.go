// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"
)

// Media types attached to endpoint responses.
const (
	mediaTypeJSON = "application/json;charset=UTF-8"
	mediaTypeJWT  = "application/jwt"
	mediaTypeText = "text/plain;charset=UTF-8"
)

// Response is a fully-determined HTTP response produced by a handler.
// It is a plain value so that endpoint glue can hand it to any transport.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Header holds the response headers, including Content-Type when a
	// body is present.
	Header http.Header

	// Body is the response body, attached verbatim. Empty means no body.
	Body string
}

// Send writes the response to w.
func (r *Response) Send(w http.ResponseWriter) {
	for name, values := range r.Header {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}
	w.WriteHeader(r.StatusCode)
	if r.Body != "" {
		_, _ = w.Write([]byte(r.Body))
	}
}

// newResponse assembles a response. Token, userinfo, and registration
// payloads are sensitive, so every response forbids caching. extra headers
// are attached only when supplied.
func newResponse(status int, body, contentType string, extra http.Header) *Response {
	header := http.Header{}
	header.Set("Cache-Control", "no-store")
	header.Set("Pragma", "no-cache")
	if body != "" {
		header.Set("Content-Type", contentType)
	}
	for name, values := range extra {
		for _, v := range values {
			header.Add(name, v)
		}
	}
	return &Response{StatusCode: status, Header: header, Body: body}
}

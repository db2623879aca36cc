// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxBodyBytes caps request bodies read into memory. Client metadata
// documents and form payloads are small; anything bigger is abuse.
const maxBodyBytes = 1 << 20

// parseForm parses the request's form parameters. On a malformed or
// oversized body it writes the error response and reports false; the
// caller must return.
func parseForm(w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeBodyError(w, err)
		return nil, false
	}
	return r.PostForm, true
}

// readBody reads the raw request body. On failure it writes the error
// response and reports false; the caller must return.
func readBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeBodyError(w, err)
		return "", false
	}
	return string(body), true
}

// writeBodyError distinguishes a body over the size cap, which is the
// client's problem to shrink, from a body that could not be parsed.
func writeBodyError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, "invalid request body", http.StatusBadRequest)
}

// accessToken extracts the access token presented with the request: a
// Bearer or DPoP Authorization header wins, then the access_token form
// parameter.
func accessToken(r *http.Request, form url.Values) string {
	scheme, rest, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if found && (strings.EqualFold(scheme, "Bearer") || strings.EqualFold(scheme, "DPoP")) {
		return strings.TrimSpace(rest)
	}
	return form.Get("access_token")
}

// dpopFields returns the DPoP proof together with the HTTP method and
// URI the proof must bind to. All three are empty when the request
// carries no proof.
func dpopFields(r *http.Request) (proof, htm, htu string) {
	proof = r.Header.Get("DPoP")
	if proof == "" {
		return "", "", ""
	}
	return proof, r.Method, requestURL(r)
}

// requestURL reconstructs the external URL of the request, without the
// query string.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + r.Host + r.URL.Path
}

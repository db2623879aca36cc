// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package clientauth extracts client credentials from incoming requests:
// Basic authentication headers and mutual-TLS client certificate chains.
//
// Absence is a normal case throughout this package. A missing or malformed
// header yields nil, never an error, so callers can degrade to
// unauthenticated handling.
package clientauth

import (
	"encoding/base64"
	"strings"
)

// BasicCredentials is a client ID and secret carried in a Basic
// authentication header. Either field may be empty.
type BasicCredentials struct {
	UserID   string
	Password string
}

// ParseBasic parses the value of an Authorization header into
// BasicCredentials. It returns nil when the header is empty, does not use
// the Basic scheme, is not valid base64, or lacks the colon separator.
func ParseBasic(header string) *BasicCredentials {
	scheme, rest, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return nil
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(rest))
	if err != nil {
		return nil
	}

	userID, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return nil
	}

	return &BasicCredentials{UserID: userID, Password: password}
}

// Format renders the credentials as an Authorization header value.
func (c *BasicCredentials) Format() string {
	raw := c.UserID + ":" + c.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}

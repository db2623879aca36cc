// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package clientauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   *BasicCredentials
	}{
		{
			name:   "valid credentials",
			header: "Basic Y2xpZW50LTE6cy1lLWMtci1lLXQ=", // client-1:s-e-c-r-e-t
			want:   &BasicCredentials{UserID: "client-1", Password: "s-e-c-r-e-t"},
		},
		{
			name:   "empty password",
			header: "Basic Y2xpZW50LTE6", // client-1:
			want:   &BasicCredentials{UserID: "client-1", Password: ""},
		},
		{
			name:   "scheme is case insensitive",
			header: "basic Y2xpZW50LTE6cHc=", // client-1:pw
			want:   &BasicCredentials{UserID: "client-1", Password: "pw"},
		},
		{
			name:   "empty header",
			header: "",
			want:   nil,
		},
		{
			name:   "bearer scheme",
			header: "Bearer some-token",
			want:   nil,
		},
		{
			name:   "not base64",
			header: "Basic !!!not-base64!!!",
			want:   nil,
		},
		{
			name:   "missing separator",
			header: "Basic bm9zZXBhcmF0b3I=", // noseparator
			want:   nil,
		},
		{
			name:   "scheme without value",
			header: "Basic",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseBasic(tt.header))
		})
	}
}

func TestBasicCredentialsRoundTrip(t *testing.T) {
	t.Parallel()

	orig := &BasicCredentials{UserID: "client-42", Password: "p@ss:word"}

	parsed := ParseBasic(orig.Format())
	require.NotNil(t, parsed)
	assert.Equal(t, orig, parsed)
}

// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stacklok/authrelay/pkg/decision"
	"github.com/stacklok/authrelay/pkg/handler"
)

func TestMergeProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing []decision.Property
		extras   []decision.Property
		want     []decision.Property
	}{
		{
			name: "override keeps position, new keys append",
			existing: []decision.Property{
				{Key: "a", Value: "1"},
				{Key: "b", Value: "2"},
			},
			extras: []decision.Property{
				{Key: "a", Value: "A"},
				{Key: "c", Value: "3"},
			},
			want: []decision.Property{
				{Key: "a", Value: "A"},
				{Key: "b", Value: "2"},
				{Key: "c", Value: "3"},
			},
		},
		{
			name:     "nil existing",
			existing: nil,
			extras:   []decision.Property{{Key: "x", Value: "y"}},
			want:     []decision.Property{{Key: "x", Value: "y"}},
		},
		{
			name:     "nil extras",
			existing: []decision.Property{{Key: "x", Value: "y"}},
			extras:   nil,
			want:     []decision.Property{{Key: "x", Value: "y"}},
		},
		{
			name:     "reserved keys dropped",
			existing: []decision.Property{{Key: "plan", Value: "free"}},
			extras: []decision.Property{
				{Key: "access_token", Value: "forged"},
				{Key: "expires_in", Value: "999999"},
				{Key: "plan", Value: "pro"},
				{Key: "id_token", Value: "forged"},
			},
			want: []decision.Property{{Key: "plan", Value: "pro"}},
		},
		{
			name:     "both nil",
			existing: nil,
			extras:   nil,
			want:     []decision.Property{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := handler.MergeProperties(tt.existing, tt.extras)
			assert.Equal(t, tt.want, got)
		})
	}
}

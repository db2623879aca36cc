// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"github.com/stacklok/authrelay/pkg/decision"
)

// reservedPropertyKeys are top-level token response members. A deployment
// must never shadow them through extra properties, so they are stripped
// before the merge.
var reservedPropertyKeys = map[string]struct{}{
	"access_token":      {},
	"token_type":        {},
	"expires_in":        {},
	"refresh_token":     {},
	"scope":             {},
	"error":             {},
	"error_description": {},
	"error_uri":         {},
	"id_token":          {},
}

// MergeProperties merges extras into existing. Order is preserved:
// existing entries keep their position, a colliding key takes the extra's
// value in place, and new keys are appended in the order returned by the
// deployment. Extras carrying reserved keys are dropped.
func MergeProperties(existing, extras []decision.Property) []decision.Property {
	merged := make([]decision.Property, len(existing))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, p := range merged {
		index[p.Key] = i
	}

	for _, extra := range extras {
		if _, reserved := reservedPropertyKeys[extra.Key]; reserved {
			continue
		}
		if i, ok := index[extra.Key]; ok {
			merged[i].Value = extra.Value
			continue
		}
		index[extra.Key] = len(merged)
		merged = append(merged, extra)
	}
	return merged
}

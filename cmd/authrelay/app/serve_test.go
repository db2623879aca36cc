// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestServeEnvironmentConfig(t *testing.T) {
	// t.Setenv forbids t.Parallel; viper state is process-global anyway.
	newServeCmd()

	t.Setenv("AUTHRELAY_DECISION_URL", "https://decider.example.com")
	t.Setenv("AUTHRELAY_SERVICE_TOKEN", "svc-token-1")
	t.Setenv("AUTHRELAY_CERT_HEADER", "X-Forwarded-Client-Cert")

	assert.Equal(t, "https://decider.example.com", viper.GetString("decision-url"))
	assert.Equal(t, "svc-token-1", viper.GetString("service-token"))
	assert.Equal(t, "X-Forwarded-Client-Cert", viper.GetString("cert-header"))
}

func TestServeFlagDefaults(t *testing.T) {
	newServeCmd()

	assert.Equal(t, ":8080", viper.GetString("address"))
	assert.Empty(t, viper.GetString("decision-url"))
}

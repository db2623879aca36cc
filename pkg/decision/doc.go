// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package decision defines the boundary to the remote authorization
// decision service.
//
// The decision service owns all authorization state (clients, consents,
// tokens). This package holds the Client interface through which endpoint
// handlers talk to it, the request/response types exchanged on each call,
// and the per-endpoint Action enumerations that dictate how a handler must
// render its HTTP response.
//
// Every call is a single blocking request/response exchange. Failures are
// never retried here; retry and timeout policy belong to the Client
// implementation or the surrounding deployment.
package decision

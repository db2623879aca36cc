// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package handler implements the action-dispatch protocol between
// OAuth/OIDC endpoints and the remote decision service.
//
// One handler exists per endpoint kind (pushed authorization request,
// userinfo, grant management, dynamic client registration, token issuance,
// credential offer). Each handler normalizes the incoming request into a
// parameter envelope, makes exactly one call to the decision service
// (two for the flows that separately validate and then issue a payload),
// and deterministically renders the returned action into a
// protocol-correct HTTP response using fixed per-endpoint status tables.
//
// Predicted protocol outcomes travel as action values and are never
// errors. Fatal conditions (a failed decision call, an action outside the
// endpoint's closed set, a contract violation) are funneled through the
// configured ErrorTranslator exactly once and still produce a complete
// response; no fault escapes a handler.
package handler

// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

//go:generate mockgen -destination=mocks/mock_spi.go -package=mocks -source=spi.go Provider

import (
	"github.com/stacklok/authrelay/pkg/decision"
)

// CustomGrantKind names a grant type whose handling the decision service
// delegates to the deployment.
type CustomGrantKind string

// Grant kinds passed to CustomGrantResponse.
const (
	GrantKindTokenExchange CustomGrantKind = "token_exchange"
	GrantKindJWTBearer     CustomGrantKind = "jwt_bearer"
)

// Provider answers the identity and authorization questions this library
// cannot answer itself. A deployment implements it once and hands it to
// the handlers that need it.
//
// Sequencing contract: IsAuthorized is consulted first on issuance paths;
// when it returns false no other method is invoked and the handler
// renders the endpoint's fixed denial response. When it returns true,
// Subject must return a concrete identifier; an empty subject is a
// policy violation that aborts the flow. Claim may be called any number
// of times. ExtraProperties is consulted once per issuance path.
type Provider interface {
	// IsAuthorized reports whether the end-user granted authorization.
	IsAuthorized() bool

	// AuthenticatedAt returns the time of end-user authentication as
	// seconds since the Unix epoch, or 0 when unknown.
	AuthenticatedAt() int64

	// Subject returns the unique identifier of the end-user. Empty means
	// unknown.
	Subject() string

	// ACR returns the authentication context class reference satisfied
	// when the end-user was authenticated, or empty when unknown.
	ACR() string

	// Claim returns the value of the named claim for the end-user,
	// preferring the given BCP 47 language tag when one is supplied.
	// nil means the claim is not available.
	Claim(name, languageTag string) any

	// ExtraProperties returns arbitrary properties to bind to tokens
	// issued on this flow. They are merged into the properties already
	// held by the decision service after reserved keys are stripped; on
	// key collision the returned value wins.
	ExtraProperties() []decision.Property

	// AuthenticateUser verifies resource owner password credentials and
	// returns the end-user's subject, or empty when verification fails.
	// Only consulted for the resource owner password credentials grant.
	AuthenticateUser(username, password string) string

	// CustomGrantResponse builds the whole token response for a grant
	// type the decision service flagged for custom handling. Returning
	// nil makes the handler respond with the fixed unsupported-grant-type
	// outcome.
	CustomGrantResponse(kind CustomGrantKind, res *decision.TokenResponse) *Response
}

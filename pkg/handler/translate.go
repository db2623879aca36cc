// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// FatalError is a contract violation detected during handler processing:
// a failed or malformed decision-service exchange, an action outside the
// endpoint's closed set, or a policy violation such as a missing subject.
// The response is determined at construction time; translators observe
// the error but never change what the client receives.
type FatalError struct {
	// Endpoint is the call path on which the condition was detected.
	Endpoint Endpoint

	// Err is the underlying condition.
	Err error

	// Response is the ready-made response the handler returns.
	Response *Response
}

// Error implements error.
func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying condition.
func (e *FatalError) Unwrap() error {
	return e.Err
}

// ErrorTranslator observes a fatal condition. The default implementation
// records diagnostics; overrides may add side effects (alerting,
// additional logging) but must not suppress or alter the response, which
// is already fixed on the error.
type ErrorTranslator func(ctx context.Context, err *FatalError)

// newDefaultTranslator returns the default translator, which logs the
// condition with a generated incident ID for correlation.
func newDefaultTranslator(logger *slog.Logger) ErrorTranslator {
	return func(ctx context.Context, err *FatalError) {
		logger.ErrorContext(ctx, "request handling failed",
			"incident_id", uuid.NewString(),
			"endpoint", string(err.Endpoint),
			"error", err.Err,
		)
	}
}

// errUnknownAction builds the fatal condition for an action outside the
// endpoint's closed set. The message names the offending value and the
// call path.
func errUnknownAction(endpoint Endpoint, action string) *FatalError {
	msg := fmt.Sprintf("unknown action %q from %s", action, endpoint)
	return &FatalError{
		Endpoint: endpoint,
		Err:      errors.New(msg),
		Response: newResponse(http.StatusInternalServerError, msg, mediaTypeText, nil),
	}
}

// errUnexpected wraps a failed decision-service exchange or any other
// unexpected condition.
func errUnexpected(endpoint Endpoint, err error) *FatalError {
	msg := fmt.Sprintf("unexpected error on %s: %v", endpoint, err)
	return &FatalError{
		Endpoint: endpoint,
		Err:      err,
		Response: newResponse(http.StatusInternalServerError, msg, mediaTypeText, nil),
	}
}

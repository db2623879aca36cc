// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/stacklok/authrelay/pkg/decision"
)

// base carries the collaborators shared by every handler. Handlers are
// stateless beyond these fields and safe for concurrent use.
type base struct {
	client     decision.Client
	logger     *slog.Logger
	translator ErrorTranslator
}

// Option configures a handler.
type Option func(*base)

// WithLogger sets the logger used for diagnostics. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		b.logger = logger
	}
}

// WithErrorTranslator replaces the default error translator. The
// translator is invoked exactly once per fatal condition, after the
// response has been determined.
func WithErrorTranslator(t ErrorTranslator) Option {
	return func(b *base) {
		b.translator = t
	}
}

func newBase(client decision.Client, opts ...Option) base {
	b := base{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	if b.translator == nil {
		b.translator = newDefaultTranslator(b.logger)
	}
	return b
}

// fail routes a fatal condition through the translator and returns the
// ready-made response. Every handler funnels its error path through here,
// so the translator fires exactly once per invocation.
func (b *base) fail(ctx context.Context, err error) *Response {
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		fatal = errUnexpected("", err)
	}
	b.translator(ctx, fatal)
	return fatal.Response
}

// splitChain separates a certificate chain into the client's own
// certificate and the rest of the path.
func splitChain(chain []string) (leaf string, tail []string) {
	if len(chain) == 0 {
		return "", nil
	}
	if len(chain) > 1 {
		tail = chain[1:]
	}
	return chain[0], tail
}

// dpopNonceHeader returns a header carrying the one-time DPoP nonce, or
// nil when the decision service supplied none.
func dpopNonceHeader(nonce string) http.Header {
	if nonce == "" {
		return nil
	}
	header := http.Header{}
	header.Set("DPoP-Nonce", nonce)
	return header
}

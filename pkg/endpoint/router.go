// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/stacklok/authrelay/pkg/clientauth"
	"github.com/stacklok/authrelay/pkg/decision"
	"github.com/stacklok/authrelay/pkg/handler"
)

// RequestOptions derives per-request decision options from the incoming
// request. A nil return means no extra options.
type RequestOptions func(r *http.Request) decision.Options

// Router exposes the endpoints over HTTP.
type Router struct {
	client     decision.Client
	provider   handler.Provider
	logger     *slog.Logger
	extractors []clientauth.ChainExtractor
	reqOptions RequestOptions

	par          *handler.PushedAuthReqHandler
	gm           *handler.GrantManagementHandler
	userinfo     *handler.UserInfoHandler
	token        *handler.TokenHandler
	registration *handler.ClientRegistrationHandler
	offer        *handler.CredentialOfferHandler
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used by the router and its handlers.
func WithLogger(logger *slog.Logger) Option {
	return func(rt *Router) {
		rt.logger = logger
	}
}

// WithProvider sets the deployment hook consulted by the userinfo and
// token endpoints. Without one, userinfo denies claim release and the
// delegated grant types are rejected.
func WithProvider(provider handler.Provider) Option {
	return func(rt *Router) {
		rt.provider = provider
	}
}

// WithChainExtractors replaces the default certificate extraction
// strategies. Extractors are consulted in order; the first non-empty
// chain wins.
func WithChainExtractors(extractors ...clientauth.ChainExtractor) Option {
	return func(rt *Router) {
		rt.extractors = extractors
	}
}

// WithRequestOptions sets a hook that derives per-request decision
// options from the incoming request.
func WithRequestOptions(fn RequestOptions) Option {
	return func(rt *Router) {
		rt.reqOptions = fn
	}
}

// NewRouter creates a router backed by the given decision client.
func NewRouter(client decision.Client, opts ...Option) *Router {
	rt := &Router{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(rt)
	}

	hOpts := []handler.Option{handler.WithLogger(rt.logger)}
	rt.par = handler.NewPushedAuthReqHandler(client, hOpts...)
	rt.gm = handler.NewGrantManagementHandler(client, hOpts...)
	rt.userinfo = handler.NewUserInfoHandler(client, rt.provider, hOpts...)
	rt.token = handler.NewTokenHandler(client, rt.provider, hOpts...)
	rt.registration = handler.NewClientRegistrationHandler(client, hOpts...)
	rt.offer = handler.NewCredentialOfferHandler(client, hOpts...)
	return rt
}

// Routes returns a router with all endpoints registered.
func (rt *Router) Routes() http.Handler {
	r := chi.NewRouter()
	rt.Register(r)
	return r
}

// Register registers the endpoints on the provided router.
func (rt *Router) Register(r chi.Router) {
	r.Post("/par", rt.handlePushedAuthReq)
	r.Get("/gm/{grantID}", rt.handleGrantQuery)
	r.Delete("/gm/{grantID}", rt.handleGrantRevoke)
	r.Get("/userinfo", rt.handleUserInfo)
	r.Post("/userinfo", rt.handleUserInfo)
	r.Post("/token", rt.handleToken)
	r.Post("/register", rt.handleClientRegister)
	r.Get("/register/{clientID}", rt.handleClientGet)
	r.Put("/register/{clientID}", rt.handleClientUpdate)
	r.Delete("/register/{clientID}", rt.handleClientDelete)
	r.Get("/offer/{identifier}", rt.handleCredentialOffer)
}

func (rt *Router) options(r *http.Request) decision.Options {
	if rt.reqOptions == nil {
		return nil
	}
	return rt.reqOptions(r)
}

func (rt *Router) handlePushedAuthReq(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm(w, r)
	if !ok {
		return
	}

	params := &handler.PushedAuthReqParams{
		Parameters:             form,
		Authorization:          r.Header.Get("Authorization"),
		ClientCertificateChain: rt.extractChain(r),
	}
	params.DPoP, params.HTM, params.HTU = dpopFields(r)

	rt.par.Handle(r.Context(), params, rt.options(r)).Send(w)
}

func (rt *Router) handleGrantQuery(w http.ResponseWriter, r *http.Request) {
	rt.grantManagement(w, r, decision.GrantManagementQuery)
}

func (rt *Router) handleGrantRevoke(w http.ResponseWriter, r *http.Request) {
	rt.grantManagement(w, r, decision.GrantManagementRevoke)
}

func (rt *Router) grantManagement(w http.ResponseWriter, r *http.Request, op decision.GrantManagementOperation) {
	params := &handler.GrantManagementParams{
		Operation:         op,
		GrantID:           chi.URLParam(r, "grantID"),
		AccessToken:       accessToken(r, nil),
		ClientCertificate: rt.extractCertificate(r),
	}
	params.DPoP, params.HTM, params.HTU = dpopFields(r)

	rt.gm.Handle(r.Context(), params, rt.options(r)).Send(w)
}

func (rt *Router) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	var form url.Values
	if r.Method == http.MethodPost {
		parsed, ok := parseForm(w, r)
		if !ok {
			return
		}
		form = parsed
	}

	params := &handler.UserInfoParams{
		AccessToken:       accessToken(r, form),
		ClientCertificate: rt.extractCertificate(r),
	}
	params.DPoP, params.HTM, params.HTU = dpopFields(r)

	rt.userinfo.Handle(r.Context(), params, rt.options(r)).Send(w)
}

func (rt *Router) handleToken(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm(w, r)
	if !ok {
		return
	}

	params := &handler.TokenParams{
		Parameters:             form,
		Authorization:          r.Header.Get("Authorization"),
		ClientCertificateChain: rt.extractChain(r),
	}
	params.DPoP, params.HTM, params.HTU = dpopFields(r)

	rt.token.Handle(r.Context(), params, rt.options(r)).Send(w)
}

func (rt *Router) handleClientRegister(w http.ResponseWriter, r *http.Request) {
	rt.clientRegistration(w, r, decision.ClientRegistrationOpRegister)
}

func (rt *Router) handleClientGet(w http.ResponseWriter, r *http.Request) {
	rt.clientRegistration(w, r, decision.ClientRegistrationOpGet)
}

func (rt *Router) handleClientUpdate(w http.ResponseWriter, r *http.Request) {
	rt.clientRegistration(w, r, decision.ClientRegistrationOpUpdate)
}

func (rt *Router) handleClientDelete(w http.ResponseWriter, r *http.Request) {
	rt.clientRegistration(w, r, decision.ClientRegistrationOpDelete)
}

func (rt *Router) clientRegistration(w http.ResponseWriter, r *http.Request, op decision.ClientRegistrationOperation) {
	var body string
	if op == decision.ClientRegistrationOpRegister || op == decision.ClientRegistrationOpUpdate {
		raw, ok := readBody(w, r)
		if !ok {
			return
		}
		body = raw
	}

	params := &handler.ClientRegistrationParams{
		Operation:     op,
		Body:          body,
		Authorization: r.Header.Get("Authorization"),
		ClientID:      chi.URLParam(r, "clientID"),
	}

	rt.registration.Handle(r.Context(), params, rt.options(r)).Send(w)
}

func (rt *Router) handleCredentialOffer(w http.ResponseWriter, r *http.Request) {
	params := &handler.CredentialOfferParams{
		Identifier: chi.URLParam(r, "identifier"),
	}

	rt.offer.Handle(r.Context(), params, rt.options(r)).Send(w)
}

func (rt *Router) extractChain(r *http.Request) []string {
	if rt.extractors == nil {
		return clientauth.ExtractChain(r)
	}
	for _, extractor := range rt.extractors {
		if chain := extractor.ExtractChain(r); len(chain) > 0 {
			return chain
		}
	}
	return nil
}

func (rt *Router) extractCertificate(r *http.Request) string {
	chain := rt.extractChain(r)
	if len(chain) == 0 {
		return ""
	}
	return chain[0]
}

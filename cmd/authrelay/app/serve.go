// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/authrelay/pkg/clientauth"
	"github.com/stacklok/authrelay/pkg/decision"
	"github.com/stacklok/authrelay/pkg/endpoint"
)

const (
	defaultGracefulTimeout = 30 * time.Second
	serverRequestTimeout   = 30 * time.Second // Covers one decision-service round trip plus slack
	serverReadTimeout      = 10 * time.Second
	serverWriteTimeout     = 35 * time.Second // Must be > serverRequestTimeout to let middleware handle timeout
	serverIdleTimeout      = 60 * time.Second
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the endpoint relay server",
		Long: `Start the HTTP server exposing the relay endpoints. The decision
service base URL and the service access token are required; they can also be
supplied through the AUTHRELAY_DECISION_URL and AUTHRELAY_SERVICE_TOKEN
environment variables.`,
		RunE: runServe,
	}

	cmd.Flags().String("address", ":8080", "Address to listen on")
	cmd.Flags().String("decision-url", "", "Base URL of the decision service")
	cmd.Flags().String("service-token", "", "Service access token for the decision service")
	cmd.Flags().String("cert-header", clientauth.DefaultCertHeader,
		"Header carrying the forwarded client certificate")
	cmd.Flags().String("chain-header-prefix", clientauth.DefaultChainHeaderPrefix,
		"Prefix of the numbered headers carrying the forwarded certificate chain")

	for _, flag := range []string{"address", "decision-url", "service-token", "cert-header", "chain-header-prefix"} {
		if err := viper.BindPFlag(flag, cmd.Flags().Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
		}
	}

	viper.SetEnvPrefix("AUTHRELAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	address := viper.GetString("address")
	decisionURL := viper.GetString("decision-url")
	serviceToken := viper.GetString("service-token")

	if decisionURL == "" {
		return fmt.Errorf("decision-url is required")
	}
	if serviceToken == "" {
		return fmt.Errorf("service-token is required")
	}

	client := decision.NewHTTPClient(decisionURL,
		decision.WithServiceToken(serviceToken),
		decision.WithLogger(slog.Default()),
	)

	headerExtractor := &clientauth.HeaderExtractor{
		CertHeader:        viper.GetString("cert-header"),
		ChainHeaderPrefix: viper.GetString("chain-header-prefix"),
		MaxChainLength:    4,
	}

	relay := endpoint.NewRouter(client,
		endpoint.WithLogger(slog.Default()),
		endpoint.WithChainExtractors(clientauth.ConnectionStateExtractor(), headerExtractor),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(serverRequestTimeout))
	relay.Register(r)

	server := &http.Server{
		Addr:         address,
		Handler:      r,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", address, "decision_url", decisionURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-cmd.Context().Done():
	}

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server shutdown complete")
	return nil
}

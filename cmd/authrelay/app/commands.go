// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app provides the entry point for the authrelay command-line
// application.
package app

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:               "authrelay",
	DisableAutoGenTag: true,
	Short:             "OAuth/OIDC endpoint relay backed by a remote decision service",
	Long: `authrelay exposes OAuth 2.0 and OpenID Connect endpoints (pushed
authorization requests, token, userinfo, grant management, dynamic client
registration, credential offers) and relays every protocol decision to a
remote decision service. The server itself holds no keys and issues no
tokens; it translates decision-service verdicts into HTTP responses.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		_ = cmd.Help()
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogger()
	},
}

// NewRootCmd creates a new root command for the authrelay CLI.
func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		slog.Error("Error binding debug flag", "error", err)
	}

	rootCmd.AddCommand(newServeCmd())

	// Silence printing the usage on error
	rootCmd.SilenceUsage = true

	return rootCmd
}

// initLogger installs the process-wide structured logger.
func initLogger() {
	level := slog.LevelInfo
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

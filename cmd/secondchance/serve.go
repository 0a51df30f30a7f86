// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/secondchance/secondchance/internal/auth"
	authpg "github.com/secondchance/secondchance/internal/auth/postgres"
	"github.com/secondchance/secondchance/internal/config"
	"github.com/secondchance/secondchance/internal/logging"
	"github.com/secondchance/secondchance/internal/observability"
	"github.com/secondchance/secondchance/internal/store"
	"github.com/secondchance/secondchance/internal/web"
	"github.com/secondchance/secondchance/internal/xdg"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand with all flags configured.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the account service HTTP API",
		Long: `Start the HTTP API serving the register, login, and update
endpoints, plus a separate metrics/health server.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configFile
			if path == "" {
				path = xdg.DefaultConfigFile()
			}
			cfg, err := config.Load(path, cmd.Flags())
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("http-addr", config.DefaultHTTPAddr, "HTTP API listen address")
	cmd.Flags().String("metrics-addr", config.DefaultMetricsAddr, "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().Int("bcrypt-cost", config.DefaultBcryptCost, "bcrypt cost factor for password hashing")
	cmd.Flags().String("log-format", config.DefaultLogFormat, "log format (json or text)")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "minimum log level (debug, info, warn, error)")
	cmd.Flags().String("tls-cert", "", "TLS certificate file (serves HTTPS when set with tls-key)")
	cmd.Flags().String("tls-key", "", "TLS private key file")

	return cmd
}

// runServe starts the account service and blocks until shutdown.
func runServe(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.Setup("secondchance", version, cfg.LogFormat, cfg.LogLevel, nil)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	logger.Info("connected to database")

	issuer, err := auth.NewJWTIssuer([]byte(cfg.JWTSecret))
	if err != nil {
		return err
	}

	service, err := auth.NewAccountServiceWithLogger(
		authpg.NewAccountRepository(st.Pool()),
		auth.NewBcryptHasher(cfg.BcryptCost),
		issuer,
		logger,
	)
	if err != nil {
		return err
	}

	var metrics *observability.Metrics
	var obs *observability.Server
	if cfg.MetricsAddr != "" {
		obs = observability.NewServer(cfg.MetricsAddr, func() bool {
			pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return st.Pool().Ping(pingCtx) == nil
		})
		if _, err := obs.Start(); err != nil {
			return err
		}
		metrics = obs.Metrics()
	}

	httpSrv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: web.NewRouter(web.RouterConfig{
			Logger:  logger,
			Service: service,
			Metrics: metrics,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening", "addr", cfg.HTTPAddr, "tls", cfg.TLSEnabled())
		var err error
		if cfg.TLSEnabled() {
			err = httpSrv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = httpSrv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown error", "error", err)
	}
	if obs != nil {
		if err := obs.Stop(shutdownCtx); err != nil {
			logger.Warn("observability server shutdown error", "error", err)
		}
	}

	return nil
}

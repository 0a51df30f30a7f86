// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/secondchance/secondchance/internal/observability"
)

// RouterConfig holds dependencies for the HTTP router.
type RouterConfig struct {
	Logger  *slog.Logger
	Service AccountService
	Metrics *observability.Metrics // nil disables request metrics
}

// NewRouter creates the HTTP router with all auth routes configured.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(Recovery(cfg.Logger))
	r.Use(Logging(cfg.Logger))

	h := NewAuthHandler(cfg.Service, cfg.Logger, cfg.Metrics)

	api := r.PathPrefix("/api/auth").Subrouter()
	api.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/update", h.Update).Methods(http.MethodPut)

	return r
}

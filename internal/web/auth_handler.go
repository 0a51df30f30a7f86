// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/secondchance/secondchance/internal/auth"
	"github.com/secondchance/secondchance/internal/observability"
	"github.com/secondchance/secondchance/pkg/errutil"
)

// AccountService is the subset of auth.AccountService the handler uses.
type AccountService interface {
	Register(ctx context.Context, in auth.RegisterInput) (*auth.RegisterResult, error)
	Authenticate(ctx context.Context, email, password string) (*auth.AuthenticateResult, error)
	UpdateProfile(ctx context.Context, identityEmail, name string) (*auth.UpdateProfileResult, error)
}

// AuthHandler handles the register, login, and update endpoints. It
// translates domain errors into the exact status codes and bodies
// existing clients depend on.
type AuthHandler struct {
	service AccountService
	logger  *slog.Logger
	metrics *observability.Metrics // nil when metrics are disabled
}

// NewAuthHandler creates an AuthHandler. metrics may be nil.
func NewAuthHandler(service AccountService, logger *slog.Logger, metrics *observability.Metrics) *AuthHandler {
	return &AuthHandler{service: service, logger: logger, metrics: metrics}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateRequest struct {
	Name string `json:"name"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.record("register", http.StatusBadRequest)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.service.Register(r.Context(), auth.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		var vErr *auth.ValidationError
		if errors.As(err, &vErr) {
			h.record("register", http.StatusBadRequest)
			writeJSON(w, http.StatusBadRequest, map[string][]auth.FieldViolation{"errors": vErr.Violations})
			return
		}
		if errors.Is(err, auth.ErrDuplicateEmail) {
			h.record("register", http.StatusBadRequest)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email id already exists"})
			return
		}
		errutil.LogError(h.logger, "registration failed", err)
		h.record("register", http.StatusInternalServerError)
		writeInternalError(w)
		return
	}

	h.record("register", http.StatusOK)
	writeJSON(w, http.StatusOK, map[string]string{
		"authtoken": result.Token,
		"email":     result.Email,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.record("login", http.StatusBadRequest)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotFound):
			h.record("login", http.StatusNotFound)
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
		case errors.Is(err, auth.ErrWrongPassword):
			h.record("login", http.StatusUnauthorized)
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Wrong password"})
		default:
			errutil.LogError(h.logger, "login failed", err)
			h.record("login", http.StatusInternalServerError)
			// Login is the one endpoint whose 500 body carries details.
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Internal server error",
				"details": err.Error(),
			})
		}
		return
	}

	h.record("login", http.StatusOK)
	writeJSON(w, http.StatusOK, map[string]string{
		"authtoken": result.Token,
		"userEmail": result.Email,
		"userName":  result.FirstName,
	})
}

// Update handles PUT /api/auth/update. The identity email arrives in
// the Email request header, not the body.
func (h *AuthHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.record("update", http.StatusBadRequest)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), r.Header.Get("Email"), req.Name)
	if err != nil {
		var vErr *auth.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.record("update", http.StatusBadRequest)
			writeJSON(w, http.StatusBadRequest, map[string][]auth.FieldViolation{"errors": vErr.Violations})
		case errors.Is(err, auth.ErrMissingIdentity):
			h.record("update", http.StatusBadRequest)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email not found in request headers"})
		case errors.Is(err, auth.ErrNotFound):
			h.record("update", http.StatusNotFound)
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
		default:
			errutil.LogError(h.logger, "profile update failed", err)
			h.record("update", http.StatusInternalServerError)
			writeInternalError(w)
		}
		return
	}

	h.record("update", http.StatusOK)
	writeJSON(w, http.StatusOK, map[string]string{"authtoken": result.Token})
}

func (h *AuthHandler) record(operation string, status int) {
	if h.metrics != nil {
		h.metrics.RecordAuthRequest(operation, status)
	}
}

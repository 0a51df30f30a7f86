// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

// Package web exposes the account operations over HTTP.
package web

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data) //nolint:errcheck // client may disconnect
	}
}

// writeInternalError writes the plain-text 500 body used by the
// register and update paths.
func writeInternalError(w http.ResponseWriter) {
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

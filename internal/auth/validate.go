// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package auth

import (
	"fmt"
	"strings"
)

// MaxNameLength caps first and last names.
const MaxNameLength = 100

// FieldViolation describes a single structural validation failure.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries the full list of violations for a rejected
// request. It is returned before any store access happens.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	reasons := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		reasons[i] = fmt.Sprintf("%s: %s", v.Field, v.Reason)
	}
	return "validation failed: " + strings.Join(reasons, "; ")
}

// ValidateRegistration checks the structural shape of a registration
// request before any hashing or store access happens.
func ValidateRegistration(email, password string) []FieldViolation {
	var violations []FieldViolation
	if err := ValidateEmail(email); err != nil {
		violations = append(violations, FieldViolation{Field: "email", Reason: err.Error()})
	}
	if password == "" {
		violations = append(violations, FieldViolation{Field: "password", Reason: "password is required"})
	}
	return violations
}

// ValidateProfileUpdate checks the structural shape of a profile update
// request. It is a pure function: zero violations means the request may
// proceed to the store.
func ValidateProfileUpdate(name string) []FieldViolation {
	var violations []FieldViolation
	if strings.TrimSpace(name) == "" {
		violations = append(violations, FieldViolation{Field: "name", Reason: "name is required"})
	}
	if len(name) > MaxNameLength {
		violations = append(violations, FieldViolation{
			Field:  "name",
			Reason: fmt.Sprintf("name must be at most %d characters", MaxNameLength),
		})
	}
	return violations
}

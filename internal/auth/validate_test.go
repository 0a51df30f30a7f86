// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secondchance/secondchance/internal/auth"
)

func TestValidateProfileUpdate(t *testing.T) {
	t.Run("valid name has no violations", func(t *testing.T) {
		assert.Empty(t, auth.ValidateProfileUpdate("Alice"))
	})

	t.Run("missing name", func(t *testing.T) {
		violations := auth.ValidateProfileUpdate("")
		require.Len(t, violations, 1)
		assert.Equal(t, "name", violations[0].Field)
		assert.Equal(t, "name is required", violations[0].Reason)
	})

	t.Run("whitespace-only name", func(t *testing.T) {
		violations := auth.ValidateProfileUpdate("   ")
		require.Len(t, violations, 1)
		assert.Equal(t, "name", violations[0].Field)
	})

	t.Run("name too long", func(t *testing.T) {
		violations := auth.ValidateProfileUpdate(strings.Repeat("a", auth.MaxNameLength+1))
		require.Len(t, violations, 1)
		assert.Equal(t, "name", violations[0].Field)
		assert.Contains(t, violations[0].Reason, "at most")
	})
}

func TestValidateRegistration(t *testing.T) {
	t.Run("valid input has no violations", func(t *testing.T) {
		assert.Empty(t, auth.ValidateRegistration("a@x.com", "pw1"))
	})

	t.Run("invalid email", func(t *testing.T) {
		violations := auth.ValidateRegistration("not-an-email", "pw1")
		require.Len(t, violations, 1)
		assert.Equal(t, "email", violations[0].Field)
	})

	t.Run("empty password", func(t *testing.T) {
		violations := auth.ValidateRegistration("a@x.com", "")
		require.Len(t, violations, 1)
		assert.Equal(t, "password", violations[0].Field)
		assert.Equal(t, "password is required", violations[0].Reason)
	})

	t.Run("both invalid reports both fields", func(t *testing.T) {
		violations := auth.ValidateRegistration("", "")
		require.Len(t, violations, 2)
		assert.Equal(t, "email", violations[0].Field)
		assert.Equal(t, "password", violations[1].Field)
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &auth.ValidationError{Violations: []auth.FieldViolation{
		{Field: "name", Reason: "name is required"},
		{Field: "other", Reason: "bad shape"},
	}}
	assert.Equal(t, "validation failed: name: name is required; other: bad shape", err.Error())
}

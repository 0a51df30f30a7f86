// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secondchance/secondchance/internal/auth"
)

func parseClaims(t *testing.T, token string, secret []byte) *auth.SessionClaims {
	t.Helper()
	claims := &auth.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return claims
}

func TestNewJWTIssuer_EmptySecret(t *testing.T) {
	issuer, err := auth.NewJWTIssuer(nil)
	require.Error(t, err)
	assert.Nil(t, issuer)
}

func TestJWTIssuer_Issue(t *testing.T) {
	secret := []byte("test-secret")
	issuer, err := auth.NewJWTIssuer(secret)
	require.NoError(t, err)

	t.Run("zero ttl omits expiry", func(t *testing.T) {
		token, err := issuer.Issue("01ARZ3NDEKTSV4RRFFQ69G5FAV", 0)
		require.NoError(t, err)

		claims := parseClaims(t, token, secret)
		assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", claims.UserID)
		assert.Nil(t, claims.ExpiresAt)
	})

	t.Run("positive ttl sets expiry", func(t *testing.T) {
		token, err := issuer.Issue("01ARZ3NDEKTSV4RRFFQ69G5FAV", auth.SessionTokenTTL)
		require.NoError(t, err)

		claims := parseClaims(t, token, secret)
		require.NotNil(t, claims.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	})

	t.Run("empty user ID is rejected", func(t *testing.T) {
		_, err := issuer.Issue("", 0)
		require.Error(t, err)
	})
}

func TestJWTIssuer_UserID(t *testing.T) {
	secret := []byte("test-secret")
	issuer, err := auth.NewJWTIssuer(secret)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		token, err := issuer.Issue("some-account-id", 0)
		require.NoError(t, err)

		userID, err := issuer.UserID(token)
		require.NoError(t, err)
		assert.Equal(t, "some-account-id", userID)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		other, err := auth.NewJWTIssuer([]byte("other-secret"))
		require.NoError(t, err)
		token, err := other.Issue("some-account-id", 0)
		require.NoError(t, err)

		_, err = issuer.UserID(token)
		require.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := issuer.Issue("some-account-id", -time.Minute)
		require.NoError(t, err)

		// Negative ttl means no expiry claim at all, so the token stays
		// valid; only a positive ttl in the past can expire. Build one
		// directly to prove expiry is enforced.
		claims := auth.SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
			UserID: "some-account-id",
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		require.NoError(t, err)

		_, err = issuer.UserID(expired)
		require.Error(t, err)

		// The token without an expiry still verifies.
		_, err = issuer.UserID(token)
		require.NoError(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := issuer.UserID("not.a.jwt")
		require.Error(t, err)
	})
}

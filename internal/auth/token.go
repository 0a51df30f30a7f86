// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"
)

// SessionTokenTTL is the lifetime of tokens issued by Authenticate.
// Tokens issued by Register and UpdateProfile carry no expiry at all.
const SessionTokenTTL = time.Hour

// SessionClaims is the JWT claim set for session tokens: the standard
// registered claims plus the account ID.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// TokenIssuer builds and signs session tokens.
type TokenIssuer interface {
	// Issue signs a token carrying the account ID. A zero ttl omits the
	// expiry claim entirely, producing a token that never expires.
	Issue(userID string, ttl time.Duration) (string, error)

	// UserID verifies a token and returns the account ID claim.
	UserID(token string) (string, error)
}

// JWTIssuer implements TokenIssuer using HS256 over a process-wide
// secret. The secret is loaded once at startup and shared, read-only,
// across concurrent requests.
type JWTIssuer struct {
	secret []byte
}

// NewJWTIssuer creates a JWTIssuer from the signing secret.
func NewJWTIssuer(secret []byte) (*JWTIssuer, error) {
	if len(secret) == 0 {
		return nil, oops.Code("AUTH_EMPTY_SECRET").Errorf("signing secret cannot be empty")
	}
	return &JWTIssuer{secret: secret}, nil
}

// Issue signs a session token for the given account ID.
func (i *JWTIssuer) Issue(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", oops.Code("AUTH_EMPTY_USER_ID").Errorf("user ID cannot be empty")
	}

	claims := SessionClaims{UserID: userID}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", oops.Code("AUTH_SIGN_FAILED").Wrap(err)
	}
	return token, nil
}

// UserID verifies the token signature and returns the embedded account ID.
func (i *JWTIssuer) UserID(token string) (string, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", oops.Code("AUTH_INVALID_TOKEN").Wrap(err)
	}
	if !parsed.Valid {
		return "", oops.Code("AUTH_INVALID_TOKEN").Errorf("token is not valid")
	}
	return claims.UserID, nil
}

// Compile-time interface check.
var _ TokenIssuer = (*JWTIssuer)(nil)

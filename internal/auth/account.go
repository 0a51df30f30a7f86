// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package auth

import (
	"context"
	"regexp"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// MaxEmailLength caps stored email addresses.
const MaxEmailLength = 254

// emailRegex is a structural check only: one @ with something on both
// sides and a dot in the domain. Deliverability is not our problem.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Account represents a registered user account.
type Account struct {
	ID           ulid.ULID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time // nil until the first profile update
}

// NewAccount creates a validated Account draft with a fresh ULID and
// creation timestamp. The password must already be hashed; this
// constructor never sees a plaintext password.
func NewAccount(email, firstName, lastName, passwordHash string) (*Account, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, oops.Code("AUTH_EMPTY_HASH").Errorf("password hash cannot be empty")
	}

	return &Account{
		ID:           ulid.Make(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// ValidateEmail checks an email address for structural validity.
func ValidateEmail(email string) error {
	if email == "" {
		return oops.Code("AUTH_INVALID_EMAIL").Errorf("email cannot be empty")
	}
	if len(email) > MaxEmailLength {
		return oops.Code("AUTH_INVALID_EMAIL").
			With("max", MaxEmailLength).
			Errorf("email must be at most %d characters", MaxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return oops.Code("AUTH_INVALID_EMAIL").Errorf("email is not a valid address")
	}
	return nil
}

// AccountRepository manages account persistence. Emails are compared
// case-sensitively, exactly as stored.
type AccountRepository interface {
	// Create stores a new account. Returns ErrDuplicateEmail if an
	// account with the same email already exists; the underlying store
	// enforces this with a unique constraint, so the check is atomic.
	Create(ctx context.Context, account *Account) error

	// GetByEmail retrieves an account by email. Returns ErrNotFound if
	// no account matches.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// UpdateProfile sets first_name and updated_at on the account with
	// the given email and returns the updated record. Returns
	// ErrNotFound if no account matches. No other fields are touched.
	UpdateProfile(ctx context.Context, email, firstName string, updatedAt time.Time) (*Account, error)
}

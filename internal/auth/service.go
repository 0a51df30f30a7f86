// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/samber/oops"
)

// RegisterInput is the request payload for AccountService.Register.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// RegisterResult is returned on successful registration.
type RegisterResult struct {
	Token string
	Email string
}

// AuthenticateResult is returned on successful authentication.
type AuthenticateResult struct {
	Token     string
	Email     string
	FirstName string
}

// UpdateProfileResult is returned on successful profile update.
type UpdateProfileResult struct {
	Token string
}

// AccountService orchestrates the repository, hasher, and token issuer
// to implement the three account operations. It holds no mutable state
// and is safe for concurrent use.
type AccountService struct {
	accounts AccountRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   *slog.Logger
}

// NewAccountService creates an AccountService with the default logger.
func NewAccountService(accounts AccountRepository, hasher PasswordHasher, tokens TokenIssuer) (*AccountService, error) {
	return NewAccountServiceWithLogger(accounts, hasher, tokens, slog.Default())
}

// NewAccountServiceWithLogger creates an AccountService with an explicit logger.
func NewAccountServiceWithLogger(accounts AccountRepository, hasher PasswordHasher, tokens TokenIssuer, logger *slog.Logger) (*AccountService, error) {
	if accounts == nil {
		return nil, oops.Errorf("accounts repository is required")
	}
	if hasher == nil {
		return nil, oops.Errorf("password hasher is required")
	}
	if tokens == nil {
		return nil, oops.Errorf("token issuer is required")
	}
	if logger == nil {
		return nil, oops.Errorf("logger is required")
	}
	return &AccountService{accounts: accounts, hasher: hasher, tokens: tokens, logger: logger}, nil
}

// Register creates a new account and issues a session token without
// expiry. Input validation runs before any store access.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if violations := ValidateRegistration(in.Email, in.Password); len(violations) > 0 {
		return nil, oops.Code("AUTH_VALIDATION_FAILED").
			Wrap(&ValidationError{Violations: violations})
	}

	_, err := s.accounts.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, oops.Code("AUTH_DUPLICATE_EMAIL").
			With("email", in.Email).
			Wrap(ErrDuplicateEmail)
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, oops.Code("STORE_UNAVAILABLE").
			With("operation", "get account by email").
			Wrap(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "hash password").
			Wrap(err)
	}

	account, err := NewAccount(in.Email, in.FirstName, in.LastName, hash)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		// The unique index catches registrations that raced past the
		// lookup above.
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, oops.Code("AUTH_DUPLICATE_EMAIL").
				With("email", in.Email).
				Wrap(ErrDuplicateEmail)
		}
		return nil, oops.Code("STORE_UNAVAILABLE").
			With("operation", "create account").
			Wrap(err)
	}

	token, err := s.tokens.Issue(account.ID.String(), 0)
	if err != nil {
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "issue token").
			Wrap(err)
	}

	s.logger.InfoContext(ctx, "user registered", "account_id", account.ID.String())
	return &RegisterResult{Token: token, Email: account.Email}, nil
}

// Authenticate verifies credentials and issues a session token expiring
// after SessionTokenTTL. An unknown email and a wrong password are
// distinct failures; the surrounding system intentionally reports them
// separately even though that leaks account existence.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*AuthenticateResult, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, oops.Code("AUTH_USER_NOT_FOUND").
				With("email", email).
				Wrap(ErrNotFound)
		}
		return nil, oops.Code("STORE_UNAVAILABLE").
			With("operation", "get account by email").
			Wrap(err)
	}

	match, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "verify password").
			Wrap(err)
	}
	if !match {
		return nil, oops.Code("AUTH_WRONG_PASSWORD").Wrap(ErrWrongPassword)
	}

	token, err := s.tokens.Issue(account.ID.String(), SessionTokenTTL)
	if err != nil {
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "issue token").
			Wrap(err)
	}

	s.logger.InfoContext(ctx, "user logged in", "account_id", account.ID.String())
	return &AuthenticateResult{Token: token, Email: account.Email, FirstName: account.FirstName}, nil
}

// UpdateProfile validates the request, then updates first name and the
// update timestamp on the account identified by identityEmail, and
// issues a session token without expiry. Validation and the identity
// check both run before any store access.
func (s *AccountService) UpdateProfile(ctx context.Context, identityEmail, name string) (*UpdateProfileResult, error) {
	if violations := ValidateProfileUpdate(name); len(violations) > 0 {
		return nil, oops.Code("AUTH_VALIDATION_FAILED").
			Wrap(&ValidationError{Violations: violations})
	}

	if identityEmail == "" {
		return nil, oops.Code("AUTH_MISSING_IDENTITY").Wrap(ErrMissingIdentity)
	}

	if _, err := s.accounts.GetByEmail(ctx, identityEmail); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, oops.Code("AUTH_USER_NOT_FOUND").
				With("email", identityEmail).
				Wrap(ErrNotFound)
		}
		return nil, oops.Code("STORE_UNAVAILABLE").
			With("operation", "get account by email").
			Wrap(err)
	}

	account, err := s.accounts.UpdateProfile(ctx, identityEmail, name, time.Now().UTC())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, oops.Code("AUTH_USER_NOT_FOUND").
				With("email", identityEmail).
				Wrap(ErrNotFound)
		}
		return nil, oops.Code("AUTH_UPDATE_FAILED").
			With("operation", "update profile").
			Wrap(err)
	}

	token, err := s.tokens.Issue(account.ID.String(), 0)
	if err != nil {
		return nil, oops.Code("AUTH_UPDATE_FAILED").
			With("operation", "issue token").
			Wrap(err)
	}

	s.logger.InfoContext(ctx, "user profile updated", "account_id", account.ID.String())
	return &UpdateProfileResult{Token: token}, nil
}

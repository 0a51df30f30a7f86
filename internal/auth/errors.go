// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package auth

import "errors"

// Sentinel errors shared between the service, repositories, and the HTTP
// boundary. Services wrap these with oops codes; callers branch with
// errors.Is.
var (
	// ErrNotFound is returned when no account matches a lookup.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when an account with the same email
	// already exists. Repositories map storage-layer unique violations
	// to this error so check-then-insert races still fail atomically.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrWrongPassword is returned when credentials do not match.
	ErrWrongPassword = errors.New("wrong password")

	// ErrMissingIdentity is returned when a request requiring an
	// identity email supplies none.
	ErrMissingIdentity = errors.New("missing identity email")
)

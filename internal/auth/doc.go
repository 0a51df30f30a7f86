// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

// Package auth provides the credential-management core for SecondChance.
//
// # Domain Types
//
// Account is the persisted representation of a registered user. Accounts
// should be created with NewAccount, which validates the draft and assigns
// an immutable ULID. Direct struct initialization bypasses validation.
//
// # Components
//
//   - AccountRepository - durable email-keyed lookup/insert/update of accounts
//   - PasswordHasher / BcryptHasher - one-way salted password hashing
//   - TokenIssuer / JWTIssuer - signed session tokens carrying the account ID
//   - AccountService - Register, Authenticate, and UpdateProfile operations
//
// AccountService is the orchestrator: it consults the repository, applies
// the hasher, and on success asks the issuer for a signed token. Tokens
// issued by Register and UpdateProfile carry no expiry; tokens issued by
// Authenticate expire after SessionTokenTTL.
package auth

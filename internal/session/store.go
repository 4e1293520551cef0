// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

// CredentialStore persists the token pair between CLI invocations.
// internal/keychain.Manager satisfies it; tests use an in-memory fake.
// Loads report absence as an empty string, never as an error the session
// layer has to interpret.
type CredentialStore interface {
	SaveAuthTokens(accessToken, refreshToken string) error
	LoadAccessToken() (string, error)
	LoadRefreshToken() (string, error)
	ClearAuth() error
}

// unavailableStore stands in when no secure storage exists on the system.
// Every load is absent and writes are dropped, so the CLI behaves as a
// logged-out session instead of failing.
type unavailableStore struct{}

func (unavailableStore) SaveAuthTokens(string, string) error { return nil }
func (unavailableStore) LoadAccessToken() (string, error)    { return "", nil }
func (unavailableStore) LoadRefreshToken() (string, error)   { return "", nil }
func (unavailableStore) ClearAuth() error                    { return nil }

// UnavailableStore returns a store for systems without a usable keychain.
func UnavailableStore() CredentialStore { return unavailableStore{} }

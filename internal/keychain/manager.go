// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe credential storage for recicla.
// It holds the two session credentials (access token and refresh token) plus the
// reporting-database DSN in the OS keychain, so they survive between invocations
// without ever touching a plain file.
//
// macOS uses the native security command when available, other platforms go
// through the 99designs/keyring library. When no secure backend can be opened
// the CLI treats every credential as absent and behaves as a logged-out
// session; it never invents or trusts stale identity.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend keychainBackend
}

// keychainBackend defines the interface for keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "recicla"

// Keys used for storing secrets in the OS keychain.
const (
	KeyAccessToken  = "auth_access_token"
	KeyRefreshToken = "auth_refresh_token"
	KeyReportsDSN   = "reports_db_dsn"
)

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	// Try native security backend first on macOS
	if runtime.GOOS == "darwin" {
		backend, err := newSecurityBackend()
		if err == nil {
			return &Manager{backend: backend}, nil
		}
		// Fall through to keyring library if security command fails
	}

	ring, err := openRing()
	if err != nil {
		return nil, err
	}

	return &Manager{
		ring: ring,
	}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}

	return globalManager, nil
}

// openRing opens the OS keyring using the platform's secure backend.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.PassBackend,
		}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	default:
		// Linux and friends: Secret Service (GNOME Keyring / KWallet) first,
		// then pass.
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
		}
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, errors.New("no secure credential store available on this system")
	}

	return ring, nil
}

// SaveAuthTokens stores access and refresh tokens in the OS keychain.
// Empty values leave the corresponding slot untouched, so a refresh that
// rotates only the access token does not wipe the refresh token.
// This method is thread-safe.
func (m *Manager) SaveAuthTokens(accessToken, refreshToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		if accessToken != "" {
			if err := m.backend.Set(KeyAccessToken, accessToken); err != nil {
				return err
			}
		}
		if refreshToken != "" {
			if err := m.backend.Set(KeyRefreshToken, refreshToken); err != nil {
				return err
			}
		}
		return nil
	}

	if accessToken != "" {
		if err := m.ring.Set(keyring.Item{Key: KeyAccessToken, Data: []byte(accessToken)}); err != nil {
			return err
		}
	}
	if refreshToken != "" {
		if err := m.ring.Set(keyring.Item{Key: KeyRefreshToken, Data: []byte(refreshToken)}); err != nil {
			return err
		}
	}
	return nil
}

// LoadAccessToken retrieves the access token from the keychain.
// A missing slot yields an empty string, not an error.
// This method is thread-safe.
func (m *Manager) LoadAccessToken() (string, error) {
	return m.load(KeyAccessToken)
}

// LoadRefreshToken retrieves the refresh token from the keychain.
// A missing slot yields an empty string, not an error.
// This method is thread-safe.
func (m *Manager) LoadRefreshToken() (string, error) {
	return m.load(KeyRefreshToken)
}

func (m *Manager) load(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		v, err := m.backend.Get(key)
		if err != nil {
			// Treat lookup failures as "absent": the session layer fails
			// open to logged-out rather than erroring out.
			return "", nil
		}
		return v, nil
	}

	it, err := m.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", nil
		}
		return "", nil
	}
	return string(it.Data), nil
}

// ClearAuth removes both session credentials from the keychain.
// Clearing absent slots is not an error.
// This method is thread-safe.
func (m *Manager) ClearAuth() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		_ = m.backend.Delete(KeyAccessToken)
		_ = m.backend.Delete(KeyRefreshToken)
		return nil
	}

	_ = m.ring.Remove(KeyAccessToken)
	_ = m.ring.Remove(KeyRefreshToken)
	return nil
}

// SaveReportsDSN stores the reporting-database DSN in the keychain.
// This method is thread-safe.
func (m *Manager) SaveReportsDSN(dsn string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Set(KeyReportsDSN, dsn)
	}

	return m.ring.Set(keyring.Item{Key: KeyReportsDSN, Data: []byte(dsn)})
}

// LoadReportsDSN retrieves the reporting-database DSN from the keychain.
// This method is thread-safe.
func (m *Manager) LoadReportsDSN() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		return m.backend.Get(KeyReportsDSN)
	}

	it, err := m.ring.Get(KeyReportsDSN)
	if err != nil {
		return "", err
	}
	return string(it.Data), nil
}

// ClearAll removes all recicla secrets from the keychain.
// This method is thread-safe.
func (m *Manager) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		_ = m.backend.Delete(KeyAccessToken)
		_ = m.backend.Delete(KeyRefreshToken)
		_ = m.backend.Delete(KeyReportsDSN)
		return nil
	}

	_ = m.ring.Remove(KeyAccessToken)
	_ = m.ring.Remove(KeyRefreshToken)
	_ = m.ring.Remove(KeyReportsDSN)
	return nil
}

// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the authenticated session: who is logged in, with
// which token pair, and whether an auth operation is in flight. The
// Controller is the only component that mutates session state or the
// credential store; the HTTP transport reads tokens through it and asks it
// to renew them, never touching storage directly.
package session

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"recicla/cli/internal/api"
	recerrors "recicla/cli/internal/errors"
)

// Default user-facing messages when the backend's error body carries none.
// Kept in Spanish to match what the backend itself sends.
const (
	msgLoginFailed    = "Error en el login"
	msgRegisterFailed = "Error en el registro"
	msgProfileFailed  = "Error actualizando perfil"
	msgPasswordFailed = "Error cambiando contraseña"
)

// Snapshot is a read-only view of the session handed to subscribers.
type Snapshot struct {
	Usuario       *api.Usuario
	Authenticated bool
	Admin         bool
	Loading       bool
}

// Controller is the single source of truth for the session. All methods are
// safe for concurrent use.
type Controller struct {
	client *api.Client
	store  CredentialStore

	mu           sync.RWMutex
	usuario      *api.Usuario
	accessToken  string
	refreshToken string
	loading      bool
	subs         []func(Snapshot)

	// refreshGroup coalesces concurrent renewals: simultaneous 401s share
	// one refresh round trip, so a rotated refresh token is never consumed
	// twice.
	refreshGroup singleflight.Group
}

// NewController creates a session controller bound to client and store, and
// installs itself as the client's token source. The session starts in its
// loading state until Bootstrap completes.
func NewController(client *api.Client, store CredentialStore) *Controller {
	c := &Controller{
		client:  client,
		store:   store,
		loading: true,
	}
	client.BindTokenSource(c)
	return c
}

// Bootstrap restores the session from the credential store. It never returns
// an error: whatever happens, the session ends in a determinate
// authenticated or unauthenticated state with loading finished.
//
// With no stored access token it goes straight to unauthenticated without a
// network call. Otherwise it verifies the token, falling back to one refresh
// attempt before giving up and clearing the session.
func (c *Controller) Bootstrap(ctx context.Context) {
	defer c.setLoading(false)

	access, _ := c.store.LoadAccessToken()
	if access == "" {
		return
	}
	refresh, _ := c.store.LoadRefreshToken()

	c.mu.Lock()
	c.accessToken = access
	c.refreshToken = refresh
	c.mu.Unlock()

	usuario, err := c.client.Verificar(ctx, access)
	if err == nil {
		c.mu.Lock()
		c.usuario = usuario
		c.mu.Unlock()
		c.notify()
		return
	}

	if refresh == "" {
		c.ClearSession()
		return
	}
	if _, rerr := c.Refresh(ctx); rerr != nil {
		c.ClearSession()
	}
}

// Login authenticates with email and password. On success the token pair and
// user replace the session atomically and are persisted. On failure the
// session is left untouched and the returned error carries the backend's
// message, or a default when it sent none.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	c.setLoading(true)
	defer c.setLoading(false)

	res, err := c.client.Login(ctx, email, password)
	if err != nil {
		return authError(err, msgLoginFailed)
	}
	c.adopt(res)
	return nil
}

// Register creates an account and logs it in. Password confirmation is
// checked by the backend; a mismatch comes back as its error message.
func (c *Controller) Register(ctx context.Context, nombre, email, password, confirmarPassword string) error {
	c.setLoading(true)
	defer c.setLoading(false)

	res, err := c.client.Registro(ctx, nombre, email, password, confirmarPassword)
	if err != nil {
		return authError(err, msgRegisterFailed)
	}
	c.adopt(res)
	return nil
}

// Logout clears the local session first, then notifies the backend on a
// best-effort basis. The local clear never depends on the network call
// succeeding, so logging out works offline.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.RLock()
	token := c.accessToken
	c.mu.RUnlock()

	c.ClearSession()

	if token != "" {
		_ = c.client.Logout(ctx, token)
	}
}

// Refresh exchanges the stored refresh token for a new pair and returns the
// new access token. Concurrent callers coalesce onto one network round trip
// and share its outcome. On failure nothing is mutated; the caller decides
// whether the session must be cleared.
//
// Reports api.ErrNoRefreshToken when there is nothing to renew with.
func (c *Controller) Refresh(ctx context.Context) (string, error) {
	v, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		c.mu.RLock()
		refresh := c.refreshToken
		c.mu.RUnlock()
		if refresh == "" {
			// Memory may be cold (fresh process); the store is
			// authoritative.
			refresh, _ = c.store.LoadRefreshToken()
		}
		if refresh == "" {
			return nil, api.ErrNoRefreshToken
		}

		res, rerr := c.client.Refresh(ctx, refresh)
		if rerr != nil {
			return nil, recerrors.Wrap(recerrors.RefreshFailed, "la sesión no pudo renovarse", rerr)
		}
		c.adopt(res)
		return res.Token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// ActualizarPerfil updates the account's display name.
func (c *Controller) ActualizarPerfil(ctx context.Context, nombre string) error {
	usuario, err := c.client.ActualizarPerfil(ctx, nombre)
	if err != nil {
		return authError(err, msgProfileFailed)
	}
	c.mu.Lock()
	c.usuario = usuario
	c.mu.Unlock()
	c.notify()
	return nil
}

// CambiarPassword changes the account password. All validation happens
// server-side.
func (c *Controller) CambiarPassword(ctx context.Context, actual, nuevo, confirmarNuevo string) error {
	if err := c.client.CambiarPassword(ctx, actual, nuevo, confirmarNuevo); err != nil {
		return authError(err, msgPasswordFailed)
	}
	return nil
}

// ClearSession drops the user, both tokens and the persisted credentials.
// Idempotent; safe to call on an already-cleared session.
func (c *Controller) ClearSession() {
	c.mu.Lock()
	c.usuario = nil
	c.accessToken = ""
	c.refreshToken = ""
	c.mu.Unlock()

	_ = c.store.ClearAuth()
	c.notify()
}

// adopt atomically replaces the session contents with a fresh auth result
// and persists the new pair. Tokens are never written independently.
func (c *Controller) adopt(res *api.AuthResult) {
	c.mu.Lock()
	usuario := res.Usuario
	c.usuario = &usuario
	c.accessToken = res.Token
	c.refreshToken = res.RefreshToken
	c.mu.Unlock()

	_ = c.store.SaveAuthTokens(res.Token, res.RefreshToken)
	c.notify()
}

// AccessToken implements api.TokenSource. It returns the token current at
// call time, so requests sent after a concurrent refresh pick up the new
// value.
func (c *Controller) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// Invalidate implements api.TokenSource.
func (c *Controller) Invalidate() { c.ClearSession() }

// IsAuthenticated reports whether a resolved identity and an access token
// are both present.
func (c *Controller) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.usuario != nil && c.accessToken != ""
}

// IsAdmin reports whether the logged-in account has the administrator role.
func (c *Controller) IsAdmin() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.usuario != nil && c.usuario.Rol == api.RolAdministrador
}

// IsLoading reports whether an auth operation is in flight.
func (c *Controller) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Usuario returns a copy of the logged-in user, or nil.
func (c *Controller) Usuario() *api.Usuario {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.usuario == nil {
		return nil
	}
	u := *c.usuario
	return &u
}

// Subscribe registers fn to run after every state change. Subscribers are
// called synchronously with a consistent snapshot.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}

func (c *Controller) setLoading(v bool) {
	c.mu.Lock()
	changed := c.loading != v
	c.loading = v
	c.mu.Unlock()
	if changed {
		c.notify()
	}
}

func (c *Controller) notify() {
	c.mu.RLock()
	snap := Snapshot{
		Usuario:       c.usuario,
		Authenticated: c.usuario != nil && c.accessToken != "",
		Admin:         c.usuario != nil && c.usuario.Rol == api.RolAdministrador,
		Loading:       c.loading,
	}
	subs := make([]func(Snapshot), len(c.subs))
	copy(subs, c.subs)
	c.mu.RUnlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// authError maps an API failure onto the session error taxonomy: the
// backend's own message when it sent one, the operation's default otherwise.
func authError(err error, fallback string) error {
	if msg := api.ServerMessage(err); msg != "" {
		return recerrors.Wrap(recerrors.AuthFailed, msg, err)
	}
	return recerrors.Wrap(recerrors.AuthFailed, fallback, err)
}

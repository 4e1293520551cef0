// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// Login calls POST /auth/login and returns the issued token pair plus the
// resolved user. A rejection surfaces as *Error carrying the backend's
// message (e.g. "Credenciales inválidas").
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var out AuthResult
	if err := c.send(ctx, c.bare, http.MethodPost, c.endpoints.Login, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Registro calls POST /auth/registro with all four fields. Password
// confirmation is validated by the backend, not here.
func (c *Client) Registro(ctx context.Context, nombre, email, password, confirmarPassword string) (*AuthResult, error) {
	body := map[string]string{
		"nombre":            nombre,
		"email":             email,
		"password":          password,
		"confirmarPassword": confirmarPassword,
	}
	var out AuthResult
	if err := c.send(ctx, c.bare, http.MethodPost, c.endpoints.Registro, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Verificar calls GET /auth/verificar with the given token and returns the
// identity it resolves to. Used at bootstrap to validate a persisted token.
func (c *Client) Verificar(ctx context.Context, accessToken string) (*Usuario, error) {
	req, err := c.bearerRequest(ctx, http.MethodGet, c.endpoints.Verificar, accessToken)
	if err != nil {
		return nil, err
	}
	var out struct {
		Usuario Usuario `json:"usuario"`
	}
	if err := c.do(c.bare, req, &out); err != nil {
		return nil, err
	}
	return &out.Usuario, nil
}

// Refresh calls POST /auth/refresh to exchange the refresh token for a new
// pair. The backend rotates both tokens on every refresh.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	body := map[string]string{
		"refreshToken": refreshToken,
	}
	var out AuthResult
	if err := c.send(ctx, c.bare, http.MethodPost, c.endpoints.Refresh, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout calls POST /auth/logout with the given token. Callers treat this as
// best-effort; local state is already cleared when it runs.
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	req, err := c.bearerRequest(ctx, http.MethodPost, c.endpoints.Logout, accessToken)
	if err != nil {
		return err
	}
	return c.do(c.bare, req, nil)
}

// ActualizarPerfil calls PUT /auth/perfil through the authenticated client
// and returns the updated user.
func (c *Client) ActualizarPerfil(ctx context.Context, nombre string) (*Usuario, error) {
	body := map[string]string{"nombre": nombre}
	var out struct {
		Usuario Usuario `json:"usuario"`
	}
	if err := c.send(ctx, c.authed, http.MethodPut, c.endpoints.Perfil, body, &out); err != nil {
		return nil, err
	}
	return &out.Usuario, nil
}

// CambiarPassword calls PUT /auth/cambiar-password through the authenticated
// client. The backend validates that the new password and its confirmation
// match.
func (c *Client) CambiarPassword(ctx context.Context, actual, nuevo, confirmarNuevo string) error {
	body := map[string]string{
		"passwordActual":         actual,
		"passwordNuevo":          nuevo,
		"confirmarPasswordNuevo": confirmarNuevo,
	}
	return c.send(ctx, c.authed, http.MethodPut, c.endpoints.CambiarPassword, body, nil)
}

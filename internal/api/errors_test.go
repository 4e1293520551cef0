// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseErrorDecodesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Credenciales inválidas"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "ana@recicla.co", "mal")
	require.Error(t, err)
	require.True(t, IsUnauthorized(err))
	require.Equal(t, "Credenciales inválidas", ServerMessage(err))
}

func TestResponseErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "ana@recicla.co", "x")
	require.Error(t, err)
	require.False(t, IsUnauthorized(err))
	require.Empty(t, ServerMessage(err))
	require.Contains(t, err.Error(), "503")
}

func TestServerMessageIgnoresOtherErrors(t *testing.T) {
	require.Empty(t, ServerMessage(context.Canceled))
	require.False(t, IsUnauthorized(context.Canceled))
}

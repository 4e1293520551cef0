// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSource is a scripted TokenSource.
type fakeSource struct {
	mu          sync.Mutex
	token       string
	refreshTo   string
	refreshErr  error
	refreshed   int
	invalidated int
}

func (s *fakeSource) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeSource) Refresh(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshed++
	if s.refreshErr != nil {
		return "", s.refreshErr
	}
	s.token = s.refreshTo
	return s.refreshTo, nil
}

func (s *fakeSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidated++
}

func (s *fakeSource) counts() (refreshed, invalidated int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshed, s.invalidated
}

func authedClient(src TokenSource) *http.Client {
	return &http.Client{Transport: &authTransport{base: http.DefaultTransport, source: src}}
}

func TestTransportAttachesTokenAtSendTime(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	src := &fakeSource{token: "t1"}
	hc := authedClient(src)

	resp, err := hc.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "Bearer t1", got)

	// The next request picks up whatever the source holds now.
	src.mu.Lock()
	src.token = "t2"
	src.mu.Unlock()

	resp, err = hc.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "Bearer t2", got)
}

func TestTransportRefreshesAndRetriesOn401(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.Header.Get("Authorization") != "Bearer t2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		io.WriteString(w, "ok")
	}))
	defer srv.Close()

	src := &fakeSource{token: "t1", refreshTo: "t2"}
	resp, err := authedClient(src).Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, "ok", string(body))
	require.Equal(t, 2, hits)

	refreshed, invalidated := src.counts()
	require.Equal(t, 1, refreshed)
	require.Zero(t, invalidated)
}

func TestTransportRetriesAtMostOnce(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	// Refresh succeeds but the backend keeps rejecting; the retried
	// response comes back as-is instead of looping.
	src := &fakeSource{token: "t1", refreshTo: "t2"}
	resp, err := authedClient(src).Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 2, hits)
	refreshed, _ := src.counts()
	require.Equal(t, 1, refreshed)
}

func TestTransportSurfacesOriginal401WithoutRefreshToken(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	src := &fakeSource{token: "t1", refreshErr: ErrNoRefreshToken}
	resp, err := authedClient(src).Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 1, hits)

	refreshed, invalidated := src.counts()
	require.Equal(t, 1, refreshed)
	require.Equal(t, 1, invalidated)
}

func TestTransportPropagatesRenewalFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	src := &fakeSource{token: "t1", refreshErr: errors.New("refresh rejected")}
	_, err := authedClient(src).Get(srv.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "session renewal failed")

	_, invalidated := src.counts()
	require.Equal(t, 1, invalidated)
}

func TestTransportReplaysRequestBody(t *testing.T) {
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		if r.Header.Get("Authorization") != "Bearer t2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	src := &fakeSource{token: "t1", refreshTo: "t2"}
	resp, err := authedClient(src).Post(srv.URL, "application/json", strings.NewReader(`{"nombre":"Ana"}`))
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []string{`{"nombre":"Ana"}`, `{"nombre":"Ana"}`}, bodies)
}

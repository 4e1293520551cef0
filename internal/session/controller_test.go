// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"recicla/cli/internal/api"
	recerrors "recicla/cli/internal/errors"
)

// fakeStore is an in-memory CredentialStore.
type fakeStore struct {
	mu      sync.Mutex
	access  string
	refresh string
	clears  int
}

func (s *fakeStore) SaveAuthTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if access != "" {
		s.access = access
	}
	if refresh != "" {
		s.refresh = refresh
	}
	return nil
}

func (s *fakeStore) LoadAccessToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access, nil
}

func (s *fakeStore) LoadRefreshToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh, nil
}

func (s *fakeStore) ClearAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	s.clears++
	return nil
}

func (s *fakeStore) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access, s.refresh
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

func authResultJSON(token, refresh string) string {
	return fmt.Sprintf(`{"token":%q,"refreshToken":%q,"usuario":{"id":1,"nombre":"Ana","email":"ana@recicla.co","rol":"administrador"}}`, token, refresh)
}

func newController(t *testing.T, baseURL string, store CredentialStore) *Controller {
	t.Helper()
	client := api.New(baseURL)
	return NewController(client, store)
}

func TestBootstrapEmptyStoreMakesNoNetworkCall(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	st := &fakeStore{}
	c := newController(t, srv.URL, st)
	require.True(t, c.IsLoading())

	c.Bootstrap(context.Background())

	require.False(t, c.IsAuthenticated())
	require.False(t, c.IsLoading())
	require.Nil(t, c.Usuario())
	require.Zero(t, hits.Load())
}

func TestBootstrapRestoresValidSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/verificar", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer t1" {
			writeJSON(w, http.StatusUnauthorized, `{"error":"Token inválido"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"usuario":{"id":1,"nombre":"Ana","email":"ana@recicla.co","rol":"administrador"}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st := &fakeStore{access: "t1", refresh: "r1"}
	c := newController(t, srv.URL, st)
	c.Bootstrap(context.Background())

	require.True(t, c.IsAuthenticated())
	require.True(t, c.IsAdmin())
	require.Equal(t, "Ana", c.Usuario().Nombre)
	require.Equal(t, "t1", c.AccessToken())
}

func TestBootstrapRenewsExpiredToken(t *testing.T) {
	var refreshHits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/verificar", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer t2" {
			writeJSON(w, http.StatusOK, `{"usuario":{"id":1,"nombre":"Ana","email":"ana@recicla.co","rol":"empleado"}}`)
			return
		}
		writeJSON(w, http.StatusUnauthorized, `{"error":"Token expirado"}`)
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshHits.Add(1)
		writeJSON(w, http.StatusOK, authResultJSON("t2", "r2"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st := &fakeStore{access: "t1", refresh: "r1"}
	c := newController(t, srv.URL, st)
	c.Bootstrap(context.Background())

	require.True(t, c.IsAuthenticated())
	require.Equal(t, "t2", c.AccessToken())
	require.EqualValues(t, 1, refreshHits.Load())

	// The rotated pair is persisted together.
	access, refresh := st.tokens()
	require.Equal(t, "t2", access)
	require.Equal(t, "r2", refresh)
}

func TestBootstrapClearsWhenNothingRenews(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/verificar", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":"Token expirado"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st := &fakeStore{access: "t1"} // no refresh token stored
	c := newController(t, srv.URL, st)
	c.Bootstrap(context.Background())

	require.False(t, c.IsAuthenticated())
	require.Empty(t, c.AccessToken())
	access, refresh := st.tokens()
	require.Empty(t, access)
	require.Empty(t, refresh)
}

func TestLoginStoresPairAndUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, authResultJSON("t1", "r1"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st := &fakeStore{}
	c := newController(t, srv.URL, st)

	require.NoError(t, c.Login(context.Background(), "ana@recicla.co", "secreto"))
	require.True(t, c.IsAuthenticated())
	require.False(t, c.IsLoading())

	access, refresh := st.tokens()
	require.Equal(t, "t1", access)
	require.Equal(t, "r1", refresh)
}

func TestLoginRejectionKeepsSessionAndMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":"Credenciales inválidas"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st := &fakeStore{}
	c := newController(t, srv.URL, st)

	err := c.Login(context.Background(), "ana@recicla.co", "mal")
	require.Error(t, err)
	require.Equal(t, "Credenciales inválidas", recerrors.MessageOf(err))
	require.Equal(t, recerrors.AuthFailed, recerrors.KindOf(err))

	require.False(t, c.IsAuthenticated())
	access, refresh := st.tokens()
	require.Empty(t, access)
	require.Empty(t, refresh)
}

func TestLoginFallbackMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newController(t, srv.URL, &fakeStore{})
	err := c.Login(context.Background(), "ana@recicla.co", "x")
	require.Error(t, err)
	require.Equal(t, "Error en el login", recerrors.MessageOf(err))
}

func TestLogoutClearsLocallyWhenBackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, authResultJSON("t1", "r1"))
	}))

	st := &fakeStore{}
	c := newController(t, srv.URL, st)
	require.NoError(t, c.Login(context.Background(), "ana@recicla.co", "secreto"))

	// Backend goes away; logout must still clear everything locally.
	srv.Close()
	c.Logout(context.Background())

	require.False(t, c.IsAuthenticated())
	require.Nil(t, c.Usuario())
	access, refresh := st.tokens()
	require.Empty(t, access)
	require.Empty(t, refresh)
}

func TestLogoutIsIdempotent(t *testing.T) {
	var logoutHits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		logoutHits.Add(1)
		writeJSON(w, http.StatusOK, `{}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st := &fakeStore{}
	c := newController(t, srv.URL, st)

	c.Logout(context.Background())
	c.Logout(context.Background())

	require.False(t, c.IsAuthenticated())
	// No token was held, so the backend is never notified.
	require.Zero(t, logoutHits.Load())
	require.GreaterOrEqual(t, st.clears, 2)
}

func TestRefreshWithoutTokenReportsSentinel(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := newController(t, srv.URL, &fakeStore{})
	_, err := c.Refresh(context.Background())
	require.ErrorIs(t, err, api.ErrNoRefreshToken)
	require.Zero(t, hits.Load())
}

func TestRefreshFailureLeavesSessionUntouched(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, authResultJSON("t1", "r1"))
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":"Refresh token inválido"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st := &fakeStore{}
	c := newController(t, srv.URL, st)
	require.NoError(t, c.Login(context.Background(), "ana@recicla.co", "secreto"))

	_, err := c.Refresh(context.Background())
	require.Error(t, err)
	require.Equal(t, recerrors.RefreshFailed, recerrors.KindOf(err))

	// The failed renewal did not mutate anything; the caller decides.
	require.Equal(t, "t1", c.AccessToken())
	require.True(t, c.IsAuthenticated())
}

func TestConcurrentRefreshCoalesces(t *testing.T) {
	var refreshHits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, authResultJSON("t1", "r1"))
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshHits.Add(1)
		time.Sleep(150 * time.Millisecond) // hold the flight open
		writeJSON(w, http.StatusOK, authResultJSON("t2", "r2"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st := &fakeStore{}
	c := newController(t, srv.URL, st)
	require.NoError(t, c.Login(context.Background(), "ana@recicla.co", "secreto"))

	const n = 10
	tokens := make([]string, n)
	errs := make([]error, n)
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			tokens[i], errs[i] = c.Refresh(context.Background())
		}(i)
	}
	start.Done()
	done.Wait()

	require.EqualValues(t, 1, refreshHits.Load())
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, "t2", tokens[i])
	}
	require.Equal(t, "t2", c.AccessToken())
}

func TestConcurrentUnauthorizedRequestsShareOneRenewal(t *testing.T) {
	var refreshHits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, authResultJSON("t1", "r1"))
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshHits.Add(1)
		time.Sleep(150 * time.Millisecond)
		writeJSON(w, http.StatusOK, authResultJSON("t2", "r2"))
	})
	mux.HandleFunc("/materiales", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer t2" {
			writeJSON(w, http.StatusUnauthorized, `{"error":"Token expirado"}`)
			return
		}
		writeJSON(w, http.StatusOK, `[{"id":1,"nombre":"Cartón","categoria":"papel","activo":true}]`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st := &fakeStore{}
	client := api.New(srv.URL)
	c := NewController(client, st)
	require.NoError(t, c.Login(context.Background(), "ana@recicla.co", "secreto"))

	const n = 8
	errs := make([]error, n)
	counts := make([]int, n)
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			items, err := client.ListMateriales(context.Background(), "", nil)
			errs[i] = err
			counts[i] = len(items)
		}(i)
	}
	start.Done()
	done.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, 1, counts[i])
	}

	require.EqualValues(t, 1, refreshHits.Load())
	require.Equal(t, "t2", c.AccessToken())
}

func TestSubscriberSeesConsistentSnapshots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, authResultJSON("t1", "r1"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newController(t, srv.URL, &fakeStore{})

	var mu sync.Mutex
	var snaps []Snapshot
	c.Subscribe(func(s Snapshot) {
		mu.Lock()
		snaps = append(snaps, s)
		mu.Unlock()
	})

	require.NoError(t, c.Login(context.Background(), "ana@recicla.co", "secreto"))

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, snaps)
	last := snaps[len(snaps)-1]
	require.True(t, last.Authenticated)
	require.True(t, last.Admin)
	require.False(t, last.Loading)
	// A snapshot never pairs a user with a missing token.
	for _, s := range snaps {
		if s.Authenticated {
			require.NotNil(t, s.Usuario)
		}
	}
}

func TestIsAdminRequiresAdministratorRole(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"token":"t1","refreshToken":"r1","usuario":{"id":2,"nombre":"Luis","email":"luis@recicla.co","rol":"empleado"}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newController(t, srv.URL, &fakeStore{})
	require.NoError(t, c.Login(context.Background(), "luis@recicla.co", "secreto"))
	require.True(t, c.IsAuthenticated())
	require.False(t, c.IsAdmin())
}

// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNoRefreshToken is returned by TokenSource.Refresh when no refresh
// credential is stored, so the transport can surface the original 401
// instead of a refresh failure.
var ErrNoRefreshToken = errors.New("no refresh token stored")

// TokenSource supplies the current access token and renews it on demand.
// The session controller implements this; the transport never touches the
// credential store itself.
type TokenSource interface {
	// AccessToken returns the current bearer token, or "" when logged out.
	// It is called per request so the value is always the one current at
	// send time.
	AccessToken() string
	// Refresh exchanges the stored refresh token for a new pair and
	// returns the new access token. Concurrent callers share a single
	// round trip.
	Refresh(ctx context.Context) (string, error)
	// Invalidate clears the session after an unrecoverable rejection.
	Invalidate()
}

// authTransport decorates an http.RoundTripper with bearer attachment and a
// single refresh-and-retry pass on 401 responses.
//
// The retry is structural rather than flag-based: the retried request's
// response is returned as-is, so a request can never be replayed twice.
type authTransport struct {
	base   http.RoundTripper
	source TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.roundTripWithToken(req, t.source.AccessToken())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	newToken, rerr := t.source.Refresh(req.Context())
	if rerr != nil {
		t.source.Invalidate()
		if errors.Is(rerr, ErrNoRefreshToken) {
			// Nothing to renew with: the original 401 is the failure
			// the caller should see.
			return resp, nil
		}
		resp.Body.Close()
		return nil, fmt.Errorf("session renewal failed: %w", rerr)
	}

	// Renewal succeeded: drop the 401 response and replay the request
	// exactly once with the fresh token.
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return t.roundTripWithToken(req, newToken)
}

// roundTripWithToken clones the request, attaches the bearer token and sends
// it. Cloning keeps the caller's request untouched so a replay starts from a
// pristine copy.
func (t *authTransport) roundTripWithToken(req *http.Request, token string) (*http.Response, error) {
	r := req.Clone(req.Context())
	if req.Body != nil && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		r.Body = body
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base.RoundTrip(r)
}

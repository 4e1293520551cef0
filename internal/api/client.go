// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api implements the HTTP client for the recycling operations
// backend. Auth endpoints are called with explicit credentials; resource
// endpoints go through an authenticated client whose transport attaches the
// current bearer token and transparently renews it once on a 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the recycling backend.
type Client struct {
	baseURL   string
	endpoints Endpoints
	// bare performs auth-flow requests (login, refresh, ...) without any
	// interceptor so a rejected refresh can never trigger another refresh.
	bare *http.Client
	// authed performs resource requests through the bearer/retry transport.
	// It equals bare until a TokenSource is bound.
	authed  *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default 10 second request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithEndpoints overrides the default endpoint paths.
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) { c.endpoints = e }
}

// New creates a client for the given base URL, e.g. "http://localhost:5000/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: DefaultEndpoints(),
		timeout:   10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bare = &http.Client{Timeout: c.timeout}
	c.authed = c.bare
	return c
}

// BindTokenSource installs the bearer/retry transport backed by src.
// Resource requests made afterwards carry the token src reports at send
// time; a 401 triggers one coordinated refresh-and-retry.
func (c *Client) BindTokenSource(src TokenSource) {
	c.authed = &http.Client{
		Timeout: c.timeout,
		Transport: &authTransport{
			base:   http.DefaultTransport,
			source: src,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// get issues a GET through the given client and decodes a JSON response
// into out. Non-2xx responses become *Error.
func (c *Client) get(ctx context.Context, hc *http.Client, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return c.do(hc, req, out)
}

// send issues a request with a JSON body through the given client.
func (c *Client) send(ctx context.Context, hc *http.Client, method, path string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(hc, req, out)
}

func (c *Client) do(hc *http.Client, req *http.Request, out any) error {
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// bearerRequest builds a request carrying an explicit bearer token; used by
// the auth flow where the token is not yet (or no longer) the session's
// current one.
func (c *Client) bearerRequest(ctx context.Context, method, path, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

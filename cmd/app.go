// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"

	"recicla/cli/internal/api"
	"recicla/cli/internal/config"
	"recicla/cli/internal/keychain"
	"recicla/cli/internal/session"
)

// app wires the pieces every command needs: configuration, the API client
// and the session controller bound to the OS keychain.
type app struct {
	cfg     config.Config
	client  *api.Client
	session *session.Controller
}

// newApp builds the command runtime. When the OS keychain is unavailable
// the session falls back to a store that holds nothing, so every command
// still works, just logged out.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	client := api.New(cfg.APIBaseURL, api.WithTimeout(cfg.Timeout()))

	var store session.CredentialStore
	if km, kerr := keychain.GetManager(); kerr == nil {
		store = km
	} else {
		store = session.UnavailableStore()
	}

	return &app{
		cfg:     cfg,
		client:  client,
		session: session.NewController(client, store),
	}, nil
}

// authedApp builds the runtime and restores the stored session. ok is false
// when no valid session exists; the command should print nothing further and
// return nil, the not-logged-in hint has already been shown.
func authedApp(ctx context.Context) (a *app, ok bool, err error) {
	a, err = newApp()
	if err != nil {
		return nil, false, err
	}
	a.session.Bootstrap(ctx)
	if !a.session.IsAuthenticated() {
		fmt.Println("🔒 You're not logged in yet!")
		fmt.Println("   Run 'recicla login' to get started.")
		return a, false, nil
	}
	return a, true, nil
}

// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"recicla/cli/internal/keychain"

	"github.com/spf13/cobra"
)

var logoutAll bool

// logoutCmd represents the logout command for clearing authentication state.
// Local credentials are always removed; the backend is notified best-effort,
// so logging out works offline too.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove all saved credentials and tokens",
	Long: `The logout command clears the stored session from the OS keychain and
attempts to notify the backend so the refresh token is invalidated
server-side (best-effort).

Local credentials are removed even when the backend is unreachable.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		a.session.Bootstrap(cmd.Context())

		// Clears locally first, then notifies the backend. Safe to run
		// repeatedly and while offline.
		a.session.Logout(cmd.Context())

		if logoutAll {
			if km, kerr := keychain.GetManager(); kerr == nil {
				_ = km.ClearAll()
			}
		}

		fmt.Println("✅ All credentials and tokens have been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
	logoutCmd.Flags().BoolVar(&logoutAll, "all", false, "Also remove the stored reporting database connection")
}

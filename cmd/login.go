// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	recerrors "recicla/cli/internal/errors"

	"github.com/spf13/cobra"
)

// loginCmd represents the login command for email/password authentication.
// It prompts for credentials, authenticates against the backend and stores
// the resulting token pair in the OS keychain. If a stored session is still
// valid the prompt is skipped.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Authenticate with email and password",
	Long: `The login command authenticates against the recycling API with email and
password. On success the access and refresh tokens are stored securely in
the OS keychain and reused by every other command.

If already logged in with a valid session, the command skips the prompt.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp()
		if err != nil {
			return err
		}

		// A stored session that still verifies short-circuits the prompt.
		a.session.Bootstrap(ctx)
		if a.session.IsAuthenticated() {
			fmt.Printf("Already logged in as %s\n", a.session.Usuario().Email)
			return nil
		}

		email, err := promptLine("Email: ")
		if err != nil {
			return err
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		if lerr := a.session.Login(ctx, email, password); lerr != nil {
			fmt.Printf("❌ %s\n", recerrors.MessageOf(lerr))
			return lerr
		}

		u := a.session.Usuario()
		fmt.Printf("✅ Welcome back, %s!\n", u.Nombre)
		if a.session.IsAdmin() {
			fmt.Println("   Signed in with administrator access.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"

	recerrors "recicla/cli/internal/errors"

	"github.com/spf13/cobra"
)

// registroCmd represents the registro command for creating a new account.
// The backend signs the new account in immediately, so on success the CLI
// stores the returned token pair just like login does.
var registroCmd = &cobra.Command{
	Use:     "registro",
	Aliases: []string{"register"},
	Short:   "Create a new account and sign in",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp()
		if err != nil {
			return err
		}
		a.session.Bootstrap(ctx)
		if a.session.IsAuthenticated() {
			fmt.Printf("Already logged in as %s\n", a.session.Usuario().Email)
			return nil
		}

		nombre, err := promptLine("Name: ")
		if err != nil {
			return err
		}
		email, err := promptLine("Email: ")
		if err != nil {
			return err
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			fmt.Println("❌ Passwords do not match")
			return errors.New("passwords do not match")
		}

		if rerr := a.session.Register(ctx, nombre, email, password, confirm); rerr != nil {
			fmt.Printf("❌ %s\n", recerrors.MessageOf(rerr))
			return rerr
		}

		fmt.Printf("✅ Account created. Welcome, %s!\n", a.session.Usuario().Nombre)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registroCmd)
}

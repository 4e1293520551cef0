// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"

	recerrors "recicla/cli/internal/errors"

	"github.com/spf13/cobra"
)

// passwordCmd represents the password command for changing the account password.
// All three prompts read without echo. The session stays valid after the
// change; the backend does not rotate tokens on password updates.
var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change the account password",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, ok, err := authedApp(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		actual, err := promptPassword("Current password: ")
		if err != nil {
			return err
		}
		nuevo, err := promptPassword("New password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm new password: ")
		if err != nil {
			return err
		}
		if nuevo != confirm {
			fmt.Println("❌ Passwords do not match")
			return errors.New("passwords do not match")
		}

		if cerr := a.session.CambiarPassword(ctx, actual, nuevo, confirm); cerr != nil {
			fmt.Printf("❌ %s\n", recerrors.MessageOf(cerr))
			return cerr
		}

		fmt.Println("✅ Password changed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passwordCmd)
}

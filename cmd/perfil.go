// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"

	recerrors "recicla/cli/internal/errors"

	"github.com/spf13/cobra"
)

var perfilNombre string

// perfilCmd represents the perfil command for updating the account profile.
var perfilCmd = &cobra.Command{
	Use:   "perfil",
	Short: "Update the account profile name",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, ok, err := authedApp(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		nombre := perfilNombre
		if nombre == "" {
			nombre, err = promptLine(fmt.Sprintf("Name [%s]: ", a.session.Usuario().Nombre))
			if err != nil {
				return err
			}
		}
		if nombre == "" {
			return errors.New("a name is required")
		}

		if uerr := a.session.ActualizarPerfil(ctx, nombre); uerr != nil {
			fmt.Printf("❌ %s\n", recerrors.MessageOf(uerr))
			return uerr
		}

		fmt.Printf("✅ Profile updated. Hello, %s!\n", a.session.Usuario().Nombre)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(perfilCmd)
	perfilCmd.Flags().StringVar(&perfilNombre, "nombre", "", "New profile name (prompted when omitted)")
}

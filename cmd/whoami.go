package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying current authentication state.
// It restores the stored session, which verifies the token against the backend
// (renewing it when expired) and shows the account on success.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command displays information about the currently authenticated
account. It validates the stored session with the backend, transparently
renewing an expired access token when a refresh token is available.

If no valid session exists, it will indicate that the user is not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, ok, err := authedApp(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		u := a.session.Usuario()
		fmt.Printf("👤 Current user: %s <%s>\n", u.Nombre, u.Email)
		if a.session.IsAdmin() {
			fmt.Println("   Role: administrador")
		} else {
			fmt.Printf("   Role: %s\n", u.Rol)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"strings"

	"recicla/cli/internal/keychain"
	"recicla/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// dbinfoCmd represents the dbinfo command for displaying the reporting
// database connection string with the password masked.
var dbinfoCmd = &cobra.Command{
	Use:   "dbinfo",
	Short: "Show the reporting database connection string",
	Long: `The dbinfo command displays the currently configured reporting database
DSN with the password masked. This helps verify which database exports go
to without exposing sensitive credentials.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		// Env vars take precedence over the keychain, matching export.
		dbDSN := ""
		if env := strings.TrimSpace(os.Getenv("RECICLA_DSN")); env != "" {
			dbDSN = env
			pterm.Println("Using DSN from RECICLA_DSN environment variable")
			pterm.Println()
		} else if env := strings.TrimSpace(os.Getenv("DATABASE_URL")); env != "" {
			dbDSN = env
			pterm.Println("Using DSN from DATABASE_URL environment variable")
			pterm.Println()
		}

		if dbDSN == "" {
			km, err := keychain.GetManager()
			if err != nil {
				pterm.Println("❌ Secure storage is not available on this system")
				return err
			}
			dbDSN, err = km.LoadReportsDSN()
			if err != nil || strings.TrimSpace(dbDSN) == "" {
				pterm.Println("⚠️  No reporting database configured")
				pterm.Println("   Please run: recicla connect")
				return nil
			}
			pterm.Println("Using DSN from OS keychain")
			pterm.Println()
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Reporting Database")).
			WithTopPadding(1).
			WithBottomPadding(1).
			WithLeftPadding(1).
			WithRightPadding(1).
			Println(logging.Mask(dbDSN))
		pterm.Println()
		pterm.Println("To update this connection, run: recicla connect")
		pterm.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbinfoCmd)
}

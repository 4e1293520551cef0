// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Recicla CLI
// application. It implements subcommands for authentication, browsing the
// recycling business data (materials, purchases, sales, expenses) and
// exporting it to a local reporting database, using the Cobra CLI framework.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"recicla/cli/internal/httperrors"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the Recicla CLI application.
var rootCmd = &cobra.Command{
	Use:           "recicla",
	Short:         "Recicla CLI for the recycling business API",
	Long:          `Recicla is a command-line tool for managing a small recycling business: authentication, materials, purchases, sales, expenses and local report exports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("recicla %s\n", Version)

			// Best-effort backend status; version output works offline too.
			a, err := newApp()
			if err == nil {
				ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Second)
				defer cancel()
				host := httperrors.ExtractHostFromURL(a.client.BaseURL())
				if _, herr := a.client.Health(ctx); herr == nil {
					fmt.Printf("backend %s: ok\n", host)
				} else {
					fmt.Printf("backend %s: unreachable\n", host)
				}
			}
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version and backend status")
}

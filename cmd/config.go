// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"recicla/cli/internal/config"

	"github.com/spf13/cobra"
)

var (
	configAPIURL  string
	configTimeout int
)

// configCmd shows or updates the CLI configuration. RECICLA_API_URL still
// overrides the saved base URL at runtime.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update CLI configuration",

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		if configAPIURL != "" {
			cfg.APIBaseURL = configAPIURL
			changed = true
		}
		if configTimeout > 0 {
			cfg.TimeoutSeconds = configTimeout
			changed = true
		}
		if changed {
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("saving configuration: %w", err)
			}
			fmt.Println("✅ Configuration saved")
		}

		fmt.Printf("API base URL:    %s\n", cfg.APIBaseURL)
		fmt.Printf("Request timeout: %ds\n", cfg.TimeoutSeconds)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVar(&configAPIURL, "api-url", "", "Set the API base URL")
	configCmd.Flags().IntVar(&configTimeout, "timeout", 0, "Set the request timeout in seconds")
}

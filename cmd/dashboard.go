// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	dashboardPeriodo string
	dashboardRaw     bool
)

// dashboardCmd shows the business summary the backend computes per period.
// The payload shape varies with the backend version, so it is rendered
// generically: scalar fields as a table, nested structures on demand with
// --json.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the business dashboard summary",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, ok, err := authedApp(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		data, err := a.client.Dashboard(ctx, dashboardPeriodo)
		if err != nil {
			return err
		}
		if len(data) == 0 {
			fmt.Println("No dashboard data returned")
			return nil
		}

		if dashboardRaw {
			b, merr := json.MarshalIndent(data, "", "  ")
			if merr != nil {
				return merr
			}
			fmt.Println(string(b))
			return nil
		}

		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		rows := pterm.TableData{{"Metric", "Value"}}
		for _, k := range keys {
			switch v := data[k].(type) {
			case string:
				rows = append(rows, []string{k, v})
			case float64:
				rows = append(rows, []string{k, fmt.Sprintf("%g", v)})
			case bool:
				rows = append(rows, []string{k, fmt.Sprintf("%t", v)})
			default:
				rows = append(rows, []string{k, "(use --json to inspect)"})
			}
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardPeriodo, "periodo", "mes", "Summary period (dia, semana, mes, año)")
	dashboardCmd.Flags().BoolVar(&dashboardRaw, "json", false, "Print the raw JSON payload")
}

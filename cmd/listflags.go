// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"recicla/cli/internal/api"
)

// listFlags holds the date-range and paging flags shared by every listing
// command (purchases, sales, expenses).
type listFlags struct {
	desde  string
	hasta  string
	pagina int
	limite int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.desde, "desde", "", "Start date filter (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.hasta, "hasta", "", "End date filter (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.pagina, "pagina", 1, "Page number")
	cmd.Flags().IntVar(&f.limite, "limite", 20, "Page size")
}

func (f *listFlags) filter() api.ListFilter {
	return api.ListFilter{
		FechaInicio: f.desde,
		FechaFin:    f.hasta,
		Pagina:      f.pagina,
		Limite:      f.limite,
	}
}

// renderTable prints rows as a pterm table with a header row.
func renderTable(header []string, rows [][]string) {
	data := pterm.TableData{header}
	data = append(data, rows...)
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printPaginacion prints the page footer for paginated listings.
func printPaginacion(p api.Paginacion) {
	if p.TotalPaginas <= 1 {
		fmt.Printf("%d result(s)\n", p.Total)
		return
	}
	fmt.Printf("Page %d of %d (%d total). Use --pagina to browse.\n", p.Pagina, p.TotalPaginas, p.Total)
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func kilos(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + " kg"
}

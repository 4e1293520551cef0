// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	ventasFlags   listFlags
	ventasCliente string
)

// ventasCmd lists sales of accumulated material.
var ventasCmd = &cobra.Command{
	Use:   "ventas",
	Short: "List material sales",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, ok, err := authedApp(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		f := ventasFlags.filter()
		f.Cliente = ventasCliente
		items, pag, err := a.client.ListVentas(ctx, f)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No sales found")
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, v := range items {
			rows = append(rows, []string{
				v.Fecha, v.MaterialNombre, kilos(v.Kilos),
				money(v.PrecioKilo), money(v.TotalPesos), v.Cliente,
			})
		}
		renderTable([]string{"Date", "Material", "Weight", "Price/kg", "Total", "Client"}, rows)
		printPaginacion(pag)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ventasCmd)
	ventasFlags.register(ventasCmd)
	ventasCmd.Flags().StringVar(&ventasCliente, "cliente", "", "Filter by client name")
}

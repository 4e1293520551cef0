// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	comprasGeneralesFlags  listFlags
	comprasMaterialesFlags listFlags
	comprasTipoPrecio      string
)

// comprasCmd groups the two purchase listings.
var comprasCmd = &cobra.Command{
	Use:   "compras",
	Short: "List purchases",
}

// comprasGeneralesCmd lists bulk purchases without material breakdown.
var comprasGeneralesCmd = &cobra.Command{
	Use:   "generales",
	Short: "List bulk purchases",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, ok, err := authedApp(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		f := comprasGeneralesFlags.filter()
		f.TipoPrecio = comprasTipoPrecio
		items, pag, err := a.client.ListComprasGenerales(ctx, f)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No purchases found")
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, c := range items {
			rows = append(rows, []string{c.Fecha, money(c.TotalPesos), c.TipoPrecio, c.Cliente})
		}
		renderTable([]string{"Date", "Total", "Price tier", "Client"}, rows)
		printPaginacion(pag)
		return nil
	},
}

// comprasMaterialesCmd lists per-material purchases by weight.
var comprasMaterialesCmd = &cobra.Command{
	Use:   "materiales",
	Short: "List per-material purchases",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, ok, err := authedApp(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		f := comprasMaterialesFlags.filter()
		f.TipoPrecio = comprasTipoPrecio
		items, pag, err := a.client.ListComprasMateriales(ctx, f)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No purchases found")
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, c := range items {
			rows = append(rows, []string{
				c.Fecha, c.MaterialNombre, kilos(c.Kilos),
				money(c.PrecioKilo), money(c.TotalPesos), c.TipoPrecio,
			})
		}
		renderTable([]string{"Date", "Material", "Weight", "Price/kg", "Total", "Price tier"}, rows)
		printPaginacion(pag)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(comprasCmd)
	comprasCmd.AddCommand(comprasGeneralesCmd)
	comprasCmd.AddCommand(comprasMaterialesCmd)
	comprasGeneralesFlags.register(comprasGeneralesCmd)
	comprasMaterialesFlags.register(comprasMaterialesCmd)
	comprasCmd.PersistentFlags().StringVar(&comprasTipoPrecio, "tipo-precio", "", "Filter by price tier (ordinario, camion, noche)")
}

// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	materialesCategoria  string
	materialesSoloActivo bool
)

// materialesCmd lists the recyclable materials with their price tiers.
var materialesCmd = &cobra.Command{
	Use:   "materiales",
	Short: "List recyclable materials and their prices",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, ok, err := authedApp(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		var activo *bool
		if materialesSoloActivo {
			t := true
			activo = &t
		}
		items, err := a.client.ListMateriales(ctx, materialesCategoria, activo)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No materials found")
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, m := range items {
			estado := "active"
			if !m.Activo {
				estado = "inactive"
			}
			rows = append(rows, []string{
				m.Nombre, m.Categoria,
				money(m.PrecioOrdinario), money(m.PrecioCamion), money(m.PrecioNoche),
				estado,
			})
		}
		renderTable([]string{"Material", "Category", "Ordinary", "Truck", "Night", "Status"}, rows)
		return nil
	},
}

// materialesCategoriasCmd lists the distinct material categories.
var materialesCategoriasCmd = &cobra.Command{
	Use:   "categorias",
	Short: "List material categories",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, ok, err := authedApp(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		cats, err := a.client.MaterialCategorias(ctx)
		if err != nil {
			return err
		}
		for _, c := range cats {
			fmt.Println("• " + c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(materialesCmd)
	materialesCmd.AddCommand(materialesCategoriasCmd)
	materialesCmd.Flags().StringVar(&materialesCategoria, "categoria", "", "Filter by category")
	materialesCmd.Flags().BoolVar(&materialesSoloActivo, "activos", false, "Show only active materials")
}

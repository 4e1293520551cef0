// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	gastosFlags       listFlags
	gastosCategoriaID int64
)

// gastosCmd lists business expenses.
var gastosCmd = &cobra.Command{
	Use:   "gastos",
	Short: "List business expenses",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, ok, err := authedApp(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		f := gastosFlags.filter()
		f.CategoriaID = gastosCategoriaID
		items, pag, err := a.client.ListGastos(ctx, f)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No expenses found")
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, g := range items {
			rows = append(rows, []string{g.Fecha, g.CategoriaNombre, g.Concepto, money(g.Valor)})
		}
		renderTable([]string{"Date", "Category", "Concept", "Amount"}, rows)
		printPaginacion(pag)
		return nil
	},
}

// gastosCategoriasCmd lists expense categories.
var gastosCategoriasCmd = &cobra.Command{
	Use:   "categorias",
	Short: "List expense categories",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, ok, err := authedApp(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		cats, err := a.client.GastoCategorias(ctx)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(cats))
		for _, c := range cats {
			estado := "active"
			if !c.Activo {
				estado = "inactive"
			}
			rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Nombre, c.Descripcion, estado})
		}
		renderTable([]string{"ID", "Category", "Description", "Status"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gastosCmd)
	gastosCmd.AddCommand(gastosCategoriasCmd)
	gastosFlags.register(gastosCmd)
	gastosCmd.Flags().Int64Var(&gastosCategoriaID, "categoria", 0, "Filter by expense category id")
}

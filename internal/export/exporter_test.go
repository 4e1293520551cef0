// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recicla/cli/internal/api"
)

func TestForEachPageWalksToLastPage(t *testing.T) {
	var pages []int
	err := forEachPage(api.ListFilter{Limite: 2}, func(f api.ListFilter) (int, api.Paginacion, error) {
		pages = append(pages, f.Pagina)
		pag := api.Paginacion{Pagina: f.Pagina, Limite: f.Limite, Total: 5, TotalPaginas: 3}
		if f.Pagina == 3 {
			return 1, pag, nil
		}
		return 2, pag, nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, pages)
}

func TestForEachPageStopsOnShortPage(t *testing.T) {
	calls := 0
	err := forEachPage(api.ListFilter{Limite: 10}, func(f api.ListFilter) (int, api.Paginacion, error) {
		calls++
		// Backend overreports the page count; the short page ends the walk.
		return 3, api.Paginacion{Pagina: f.Pagina, Limite: f.Limite, Total: 3, TotalPaginas: 99}, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestForEachPageDefaultsLimit(t *testing.T) {
	err := forEachPage(api.ListFilter{}, func(f api.ListFilter) (int, api.Paginacion, error) {
		require.Equal(t, pageSize, f.Limite)
		return 0, api.Paginacion{TotalPaginas: 0}, nil
	})
	require.NoError(t, err)
}

func TestSummaryTotal(t *testing.T) {
	s := Summary{Materiales: 1, ComprasGenerales: 2, ComprasMateriales: 3, Ventas: 4, Gastos: 5}
	require.Equal(t, 15, s.Total())
}

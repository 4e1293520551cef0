// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package export copies the backend's operational data into a local
// Postgres database so reports can be run with plain SQL, offline.
// Exports are idempotent: rows are upserted by id, so re-running an
// export refreshes the local copy instead of duplicating it.
package export

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"recicla/cli/internal/api"
)

// pageSize is the page length requested from the backend's list
// endpoints. The backend caps pages well above this.
const pageSize = 200

// Summary reports how many rows each export step wrote.
type Summary struct {
	Materiales        int
	ComprasGenerales  int
	ComprasMateriales int
	Ventas            int
	Gastos            int
}

// Total returns the sum of all exported rows.
func (s Summary) Total() int {
	return s.Materiales + s.ComprasGenerales + s.ComprasMateriales + s.Ventas + s.Gastos
}

// Exporter pulls rows from the API and upserts them into a Postgres pool.
type Exporter struct {
	client *api.Client
	pool   *pgxpool.Pool
}

// New returns an Exporter over the given API client and connection pool.
// The caller owns the pool.
func New(client *api.Client, pool *pgxpool.Pool) *Exporter {
	return &Exporter{client: client, pool: pool}
}

// EnsureSchema creates the reporting tables if they do not exist yet.
func (e *Exporter) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := e.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("creating reporting schema: %w", err)
		}
	}
	return nil
}

// Run exports every dataset and returns per-dataset row counts. A filter
// narrows the dated datasets (purchases, sales, expenses); materials are
// always exported in full so foreign references resolve.
func (e *Exporter) Run(ctx context.Context, f api.ListFilter) (Summary, error) {
	var sum Summary
	var err error

	if sum.Materiales, err = e.exportMateriales(ctx); err != nil {
		return sum, err
	}
	if sum.ComprasGenerales, err = e.exportComprasGenerales(ctx, f); err != nil {
		return sum, err
	}
	if sum.ComprasMateriales, err = e.exportComprasMateriales(ctx, f); err != nil {
		return sum, err
	}
	if sum.Ventas, err = e.exportVentas(ctx, f); err != nil {
		return sum, err
	}
	if sum.Gastos, err = e.exportGastos(ctx, f); err != nil {
		return sum, err
	}
	return sum, nil
}

func (e *Exporter) exportMateriales(ctx context.Context) (int, error) {
	rows, err := e.client.ListMateriales(ctx, "", nil)
	if err != nil {
		return 0, fmt.Errorf("fetching materiales: %w", err)
	}
	for _, m := range rows {
		_, err := e.pool.Exec(ctx, upsertMaterial,
			m.ID, m.Nombre, m.Categoria,
			m.PrecioOrdinario, m.PrecioCamion, m.PrecioNoche,
			m.Activo, m.FechaCreacion)
		if err != nil {
			return 0, fmt.Errorf("writing material %d: %w", m.ID, err)
		}
	}
	return len(rows), nil
}

func (e *Exporter) exportComprasGenerales(ctx context.Context, f api.ListFilter) (int, error) {
	count := 0
	err := forEachPage(f, func(pf api.ListFilter) (int, api.Paginacion, error) {
		rows, pag, err := e.client.ListComprasGenerales(ctx, pf)
		if err != nil {
			return 0, pag, fmt.Errorf("fetching compras generales: %w", err)
		}
		for _, r := range rows {
			_, err := e.pool.Exec(ctx, upsertCompraGeneral,
				r.ID, r.Fecha, r.TotalPesos, r.TipoPrecio,
				r.Cliente, r.Observaciones, r.FechaCreacion)
			if err != nil {
				return 0, pag, fmt.Errorf("writing compra general %d: %w", r.ID, err)
			}
		}
		count += len(rows)
		return len(rows), pag, nil
	})
	return count, err
}

func (e *Exporter) exportComprasMateriales(ctx context.Context, f api.ListFilter) (int, error) {
	count := 0
	err := forEachPage(f, func(pf api.ListFilter) (int, api.Paginacion, error) {
		rows, pag, err := e.client.ListComprasMateriales(ctx, pf)
		if err != nil {
			return 0, pag, fmt.Errorf("fetching compras de materiales: %w", err)
		}
		for _, r := range rows {
			_, err := e.pool.Exec(ctx, upsertCompraMaterial,
				r.ID, r.MaterialID, r.MaterialNombre, r.MaterialCategoria,
				r.Fecha, r.Kilos, r.PrecioKilo, r.TotalPesos, r.TipoPrecio,
				r.Cliente, r.Observaciones, r.FechaCreacion)
			if err != nil {
				return 0, pag, fmt.Errorf("writing compra de material %d: %w", r.ID, err)
			}
		}
		count += len(rows)
		return len(rows), pag, nil
	})
	return count, err
}

func (e *Exporter) exportVentas(ctx context.Context, f api.ListFilter) (int, error) {
	count := 0
	err := forEachPage(f, func(pf api.ListFilter) (int, api.Paginacion, error) {
		rows, pag, err := e.client.ListVentas(ctx, pf)
		if err != nil {
			return 0, pag, fmt.Errorf("fetching ventas: %w", err)
		}
		for _, r := range rows {
			_, err := e.pool.Exec(ctx, upsertVenta,
				r.ID, r.MaterialID, r.MaterialNombre, r.MaterialCategoria,
				r.Fecha, r.Kilos, r.PrecioKilo, r.TotalPesos,
				r.Cliente, r.Observaciones, r.FechaCreacion)
			if err != nil {
				return 0, pag, fmt.Errorf("writing venta %d: %w", r.ID, err)
			}
		}
		count += len(rows)
		return len(rows), pag, nil
	})
	return count, err
}

func (e *Exporter) exportGastos(ctx context.Context, f api.ListFilter) (int, error) {
	count := 0
	err := forEachPage(f, func(pf api.ListFilter) (int, api.Paginacion, error) {
		rows, pag, err := e.client.ListGastos(ctx, pf)
		if err != nil {
			return 0, pag, fmt.Errorf("fetching gastos: %w", err)
		}
		for _, r := range rows {
			_, err := e.pool.Exec(ctx, upsertGasto,
				r.ID, r.CategoriaID, r.CategoriaNombre, r.Fecha,
				r.Concepto, r.Valor, r.Observaciones, r.FechaCreacion)
			if err != nil {
				return 0, pag, fmt.Errorf("writing gasto %d: %w", r.ID, err)
			}
		}
		count += len(rows)
		return len(rows), pag, nil
	})
	return count, err
}

// forEachPage walks a paginated endpoint from page 1 until the reported
// last page. A short page also terminates the walk, guarding against
// backends that overreport totalPaginas.
func forEachPage(f api.ListFilter, fetch func(api.ListFilter) (int, api.Paginacion, error)) error {
	f.Pagina = 1
	if f.Limite <= 0 {
		f.Limite = pageSize
	}
	for {
		n, pag, err := fetch(f)
		if err != nil {
			return err
		}
		if n < f.Limite || pag.TotalPaginas == 0 || f.Pagina >= pag.TotalPaginas {
			return nil
		}
		f.Pagina++
	}
}

// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListFilter narrows paginated listings. Zero values are omitted from the
// query string.
type ListFilter struct {
	FechaInicio string
	FechaFin    string
	MaterialID  int64
	CategoriaID int64
	TipoPrecio  string
	Cliente     string
	Pagina      int
	Limite      int
}

func (f ListFilter) query() url.Values {
	q := url.Values{}
	if f.FechaInicio != "" {
		q.Set("fecha_inicio", f.FechaInicio)
	}
	if f.FechaFin != "" {
		q.Set("fecha_fin", f.FechaFin)
	}
	if f.MaterialID > 0 {
		q.Set("material_id", strconv.FormatInt(f.MaterialID, 10))
	}
	if f.CategoriaID > 0 {
		q.Set("categoria_id", strconv.FormatInt(f.CategoriaID, 10))
	}
	if f.TipoPrecio != "" {
		q.Set("tipo_precio", f.TipoPrecio)
	}
	if f.Cliente != "" {
		q.Set("cliente", f.Cliente)
	}
	if f.Pagina > 0 {
		q.Set("pagina", strconv.Itoa(f.Pagina))
	}
	if f.Limite > 0 {
		q.Set("limite", strconv.Itoa(f.Limite))
	}
	return q
}

// ListMateriales calls GET /materiales. Pass activo=nil for all materials.
func (c *Client) ListMateriales(ctx context.Context, categoria string, activo *bool) ([]Material, error) {
	q := url.Values{}
	if categoria != "" {
		q.Set("categoria", categoria)
	}
	if activo != nil {
		q.Set("activo", strconv.FormatBool(*activo))
	}
	var out []Material
	if err := c.get(ctx, c.authed, c.endpoints.Materiales, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MaterialCategorias calls GET /materiales/categorias/list.
func (c *Client) MaterialCategorias(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, c.authed, c.endpoints.MaterialesCategorias, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListComprasGenerales calls GET /compras/generales.
func (c *Client) ListComprasGenerales(ctx context.Context, f ListFilter) ([]CompraGeneral, Paginacion, error) {
	var out struct {
		Compras    []CompraGeneral `json:"compras"`
		Paginacion Paginacion      `json:"paginacion"`
	}
	if err := c.get(ctx, c.authed, c.endpoints.ComprasGenerales, f.query(), &out); err != nil {
		return nil, Paginacion{}, err
	}
	return out.Compras, out.Paginacion, nil
}

// ListComprasMateriales calls GET /compras/materiales.
func (c *Client) ListComprasMateriales(ctx context.Context, f ListFilter) ([]CompraMaterial, Paginacion, error) {
	var out struct {
		Compras    []CompraMaterial `json:"compras"`
		Paginacion Paginacion       `json:"paginacion"`
	}
	if err := c.get(ctx, c.authed, c.endpoints.ComprasMateriales, f.query(), &out); err != nil {
		return nil, Paginacion{}, err
	}
	return out.Compras, out.Paginacion, nil
}

// ListVentas calls GET /ventas.
func (c *Client) ListVentas(ctx context.Context, f ListFilter) ([]Venta, Paginacion, error) {
	var out struct {
		Ventas     []Venta    `json:"ventas"`
		Paginacion Paginacion `json:"paginacion"`
	}
	if err := c.get(ctx, c.authed, c.endpoints.Ventas, f.query(), &out); err != nil {
		return nil, Paginacion{}, err
	}
	return out.Ventas, out.Paginacion, nil
}

// ListGastos calls GET /gastos.
func (c *Client) ListGastos(ctx context.Context, f ListFilter) ([]Gasto, Paginacion, error) {
	var out struct {
		Gastos     []Gasto    `json:"gastos"`
		Paginacion Paginacion `json:"paginacion"`
	}
	if err := c.get(ctx, c.authed, c.endpoints.Gastos, f.query(), &out); err != nil {
		return nil, Paginacion{}, err
	}
	return out.Gastos, out.Paginacion, nil
}

// GastoCategorias calls GET /gastos/categorias.
func (c *Client) GastoCategorias(ctx context.Context) ([]CategoriaGasto, error) {
	var out []CategoriaGasto
	if err := c.get(ctx, c.authed, c.endpoints.GastosCategorias, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Dashboard calls GET /reportes/dashboard for a period like "mes" or "año".
// The payload is passed through as received; no aggregation happens here.
func (c *Client) Dashboard(ctx context.Context, periodo string) (map[string]any, error) {
	q := url.Values{}
	if periodo != "" {
		q.Set("periodo", periodo)
	}
	var out map[string]any
	if err := c.get(ctx, c.authed, c.endpoints.Dashboard, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health calls GET /health without authentication.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.get(ctx, c.bare, c.endpoints.Health, nil, &out); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}
	return out, nil
}

// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

// RolAdministrador is the role string the backend assigns to admin accounts.
const RolAdministrador = "administrador"

// Usuario is the authenticated account as the backend reports it.
type Usuario struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// AuthResult is the payload of login, registration and refresh responses.
// Both tokens always arrive together; the session layer replaces the pair
// atomically.
type AuthResult struct {
	Token        string  `json:"token"`
	RefreshToken string  `json:"refreshToken"`
	Usuario      Usuario `json:"usuario"`
}

// Material is a recyclable material with its three price tiers.
type Material struct {
	ID              int64   `json:"id"`
	Nombre          string  `json:"nombre"`
	Categoria       string  `json:"categoria"`
	PrecioOrdinario float64 `json:"precio_ordinario"`
	PrecioCamion    float64 `json:"precio_camion"`
	PrecioNoche     float64 `json:"precio_noche"`
	Activo          bool    `json:"activo"`
	FechaCreacion   string  `json:"fecha_creacion"`
}

// CompraGeneral is a bulk purchase without material breakdown.
type CompraGeneral struct {
	ID            int64   `json:"id"`
	Fecha         string  `json:"fecha"`
	TotalPesos    float64 `json:"total_pesos"`
	TipoPrecio    string  `json:"tipo_precio"`
	Cliente       string  `json:"cliente,omitempty"`
	Observaciones string  `json:"observaciones,omitempty"`
	FechaCreacion string  `json:"fecha_creacion"`
}

// CompraMaterial is a per-material purchase by weight.
type CompraMaterial struct {
	ID                int64   `json:"id"`
	MaterialID        int64   `json:"material_id"`
	MaterialNombre    string  `json:"material_nombre"`
	MaterialCategoria string  `json:"material_categoria"`
	Fecha             string  `json:"fecha"`
	Kilos             float64 `json:"kilos"`
	PrecioKilo        float64 `json:"precio_kilo"`
	TotalPesos        float64 `json:"total_pesos"`
	TipoPrecio        string  `json:"tipo_precio"`
	Cliente           string  `json:"cliente,omitempty"`
	Observaciones     string  `json:"observaciones,omitempty"`
	FechaCreacion     string  `json:"fecha_creacion"`
}

// Venta is a sale of accumulated material.
type Venta struct {
	ID                int64   `json:"id"`
	MaterialID        int64   `json:"material_id"`
	MaterialNombre    string  `json:"material_nombre"`
	MaterialCategoria string  `json:"material_categoria"`
	Fecha             string  `json:"fecha"`
	Kilos             float64 `json:"kilos"`
	PrecioKilo        float64 `json:"precio_kilo"`
	TotalPesos        float64 `json:"total_pesos"`
	Cliente           string  `json:"cliente,omitempty"`
	Observaciones     string  `json:"observaciones,omitempty"`
	FechaCreacion     string  `json:"fecha_creacion"`
}

// CategoriaGasto is an expense category.
type CategoriaGasto struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activo      bool   `json:"activo"`
}

// Gasto is a business expense.
type Gasto struct {
	ID              int64   `json:"id"`
	CategoriaID     int64   `json:"categoria_id"`
	CategoriaNombre string  `json:"categoria_nombre"`
	Fecha           string  `json:"fecha"`
	Concepto        string  `json:"concepto"`
	Valor           float64 `json:"valor"`
	Observaciones   string  `json:"observaciones,omitempty"`
	FechaCreacion   string  `json:"fecha_creacion"`
}

// Paginacion describes a page of results as the backend reports it.
type Paginacion struct {
	Pagina       int `json:"pagina"`
	Limite       int `json:"limite"`
	Total        int `json:"total"`
	TotalPaginas int `json:"totalPaginas"`
}

// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

// Endpoints contains REST API endpoint paths of the recycling backend.
// The backend speaks Spanish on the wire; paths and JSON field names are
// kept exactly as it serves them.
type Endpoints struct {
	Login           string
	Registro        string
	Verificar       string
	Refresh         string
	Logout          string
	Perfil          string
	CambiarPassword string

	Materiales           string
	MaterialesCategorias string
	ComprasGenerales     string
	ComprasMateriales    string
	Ventas               string
	Gastos               string
	GastosCategorias     string
	Dashboard            string
	Health               string
}

// DefaultEndpoints returns the paths the backend serves today.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Login:           "/auth/login",
		Registro:        "/auth/registro",
		Verificar:       "/auth/verificar",
		Refresh:         "/auth/refresh",
		Logout:          "/auth/logout",
		Perfil:          "/auth/perfil",
		CambiarPassword: "/auth/cambiar-password",

		Materiales:           "/materiales",
		MaterialesCategorias: "/materiales/categorias/list",
		ComprasGenerales:     "/compras/generales",
		ComprasMateriales:    "/compras/materiales",
		Ventas:               "/ventas",
		Gastos:               "/gastos",
		GastosCategorias:     "/gastos/categorias",
		Dashboard:            "/reportes/dashboard",
		Health:               "/health",
	}
}

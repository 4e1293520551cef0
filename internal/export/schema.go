// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package export

// Table DDL for the local reporting database. Mirrors the row shapes the
// API serves; ids come from the backend so they are plain bigints, not
// serials.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS materiales (
		id BIGINT PRIMARY KEY,
		nombre TEXT NOT NULL,
		categoria TEXT NOT NULL,
		precio_ordinario NUMERIC(14,2) NOT NULL DEFAULT 0,
		precio_camion NUMERIC(14,2) NOT NULL DEFAULT 0,
		precio_noche NUMERIC(14,2) NOT NULL DEFAULT 0,
		activo BOOLEAN NOT NULL DEFAULT TRUE,
		fecha_creacion TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS compras_generales (
		id BIGINT PRIMARY KEY,
		fecha TEXT NOT NULL,
		total_pesos NUMERIC(14,2) NOT NULL,
		tipo_precio TEXT NOT NULL,
		cliente TEXT,
		observaciones TEXT,
		fecha_creacion TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS compras_materiales (
		id BIGINT PRIMARY KEY,
		material_id BIGINT NOT NULL,
		material_nombre TEXT NOT NULL,
		material_categoria TEXT,
		fecha TEXT NOT NULL,
		kilos NUMERIC(14,3) NOT NULL,
		precio_kilo NUMERIC(14,2) NOT NULL,
		total_pesos NUMERIC(14,2) NOT NULL,
		tipo_precio TEXT NOT NULL,
		cliente TEXT,
		observaciones TEXT,
		fecha_creacion TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS ventas (
		id BIGINT PRIMARY KEY,
		material_id BIGINT NOT NULL,
		material_nombre TEXT NOT NULL,
		material_categoria TEXT,
		fecha TEXT NOT NULL,
		kilos NUMERIC(14,3) NOT NULL,
		precio_kilo NUMERIC(14,2) NOT NULL,
		total_pesos NUMERIC(14,2) NOT NULL,
		cliente TEXT,
		observaciones TEXT,
		fecha_creacion TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS gastos (
		id BIGINT PRIMARY KEY,
		categoria_id BIGINT NOT NULL,
		categoria_nombre TEXT NOT NULL,
		fecha TEXT NOT NULL,
		concepto TEXT NOT NULL,
		valor NUMERIC(14,2) NOT NULL,
		observaciones TEXT,
		fecha_creacion TEXT
	)`,
}

const upsertMaterial = `INSERT INTO materiales
	(id, nombre, categoria, precio_ordinario, precio_camion, precio_noche, activo, fecha_creacion)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		nombre = EXCLUDED.nombre,
		categoria = EXCLUDED.categoria,
		precio_ordinario = EXCLUDED.precio_ordinario,
		precio_camion = EXCLUDED.precio_camion,
		precio_noche = EXCLUDED.precio_noche,
		activo = EXCLUDED.activo,
		fecha_creacion = EXCLUDED.fecha_creacion`

const upsertCompraGeneral = `INSERT INTO compras_generales
	(id, fecha, total_pesos, tipo_precio, cliente, observaciones, fecha_creacion)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		fecha = EXCLUDED.fecha,
		total_pesos = EXCLUDED.total_pesos,
		tipo_precio = EXCLUDED.tipo_precio,
		cliente = EXCLUDED.cliente,
		observaciones = EXCLUDED.observaciones,
		fecha_creacion = EXCLUDED.fecha_creacion`

const upsertCompraMaterial = `INSERT INTO compras_materiales
	(id, material_id, material_nombre, material_categoria, fecha, kilos, precio_kilo,
	 total_pesos, tipo_precio, cliente, observaciones, fecha_creacion)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO UPDATE SET
		material_id = EXCLUDED.material_id,
		material_nombre = EXCLUDED.material_nombre,
		material_categoria = EXCLUDED.material_categoria,
		fecha = EXCLUDED.fecha,
		kilos = EXCLUDED.kilos,
		precio_kilo = EXCLUDED.precio_kilo,
		total_pesos = EXCLUDED.total_pesos,
		tipo_precio = EXCLUDED.tipo_precio,
		cliente = EXCLUDED.cliente,
		observaciones = EXCLUDED.observaciones,
		fecha_creacion = EXCLUDED.fecha_creacion`

const upsertVenta = `INSERT INTO ventas
	(id, material_id, material_nombre, material_categoria, fecha, kilos, precio_kilo,
	 total_pesos, cliente, observaciones, fecha_creacion)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (id) DO UPDATE SET
		material_id = EXCLUDED.material_id,
		material_nombre = EXCLUDED.material_nombre,
		material_categoria = EXCLUDED.material_categoria,
		fecha = EXCLUDED.fecha,
		kilos = EXCLUDED.kilos,
		precio_kilo = EXCLUDED.precio_kilo,
		total_pesos = EXCLUDED.total_pesos,
		cliente = EXCLUDED.cliente,
		observaciones = EXCLUDED.observaciones,
		fecha_creacion = EXCLUDED.fecha_creacion`

const upsertGasto = `INSERT INTO gastos
	(id, categoria_id, categoria_nombre, fecha, concepto, valor, observaciones, fecha_creacion)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		categoria_id = EXCLUDED.categoria_id,
		categoria_nombre = EXCLUDED.categoria_nombre,
		fecha = EXCLUDED.fecha,
		concepto = EXCLUDED.concepto,
		valor = EXCLUDED.valor,
		observaciones = EXCLUDED.observaciones,
		fecha_creacion = EXCLUDED.fecha_creacion`

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas del inventario si no existen. El esquema es
// el mismo de la versión original del sistema: dos tablas, productos con FK
// a categorias.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS categorias (
		id_categoria     BIGSERIAL PRIMARY KEY,
		nombre_categoria TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS productos (
		id_producto   BIGSERIAL PRIMARY KEY,
		nombre        TEXT NOT NULL UNIQUE,
		descripcion   TEXT NOT NULL DEFAULT '',
		precio        NUMERIC(12,2) NOT NULL DEFAULT 0,
		stock         NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (stock >= 0),
		id_categoria  BIGINT NOT NULL REFERENCES categorias (id_categoria),
		unidad_medida TEXT NOT NULL DEFAULT 'g',
		peso_unidad   NUMERIC(12,2) NOT NULL DEFAULT 1,
		stock_minimo  NUMERIC(12,2) NOT NULL DEFAULT 0,
		stock_maximo  NUMERIC(12,2) NOT NULL DEFAULT 5000
	);`

	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

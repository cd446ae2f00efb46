package postgres

import (
	"context"
	"fmt"
)

// schemaDDL crea las tablas si no existen. category_id no lleva FK: se aceptan
// referencias colgantes y borrar una categoría no afecta a sus productos.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS categories (
	id          CHAR(24) PRIMARY KEY,
	name        TEXT NOT NULL CONSTRAINT categories_name_key UNIQUE CHECK (char_length(name) >= 2),
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id          CHAR(24) PRIMARY KEY,
	name        TEXT NOT NULL CHECK (char_length(name) >= 2),
	sku         TEXT NOT NULL CONSTRAINT products_sku_key UNIQUE,
	price       NUMERIC NOT NULL CHECK (price >= 0),
	currency    TEXT NOT NULL DEFAULT 'EUR' CHECK (currency IN ('EUR', 'USD')),
	in_stock    BOOLEAN NOT NULL DEFAULT TRUE,
	quantity    NUMERIC NOT NULL CHECK (quantity >= 0),
	tags        TEXT[] NOT NULL DEFAULT '{}',
	category_id CHAR(24) NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE SEQUENCE IF NOT EXISTS catalog_insert_seq;
ALTER TABLE categories ADD COLUMN IF NOT EXISTS seq BIGINT NOT NULL DEFAULT nextval('catalog_insert_seq');
ALTER TABLE products ADD COLUMN IF NOT EXISTS seq BIGINT NOT NULL DEFAULT nextval('catalog_insert_seq');
`

// EnsureSchema aplica el DDL (idempotente).
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}

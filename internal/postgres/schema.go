package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       NUMERIC(12,2) NOT NULL,
		inventory   INT NOT NULL CHECK (inventory >= 0),
		image       TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS product_variants (
		product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		pos        INT NOT NULL,
		name       TEXT NOT NULL,
		price      NUMERIC(12,2) NOT NULL,
		inventory  INT NOT NULL CHECK (inventory >= 0),
		image      TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (product_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id         TEXT PRIMARY KEY,
		customer_name    TEXT NOT NULL,
		customer_email   TEXT NOT NULL,
		customer_address TEXT NOT NULL,
		customer_city    TEXT NOT NULL,
		customer_state   TEXT NOT NULL,
		customer_zip     TEXT NOT NULL,
		total_amount     NUMERIC(12,2) NOT NULL,
		status           TEXT NOT NULL CHECK (status IN ('approved','declined','error')),
		transaction_code TEXT NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id   TEXT NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
		pos        INT NOT NULL,
		product_id TEXT NOT NULL,
		title      TEXT NOT NULL,
		variant    TEXT,
		price      NUMERIC(12,2) NOT NULL,
		qty        INT NOT NULL CHECK (qty > 0),
		image      TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (order_id, pos)
	)`,
}

// EnsureSchema creates the tables when missing. Statements are idempotent so
// it is safe to run on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Reset drops everything so a seed run starts from a clean slate.
func Reset(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `DROP TABLE IF EXISTS order_items, orders, product_variants, products`)
	return err
}

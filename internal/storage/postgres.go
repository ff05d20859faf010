// Package storage owns the Postgres connection pool and schema bootstrap.
package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	cost_price  NUMERIC(12,2) NOT NULL CHECK (cost_price >= 0),
	sell_price  NUMERIC(12,2) NOT NULL CHECK (sell_price >= 0),
	category    TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS orders (
	id              TEXT PRIMARY KEY,
	customer_email  TEXT NOT NULL,
	customer_phone  TEXT NOT NULL,
	customer_suburb TEXT NOT NULL,
	total_amount    NUMERIC(12,2) NOT NULL,
	status          TEXT NOT NULL DEFAULT 'completed',
	order_date      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS order_items (
	id                TEXT PRIMARY KEY,
	order_id          TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	product_id        TEXT NOT NULL,
	product_name      TEXT NOT NULL,
	quantity          INTEGER NOT NULL,
	price_at_purchase NUMERIC(12,2) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`

// Connect opens a pool and verifies the database is reachable.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// EnsureSchema creates the tables if they do not exist yet.
// order_items rows cascade-delete with their order; product_id is
// deliberately not a foreign key so historical orders survive catalog
// removals.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err := pool.Exec(ctx, schema)
	return err
}

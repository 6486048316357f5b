package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		image TEXT,
		cuisine TEXT[],
		rating DOUBLE PRECISION,
		delivery_time INT,
		min_order DOUBLE PRECISION,
		is_open BOOLEAN,
		address TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		price DOUBLE PRECISION,
		category TEXT,
		is_veg BOOLEAN,
		image TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items (restaurant_id)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		line1 TEXT NOT NULL,
		line2 TEXT,
		city TEXT,
		pincode TEXT,
		landmark TEXT,
		is_default BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id TEXT PRIMARY KEY,
		menu_item_id TEXT NOT NULL,
		name TEXT,
		price DOUBLE PRECISION,
		quantity INT NOT NULL,
		customizations JSONB NOT NULL DEFAULT '{}'::jsonb,
		special_instructions TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		items JSONB NOT NULL,
		total DOUBLE PRECISION,
		delivery_address JSONB NOT NULL,
		payment_method TEXT,
		status TEXT NOT NULL,
		placed_at TIMESTAMPTZ NOT NULL,
		estimated_delivery TIMESTAMPTZ NOT NULL,
		delivered_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_placed_at ON orders (placed_at DESC)`,
}

// Migrate creates the tables quickbite needs. Statements are idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}

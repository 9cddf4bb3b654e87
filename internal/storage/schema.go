package storage

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables the service owns. Statements are
// idempotent so startup can always run them.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT 'customer',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			availability TEXT NOT NULL DEFAULT 'available',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			table_id INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_details (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id INTEGER NOT NULL REFERENCES menu_items(id),
			item_name TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			price NUMERIC(10,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL,
			method TEXT NOT NULL DEFAULT '',
			amount NUMERIC(10,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			paid_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS payment_details (
			id SERIAL PRIMARY KEY,
			payment_id INTEGER NOT NULL REFERENCES payments(id) ON DELETE CASCADE,
			method TEXT NOT NULL DEFAULT '',
			amount NUMERIC(10,2) NOT NULL,
			transaction_code TEXT NOT NULL DEFAULT '',
			provider TEXT NOT NULL DEFAULT '',
			extra_info TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_order_details_order ON order_details(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status)`,
		`CREATE INDEX IF NOT EXISTS idx_payment_details_payment ON payment_details(payment_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// sortClause resolves a caller-supplied sort field against the repository's
// whitelist. Unknown fields fall back, they are never interpolated raw.
func sortClause(whitelist map[string]string, field, fallback string, descending bool) string {
	column, allowed := whitelist[field]
	if !allowed {
		column = fallback
	}
	direction := "ASC"
	if descending {
		direction = "DESC"
	}
	return column + " " + direction
}

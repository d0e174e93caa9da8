package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
)

// schemaStatements provision the two tables and the two supporting indexes.
// Every statement is idempotent, so re-running against an existing schema is
// a no-op.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		category_id SERIAL PRIMARY KEY,
		category_name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id SERIAL PRIMARY KEY,
		product_name TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		stock_quantity INTEGER NOT NULL CHECK (stock_quantity >= 0),
		category_id INTEGER REFERENCES categories(category_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_name ON products (product_name)`,
	`CREATE INDEX IF NOT EXISTS idx_products_price_qty ON products (price, stock_quantity)`,
}

// EnsureSchema provisions the schema on startup. Failures are logged and
// skipped rather than aborting: the schema may already be correctly
// provisioned by a prior run or by an operator.
func EnsureSchema(ctx context.Context, database *sql.DB, log *logrus.Logger) {
	for _, stmt := range schemaStatements {
		stmtCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		_, err := database.ExecContext(stmtCtx, stmt)
		cancel()
		if err != nil {
			log.Warnf("schema statement failed, continuing: %v", err)
		}
	}
}

// Package database persists tagging-run history. The classification core is
// stateless; history rows exist so reviewers can audit what a past run
// suggested for a product.
package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	// Database drivers: sqlite for local runs, postgres for a shared instance.
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS tagging_history (
	id                 INTEGER PRIMARY KEY,
	product_id         TEXT NOT NULL,
	product_title      TEXT NOT NULL,
	status             TEXT NOT NULL,
	suggested_tags     TEXT NOT NULL,
	classifier_version TEXT NOT NULL,
	classified_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tagging_history_product ON tagging_history (product_id);
`

// Open connects to the history database and ensures the schema exists.
// Supported drivers: "sqlite3" and "postgres".
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, migrateSchema(driver)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// migrateSchema adjusts the shared DDL for the target driver.
func migrateSchema(driver string) string {
	if driver == "postgres" {
		return `
CREATE TABLE IF NOT EXISTS tagging_history (
	id                 SERIAL PRIMARY KEY,
	product_id         TEXT NOT NULL,
	product_title      TEXT NOT NULL,
	status             TEXT NOT NULL,
	suggested_tags     TEXT NOT NULL,
	classifier_version TEXT NOT NULL,
	classified_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tagging_history_product ON tagging_history (product_id);
`
	}
	return schema
}

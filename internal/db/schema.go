package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS suppliers (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at DATETIME
);

CREATE TABLE IF NOT EXISTS categories (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at DATETIME
);

CREATE TABLE IF NOT EXISTS items (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    unit        TEXT NOT NULL DEFAULT '',
    threshold   NUMERIC NOT NULL DEFAULT 0 CHECK (threshold >= 0),
    target_qty  NUMERIC CHECK (target_qty IS NULL OR target_qty >= 0),
    note        TEXT,
    supplier_id TEXT REFERENCES suppliers(id),
    category_id TEXT REFERENCES categories(id),
    active      INTEGER NOT NULL DEFAULT 1 CHECK (active IN (0, 1)),
    image       BLOB,
    image_mime  TEXT,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS stock_counts (
    id         INTEGER PRIMARY KEY,
    item_id    TEXT NOT NULL REFERENCES items(id),
    qty        NUMERIC NOT NULL CHECK (qty >= 0),
    note       TEXT,
    counted_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{
	// Migration 1: latest-count lookups walk this index backwards.
	`CREATE INDEX IF NOT EXISTS idx_stock_counts_latest
	     ON stock_counts(item_id, counted_at, id)`,

	// Migration 2: counts are observations; they are never edited or removed.
	`CREATE TRIGGER IF NOT EXISTS stock_counts_no_update
	     BEFORE UPDATE ON stock_counts
	     BEGIN SELECT RAISE(ABORT, 'stock counts are append-only'); END`,
	`CREATE TRIGGER IF NOT EXISTS stock_counts_no_delete
	     BEFORE DELETE ON stock_counts
	     BEGIN SELECT RAISE(ABORT, 'stock counts are append-only'); END`,

	// Migration 3: status listing sorts by supplier and category.
	`CREATE INDEX IF NOT EXISTS idx_items_active
	     ON items(active, supplier_id, category_id, name)`,
}

// EnsureSchema creates all tables and indexes if they don't already exist and
// applies pending migrations.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}

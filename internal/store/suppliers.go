package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/erazemk/zaloga/internal/model"
)

// CreateSupplier creates a new supplier.
func CreateSupplier(ctx context.Context, db *sql.DB, name string) (*model.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("supplier name required")
	}

	id := newID()
	if _, err := db.ExecContext(ctx,
		`INSERT INTO suppliers (id, name) VALUES (?, ?)`, id, name,
	); err != nil {
		return nil, fmt.Errorf("creating supplier: %w", err)
	}

	return GetSupplier(ctx, db, id)
}

// GetSupplier returns a supplier by ID, including soft-deleted ones.
func GetSupplier(ctx context.Context, db *sql.DB, id string) (*model.Supplier, error) {
	s := &model.Supplier{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, created_at, deleted_at FROM suppliers WHERE id = ?`, id,
	).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting supplier: %w", err)
	}
	return s, nil
}

// ListSuppliers returns all non-deleted suppliers by name.
func ListSuppliers(ctx context.Context, db *sql.DB) ([]model.Supplier, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, created_at, deleted_at
		 FROM suppliers WHERE deleted_at IS NULL ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []model.Supplier
	for rows.Next() {
		var s model.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

// RenameSupplier changes a supplier's name.
func RenameSupplier(ctx context.Context, db *sql.DB, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidf("supplier name required")
	}

	res, err := db.ExecContext(ctx,
		`UPDATE suppliers SET name = ? WHERE id = ? AND deleted_at IS NULL`, name, id,
	)
	if err != nil {
		return fmt.Errorf("renaming supplier: %w", err)
	}
	return affected(res, "renaming supplier")
}

// DeleteSupplier soft-deletes a supplier. Fails while active items still
// reference it.
func DeleteSupplier(ctx context.Context, db *sql.DB, id string) error {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE supplier_id = ? AND active = 1`, id,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking supplier items: %w", err)
	}
	if count > 0 {
		return invalidf("supplier still has %d active items", count)
	}

	res, err := db.ExecContext(ctx,
		`UPDATE suppliers SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`, id,
	)
	if err != nil {
		return fmt.Errorf("deleting supplier: %w", err)
	}
	return affected(res, "deleting supplier")
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/erazemk/zaloga/internal/model"
)

// CreateCategory creates a new category.
func CreateCategory(ctx context.Context, db *sql.DB, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("category name required")
	}

	id := newID()
	if _, err := db.ExecContext(ctx,
		`INSERT INTO categories (id, name) VALUES (?, ?)`, id, name,
	); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return GetCategory(ctx, db, id)
}

// GetCategory returns a category by ID, including soft-deleted ones.
func GetCategory(ctx context.Context, db *sql.DB, id string) (*model.Category, error) {
	c := &model.Category{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, created_at, deleted_at FROM categories WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return c, nil
}

// ListCategories returns all non-deleted categories by name.
func ListCategories(ctx context.Context, db *sql.DB) ([]model.Category, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, created_at, deleted_at
		 FROM categories WHERE deleted_at IS NULL ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// RenameCategory changes a category's name.
func RenameCategory(ctx context.Context, db *sql.DB, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidf("category name required")
	}

	res, err := db.ExecContext(ctx,
		`UPDATE categories SET name = ? WHERE id = ? AND deleted_at IS NULL`, name, id,
	)
	if err != nil {
		return fmt.Errorf("renaming category: %w", err)
	}
	return affected(res, "renaming category")
}

// DeleteCategory soft-deletes a category. Fails while active items still
// reference it.
func DeleteCategory(ctx context.Context, db *sql.DB, id string) error {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE category_id = ? AND active = 1`, id,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking category items: %w", err)
	}
	if count > 0 {
		return invalidf("category still has %d active items", count)
	}

	res, err := db.ExecContext(ctx,
		`UPDATE categories SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`, id,
	)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return affected(res, "deleting category")
}

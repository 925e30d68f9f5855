package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/erazemk/zaloga/internal/model"
)

const itemColumns = `i.id, i.name, i.unit, i.threshold, i.target_qty, i.note,
	i.supplier_id, i.category_id, i.active, i.image_mime, i.created_at, i.updated_at,
	COALESCE(s.name, ''), COALESCE(c.name, '')`

const itemJoins = `FROM items i
	LEFT JOIN suppliers s ON s.id = i.supplier_id
	LEFT JOIN categories c ON c.id = i.category_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*model.Item, error) {
	item := &model.Item{}
	var note, supplierID, categoryID, imageMime sql.NullString
	err := row.Scan(&item.ID, &item.Name, &item.Unit, &item.Threshold, &item.TargetQty, &note,
		&supplierID, &categoryID, &item.Active, &imageMime, &item.CreatedAt, &item.UpdatedAt,
		&item.SupplierName, &item.CategoryName)
	if err != nil {
		return nil, err
	}
	item.Note = note.String
	item.SupplierID = supplierID.String
	item.CategoryID = categoryID.String
	item.ImageMime = imageMime.String
	return item, nil
}

// normalizeItem trims the input and checks it against the item invariants.
// Supplier and category references must point at live rows.
func normalizeItem(ctx context.Context, q querier, in model.ItemInput) (model.ItemInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Unit = strings.TrimSpace(in.Unit)
	in.Note = strings.TrimSpace(in.Note)
	in.SupplierID = strings.TrimSpace(in.SupplierID)
	in.CategoryID = strings.TrimSpace(in.CategoryID)

	if in.Name == "" {
		return in, invalidf("name required")
	}
	if in.Threshold.IsNegative() {
		return in, invalidf("threshold must not be negative")
	}
	if in.TargetQty.Valid && in.TargetQty.Decimal.IsNegative() {
		return in, invalidf("target quantity must not be negative")
	}
	if model.CheckQuantity(in.Threshold) != nil {
		return in, invalidf("threshold out of range")
	}
	if in.TargetQty.Valid && model.CheckQuantity(in.TargetQty.Decimal) != nil {
		return in, invalidf("target quantity out of range")
	}

	if in.SupplierID != "" {
		if err := checkLive(ctx, q, "suppliers", "supplier", in.SupplierID); err != nil {
			return in, err
		}
	}
	if in.CategoryID != "" {
		if err := checkLive(ctx, q, "categories", "category", in.CategoryID); err != nil {
			return in, err
		}
	}
	return in, nil
}

func checkLive(ctx context.Context, q querier, table, what, id string) error {
	var n int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM `+table+` WHERE id = ? AND deleted_at IS NULL`, id,
	).Scan(&n)
	if err != nil {
		return fmt.Errorf("checking %s: %w", table, err)
	}
	if n == 0 {
		return invalidf("unknown %s %q", what, id)
	}
	return nil
}

// CreateItem creates a new active item.
func CreateItem(ctx context.Context, db *sql.DB, in model.ItemInput) (*model.Item, error) {
	in, err := normalizeItem(ctx, db, in)
	if err != nil {
		return nil, err
	}

	id := newID()
	_, err = db.ExecContext(ctx,
		`INSERT INTO items (id, name, unit, threshold, target_qty, note, supplier_id, category_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, in.Name, in.Unit, in.Threshold, in.TargetQty, nullString(in.Note),
		nullString(in.SupplierID), nullString(in.CategoryID),
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, active or not.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	item, err := scanItem(db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` `+itemJoins+` WHERE i.id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns items by name. Inactive items are included only when
// asked for.
func ListItems(ctx context.Context, db *sql.DB, includeInactive bool) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` ` + itemJoins
	if !includeInactive {
		query += ` WHERE i.active = 1`
	}
	query += ` ORDER BY i.name`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// UpdateItem replaces an item's editable fields.
func UpdateItem(ctx context.Context, db *sql.DB, id string, in model.ItemInput) error {
	in, err := normalizeItem(ctx, db, in)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx,
		`UPDATE items SET name = ?, unit = ?, threshold = ?, target_qty = ?, note = ?,
		        supplier_id = ?, category_id = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		in.Name, in.Unit, in.Threshold, in.TargetQty, nullString(in.Note),
		nullString(in.SupplierID), nullString(in.CategoryID), id,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return affected(res, "updating item")
}

// SetItemActive deactivates or reactivates an item. Items are never removed.
// Reactivation drops references to suppliers or categories deleted while the
// item was inactive, so the item falls back to the unspecified group.
func SetItemActive(ctx context.Context, db *sql.DB, id string, active bool) error {
	query := `UPDATE items SET active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if active {
		query = `UPDATE items SET active = 1,
		        supplier_id = CASE WHEN supplier_id IN
		            (SELECT id FROM suppliers WHERE deleted_at IS NULL) THEN supplier_id END,
		        category_id = CASE WHEN category_id IN
		            (SELECT id FROM categories WHERE deleted_at IS NULL) THEN category_id END,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`
	}

	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("setting item active: %w", err)
	}
	return affected(res, "setting item active")
}

// SetItemImage sets an item's photo.
func SetItemImage(ctx context.Context, db *sql.DB, id string, image []byte, mime string) error {
	res, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return affected(res, "setting item image")
}

// GetItemImage returns an item's photo and its MIME type. A missing item or
// photo yields nil data.
func GetItemImage(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/erazemk/zaloga/internal/model"
)

// CountEntry is one observed quantity for one item.
type CountEntry struct {
	ItemID string
	Qty    decimal.Decimal
	Note   string
}

// AddCount appends a stock count for an active item.
func AddCount(ctx context.Context, db *sql.DB, itemID string, qty decimal.Decimal, note string) (*model.StockCount, error) {
	id, err := insertCount(ctx, db, CountEntry{ItemID: itemID, Qty: qty, Note: note})
	if err != nil {
		return nil, err
	}
	return GetCount(ctx, db, id)
}

// AddCounts appends several counts in one transaction. Either all are
// recorded or none are.
func AddCounts(ctx context.Context, db *sql.DB, entries []CountEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, e := range entries {
		if _, err := insertCount(ctx, tx, e); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing counts: %w", err)
	}
	return len(entries), nil
}

func insertCount(ctx context.Context, q querier, e CountEntry) (int64, error) {
	if e.Qty.IsNegative() {
		return 0, invalidf("quantity must not be negative")
	}
	if model.CheckQuantity(e.Qty) != nil {
		return 0, invalidf("quantity out of range")
	}

	var active bool
	err := q.QueryRowContext(ctx,
		`SELECT active FROM items WHERE id = ?`, e.ItemID,
	).Scan(&active)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("item %q: %w", e.ItemID, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("checking item: %w", err)
	}
	if !active {
		return 0, invalidf("item is inactive")
	}

	result, err := q.ExecContext(ctx,
		`INSERT INTO stock_counts (item_id, qty, note) VALUES (?, ?, ?)`,
		e.ItemID, e.Qty, nullString(strings.TrimSpace(e.Note)),
	)
	if err != nil {
		return 0, fmt.Errorf("recording count: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting count id: %w", err)
	}
	return id, nil
}

// GetCount returns a stock count by ID.
func GetCount(ctx context.Context, db *sql.DB, id int64) (*model.StockCount, error) {
	c := &model.StockCount{}
	var note sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, item_id, qty, note, counted_at FROM stock_counts WHERE id = ?`, id,
	).Scan(&c.ID, &c.ItemID, &c.Qty, &note, &c.CountedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting count: %w", err)
	}
	c.Note = note.String
	return c, nil
}

// ListCounts returns an item's counts, newest first. A limit of zero or less
// returns all of them.
func ListCounts(ctx context.Context, db *sql.DB, itemID string, limit int) ([]model.StockCount, error) {
	query := `SELECT id, item_id, qty, note, counted_at
	          FROM stock_counts WHERE item_id = ?
	          ORDER BY counted_at DESC, id DESC`
	args := []any{itemID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing counts: %w", err)
	}
	defer rows.Close()

	var counts []model.StockCount
	for rows.Next() {
		var c model.StockCount
		var note sql.NullString
		if err := rows.Scan(&c.ID, &c.ItemID, &c.Qty, &note, &c.CountedAt); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		c.Note = note.String
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

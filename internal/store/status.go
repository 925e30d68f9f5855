package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/reorder"
)

// ListStatus returns every active item with its latest count, ordered by
// supplier, category and name with missing values first. The reorder flag
// and suggestion are computed here, never read from storage.
func ListStatus(ctx context.Context, db *sql.DB) ([]model.InventoryStatus, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT i.id, i.name, COALESCE(c.name, ''), COALESCE(s.id, ''), COALESCE(s.name, ''),
		        i.unit, i.threshold, i.target_qty, COALESCE(i.note, ''),
		        lc.qty, lc.counted_at
		 FROM items i
		 LEFT JOIN suppliers s ON s.id = i.supplier_id AND s.deleted_at IS NULL
		 LEFT JOIN categories c ON c.id = i.category_id AND c.deleted_at IS NULL
		 LEFT JOIN stock_counts lc ON lc.id = (
		     SELECT sc.id FROM stock_counts sc
		     WHERE sc.item_id = i.id
		     ORDER BY sc.counted_at DESC, sc.id DESC
		     LIMIT 1
		 )
		 WHERE i.active = 1
		 ORDER BY s.name, c.name, i.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing status: %w", err)
	}
	defer rows.Close()

	var status []model.InventoryStatus
	for rows.Next() {
		var st model.InventoryStatus
		if err := rows.Scan(&st.ItemID, &st.Name, &st.Category, &st.SupplierID, &st.Supplier,
			&st.Unit, &st.Threshold, &st.TargetQty, &st.Note,
			&st.CurrentQty, &st.LastCountedAt); err != nil {
			return nil, fmt.Errorf("scanning status: %w", err)
		}
		status = append(status, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing status: %w", err)
	}

	reorder.Apply(status)
	return status, nil
}

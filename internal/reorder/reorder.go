// Package reorder decides which items are short of stock and by how much.
package reorder

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/erazemk/zaloga/internal/model"
)

// NeedsReorder reports whether a counted quantity is strictly below the
// threshold. Items that were never counted are not flagged. Negative values
// are outside the domain and are never flagged either.
func NeedsReorder(current decimal.NullDecimal, threshold decimal.Decimal) bool {
	if !current.Valid {
		return false
	}
	if current.Decimal.IsNegative() || threshold.IsNegative() {
		return false
	}
	return current.Decimal.LessThan(threshold)
}

// Suggest returns how much to order for a flagged item: up to the target
// quantity when one is set above the current count, otherwise up to the
// threshold. Unflagged items get a null suggestion.
func Suggest(current decimal.NullDecimal, threshold decimal.Decimal, target decimal.NullDecimal) decimal.NullDecimal {
	if !NeedsReorder(current, threshold) {
		return decimal.NullDecimal{}
	}
	level := threshold
	if target.Valid && target.Decimal.GreaterThan(current.Decimal) {
		level = target.Decimal
	}
	return decimal.NewNullDecimal(level.Sub(current.Decimal))
}

// Apply recomputes the derived fields of every row in place.
func Apply(rows []model.InventoryStatus) {
	for i := range rows {
		r := &rows[i]
		r.NeedsReorder = NeedsReorder(r.CurrentQty, r.Threshold)
		r.SuggestedQty = Suggest(r.CurrentQty, r.Threshold, r.TargetQty)
	}
}

// Query narrows a status listing.
type Query struct {
	Search      string
	ReorderOnly bool
}

// Filter returns the rows matching q, keeping their order. The search text is
// matched case-insensitively against name, category and supplier.
func Filter(rows []model.InventoryStatus, q Query) []model.InventoryStatus {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]model.InventoryStatus, 0, len(rows))
	for _, r := range rows {
		if q.ReorderOnly && !r.NeedsReorder {
			continue
		}
		if needle != "" {
			hay := strings.ToLower(r.Name + " " + r.Category + " " + r.Supplier)
			if !strings.Contains(hay, needle) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

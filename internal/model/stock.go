package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockCount is an immutable observation of an item's quantity.
type StockCount struct {
	ID        int64           `json:"id"`
	ItemID    string          `json:"item_id"`
	Qty       decimal.Decimal `json:"qty"`
	Note      string          `json:"note,omitempty"`
	CountedAt time.Time       `json:"counted_at"`
}

// InventoryStatus is the derived status of one active item: its latest count
// compared against its threshold. It is rebuilt on every read.
type InventoryStatus struct {
	ItemID        string              `json:"item_id"`
	Name          string              `json:"name"`
	Category      string              `json:"category,omitempty"`
	SupplierID    string              `json:"supplier_id,omitempty"`
	Supplier      string              `json:"supplier,omitempty"`
	Unit          string              `json:"unit"`
	Threshold     decimal.Decimal     `json:"threshold"`
	TargetQty     decimal.NullDecimal `json:"target_qty"`
	Note          string              `json:"note,omitempty"`
	CurrentQty    decimal.NullDecimal `json:"current_qty"`
	LastCountedAt *time.Time          `json:"last_counted_at"`
	NeedsReorder  bool                `json:"needs_reorder"`
	SuggestedQty  decimal.NullDecimal `json:"suggested_qty"`
}

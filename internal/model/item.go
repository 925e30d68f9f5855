package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a stock-keeping unit with a reorder threshold.
type Item struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Unit       string              `json:"unit"`
	Threshold  decimal.Decimal     `json:"threshold"`
	TargetQty  decimal.NullDecimal `json:"target_qty"`
	Note       string              `json:"note,omitempty"`
	SupplierID string              `json:"supplier_id,omitempty"`
	CategoryID string              `json:"category_id,omitempty"`
	Active     bool                `json:"active"`
	ImageMime  string              `json:"image_mime,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`

	// Joined fields (not always populated).
	SupplierName string `json:"supplier_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}

// ItemInput carries the editable fields of an item.
type ItemInput struct {
	Name       string              `json:"name"`
	Unit       string              `json:"unit"`
	Threshold  decimal.Decimal     `json:"threshold"`
	TargetQty  decimal.NullDecimal `json:"target_qty"`
	Note       string              `json:"note"`
	SupplierID string              `json:"supplier_id"`
	CategoryID string              `json:"category_id"`
}

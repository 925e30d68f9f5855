package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/erazemk/zaloga/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustItem(t *testing.T, database *sql.DB, in model.ItemInput) *model.Item {
	t.Helper()
	item, err := CreateItem(context.Background(), database, in)
	if err != nil {
		t.Fatalf("CreateItem(%q): %v", in.Name, err)
	}
	return item
}

func mustCount(t *testing.T, database *sql.DB, itemID, qty string) {
	t.Helper()
	if _, err := AddCount(context.Background(), database, itemID, dec(qty), ""); err != nil {
		t.Fatalf("AddCount(%s, %s): %v", itemID, qty, err)
	}
}

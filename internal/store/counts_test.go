package store

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/erazemk/zaloga/internal/db"
	"github.com/erazemk/zaloga/internal/model"
)

func TestAddCountAndList(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item := mustItem(t, database, model.ItemInput{Name: "Milk", Unit: "L", Threshold: dec("10")})

	c, err := AddCount(ctx, database, item.ID, dec("4.5"), " morning shift ")
	if err != nil {
		t.Fatalf("AddCount: %v", err)
	}
	if !c.Qty.Equal(dec("4.5")) {
		t.Errorf("expected qty 4.5, got %s", c.Qty)
	}
	if c.Note != "morning shift" {
		t.Errorf("expected trimmed note, got %q", c.Note)
	}
	if c.CountedAt.IsZero() {
		t.Error("expected counted_at to be set")
	}

	mustCount(t, database, item.ID, "3")
	mustCount(t, database, item.ID, "7")

	counts, err := ListCounts(ctx, database, item.ID, 0)
	if err != nil {
		t.Fatalf("ListCounts: %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("expected 3 counts, got %d", len(counts))
	}
	if !counts[0].Qty.Equal(dec("7")) {
		t.Errorf("expected newest count first, got %s", counts[0].Qty)
	}

	limited, _ := ListCounts(ctx, database, item.ID, 2)
	if len(limited) != 2 {
		t.Errorf("expected 2 counts with limit, got %d", len(limited))
	}
}

func TestAddCountRejects(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item := mustItem(t, database, model.ItemInput{Name: "Milk", Unit: "L"})

	if _, err := AddCount(ctx, database, item.ID, dec("-1"), ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for negative qty, got %v", err)
	}
	if _, err := AddCount(ctx, database, item.ID, decimal.New(1, 20000000), ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for huge exponent, got %v", err)
	}
	if _, err := AddCount(ctx, database, item.ID, dec("0.0000001"), ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for excess precision, got %v", err)
	}
	if _, err := AddCount(ctx, database, "missing", dec("1"), ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown item, got %v", err)
	}

	SetItemActive(ctx, database, item.ID, false)
	if _, err := AddCount(ctx, database, item.ID, dec("1"), ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for inactive item, got %v", err)
	}

	counts, _ := ListCounts(ctx, database, item.ID, 0)
	if len(counts) != 0 {
		t.Errorf("expected no counts recorded, got %d", len(counts))
	}
}

func TestAddCountsAllOrNothing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	milk := mustItem(t, database, model.ItemInput{Name: "Milk", Unit: "L"})
	eggs := mustItem(t, database, model.ItemInput{Name: "Eggs", Unit: "dozen"})

	n, err := AddCounts(ctx, database, []CountEntry{
		{ItemID: milk.ID, Qty: dec("4")},
		{ItemID: eggs.ID, Qty: dec("6")},
	})
	if err != nil {
		t.Fatalf("AddCounts: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 counts recorded, got %d", n)
	}

	_, err = AddCounts(ctx, database, []CountEntry{
		{ItemID: milk.ID, Qty: dec("1")},
		{ItemID: eggs.ID, Qty: dec("-1")},
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	counts, _ := ListCounts(ctx, database, milk.ID, 0)
	if len(counts) != 1 {
		t.Errorf("expected failed batch to be rolled back, got %d milk counts", len(counts))
	}

	if n, err := AddCounts(ctx, database, nil); err != nil || n != 0 {
		t.Errorf("expected empty batch to be a no-op, got %d, %v", n, err)
	}
}

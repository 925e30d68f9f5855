package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/zaloga/internal/db"
	"github.com/erazemk/zaloga/internal/model"
)

func TestSupplierLifecycle(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateSupplier(ctx, database, "  "); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for empty name, got %v", err)
	}

	acme, err := CreateSupplier(ctx, database, "Acme")
	if err != nil {
		t.Fatalf("CreateSupplier: %v", err)
	}
	CreateSupplier(ctx, database, "Beta")

	if err := RenameSupplier(ctx, database, acme.ID, "Acme Foods"); err != nil {
		t.Fatalf("RenameSupplier: %v", err)
	}

	suppliers, _ := ListSuppliers(ctx, database)
	if len(suppliers) != 2 || suppliers[0].Name != "Acme Foods" {
		t.Fatalf("unexpected suppliers: %v", suppliers)
	}

	if err := DeleteSupplier(ctx, database, acme.ID); err != nil {
		t.Fatalf("DeleteSupplier: %v", err)
	}
	suppliers, _ = ListSuppliers(ctx, database)
	if len(suppliers) != 1 {
		t.Errorf("expected 1 supplier after delete, got %d", len(suppliers))
	}

	got, _ := GetSupplier(ctx, database, acme.ID)
	if got == nil || got.DeletedAt == nil {
		t.Error("expected soft-deleted supplier to remain fetchable")
	}

	if err := RenameSupplier(ctx, database, acme.ID, "Again"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound renaming deleted supplier, got %v", err)
	}
}

func TestDeleteSupplierInUse(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	acme, _ := CreateSupplier(ctx, database, "Acme")
	item := mustItem(t, database, model.ItemInput{Name: "Milk", Unit: "L", SupplierID: acme.ID})

	if err := DeleteSupplier(ctx, database, acme.ID); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid deleting referenced supplier, got %v", err)
	}

	SetItemActive(ctx, database, item.ID, false)
	if err := DeleteSupplier(ctx, database, acme.ID); err != nil {
		t.Errorf("expected delete to succeed once item is inactive, got %v", err)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	dairy, err := CreateCategory(ctx, database, "Dairy")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	mustItem(t, database, model.ItemInput{Name: "Milk", Unit: "L", CategoryID: dairy.ID})

	if err := DeleteCategory(ctx, database, dairy.ID); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid deleting referenced category, got %v", err)
	}

	if err := RenameCategory(ctx, database, dairy.ID, "Milk products"); err != nil {
		t.Fatalf("RenameCategory: %v", err)
	}
	categories, _ := ListCategories(ctx, database)
	if len(categories) != 1 || categories[0].Name != "Milk products" {
		t.Errorf("unexpected categories: %v", categories)
	}
}

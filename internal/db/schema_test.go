package db

import "testing"

func TestEnsureSchemaIdempotent(t *testing.T) {
	database := NewTestDB(t)

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}
}

func TestStockCountsAppendOnly(t *testing.T) {
	database := NewTestDB(t)

	if _, err := database.Exec(`INSERT INTO items (id, name, unit, threshold) VALUES ('i1', 'Milk', 'L', 10)`); err != nil {
		t.Fatalf("inserting item: %v", err)
	}
	if _, err := database.Exec(`INSERT INTO stock_counts (item_id, qty) VALUES ('i1', 4)`); err != nil {
		t.Fatalf("inserting count: %v", err)
	}

	if _, err := database.Exec(`UPDATE stock_counts SET qty = 5`); err == nil {
		t.Error("expected update of stock count to fail")
	}
	if _, err := database.Exec(`DELETE FROM stock_counts`); err == nil {
		t.Error("expected delete of stock count to fail")
	}
}

func TestNegativeThresholdRejected(t *testing.T) {
	database := NewTestDB(t)

	_, err := database.Exec(`INSERT INTO items (id, name, unit, threshold) VALUES ('i1', 'Milk', 'L', -1)`)
	if err == nil {
		t.Error("expected negative threshold to violate check constraint")
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	database := NewTestDB(t)

	_, err := database.Exec(`INSERT INTO stock_counts (item_id, qty) VALUES ('missing', 1)`)
	if err == nil {
		t.Error("expected foreign key violation")
	}
}

func TestOpenFile(t *testing.T) {
	database, _ := NewTestFileDB(t)

	var mode string
	if err := database.QueryRow(`PRAGMA journal_mode`).Scan(&mode); err != nil {
		t.Fatalf("reading journal mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("expected journal mode wal, got %q", mode)
	}
}

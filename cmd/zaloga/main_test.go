package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erazemk/zaloga/internal/config"
	"github.com/erazemk/zaloga/internal/db"
	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

func TestRunReport(t *testing.T) {
	database, path := db.NewTestFileDB(t)
	ctx := context.Background()
	acme, _ := store.CreateSupplier(ctx, database, "Acme")
	milk, err := store.CreateItem(ctx, database, model.ItemInput{
		Name: "Milk", Unit: "L", Threshold: decimal.NewFromInt(10), SupplierID: acme.ID,
	})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if _, err := store.AddCount(ctx, database, milk.ID, decimal.NewFromInt(4), ""); err != nil {
		t.Fatalf("add count: %v", err)
	}
	database.Close()

	cfg := config.Default()
	cfg.DBPath = path
	cfg.Location = time.UTC

	var out bytes.Buffer
	if err := runReport(&cfg, &out); err != nil {
		t.Fatalf("runReport: %v", err)
	}
	if !strings.Contains(out.String(), "■ Acme\n- Milk : current 4L / threshold 10L\n") {
		t.Errorf("unexpected report:\n%s", out.String())
	}
}

func TestRunReportMissingDatabase(t *testing.T) {
	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "missing.sqlite3")
	cfg.Location = time.UTC

	if err := runReport(&cfg, &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing database")
	}
}

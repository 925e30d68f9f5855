package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/reorder"
)

var fixedTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func row(name, supplierID, supplier, unit, threshold string, current string) model.InventoryStatus {
	r := model.InventoryStatus{
		ItemID:     name,
		Name:       name,
		SupplierID: supplierID,
		Supplier:   supplier,
		Unit:       unit,
		Threshold:  decimal.RequireFromString(threshold),
	}
	if current != "" {
		r.CurrentQty = decimal.NewNullDecimal(decimal.RequireFromString(current))
	}
	return r
}

func evaluated(rows ...model.InventoryStatus) []model.InventoryStatus {
	reorder.Apply(rows)
	return rows
}

func TestBuildMilkAndEggs(t *testing.T) {
	rows := evaluated(
		row("Milk", "s1", "Acme", "L", "10", "4"),
		row("Eggs", "s1", "Acme", "dozen", "5", "6"),
	)

	got := Build(rows, fixedTime, English)

	want := strings.Join([]string{
		"Reorder list (auto)",
		"Generated: 2026-03-14 09:30",
		"",
		"■ Acme",
		"- Milk : current 4L / threshold 10L",
		"",
	}, "\n")
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "Eggs")
}

func TestBuildKoreanLabels(t *testing.T) {
	rows := evaluated(row("우유", "s1", "Acme", "L", "10", "4"))

	got := Build(rows, fixedTime, Korean)

	assert.Contains(t, got, "발주 리스트 (자동)\n생성: 2026-03-14 09:30\n")
	assert.Contains(t, got, "- 우유 : 현재 4L / 기준 10L")
}

func TestBuildEmpty(t *testing.T) {
	rows := evaluated(
		row("Flour", "s1", "Acme", "kg", "3", ""),
		row("Sugar", "s1", "Acme", "kg", "3", "3"),
	)

	got := Build(rows, fixedTime, English)
	assert.Equal(t, "Reorder list (auto)\nGenerated: 2026-03-14 09:30\n", got)

	assert.Equal(t, got, Build(nil, fixedTime, English))
}

func TestBuildNeverCountedExcluded(t *testing.T) {
	rows := evaluated(
		row("Flour", "s1", "Acme", "kg", "3", ""),
		row("Milk", "s1", "Acme", "L", "10", "4"),
	)

	got := Build(rows, fixedTime, English)
	assert.NotContains(t, got, "Flour")
	assert.Contains(t, got, "Milk")
}

func TestBuildNoteSuffix(t *testing.T) {
	r := row("Milk", "s1", "Acme", "L", "10", "2.5")
	r.Note = "lactose free"
	rows := evaluated(r)

	got := Build(rows, fixedTime, English)
	assert.Contains(t, got, "- Milk : current 2.5L / threshold 10L (lactose free)")
}

func TestBuildUnspecifiedSupplier(t *testing.T) {
	rows := evaluated(
		row("Napkins", "", "", "pack", "2", "0"),
		row("Milk", "s1", "Acme", "L", "10", "4"),
		row("Straws", "", "", "box", "1", "0"),
	)

	got := Build(rows, fixedTime, English)

	want := strings.Join([]string{
		"Reorder list (auto)",
		"Generated: 2026-03-14 09:30",
		"",
		"■ unspecified",
		"- Napkins : current 0pack / threshold 2pack",
		"- Straws : current 0box / threshold 1box",
		"",
		"■ Acme",
		"- Milk : current 4L / threshold 10L",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestBuildIdempotent(t *testing.T) {
	rows := evaluated(
		row("Milk", "s1", "Acme", "L", "10", "4"),
		row("Beans", "s2", "Roastery", "kg", "5", "1"),
	)
	before := append([]model.InventoryStatus(nil), rows...)

	first := Build(rows, fixedTime, English)
	second := Build(rows, fixedTime, English)

	assert.Equal(t, first, second)
	assert.Equal(t, before, rows, "Build must not mutate its input")
}

func TestGroupCompletenessAndOrder(t *testing.T) {
	rows := evaluated(
		row("A", "s1", "Acme", "x", "5", "1"),
		row("B", "s2", "Beta", "x", "5", "1"),
		row("C", "s1", "Acme", "x", "5", "9"),
		row("D", "", "", "x", "5", "1"),
		row("E", "s2", "Beta", "x", "5", "0"),
		row("F", "s1", "Acme", "x", "5", "4.99"),
	)

	groups := Group(rows)
	require.Len(t, groups, 3)

	assert.Equal(t, "Acme", groups[0].Supplier)
	assert.Equal(t, "Beta", groups[1].Supplier)
	assert.True(t, groups[2].Unspecified())

	names := func(g SupplierGroup) []string {
		var out []string
		for _, r := range g.Rows {
			out = append(out, r.Name)
		}
		return out
	}
	assert.Equal(t, []string{"A", "F"}, names(groups[0]))
	assert.Equal(t, []string{"B", "E"}, names(groups[1]))
	assert.Equal(t, []string{"D"}, names(groups[2]))

	seen := map[string]int{}
	for _, g := range groups {
		for _, r := range g.Rows {
			seen[r.Name]++
		}
	}
	for _, r := range rows {
		if r.NeedsReorder {
			assert.Equal(t, 1, seen[r.Name], "flagged row %s", r.Name)
		} else {
			assert.Zero(t, seen[r.Name], "unflagged row %s", r.Name)
		}
	}
}

func TestGroupByIDNotName(t *testing.T) {
	rows := evaluated(
		row("A", "s1", "Acme", "x", "5", "1"),
		row("B", "s9", "Acme", "x", "5", "1"),
	)

	groups := Group(rows)
	require.Len(t, groups, 2)
	assert.Equal(t, "s1", groups[0].SupplierID)
	assert.Equal(t, "s9", groups[1].SupplierID)
}

func TestBuilderUsesClockAndLocation(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	b := &Builder{
		Labels:   English,
		Location: seoul,
		Now:      func() time.Time { return fixedTime },
	}

	got := b.Build(nil)
	assert.Equal(t, "Reorder list (auto)\nGenerated: 2026-03-14 18:30\n", got)
}

func TestNewBuilderDefaults(t *testing.T) {
	b := NewBuilder("ko", nil)
	assert.Equal(t, Korean, b.Labels)
	assert.Equal(t, time.Local, b.Location)

	assert.Equal(t, English, LabelsFor("fr"))
	assert.Equal(t, English, (&Builder{}).Labels.orDefault())
}

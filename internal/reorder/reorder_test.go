package reorder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/zaloga/internal/model"
)

func qty(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestNeedsReorder(t *testing.T) {
	tests := []struct {
		name      string
		current   decimal.NullDecimal
		threshold string
		expected  bool
	}{
		{"below threshold", qty("4"), "10", true},
		{"equal to threshold", qty("10"), "10", false},
		{"above threshold", qty("6"), "5", false},
		{"never counted", decimal.NullDecimal{}, "3", false},
		{"never counted zero threshold", decimal.NullDecimal{}, "0", false},
		{"zero threshold", qty("0"), "0", false},
		{"fractional below", qty("0.5"), "0.75", true},
		{"empty shelf", qty("0"), "1", true},
		{"negative quantity", qty("-1"), "5", false},
		{"negative threshold", qty("1"), "-5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeedsReorder(tt.current, decimal.RequireFromString(tt.threshold))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNeedsReorderMatchesStrictInequality(t *testing.T) {
	for ti := 0; ti <= 12; ti++ {
		threshold := decimal.New(int64(ti), 0)
		assert.False(t, NeedsReorder(decimal.NullDecimal{}, threshold), "null at threshold %d", ti)
		assert.False(t, NeedsReorder(decimal.NewNullDecimal(threshold), threshold), "equal at threshold %d", ti)
		for qi := 0; qi <= 12; qi++ {
			q := decimal.New(int64(qi), 0)
			assert.Equal(t, qi < ti, NeedsReorder(decimal.NewNullDecimal(q), threshold), "q=%d t=%d", qi, ti)
		}
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name      string
		current   decimal.NullDecimal
		threshold string
		target    decimal.NullDecimal
		want      string
	}{
		{"up to threshold", qty("4"), "10", decimal.NullDecimal{}, "6"},
		{"up to target", qty("4"), "10", qty("20"), "16"},
		{"target below current falls back", qty("4"), "10", qty("2"), "6"},
		{"fractional", qty("1.5"), "2", decimal.NullDecimal{}, "0.5"},
		{"not flagged", qty("12"), "10", qty("20"), ""},
		{"never counted", decimal.NullDecimal{}, "10", qty("20"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.current, decimal.RequireFromString(tt.threshold), tt.target)
			if tt.want == "" {
				assert.False(t, got.Valid)
				return
			}
			require.True(t, got.Valid)
			assert.Equal(t, tt.want, got.Decimal.String())
		})
	}
}

func TestApply(t *testing.T) {
	rows := []model.InventoryStatus{
		{Name: "Milk", Threshold: decimal.NewFromInt(10), CurrentQty: qty("4")},
		{Name: "Eggs", Threshold: decimal.NewFromInt(5), CurrentQty: qty("6"), NeedsReorder: true},
		{Name: "Flour", Threshold: decimal.NewFromInt(3)},
	}

	Apply(rows)

	assert.True(t, rows[0].NeedsReorder)
	assert.Equal(t, "6", rows[0].SuggestedQty.Decimal.String())
	assert.False(t, rows[1].NeedsReorder, "stale flag must be recomputed")
	assert.False(t, rows[2].NeedsReorder)
	assert.False(t, rows[2].SuggestedQty.Valid)
}

func TestFilter(t *testing.T) {
	rows := []model.InventoryStatus{
		{Name: "Milk", Category: "Dairy", Supplier: "Acme", NeedsReorder: true},
		{Name: "Eggs", Category: "Dairy", Supplier: "Acme"},
		{Name: "Napkins", Supplier: "PaperCo", NeedsReorder: true},
	}

	all := Filter(rows, Query{})
	assert.Len(t, all, 3)

	reorder := Filter(rows, Query{ReorderOnly: true})
	require.Len(t, reorder, 2)
	assert.Equal(t, "Milk", reorder[0].Name)
	assert.Equal(t, "Napkins", reorder[1].Name)

	dairy := Filter(rows, Query{Search: "  dAIRy "})
	require.Len(t, dairy, 2)
	assert.Equal(t, "Eggs", dairy[1].Name)

	both := Filter(rows, Query{Search: "paper", ReorderOnly: true})
	require.Len(t, both, 1)
	assert.Equal(t, "Napkins", both[0].Name)

	assert.Empty(t, Filter(rows, Query{Search: "nothing"}))
}

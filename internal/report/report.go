// Package report renders the plain-text reorder list, grouped by supplier.
package report

import (
	"strings"
	"time"

	"github.com/erazemk/zaloga/internal/model"
)

// TimeFormat is the layout of the generation timestamp line.
const TimeFormat = "2006-01-02 15:04"

// SupplierGroup is the flagged rows of one supplier, in input order.
type SupplierGroup struct {
	SupplierID string
	Supplier   string
	Rows       []model.InventoryStatus
}

// Unspecified reports whether the group collects rows without a supplier.
func (g SupplierGroup) Unspecified() bool {
	return g.SupplierID == "" && g.Supplier == ""
}

// Group keeps the rows flagged for reorder and partitions them by supplier.
// Groups appear in the order their supplier is first seen; rows keep their
// relative order within a group. Rows without a supplier share one group.
func Group(rows []model.InventoryStatus) []SupplierGroup {
	var groups []SupplierGroup
	index := make(map[string]int)

	for _, r := range rows {
		if !r.NeedsReorder {
			continue
		}
		key := r.SupplierID
		if key == "" && r.Supplier != "" {
			// Name without an id still groups by name.
			key = "name:" + r.Supplier
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, SupplierGroup{SupplierID: r.SupplierID, Supplier: r.Supplier})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}

// Build renders the report for rows as of generated. The output depends only
// on its arguments.
func Build(rows []model.InventoryStatus, generated time.Time, labels Labels) string {
	lines := []string{
		labels.Title,
		labels.Generated + ": " + generated.Format(TimeFormat),
		"",
	}

	for _, g := range Group(rows) {
		name := g.Supplier
		if name == "" {
			name = labels.Unspecified
		}
		lines = append(lines, "■ "+name)
		for _, r := range g.Rows {
			lines = append(lines, itemLine(r, labels))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func itemLine(r model.InventoryStatus, labels Labels) string {
	current := "0"
	if r.CurrentQty.Valid {
		current = r.CurrentQty.Decimal.String()
	}

	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(r.Name)
	b.WriteString(" : ")
	b.WriteString(labels.Current + " " + current + r.Unit)
	b.WriteString(" / ")
	b.WriteString(labels.Threshold + " " + r.Threshold.String() + r.Unit)
	if r.Note != "" {
		b.WriteString(" (" + r.Note + ")")
	}
	return b.String()
}

// Builder renders reports against a clock and a display location.
type Builder struct {
	Labels   Labels
	Location *time.Location
	Now      func() time.Time
}

// NewBuilder returns a Builder for lang in loc using the wall clock.
func NewBuilder(lang string, loc *time.Location) *Builder {
	if loc == nil {
		loc = time.Local
	}
	return &Builder{Labels: LabelsFor(lang), Location: loc, Now: time.Now}
}

// Build renders rows with the builder's current time.
func (b *Builder) Build(rows []model.InventoryStatus) string {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	loc := b.Location
	if loc == nil {
		loc = time.Local
	}
	return Build(rows, now().In(loc), b.Labels.orDefault())
}

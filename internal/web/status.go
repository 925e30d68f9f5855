package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/reorder"
	"github.com/erazemk/zaloga/internal/store"
)

type statusView struct {
	PageData
	Rows        []model.InventoryStatus
	Search      string
	ReorderOnly bool
	Flagged     int
}

// StatusPage handles GET /.
func (s *Server) StatusPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.renderStatus(w, r, http.StatusOK, reorder.Query{
		Search:      q.Get("q"),
		ReorderOnly: q.Get("reorder") == "1",
	}, PageData{Success: flash(r)})
}

// renderStatus loads the status rows fresh. A read failure shows the error
// and an empty table rather than anything stale.
func (s *Server) renderStatus(w http.ResponseWriter, r *http.Request, status int, q reorder.Query, page PageData) {
	page.Title = "Stock"
	page.Nav = "status"

	view := &statusView{Search: q.Search, ReorderOnly: q.ReorderOnly}

	rows, err := store.ListStatus(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list status", "error", err)
		page.Error = "Could not load stock levels: " + err.Error()
		page.Success = ""
		status = http.StatusInternalServerError
		rows = nil
	}
	for _, row := range rows {
		if row.NeedsReorder {
			view.Flagged++
		}
	}
	view.Rows = reorder.Filter(rows, q)
	view.PageData = page

	s.Templates.RenderStatus(w, status, "status.html", view)
}

// CountSubmit handles POST /counts from a status table row.
func (s *Server) CountSubmit(w http.ResponseWriter, r *http.Request) {
	q := reorder.Query{
		Search:      r.FormValue("q"),
		ReorderOnly: r.FormValue("reorder") == "1",
	}
	itemID := r.FormValue("item_id")

	qty, err := parseQty(r.FormValue("qty"))
	if err != nil {
		s.renderStatus(w, r, http.StatusBadRequest, q, PageData{Error: "Count not saved: " + err.Error()})
		return
	}

	count, err := store.AddCount(r.Context(), s.DB, itemID, qty, r.FormValue("note"))
	if err != nil {
		status, msg := storeFailure(err)
		if status == http.StatusInternalServerError {
			slog.Error("failed to record count", "error", err)
		}
		s.renderStatus(w, r, status, q, PageData{Error: "Count not saved: " + msg})
		return
	}

	slog.Info("count recorded", "item_id", count.ItemID, "qty", count.Qty.String())
	redirect(w, r, "/", statusQuery(q.Search, q.ReorderOnly), "count")
}

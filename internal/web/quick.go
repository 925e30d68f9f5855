package web

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

type quickView struct {
	PageData
	Rows   []model.InventoryStatus
	Values map[string]string
	Note   string
}

// QuickPage handles GET /quick.
func (s *Server) QuickPage(w http.ResponseWriter, r *http.Request) {
	s.renderQuick(w, r, http.StatusOK, nil, "", PageData{Success: flash(r)})
}

func (s *Server) renderQuick(w http.ResponseWriter, r *http.Request, status int, values map[string]string, note string, page PageData) {
	page.Title = "Quick count"
	page.Nav = "quick"

	rows, err := store.ListStatus(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list status", "error", err)
		page.Error = "Could not load items: " + err.Error()
		page.Success = ""
		status = http.StatusInternalServerError
		rows = nil
	}
	if values == nil {
		values = map[string]string{}
	}

	s.Templates.RenderStatus(w, status, "quick.html", &quickView{
		PageData: page,
		Rows:     rows,
		Values:   values,
		Note:     note,
	})
}

// QuickSubmit handles POST /quick. Blank fields are skipped; one bad value
// rejects the whole form.
func (s *Server) QuickSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	note := r.PostForm.Get("note")

	values := map[string]string{}
	var entries []store.CountEntry
	var problems []string

	for key, vals := range r.PostForm {
		id, ok := strings.CutPrefix(key, "qty_")
		if !ok || len(vals) == 0 || strings.TrimSpace(vals[0]) == "" {
			continue
		}
		values[id] = vals[0]

		qty, err := parseQty(vals[0])
		if err != nil {
			problems = append(problems, r.PostForm.Get("name_"+id)+": "+err.Error())
			continue
		}
		entries = append(entries, store.CountEntry{ItemID: id, Qty: qty, Note: note})
	}

	if len(problems) > 0 {
		slices.Sort(problems)
		s.renderQuick(w, r, http.StatusBadRequest, values, note, PageData{
			Error: "Nothing saved. " + strings.Join(problems, "; "),
		})
		return
	}
	if len(entries) == 0 {
		s.renderQuick(w, r, http.StatusBadRequest, values, note, PageData{Error: "Enter at least one quantity."})
		return
	}

	n, err := store.AddCounts(r.Context(), s.DB, entries)
	if err != nil {
		status, msg := storeFailure(err)
		if status == http.StatusInternalServerError {
			slog.Error("failed to record counts", "error", err)
		}
		s.renderQuick(w, r, status, values, note, PageData{Error: "Nothing saved. " + msg})
		return
	}

	slog.Info("counts recorded", "count", n)
	redirect(w, r, "/quick", "", "counts")
}

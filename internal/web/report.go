package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/zaloga/internal/share"
	"github.com/erazemk/zaloga/internal/store"
)

type reportView struct {
	PageData
	Text string
	Lang string
}

// ReportPage handles GET /report.
func (s *Server) ReportPage(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = s.Lang
	}
	view := &reportView{PageData: PageData{Title: "Reorder list", Nav: "report"}, Lang: lang}
	status := http.StatusOK

	rows, err := store.ListStatus(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list status", "error", err)
		view.Error = "Could not load stock levels: " + err.Error()
		status = http.StatusInternalServerError
	} else {
		view.Text = s.builder(lang).Build(rows)
	}

	s.Templates.RenderStatus(w, status, "report.html", view)
}

// SharePage handles GET /share/{token}. It serves the live report as plain
// text to anyone holding a valid link.
func (s *Server) SharePage(w http.ResponseWriter, r *http.Request) {
	claims, err := share.Verify(s.ShareSecret, r.PathValue("token"))
	if err != nil {
		if !errors.Is(err, share.ErrInvalidToken) {
			slog.Error("failed to verify share token", "error", err)
		}
		http.NotFound(w, r)
		return
	}

	rows, err := store.ListStatus(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list status", "error", err)
		http.Error(w, "could not load stock levels", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write([]byte(s.builder(claims.Lang).Build(rows)))
}

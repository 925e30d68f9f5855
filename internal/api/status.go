package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/erazemk/zaloga/internal/reorder"
	"github.com/erazemk/zaloga/internal/report"
	"github.com/erazemk/zaloga/internal/share"
	"github.com/erazemk/zaloga/internal/store"
)

// StatusHandler serves the derived inventory status and the reorder report.
type StatusHandler struct {
	DB          *sql.DB
	Lang        string
	Location    *time.Location
	BaseURL     string
	ShareSecret string
	ShareTTL    time.Duration

	// Now overrides the clock in tests.
	Now func() time.Time
}

func (h *StatusHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *StatusHandler) lang(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return h.Lang
}

// Status handles GET /api/status.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	rows, err := store.ListStatus(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list status", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list status")
		return
	}

	q := r.URL.Query()
	rows = reorder.Filter(rows, reorder.Query{
		Search:      q.Get("q"),
		ReorderOnly: q.Get("reorder") == "1",
	})
	jsonResponse(w, http.StatusOK, rows)
}

// Report handles GET /api/report.
func (h *StatusHandler) Report(w http.ResponseWriter, r *http.Request) {
	rows, err := store.ListStatus(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list status", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	b := report.NewBuilder(h.lang(r), h.Location)
	b.Now = h.now
	textResponse(w, http.StatusOK, b.Build(rows))
}

// Share handles POST /api/report/share.
func (h *StatusHandler) Share(w http.ResponseWriter, r *http.Request) {
	link, err := share.NewToken(h.ShareSecret, h.lang(r), h.ShareTTL, h.now())
	if err != nil {
		slog.Error("failed to create share link", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create share link")
		return
	}

	slog.Info("share link created", "expires_at", link.ExpiresAt)
	jsonResponse(w, http.StatusCreated, map[string]any{
		"url":        h.baseURL(r) + "/share/" + link.Token,
		"expires_at": link.ExpiresAt,
	})
}

// baseURL is the configured public URL, or one derived from the request.
func (h *StatusHandler) baseURL(r *http.Request) string {
	if h.BaseURL != "" {
		return h.BaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

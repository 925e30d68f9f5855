package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/zaloga/internal/config"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, cfg *config.Config, shareSecret string) http.Handler {
	mux := http.NewServeMux()

	statusHandler := &StatusHandler{
		DB:          db,
		Lang:        cfg.Lang,
		Location:    cfg.Location,
		BaseURL:     cfg.BaseURL,
		ShareSecret: shareSecret,
		ShareTTL:    cfg.ShareTTL,
	}
	countsHandler := &CountsHandler{DB: db}
	itemsHandler := &ItemsHandler{DB: db}
	suppliersHandler := &SuppliersHandler{DB: db}
	categoriesHandler := &CategoriesHandler{DB: db}

	// Status and report.
	mux.HandleFunc("GET /api/status", statusHandler.Status)
	mux.HandleFunc("GET /api/report", statusHandler.Report)
	mux.HandleFunc("POST /api/report/share", statusHandler.Share)

	// Counts are append-only.
	mux.HandleFunc("POST /api/counts", countsHandler.Create)

	// Items are deactivated, never deleted.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PUT /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("POST /api/items/{id}/deactivate", itemsHandler.Deactivate)
	mux.HandleFunc("POST /api/items/{id}/activate", itemsHandler.Activate)
	mux.HandleFunc("PUT /api/items/{id}/image", itemsHandler.UploadImage)
	mux.HandleFunc("GET /api/items/{id}/image", itemsHandler.GetImage)
	mux.HandleFunc("GET /api/items/{id}/counts", itemsHandler.Counts)

	mux.HandleFunc("GET /api/suppliers", suppliersHandler.List)
	mux.HandleFunc("POST /api/suppliers", suppliersHandler.Create)
	mux.HandleFunc("PUT /api/suppliers/{id}", suppliersHandler.Rename)
	mux.HandleFunc("DELETE /api/suppliers/{id}", suppliersHandler.Delete)

	mux.HandleFunc("GET /api/categories", categoriesHandler.List)
	mux.HandleFunc("POST /api/categories", categoriesHandler.Create)
	mux.HandleFunc("PUT /api/categories/{id}", categoriesHandler.Rename)
	mux.HandleFunc("DELETE /api/categories/{id}", categoriesHandler.Delete)

	return mux
}

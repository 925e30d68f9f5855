package web

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/zaloga/internal/config"
	webembed "github.com/erazemk/zaloga/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, shareSecret string) (http.Handler, error) {
	templates, err := LoadTemplates(cfg.Location, cfg.Lang)
	if err != nil {
		return nil, err
	}
	static, err := webembed.StaticFS()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:          db,
		Templates:   templates,
		Lang:        cfg.Lang,
		Location:    cfg.Location,
		ShareSecret: shareSecret,
	}

	return s.routes(static), nil
}

func (s *Server) routes(static http.FileSystem) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(static)))
	mux.Handle("GET /manifest.json", ManifestHandler(static))

	mux.HandleFunc("GET /{$}", s.StatusPage)
	mux.HandleFunc("POST /counts", s.CountSubmit)

	mux.HandleFunc("GET /quick", s.QuickPage)
	mux.HandleFunc("POST /quick", s.QuickSubmit)

	mux.HandleFunc("GET /manage", s.ManagePage)
	mux.HandleFunc("POST /manage/items", s.ItemCreateSubmit)
	mux.HandleFunc("POST /manage/suppliers", s.SupplierCreateSubmit)
	mux.HandleFunc("POST /manage/suppliers/{id}", s.SupplierRenameSubmit)
	mux.HandleFunc("POST /manage/suppliers/{id}/delete", s.SupplierDeleteSubmit)
	mux.HandleFunc("POST /manage/categories", s.CategoryCreateSubmit)
	mux.HandleFunc("POST /manage/categories/{id}", s.CategoryRenameSubmit)
	mux.HandleFunc("POST /manage/categories/{id}/delete", s.CategoryDeleteSubmit)

	mux.HandleFunc("GET /items/{id}", s.ItemDetailPage)
	mux.HandleFunc("POST /items/{id}", s.ItemUpdateSubmit)
	mux.HandleFunc("POST /items/{id}/counts", s.ItemCountSubmit)
	mux.HandleFunc("POST /items/{id}/image", s.ItemImageSubmit)
	mux.HandleFunc("GET /items/{id}/image", s.ItemImageGet)
	mux.HandleFunc("POST /items/{id}/deactivate", s.ItemDeactivateSubmit)
	mux.HandleFunc("POST /items/{id}/activate", s.ItemActivateSubmit)

	mux.HandleFunc("GET /report", s.ReportPage)
	mux.HandleFunc("GET /share/{token}", s.SharePage)

	return HeadersMiddleware(mux)
}

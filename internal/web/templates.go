package web

import (
	"database/sql"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erazemk/zaloga/internal/report"
	webembed "github.com/erazemk/zaloga/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map. Times are shown in loc and
// pages declare the language tag for lang.
func FuncMap(loc *time.Location, lang string) template.FuncMap {
	if loc == nil {
		loc = time.Local
	}
	tag := report.LabelsFor(lang).Tag
	return template.FuncMap{
		"lang": func() string { return tag },
		"qty": func(d decimal.NullDecimal) string {
			if !d.Valid {
				return "-"
			}
			return d.Decimal.String()
		},
		"optQty": func(d decimal.NullDecimal) string {
			if !d.Valid {
				return ""
			}
			return d.Decimal.String()
		},
		"when": func(t *time.Time) string {
			if t == nil {
				return "never"
			}
			return t.In(loc).Format(report.TimeFormat)
		},
		"at": func(t time.Time) string {
			return t.In(loc).Format(report.TimeFormat)
		},
	}
}

var pages = []string{
	"status.html",
	"quick.html",
	"manage.html",
	"item_detail.html",
	"report.html",
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates(loc *time.Location, lang string) (*Templates, error) {
	tfs, err := webembed.TemplatesFS()
	if err != nil {
		return nil, err
	}

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap(loc, lang))
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with status 200.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	ts.RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus renders a template with the given status code.
func (ts *Templates) RenderStatus(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title   string
	Nav     string
	Error   string
	Success string
}

// Server holds all dependencies for page handlers.
type Server struct {
	DB          *sql.DB
	Templates   *Templates
	Lang        string
	Location    *time.Location
	ShareSecret string

	// Now overrides the report clock in tests.
	Now func() time.Time
}

func (s *Server) builder(lang string) *report.Builder {
	if lang == "" {
		lang = s.Lang
	}
	b := report.NewBuilder(lang, s.Location)
	if s.Now != nil {
		b.Now = s.Now
	}
	return b
}

var flashes = map[string]string{
	"count":    "Count recorded.",
	"counts":   "Counts recorded.",
	"item":     "Item saved.",
	"photo":    "Photo uploaded.",
	"active":   "Item status changed.",
	"supplier": "Supplier saved.",
	"category": "Category saved.",
	"deleted":  "Deleted.",
}

// flash turns the ok query parameter of a post-redirect-get into a message.
func flash(r *http.Request) string {
	return flashes[r.URL.Query().Get("ok")]
}

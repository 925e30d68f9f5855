package web

import (
	"io"
	"log/slog"
	"net/http"
)

// ManifestHandler serves the web app manifest from the static assets at the
// site root, where browsers expect to find it.
func ManifestHandler(static http.FileSystem) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, err := static.Open("manifest.json")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			slog.Error("failed to read manifest", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/manifest+json")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(data)
	})
}

// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

//go:embed static templates
var content embed.FS

// StaticFS returns the static assets for serving under /static/.
func StaticFS() (http.FileSystem, error) {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-filesystem: %w", err)
	}
	return http.FS(sub), nil
}

// TemplatesFS returns the templates file system.
func TemplatesFS() (fs.FS, error) {
	sub, err := fs.Sub(content, "templates")
	if err != nil {
		return nil, fmt.Errorf("creating templates sub-filesystem: %w", err)
	}
	return sub, nil
}

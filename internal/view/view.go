package view

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/bookshelf/bookshelf-api/pkg/logger"
)

//go:embed templates/*.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "templates/*.html"))

// Render writes the named page. Pages are static shells; the browser scripts
// call the JSON endpoints.
func Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("Failed to render page", "page", name, "error", err)
	}
}

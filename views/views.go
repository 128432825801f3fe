// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/book-tracker/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names
const (
	PageIndex = "index"
	PageNew   = "new"
	PageShow  = "show"
	PageEdit  = "edit"
)

var pages = []string{PageIndex, PageNew, PageShow, PageEdit}

// IndexData is the context for the index page
type IndexData struct {
	Books []models.Book
}

// BookData is the context for the new, show and edit pages.
// Book is nil on the new page and on show when no book matched.
type BookData struct {
	Book *models.Book
}

// Renderer executes the embedded page templates
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"ago": func(t time.Time) string {
		return humanize.Time(t)
	},
	"count": func(n int) string {
		return humanize.Comma(int64(n))
	},
}

// New parses every page together with the shared layout
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}

	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// Render writes the named page with the given status.
// The page is fully rendered before anything is written, so a template
// failure produces a 500 rather than a truncated document.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.pages[name]
	if !ok {
		slog.Error("unknown template", "name", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("failed to render template", "name", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "name", name, "error", err)
	}
}

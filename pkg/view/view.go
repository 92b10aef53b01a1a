// Package view renders HTML templates. Templates are pure presentation:
// they receive plain data maps (entities, the current user, pending flash
// messages) and perform no business logic.
package view

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/josbet/floreria/pkg/logger"
)

// Data is the payload handed to a template.
type Data map[string]interface{}

// Renderer holds the parsed template set.
type Renderer struct {
	tmpl *template.Template
}

var funcs = template.FuncMap{
	// deref unwraps optional numeric fields (e.g. a product's price).
	"deref": func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f
	},
}

// New parses every .html template in fsys.
func New(fsys fs.FS) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the named template to w with status 200.
func (r *Renderer) Render(w http.ResponseWriter, name string, data Data) {
	r.RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus writes the named template with an explicit status code.
func (r *Renderer) RenderStatus(w http.ResponseWriter, status int, name string, data Data) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		// Headers are already sent; all we can do is log.
		logger.Error("view: render failed", "template", name, "error", err)
	}
}

// Package render turns page data into full HTML payloads. Pages render
// to bytes so the index handler can cache the exact payload it serves.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

var pageNames = []string{
	"index",
	"group",
	"profile",
	"post_detail",
	"post_form",
	"follow",
	"login",
	"signup",
	"not_found",
}

var funcs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("02 Jan 2006, 15:04")
	},
}

type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page against the shared layout at startup, so a
// broken template fails the process instead of a request.
func New() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("base.layout.html").Funcs(funcs).ParseFS(
			files,
			"templates/base.layout.html",
			"templates/post_list.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the named page and returns the payload.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

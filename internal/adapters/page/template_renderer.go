// Package page renders the program display tree as HTML pages.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"programviewer/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	ProgramPage = "program.html"
	PrintPage   = "print.html"
)

// Data is the view model shared by the program pages.
type Data struct {
	Title    string
	View     domain.ProgramView
	Options  domain.FilterOptions
	Criteria domain.FilterCriteria
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"wildcard": func() string { return domain.Wildcard },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named page into w. Output is buffered so a template
// error never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, name string, data Data) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

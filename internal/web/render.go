// Package web is the HTML presentation layer: it renders stored Markdown
// as pages with syntax-highlighted code blocks and exposes the export and
// prompt actions of the JSON API as UI buttons.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets/*.css
var assetFS embed.FS

// Renderer converts Markdown to HTML and executes the page templates.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewRenderer builds the Markdown converter and parses the embedded
// templates.
func NewRenderer() (*Renderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithLineNumbers(false),
				),
			),
		),
	)

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return &Renderer{md: md, tmpl: tmpl}, nil
}

// HTML converts raw Markdown to rendered HTML.
func (r *Renderer) HTML(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("error rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

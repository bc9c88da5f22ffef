// Package render turns a resolved script and a pagination plan into the
// HTML document the headless browser prints.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/yuin/goldmark"

	"github.com/alnah/go-scriptpdf/internal/assets"
	"github.com/alnah/go-scriptpdf/internal/layout"
	"github.com/alnah/go-scriptpdf/internal/script"
)

// Sentinel errors for rendering.
var (
	ErrTemplate = errors.New("sheet template error")
	ErrMarkdown = errors.New("markdown conversion failed")
)

// documentTemplate is the name the document skeleton is parsed under.
const documentTemplate = "document"

// Document is everything a render needs.
type Document struct {
	Script *script.Resolved
	Plan   layout.Plan
	Style  Style
}

// Renderer executes a template set. It is safe for concurrent use.
type Renderer struct {
	tmpl   *template.Template
	md     goldmark.Markdown
	logger *slog.Logger
}

// New parses the templates of set. A nil logger discards.
func New(set *assets.TemplateSet, logger *slog.Logger) (*Renderer, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: no template set", ErrTemplate)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tmpl, err := template.New(documentTemplate).
		Funcs(template.FuncMap{"bind": bind}).
		Parse(set.Document)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s document: %v", ErrTemplate, set.Name, err)
	}
	if _, err := tmpl.New("sheets").Parse(set.Sheets); err != nil {
		return nil, fmt.Errorf("%w: parsing %s sheets: %v", ErrTemplate, set.Name, err)
	}

	return &Renderer{tmpl: tmpl, md: newMarkdown(), logger: logger}, nil
}

// Render produces the HTML document for doc.
func (r *Renderer) Render(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if doc.Script == nil {
		return "", fmt.Errorf("%w: no script", ErrTemplate)
	}

	v, err := buildView(doc, r.md, r.logger)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, documentTemplate, v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return buf.String(), nil
}

// Package render paints fetch results and the feed menu into a Page using embedded html templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedreader/pkg/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	templateEntry    = "entry.html"
	templateMenuItem = "feed-list-item.html"
)

// Renderer renders feeds into a page. Templates are compiled on first use and reused afterwards.
type Renderer struct {
	page *Page

	once sync.Once
	tmpl *template.Template
	err  error
}

// NewRenderer makes a renderer writing into the given page
func NewRenderer(page *Page) *Renderer {
	return &Renderer{page: page}
}

// Render paints a fetch result. A failed result leaves the page untouched and nothing is reported
// to the user, only a debug line is logged.
func (r *Renderer) Render(res domain.Result) {
	if res.Failed() {
		lgr.Printf("[DEBUG] nothing to render, %v", res.Err)
		return
	}

	tmpl, err := r.templates()
	if err != nil {
		lgr.Printf("[ERROR] can't render feed %q, %v", res.Feed.Title, err)
		return
	}

	// all fragments are built before the page is touched, a broken entry keeps the old content
	entries := make([]template.HTML, 0, len(res.Feed.Entries))
	for i := range res.Feed.Entries {
		html, err := execute(tmpl, templateEntry, res.Feed.Entries[i])
		if err != nil {
			lgr.Printf("[ERROR] can't render entry %q of %q, %v", res.Feed.Entries[i].Title, res.Feed.Title, err)
			return
		}
		entries = append(entries, html)
	}

	r.page.setFeed(res.Feed.Title, entries)
	lgr.Printf("[DEBUG] rendered %q, %d entries", res.Feed.Title, len(entries))
}

// RenderMenu fills the page feed list, one item per source
func (r *Renderer) RenderMenu(sources []domain.Source) error {
	tmpl, err := r.templates()
	if err != nil {
		return err
	}

	items := make([]template.HTML, 0, len(sources))
	for _, src := range sources {
		html, err := execute(tmpl, templateMenuItem, src)
		if err != nil {
			return fmt.Errorf("render menu item %q: %w", src.Name, err)
		}
		items = append(items, html)
	}
	r.page.setMenu(items)
	return nil
}

func (r *Renderer) templates() (*template.Template, error) {
	r.once.Do(func() {
		r.tmpl, r.err = template.ParseFS(templatesFS, "templates/*.html")
		if r.err != nil {
			r.err = fmt.Errorf("parse templates: %w", r.err)
		}
	})
	return r.tmpl, r.err
}

func execute(tmpl *template.Template, name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template, already escaped
}

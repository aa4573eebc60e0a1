package render

import (
	"html/template"
	"sync"
)

// Page is the server-side document the reader paints into.
// All mutations go through its lock, the same way a browser serializes DOM updates.
type Page struct {
	mu      sync.RWMutex
	title   string
	entries []template.HTML
	menu    []template.HTML
}

// Snapshot is a point-in-time copy of the page content
type Snapshot struct {
	Title     string
	Entries   []template.HTML
	MenuItems []template.HTML
}

// NewPage makes an empty page
func NewPage() *Page {
	return &Page{}
}

// Snapshot returns a copy of the current page content
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	res := Snapshot{
		Title:     p.title,
		Entries:   make([]template.HTML, len(p.entries)),
		MenuItems: make([]template.HTML, len(p.menu)),
	}
	copy(res.Entries, p.entries)
	copy(res.MenuItems, p.menu)
	return res
}

// setFeed replaces title and all entries at once
func (p *Page) setFeed(title string, entries []template.HTML) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = title
	p.entries = entries
}

func (p *Page) setMenu(items []template.HTML) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.menu = items
}

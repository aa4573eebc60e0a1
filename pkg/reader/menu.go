package reader

import (
	"context"
	"sync"
)

// Menu holds feed menu visibility. It starts hidden.
type Menu struct {
	loader  *Controller
	mu      sync.Mutex
	visible bool
}

// NewMenu makes a hidden menu loading selected feeds with the controller
func NewMenu(loader *Controller) *Menu {
	return &Menu{loader: loader}
}

// Visible reports whether the menu is shown
func (m *Menu) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

// Toggle flips visibility and returns the new state
func (m *Menu) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = !m.visible
	return m.visible
}

// Select hides the menu, whatever its state, and loads the feed at idx
func (m *Menu) Select(ctx context.Context, idx int) <-chan struct{} {
	m.mu.Lock()
	m.visible = false
	m.mu.Unlock()
	return m.loader.LoadFeed(ctx, idx)
}

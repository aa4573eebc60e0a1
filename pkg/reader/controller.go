// Package reader implements feed selection: loading a feed by its menu index and the menu visibility state.
package reader

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedreader/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer
//go:generate moq -out mocks/sources.go -pkg mocks -skip-ensure -fmt goimports . Sources

// Fetcher retrieves a parsed feed. Failures are reported through the result, never as a panic.
type Fetcher interface {
	Fetch(ctx context.Context, url string) domain.Result
}

// Renderer paints a fetch result
type Renderer interface {
	Render(res domain.Result)
}

// Sources resolves feed sources by index
type Sources interface {
	Get(idx int) (domain.Source, bool)
	Len() int
}

// Controller loads feeds selected by index and hands results to the renderer
type Controller struct {
	sources  Sources
	fetcher  Fetcher
	renderer Renderer
}

// NewController makes a controller
func NewController(sources Sources, fetcher Fetcher, renderer Renderer) *Controller {
	return &Controller{sources: sources, fetcher: fetcher, renderer: renderer}
}

// LoadFeed fetches the feed at idx in background and renders the result, successful or not.
// The returned channel is closed once rendering was attempted. Calls are independent: there is no
// de-duplication, and cancelling ctx doesn't abort the fetch, so overlapping loads all render and
// the last one to finish wins. Index out of range is a programming error and panics.
func (c *Controller) LoadFeed(ctx context.Context, idx int) <-chan struct{} {
	src, ok := c.sources.Get(idx)
	if !ok {
		panic(fmt.Sprintf("feed index %d out of range [0:%d]", idx, c.sources.Len()))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		lgr.Printf("[DEBUG] load feed #%d %q from %s", idx, src.Name, src.URL)
		res := c.fetcher.Fetch(context.WithoutCancel(ctx), src.URL)
		if res.Err != nil {
			lgr.Printf("[DEBUG] feed #%d %q failed, %v", idx, src.Name, res.Err)
		}
		c.renderer.Render(res)
	}()
	return done
}

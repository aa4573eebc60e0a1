// Package registry keeps the ordered, immutable list of feed sources shown in the menu.
package registry

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/umputun/feedreader/pkg/domain"
)

var urlRe = regexp.MustCompile(`(?i)^https?://`)

// Registry is an index-addressed list of feed sources. It is populated once and never resized.
type Registry struct {
	sources []domain.Source
	once    sync.Once
}

// Default returns the built-in feed sources
func Default() []domain.Source {
	return []domain.Source{
		{Name: "Udacity Blog", URL: "http://blog.udacity.com/feeds/posts/default?alt=rss"},
		{Name: "CSS Tricks", URL: "http://css-tricks.com/feed"},
		{Name: "HTML5 Rocks", URL: "http://feeds.feedburner.com/html5rocks"},
		{Name: "Linear Digressions", URL: "http://feeds.feedburner.com/udacity-linear-digressions"},
	}
}

// New makes a registry from sources, validating every one of them
func New(sources []domain.Source) (*Registry, error) {
	if len(sources) == 0 {
		return nil, errors.New("no feed sources")
	}

	res := &Registry{sources: make([]domain.Source, len(sources))}
	copy(res.sources, sources)
	for i, src := range res.sources {
		if err := validate(src); err != nil {
			return nil, fmt.Errorf("feed source #%d: %w", i, err)
		}
	}
	return res, nil
}

// All returns sources in registration order. Ids are assigned on the first call.
func (r *Registry) All() []domain.Source {
	r.assignIDs()
	res := make([]domain.Source, len(r.sources))
	copy(res, r.sources)
	return res
}

// Get returns source by index
func (r *Registry) Get(idx int) (domain.Source, bool) {
	if idx < 0 || idx >= len(r.sources) {
		return domain.Source{}, false
	}
	r.assignIDs()
	return r.sources[idx], true
}

// Len returns number of sources
func (r *Registry) Len() int {
	return len(r.sources)
}

func (r *Registry) assignIDs() {
	r.once.Do(func() {
		for i := range r.sources {
			r.sources[i].ID = i
		}
	})
}

func validate(src domain.Source) error {
	if strings.TrimSpace(src.Name) == "" {
		return errors.New("empty name")
	}
	if !urlRe.MatchString(src.URL) {
		return fmt.Errorf("url %q is not http(s)", src.URL)
	}
	u, err := url.Parse(src.URL)
	if err != nil {
		return fmt.Errorf("parse url %q: %w", src.URL, err)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", src.URL)
	}
	return nil
}

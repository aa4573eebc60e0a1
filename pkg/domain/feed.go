package domain

import "errors"

// ErrFetchFailed is wrapped by every error a feed fetch reports
var ErrFetchFailed = errors.New("feed fetch failed")

// Source describes a feed available in the menu
type Source struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Feed is a parsed feed with its entries in source order
type Feed struct {
	Title       string
	Link        string
	Description string
	Entries     []Entry
}

// Entry is a single article of a feed
type Entry struct {
	Title          string
	Link           string
	Author         string
	PublishedDate  string
	ContentSnippet string // plain text, truncated
	Content        string // sanitized html
	Categories     []string
}

// Result is the outcome of a single fetch. Either Err or Feed is set, never both.
type Result struct {
	Err  error
	Feed *Feed
}

// Failed reports whether the fetch produced nothing to render
func (r Result) Failed() bool {
	return r.Err != nil || r.Feed == nil
}

package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/feedreader/pkg/domain"
)

const defaultSnippetLength = 120

// HTTPFetcher fetches RSS/Atom feeds via HTTP and converts them to domain results
type HTTPFetcher struct {
	client        *http.Client
	userAgent     string
	snippetLength int
	textPolicy    *bluemonday.Policy
	htmlPolicy    *bluemonday.Policy
}

// FetcherParams defines fetcher parameters
type FetcherParams struct {
	Timeout       time.Duration
	UserAgent     string
	SnippetLength int // max runes in entry snippet
}

// NewHTTPFetcher creates a new feed fetcher
func NewHTTPFetcher(params FetcherParams) *HTTPFetcher {
	if params.SnippetLength <= 0 {
		params.SnippetLength = defaultSnippetLength
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: params.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:     params.UserAgent,
		snippetLength: params.SnippetLength,
		textPolicy:    bluemonday.StrictPolicy(),
		htmlPolicy:    bluemonday.UGCPolicy(),
	}
}

// Fetch retrieves and parses a feed from the given URL.
// It never returns a Go error, all failures are reported through Result.Err wrapping domain.ErrFetchFailed.
func (f *HTTPFetcher) Fetch(ctx context.Context, feedURL string) domain.Result {
	parsed, err := f.parse(ctx, feedURL)
	if err != nil {
		return domain.Result{Err: fmt.Errorf("%w: %s: %w", domain.ErrFetchFailed, feedURL, err)}
	}
	return domain.Result{Feed: f.convert(parsed)}
}

func (f *HTTPFetcher) parse(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	body, err := f.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	if parsed == nil {
		return nil, fmt.Errorf("parse feed: empty result")
	}
	return parsed, nil
}

// fetch retrieves content from a URL
func (f *HTTPFetcher) fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// configured agent wins, browser headers only fill in a default one
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	// add feed accept types and browser-like headers
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	// anything but 200 is a failed fetch, redirects are followed by the client
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// caller closes the body after parsing
	return resp.Body, nil
}

// convert maps a parsed feed to the domain feed, keeping item order
func (f *HTTPFetcher) convert(src *gofeed.Feed) *domain.Feed {
	res := &domain.Feed{
		Title:       src.Title,
		Link:        src.Link,
		Description: src.Description,
		Entries:     make([]domain.Entry, 0, len(src.Items)),
	}

	for _, item := range src.Items {
		if item == nil {
			continue
		}
		entry := domain.Entry{
			Title:          strings.TrimSpace(item.Title),
			Link:           item.Link,
			PublishedDate:  item.Published,
			ContentSnippet: f.snippet(item),
			Content:        f.content(item),
			Categories:     make([]string, len(item.Categories)),
		}
		copy(entry.Categories, item.Categories)

		if entry.PublishedDate == "" {
			entry.PublishedDate = item.Updated
		}

		switch {
		case item.Author != nil && item.Author.Name != "":
			entry.Author = item.Author.Name
		case len(item.Authors) > 0 && item.Authors[0] != nil:
			entry.Author = item.Authors[0].Name
		}

		res.Entries = append(res.Entries, entry)
	}

	return res
}

// snippet makes a short plain-text summary of the item
func (f *HTTPFetcher) snippet(item *gofeed.Item) string {
	src := item.Description
	if strings.TrimSpace(src) == "" {
		src = item.Content
	}

	text := html.UnescapeString(f.textPolicy.Sanitize(src))
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) <= f.snippetLength {
		return text
	}
	return strings.TrimSpace(string(runes[:f.snippetLength])) + "..."
}

// content returns sanitized html body of the item
func (f *HTTPFetcher) content(item *gofeed.Item) string {
	src := item.Content
	if strings.TrimSpace(src) == "" {
		src = item.Description
	}
	return strings.TrimSpace(f.htmlPolicy.Sanitize(src))
}

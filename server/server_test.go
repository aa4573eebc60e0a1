package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/umputun/feedreader/pkg/domain"
	"github.com/umputun/feedreader/pkg/render"
	"github.com/umputun/feedreader/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}
}

// testMenu is a menu mock backed by a real visibility flag
func testMenu() *mocks.MenuMock {
	var mu sync.Mutex
	visible := false
	return &mocks.MenuMock{
		VisibleFunc: func() bool {
			mu.Lock()
			defer mu.Unlock()
			return visible
		},
		ToggleFunc: func() bool {
			mu.Lock()
			defer mu.Unlock()
			visible = !visible
			return visible
		},
		SelectFunc: func(ctx context.Context, idx int) <-chan struct{} {
			mu.Lock()
			visible = false
			mu.Unlock()
			done := make(chan struct{})
			close(done)
			return done
		},
	}
}

func testSources() *mocks.SourcesMock {
	sources := []domain.Source{
		{ID: 0, Name: "Udacity Blog", URL: "http://blog.udacity.com/feeds/posts/default?alt=rss"},
		{ID: 1, Name: "CSS Tricks", URL: "http://css-tricks.com/feed"},
	}
	return &mocks.SourcesMock{
		AllFunc: func() []domain.Source { return sources },
		LenFunc: func() int { return len(sources) },
	}
}

func testPage() *mocks.PageMock {
	return &mocks.PageMock{
		SnapshotFunc: func() render.Snapshot {
			return render.Snapshot{
				Title: "Udacity Blog",
				Entries: []template.HTML{
					`<a class="entry-link" href="http://blog.udacity.com/1"><article class="entry"><h2>First</h2><p></p></article></a>`,
					`<a class="entry-link" href="http://blog.udacity.com/2"><article class="entry"><h2>Second</h2><p></p></article></a>`,
				},
				MenuItems: []template.HTML{
					`<li><a href="#" data-id="0" data-url="http://blog.udacity.com/feeds/posts/default?alt=rss">Udacity Blog</a></li>`,
					`<li><a href="#" data-id="1" data-url="http://css-tricks.com/feed">CSS Tricks</a></li>`,
				},
			}
		},
	}
}

// parsedPage is what the reader sees in a rendered html page
type parsedPage struct {
	bodyClass string
	title     string
	entries   []string
	feedLinks []string
}

func parsePage(t *testing.T, body string) parsedPage {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	var res parsedPage
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "body":
				res.bodyClass = attr(n, "class")
			case n.Data == "h1" && attr(n, "class") == "header-title":
				res.title = text(n)
			case n.Data == "article" && attr(n, "class") == "entry":
				res.entries = append(res.entries, text(find(n, "h2")))
			case n.Data == "a" && attr(n, "data-id") != "":
				res.feedLinks = append(res.feedLinks, text(n))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return res
}

func find(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func text(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(text(c))
	}
	return strings.TrimSpace(sb.String())
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(), testMenu(), testSources(), testPage(), "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
	assert.NotNil(t, srv.templates.Lookup(templateIndex))
	assert.NotNil(t, srv.templates.Lookup(templateBody))
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}
	srv := New(cfg, testMenu(), testSources(), testPage(), "1.0.0", true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- srv.Run(ctx) }()

	// wait for server to start
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-runErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server didn't stop")
	}
}

func TestServer_indexHandler(t *testing.T) {
	srv := New(testConfig(), testMenu(), testSources(), testPage(), "1.2.3", false)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<!DOCTYPE html>")
	assert.Contains(t, w.Body.String(), "feedreader 1.2.3")

	page := parsePage(t, w.Body.String())
	assert.Equal(t, "menu-hidden", page.bodyClass, "menu hidden by default")
	assert.Equal(t, "Udacity Blog", page.title)
	assert.Equal(t, []string{"First", "Second"}, page.entries)
	assert.Equal(t, []string{"Udacity Blog", "CSS Tricks"}, page.feedLinks)
}

func TestServer_UnknownPath(t *testing.T) {
	srv := New(testConfig(), testMenu(), testSources(), testPage(), "1.0.0", false)
	req := httptest.NewRequest(http.MethodGet, "/something", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_toggleMenuHandler(t *testing.T) {
	menu := testMenu()
	srv := New(testConfig(), menu, testSources(), testPage(), "1.0.0", false)

	toggle := func() parsedPage {
		req := httptest.NewRequest(http.MethodPost, "/menu/toggle", http.NoBody)
		req.Header.Set("HX-Request", "true")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "<!DOCTYPE html>", "htmx gets body only")
		return parsePage(t, w.Body.String())
	}

	assert.Empty(t, toggle().bodyClass, "first click shows the menu")
	assert.Equal(t, "menu-hidden", toggle().bodyClass, "second click hides it")
	assert.Len(t, menu.ToggleCalls(), 2)

	t.Run("plain form post redirects", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/menu/toggle", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.True(t, menu.Visible())
	})

	t.Run("get is not routed", func(t *testing.T) {
		visible := menu.Visible()
		req := httptest.NewRequest(http.MethodGet, "/menu/toggle", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		// routegroup answers method mismatches with its not-found handler
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, visible, menu.Visible(), "menu not toggled")
	})
}

func TestServer_selectFeedHandler(t *testing.T) {
	t.Run("valid feed", func(t *testing.T) {
		menu := testMenu()
		menu.Toggle() // menu is open when a feed is clicked
		srv := New(testConfig(), menu, testSources(), testPage(), "1.0.0", false)

		req := httptest.NewRequest(http.MethodPost, "/feeds/1", http.NoBody)
		req.Header.Set("HX-Request", "true")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, menu.SelectCalls(), 1)
		assert.Equal(t, 1, menu.SelectCalls()[0].Idx)
		assert.Equal(t, "menu-hidden", parsePage(t, w.Body.String()).bodyClass)
	})

	t.Run("plain form post redirects", func(t *testing.T) {
		menu := testMenu()
		srv := New(testConfig(), menu, testSources(), testPage(), "1.0.0", false)

		req := httptest.NewRequest(http.MethodPost, "/feeds/0", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Len(t, menu.SelectCalls(), 1)
	})

	tests := []struct {
		name string
		id   string
		code int
	}{
		{name: "not a number", id: "abc", code: http.StatusBadRequest},
		{name: "out of range", id: "2", code: http.StatusNotFound},
		{name: "negative", id: "-1", code: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu := testMenu()
			srv := New(testConfig(), menu, testSources(), testPage(), "1.0.0", false)

			req := httptest.NewRequest(http.MethodPost, "/feeds/"+tt.id, http.NoBody)
			w := httptest.NewRecorder()
			srv.router.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			assert.Empty(t, menu.SelectCalls())
		})
	}

	t.Run("client gone before load completed", func(t *testing.T) {
		menu := testMenu()
		pending := make(chan struct{})
		defer close(pending)
		menu.SelectFunc = func(ctx context.Context, idx int) <-chan struct{} { return pending }
		srv := New(testConfig(), menu, testSources(), testPage(), "1.0.0", false)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodPost, "/feeds/0", http.NoBody).WithContext(ctx)
		req.SetPathValue("id", "0")
		w := httptest.NewRecorder()
		srv.selectFeedHandler(w, req)

		assert.Len(t, menu.SelectCalls(), 1)
		assert.Empty(t, w.Body.String())
	})
}

func TestServer_statusHandler(t *testing.T) {
	srv := New(testConfig(), testMenu(), testSources(), testPage(), "1.2.3", false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.NotEmpty(t, status["time"])
}

func TestServer_feedsHandler(t *testing.T) {
	srv := New(testConfig(), testMenu(), testSources(), testPage(), "1.0.0", false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feeds", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var feeds []domain.Source
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feeds))
	require.Len(t, feeds, 2)
	assert.Equal(t, domain.Source{ID: 1, Name: "CSS Tricks", URL: "http://css-tricks.com/feed"}, feeds[1])
}

func TestServer_pageHandler(t *testing.T) {
	menu := testMenu()
	menu.Toggle()
	srv := New(testConfig(), menu, testSources(), testPage(), "1.0.0", false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/page", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Title       string `json:"title"`
		Entries     int    `json:"entries"`
		MenuVisible bool   `json:"menu_visible"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Udacity Blog", resp.Title)
	assert.Equal(t, 2, resp.Entries)
	assert.True(t, resp.MenuVisible)
}

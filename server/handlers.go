package server

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/rest"

	"github.com/umputun/feedreader/pkg/domain"
)

const (
	templateIndex = "index.html"
	templateBody  = "body"
)

// pageData is the template data for full page and body renders
type pageData struct {
	Title      string
	Entries    []template.HTML
	MenuItems  []template.HTML
	MenuHidden bool
	Version    string
}

// indexHandler displays the reader page
func (s *Server) indexHandler(w http.ResponseWriter, _ *http.Request) {
	if err := s.render(w, templateIndex); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// toggleMenuHandler shows or hides the feed menu
func (s *Server) toggleMenuHandler(w http.ResponseWriter, r *http.Request) {
	visible := s.menu.Toggle()
	log.Printf("[DEBUG] menu visible: %v", visible)
	s.respondWithPage(w, r)
}

// selectFeedHandler hides the menu and loads the selected feed, responding after it was rendered
func (s *Server) selectFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid feed ID", err)
		return
	}
	if id < 0 || id >= s.sources.Len() {
		s.respondWithError(w, http.StatusNotFound, "Feed not found", fmt.Errorf("feed %d not in [0:%d]", id, s.sources.Len()))
		return
	}

	done := s.menu.Select(r.Context(), id)
	select {
	case <-done:
	case <-r.Context().Done():
		// client is gone, the load keeps going and will update the page anyway
		log.Printf("[DEBUG] client left before feed %d was loaded", id)
		return
	}

	s.respondWithPage(w, r)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	rest.RenderJSON(w, rest.JSON{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	})
}

// feedsHandler returns the list of feed sources
func (s *Server) feedsHandler(w http.ResponseWriter, _ *http.Request) {
	feeds := s.sources.All()
	if feeds == nil {
		feeds = []domain.Source{}
	}
	rest.RenderJSON(w, feeds)
}

// pageHandler returns a summary of what the page shows now
func (s *Server) pageHandler(w http.ResponseWriter, _ *http.Request) {
	snap := s.page.Snapshot()
	rest.RenderJSON(w, rest.JSON{
		"title":        snap.Title,
		"entries":      len(snap.Entries),
		"menu_visible": s.menu.Visible(),
	})
}

// respondWithPage sends the re-rendered body to htmx requests, plain form posts are redirected to the page
func (s *Server) respondWithPage(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := s.render(w, templateBody); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

func (s *Server) render(w http.ResponseWriter, name string) error {
	snap := s.page.Snapshot()
	data := pageData{
		Title:      snap.Title,
		Entries:    snap.Entries,
		MenuItems:  snap.MenuItems,
		MenuHidden: !s.menu.Visible(),
		Version:    s.version,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	return nil
}

// respondWithError logs the error and sends a plain-text error response
func (s *Server) respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	log.Printf("[WARN] %s: %v", msg, err)
	http.Error(w, msg, code)
}

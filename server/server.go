package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/feedreader/pkg/domain"
	"github.com/umputun/feedreader/pkg/render"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/menu.go -pkg mocks -skip-ensure -fmt goimports . Menu
//go:generate moq -out mocks/sources.go -pkg mocks -skip-ensure -fmt goimports . Sources
//go:generate moq -out mocks/page.go -pkg mocks -skip-ensure -fmt goimports . Page

//go:embed templates/*.html
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	menu    Menu
	sources Sources
	page    Page
	version string
	debug   bool

	templates *template.Template

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Menu switches feeds and tracks menu visibility
type Menu interface {
	Visible() bool
	Toggle() bool
	Select(ctx context.Context, idx int) <-chan struct{}
}

// Sources lists feeds available in the menu
type Sources interface {
	All() []domain.Source
	Len() int
}

// Page provides the current rendered content
type Page interface {
	Snapshot() render.Snapshot
}

// New initializes a new server instance
func New(cfg ConfigProvider, menu Menu, sources Sources, page Page, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		menu:      menu,
		sources:   sources,
		page:      page,
		version:   version,
		debug:     debug,
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedreader", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, only small forms are posted
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// UI routes
	s.router.HandleFunc("GET /{$}", s.indexHandler)
	s.router.HandleFunc("POST /menu/toggle", s.toggleMenuHandler)
	s.router.HandleFunc("POST /feeds/{id}", s.selectFeedHandler)

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /feeds", s.feedsHandler)
		r.HandleFunc("GET /page", s.pageHandler)
	})
}

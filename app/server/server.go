// Package server provides HTTP server for the portfolio pages and the theme API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/portfolio/app/server/api"
	"github.com/umputun/portfolio/app/server/internal"
	"github.com/umputun/portfolio/app/server/web"
	"github.com/umputun/portfolio/app/store"
	"github.com/umputun/portfolio/app/tokens"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

// Server represents the HTTP server.
type Server struct {
	cfg        Config
	version    string
	baseURL    string
	tokensCSS  []byte
	codeCSS    []byte
	apiHandler *api.Handler
	webHandler *web.Handler
	staticFS   fs.FS // embedded static files
}

// PrefStore defines the interface for visitor preference storage.
// Defined here (consumer side) to allow different store implementations.
type PrefStore interface {
	Get(ctx context.Context, visitor, key string) (string, error)
	Set(ctx context.Context, visitor, key, value string) error
	Delete(ctx context.Context, visitor, key string) error
	List(ctx context.Context, visitor string) ([]store.Preference, error)
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string // base URL path for reverse proxy (e.g., /portfolio)
	Secret          string // visitor cookie signing secret
	FontsDir        string // local directory with font files served under /fonts/, empty disables

	// limits
	BodySizeLimit  int64 // max request body size in bytes
	RequestsPerSec int64 // max requests per second
}

// New creates a new Server instance. ts is the design-token set compiled into /static/tokens.css.
func New(st PrefStore, ts *tokens.Set, cfg Config) (*Server, error) {
	if ts == nil {
		return nil, errors.New("design tokens are required")
	}

	staticContent, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	tokensCSS, err := ts.CSS(cfg.BaseURL + "/fonts/")
	if err != nil {
		return nil, fmt.Errorf("failed to build tokens css: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		version:   cfg.Version,
		baseURL:   cfg.BaseURL,
		staticFS:  staticContent,
		tokensCSS: []byte(tokensCSS),
	}

	codeCSS, err := web.CodeCSS()
	if err != nil {
		return nil, fmt.Errorf("failed to build code styles: %w", err)
	}
	s.codeCSS = []byte(codeCSS)

	webHandler, err := web.New(st, ts, web.Config{BaseURL: cfg.BaseURL, Secret: cfg.Secret})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}
	s.webHandler = webHandler
	s.apiHandler = api.New(st, internal.NewVisitors(cfg.Secret, s.cookiePath()))

	return s, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// handler returns the HTTP handler, wrapping routes with base URL support if configured.
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}
	mux := http.NewServeMux()
	// redirect /base to /base/
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	// strip prefix for all routes under base URL
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware (applies to all routes)
	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle to rate-limit by real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("portfolio", "umputun", s.version),
		rest.Ping,
	)

	router.HandleFunc("GET /static/tokens.css", s.handleCSS(s.tokensCSS))
	router.HandleFunc("GET /static/code.css", s.handleCSS(s.codeCSS))
	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))
	if s.cfg.FontsDir != "" {
		router.Handle("GET /fonts/", http.StripPrefix("/fonts/", http.FileServer(http.Dir(s.cfg.FontsDir))))
	}

	// pages and htmx partials
	router.Group().Route(s.webHandler.Register)

	// json theme api
	router.Mount("/api").Route(s.apiHandler.Register)

	return router
}

// handleCSS serves a stylesheet built at startup: the design tokens compiled to CSS custom
// properties, or the snippet colors.
func (s *Server) handleCSS(css []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if _, err := w.Write(css); err != nil {
			log.Printf("[WARN] failed to write %s: %v", r.URL.Path, err)
		}
	}
}

// bodySizeLimit returns the configured body size limit, or default 64KB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 64 * 1024 // 64KB default, requests carry a single form field
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000 // default
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (s *Server) cookiePath() string {
	if s.baseURL == "" {
		return "/"
	}
	return s.baseURL + "/"
}

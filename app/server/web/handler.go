// Package web provides HTTP handlers for the portfolio pages and the theme toggle.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/portfolio/app/enum"
	"github.com/umputun/portfolio/app/server/internal"
	"github.com/umputun/portfolio/app/store"
	"github.com/umputun/portfolio/app/theme"
	"github.com/umputun/portfolio/app/tokens"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// ThemeChangedEvent is the htmx event sent with every response that moved the theme.
const ThemeChangedEvent = "themeChanged"

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// PrefStore reads and writes visitor preferences.
type PrefStore interface {
	Get(ctx context.Context, visitor, key string) (string, error)
	Set(ctx context.Context, visitor, key, value string) error
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
	Secret  string // visitor cookie signing secret
}

// Handler handles web UI requests.
type Handler struct {
	store    PrefStore
	tokens   *tokens.Set
	visitors *internal.Visitors
	tmpl     *template.Template
	baseURL  string
}

// New creates a new web handler.
func New(st PrefStore, ts *tokens.Set, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	h := &Handler{
		store:   st,
		tokens:  ts,
		tmpl:    tmpl,
		baseURL: cfg.BaseURL,
	}
	h.visitors = internal.NewVisitors(cfg.Secret, h.cookiePath())
	return h, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /web/theme", h.handleThemeGet)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
	r.HandleFunc("PUT /web/theme", h.handleThemeSet)
	r.HandleFunc("POST /web/scheme", h.handleSchemeReport)
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"heading": heading,
		"text":    text,
		"code":    code,
	}
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs())

	for _, name := range []string{"base.html", "index.html"} {
		content, err := templatesFS.ReadFile("templates/" + name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err = tmpl.New(name).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	// parse partials
	partials := []string{"toggle"}
	for _, name := range partials {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		_, parseErr := tmpl.New(name).Parse(string(content))
		if parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}

	return tmpl, nil
}

// swatch is a single color sample on the demo page.
type swatch struct {
	Step  int
	Value string
}

// typeSample is a typography sample with its metrics caption.
type typeSample struct {
	Level   int    // heading level, 0 for body text
	Variant string // body text variant
	Label   string
	Metrics string
	Text    string
}

// snippet is a highlighted usage example on the demo page.
type snippet struct {
	Title string
	Lang  string
	Code  string
}

// templateData holds data passed to templates.
type templateData struct {
	Title      string
	BaseURL    string
	RootClass  string // class attribute of <html>, carries the dark marker
	Toggle     theme.ToggleView
	Appearance enum.Appearance
	Neutral    []swatch
	Semantic   []tokens.SemanticColor
	Headings   []typeSample
	Body       []typeSample
	Spacing    string // spacing grid summary, e.g. "4px increments (0x → 40x)"
	FontFamily string
	Snippets   []snippet
}

// session is the theme state of a single request: a machine seeded from the visitor's
// stored preference, the browser's color scheme and the page root it reflects on.
type session struct {
	machine *theme.Machine
	scheme  *theme.StaticScheme
	root    *theme.ClassList
	changes []theme.Change
}

// newSession starts the theme machine for the request's visitor and records its changes.
func (h *Handler) newSession(w http.ResponseWriter, r *http.Request) *session {
	visitor := h.visitors.ID(w, r)
	s := &session{scheme: internal.Scheme(r), root: theme.NewClassList("")}
	s.machine = theme.New(store.NewScoped(r.Context(), h.store, visitor), s.scheme, s.root)
	s.machine.Subscribe(func(c theme.Change) { s.changes = append(s.changes, c) })
	return s
}

// toggle returns the toggle view. Until the browser reported its scheme a visitor on the
// system preference sees the loading placeholder, not a guessed appearance.
func (s *session) toggle() theme.ToggleView {
	if s.machine.Preference() == enum.ThemeSystem && !s.scheme.Known() {
		return theme.NewToggle(nil).View()
	}
	return theme.NewToggle(s.machine).View()
}

// trigger sets the HX-Trigger header for the last change, if any.
func (s *session) trigger(w http.ResponseWriter) {
	if len(s.changes) == 0 {
		return
	}
	last := s.changes[len(s.changes)-1]
	payload := map[string]any{ThemeChangedEvent: map[string]string{
		"preference": last.Preference.String(),
		"appearance": last.Appearance.String(),
		"class":      s.root.String(),
	}}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[WARN] failed to marshal theme trigger: %v", err)
		return
	}
	w.Header().Set("HX-Trigger", string(data))
}

// render executes a named template, logging failures.
func (h *Handler) render(w http.ResponseWriter, name string, data templateData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] failed to execute template %s: %v", name, err)
	}
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}

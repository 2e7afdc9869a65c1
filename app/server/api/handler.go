// Package api provides the JSON theme API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/portfolio/app/server/internal"
	"github.com/umputun/portfolio/app/store"
	"github.com/umputun/portfolio/app/theme"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

// PrefStore reads, writes and removes visitor preferences.
type PrefStore interface {
	Get(ctx context.Context, visitor, key string) (string, error)
	Set(ctx context.Context, visitor, key, value string) error
	Delete(ctx context.Context, visitor, key string) error
	List(ctx context.Context, visitor string) ([]store.Preference, error)
}

// Handler handles API requests for /api/* endpoints.
type Handler struct {
	store    PrefStore
	visitors *internal.Visitors
}

// State is the theme state reported by the API.
type State struct {
	Preference  string `json:"preference"`
	Resolved    string `json:"resolved"`
	Class       string `json:"class"` // class list of the document root
	Label       string `json:"label"`
	SchemeKnown bool   `json:"scheme_known"`
}

// StoredPreference is a stored preference of the visitor.
type StoredPreference struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a new API handler. Visitors must be signed with the web handler's secret
// for both to resolve the same visitor.
func New(st PrefStore, visitors *internal.Visitors) *Handler {
	return &Handler{store: st, visitors: visitors}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGet)
	r.HandleFunc("PUT /theme", h.handleSet)
	r.HandleFunc("POST /theme/cycle", h.handleCycle)
	r.HandleFunc("DELETE /theme", h.handleReset)
	r.HandleFunc("GET /preferences", h.handleList)
}

// handleGet returns the visitor's theme state.
// GET /api/theme
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	m, scheme, root := h.machine(w, r)
	rest.RenderJSON(w, state(m, scheme, root))
}

// handleSet sets an explicit preference.
// PUT /api/theme {"theme": "dark"}
func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "failed to decode request")
		return
	}

	m, scheme, root := h.machine(w, r)
	if err := m.SetPreferenceName(req.Theme); err != nil {
		if errors.Is(err, theme.ErrInvalidPreference) {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid theme preference")
			return
		}
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to set theme")
		return
	}
	log.Printf("[DEBUG] theme set to %s via api", m.Preference())
	rest.RenderJSON(w, state(m, scheme, root))
}

// handleCycle advances the preference the way the toggle does.
// POST /api/theme/cycle
func (h *Handler) handleCycle(w http.ResponseWriter, r *http.Request) {
	m, scheme, root := h.machine(w, r)
	if err := theme.NewToggle(m).Activate(); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to cycle theme")
		return
	}
	rest.RenderJSON(w, state(m, scheme, root))
}

// handleReset forgets the stored preference, the visitor is back on system.
// DELETE /api/theme
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	visitor := h.visitors.ID(w, r)
	err := h.store.Delete(r.Context(), visitor, theme.StorageKey)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to reset theme")
		return
	}
	log.Printf("[DEBUG] theme reset for %s", visitor)

	scheme, root := internal.Scheme(r), theme.NewClassList("")
	m := theme.New(store.NewScoped(r.Context(), h.store, visitor), scheme, root)
	rest.RenderJSON(w, state(m, scheme, root))
}

// handleList returns the visitor's stored preferences.
// GET /api/preferences
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.store.List(r.Context(), h.visitors.ID(w, r))
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list preferences")
		return
	}
	res := make([]StoredPreference, 0, len(prefs))
	for _, p := range prefs {
		res = append(res, StoredPreference{Key: p.Key, Value: p.Value, UpdatedAt: p.UpdatedAt})
	}
	rest.RenderJSON(w, res)
}

// machine starts the theme machine of the request's visitor.
func (h *Handler) machine(w http.ResponseWriter, r *http.Request) (*theme.Machine, *theme.StaticScheme, *theme.ClassList) {
	visitor := h.visitors.ID(w, r)
	scheme, root := internal.Scheme(r), theme.NewClassList("")
	return theme.New(store.NewScoped(r.Context(), h.store, visitor), scheme, root), scheme, root
}

func state(m *theme.Machine, scheme *theme.StaticScheme, root *theme.ClassList) State {
	view := theme.NewToggle(m).View()
	return State{
		Preference:  view.Preference.String(),
		Resolved:    view.Appearance.String(),
		Class:       root.String(),
		Label:       view.Label,
		SchemeKnown: scheme.Known(),
	}
}

// Package theme implements the theme preference state machine and the toggle control driving it.
package theme

import (
	"errors"
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/portfolio/app/enum"
)

// StorageKey is the fixed key the preference is persisted under.
const StorageKey = "portfolio-theme"

// ErrInvalidPreference is returned when a preference outside light/dark/system is requested.
var ErrInvalidPreference = errors.New("invalid theme preference")

//go:generate moq -out mocks/storage.go -pkg mocks -skip-ensure -fmt goimports . Storage
//go:generate moq -out mocks/scheme.go -pkg mocks -skip-ensure -fmt goimports . SchemeSource

// Storage is a durable string key-value store. Load returns an empty string for absent keys.
type Storage interface {
	Load(key string) (string, error)
	Save(key, value string) error
}

// SchemeSource reports the color scheme preferred by the OS or browser.
type SchemeSource interface {
	PrefersDark() (bool, error)
}

// Document is the presentation root the resolved appearance is reflected on.
type Document interface {
	Contains(class string) bool
	Add(class string)
	Remove(class string)
}

// Change describes the machine state after a transition.
type Change struct {
	Preference enum.Theme
	Appearance enum.Appearance
}

// Machine holds the theme preference and its resolved appearance.
// It persists the preference, keeps the document's dark class in sync and notifies subscribers.
// A Machine is owned by a single goroutine and is not safe for concurrent use.
type Machine struct {
	storage  Storage
	scheme   SchemeSource
	doc      Document
	pref     enum.Theme
	resolved enum.Appearance

	subs   []subscription
	nextID int
}

type subscription struct {
	id int
	fn func(Change)
}

// New creates a machine seeded from storage. Absent or unreadable values start as system.
// The document is reflected before New returns. A nil storage keeps the preference in memory only.
func New(storage Storage, scheme SchemeSource, doc Document) *Machine {
	m := &Machine{storage: storage, scheme: scheme, doc: doc, pref: enum.ThemeSystem}
	m.pref = m.load()
	m.resolved = m.resolve()
	m.reflect()
	return m
}

// Preference returns the current theme preference.
func (m *Machine) Preference() enum.Theme {
	return m.pref
}

// Resolved returns the effective appearance. For the system preference the scheme source
// is consulted at call time.
func (m *Machine) Resolved() enum.Appearance {
	return m.resolve()
}

// Settled returns the appearance last reflected on the document. Unlike Resolved it never
// consults the scheme source, so it is safe to call on every render.
func (m *Machine) Settled() enum.Appearance {
	return m.resolved
}

// SetPreference validates and applies the next preference: persists it, recomputes the
// appearance, reflects it on the document and notifies subscribers, in that order.
// Storage failures are logged and do not prevent the transition.
func (m *Machine) SetPreference(next enum.Theme) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPreference, next.String())
	}

	m.save(next)
	prev := m.snapshot()
	m.pref = next
	m.settle(prev)
	return nil
}

// SetPreferenceName parses the name and applies it with SetPreference.
func (m *Machine) SetPreferenceName(name string) error {
	next, err := enum.ParseTheme(name)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPreference, name)
	}
	return m.SetPreference(next)
}

// SchemeChanged re-resolves the appearance after the OS scheme changed.
// The stored preference is left untouched.
func (m *Machine) SchemeChanged() {
	m.settle(m.snapshot())
}

// Subscribe registers fn to be called after every change of preference or resolved appearance.
// The returned function removes the subscription and may be called more than once.
func (m *Machine) Subscribe(fn func(Change)) (unsubscribe func()) {
	m.nextID++
	id := m.nextID
	m.subs = append(m.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// Reflect applies the current appearance to the document. Repeated calls with an unchanged
// appearance leave the document as is.
func (m *Machine) Reflect() {
	m.reflect()
}

func (m *Machine) snapshot() Change {
	return Change{Preference: m.pref, Appearance: m.resolved}
}

// settle recomputes the appearance, reflects it and notifies subscribers if anything moved.
func (m *Machine) settle(prev Change) {
	m.resolved = m.resolve()
	m.reflect()
	cur := m.snapshot()
	if cur == prev {
		return
	}
	log.Printf("[DEBUG] theme changed, preference=%s, appearance=%s", cur.Preference, cur.Appearance)
	// copy so callbacks may unsubscribe while being notified
	subs := append([]subscription(nil), m.subs...)
	for _, s := range subs {
		s.fn(cur)
	}
}

func (m *Machine) resolve() enum.Appearance {
	switch m.pref {
	case enum.ThemeDark:
		return enum.AppearanceDark
	case enum.ThemeLight:
		return enum.AppearanceLight
	}
	if m.scheme == nil {
		return enum.AppearanceLight
	}
	dark, err := m.scheme.PrefersDark()
	if err != nil {
		log.Printf("[DEBUG] color scheme unavailable, fallback to light: %v", err)
		return enum.AppearanceLight
	}
	return enum.AppearanceOf(dark)
}

func (m *Machine) reflect() {
	if m.doc == nil {
		return
	}
	has := m.doc.Contains(enum.DarkClass)
	switch {
	case m.resolved.IsDark() && !has:
		m.doc.Add(enum.DarkClass)
	case !m.resolved.IsDark() && has:
		m.doc.Remove(enum.DarkClass)
	}
}

func (m *Machine) load() enum.Theme {
	if m.storage == nil {
		return enum.ThemeSystem
	}
	val, err := m.storage.Load(StorageKey)
	if err != nil {
		log.Printf("[WARN] failed to load theme preference: %v", err)
		return enum.ThemeSystem
	}
	if val == "" {
		return enum.ThemeSystem
	}
	pref, err := enum.ParseTheme(val)
	if err != nil {
		log.Printf("[WARN] ignoring stored theme preference %q: %v", val, err)
		return enum.ThemeSystem
	}
	return pref
}

func (m *Machine) save(pref enum.Theme) {
	if m.storage == nil {
		return
	}
	if err := m.storage.Save(StorageKey, pref.String()); err != nil {
		log.Printf("[WARN] failed to persist theme preference %s, keeping it for this session: %v", pref, err)
	}
}

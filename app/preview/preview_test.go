package preview

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/portfolio/app/enum"
	"github.com/umputun/portfolio/app/theme"
	"github.com/umputun/portfolio/app/theme/mocks"
	"github.com/umputun/portfolio/app/tokens"
)

func TestModel_Loading(t *testing.T) {
	m := New(Config{Load: staticLoader(nil, false)})
	assert.Equal(t, "Theme: Loading...\n", m.View())
	_, ok := m.Preference()
	assert.False(t, ok)

	// toggling before load is reported, not applied
	_, cmd := m.Update(keyMsg("t"))
	assert.Nil(t, cmd)
	assert.Contains(t, m.status, "before load")
}

func TestModel_LoadAndToggle(t *testing.T) {
	m := New(Config{Load: staticLoader(nil, true), Tokens: defaultTokens(t)})
	loadAll(t, m)

	pref, ok := m.Preference()
	require.True(t, ok)
	assert.Equal(t, enum.ThemeSystem, pref)
	view := m.View()
	assert.Contains(t, view, "⚙️ System")
	assert.Contains(t, view, "(dark)")
	assert.Contains(t, view, `root class: "dark"`)
	assert.Contains(t, view, "Neutral scale (dark)")

	expected := []enum.Theme{enum.ThemeLight, enum.ThemeDark, enum.ThemeSystem}
	for _, want := range expected {
		_, cmd := m.Update(keyMsg("t"))
		assert.Nil(t, cmd)
		got, _ := m.Preference()
		assert.Equal(t, want, got)
	}

	// every toggle was forwarded through the subscription
	require.Len(t, m.changes, 3)
	msg := m.waitChange()()
	change, ok := msg.(changeMsg)
	require.True(t, ok)
	assert.Equal(t, enum.ThemeLight, change.Preference)
	assert.Equal(t, enum.AppearanceLight, change.Appearance)

	_, cmd := m.Update(change)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "changed to light (light)")
}

func TestModel_Probe(t *testing.T) {
	scheme := theme.NewStaticScheme(false)
	m := New(Config{Load: staticLoader(scheme, false), ProbeInterval: time.Millisecond})
	loadAll(t, m)
	assert.False(t, m.root.Contains(enum.DarkClass))

	scheme.Set(true)
	_, cmd := m.Update(probeMsg(time.Now()))
	assert.NotNil(t, cmd, "probe re-arms")
	assert.True(t, m.root.Contains(enum.DarkClass))
	require.Len(t, m.changes, 1)
	assert.Equal(t, enum.AppearanceDark, (<-m.changes).Appearance)
}

func TestModel_ViewDoesNotQueryScheme(t *testing.T) {
	var dark bool
	scheme := &mocks.SchemeSourceMock{PrefersDarkFunc: func() (bool, error) { return dark, nil }}
	m := New(Config{Tokens: defaultTokens(t), Load: func() (*theme.Machine, *theme.ClassList, error) {
		root := theme.NewClassList("")
		return theme.New(nil, scheme, root), root, nil
	}})
	loadAll(t, m)
	queries := len(scheme.PrefersDarkCalls())

	for range 10 {
		_ = m.View()
	}
	assert.Len(t, scheme.PrefersDarkCalls(), queries, "renders must not touch the terminal")

	// the OS flips, the view keeps showing what the root class says until the probe tick
	dark = true
	view := m.View()
	assert.Contains(t, view, "(light)")
	assert.Contains(t, view, `root class: ""`)
	assert.Len(t, scheme.PrefersDarkCalls(), queries)

	_, _ = m.Update(probeMsg(time.Now()))
	assert.Len(t, scheme.PrefersDarkCalls(), queries+1)
	view = m.View()
	assert.Contains(t, view, "(dark)")
	assert.Contains(t, view, `root class: "dark"`)
}

func TestModel_Quit(t *testing.T) {
	m := New(Config{Load: staticLoader(nil, false)})
	loadAll(t, m)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// unsubscribed, further changes are not forwarded
	require.NoError(t, m.machine.SetPreference(enum.ThemeDark))
	assert.Empty(t, m.changes)
	m.Close() // idempotent
}

func TestModel_LoadError(t *testing.T) {
	m := New(Config{Load: func() (*theme.Machine, *theme.ClassList, error) {
		return nil, nil, errors.New("db locked")
	}})
	msg := m.Init()()
	_, cmd := m.Update(msg)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "failed to load theme: db locked")

	m = New(Config{})
	_, _ = m.Update(m.Init()())
	assert.Contains(t, m.View(), "no theme loader")
}

func TestSwatches(t *testing.T) {
	ts := defaultTokens(t)
	out := Swatches(ts, enum.AppearanceLight)
	assert.Contains(t, out, "Neutral scale (light)")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "Background")
	assert.Contains(t, out, "#fcfcfc")
	assert.Contains(t, out, "Secondary text color")
	assert.Contains(t, out, ":1")

	assert.Contains(t, Swatches(ts, enum.AppearanceDark), "#111111")
	assert.Empty(t, Swatches(nil, enum.AppearanceDark))
}

// staticLoader returns a loader over an in-memory machine. A nil scheme reports dark or light per osDark.
func staticLoader(scheme *theme.StaticScheme, osDark bool) Loader {
	return func() (*theme.Machine, *theme.ClassList, error) {
		if scheme == nil {
			scheme = theme.NewStaticScheme(osDark)
		}
		root := theme.NewClassList("")
		return theme.New(nil, scheme, root), root, nil
	}
}

// loadAll runs Init and feeds the loaded machine into the model.
func loadAll(t *testing.T, m *Model) {
	t.Helper()
	msg := m.Init()()
	loaded, ok := msg.(loadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	_, cmd := m.Update(loaded)
	assert.NotNil(t, cmd)
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func defaultTokens(t *testing.T) *tokens.Set {
	t.Helper()
	ts, err := tokens.Default()
	require.NoError(t, err)
	return ts
}

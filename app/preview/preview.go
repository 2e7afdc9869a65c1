// Package preview implements the terminal theme preview: the toggle, the token swatches
// and the live terminal color scheme.
package preview

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/portfolio/app/enum"
	"github.com/umputun/portfolio/app/theme"
	"github.com/umputun/portfolio/app/tokens"
)

// Loader builds the theme machine and the document it reflects on.
// It runs off the UI goroutine, the machine is handed over once loaded.
type Loader func() (*theme.Machine, *theme.ClassList, error)

// Config defines preview parameters.
type Config struct {
	Load          Loader
	Tokens        *tokens.Set
	ProbeInterval time.Duration // how often the terminal scheme is re-read, 0 disables
}

// loadedMsg delivers the loaded machine.
type loadedMsg struct {
	machine *theme.Machine
	root    *theme.ClassList
	err     error
}

// changeMsg is a machine change forwarded from the subscription.
type changeMsg theme.Change

// probeMsg asks to re-read the terminal scheme.
type probeMsg time.Time

// Model is the bubbletea model of the preview.
type Model struct {
	cfg         Config
	machine     *theme.Machine
	root        *theme.ClassList
	changes     chan theme.Change
	unsubscribe func()
	status      string
	err         error
	width       int
}

// New makes the preview model. The machine is loaded by Init.
func New(cfg Config) *Model {
	return &Model{cfg: cfg, changes: make(chan theme.Change, 16)}
}

// Init starts loading the machine.
func (m *Model) Init() tea.Cmd {
	load := m.cfg.Load
	return func() tea.Msg {
		if load == nil {
			return loadedMsg{err: errors.New("no theme loader")}
		}
		machine, root, err := load()
		return loadedMsg{machine: machine, root: root, err: err}
	}
}

// Update handles key presses, the load result, forwarded changes and probe ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.machine, m.root = msg.machine, msg.root
		m.unsubscribe = m.machine.Subscribe(m.forward)
		return m, tea.Batch(m.waitChange(), m.probe())

	case changeMsg:
		m.status = fmt.Sprintf("changed to %s (%s)", msg.Preference, msg.Appearance)
		return m, m.waitChange()

	case probeMsg:
		if m.machine != nil {
			m.machine.SchemeChanged()
		}
		return m, m.probe()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "t", " ", "enter":
			if err := theme.NewToggle(m.machine).Activate(); err != nil {
				m.status = err.Error()
			}
			return m, nil
		case "q", "esc", "ctrl+c":
			m.Close()
			return m, tea.Quit
		}
	}
	return m, nil
}

// Close drops the machine subscription. Safe to call more than once.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Preference returns the loaded preference, or false while loading.
func (m *Model) Preference() (enum.Theme, bool) {
	if m.machine == nil {
		return enum.Theme{}, false
	}
	return m.machine.Preference(), true
}

// forward runs inside the machine's notification and must not block the owner.
func (m *Model) forward(c theme.Change) {
	select {
	case m.changes <- c:
	default:
		log.Printf("[DEBUG] preview change dropped, queue full: %+v", c)
	}
}

func (m *Model) waitChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		return changeMsg(<-ch)
	}
}

func (m *Model) probe() tea.Cmd {
	if m.cfg.ProbeInterval <= 0 {
		return nil
	}
	return tea.Tick(m.cfg.ProbeInterval, func(t time.Time) tea.Msg { return probeMsg(t) })
}

// View renders the toggle, swatches and key help.
func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("failed to load theme: %v\n", m.err)
	}

	view := theme.NewToggle(m.machine).View()
	if view.Loading {
		return "Theme: " + view.Label + "\n"
	}

	st := newStyles(m.cfg.Tokens, view.Appearance)
	var b strings.Builder
	b.WriteString(st.title.Render("Design System Preview"))
	b.WriteString("\n\n")
	b.WriteString(st.text.Render("Theme: ") + st.bold.Render(view.Label) + st.muted.Render(" ("+view.Appearance.String()+")"))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(view.Title + ", root class: " + quoted(m.root)))
	b.WriteString("\n\n")
	b.WriteString(Swatches(m.cfg.Tokens, view.Appearance))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(st.muted.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(st.muted.Render("t: toggle theme • q: quit"))
	b.WriteString("\n")
	return b.String()
}

func quoted(c *theme.ClassList) string {
	if c == nil {
		return `""`
	}
	return `"` + c.String() + `"`
}

type styles struct {
	title, text, bold, muted lipgloss.Style
}

// newStyles picks text colors from the semantic tokens of the appearance.
func newStyles(ts *tokens.Set, a enum.Appearance) styles {
	st := styles{
		title: lipgloss.NewStyle().Bold(true),
		text:  lipgloss.NewStyle(),
		bold:  lipgloss.NewStyle().Bold(true),
		muted: lipgloss.NewStyle().Faint(true),
	}
	if ts == nil {
		return st
	}
	for _, c := range ts.Semantic() {
		switch c.Name {
		case "foreground":
			fg := lipgloss.Color(c.Value(a))
			st.title, st.text, st.bold = st.title.Foreground(fg), st.text.Foreground(fg), st.bold.Foreground(fg)
		case "muted":
			st.muted = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Value(a)))
		}
	}
	return st
}

// Swatches renders the neutral scale and the semantic colors of the appearance.
func Swatches(ts *tokens.Set, a enum.Appearance) string {
	if ts == nil {
		return ""
	}
	var b strings.Builder
	cell := lipgloss.NewStyle().Width(6).Align(lipgloss.Center)

	b.WriteString("Neutral scale (" + a.String() + ")\n")
	colors := ts.Neutral(a)
	blocks := make([]string, 0, len(colors))
	labels := make([]string, 0, len(colors))
	for i, c := range colors {
		blocks = append(blocks, cell.Background(lipgloss.Color(c)).Render(" "))
		labels = append(labels, cell.Render(fmt.Sprintf("%d", i+1)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labels...))
	b.WriteString("\n\nSemantic colors\n")

	bg := ""
	for _, c := range ts.Semantic() {
		if c.Name == "background" {
			bg = c.Value(a)
		}
	}
	for _, c := range ts.Semantic() {
		sample := lipgloss.NewStyle().Background(lipgloss.Color(c.Value(a))).Render("    ")
		line := fmt.Sprintf("%s %-12s %s  %s", sample, c.Label, c.Value(a), c.Description)
		if c.Name != "background" && bg != "" {
			if ratio, err := tokens.Contrast(c.Value(a), bg); err == nil {
				line += fmt.Sprintf("  %.1f:1", ratio)
			}
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

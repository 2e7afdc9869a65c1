package theme

import (
	"errors"
	"fmt"

	"github.com/umputun/portfolio/app/enum"
)

// Toggle is the user-facing control advancing the preference through light -> dark -> system.
// It keeps no state of its own; a Toggle over a nil machine renders as loading.
type Toggle struct {
	machine *Machine
}

// ToggleView is what the toggle displays.
type ToggleView struct {
	Loading    bool
	Preference enum.Theme
	Appearance enum.Appearance
	Label      string // e.g. "🌙 Dark"
	Title      string // e.g. "Current: system, Resolved: dark"
}

// NewToggle creates a toggle over m. m may be nil while the machine is still loading.
func NewToggle(m *Machine) Toggle {
	return Toggle{machine: m}
}

// Activate moves the machine to the next preference in the cycle.
func (t Toggle) Activate() error {
	if t.machine == nil {
		return errors.New("theme toggle activated before load")
	}
	return t.machine.SetPreference(t.machine.Preference().Next())
}

// View returns the display state, or a loading placeholder when no machine is attached.
func (t Toggle) View() ToggleView {
	if t.machine == nil {
		return ToggleView{Loading: true, Label: "Loading..."}
	}
	pref, resolved := t.machine.Preference(), t.machine.Settled()
	return ToggleView{
		Preference: pref,
		Appearance: resolved,
		Label:      pref.Label(),
		Title:      fmt.Sprintf("Current: %s, Resolved: %s", pref, resolved),
	}
}

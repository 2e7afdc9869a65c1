package theme

import (
	"errors"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ErrSchemeUnavailable is returned by scheme sources that have no signal to report.
var ErrSchemeUnavailable = errors.New("color scheme unavailable")

// StaticScheme is a scheme source holding the last reported value.
// The zero value reports ErrSchemeUnavailable until Set is called.
type StaticScheme struct {
	dark  bool
	known bool
}

// NewStaticScheme creates a source already holding the given value.
func NewStaticScheme(dark bool) *StaticScheme {
	return &StaticScheme{dark: dark, known: true}
}

// ParseClientHint creates a source from a Sec-CH-Prefers-Color-Scheme header value.
// Anything but "dark" or "light" leaves the source unknown.
func ParseClientHint(v string) *StaticScheme {
	switch strings.Trim(strings.ToLower(strings.TrimSpace(v)), `"`) {
	case "dark":
		return NewStaticScheme(true)
	case "light":
		return NewStaticScheme(false)
	default:
		return &StaticScheme{}
	}
}

// Set records a reported scheme.
func (s *StaticScheme) Set(dark bool) {
	s.dark, s.known = dark, true
}

// Known reports whether any value was reported.
func (s *StaticScheme) Known() bool {
	return s.known
}

// PrefersDark returns the last reported value.
func (s *StaticScheme) PrefersDark() (bool, error) {
	if !s.known {
		return false, ErrSchemeUnavailable
	}
	return s.dark, nil
}

// TerminalScheme asks the terminal whether its background is dark.
type TerminalScheme struct {
	file   *os.File
	output *termenv.Output
}

// NewTerminalScheme creates a source probing the terminal attached to f.
func NewTerminalScheme(f *os.File) *TerminalScheme {
	return &TerminalScheme{file: f, output: termenv.NewOutput(f)}
}

// PrefersDark queries the terminal background. Non-terminal outputs are unavailable.
func (s *TerminalScheme) PrefersDark() (bool, error) {
	if s.file == nil || !term.IsTerminal(int(s.file.Fd())) {
		return false, ErrSchemeUnavailable
	}
	return s.output.HasDarkBackground(), nil
}

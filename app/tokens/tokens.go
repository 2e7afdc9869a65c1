// Package tokens loads the design-token export and compiles it into CSS custom properties.
package tokens

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/umputun/portfolio/app/enum"
)

// NeutralSteps is the number of steps in the neutral color scale.
const NeutralSteps = 12

// MinTextContrast is the minimal WCAG AA contrast of foreground on background.
const MinTextContrast = 4.5

// MaxSpacingSteps caps the spacing grid, steps 0x..MaxSpacingSteps.
const MaxSpacingSteps = 100

var (
	reName     = regexp.MustCompile(`^[a-z0-9-]+$`)        // css class and custom property names
	reVariable = regexp.MustCompile(`^--[a-z0-9-]+$`)      // font custom properties
	reFallback = regexp.MustCompile(`^-?[a-zA-Z][a-zA-Z0-9-]*$`)
	reWeight   = regexp.MustCompile(`^[0-9]{1,4}( [0-9]{1,4})?$`) // single weight or a variable range
)

var fontDisplays = []string{"auto", "block", "swap", "fallback", "optional"}

//go:embed default.yaml
var defaultTokens []byte

// Set is a complete design-token export.
type Set struct {
	Name       string      `yaml:"name"`
	Colors     Colors      `yaml:"colors"`
	Spacing    Spacing     `yaml:"spacing"`
	Typography []TypeStyle `yaml:"typography"`
	Fonts      []Font      `yaml:"fonts"`
}

// Colors holds the neutral scale and the semantic roles.
type Colors struct {
	Neutral  Scale           `yaml:"neutral"`
	Semantic []SemanticColor `yaml:"semantic"`
}

// Scale is a color ramp with light and dark variants of each step.
type Scale struct {
	Light []string `yaml:"light"`
	Dark  []string `yaml:"dark"`
}

// SemanticColor is a named color role with per-appearance values.
type SemanticColor struct {
	Name        string `yaml:"name"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Light       string `yaml:"light"`
	Dark        string `yaml:"dark"`
}

// Spacing is the spacing grid, steps 0x..Max x Base pixels.
type Spacing struct {
	Base int `yaml:"base"`
	Max  int `yaml:"max"`
}

// SpacingStep is one step of the spacing grid.
type SpacingStep struct {
	Name string // e.g. "spacing-4x"
	Px   int
}

// TypeStyle is a typography utility, e.g. heading-1 or paragraph-small.
type TypeStyle struct {
	Name          string  `yaml:"name"`
	Size          float64 `yaml:"size"`
	LineHeight    float64 `yaml:"line_height"`
	Weight        int     `yaml:"weight"`
	LetterSpacing float64 `yaml:"letter_spacing"`
}

// Font is a locally hosted font exposed through a CSS variable.
type Font struct {
	Family   string   `yaml:"family"`
	Variable string   `yaml:"variable"`
	Src      string   `yaml:"src"`
	Display  string   `yaml:"display"`
	Weight   string   `yaml:"weight"`
	Fallback []string `yaml:"fallback"`
}

// Default returns the embedded token set.
func Default() (*Set, error) {
	return Parse(defaultTokens)
}

// Load reads a token set from a YAML file, or the embedded default for an empty path.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from cli options
	if err != nil {
		return nil, fmt.Errorf("failed to read tokens %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML token set.
func Parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse tokens: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tokens: %w", err)
	}
	return &s, nil
}

// Validate checks the scale sizes, color values, grid and text contrast.
func (s *Set) Validate() error {
	if len(s.Colors.Neutral.Light) != NeutralSteps || len(s.Colors.Neutral.Dark) != NeutralSteps {
		return fmt.Errorf("neutral scale needs %d light and dark steps, got %d and %d",
			NeutralSteps, len(s.Colors.Neutral.Light), len(s.Colors.Neutral.Dark))
	}
	for i := range NeutralSteps {
		if err := checkHex(s.Colors.Neutral.Light[i], s.Colors.Neutral.Dark[i]); err != nil {
			return fmt.Errorf("neutral-%d: %w", i+1, err)
		}
	}

	seen := map[string]bool{}
	for _, c := range s.Colors.Semantic {
		if c.Name == "" {
			return errors.New("semantic color without name")
		}
		if !reName.MatchString(c.Name) {
			return fmt.Errorf("invalid semantic color name %q", c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate semantic color %q", c.Name)
		}
		seen[c.Name] = true
		if err := checkHex(c.Light, c.Dark); err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
	}

	if s.Spacing.Base <= 0 || s.Spacing.Max < 0 || s.Spacing.Max > MaxSpacingSteps {
		return fmt.Errorf("invalid spacing grid base=%d, max=%d, max is limited to %d",
			s.Spacing.Base, s.Spacing.Max, MaxSpacingSteps)
	}

	for _, ts := range s.Typography {
		if !reName.MatchString(ts.Name) || ts.Size <= 0 {
			return fmt.Errorf("invalid typography style %q", ts.Name)
		}
	}

	for _, f := range s.Fonts {
		if err := f.validate(); err != nil {
			return err
		}
	}

	return s.checkContrast()
}

func (f Font) validate() error {
	if f.Family == "" || strings.ContainsAny(f.Family, "\\\"\n") || !reVariable.MatchString(f.Variable) {
		return fmt.Errorf("invalid font %q, variable %q", f.Family, f.Variable)
	}
	if f.Weight != "" && !reWeight.MatchString(f.Weight) {
		return fmt.Errorf("invalid font %q weight %q", f.Family, f.Weight)
	}
	if f.Display != "" && !slices.Contains(fontDisplays, f.Display) {
		return fmt.Errorf("invalid font %q display %q", f.Family, f.Display)
	}
	for _, fb := range f.Fallback {
		if !reFallback.MatchString(fb) {
			return fmt.Errorf("invalid font %q fallback %q", f.Family, fb)
		}
	}
	return nil
}

// checkContrast verifies foreground on background in both appearances, if both roles exist.
func (s *Set) checkContrast() error {
	bg, okBg := s.semantic("background")
	fg, okFg := s.semantic("foreground")
	if !okBg || !okFg {
		return nil
	}
	for _, a := range enum.AppearanceValues {
		ratio, err := Contrast(fg.Value(a), bg.Value(a))
		if err != nil {
			return err
		}
		if ratio < MinTextContrast {
			return fmt.Errorf("%s foreground/background contrast %.2f is below %.1f", a, ratio, MinTextContrast)
		}
	}
	return nil
}

// Neutral returns the neutral scale for the appearance.
func (s *Set) Neutral(a enum.Appearance) []string {
	if a.IsDark() {
		return s.Colors.Neutral.Dark
	}
	return s.Colors.Neutral.Light
}

// Semantic returns the semantic colors in declaration order.
func (s *Set) Semantic() []SemanticColor {
	return s.Colors.Semantic
}

// SpacingSteps returns the spacing grid from 0x to Max.
func (s *Set) SpacingSteps() []SpacingStep {
	res := make([]SpacingStep, 0, s.Spacing.Max+1)
	for i := 0; i <= s.Spacing.Max; i++ {
		res = append(res, SpacingStep{Name: "spacing-" + strconv.Itoa(i) + "x", Px: i * s.Spacing.Base})
	}
	return res
}

func (s *Set) semantic(name string) (SemanticColor, bool) {
	for _, c := range s.Colors.Semantic {
		if c.Name == name {
			return c, true
		}
	}
	return SemanticColor{}, false
}

// Value returns the color for the appearance.
func (c SemanticColor) Value(a enum.Appearance) string {
	if a.IsDark() {
		return c.Dark
	}
	return c.Light
}

// Contrast returns the WCAG contrast ratio between two hex colors.
func Contrast(a, b string) (float64, error) {
	ca, err := colorful.Hex(a)
	if err != nil {
		return 0, fmt.Errorf("bad color %q: %w", a, err)
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return 0, fmt.Errorf("bad color %q: %w", b, err)
	}
	la, lb := luminance(ca), luminance(cb)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func checkHex(values ...string) error {
	for _, v := range values {
		if _, err := colorful.Hex(v); err != nil {
			return fmt.Errorf("bad color %q: %w", v, err)
		}
	}
	return nil
}

// HeadingLevel returns N for a heading-N style.
func (t TypeStyle) HeadingLevel() (int, bool) {
	rest, ok := strings.CutPrefix(t.Name, "heading-")
	if !ok {
		return 0, false
	}
	level, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return level, true
}

// Variant returns the text variant of a paragraph-* style, e.g. "bold".
func (t TypeStyle) Variant() (string, bool) {
	return strings.CutPrefix(t.Name, "paragraph-")
}

// Title returns a display name, "heading-2" becomes "Heading 2", "paragraph-bold" becomes "Paragraph Bold".
func (t TypeStyle) Title() string {
	words := strings.Split(t.Name, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Metrics returns the metrics caption, e.g. "48px / 55.2px / 600 / -2.4px letter-spacing".
func (t TypeStyle) Metrics() string {
	parts := []string{px(t.Size)}
	if t.LineHeight > 0 {
		parts = append(parts, px(t.LineHeight))
	}
	if t.Weight > 0 {
		parts = append(parts, strconv.Itoa(t.Weight))
	}
	if t.LetterSpacing != 0 {
		parts = append(parts, px(t.LetterSpacing)+" letter-spacing")
	}
	return strings.Join(parts, " / ")
}

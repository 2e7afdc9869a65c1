package tokens

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/umputun/portfolio/app/enum"
)

//go:embed tokens.css.tmpl
var cssTemplate string

var cssTmpl = template.Must(template.New("tokens.css").
	Funcs(template.FuncMap{"quote": strconv.Quote, "px": px}).
	Parse(cssTemplate))

// cssView is the data of the stylesheet template.
type cssView struct {
	Fonts       []fontFace
	Light, Dark []cssVar
	Spacing     []SpacingStep
	DarkClass   string
	Family      string // variable of the text face, empty without fonts
	Typography  []TypeStyle
}

// fontFace is a font with its resolved source URL.
type fontFace struct {
	Font
	URL string
}

type cssVar struct{ Name, Value string }

// CSS compiles the set into a stylesheet: font faces, light values and the grid on :root,
// dark overrides under the dark marker class, and the typography utility classes.
// fontsURL is the URL prefix font sources are resolved against, e.g. "/fonts/".
// Names are checked by Validate, the template writes them as is.
func (s *Set) CSS(fontsURL string) (string, error) {
	view := cssView{
		Light:      s.colorVars(enum.AppearanceLight),
		Dark:       s.colorVars(enum.AppearanceDark),
		Spacing:    s.SpacingSteps(),
		DarkClass:  enum.DarkClass,
		Family:     s.sansVariable(),
		Typography: s.Typography,
	}
	for _, f := range s.Fonts {
		view.Fonts = append(view.Fonts, fontFace{Font: f, URL: fontsURL + f.Src})
	}

	var buf bytes.Buffer
	if err := cssTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render tokens css: %w", err)
	}
	return buf.String(), nil
}

func (s *Set) colorVars(a enum.Appearance) []cssVar {
	res := make([]cssVar, 0, NeutralSteps+len(s.Colors.Semantic))
	for i, c := range s.Neutral(a) {
		res = append(res, cssVar{Name: "neutral-" + strconv.Itoa(i+1), Value: c})
	}
	for _, c := range s.Colors.Semantic {
		res = append(res, cssVar{Name: c.Name, Value: c.Value(a)})
	}
	return res
}

// sansVariable returns the variable of the first font, the text face.
func (s *Set) sansVariable() string {
	if len(s.Fonts) == 0 {
		return ""
	}
	return s.Fonts[0].Variable
}

// Stack returns the font-family stack, the family followed by its fallbacks.
func (f Font) Stack() string {
	parts := make([]string, 0, len(f.Fallback)+1)
	parts = append(parts, strconv.Quote(f.Family))
	parts = append(parts, f.Fallback...)
	return strings.Join(parts, ", ")
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

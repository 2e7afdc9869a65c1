package web

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/umputun/portfolio/app/enum"
)

// codeStyles are the chroma styles per appearance. Both are emitted by CodeCSS, the dark one
// scoped under the dark root class, so a toggle needs no re-render of the snippets.
var codeStyles = map[enum.Appearance]string{
	enum.AppearanceLight: "github",
	enum.AppearanceDark:  "github-dark",
}

// snippetLexers maps snippet languages to chroma lexer names.
var snippetLexers = map[string]string{
	"yaml":  "YAML",
	"shell": "Bash",
	"html":  "HTML",
	"go":    "Go",
	"css":   "CSS",
}

func newFormatter() *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.PreventSurroundingPre(false),
		chromahtml.WithLineNumbers(false),
	)
}

func plain(code string) template.HTML {
	return template.HTML("<pre>" + html.EscapeString(code) + "</pre>") //nolint:gosec // escaped
}

// code highlights a demo snippet. Unknown languages and lexer failures render as escaped text.
func code(lang, src string) template.HTML {
	name, ok := snippetLexers[lang]
	if !ok {
		return plain(src)
	}
	lexer := lexers.Get(name)
	if lexer == nil {
		return plain(src)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return plain(src)
	}

	// classes only, colors come from CodeCSS
	var buf bytes.Buffer
	if err := newFormatter().Format(&buf, styles.Fallback, iterator); err != nil {
		return plain(src)
	}
	return template.HTML(buf.String()) //nolint:gosec // chroma output is safe
}

// CodeCSS returns the snippet colors for both appearances.
func CodeCSS() (string, error) {
	var out strings.Builder
	for _, a := range enum.AppearanceValues {
		style := styles.Get(codeStyles[a])
		if style == nil {
			style = styles.Fallback
		}
		var buf bytes.Buffer
		if err := newFormatter().WriteCSS(&buf, style); err != nil {
			return "", err
		}
		css := buf.String()
		if a.IsDark() {
			css = scopeCSS(css, "."+enum.DarkClass)
		}
		out.WriteString(css)
	}
	return out.String(), nil
}

// scopeCSS prefixes every chroma selector with scope.
func scopeCSS(css, scope string) string {
	css = strings.ReplaceAll(css, ".chroma", scope+" .chroma")
	return strings.ReplaceAll(css, "*/ .bg ", "*/ "+scope+" .bg ")
}

package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/portfolio/app/server/internal"
	"github.com/umputun/portfolio/app/theme"
)

// handleIndex renders the design system demo page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := h.newSession(w, r)

	// ask the browser to send the OS color scheme on the next requests
	w.Header().Set("Accept-CH", internal.SchemeHintHeader)
	w.Header().Add("Vary", internal.SchemeHintHeader)
	w.Header().Add("Vary", "Cookie")

	data := h.pageData(sess)
	data.Title = "Design System Test"
	h.render(w, "base.html", data)
}

// handleThemeGet renders the theme toggle.
func (h *Handler) handleThemeGet(w http.ResponseWriter, r *http.Request) {
	sess := h.newSession(w, r)
	h.render(w, "toggle", h.toggleData(sess))
}

// handleThemeToggle advances the preference light -> dark -> system -> light.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	sess := h.newSession(w, r)
	if err := theme.NewToggle(sess.machine).Activate(); err != nil {
		log.Printf("[ERROR] failed to toggle theme: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	sess.trigger(w)
	h.render(w, "toggle", h.toggleData(sess))
}

// handleThemeSet sets an explicit preference from the "theme" form field.
func (h *Handler) handleThemeSet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sess := h.newSession(w, r)
	if err := sess.machine.SetPreferenceName(r.FormValue("theme")); err != nil {
		if errors.Is(err, theme.ErrInvalidPreference) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("[ERROR] failed to set theme: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	sess.trigger(w)
	h.render(w, "toggle", h.toggleData(sess))
}

// handleSchemeReport receives the browser's prefers-color-scheme, on load and on every OS switch.
// The stored preference is not written.
func (h *Handler) handleSchemeReport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	dark, err := strconv.ParseBool(r.FormValue("dark"))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid dark value %q", r.FormValue("dark")), http.StatusBadRequest)
		return
	}

	sess := h.newSession(w, r)
	sess.scheme.Set(dark)
	internal.SetSchemeCookie(w, h.cookiePath(), dark)
	sess.machine.SchemeChanged()
	sess.trigger(w)
	h.render(w, "toggle", h.toggleData(sess))
}

// toggleData is the data of the toggle partial.
func (h *Handler) toggleData(sess *session) templateData {
	return templateData{
		BaseURL:    h.baseURL,
		RootClass:  sess.root.String(),
		Toggle:     sess.toggle(),
		Appearance: sess.machine.Settled(),
	}
}

// pageData collects the token samples shown on the demo page.
func (h *Handler) pageData(sess *session) templateData {
	data := h.toggleData(sess)
	if h.tokens == nil {
		return data
	}

	for i, v := range h.tokens.Neutral(data.Appearance) {
		data.Neutral = append(data.Neutral, swatch{Step: i + 1, Value: v})
	}
	data.Semantic = h.tokens.Semantic()

	samples := map[string]string{
		"heading-1":         "The Quick Brown Fox Jumps",
		"heading-2":         "The Quick Brown Fox Jumps Over",
		"heading-3":         "The Quick Brown Fox Jumps Over the Lazy Dog",
		"heading-4":         "The Quick Brown Fox Jumps Over the Lazy Dog",
		"paragraph-regular": "The quick brown fox jumps over the lazy dog. This is the default body text style, used for most content throughout the portfolio.",
		"paragraph-bold":    "The quick brown fox jumps over the lazy dog. This is the bold variant of body text, used for emphasis and important callouts.",
		"paragraph-small":   "The quick brown fox jumps over the lazy dog. This is the small text variant, for captions, metadata and timestamps.",
	}
	for _, ts := range h.tokens.Typography {
		sample := typeSample{Label: ts.Title(), Metrics: ts.Metrics(), Text: samples[ts.Name]}
		if level, ok := ts.HeadingLevel(); ok {
			sample.Level = level
			data.Headings = append(data.Headings, sample)
			continue
		}
		if variant, ok := ts.Variant(); ok {
			sample.Variant = variant
			data.Body = append(data.Body, sample)
		}
	}

	steps := h.tokens.SpacingSteps()
	if len(steps) > 1 {
		data.Spacing = fmt.Sprintf("%dpx increments (0x → %dx)", steps[1].Px, len(steps)-1)
	}
	if len(h.tokens.Fonts) > 0 {
		data.FontFamily = h.tokens.Fonts[0].Family
	}
	data.Snippets = h.snippets()
	return data
}

// snippets are the usage examples: the markup of the atoms, the theme api and the token source.
func (h *Handler) snippets() []snippet {
	return []snippet{
		{Title: "Markup", Lang: "html", Code: `<h2 class="heading-2">Color System</h2>
<p class="paragraph-small text-muted">Case Study</p>`},
		{Title: "Theme API", Lang: "shell", Code: fmt.Sprintf(`curl -b cookies -c cookies %[1]s/api/theme
curl -b cookies -c cookies -X PUT -d '{"theme":"dark"}' %[1]s/api/theme
curl -b cookies -c cookies -X POST %[1]s/api/theme/cycle`, "http://localhost:8080"+h.baseURL)},
		{Title: "Design Tokens", Lang: "yaml", Code: `colors:
  semantic:
    - name: foreground
      label: Foreground
      light: "#202020"
      dark: "#eeeeee"
spacing:
  base: 4
  max: 40`},
	}
}

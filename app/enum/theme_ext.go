package enum

// Next returns the next theme in the toggle cycle: light -> dark -> system -> light.
func (t Theme) Next() Theme {
	return ThemeValues[(t.Index()+1)%len(ThemeValues)]
}

// Valid reports whether t is one of the declared themes. The zero Theme is not valid.
func (t Theme) Valid() bool {
	for _, v := range ThemeValues {
		if v == t {
			return true
		}
	}
	return false
}

// Label returns the human-readable toggle label for the theme.
func (t Theme) Label() string {
	switch t {
	case ThemeLight:
		return "☀️ Light"
	case ThemeDark:
		return "🌙 Dark"
	default:
		return "⚙️ System"
	}
}

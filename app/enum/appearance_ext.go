package enum

// DarkClass is the marker class present on the document root while the dark appearance is applied.
const DarkClass = "dark"

// IsDark reports whether the appearance is dark.
func (a Appearance) IsDark() bool {
	return a == AppearanceDark
}

// AppearanceOf maps a dark flag to an appearance.
func AppearanceOf(dark bool) Appearance {
	if dark {
		return AppearanceDark
	}
	return AppearanceLight
}

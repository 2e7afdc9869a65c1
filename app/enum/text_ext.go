package enum

// Class returns the typography utility class for the variant, e.g. "paragraph-bold".
func (v TextVariant) Class() string {
	if v.name == "" {
		return "paragraph-" + TextVariantRegular.name
	}
	return "paragraph-" + v.name
}

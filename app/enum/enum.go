package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeLight theme = iota
	themeDark
	themeSystem
)

//go:generate go run github.com/go-pkgz/enum@latest -type appearance -lower
type appearance int

const (
	appearanceLight appearance = iota
	appearanceDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type textVariant -lower
type textVariant int

const (
	textVariantRegular textVariant = iota
	textVariantBold
	textVariantSmall
)

//go:generate go run github.com/go-pkgz/enum@latest -type textTag -lower
type textTag int

const (
	textTagP textTag = iota
	textTagSpan
	textTagDiv
	textTagLabel
)

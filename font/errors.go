package font

import "errors"

// Sentinel errors for font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrFontNotFound is returned by Named for a name that is not bundled.
	ErrFontNotFound = errors.New("font: font not found")
)

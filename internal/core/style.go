package core

// Style is a set of display attributes for a screen cell.
// Renderers map these flags onto terminal attributes.
type Style uint8

// Style flags. StyleNormal is the zero value.
const (
	StyleNormal Style = 0
	StyleDim    Style = 1
	StyleBold   Style = 2
)

// Has reports whether all flags in f are set.
func (s Style) Has(f Style) bool {
	return s&f == f && f != 0
}

// String returns a human-readable name for the style.
func (s Style) String() string {
	switch {
	case s == StyleNormal:
		return "normal"
	case s.Has(StyleDim | StyleBold):
		return "dim+bold"
	case s.Has(StyleDim):
		return "dim"
	case s.Has(StyleBold):
		return "bold"
	default:
		return "unknown"
	}
}

package analysis

import "unicode"

// SoftHyphen is U+00AD SOFT HYPHEN.
const SoftHyphen = '\u00ad'

const (
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
)

// IsControl reports whether r is laid out as a control character with no
// visible glyph: C0 and C1 controls plus the line and paragraph separators.
func IsControl(r rune) bool {
	return unicode.IsControl(r) || r == lineSeparator || r == paragraphSeparator
}

// IsNewline reports whether r ends a line on its own: LF, VT, FF, CR, NEL,
// LINE SEPARATOR or PARAGRAPH SEPARATOR.
func IsNewline(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', lineSeparator, paragraphSeparator:
		return true
	}
	return false
}

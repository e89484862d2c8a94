package fonts

import (
	"strconv"

	"github.com/go-text/typesetting/font"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Weight is the font weight on the 1..999 scale.
type Weight int

// Named weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightSemiLight  Weight = 350
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
	WeightExtraBlack Weight = 950
)

// Valid reports whether w lies in 1..999.
func (w Weight) Valid() bool { return w >= 1 && w <= 999 }

// String returns the weight name, or its number for unnamed weights.
func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "Thin"
	case WeightExtraLight:
		return "ExtraLight"
	case WeightLight:
		return "Light"
	case WeightSemiLight:
		return "SemiLight"
	case WeightNormal:
		return "Normal"
	case WeightMedium:
		return "Medium"
	case WeightSemiBold:
		return "SemiBold"
	case WeightBold:
		return "Bold"
	case WeightExtraBold:
		return "ExtraBold"
	case WeightBlack:
		return "Black"
	case WeightExtraBlack:
		return "ExtraBlack"
	default:
		return strconv.Itoa(int(w))
	}
}

// Style is the slant of a font.
type Style int

const (
	// StyleNormal is upright.
	StyleNormal Style = iota
	// StyleOblique is a slanted version of the upright design.
	StyleOblique
	// StyleItalic is a dedicated italic design.
	StyleItalic
)

// Valid reports whether s is a known style.
func (s Style) Valid() bool { return s >= StyleNormal && s <= StyleItalic }

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleOblique:
		return "Oblique"
	case StyleItalic:
		return "Italic"
	default:
		return unknownStr
	}
}

// Stretch is the font width class, 1 (ultra condensed) to 9 (ultra
// expanded). StretchUndefined is not a valid request.
type Stretch int

const (
	StretchUndefined Stretch = iota
	StretchUltraCondensed
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchNormal
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

// Valid reports whether s lies in 1..9.
func (s Stretch) Valid() bool { return s >= StretchUltraCondensed && s <= StretchUltraExpanded }

var stretchNames = [...]string{
	StretchUndefined:      "Undefined",
	StretchUltraCondensed: "UltraCondensed",
	StretchExtraCondensed: "ExtraCondensed",
	StretchCondensed:      "Condensed",
	StretchSemiCondensed:  "SemiCondensed",
	StretchNormal:         "Normal",
	StretchSemiExpanded:   "SemiExpanded",
	StretchExpanded:       "Expanded",
	StretchExtraExpanded:  "ExtraExpanded",
	StretchUltraExpanded:  "UltraExpanded",
}

// String returns the string representation of the stretch.
func (s Stretch) String() string {
	if s >= 0 && int(s) < len(stretchNames) {
		return stretchNames[s]
	}
	return unknownStr
}

var stretchFactors = [...]font.Stretch{
	StretchUltraCondensed: font.StretchUltraCondensed,
	StretchExtraCondensed: font.StretchExtraCondensed,
	StretchCondensed:      font.StretchCondensed,
	StretchSemiCondensed:  font.StretchSemiCondensed,
	StretchNormal:         font.StretchNormal,
	StretchSemiExpanded:   font.StretchSemiExpanded,
	StretchExpanded:       font.StretchExpanded,
	StretchExtraExpanded:  font.StretchExtraExpanded,
	StretchUltraExpanded:  font.StretchUltraExpanded,
}

// toAspect converts font properties to a go-text aspect. Invalid values
// map to the go-text defaults.
func toAspect(weight Weight, stretch Stretch, style Style) font.Aspect {
	var a font.Aspect
	if weight.Valid() {
		a.Weight = font.Weight(weight)
	}
	if stretch.Valid() {
		a.Stretch = stretchFactors[stretch]
	}
	switch style {
	case StyleNormal:
		a.Style = font.StyleNormal
	case StyleOblique, StyleItalic:
		a.Style = font.StyleItalic
	}
	a.SetDefaults()
	return a
}

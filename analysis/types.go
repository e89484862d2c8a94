package analysis

import "github.com/go-text/typesetting/language"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// BreakCondition is the line break condition on one side of a character.
type BreakCondition uint8

const (
	// BreakNeutral leaves the decision to the adjacent character.
	BreakNeutral BreakCondition = iota
	// BreakCanBreak allows a line break.
	BreakCanBreak
	// BreakMayNotBreak forbids a line break.
	BreakMayNotBreak
	// BreakMustBreak forces a line break.
	BreakMustBreak
)

// String returns the string representation of the break condition.
func (c BreakCondition) String() string {
	switch c {
	case BreakNeutral:
		return "Neutral"
	case BreakCanBreak:
		return "CanBreak"
	case BreakMayNotBreak:
		return "MayNotBreak"
	case BreakMustBreak:
		return "MustBreak"
	default:
		return unknownStr
	}
}

// Override combines an existing condition with a new one. Neutral yields to
// anything, CanBreak yields to anything but Neutral, and MayNotBreak and
// MustBreak are kept.
func (c BreakCondition) Override(next BreakCondition) BreakCondition {
	switch c {
	case BreakNeutral:
		return next
	case BreakCanBreak:
		if next == BreakNeutral {
			return c
		}
		return next
	default:
		return c
	}
}

// AllowsBreak reports whether the condition permits wrapping the line.
func (c BreakCondition) AllowsBreak() bool {
	return c == BreakCanBreak || c == BreakMustBreak
}

// Breakpoint holds the break conditions around one character.
type Breakpoint struct {
	Before       BreakCondition
	After        BreakCondition
	IsWhitespace bool
	IsSoftHyphen bool
}

// Shapes tells the shaper whether a script run produces visible glyphs.
type Shapes uint8

const (
	// ShapesDefault is a run with visible glyphs.
	ShapesDefault Shapes = iota
	// ShapesNoVisual is a run of control characters. Such runs are shaped
	// but report no glyphs.
	ShapesNoVisual
)

// String returns the string representation of the shapes value.
func (s Shapes) String() string {
	switch s {
	case ShapesDefault:
		return "Default"
	case ShapesNoVisual:
		return "NoVisual"
	default:
		return unknownStr
	}
}

// ScriptAnalysis identifies the writing system of a run.
type ScriptAnalysis struct {
	Script language.Script
	Shapes Shapes
}

// Source supplies the text being analyzed.
type Source interface {
	// Text returns the whole text. Positions are indices into it.
	Text() []rune
	// ParagraphRTL reports whether the paragraph reads right to left.
	ParagraphRTL() bool
	// LocaleName returns the locale at pos.
	LocaleName(pos int) string
}

// Sink receives analysis results.
type Sink interface {
	SetScriptAnalysis(pos, length int, sa ScriptAnalysis) error
	SetBidiLevel(pos, length int, explicit, resolved uint8) error
	SetLineBreakpoints(pos int, bps []Breakpoint) error
}

// Analyzer runs the three analyses over [pos, pos+length) of a Source.
type Analyzer interface {
	AnalyzeScript(src Source, pos, length int, sink Sink) error
	AnalyzeBidi(src Source, pos, length int, sink Sink) error
	AnalyzeLineBreakpoints(src Source, pos, length int, sink Sink) error
}

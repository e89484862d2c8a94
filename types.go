package textlayout

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// TextRange is a [Start, Start+Length) range of runes.
type TextRange struct {
	Start  int
	Length int
}

// End returns the exclusive end of the range.
func (r TextRange) End() int { return r.Start + r.Length }

// TextAlignment positions lines horizontally within the layout width.
type TextAlignment int

const (
	// AlignLeading aligns lines to the reading direction start edge.
	AlignLeading TextAlignment = iota
	// AlignTrailing aligns lines to the reading direction end edge.
	AlignTrailing
	// AlignCenter centers lines.
	AlignCenter
	// AlignJustified stretches whitespace so lines fill the layout width.
	// The last line of each paragraph stays leading aligned.
	AlignJustified
)

// String returns the string representation of the alignment.
func (a TextAlignment) String() string {
	switch a {
	case AlignLeading:
		return "Leading"
	case AlignTrailing:
		return "Trailing"
	case AlignCenter:
		return "Center"
	case AlignJustified:
		return "Justified"
	default:
		return unknownStr
	}
}

func (a TextAlignment) valid() bool { return a >= AlignLeading && a <= AlignJustified }

// ParagraphAlignment positions the text block vertically within the layout
// height.
type ParagraphAlignment int

const (
	// ParagraphNear places the first line at the top.
	ParagraphNear ParagraphAlignment = iota
	// ParagraphFar places the last line at the bottom.
	ParagraphFar
	// ParagraphCenter centers the block.
	ParagraphCenter
)

// String returns the string representation of the alignment.
func (a ParagraphAlignment) String() string {
	switch a {
	case ParagraphNear:
		return "Near"
	case ParagraphFar:
		return "Far"
	case ParagraphCenter:
		return "Center"
	default:
		return unknownStr
	}
}

func (a ParagraphAlignment) valid() bool { return a >= ParagraphNear && a <= ParagraphCenter }

// ReadingDirection is the direction characters progress within a line.
type ReadingDirection int

const (
	ReadingLeftToRight ReadingDirection = iota
	ReadingRightToLeft
	ReadingTopToBottom
	ReadingBottomToTop
)

// String returns the string representation of the direction.
func (d ReadingDirection) String() string {
	switch d {
	case ReadingLeftToRight:
		return "LeftToRight"
	case ReadingRightToLeft:
		return "RightToLeft"
	case ReadingTopToBottom:
		return "TopToBottom"
	case ReadingBottomToTop:
		return "BottomToTop"
	default:
		return unknownStr
	}
}

func (d ReadingDirection) valid() bool { return d >= ReadingLeftToRight && d <= ReadingBottomToTop }

// IsVertical reports whether the direction is top-to-bottom or
// bottom-to-top.
func (d ReadingDirection) IsVertical() bool {
	return d == ReadingTopToBottom || d == ReadingBottomToTop
}

// FlowDirection is the direction lines progress.
type FlowDirection int

const (
	FlowTopToBottom FlowDirection = iota
	FlowBottomToTop
	FlowLeftToRight
	FlowRightToLeft
)

// String returns the string representation of the direction.
func (d FlowDirection) String() string {
	switch d {
	case FlowTopToBottom:
		return "TopToBottom"
	case FlowBottomToTop:
		return "BottomToTop"
	case FlowLeftToRight:
		return "LeftToRight"
	case FlowRightToLeft:
		return "RightToLeft"
	default:
		return unknownStr
	}
}

func (d FlowDirection) valid() bool { return d >= FlowTopToBottom && d <= FlowRightToLeft }

// IsVertical reports whether lines stack vertically.
func (d FlowDirection) IsVertical() bool {
	return d == FlowTopToBottom || d == FlowBottomToTop
}

// conflicts reports whether flow and reading run along the same axis.
func conflicts(r ReadingDirection, f FlowDirection) bool {
	return r.IsVertical() == f.IsVertical()
}

// WordWrapping controls how lines break when they overflow.
type WordWrapping int

const (
	// WrapWrap breaks at word boundaries, or inside a word that does not
	// fit alone.
	WrapWrap WordWrapping = iota
	// WrapNoWrap keeps each paragraph on one line.
	WrapNoWrap
	// WrapEmergencyBreak behaves like WrapWrap.
	WrapEmergencyBreak
	// WrapWholeWord never breaks inside a word.
	WrapWholeWord
	// WrapCharacter breaks between any two clusters.
	WrapCharacter
)

// String returns the string representation of the mode.
func (w WordWrapping) String() string {
	switch w {
	case WrapWrap:
		return "Wrap"
	case WrapNoWrap:
		return "NoWrap"
	case WrapEmergencyBreak:
		return "EmergencyBreak"
	case WrapWholeWord:
		return "WholeWord"
	case WrapCharacter:
		return "Character"
	default:
		return unknownStr
	}
}

func (w WordWrapping) valid() bool { return w >= WrapWrap && w <= WrapCharacter }

// LineSpacingMethod selects how line height is determined.
type LineSpacingMethod int

const (
	// LineSpacingDefault derives line height from content.
	LineSpacingDefault LineSpacingMethod = iota
	// LineSpacingUniform uses LineSpacing.Height and LineSpacing.Baseline
	// for every line.
	LineSpacingUniform
)

// String returns the string representation of the method.
func (m LineSpacingMethod) String() string {
	switch m {
	case LineSpacingDefault:
		return "Default"
	case LineSpacingUniform:
		return "Uniform"
	default:
		return unknownStr
	}
}

// LineSpacing configures line height.
type LineSpacing struct {
	Method   LineSpacingMethod
	Height   float64
	Baseline float64
}

func (s LineSpacing) validate() error {
	if s.Method < LineSpacingDefault || s.Method > LineSpacingUniform {
		return invalidArg("line spacing method %d", s.Method)
	}
	if !(s.Height >= 0) || !(s.Baseline >= 0) {
		return invalidArg("invalid line spacing %v/%v", s.Height, s.Baseline)
	}
	return nil
}

// TrimmingGranularity selects where overflowing text is cut.
type TrimmingGranularity int

const (
	TrimmingNone TrimmingGranularity = iota
	TrimmingCharacter
	TrimmingWord
)

// String returns the string representation of the granularity.
func (g TrimmingGranularity) String() string {
	switch g {
	case TrimmingNone:
		return "None"
	case TrimmingCharacter:
		return "Character"
	case TrimmingWord:
		return "Word"
	default:
		return unknownStr
	}
}

// Trimming describes text trimming. It is stored and reported, not applied.
type Trimming struct {
	Granularity TrimmingGranularity
	Delimiter   rune
	// DelimiterCount is the number of delimiters to keep before the cut.
	DelimiterCount int
	// Sign is drawn at the cut. Nil means no sign.
	Sign InlineObject
}

func (t Trimming) validate() error {
	if t.Granularity < TrimmingNone || t.Granularity > TrimmingWord {
		return invalidArg("trimming granularity %d", t.Granularity)
	}
	if t.DelimiterCount < 0 {
		return invalidArg("negative trimming delimiter count %d", t.DelimiterCount)
	}
	return nil
}

// OpticalAlignment selects side-bearing trimming at line edges.
type OpticalAlignment int

const (
	OpticalAlignmentNone OpticalAlignment = iota
	OpticalAlignmentNoSideBearings
)

// CharacterSpacing adds space around each cluster.
type CharacterSpacing struct {
	Leading    float64
	Trailing   float64
	MinAdvance float64
}

package textlayout

import (
	"github.com/gogpu/textlayout/analysis"
)

// InlineObjectMetrics describes the box of an inline object. Baseline is
// the distance from the top of the box to its baseline.
type InlineObjectMetrics struct {
	Width            float64
	Height           float64
	Baseline         float64
	SupportsSideways bool
}

// InlineObject is an application object that replaces a range of text.
type InlineObject interface {
	// Metrics returns the box of the object. An error leaves the object
	// with zero metrics.
	Metrics() (InlineObjectMetrics, error)
	// BreakConditions returns the conditions on each side of the object.
	// An error is taken as neutral on both sides.
	BreakConditions() (before, after analysis.BreakCondition, err error)
	// Draw renders the object with its baseline origin at originX, originY.
	Draw(r Renderer, originX, originY float64, sideways, rtl bool, effect any) error
}

// ellipsis is the trimming sign text.
const ellipsis = "…"

// TrimmingSign is an inline object that draws an ellipsis in a given
// format.
type TrimmingSign struct {
	layout *TextLayout
}

var _ InlineObject = (*TrimmingSign)(nil)

// NewTrimmingSign returns an ellipsis laid out with format on a single
// line.
func NewTrimmingSign(format *TextFormat, opts ...LayoutOption) (*TrimmingSign, error) {
	if format == nil {
		return nil, invalidArg("nil text format")
	}
	if conflicts(format.ReadingDirection(), format.FlowDirection()) {
		return nil, ErrFlowDirectionConflicts
	}

	l, err := NewTextLayout(ellipsis, format, 0, 0, opts...)
	if err != nil {
		return nil, err
	}
	if err := l.SetWordWrapping(WrapNoWrap); err != nil {
		return nil, err
	}
	return &TrimmingSign{layout: l}, nil
}

// Metrics implements InlineObject.
func (t *TrimmingSign) Metrics() (InlineObjectMetrics, error) {
	m, err := t.layout.Metrics()
	if err != nil {
		return InlineObjectMetrics{}, err
	}
	out := InlineObjectMetrics{
		Width:  m.WidthIncludingTrailingWhitespace,
		Height: m.Height,
	}
	if len(t.layout.lines) > 0 {
		out.Baseline = t.layout.lines[0].Baseline
	}
	return out, nil
}

// BreakConditions implements InlineObject.
func (t *TrimmingSign) BreakConditions() (before, after analysis.BreakCondition, err error) {
	return analysis.BreakNeutral, analysis.BreakNeutral, nil
}

// Draw implements InlineObject.
func (t *TrimmingSign) Draw(r Renderer, originX, originY float64, _, _ bool, effect any) error {
	if err := t.layout.SetDrawingEffect(effect, TextRange{Start: 0, Length: t.layout.Len()}); err != nil {
		return err
	}
	m, err := t.Metrics()
	if err != nil {
		return err
	}
	return t.layout.Draw(r, originX, originY-m.Baseline)
}

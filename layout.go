package textlayout

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/gogpu/textlayout/analysis"
	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/internal/ranges"
	"github.com/gogpu/textlayout/shape"
)

// recompute is a set of stale pipeline stages.
type recompute uint8

const (
	// recomputeNominalRuns reruns segmentation and shaping.
	recomputeNominalRuns recompute = 1 << iota
	// recomputeMinimalWidth reruns DetermineMinWidth.
	recomputeMinimalWidth
	// recomputeEffectiveRuns reruns line breaking and alignment.
	recomputeEffectiveRuns

	recomputeEverything = recomputeNominalRuns | recomputeMinimalWidth | recomputeEffectiveRuns
)

// regularAttrs holds the attributes that affect font resolution and
// shaping.
type regularAttrs struct {
	weight      fonts.Weight
	style       fonts.Style
	stretch     fonts.Stretch
	size        float64
	family      string
	collection  *fonts.Collection
	locale      string
	underline   bool
	pairKerning bool
	object      InlineObject
}

func regularEqual(a, b regularAttrs) bool {
	return a.weight == b.weight &&
		a.style == b.style &&
		a.stretch == b.stretch &&
		a.size == b.size &&
		a.family == b.family &&
		a.collection == b.collection &&
		a.locale == b.locale &&
		a.underline == b.underline &&
		a.pairKerning == b.pairKerning &&
		sameHandle(a.object, b.object)
}

// sameHandle compares caller supplied handles by identity. Values of
// incomparable dynamic types never compare equal.
func sameHandle(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func boolEqual(a, b bool) bool { return a == b }

func spacingEqual(a, b CharacterSpacing) bool { return a == b }

// LayoutOption configures a TextLayout.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	analyzer  analysis.Analyzer
	shaper    shape.Shaper
	cacheSize int
}

// WithAnalyzer replaces the default Unicode analyzer.
func WithAnalyzer(a analysis.Analyzer) LayoutOption {
	return func(c *layoutConfig) {
		c.analyzer = a
	}
}

// WithShaper replaces the default HarfBuzz shaper.
func WithShaper(s shape.Shaper) LayoutOption {
	return func(c *layoutConfig) {
		c.shaper = s
	}
}

// WithShapingCache memoizes up to n shaped runs for this layout. Use
// shape.NewCached with WithShaper to share a cache between layouts.
func WithShapingCache(n int) LayoutOption {
	return func(c *layoutConfig) {
		c.cacheSize = n
	}
}

var (
	defaultAnalyzer = sync.OnceValue(func() analysis.Analyzer { return analysis.New() })
	defaultShaper   = sync.OnceValue(func() shape.Shaper { return shape.NewHarfbuzzShaper() })
)

// TextLayout is a block of formatted text laid out in a box.
//
// Queries compute the layout lazily and cache the result until an attribute
// or property changes. TextLayout is not safe for concurrent use.
type TextLayout struct {
	text   []rune
	format *TextFormat

	regular *ranges.Set[regularAttrs]
	strike  *ranges.Set[bool]
	effects *ranges.Set[any]
	spacing *ranges.Set[CharacterSpacing]

	maxWidth    float64
	maxHeight   float64
	textAlign   TextAlignment
	paraAlign   ParagraphAlignment
	wrapping    WordWrapping
	reading     ReadingDirection
	flow        FlowDirection
	tabStop     float64
	lineSpacing LineSpacing
	trimming    Trimming

	analyzer analysis.Analyzer
	shaper   shape.Shaper

	recompute recompute

	// Nominal stage.
	runs        []*layoutRun
	clusters    []layoutCluster
	breakpoints []analysis.Breakpoint

	minWidth float64

	// Effective stage.
	eruns    []*effectiveRun
	inlines  []*effectiveInline
	strikes  []*effectiveStrike
	lines    []LineMetrics
	lineInfo []lineInfo
	metrics  TextMetrics
}

// NewTextLayout lays text out in a maxWidth by maxHeight box starting from
// the attributes of format.
func NewTextLayout(text string, format *TextFormat, maxWidth, maxHeight float64, opts ...LayoutOption) (*TextLayout, error) {
	if format == nil {
		return nil, invalidArg("nil text format")
	}
	if !(maxWidth >= 0) || !(maxHeight >= 0) {
		return nil, invalidArg("invalid layout size %vx%v", maxWidth, maxHeight)
	}

	var cfg layoutConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.analyzer == nil {
		cfg.analyzer = defaultAnalyzer()
	}
	if cfg.shaper == nil {
		cfg.shaper = defaultShaper()
	}
	if cfg.cacheSize > 0 {
		cfg.shaper = shape.NewCached(cfg.shaper, cfg.cacheSize)
	}

	runes := []rune(text)
	n := len(runes)
	fc := format.cfg

	l := &TextLayout{
		text:   runes,
		format: format,

		regular: ranges.New(n, format.defaultAttrs(), regularEqual),
		strike:  ranges.New(n, false, boolEqual),
		effects: ranges.New[any](n, nil, sameHandle),
		spacing: ranges.New(n, CharacterSpacing{}, spacingEqual),

		maxWidth:    maxWidth,
		maxHeight:   maxHeight,
		textAlign:   fc.textAlign,
		paraAlign:   fc.paraAlign,
		wrapping:    fc.wrapping,
		reading:     fc.reading,
		flow:        fc.flow,
		tabStop:     fc.tabStop,
		lineSpacing: fc.lineSpacing,
		trimming:    fc.trimming,

		analyzer: cfg.analyzer,
		shaper:   cfg.shaper,

		recompute: recomputeEverything,
	}
	return l, nil
}

func (f *TextFormat) defaultAttrs() regularAttrs {
	return regularAttrs{
		weight:     f.cfg.weight,
		style:      f.cfg.style,
		stretch:    f.cfg.stretch,
		size:       f.size,
		family:     f.family,
		collection: f.cfg.collection,
		locale:     f.cfg.locale,
	}
}

// Text returns the layout text.
func (l *TextLayout) Text() string { return string(l.text) }

// Len returns the text length in runes.
func (l *TextLayout) Len() int { return len(l.text) }

// isRTL reports whether the paragraph reads right to left.
func (l *TextLayout) isRTL() bool { return l.reading == ReadingRightToLeft }

func (l *TextLayout) invalidate(r recompute) { l.recompute |= r }

// MaxWidth returns the layout box width.
func (l *TextLayout) MaxWidth() float64 { return l.maxWidth }

// MaxHeight returns the layout box height.
func (l *TextLayout) MaxHeight() float64 { return l.maxHeight }

// SetMaxWidth sets the layout box width.
func (l *TextLayout) SetMaxWidth(w float64) error {
	if !(w >= 0) {
		return invalidArg("invalid max width %v", w)
	}
	if w != l.maxWidth {
		l.maxWidth = w
		l.invalidate(recomputeEffectiveRuns)
	}
	return nil
}

// SetMaxHeight sets the layout box height.
func (l *TextLayout) SetMaxHeight(h float64) error {
	if !(h >= 0) {
		return invalidArg("invalid max height %v", h)
	}
	if h != l.maxHeight {
		l.maxHeight = h
		l.invalidate(recomputeEffectiveRuns)
	}
	return nil
}

// TextAlignment returns the horizontal alignment.
func (l *TextLayout) TextAlignment() TextAlignment { return l.textAlign }

// SetTextAlignment sets the horizontal alignment. A computed layout is
// realigned in place.
func (l *TextLayout) SetTextAlignment(a TextAlignment) error {
	if !a.valid() {
		return invalidArg("text alignment %d", a)
	}
	if a == l.textAlign {
		return nil
	}
	l.textAlign = a
	if l.recompute&recomputeEffectiveRuns == 0 {
		l.alignText()
	}
	return nil
}

// ParagraphAlignment returns the vertical alignment.
func (l *TextLayout) ParagraphAlignment() ParagraphAlignment { return l.paraAlign }

// SetParagraphAlignment sets the vertical alignment. A computed layout is
// realigned in place.
func (l *TextLayout) SetParagraphAlignment(a ParagraphAlignment) error {
	if !a.valid() {
		return invalidArg("paragraph alignment %d", a)
	}
	if a == l.paraAlign {
		return nil
	}
	l.paraAlign = a
	if l.recompute&recomputeEffectiveRuns == 0 {
		l.alignParagraph()
	}
	return nil
}

// WordWrapping returns the wrapping mode.
func (l *TextLayout) WordWrapping() WordWrapping { return l.wrapping }

// SetWordWrapping sets the wrapping mode.
func (l *TextLayout) SetWordWrapping(w WordWrapping) error {
	if !w.valid() {
		return invalidArg("word wrapping %d", w)
	}
	if w != l.wrapping {
		l.wrapping = w
		l.invalidate(recomputeEffectiveRuns)
	}
	return nil
}

// ReadingDirection returns the reading direction.
func (l *TextLayout) ReadingDirection() ReadingDirection { return l.reading }

// SetReadingDirection sets the reading direction. Bidi levels depend on it,
// so the whole layout is recomputed.
func (l *TextLayout) SetReadingDirection(d ReadingDirection) error {
	if !d.valid() {
		return invalidArg("reading direction %d", d)
	}
	if d.IsVertical() {
		return fmt.Errorf("%w: vertical reading direction %v", ErrNotImplemented, d)
	}
	if conflicts(d, l.flow) {
		return ErrFlowDirectionConflicts
	}
	if d != l.reading {
		l.reading = d
		l.invalidate(recomputeEverything)
	}
	return nil
}

// FlowDirection returns the flow direction.
func (l *TextLayout) FlowDirection() FlowDirection { return l.flow }

// SetFlowDirection sets the flow direction. Lines are always stacked top to
// bottom.
func (l *TextLayout) SetFlowDirection(d FlowDirection) error {
	if !d.valid() {
		return invalidArg("flow direction %d", d)
	}
	if conflicts(l.reading, d) {
		return ErrFlowDirectionConflicts
	}
	if d != l.flow {
		l.flow = d
		l.invalidate(recomputeEffectiveRuns)
	}
	return nil
}

// IncrementalTabStop returns the tab stop.
func (l *TextLayout) IncrementalTabStop() float64 { return l.tabStop }

// SetIncrementalTabStop sets the tab stop.
func (l *TextLayout) SetIncrementalTabStop(v float64) error {
	if !(v > 0) {
		return invalidArg("tab stop %v", v)
	}
	l.tabStop = v
	return nil
}

// LineSpacing returns the line spacing.
func (l *TextLayout) LineSpacing() LineSpacing { return l.lineSpacing }

// SetLineSpacing sets the line spacing.
func (l *TextLayout) SetLineSpacing(s LineSpacing) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s != l.lineSpacing {
		l.lineSpacing = s
		l.invalidate(recomputeEffectiveRuns)
	}
	return nil
}

// Trimming returns the trimming options.
func (l *TextLayout) Trimming() Trimming { return l.trimming }

// SetTrimming stores trimming options. Trimming is not applied to the
// layout.
func (l *TextLayout) SetTrimming(t Trimming) error {
	if err := t.validate(); err != nil {
		return err
	}
	l.trimming = t
	return nil
}

// LastLineWrapping reports whether the last line wraps. It always does.
func (l *TextLayout) LastLineWrapping() bool { return true }

// SetLastLineWrapping accepts only true.
func (l *TextLayout) SetLastLineWrapping(wrap bool) error {
	if !wrap {
		return ErrNotImplemented
	}
	return nil
}

// OpticalAlignment returns OpticalAlignmentNone.
func (l *TextLayout) OpticalAlignment() OpticalAlignment { return OpticalAlignmentNone }

// SetOpticalAlignment accepts only OpticalAlignmentNone.
func (l *TextLayout) SetOpticalAlignment(a OpticalAlignment) error {
	switch a {
	case OpticalAlignmentNone:
		return nil
	case OpticalAlignmentNoSideBearings:
		return ErrNotImplemented
	default:
		return invalidArg("optical alignment %d", a)
	}
}

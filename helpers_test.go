package textlayout

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/gogpu/textlayout/analysis"
	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/shape"
)

// fixedShaper maps every rune to perRune glyphs of a fixed advance.
type fixedShaper struct {
	advance float64
	perRune int
	calls   int
}

func newFixedShaper(advance float64) *fixedShaper {
	return &fixedShaper{advance: advance, perRune: 1}
}

func (s *fixedShaper) Glyphs(in shape.Input) (shape.Glyphs, error) {
	s.calls++
	n := len(in.Text) * s.perRune
	if in.MaxGlyphs > 0 && n > in.MaxGlyphs {
		return shape.Glyphs{}, &shape.BufferTooSmallError{Required: n}
	}
	g := shape.Glyphs{
		Indices:    make([]uint32, n),
		ClusterMap: make([]int, len(in.Text)),
	}
	for i, r := range in.Text {
		g.ClusterMap[i] = i * s.perRune
		for k := 0; k < s.perRune; k++ {
			g.Indices[i*s.perRune+k] = uint32(r)
		}
	}
	return g, nil
}

func (s *fixedShaper) Place(_ shape.Input, g shape.Glyphs) (shape.Placement, error) {
	p := shape.Placement{
		Advances: make([]float64, g.Count()),
		Offsets:  make([]shape.Offset, g.Count()),
	}
	for i := range p.Advances {
		p.Advances[i] = s.advance
	}
	return p, nil
}

// neutralBreaks reports neutral break conditions everywhere.
type neutralBreaks struct {
	*analysis.UnicodeAnalyzer
}

func (neutralBreaks) AnalyzeLineBreakpoints(_ analysis.Source, pos, length int, sink analysis.Sink) error {
	return sink.SetLineBreakpoints(pos, make([]analysis.Breakpoint, length))
}

var errAnalysis = errors.New("analysis failed")

// flakyAnalyzer fails script analysis while fail is set.
type flakyAnalyzer struct {
	*analysis.UnicodeAnalyzer
	fail bool
}

func (a *flakyAnalyzer) AnalyzeScript(src analysis.Source, pos, length int, sink analysis.Sink) error {
	if a.fail {
		return errAnalysis
	}
	return a.UnicodeAnalyzer.AnalyzeScript(src, pos, length, sink)
}

// boxObject is an inline object with fixed metrics.
type boxObject struct {
	metrics       InlineObjectMetrics
	before, after analysis.BreakCondition
	metricsErr    error
	drawn         int
}

func (b *boxObject) Metrics() (InlineObjectMetrics, error) {
	if b.metricsErr != nil {
		return InlineObjectMetrics{}, b.metricsErr
	}
	return b.metrics, nil
}

func (b *boxObject) BreakConditions() (before, after analysis.BreakCondition, err error) {
	return b.before, b.after, nil
}

func (b *boxObject) Draw(Renderer, float64, float64, bool, bool, any) error {
	b.drawn++
	return nil
}

type eventKind int

const (
	eventGlyphRun eventKind = iota
	eventInline
	eventStrike
)

type drawEvent struct {
	kind   eventKind
	x, y   float64
	run    GlyphRun
	desc   GlyphRunDescription
	object InlineObject
	rtl    bool
	strike Strikethrough
	effect any
}

// eventRenderer records drawing events in order.
type eventRenderer struct {
	events []drawEvent
	failAt int
	err    error
}

func (r *eventRenderer) add(e drawEvent) error {
	r.events = append(r.events, e)
	if r.err != nil && len(r.events) == r.failAt {
		return r.err
	}
	return nil
}

func (r *eventRenderer) DrawGlyphRun(x, y float64, run *GlyphRun, desc *GlyphRunDescription, effect any) error {
	return r.add(drawEvent{kind: eventGlyphRun, x: x, y: y, run: *run, desc: *desc, effect: effect})
}

func (r *eventRenderer) DrawInlineObject(x, y float64, obj InlineObject, _, rtl bool, effect any) error {
	return r.add(drawEvent{kind: eventInline, x: x, y: y, object: obj, rtl: rtl, effect: effect})
}

func (r *eventRenderer) DrawStrikethrough(x, y float64, s *Strikethrough, effect any) error {
	return r.add(drawEvent{kind: eventStrike, x: x, y: y, strike: *s, effect: effect})
}

func (r *eventRenderer) count(k eventKind) int {
	n := 0
	for _, e := range r.events {
		if e.kind == k {
			n++
		}
	}
	return n
}

func newFormat(t *testing.T, opts ...FormatOption) *TextFormat {
	t.Helper()
	f, err := NewTextFormat(fonts.FamilyGo, 16, opts...)
	if err != nil {
		t.Fatalf("NewTextFormat: %v", err)
	}
	return f
}

// newFixedLayout lays text out with 10 unit wide glyphs.
func newFixedLayout(t *testing.T, text string, w, h float64, opts ...FormatOption) *TextLayout {
	t.Helper()
	l, err := NewTextLayout(text, newFormat(t, opts...), w, h, WithShaper(newFixedShaper(10)))
	if err != nil {
		t.Fatalf("NewTextLayout: %v", err)
	}
	return l
}

func mustLines(t *testing.T, l *TextLayout) []LineMetrics {
	t.Helper()
	lines, err := l.LineMetrics()
	if err != nil {
		t.Fatalf("LineMetrics: %v", err)
	}
	return lines
}

func mustClusters(t *testing.T, l *TextLayout) []ClusterMetrics {
	t.Helper()
	cm, err := l.ClusterMetrics()
	if err != nil {
		t.Fatalf("ClusterMetrics: %v", err)
	}
	return cm
}

// captureLog routes package logging into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

package textlayout

import (
	"fmt"
	"sort"

	"github.com/gogpu/textlayout/analysis"
	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/internal/ranges"
	"github.com/gogpu/textlayout/shape"
)

type runKind uint8

const (
	runRegular runKind = iota
	runInline
)

// layoutRun is a nominal run: a maximal span sharing script, bidi level and
// attributes, or one inline object.
type layoutRun struct {
	kind   runKind
	start  int
	length int

	sa        analysis.ScriptAnalysis
	bidiLevel uint8

	// Shaping results. face is nil for unshaped runs.
	face       *fonts.Face
	fontMetric fonts.Metrics
	emSize     float64
	glyphs     []uint32
	clusterMap []int
	advances   []float64
	offsets    []shape.Offset
	// glyphCount is the reported glyph count, zero for no-visual runs.
	glyphCount int
	baseline   float64
	height     float64

	object     InlineObject
	objMetrics InlineObjectMetrics
}

func (r *layoutRun) end() int { return r.start + r.length }

func (r *layoutRun) rtl() bool { return r.bidiLevel&1 == 1 }

// runBuilder collects analysis results into fresh runs. It is both the
// analysis source and sink.
type runBuilder struct {
	l           *TextLayout
	runs        []*layoutRun
	breakpoints []analysis.Breakpoint
}

var (
	_ analysis.Source = (*runBuilder)(nil)
	_ analysis.Sink   = (*runBuilder)(nil)
)

func (b *runBuilder) Text() []rune { return b.l.text }

func (b *runBuilder) ParagraphRTL() bool { return b.l.isRTL() }

func (b *runBuilder) LocaleName(pos int) string {
	a, _ := b.l.regularAt(pos)
	return a.locale
}

func (b *runBuilder) check(pos, length int) error {
	if pos < 0 || length < 0 || pos+length > len(b.l.text) {
		return fmt.Errorf("%w: analysis span [%d,%d) of %d", ErrInvalidArg, pos, pos+length, len(b.l.text))
	}
	return nil
}

// splitAt splits the run strictly containing pos in two.
func (b *runBuilder) splitAt(pos int) {
	i := sort.Search(len(b.runs), func(i int) bool { return b.runs[i].end() > pos })
	if i == len(b.runs) {
		return
	}
	r := b.runs[i]
	if pos <= r.start || r.kind != runRegular {
		return
	}
	right := *r
	right.start = pos
	right.length = r.end() - pos
	r.length = pos - r.start

	b.runs = append(b.runs, nil)
	copy(b.runs[i+2:], b.runs[i+1:])
	b.runs[i+1] = &right
}

// each calls fn for each regular run inside [pos, pos+length) after
// splitting runs at both edges.
func (b *runBuilder) each(pos, length int, fn func(r *layoutRun)) {
	b.splitAt(pos)
	b.splitAt(pos + length)
	end := pos + length
	i := sort.Search(len(b.runs), func(i int) bool { return b.runs[i].end() > pos })
	for ; i < len(b.runs) && b.runs[i].start < end; i++ {
		if r := b.runs[i]; r.kind == runRegular {
			fn(r)
		}
	}
}

func (b *runBuilder) SetScriptAnalysis(pos, length int, sa analysis.ScriptAnalysis) error {
	if err := b.check(pos, length); err != nil {
		return err
	}
	b.each(pos, length, func(r *layoutRun) { r.sa = sa })
	return nil
}

func (b *runBuilder) SetBidiLevel(pos, length int, _, resolved uint8) error {
	if err := b.check(pos, length); err != nil {
		return err
	}
	b.each(pos, length, func(r *layoutRun) { r.bidiLevel = resolved })
	return nil
}

func (b *runBuilder) SetLineBreakpoints(pos int, bps []analysis.Breakpoint) error {
	if err := b.check(pos, len(bps)); err != nil {
		return err
	}
	copy(b.breakpoints[pos:], bps)
	return nil
}

// addInline appends the run for an inline object range and applies its
// break conditions to the surrounding breakpoints.
func (b *runBuilder) addInline(sp ranges.Span[regularAttrs]) {
	obj := sp.Value.object
	b.runs = append(b.runs, &layoutRun{
		kind:      runInline,
		start:     sp.Start,
		length:    sp.Length,
		bidiLevel: b.baseLevel(),
		object:    obj,
	})

	before, after, err := obj.BreakConditions()
	if err != nil {
		before, after = analysis.BreakNeutral, analysis.BreakNeutral
	}

	bps := b.breakpoints
	first, last := sp.Start, sp.End()-1
	for i := first; i <= last; i++ {
		bps[i].Before = analysis.BreakMayNotBreak
		bps[i].After = analysis.BreakMayNotBreak
		bps[i].IsWhitespace = false
		bps[i].IsSoftHyphen = false
	}

	prev := analysis.BreakNeutral
	if first > 0 {
		prev = bps[first-1].After
	}
	cond := prev.Override(before)
	bps[first].Before = cond
	if first > 0 {
		bps[first-1].After = cond
	}

	next := analysis.BreakNeutral
	if last+1 < len(bps) {
		next = bps[last+1].Before
	}
	cond = next.Override(after)
	bps[last].After = cond
	if last+1 < len(bps) {
		bps[last+1].Before = cond
	}
}

func (b *runBuilder) baseLevel() uint8 {
	if b.l.isRTL() {
		return 1
	}
	return 0
}

// buildRuns segments the text into nominal runs. Nothing on the layout is
// modified.
func (l *TextLayout) buildRuns() ([]*layoutRun, []analysis.Breakpoint, error) {
	n := len(l.text)
	b := &runBuilder{l: l, breakpoints: make([]analysis.Breakpoint, n)}
	if n == 0 {
		return nil, nil, nil
	}

	if err := l.analyzer.AnalyzeLineBreakpoints(b, 0, n, b); err != nil {
		return nil, nil, &AnalysisError{Stage: StageBreakpoint, Pos: 0, Length: n, Err: err}
	}

	for _, sp := range l.regular.Spans() {
		if sp.Value.object != nil {
			b.addInline(sp)
			continue
		}

		b.runs = append(b.runs, &layoutRun{
			kind:      runRegular,
			start:     sp.Start,
			length:    sp.Length,
			bidiLevel: b.baseLevel(),
		})
		if err := l.analyzer.AnalyzeScript(b, sp.Start, sp.Length, b); err != nil {
			return nil, nil, &AnalysisError{Stage: StageScript, Pos: sp.Start, Length: sp.Length, Err: err}
		}
		if err := l.analyzer.AnalyzeBidi(b, sp.Start, sp.Length, b); err != nil {
			return nil, nil, &AnalysisError{Stage: StageBidi, Pos: sp.Start, Length: sp.Length, Err: err}
		}
	}
	return b.runs, b.breakpoints, nil
}

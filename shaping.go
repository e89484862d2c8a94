package textlayout

import (
	"errors"
	"log/slog"

	"github.com/go-text/typesetting/segmenter"

	"github.com/gogpu/textlayout/analysis"
	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/shape"
)

// layoutCluster is one cluster with its owning run and text position.
type layoutCluster struct {
	run      *layoutRun
	position int
	metrics  ClusterMetrics
}

// nominalStage is the result of segmentation and shaping, built apart from
// the layout and committed in one step.
type nominalStage struct {
	runs        []*layoutRun
	clusters    []layoutCluster
	breakpoints []analysis.Breakpoint
}

// computeNominalRuns rebuilds runs and clusters if they are stale.
func (l *TextLayout) computeNominalRuns() error {
	if l.recompute&recomputeNominalRuns == 0 {
		return nil
	}

	runs, bps, err := l.buildRuns()
	if err != nil {
		return err
	}
	st := nominalStage{runs: runs, breakpoints: bps}
	for _, r := range runs {
		if r.kind == runInline {
			l.measureInline(r)
			continue
		}
		if err := l.shapeRun(r); err != nil {
			return err
		}
	}
	st.clusters = l.buildClusters(&st)

	l.runs = st.runs
	l.breakpoints = st.breakpoints
	l.clusters = st.clusters
	l.recompute &^= recomputeNominalRuns

	Logger().Debug("textlayout: nominal runs computed",
		slog.Int("runs", len(l.runs)),
		slog.Int("clusters", len(l.clusters)))
	return nil
}

func (l *TextLayout) measureInline(r *layoutRun) {
	m, err := r.object.Metrics()
	if err != nil {
		Logger().Warn("textlayout: inline object metrics failed",
			slog.Int("pos", r.start),
			slog.String("error", err.Error()))
		m = InlineObjectMetrics{}
	}
	r.objMetrics = m
	r.baseline = m.Baseline
	r.height = m.Height
}

// resolveFace finds the face for the attributes at pos. A missing family or
// font is logged and reported as nil.
func (l *TextLayout) resolveFace(a regularAttrs) *fonts.Face {
	c := a.collection
	if c == nil {
		c = fonts.Default()
	}
	fam, ok := c.FindFamily(a.family)
	if !ok {
		Logger().Warn("textlayout: font family not found", slog.String("family", a.family))
		return nil
	}
	f, ok := fam.FirstMatchingFont(a.weight, a.stretch, a.style)
	if !ok {
		Logger().Warn("textlayout: no matching font",
			slog.String("family", a.family),
			slog.String("weight", a.weight.String()),
			slog.String("stretch", a.stretch.String()),
			slog.String("style", a.style.String()))
		return nil
	}
	return f.CreateFace()
}

func (l *TextLayout) shapeRun(r *layoutRun) error {
	a, _ := l.regularAt(r.start)
	r.emSize = a.size
	r.face = l.resolveFace(a)
	if r.face == nil {
		r.clusterMap = make([]int, r.length)
		return nil
	}

	r.fontMetric = r.face.Metrics()
	r.baseline = r.fontMetric.Scale(r.fontMetric.Ascent, r.emSize)
	r.height = r.fontMetric.Scale(r.fontMetric.Ascent+r.fontMetric.Descent, r.emSize)

	in := shape.Input{
		Text:        l.text[r.start:r.end()],
		Face:        r.face,
		Size:        r.emSize,
		RTL:         r.rtl(),
		Script:      r.sa.Script,
		Locale:      a.locale,
		PairKerning: a.pairKerning,
		MaxGlyphs:   3*r.length/2 + 16,
	}

	g, err := l.shaper.Glyphs(in)
	var small *shape.BufferTooSmallError
	if errors.As(err, &small) {
		Logger().Debug("textlayout: glyph buffer retry",
			slog.Int("pos", r.start),
			slog.Int("have", in.MaxGlyphs),
			slog.Int("need", small.Required))
		in.MaxGlyphs = small.Required
		g, err = l.shaper.Glyphs(in)
	}
	if err != nil {
		return &AnalysisError{Stage: StageShaping, Pos: r.start, Length: r.length, Err: err}
	}

	p, err := l.shaper.Place(in, g)
	if err != nil {
		return &AnalysisError{Stage: StagePlacement, Pos: r.start, Length: r.length, Err: err}
	}

	r.glyphs = g.Indices
	r.clusterMap = g.ClusterMap
	r.advances = p.Advances
	r.offsets = p.Offsets
	r.glyphCount = g.Count()
	if r.sa.Shapes == analysis.ShapesNoVisual {
		r.glyphCount = 0
	}
	return nil
}

// buildClusters derives cluster metrics for every run in text order and
// applies character spacing to shaped glyphs.
func (l *TextLayout) buildClusters(st *nominalStage) []layoutCluster {
	out := make([]layoutCluster, 0, len(l.text))
	for _, r := range st.runs {
		switch {
		case r.kind == runInline:
			out = append(out, layoutCluster{
				run:      r,
				position: r.start,
				metrics: ClusterMetrics{
					Width:            r.objMetrics.Width,
					Length:           r.length,
					CanWrapLineAfter: st.breakpoints[r.end()-1].After.AllowsBreak(),
					IsRightToLeft:    r.rtl(),
				},
			})
		case r.face == nil:
			out = l.graphemeClusters(out, st, r)
		default:
			out = l.shapedClusters(out, st, r)
		}
	}
	if n := len(out); n > 0 {
		out[n-1].metrics.CanWrapLineAfter = true
	}
	return out
}

// shapedClusters splits a shaped run wherever its cluster map changes.
func (l *TextLayout) shapedClusters(out []layoutCluster, st *nominalStage, r *layoutRun) []layoutCluster {
	for i := 0; i < r.length; {
		start := i
		g0 := r.clusterMap[i]
		for i < r.length && r.clusterMap[i] == g0 {
			i++
		}
		g1 := len(r.glyphs)
		if i < r.length {
			g1 = r.clusterMap[i]
		}

		width := 0.0
		if r.glyphCount > 0 {
			width = l.spaceCluster(r, r.start+start, g0, g1)
		}
		out = append(out, l.newCluster(st, r, r.start+start, i-start, width))
	}
	return out
}

// spaceCluster applies character spacing to glyphs [g0, g1) and returns the
// cluster width.
func (l *TextLayout) spaceCluster(r *layoutRun, pos, g0, g1 int) float64 {
	width := 0.0
	for _, adv := range r.advances[g0:g1] {
		width += adv
	}
	if g1 <= g0 {
		return width
	}
	sp, _ := l.CharacterSpacing(pos)
	if sp == (CharacterSpacing{}) {
		return width
	}
	r.offsets[g0].X += sp.Leading
	r.advances[g1-1] += sp.Leading + sp.Trailing
	width += sp.Leading + sp.Trailing
	if width < sp.MinAdvance {
		r.advances[g1-1] += sp.MinAdvance - width
		width = sp.MinAdvance
	}
	return width
}

// graphemeClusters gives an unshaped run one zero width cluster per
// grapheme.
func (l *TextLayout) graphemeClusters(out []layoutCluster, st *nominalStage, r *layoutRun) []layoutCluster {
	var seg segmenter.Segmenter
	seg.Init(l.text[r.start:r.end()])
	it := seg.GraphemeIterator()
	for it.Next() {
		g := it.Grapheme()
		out = append(out, l.newCluster(st, r, r.start+g.Offset, len(g.Text), 0))
	}
	return out
}

func (l *TextLayout) newCluster(st *nominalStage, r *layoutRun, pos, length int, width float64) layoutCluster {
	end := pos + length
	var cond analysis.BreakCondition
	if end == r.end() {
		cond = st.breakpoints[end-1].After
	} else {
		cond = st.breakpoints[end].Before
	}

	m := ClusterMetrics{
		Width:            width,
		Length:           length,
		CanWrapLineAfter: cond.AllowsBreak(),
		IsRightToLeft:    r.rtl(),
	}
	switch length {
	case 1:
		bp := st.breakpoints[pos]
		m.IsWhitespace = bp.IsWhitespace
		m.IsSoftHyphen = bp.IsSoftHyphen
		m.IsNewline = analysis.IsNewline(l.text[pos])
	case 2:
		m.IsNewline = l.text[pos] == '\r' && l.text[pos+1] == '\n'
	}
	return layoutCluster{run: r, position: pos, metrics: m}
}

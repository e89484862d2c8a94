package textlayout

import (
	"log/slog"
)

// effectiveRun is the part of a regular run placed on one line.
type effectiveRun struct {
	run *layoutRun
	// start is relative to run.start.
	start  int
	length int

	glyphStart int
	glyphCount int
	// clusterMap maps each rune of the run part to a glyph, rebased to 0.
	clusterMap []int

	originX float64
	originY float64
	alignDX float64
	width   float64
	line    int

	// Clusters [firstCluster, lastCluster] of the layout.
	firstCluster int
	lastCluster  int

	// justify holds extra advance per glyph for justified lines, nil
	// otherwise.
	justify []float64
	extra   float64
}

func (e *effectiveRun) position() int { return e.run.start + e.start }

// effectiveInline is an inline object placed on a line.
type effectiveInline struct {
	run     *layoutRun
	originX float64
	originY float64
	alignDX float64
	width   float64
	line    int
	cluster int
}

// effectiveStrike is a strikethrough span over one effective run.
type effectiveStrike struct {
	erun *effectiveRun
	s    Strikethrough
}

// lineInfo keeps per-line data the alignment passes need.
type lineInfo struct {
	firstCluster int
	lastCluster  int
	// width excludes trailing whitespace.
	width float64
	// paragraphEnd marks the last line of a paragraph.
	paragraphEnd bool
	// trailStart is the first cluster of the trailing whitespace.
	trailStart int

	eruns   []*effectiveRun
	inlines []*effectiveInline
}

// effectiveStage is the result of line breaking, committed in one step.
type effectiveStage struct {
	eruns   []*effectiveRun
	inlines []*effectiveInline
	strikes []*effectiveStrike
	lines   []LineMetrics
	info    []lineInfo

	width         float64
	widthTrailing float64
}

// lineBuilder walks clusters and builds lines.
type lineBuilder struct {
	l  *TextLayout
	st effectiveStage
}

// computeEffectiveRuns breaks lines and aligns them if they are stale.
func (l *TextLayout) computeEffectiveRuns() error {
	if err := l.computeNominalRuns(); err != nil {
		return err
	}
	if l.recompute&recomputeEffectiveRuns == 0 {
		return nil
	}

	b := &lineBuilder{l: l}
	if len(l.clusters) == 0 {
		b.emptyLine()
	} else {
		b.breakLines()
	}

	st := b.st
	l.eruns = st.eruns
	l.inlines = st.inlines
	l.strikes = st.strikes
	l.lines = st.lines
	l.lineInfo = st.info
	l.metrics = TextMetrics{
		Width:                            st.width,
		WidthIncludingTrailingWhitespace: st.widthTrailing,
		LayoutWidth:                      l.maxWidth,
		LayoutHeight:                     l.maxHeight,
		MaxBidiReorderingDepth:           1,
		LineCount:                        len(st.lines),
	}
	for _, line := range st.lines {
		l.metrics.Height += line.Height
	}
	l.metrics.HeightIncludingTrailingWhitespace = l.metrics.Height
	l.recompute &^= recomputeEffectiveRuns

	l.alignText()
	l.alignParagraph()

	Logger().Debug("textlayout: effective runs computed",
		slog.Int("lines", len(l.lines)),
		slog.Int("runs", len(l.eruns)),
		slog.Int("inlines", len(l.inlines)),
		slog.Int("strikethroughs", len(l.strikes)))
	return nil
}

// breakLines runs the greedy line breaker over all clusters.
func (b *lineBuilder) breakLines() {
	l := b.l
	clusters := l.clusters
	last := len(clusters) - 1

	lineStart := 0
	width := 0.0
	for i := 0; i <= last; i++ {
		m := &clusters[i].metrics
		if !m.IsWhitespace && !m.IsNewline {
			for i > lineStart && width+m.Width > l.maxWidth {
				j := b.breakBefore(lineStart, i)
				if j < 0 {
					break
				}
				b.closeLine(lineStart, j, false)
				lineStart = j + 1
				width = 0
				for k := lineStart; k < i; k++ {
					width += clusters[k].metrics.Width
				}
			}
		}
		width += m.Width

		if m.IsNewline && i < last && l.crlf(i) {
			continue
		}
		if m.IsNewline || i == last {
			b.closeLine(lineStart, i, true)
			lineStart = i + 1
			width = 0
		}
	}
}

// crlf reports whether cluster i is a lone CR followed by an LF cluster.
func (l *TextLayout) crlf(i int) bool {
	c, next := &l.clusters[i], &l.clusters[i+1]
	return c.metrics.Length == 1 && l.text[c.position] == '\r' &&
		next.metrics.Length == 1 && l.text[next.position] == '\n'
}

// breakBefore returns the cluster after which to break a line starting at
// lineStart when cluster i overflows it, or -1 for no break.
func (b *lineBuilder) breakBefore(lineStart, i int) int {
	switch b.l.wrapping {
	case WrapNoWrap:
		return -1
	case WrapCharacter:
		return i - 1
	}
	for j := i - 1; j >= lineStart; j-- {
		if b.l.clusters[j].metrics.CanWrapLineAfter {
			return j
		}
	}
	if b.l.wrapping == WrapWholeWord {
		return -1
	}
	return i - 1
}

// lineOriginX returns where the pen starts on each line.
func (b *lineBuilder) lineOriginX() float64 {
	if b.l.isRTL() {
		return b.l.maxWidth
	}
	return 0
}

// closeLine emits the line holding clusters [first, last].
func (b *lineBuilder) closeLine(first, last int, paragraphEnd bool) {
	l := b.l
	clusters := l.clusters
	lineIndex := len(b.st.lines)
	info := lineInfo{firstCluster: first, lastCluster: last}

	// A newline at the end closes a paragraph; the final line of the text
	// also does.
	info.paragraphEnd = paragraphEnd
	info.trailStart = last + 1
	for info.trailStart > first {
		m := &clusters[info.trailStart-1].metrics
		if !m.IsWhitespace && !m.IsNewline {
			break
		}
		info.trailStart--
	}

	originX := b.lineOriginX()
	rtl := l.isRTL()

	runStart := first
	for i := first; i <= last; i++ {
		next := i + 1
		if next <= last && clusters[next].run == clusters[runStart].run &&
			b.strikeAt(clusters[next].position) == b.strikeAt(clusters[runStart].position) {
			continue
		}
		originX = b.flush(&info, lineIndex, runStart, i, originX, rtl)
		runStart = next
	}

	m := LineMetrics{}
	width := 0.0
	trailingWidth := 0.0
	trailingDone := false
	var baseline, descent float64
	for i := last; i >= first; i-- {
		c := &clusters[i]
		m.Length += c.metrics.Length
		width += c.metrics.Width
		if !trailingDone {
			switch {
			case c.metrics.IsNewline:
				m.NewlineLength += c.metrics.Length
				m.TrailingWhitespaceLength += c.metrics.Length
			case c.metrics.IsWhitespace:
				m.TrailingWhitespaceLength += c.metrics.Length
				trailingWidth += c.metrics.Width
			default:
				trailingDone = true
			}
		}
		baseline = max(baseline, c.run.baseline)
		descent = max(descent, c.run.height-c.run.baseline)
	}
	m.Baseline = baseline
	m.Height = baseline + descent
	if l.lineSpacing.Method == LineSpacingUniform {
		m.Height = l.lineSpacing.Height
		m.Baseline = l.lineSpacing.Baseline
	}

	info.width = width - trailingWidth
	m.IsTrimmed = info.width > l.maxWidth

	b.st.width = max(b.st.width, info.width)
	b.st.widthTrailing = max(b.st.widthTrailing, width)
	b.st.lines = append(b.st.lines, m)
	b.st.info = append(b.st.info, info)
}

func (b *lineBuilder) strikeAt(pos int) bool {
	on, _ := b.l.Strikethrough(pos)
	return on
}

// flush places clusters [first, last] of one run on the line and returns
// the pen position after them.
func (b *lineBuilder) flush(info *lineInfo, line, first, last int, originX float64, paraRTL bool) float64 {
	l := b.l
	c := &l.clusters[first]
	r := c.run

	width := 0.0
	length := 0
	for i := first; i <= last; i++ {
		width += l.clusters[i].metrics.Width
		length += l.clusters[i].metrics.Length
	}

	if r.kind == runInline {
		in := &effectiveInline{run: r, width: width, line: line, originX: originX, cluster: first}
		if paraRTL {
			in.originX = originX - width
		}
		info.inlines = append(info.inlines, in)
		b.st.inlines = append(b.st.inlines, in)
		return advance(originX, width, paraRTL)
	}

	start := c.position - r.start
	end := start + length
	e := &effectiveRun{
		run:          r,
		start:        start,
		length:       length,
		width:        width,
		line:         line,
		firstCluster: first,
		lastCluster:  last,
	}
	if r.glyphCount > 0 {
		e.glyphStart = r.clusterMap[start]
		glyphEnd := r.glyphCount
		if end < r.length {
			glyphEnd = r.clusterMap[end]
		}
		e.glyphCount = glyphEnd - e.glyphStart
	}
	e.clusterMap = make([]int, length)
	if e.glyphCount > 0 {
		for i := range e.clusterMap {
			e.clusterMap[i] = r.clusterMap[start+i] - e.glyphStart
		}
	}

	// A run whose direction differs from the paragraph draws from its far
	// edge.
	e.originX = originX
	if r.rtl() != paraRTL {
		if paraRTL {
			// Trailing whitespace of the line hangs past the line start.
			hang := 0.0
			for i := max(first, info.trailStart); i <= last; i++ {
				hang += l.clusters[i].metrics.Width
			}
			e.originX = originX - width + hang
		} else {
			e.originX = originX + width
		}
	}

	info.eruns = append(info.eruns, e)
	b.st.eruns = append(b.st.eruns, e)

	if b.strikeAt(e.position()) {
		b.st.strikes = append(b.st.strikes, &effectiveStrike{erun: e, s: l.strikethroughFor(e)})
	}
	return advance(originX, width, paraRTL)
}

func advance(x, w float64, rtl bool) float64 {
	if rtl {
		return x - w
	}
	return x + w
}

func (l *TextLayout) strikethroughFor(e *effectiveRun) Strikethrough {
	r := e.run
	a, _ := l.regularAt(r.start)
	fm := r.fontMetric
	return Strikethrough{
		Width:            e.width,
		Thickness:        fm.Scale(fm.StrikethroughThickness, r.emSize),
		Offset:           -fm.Scale(fm.StrikethroughPosition, r.emSize),
		ReadingDirection: l.reading,
		FlowDirection:    l.flow,
		Locale:           a.locale,
	}
}

// emptyLine emits the single line of an empty text, measured with the
// format's default font.
func (b *lineBuilder) emptyLine() {
	l := b.l
	m := LineMetrics{}
	a := l.format.defaultAttrs()
	if face := l.resolveFace(a); face != nil {
		fm := face.Metrics()
		m.Baseline = fm.Scale(fm.Ascent, a.size)
		m.Height = fm.Scale(fm.Ascent+fm.Descent, a.size)
	}
	if l.lineSpacing.Method == LineSpacingUniform {
		m.Height = l.lineSpacing.Height
		m.Baseline = l.lineSpacing.Baseline
	}
	b.st.lines = append(b.st.lines, m)
	b.st.info = append(b.st.info, lineInfo{firstCluster: 0, lastCluster: -1, paragraphEnd: true})
}

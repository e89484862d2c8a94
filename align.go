package textlayout

import "log/slog"

// alignText sets align_dx on every placed run and the left edge of the
// block. It needs computed effective runs.
func (l *TextLayout) alignText() {
	w := l.maxWidth
	rtl := l.isRTL()
	sign := 1.0
	if rtl {
		sign = -1
	}

	width := l.metrics.Width
	switch l.textAlign {
	case AlignTrailing:
		if rtl {
			l.metrics.Left = 0
		} else {
			l.metrics.Left = w - width
		}
	case AlignCenter:
		l.metrics.Left = (w - width) / 2
	default:
		if rtl {
			l.metrics.Left = w - width
		} else {
			l.metrics.Left = 0
		}
	}

	for li := range l.lineInfo {
		info := &l.lineInfo[li]
		l.lines[li].Justified = false
		for _, e := range info.eruns {
			e.justify = nil
			e.extra = 0
		}

		var shift float64
		switch l.textAlign {
		case AlignTrailing:
			shift = w - info.width
		case AlignCenter:
			shift = (w - info.width) / 2
		case AlignJustified:
			if l.justifyLine(li) {
				continue
			}
		}
		shift *= sign
		for _, e := range info.eruns {
			e.alignDX = shift
		}
		for _, in := range info.inlines {
			in.alignDX = shift
		}
	}
}

// clusterGlyphs returns the glyphs of cluster ci inside e, relative to the
// first glyph of e.
func (l *TextLayout) clusterGlyphs(e *effectiveRun, ci int) (g0, g1 int) {
	if e.glyphCount == 0 {
		return 0, 0
	}
	rel := l.clusters[ci].position - e.position()
	g0 = e.clusterMap[rel]
	g1 = e.glyphCount
	if next := rel + l.clusters[ci].metrics.Length; next < e.length {
		g1 = e.clusterMap[next]
	}
	return g0, g1
}

// justifiable reports whether cluster ci of e can absorb extra width.
func (l *TextLayout) justifiable(e *effectiveRun, ci, lastContent int) bool {
	if ci > lastContent || !l.clusters[ci].metrics.IsWhitespace {
		return false
	}
	g0, g1 := l.clusterGlyphs(e, ci)
	return g1 > g0
}

// justifyLine spreads the free width of line li over its inner whitespace
// and reports whether it did. The last line of a paragraph is not
// justified.
func (l *TextLayout) justifyLine(li int) bool {
	info := &l.lineInfo[li]
	extra := l.maxWidth - info.width
	if info.paragraphEnd || extra <= 0 {
		return false
	}

	lastContent := info.lastCluster
	for lastContent >= info.firstCluster {
		m := &l.clusters[lastContent].metrics
		if !m.IsWhitespace && !m.IsNewline {
			break
		}
		lastContent--
	}

	count := 0
	for _, e := range info.eruns {
		for ci := e.firstCluster; ci <= e.lastCluster; ci++ {
			if l.justifiable(e, ci, lastContent) {
				count++
			}
		}
	}
	if count == 0 {
		Logger().Debug("textlayout: line not justifiable, using leading alignment",
			slog.Int("line", li))
		return false
	}
	per := extra / float64(count)

	rtl := l.isRTL()
	sign := 1.0
	if rtl {
		sign = -1
	}

	// Walk runs and inline objects in text order.
	acc := 0.0
	ei, ii := 0, 0
	for ei < len(info.eruns) || ii < len(info.inlines) {
		if ii < len(info.inlines) && (ei == len(info.eruns) || info.inlines[ii].cluster < info.eruns[ei].firstCluster) {
			info.inlines[ii].alignDX = sign * acc
			ii++
			continue
		}

		e := info.eruns[ei]
		ei++
		runExtra := 0.0
		for ci := e.firstCluster; ci <= e.lastCluster; ci++ {
			if !l.justifiable(e, ci, lastContent) {
				continue
			}
			if e.justify == nil {
				e.justify = make([]float64, e.glyphCount)
			}
			_, g1 := l.clusterGlyphs(e, ci)
			e.justify[g1-1] += per
			runExtra += per
		}
		e.extra = runExtra

		// Runs drawn from their far edge move by their own growth too.
		shift := acc
		if e.run.rtl() != rtl {
			shift += runExtra
		}
		e.alignDX = sign * shift
		acc += runExtra
	}

	l.lines[li].Justified = true
	return true
}

// alignParagraph sets the block top and the baseline origin of every
// placed run.
func (l *TextLayout) alignParagraph() {
	h := l.metrics.Height
	var top float64
	switch l.paraAlign {
	case ParagraphFar:
		top = l.maxHeight - h
	case ParagraphCenter:
		top = (l.maxHeight - h) / 2
	}
	l.metrics.Top = top

	y := top
	for li := range l.lineInfo {
		line := &l.lines[li]
		y += line.Baseline
		for _, e := range l.lineInfo[li].eruns {
			e.originY = y
		}
		for _, in := range l.lineInfo[li].inlines {
			in.originY = y
		}
		y += line.Height - line.Baseline
	}
}

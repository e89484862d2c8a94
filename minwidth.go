package textlayout

// DetermineMinWidth returns the width of the widest span that can never be
// broken, the narrowest layout width that avoids splitting words.
func (l *TextLayout) DetermineMinWidth() (float64, error) {
	if l.recompute&recomputeMinimalWidth == 0 {
		return l.minWidth, nil
	}
	if err := l.computeNominalRuns(); err != nil {
		return 0, err
	}

	minWidth := 0.0
	width := 0.0
	last := len(l.clusters) - 1
	for i := range l.clusters {
		m := &l.clusters[i].metrics
		if m.IsWhitespace || m.IsNewline {
			minWidth = max(minWidth, width, m.Width)
			width = 0
			continue
		}
		width += m.Width
		if i == last || l.clusters[i+1].metrics.IsWhitespace {
			minWidth = max(minWidth, width)
			width = 0
		}
	}

	l.minWidth = minWidth
	l.recompute &^= recomputeMinimalWidth
	return minWidth, nil
}

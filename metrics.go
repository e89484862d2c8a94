package textlayout

// ClusterMetrics describes one cluster.
type ClusterMetrics struct {
	Width            float64
	Length           int
	CanWrapLineAfter bool
	IsWhitespace     bool
	IsNewline        bool
	IsSoftHyphen     bool
	IsRightToLeft    bool
}

// LineMetrics describes one line. Lengths are in runes and include the
// trailing whitespace and newline.
type LineMetrics struct {
	Length                   int
	TrailingWhitespaceLength int
	NewlineLength            int
	Height                   float64
	Baseline                 float64
	IsTrimmed                bool
	// Justified reports whether whitespace on the line was stretched.
	Justified bool
}

// TextMetrics describes the laid out block.
type TextMetrics struct {
	Left                              float64
	Top                               float64
	Width                             float64
	WidthIncludingTrailingWhitespace  float64
	Height                            float64
	HeightIncludingTrailingWhitespace float64
	LayoutWidth                       float64
	LayoutHeight                      float64
	MaxBidiReorderingDepth            int
	LineCount                         int
}

// OverhangMetrics is not supported.
func (l *TextLayout) OverhangMetrics() (left, top, right, bottom float64, err error) {
	return 0, 0, 0, 0, ErrNotImplemented
}

// ClusterMetrics returns the metrics of every cluster in text order.
func (l *TextLayout) ClusterMetrics() ([]ClusterMetrics, error) {
	if err := l.computeNominalRuns(); err != nil {
		return nil, err
	}
	out := make([]ClusterMetrics, len(l.clusters))
	for i, c := range l.clusters {
		out[i] = c.metrics
	}
	return out, nil
}

// ClusterMetricsInto copies cluster metrics into dst and returns the
// cluster count. A short dst is filled as far as it goes and
// ErrInsufficientBuffer is returned.
func (l *TextLayout) ClusterMetricsInto(dst []ClusterMetrics) (int, error) {
	if err := l.computeNominalRuns(); err != nil {
		return 0, err
	}
	for i := 0; i < len(dst) && i < len(l.clusters); i++ {
		dst[i] = l.clusters[i].metrics
	}
	return intoResult(len(dst), len(l.clusters))
}

// LineMetrics returns the metrics of every line.
func (l *TextLayout) LineMetrics() ([]LineMetrics, error) {
	if err := l.computeEffectiveRuns(); err != nil {
		return nil, err
	}
	return append([]LineMetrics(nil), l.lines...), nil
}

// LineMetricsInto copies line metrics into dst and returns the line count,
// with ErrInsufficientBuffer when dst is short.
func (l *TextLayout) LineMetricsInto(dst []LineMetrics) (int, error) {
	if err := l.computeEffectiveRuns(); err != nil {
		return 0, err
	}
	copy(dst, l.lines)
	return intoResult(len(dst), len(l.lines))
}

func intoResult(have, need int) (int, error) {
	if have < need {
		return need, ErrInsufficientBuffer
	}
	return need, nil
}

// Metrics returns the metrics of the laid out block.
func (l *TextLayout) Metrics() (TextMetrics, error) {
	if err := l.computeEffectiveRuns(); err != nil {
		return TextMetrics{}, err
	}
	return l.metrics, nil
}

package textlayout

// HitTestMetrics describes the text position found by hit testing.
type HitTestMetrics struct {
	TextPosition int
	Length       int
	Left, Top    float64
	Width        float64
	Height       float64
	BidiLevel    uint8
	IsText       bool
	IsTrimmed    bool
}

// HitTestPoint is not supported.
func (l *TextLayout) HitTestPoint(x, y float64) (m HitTestMetrics, trailing, inside bool, err error) {
	return HitTestMetrics{}, false, false, ErrNotImplemented
}

// HitTestTextPosition is not supported.
func (l *TextLayout) HitTestTextPosition(pos int, trailing bool) (x, y float64, m HitTestMetrics, err error) {
	return 0, 0, HitTestMetrics{}, ErrNotImplemented
}

// HitTestTextRange is not supported.
func (l *TextLayout) HitTestTextRange(r TextRange, originX, originY float64) ([]HitTestMetrics, error) {
	return nil, ErrNotImplemented
}

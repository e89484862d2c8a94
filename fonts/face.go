package fonts

import (
	"math"

	"github.com/go-text/typesetting/font"
)

// Metrics holds font-wide metrics in design units. Descent is positive
// below the baseline; positions are positive above it.
type Metrics struct {
	DesignUnitsPerEm       uint16
	Ascent                 int
	Descent                int
	LineGap                int
	CapHeight              int
	XHeight                int
	UnderlinePosition      int
	UnderlineThickness     int
	StrikethroughPosition  int
	StrikethroughThickness int
}

// Scale converts a design-unit value to the given em size.
func (m Metrics) Scale(v int, emSize float64) float64 {
	if m.DesignUnitsPerEm == 0 {
		return 0
	}
	return float64(v) * emSize / float64(m.DesignUnitsPerEm)
}

// Face is a font instance ready for shaping and measurement.
//
// Face is safe for concurrent use. The go-text face it hands out is not,
// so GoTextFace returns a fresh one on each call.
type Face struct {
	font *Font
}

// Font returns the font the face was created from.
func (f *Face) Font() *Font { return f.font }

// Metrics returns the design metrics of the face.
func (f *Face) Metrics() Metrics { return f.font.metrics }

// GoTextFace returns a new go-text face over the shared parsed font.
func (f *Face) GoTextFace() *font.Face { return font.NewFace(f.font.font) }

func readMetrics(face *font.Face) Metrics {
	upem := face.Upem()
	m := Metrics{DesignUnitsPerEm: upem}

	if ext, ok := face.FontHExtents(); ok {
		m.Ascent = round(ext.Ascender)
		m.Descent = -round(ext.Descender)
		m.LineGap = round(ext.LineGap)
	} else {
		m.Ascent = int(upem) * 4 / 5
		m.Descent = int(upem) / 5
	}

	m.CapHeight = round(face.LineMetric(font.CapHeight))
	m.XHeight = round(face.LineMetric(font.XHeight))
	m.UnderlinePosition = round(face.LineMetric(font.UnderlinePosition))
	m.UnderlineThickness = round(face.LineMetric(font.UnderlineThickness))
	m.StrikethroughPosition = round(face.LineMetric(font.StrikethroughPosition))
	m.StrikethroughThickness = round(face.LineMetric(font.StrikethroughThickness))

	if m.StrikethroughThickness <= 0 {
		m.StrikethroughThickness = max(m.UnderlineThickness, int(upem)/20)
	}
	if m.StrikethroughPosition == 0 {
		m.StrikethroughPosition = m.Ascent / 3
	}
	return m
}

func round(v float32) int { return int(math.Round(float64(v))) }

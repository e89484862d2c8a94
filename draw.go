package textlayout

import (
	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/shape"
)

// GlyphRun is a sequence of glyphs sharing a face, size and direction.
type GlyphRun struct {
	Face      *fonts.Face
	EmSize    float64
	Glyphs    []uint32
	Advances  []float64
	Offsets   []shape.Offset
	Sideways  bool
	BidiLevel uint8
}

// GlyphRunDescription relates a glyph run to its source text.
type GlyphRunDescription struct {
	Locale string
	Text   string
	// ClusterMap maps each rune of Text to the index of its first glyph.
	ClusterMap   []int
	TextPosition int
}

// Strikethrough describes a strikethrough line. Offset is relative to the
// baseline, negative above it.
type Strikethrough struct {
	Width            float64
	Thickness        float64
	Offset           float64
	ReadingDirection ReadingDirection
	FlowDirection    FlowDirection
	Locale           string
}

// Renderer receives the drawing events of a layout. Origins are baseline
// origins in layout coordinates offset by the Draw origin.
type Renderer interface {
	DrawGlyphRun(originX, originY float64, run *GlyphRun, desc *GlyphRunDescription, effect any) error
	DrawInlineObject(originX, originY float64, obj InlineObject, sideways, rtl bool, effect any) error
	DrawStrikethrough(originX, originY float64, s *Strikethrough, effect any) error
}

// Draw sends the layout to r: all glyph runs, then inline objects, then
// strikethroughs. The first renderer error stops drawing and is returned.
// Underlines are not drawn.
func (l *TextLayout) Draw(r Renderer, originX, originY float64) error {
	if r == nil {
		return invalidArg("nil renderer")
	}
	if err := l.computeEffectiveRuns(); err != nil {
		return err
	}

	for _, e := range l.eruns {
		run, desc := l.glyphRun(e)
		effect, _ := l.DrawingEffect(e.position())
		if err := r.DrawGlyphRun(e.originX+e.alignDX+originX, e.originY+originY, run, desc, effect); err != nil {
			return err
		}
	}

	for _, in := range l.inlines {
		effect, _ := l.DrawingEffect(in.run.start)
		if err := r.DrawInlineObject(in.originX+in.alignDX+originX, in.originY+originY,
			in.run.object, false, in.run.rtl(), effect); err != nil {
			return err
		}
	}

	for _, s := range l.strikes {
		e := s.erun
		st := s.s
		st.Width += e.extra
		effect, _ := l.DrawingEffect(e.position())
		if err := r.DrawStrikethrough(e.originX+e.alignDX+originX, e.originY+originY, &st, effect); err != nil {
			return err
		}
	}
	return nil
}

// glyphRun builds the renderer view of an effective run. Slices are copies.
func (l *TextLayout) glyphRun(e *effectiveRun) (*GlyphRun, *GlyphRunDescription) {
	r := e.run
	g0, g1 := e.glyphStart, e.glyphStart+e.glyphCount

	run := &GlyphRun{
		Face:      r.face,
		EmSize:    r.emSize,
		BidiLevel: r.bidiLevel,
	}
	if e.glyphCount > 0 {
		run.Glyphs = append([]uint32(nil), r.glyphs[g0:g1]...)
		run.Advances = append([]float64(nil), r.advances[g0:g1]...)
		run.Offsets = append([]shape.Offset(nil), r.offsets[g0:g1]...)
		for i, d := range e.justify {
			run.Advances[i] += d
		}
	}

	a, _ := l.regularAt(r.start)
	desc := &GlyphRunDescription{
		Locale:       a.locale,
		Text:         string(l.text[e.position() : e.position()+e.length]),
		ClusterMap:   append([]int(nil), e.clusterMap...),
		TextPosition: e.position(),
	}
	return run, desc
}

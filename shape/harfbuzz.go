package shape

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

var kernTag = opentype.MustNewTag("kern")

// HarfbuzzShaper shapes text with go-text's HarfBuzz port.
//
// HarfbuzzShaper is safe for concurrent use. The go-text shapers are
// pooled since they hold mutable buffers, and every call gets its own
// go-text face.
type HarfbuzzShaper struct {
	pool sync.Pool
}

// NewHarfbuzzShaper returns a ready shaper.
func NewHarfbuzzShaper() *HarfbuzzShaper {
	return &HarfbuzzShaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Glyphs implements Shaper.
func (s *HarfbuzzShaper) Glyphs(in Input) (Glyphs, error) {
	if in.Sideways {
		return Glyphs{}, ErrSidewaysUnsupported
	}
	if len(in.Text) == 0 || in.Face == nil {
		return Glyphs{ClusterMap: make([]int, len(in.Text)), placement: &Placement{}}, nil
	}

	out := s.shape(in)
	if err := checkBuffer(in, len(out.Glyphs)); err != nil {
		return Glyphs{}, err
	}
	return convert(out.Glyphs, len(in.Text), in.RTL), nil
}

// Place implements Shaper. The placement was computed together with the
// glyphs, so Place only hands out a copy.
func (s *HarfbuzzShaper) Place(_ Input, g Glyphs) (Placement, error) {
	if g.placement == nil {
		return Placement{}, ErrForeignGlyphs
	}
	return g.placement.clone(), nil
}

func (s *HarfbuzzShaper) shape(in Input) shaping.Output {
	dir := di.DirectionLTR
	if in.RTL {
		dir = di.DirectionRTL
	}
	kern := uint32(0)
	if in.PairKerning {
		kern = 1
	}

	input := shaping.Input{
		Text:         in.Text,
		RunStart:     0,
		RunEnd:       len(in.Text),
		Direction:    dir,
		Face:         in.Face.GoTextFace(),
		FontFeatures: []shaping.FontFeature{{Tag: kernTag, Value: kern}},
		Size:         floatToFixed(in.Size),
		Script:       in.Script,
		Language:     language.NewLanguage(in.Locale),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)
	return out
}

// convert turns go-text output into logical-order glyphs with a per-rune
// cluster map. RTL output arrives in visual order.
func convert(out []shaping.Glyph, runes int, rtl bool) Glyphs {
	n := len(out)
	g := Glyphs{
		Indices:    make([]uint32, n),
		ClusterMap: make([]int, runes),
	}
	p := Placement{
		Advances: make([]float64, n),
		Offsets:  make([]Offset, n),
	}

	clusters := make([]int, n)
	for i := range out {
		src := out[i]
		if rtl {
			src = out[n-1-i]
		}
		g.Indices[i] = uint32(src.GlyphID)
		p.Advances[i] = fixedToFloat(src.Advance)
		p.Offsets[i] = Offset{X: fixedToFloat(src.XOffset), Y: fixedToFloat(src.YOffset)}
		clusters[i] = src.ClusterIndex
	}

	// Each rune maps to the first glyph of the greatest cluster start at or
	// before it.
	gi := 0
	first := 0
	for r := 0; r < runes; r++ {
		for gi < n && clusters[gi] <= r {
			if gi == 0 || clusters[gi] != clusters[gi-1] {
				first = gi
			}
			gi++
		}
		g.ClusterMap[r] = first
	}

	g.placement = &p
	return g
}

// floatToFixed converts a float64 size to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

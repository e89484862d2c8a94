package shape

import (
	"errors"
	"fmt"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/textlayout/fonts"
)

// ErrSidewaysUnsupported is returned for sideways (vertical) shaping.
var ErrSidewaysUnsupported = errors.New("shape: sideways shaping is not supported")

// ErrForeignGlyphs is returned when Place receives glyphs produced by a
// different shaper.
var ErrForeignGlyphs = errors.New("shape: glyphs not produced by this shaper")

// BufferTooSmallError reports that Input.MaxGlyphs cannot hold the result.
type BufferTooSmallError struct {
	Required int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("shape: glyph buffer too small, %d glyphs required", e.Required)
}

// Input describes one run to shape.
type Input struct {
	// Text holds the runes of the run only.
	Text []rune

	Face *fonts.Face

	// Size is the em size in device independent pixels.
	Size float64

	Sideways bool
	RTL      bool
	Script   language.Script
	Locale   string

	// PairKerning enables the kern feature.
	PairKerning bool

	// MaxGlyphs bounds the glyph count. Zero means unbounded.
	MaxGlyphs int
}

// Glyphs is the first shaping step: glyph indices in logical order and a
// per-rune map to the first glyph of its cluster.
type Glyphs struct {
	Indices    []uint32
	ClusterMap []int

	placement *Placement
}

// Count returns the number of glyphs.
func (g Glyphs) Count() int { return len(g.Indices) }

// Offset is a glyph displacement from its pen position. Positive Y is up.
type Offset struct {
	X, Y float64
}

// Placement is the second shaping step.
type Placement struct {
	Advances []float64
	Offsets  []Offset
}

func (p Placement) clone() Placement {
	return Placement{
		Advances: append([]float64(nil), p.Advances...),
		Offsets:  append([]Offset(nil), p.Offsets...),
	}
}

// Shaper produces glyphs and placements for runs of text.
type Shaper interface {
	Glyphs(in Input) (Glyphs, error)
	Place(in Input, g Glyphs) (Placement, error)
}

// checkBuffer enforces Input.MaxGlyphs.
func checkBuffer(in Input, n int) error {
	if in.MaxGlyphs > 0 && n > in.MaxGlyphs {
		return &BufferTooSmallError{Required: n}
	}
	return nil
}

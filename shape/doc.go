// Package shape converts runs of text into glyphs and glyph placements.
//
// A Shaper works in two steps, mirroring the glyph-then-placement split of
// OpenType engines:
//
//	g, err := s.Glyphs(in)           // glyph indices and cluster map
//	p, err := s.Place(in, g)         // advances and offsets
//
// Glyphs reports a *BufferTooSmallError when Input.MaxGlyphs is too small,
// carrying the exact number of glyphs required so the caller can retry.
//
// HarfbuzzShaper is backed by github.com/go-text/typesetting. Cached wraps
// any Shaper with an LRU of shaping results keyed by font and run
// parameters.
package shape

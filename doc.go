// Package textlayout lays out formatted text in a rectangular box.
//
// # Overview
//
// textlayout is a Pure Go paragraph layout engine. It takes a string, a
// TextFormat with default attributes and a box size, and produces soft
// wrapped, aligned lines of shaped glyph runs that a Renderer can draw.
//
// # Quick Start
//
//	import "github.com/gogpu/textlayout"
//	import "github.com/gogpu/textlayout/fonts"
//
//	format, err := textlayout.NewTextFormat(fonts.FamilyGo, 16)
//	if err != nil {
//		return err
//	}
//
//	layout, err := textlayout.NewTextLayout("Hello, world", format, 300, 200)
//	if err != nil {
//		return err
//	}
//
//	// Attributes apply to rune ranges.
//	layout.SetFontWeight(fonts.WeightBold, textlayout.TextRange{Start: 0, Length: 5})
//
//	metrics, err := layout.Metrics()
//	err = layout.Draw(renderer, 0, 0)
//
// # Pipeline
//
// A layout is computed lazily in three stages, each cached until an
// attribute or property it depends on changes:
//
//   - Nominal runs: the text is split by attribute ranges, inline objects,
//     script and bidi level (package analysis), and every run is shaped
//     (package shape) into glyphs and clusters.
//   - Minimal width: DetermineMinWidth, the widest unbreakable span.
//   - Effective runs: clusters are broken into lines, split into per-line
//     runs and aligned horizontally and vertically.
//
// Changing text or paragraph alignment realigns the computed lines in
// place. A failing analyzer or shaper leaves the previous results intact.
//
// # Coordinate System
//
//   - Positions are rune indices into the text
//   - Origin (0,0) at the top-left of the layout box
//   - Y increases down; drawing origins are baseline origins
//
// # Packages
//
//   - fonts: font collections, matching and face metrics (Go fonts built in)
//   - analysis: script, bidi and line break analysis
//   - shape: HarfBuzz shaping with an optional LRU cache
//   - recording: a Renderer that records drawing calls for playback
//
// # Logging
//
// The package logs through log/slog. Logging is silent until SetLogger is
// called.
package textlayout

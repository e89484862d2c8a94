// Package analysis defines the text analysis contract used by the layout
// engine and provides a Unicode based implementation.
//
// An Analyzer reads text from a Source and reports its findings to a Sink:
// script runs, bidi embedding levels and per-character line breakpoints.
// Each report covers its requested span exactly once, possibly split into
// several non-overlapping calls.
//
// The default Analyzer resolves scripts with
// github.com/go-text/typesetting/language, bidi levels with
// golang.org/x/text/unicode/bidi and break opportunities (UAX #14) with
// github.com/go-text/typesetting/segmenter.
package analysis

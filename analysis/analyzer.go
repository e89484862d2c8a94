package analysis

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/bidi"
)

// ErrSpan is returned when an analysis span does not fit the source text.
var ErrSpan = errors.New("analysis: span out of range")

// UnicodeAnalyzer implements Analyzer with Unicode script data, the Unicode
// bidi algorithm and UAX #14 line breaking.
//
// UnicodeAnalyzer holds no state and is safe for concurrent use.
type UnicodeAnalyzer struct{}

// New returns the default analyzer.
func New() *UnicodeAnalyzer { return &UnicodeAnalyzer{} }

var _ Analyzer = (*UnicodeAnalyzer)(nil)

// AnalyzeScript reports runs of characters sharing a script. Common and
// Inherited characters take the script of their neighbours. Control
// characters form their own Common runs flagged ShapesNoVisual.
func (a *UnicodeAnalyzer) AnalyzeScript(src Source, pos, length int, sink Sink) error {
	runes, err := span(src, pos, length)
	if err != nil || len(runes) == 0 {
		return err
	}

	scripts := make([]ScriptAnalysis, len(runes))
	for i, r := range runes {
		if IsControl(r) {
			scripts[i] = ScriptAnalysis{Script: language.Common, Shapes: ShapesNoVisual}
			continue
		}
		scripts[i] = ScriptAnalysis{Script: language.LookupScript(r)}
	}
	resolveInheritedScripts(scripts)

	start := 0
	for i := 1; i <= len(scripts); i++ {
		if i < len(scripts) && scripts[i] == scripts[start] {
			continue
		}
		if err := sink.SetScriptAnalysis(pos+start, i-start, scripts[start]); err != nil {
			return err
		}
		start = i
	}
	return nil
}

// resolveInheritedScripts replaces Inherited with the preceding concrete
// script and Common with the preceding, or failing that the following,
// concrete script. Control runs are left untouched and do not propagate.
func resolveInheritedScripts(scripts []ScriptAnalysis) {
	isConcrete := func(sa ScriptAnalysis) bool {
		return sa.Shapes == ShapesDefault && sa.Script != language.Common && sa.Script != language.Inherited
	}

	last := language.Common
	for i := range scripts {
		sa := &scripts[i]
		switch {
		case sa.Shapes == ShapesNoVisual:
			continue
		case isConcrete(*sa):
			last = sa.Script
		case last != language.Common:
			sa.Script = last
		}
	}

	// leading Common/Inherited characters take the first concrete script
	next := language.Common
	for i := len(scripts) - 1; i >= 0; i-- {
		sa := &scripts[i]
		switch {
		case sa.Shapes == ShapesNoVisual:
			continue
		case isConcrete(*sa):
			next = sa.Script
		case next != language.Common:
			sa.Script = next
		}
	}

	for i := range scripts {
		if scripts[i].Script == language.Inherited {
			scripts[i].Script = language.Common
		}
	}
}

// AnalyzeBidi resolves embedding levels for the span, taken as one
// paragraph in the source's reading direction. Levels are 0 and 1 for a
// left-to-right paragraph, 1 and 2 for a right-to-left one.
func (a *UnicodeAnalyzer) AnalyzeBidi(src Source, pos, length int, sink Sink) error {
	runes, err := span(src, pos, length)
	if err != nil || len(runes) == 0 {
		return err
	}

	var base uint8
	dir := bidi.LeftToRight
	if src.ParagraphRTL() {
		base = 1
		dir = bidi.RightToLeft
	}

	levels := make([]uint8, len(runes))
	for i := range levels {
		levels[i] = base
	}

	var p bidi.Paragraph
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(dir)); err == nil {
		if ordering, err := p.Order(); err == nil {
			// run.Pos() returns rune indices, end inclusive
			for i := 0; i < ordering.NumRuns(); i++ {
				run := ordering.Run(i)
				start, end := run.Pos()
				level := levelFor(run.Direction() == bidi.RightToLeft, base)
				for j := start; j <= end && j < len(levels); j++ {
					levels[j] = level
				}
			}
		}
	}

	start := 0
	for i := 1; i <= len(levels); i++ {
		if i < len(levels) && levels[i] == levels[start] {
			continue
		}
		if err := sink.SetBidiLevel(pos+start, i-start, base, levels[start]); err != nil {
			return err
		}
		start = i
	}
	return nil
}

func levelFor(rtl bool, base uint8) uint8 {
	switch {
	case rtl:
		return 1
	case base == 1:
		return 2
	default:
		return 0
	}
}

// AnalyzeLineBreakpoints reports break conditions for every character of
// the span. Break opportunities between characters are CanBreak, or
// MustBreak after a hard line break; everything else is MayNotBreak.
func (a *UnicodeAnalyzer) AnalyzeLineBreakpoints(src Source, pos, length int, sink Sink) error {
	runes, err := span(src, pos, length)
	if err != nil || len(runes) == 0 {
		return err
	}

	n := len(runes)
	bps := make([]Breakpoint, n)
	for i, r := range runes {
		bps[i] = Breakpoint{
			Before:       BreakMayNotBreak,
			After:        BreakMayNotBreak,
			IsWhitespace: unicode.IsSpace(r),
			IsSoftHyphen: r == SoftHyphen,
		}
	}
	bps[0].Before = BreakNeutral
	bps[n-1].After = BreakCanBreak

	var seg segmenter.Segmenter
	seg.Init(runes)
	it := seg.LineIterator()
	for it.Next() {
		line := it.Line()
		end := line.Offset + len(line.Text)
		cond := BreakCanBreak
		if line.IsMandatoryBreak {
			cond = BreakMustBreak
		}
		if end <= 0 || end > n {
			continue
		}
		bps[end-1].After = cond
		if end < n {
			bps[end].Before = cond
		}
	}

	return sink.SetLineBreakpoints(pos, bps)
}

func span(src Source, pos, length int) ([]rune, error) {
	text := src.Text()
	if pos < 0 || length < 0 || pos+length > len(text) {
		return nil, fmt.Errorf("%w: [%d,%d) of %d", ErrSpan, pos, pos+length, len(text))
	}
	return text[pos : pos+length], nil
}

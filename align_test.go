package textlayout

import (
	"math"
	"strings"
	"testing"
)

func TestTextAlignmentShift(t *testing.T) {
	tests := []struct {
		align TextAlignment
		shift float64
	}{
		{AlignLeading, 0},
		{AlignTrailing, 90},
		{AlignCenter, 45},
		// A single line closes the paragraph and stays leading.
		{AlignJustified, 0},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			l := newFixedLayout(t, "Hello world", 200, 100, WithTextAlignment(tt.align))
			m, err := l.Metrics()
			if err != nil {
				t.Fatal(err)
			}
			if m.Left != tt.shift {
				t.Errorf("Left = %v, want %v", m.Left, tt.shift)
			}
			for _, e := range l.eruns {
				if e.alignDX != tt.shift {
					t.Errorf("run at %d shift = %v, want %v", e.position(), e.alignDX, tt.shift)
				}
			}
		})
	}
}

func TestAlignmentSymmetry(t *testing.T) {
	l := newFixedLayout(t, "aa bbb cccc d eeeee ff", 55, 1000)
	mustLines(t, l)

	shifts := func(a TextAlignment) []float64 {
		if err := l.SetTextAlignment(a); err != nil {
			t.Fatal(err)
		}
		out := make([]float64, len(l.lineInfo))
		for i, info := range l.lineInfo {
			if len(info.eruns) > 0 {
				out[i] = info.eruns[0].alignDX
			}
		}
		return out
	}

	leading := shifts(AlignLeading)
	trailing := shifts(AlignTrailing)
	center := shifts(AlignCenter)
	for i := range leading {
		if leading[i] != 0 {
			t.Errorf("line %d leading shift = %v", i, leading[i])
		}
		if 2*center[i] != trailing[i] {
			t.Errorf("line %d: center %v is not half of trailing %v", i, center[i], trailing[i])
		}
		if want := 55 - l.lineInfo[i].width; trailing[i] != want {
			t.Errorf("line %d trailing shift = %v, want %v", i, trailing[i], want)
		}
	}
}

func TestSetTextAlignmentKeepsLines(t *testing.T) {
	l := newFixedLayout(t, "aa bb cc", 45, 100)
	mustLines(t, l)
	eruns := l.eruns

	if err := l.SetTextAlignment(AlignCenter); err != nil {
		t.Fatal(err)
	}
	if l.recompute&recomputeEffectiveRuns != 0 {
		t.Error("alignment change marked effective runs stale")
	}
	if l.eruns[0] != eruns[0] {
		t.Error("alignment change rebuilt the runs")
	}
	// "aa" is 20 wide in a 45 wide box.
	if got := l.eruns[0].alignDX; got != 12.5 {
		t.Errorf("center shift = %v, want 12.5", got)
	}
}

func TestJustifiedLine(t *testing.T) {
	l := newFixedLayout(t, "aa bb cc", 65, 100, WithTextAlignment(AlignJustified))
	if err := l.SetStrikethrough(true, TextRange{0, 8}); err != nil {
		t.Fatal(err)
	}

	lines := mustLines(t, l)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !lines[0].Justified {
		t.Error("first line should be justified")
	}
	if lines[1].Justified {
		t.Error("last line of the paragraph should not be justified")
	}

	e := l.eruns[0]
	if e.extra != 15 || len(e.justify) != 6 || e.justify[2] != 15 {
		t.Fatalf("justification extra %v deltas %v, want 15 on the inner space", e.extra, e.justify)
	}
	// The trailing space takes no extra width.
	if e.justify[5] != 0 {
		t.Errorf("trailing space delta = %v, want 0", e.justify[5])
	}

	var r eventRenderer
	if err := l.Draw(&r, 0, 0); err != nil {
		t.Fatal(err)
	}
	first := r.events[0].run
	if first.Advances[2] != 25 || first.Advances[1] != 10 {
		t.Errorf("advances = %v, want the inner space widened to 25", first.Advances)
	}
	for _, ev := range r.events {
		if ev.kind == eventStrike && ev.y == r.events[0].y && ev.strike.Width != 75 {
			t.Errorf("strikethrough width = %v, want 75", ev.strike.Width)
		}
	}

	// Leaving justification restores the advances.
	if err := l.SetTextAlignment(AlignLeading); err != nil {
		t.Fatal(err)
	}
	if l.eruns[0].justify != nil || l.lines[0].Justified {
		t.Error("leading alignment kept justification state")
	}
}

func TestJustifyWithoutWhitespaceFallsBack(t *testing.T) {
	buf := captureLog(t)
	l := newFixedLayout(t, "aaaaaaaa", 35, 100,
		WithTextAlignment(AlignJustified), WithWordWrapping(WrapCharacter))

	for i, line := range mustLines(t, l) {
		if line.Justified {
			t.Errorf("line %d justified without whitespace", i)
		}
	}
	for _, e := range l.eruns {
		if e.alignDX != 0 {
			t.Errorf("run at %d shift = %v, want leading", e.position(), e.alignDX)
		}
	}
	if !strings.Contains(buf.String(), "not justifiable") {
		t.Errorf("log = %q, want the fallback message", buf.String())
	}
}

func TestParagraphAlignment(t *testing.T) {
	tests := []struct {
		align ParagraphAlignment
		top   func(h float64) float64
	}{
		{ParagraphNear, func(float64) float64 { return 0 }},
		{ParagraphFar, func(h float64) float64 { return 200 - h }},
		{ParagraphCenter, func(h float64) float64 { return (200 - h) / 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			l := newFixedLayout(t, "aaaa bbbb", 45, 200, WithParagraphAlignment(tt.align))
			m, err := l.Metrics()
			if err != nil {
				t.Fatal(err)
			}
			if want := tt.top(m.Height); m.Top != want {
				t.Errorf("Top = %v, want %v", m.Top, want)
			}
			if want := m.Top + l.lines[0].Baseline; l.eruns[0].originY != want {
				t.Errorf("first baseline = %v, want %v", l.eruns[0].originY, want)
			}
			if want := m.Top + l.lines[0].Height + l.lines[1].Baseline; math.Abs(l.eruns[1].originY-want) > 1e-9 {
				t.Errorf("second baseline = %v, want %v", l.eruns[1].originY, want)
			}
		})
	}
}

func TestSetParagraphAlignmentInPlace(t *testing.T) {
	l := newFixedLayout(t, "abc", 100, 100)
	m, err := l.Metrics()
	if err != nil {
		t.Fatal(err)
	}
	if err := l.SetParagraphAlignment(ParagraphFar); err != nil {
		t.Fatal(err)
	}
	if l.recompute&recomputeEffectiveRuns != 0 {
		t.Error("paragraph alignment marked effective runs stale")
	}
	got, _ := l.Metrics()
	if got.Top != 100-m.Height {
		t.Errorf("Top = %v, want %v", got.Top, 100-m.Height)
	}
}

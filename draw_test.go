package textlayout

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/textlayout/analysis"
)

func TestDrawOrder(t *testing.T) {
	obj := &boxObject{metrics: InlineObjectMetrics{Width: 25, Height: 10, Baseline: 8}}
	l := newFixedLayout(t, "abXde", 1000, 1000)
	if err := l.SetInlineObject(obj, TextRange{2, 1}); err != nil {
		t.Fatal(err)
	}
	if err := l.SetStrikethrough(true, TextRange{3, 2}); err != nil {
		t.Fatal(err)
	}
	if err := l.SetDrawingEffect("red", TextRange{0, 5}); err != nil {
		t.Fatal(err)
	}

	var r eventRenderer
	if err := l.Draw(&r, 5, 7); err != nil {
		t.Fatal(err)
	}

	kinds := []eventKind{eventGlyphRun, eventGlyphRun, eventInline, eventStrike}
	if len(r.events) != len(kinds) {
		t.Fatalf("got %d events, want %d", len(r.events), len(kinds))
	}
	for i, k := range kinds {
		if r.events[i].kind != k {
			t.Errorf("event %d kind = %d, want %d", i, r.events[i].kind, k)
		}
		if r.events[i].effect != "red" {
			t.Errorf("event %d effect = %v, want red", i, r.events[i].effect)
		}
	}

	baseline := l.lines[0].Baseline
	wantX := []float64{5, 50, 25, 50}
	for i, x := range wantX {
		if ev := r.events[i]; ev.x != x || ev.y != baseline+7 {
			t.Errorf("event %d at (%v, %v), want (%v, %v)", i, ev.x, ev.y, x, baseline+7)
		}
	}

	first := r.events[0]
	if first.desc.Text != "ab" || first.desc.TextPosition != 0 || !equalInts(first.desc.ClusterMap, []int{0, 1}) {
		t.Errorf("first description = %+v", first.desc)
	}
	if len(first.run.Glyphs) != 2 || first.run.Glyphs[0] != 'a' || first.run.EmSize != 16 {
		t.Errorf("first run = %+v", first.run)
	}
	if first.desc.Locale != defaultLocale {
		t.Errorf("locale = %q, want %q", first.desc.Locale, defaultLocale)
	}

	second := r.events[1]
	if second.desc.Text != "de" || second.desc.TextPosition != 3 {
		t.Errorf("second description = %+v", second.desc)
	}
	if r.events[2].object != InlineObject(obj) {
		t.Error("inline event carries the wrong object")
	}

	s := r.events[3].strike
	if s.Width != 20 || s.Thickness <= 0 || s.Offset >= 0 {
		t.Errorf("strikethrough = %+v, want width 20 above the baseline", s)
	}
	if s.ReadingDirection != ReadingLeftToRight || s.FlowDirection != FlowTopToBottom {
		t.Errorf("strikethrough directions = %v %v", s.ReadingDirection, s.FlowDirection)
	}
}

func TestDrawCopiesGlyphData(t *testing.T) {
	l := newFixedLayout(t, "abc", 1000, 1000)
	var r eventRenderer
	if err := l.Draw(&r, 0, 0); err != nil {
		t.Fatal(err)
	}
	r.events[0].run.Advances[0] = 99

	var again eventRenderer
	if err := l.Draw(&again, 0, 0); err != nil {
		t.Fatal(err)
	}
	if again.events[0].run.Advances[0] != 10 {
		t.Error("renderer changes leaked into the layout")
	}
}

func TestDrawStopsOnError(t *testing.T) {
	boom := errors.New("renderer failed")
	l := newFixedLayout(t, "aa bb cc", 25, 1000)
	r := eventRenderer{failAt: 2, err: boom}

	if err := l.Draw(&r, 0, 0); !errors.Is(err, boom) {
		t.Fatalf("Draw error = %v, want %v", err, boom)
	}
	if len(r.events) != 2 {
		t.Errorf("got %d events after the failure, want 2", len(r.events))
	}
}

func TestDrawNilRenderer(t *testing.T) {
	l := newFixedLayout(t, "abc", 100, 100)
	if err := l.Draw(nil, 0, 0); !errors.Is(err, ErrInvalidArg) {
		t.Errorf("Draw(nil) = %v, want ErrInvalidArg", err)
	}
}

func TestDrawRightToLeftRun(t *testing.T) {
	l := newFixedLayout(t, "שלום", 100, 100, WithReadingDirection(ReadingRightToLeft))
	var r eventRenderer
	if err := l.Draw(&r, 0, 0); err != nil {
		t.Fatal(err)
	}
	ev := r.events[0]
	if ev.run.BidiLevel != 1 || ev.x != 100 {
		t.Errorf("rtl run level %d at %v, want level 1 at 100", ev.run.BidiLevel, ev.x)
	}
}

func TestTrimmingSign(t *testing.T) {
	sign, err := NewTrimmingSign(newFormat(t))
	if err != nil {
		t.Fatal(err)
	}

	m, err := sign.Metrics()
	if err != nil {
		t.Fatal(err)
	}
	if m.Width <= 0 || m.Height <= 0 || m.Baseline <= 0 || m.Baseline >= m.Height {
		t.Errorf("metrics = %+v", m)
	}
	before, after, err := sign.BreakConditions()
	if err != nil || before != analysis.BreakNeutral || after != analysis.BreakNeutral {
		t.Errorf("BreakConditions = %v %v %v, want neutral", before, after, err)
	}

	var r eventRenderer
	if err := sign.Draw(&r, 10, 50, false, false, "blue"); err != nil {
		t.Fatal(err)
	}
	if len(r.events) != 1 {
		t.Fatalf("got %d events, want 1", len(r.events))
	}
	ev := r.events[0]
	if ev.desc.Text != ellipsis || ev.effect != "blue" {
		t.Errorf("sign drew %q with effect %v", ev.desc.Text, ev.effect)
	}
	if ev.x != 10 || math.Abs(ev.y-50) > 1e-9 {
		t.Errorf("sign drawn at (%v, %v), want baseline at (10, 50)", ev.x, ev.y)
	}

	if _, err := NewTrimmingSign(nil); !errors.Is(err, ErrInvalidArg) {
		t.Errorf("NewTrimmingSign(nil) = %v", err)
	}
}

func TestTrimmingSignAsInlineObject(t *testing.T) {
	sign, err := NewTrimmingSign(newFormat(t))
	if err != nil {
		t.Fatal(err)
	}
	m, err := sign.Metrics()
	if err != nil {
		t.Fatal(err)
	}

	l := newFixedLayout(t, "ab.", 1000, 1000)
	if err := l.SetInlineObject(sign, TextRange{2, 1}); err != nil {
		t.Fatal(err)
	}
	cm := mustClusters(t, l)
	if cm[2].Width != m.Width {
		t.Errorf("sign cluster width = %v, want %v", cm[2].Width, m.Width)
	}
	if err := l.SetTrimming(Trimming{Granularity: TrimmingCharacter, Sign: sign}); err != nil {
		t.Fatal(err)
	}
	if got := l.Trimming(); got.Sign != InlineObject(sign) {
		t.Error("Trimming() lost the sign")
	}
}

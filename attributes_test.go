package textlayout

import (
	"errors"
	"testing"

	"github.com/gogpu/textlayout/fonts"
)

func TestFontWeightNestedRanges(t *testing.T) {
	l := newFixedLayout(t, "Hello world", 1000, 1000)

	if err := l.SetFontWeight(fonts.WeightBold, TextRange{Start: 0, Length: 5}); err != nil {
		t.Fatal(err)
	}
	if err := l.SetFontWeight(fonts.WeightLight, TextRange{Start: 2, Length: 1}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		pos    int
		weight fonts.Weight
		rng    TextRange
	}{
		{0, fonts.WeightBold, TextRange{0, 2}},
		{1, fonts.WeightBold, TextRange{0, 2}},
		{2, fonts.WeightLight, TextRange{2, 1}},
		{3, fonts.WeightBold, TextRange{3, 2}},
		{4, fonts.WeightBold, TextRange{3, 2}},
		{5, fonts.WeightNormal, TextRange{5, 6}},
		{10, fonts.WeightNormal, TextRange{5, 6}},
	}
	for _, tt := range tests {
		w, r := l.FontWeight(tt.pos)
		if w != tt.weight || r != tt.rng {
			t.Errorf("FontWeight(%d) = %v %v, want %v %v", tt.pos, w, r, tt.weight, tt.rng)
		}
	}
}

func TestAttributeSettersKeepOtherFields(t *testing.T) {
	l := newFixedLayout(t, "abcdef", 1000, 1000)
	if err := l.SetFontSize(30, TextRange{0, 6}); err != nil {
		t.Fatal(err)
	}
	if err := l.SetFontStyle(fonts.StyleItalic, TextRange{2, 2}); err != nil {
		t.Fatal(err)
	}

	size, r := l.FontSize(3)
	if size != 30 || r != (TextRange{2, 2}) {
		t.Errorf("FontSize(3) = %v %v, want 30 [2,4)", size, r)
	}
	if s, _ := l.FontStyle(5); s != fonts.StyleNormal {
		t.Errorf("FontStyle(5) = %v, want Normal", s)
	}
	if name, _ := l.FontFamilyName(0); name != fonts.FamilyGo {
		t.Errorf("FontFamilyName(0) = %q", name)
	}
}

func TestGettersOutsideText(t *testing.T) {
	l := newFixedLayout(t, "abc", 1000, 1000, WithLocale("de-de"))
	if err := l.SetStrikethrough(true, TextRange{0, 3}); err != nil {
		t.Fatal(err)
	}

	for _, pos := range []int{3, 10, -1} {
		if w, r := l.FontWeight(pos); w != fonts.WeightNormal || r != (TextRange{Start: pos}) {
			t.Errorf("FontWeight(%d) = %v %v, want default and empty range", pos, w, r)
		}
		if on, r := l.Strikethrough(pos); on || r.Length != 0 {
			t.Errorf("Strikethrough(%d) = %v %v", pos, on, r)
		}
		if loc, _ := l.LocaleName(pos); loc != "de-de" {
			t.Errorf("LocaleName(%d) = %q, want format locale", pos, loc)
		}
	}
}

func TestRangesClippedToText(t *testing.T) {
	l := newFixedLayout(t, "abc", 1000, 1000)
	if err := l.SetUnderline(true, TextRange{Start: 1, Length: 100}); err != nil {
		t.Fatal(err)
	}
	on, r := l.Underline(2)
	if !on || r != (TextRange{1, 2}) {
		t.Errorf("Underline(2) = %v %v, want true [1,3)", on, r)
	}
	if err := l.SetUnderline(true, TextRange{Start: 10, Length: 5}); err != nil {
		t.Errorf("range past the text: %v", err)
	}
}

func TestAttributeValidation(t *testing.T) {
	l := newFixedLayout(t, "abc", 1000, 1000)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"negative start", l.SetFontWeight(fonts.WeightBold, TextRange{-1, 2}), ErrInvalidArg},
		{"negative length", l.SetPairKerning(true, TextRange{0, -1}), ErrInvalidArg},
		{"bad weight", l.SetFontWeight(0, TextRange{0, 1}), ErrInvalidArg},
		{"zero size", l.SetFontSize(0, TextRange{0, 1}), ErrInvalidArg},
		{"empty family", l.SetFontFamilyName("", TextRange{0, 1}), ErrInvalidArg},
		{"negative min advance", l.SetCharacterSpacing(0, 0, -1, TextRange{0, 1}), ErrInvalidArg},
		{"typography", l.SetTypography(nil, TextRange{0, 1}), ErrNotImplemented},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, tt.err, tt.want)
		}
	}

	var re *RangeError
	if err := l.SetStrikethrough(true, TextRange{-2, 1}); !errors.As(err, &re) {
		t.Errorf("negative range error = %v, want *RangeError", err)
	}
}

func TestSetterInvalidation(t *testing.T) {
	l := newFixedLayout(t, "abc def", 1000, 1000)
	if _, err := l.Metrics(); err != nil {
		t.Fatal(err)
	}
	if _, err := l.DetermineMinWidth(); err != nil {
		t.Fatal(err)
	}
	if l.recompute != 0 {
		t.Fatalf("recompute = %b after Metrics, want 0", l.recompute)
	}

	// Normal over the whole text is the current value.
	if err := l.SetFontWeight(fonts.WeightNormal, TextRange{0, 7}); err != nil {
		t.Fatal(err)
	}
	if l.recompute != 0 {
		t.Errorf("unchanged value marked %b", l.recompute)
	}

	if err := l.SetDrawingEffect("red", TextRange{0, 3}); err != nil {
		t.Fatal(err)
	}
	if l.recompute != recomputeEverything {
		t.Errorf("changed value marked %b, want everything", l.recompute)
	}

	if _, err := l.Metrics(); err != nil {
		t.Fatal(err)
	}
	if _, err := l.DetermineMinWidth(); err != nil {
		t.Fatal(err)
	}
	if err := l.SetMaxWidth(30); err != nil {
		t.Fatal(err)
	}
	if l.recompute != recomputeEffectiveRuns {
		t.Errorf("SetMaxWidth marked %b, want effective runs", l.recompute)
	}
}

func TestInlineObjectHandles(t *testing.T) {
	l := newFixedLayout(t, "abcdef", 1000, 1000)
	a, b := &boxObject{}, &boxObject{}

	if err := l.SetInlineObject(a, TextRange{0, 2}); err != nil {
		t.Fatal(err)
	}
	if err := l.SetInlineObject(b, TextRange{2, 2}); err != nil {
		t.Fatal(err)
	}

	got, r := l.InlineObject(1)
	if got != InlineObject(a) || r != (TextRange{0, 2}) {
		t.Errorf("InlineObject(1) = %v %v", got, r)
	}
	got, r = l.InlineObject(3)
	if got != InlineObject(b) || r != (TextRange{2, 2}) {
		t.Errorf("InlineObject(3) = %v %v", got, r)
	}
	if got, _ := l.InlineObject(5); got != nil {
		t.Errorf("InlineObject(5) = %v, want nil", got)
	}
}

package textlayout

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/textlayout/fonts"
)

func TestNewTextFormatDefaults(t *testing.T) {
	f, err := NewTextFormat(fonts.FamilyGo, 12)
	if err != nil {
		t.Fatalf("NewTextFormat: %v", err)
	}
	if f.FontCollection() != fonts.Default() {
		t.Error("nil collection should resolve to the default collection")
	}
	if got := f.IncrementalTabStop(); got != 48 {
		t.Errorf("IncrementalTabStop() = %v, want 48", got)
	}
	if got := f.LocaleName(); got != defaultLocale {
		t.Errorf("LocaleName() = %q, want %q", got, defaultLocale)
	}
	if f.FontWeight() != fonts.WeightNormal || f.FontStyle() != fonts.StyleNormal {
		t.Errorf("weight/style = %v/%v, want Normal/Normal", f.FontWeight(), f.FontStyle())
	}
	if f.ReadingDirection() != ReadingLeftToRight || f.FlowDirection() != FlowTopToBottom {
		t.Errorf("directions = %v/%v", f.ReadingDirection(), f.FlowDirection())
	}
}

func TestNewTextFormatValidation(t *testing.T) {
	tests := []struct {
		name string
		size float64
		opts []FormatOption
		want error
	}{
		{"zero size", 0, nil, ErrInvalidArg},
		{"negative size", -1, nil, ErrInvalidArg},
		{"bad weight", 12, []FormatOption{WithWeight(0)}, ErrInvalidArg},
		{"bad weight high", 12, []FormatOption{WithWeight(1000)}, ErrInvalidArg},
		{"bad style", 12, []FormatOption{WithStyle(fonts.Style(9))}, ErrInvalidArg},
		{"long locale", 12, []FormatOption{WithLocale(strings.Repeat("x", maxLocaleLen))}, ErrInvalidArg},
		{"bad alignment", 12, []FormatOption{WithTextAlignment(TextAlignment(7))}, ErrInvalidArg},
		{"bad wrapping", 12, []FormatOption{WithWordWrapping(WordWrapping(-1))}, ErrInvalidArg},
		{"zero tab stop", 12, []FormatOption{WithTabStop(0)}, ErrInvalidArg},
		{"flow conflict", 12, []FormatOption{WithFlowDirection(FlowLeftToRight)}, ErrFlowDirectionConflicts},
		{"vertical reading", 12, []FormatOption{WithReadingDirection(ReadingTopToBottom)}, ErrNotImplemented},
		{"negative line height", 12, []FormatOption{WithLineSpacing(LineSpacing{Method: LineSpacingUniform, Height: -1})}, ErrInvalidArg},
		{"rtl", 12, []FormatOption{WithReadingDirection(ReadingRightToLeft)}, nil},
		{"bottom to top flow", 12, []FormatOption{WithFlowDirection(FlowBottomToTop)}, nil},
		{"locale limit", 12, []FormatOption{WithLocale(strings.Repeat("x", maxLocaleLen-1))}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTextFormat(fonts.FamilyGo, tt.size, tt.opts...)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("NewTextFormat: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("NewTextFormat error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{AlignLeading.String(), "Leading"},
		{AlignJustified.String(), "Justified"},
		{TextAlignment(42).String(), unknownStr},
		{ParagraphCenter.String(), "Center"},
		{ReadingRightToLeft.String(), "RightToLeft"},
		{FlowBottomToTop.String(), "BottomToTop"},
		{WrapEmergencyBreak.String(), "EmergencyBreak"},
		{LineSpacingUniform.String(), "Uniform"},
		{TrimmingWord.String(), "Word"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestRangeErrorIsInvalidArg(t *testing.T) {
	err := error(&RangeError{Range: TextRange{Start: -1, Length: 2}, Len: 5})
	if !errors.Is(err, ErrInvalidArg) {
		t.Error("RangeError should match ErrInvalidArg")
	}
	var re *RangeError
	if !errors.As(err, &re) || re.Len != 5 {
		t.Errorf("errors.As = %v", re)
	}
}

func TestAnalysisErrorUnwrap(t *testing.T) {
	err := error(&AnalysisError{Stage: StageShaping, Pos: 1, Length: 2, Err: errAnalysis})
	if !errors.Is(err, errAnalysis) {
		t.Error("AnalysisError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "[1,3)") {
		t.Errorf("Error() = %q, want the failing range", err.Error())
	}
}

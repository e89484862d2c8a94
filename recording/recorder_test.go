package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/textlayout"
	"github.com/gogpu/textlayout/fonts"
)

func newLayout(t *testing.T, text string) *textlayout.TextLayout {
	t.Helper()

	format, err := textlayout.NewTextFormat(fonts.FamilyGo, 16)
	if err != nil {
		t.Fatalf("NewTextFormat() error = %v", err)
	}
	l, err := textlayout.NewTextLayout(text, format, 1000, 1000)
	if err != nil {
		t.Fatalf("NewTextLayout() error = %v", err)
	}
	return l
}

func TestRecorderRecordsLayout(t *testing.T) {
	l := newLayout(t, "Hello world")
	if err := l.SetStrikethrough(true, textlayout.TextRange{Start: 6, Length: 5}); err != nil {
		t.Fatal(err)
	}

	rec := NewRecorder()
	if err := l.Draw(rec, 10, 20); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	r := rec.FinishRecording()

	if got := r.CountByType(CmdDrawGlyphRun); got != 2 {
		t.Errorf("glyph runs = %d, want 2", got)
	}
	if got := r.CountByType(CmdDrawStrikethrough); got != 1 {
		t.Errorf("strikethroughs = %d, want 1", got)
	}
	if got := r.Resources().FaceCount(); got != 1 {
		t.Errorf("faces = %d, want 1", got)
	}

	// Glyph runs come before strikethroughs.
	cmds := r.Commands()
	if cmds[len(cmds)-1].Type() != CmdDrawStrikethrough {
		t.Errorf("last command = %v, want DrawStrikethrough", cmds[len(cmds)-1].Type())
	}

	first := cmds[0].(GlyphRunCommand)
	if first.X != 10 {
		t.Errorf("first run X = %v, want 10", first.X)
	}
	if first.Y <= 20 {
		t.Errorf("first run Y = %v, want below the origin", first.Y)
	}
	if first.Text != "Hello " || first.TextPosition != 0 {
		t.Errorf("first run text = %q at %d", first.Text, first.TextPosition)
	}
	second := cmds[1].(GlyphRunCommand)
	strike := cmds[2].(StrikethroughCommand)
	if strike.X != second.X || strike.Y != second.Y {
		t.Errorf("strikethrough at (%v,%v), want run origin (%v,%v)", strike.X, strike.Y, second.X, second.Y)
	}
	if strike.Strikethrough.Width != second.Width() {
		t.Errorf("strikethrough width = %v, want %v", strike.Strikethrough.Width, second.Width())
	}
}

func TestRecordingPlayback(t *testing.T) {
	l := newLayout(t, "ab cd")

	rec := NewRecorder()
	if err := l.Draw(rec, 0, 0); err != nil {
		t.Fatal(err)
	}
	original := rec.FinishRecording()

	replay := NewRecorder()
	if err := original.Playback(replay); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}
	copied := replay.FinishRecording()

	if len(copied.Commands()) != len(original.Commands()) {
		t.Fatalf("replayed %d commands, want %d", len(copied.Commands()), len(original.Commands()))
	}
	for i, c := range original.Commands() {
		a := c.(GlyphRunCommand)
		b := copied.Commands()[i].(GlyphRunCommand)
		if a.X != b.X || a.Y != b.Y || a.Text != b.Text || len(a.Glyphs) != len(b.Glyphs) {
			t.Errorf("command %d differs after playback", i)
		}
	}
}

type failingRenderer struct {
	*Recorder
	err error
}

func (f failingRenderer) DrawGlyphRun(float64, float64, *textlayout.GlyphRun, *textlayout.GlyphRunDescription, any) error {
	return f.err
}

func TestRecordingPlaybackError(t *testing.T) {
	l := newLayout(t, "x")
	rec := NewRecorder()
	if err := l.Draw(rec, 0, 0); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := rec.FinishRecording().Playback(failingRenderer{Recorder: NewRecorder(), err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("Playback() error = %v, want boom", err)
	}
}

func TestRecorderReset(t *testing.T) {
	l := newLayout(t, "x")
	rec := NewRecorder()
	_ = l.Draw(rec, 0, 0)
	if rec.Len() == 0 {
		t.Fatal("nothing recorded")
	}
	rec.Reset()
	if rec.Len() != 0 || rec.resources.FaceCount() != 0 {
		t.Error("Reset() kept commands or faces")
	}
}

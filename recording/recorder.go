package recording

import (
	"github.com/gogpu/textlayout"
	"github.com/gogpu/textlayout/shape"
)

// Recorder captures layout drawing events as commands. Use FinishRecording
// to obtain an immutable Recording that can be replayed.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	resources *ResourcePool
}

var _ textlayout.Renderer = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Reset discards all recorded commands and resources.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
}

// DrawGlyphRun implements textlayout.Renderer.
func (r *Recorder) DrawGlyphRun(x, y float64, run *textlayout.GlyphRun, desc *textlayout.GlyphRunDescription, effect any) error {
	cmd := GlyphRunCommand{
		X:         x,
		Y:         y,
		Face:      r.resources.AddFace(run.Face),
		EmSize:    run.EmSize,
		Glyphs:    append([]uint32(nil), run.Glyphs...),
		Advances:  append([]float64(nil), run.Advances...),
		Offsets:   append([]shape.Offset(nil), run.Offsets...),
		BidiLevel: run.BidiLevel,
		Effect:    effect,
	}
	if desc != nil {
		cmd.Text = desc.Text
		cmd.Locale = desc.Locale
		cmd.ClusterMap = append([]int(nil), desc.ClusterMap...)
		cmd.TextPosition = desc.TextPosition
	}
	r.commands = append(r.commands, cmd)
	return nil
}

// DrawInlineObject implements textlayout.Renderer.
func (r *Recorder) DrawInlineObject(x, y float64, obj textlayout.InlineObject, sideways, rtl bool, effect any) error {
	r.commands = append(r.commands, InlineObjectCommand{
		X:        x,
		Y:        y,
		Object:   obj,
		Sideways: sideways,
		RTL:      rtl,
		Effect:   effect,
	})
	return nil
}

// DrawStrikethrough implements textlayout.Renderer.
func (r *Recorder) DrawStrikethrough(x, y float64, s *textlayout.Strikethrough, effect any) error {
	r.commands = append(r.commands, StrikethroughCommand{
		X:             x,
		Y:             y,
		Strikethrough: *s,
		Effect:        effect,
	})
	return nil
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder should not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable list of recorded drawing commands.
type Recording struct {
	commands  []Command
	resources *ResourcePool
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// CountByType returns how many commands of type t were recorded.
func (r *Recording) CountByType(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to the given renderer and returns the
// first error it reports.
func (r *Recording) Playback(renderer textlayout.Renderer) error {
	for _, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case GlyphRunCommand:
			run := &textlayout.GlyphRun{
				Face:      r.resources.GetFace(c.Face),
				EmSize:    c.EmSize,
				Glyphs:    c.Glyphs,
				Advances:  c.Advances,
				Offsets:   c.Offsets,
				BidiLevel: c.BidiLevel,
			}
			desc := &textlayout.GlyphRunDescription{
				Locale:       c.Locale,
				Text:         c.Text,
				ClusterMap:   c.ClusterMap,
				TextPosition: c.TextPosition,
			}
			err = renderer.DrawGlyphRun(c.X, c.Y, run, desc, c.Effect)
		case InlineObjectCommand:
			err = renderer.DrawInlineObject(c.X, c.Y, c.Object, c.Sideways, c.RTL, c.Effect)
		case StrikethroughCommand:
			s := c.Strikethrough
			err = renderer.DrawStrikethrough(c.X, c.Y, &s, c.Effect)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

package recording

import (
	"github.com/gogpu/textlayout"
	"github.com/gogpu/textlayout/shape"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDrawGlyphRun      CommandType = iota // Draw a glyph run
	CmdDrawInlineObject                     // Draw an inline object
	CmdDrawStrikethrough                    // Draw a strikethrough line
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDrawGlyphRun:      "DrawGlyphRun",
	CmdDrawInlineObject:  "DrawInlineObject",
	CmdDrawStrikethrough: "DrawStrikethrough",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// FaceRef is a reference to a face in the resource pool.
type FaceRef uint32

// InvalidRef marks a glyph run without a face.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a face.
func (r FaceRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// GlyphRunCommand draws glyphs at a baseline origin.
type GlyphRunCommand struct {
	X, Y   float64
	Face   FaceRef
	EmSize float64

	Glyphs    []uint32
	Advances  []float64
	Offsets   []shape.Offset
	BidiLevel uint8

	Text         string
	Locale       string
	ClusterMap   []int
	TextPosition int

	Effect any
}

// Type implements Command.
func (GlyphRunCommand) Type() CommandType { return CmdDrawGlyphRun }

// Width returns the sum of the glyph advances.
func (c GlyphRunCommand) Width() float64 {
	w := 0.0
	for _, a := range c.Advances {
		w += a
	}
	return w
}

// InlineObjectCommand draws an inline object.
type InlineObjectCommand struct {
	X, Y     float64
	Object   textlayout.InlineObject
	Sideways bool
	RTL      bool
	Effect   any
}

// Type implements Command.
func (InlineObjectCommand) Type() CommandType { return CmdDrawInlineObject }

// StrikethroughCommand draws a strikethrough line.
type StrikethroughCommand struct {
	X, Y          float64
	Strikethrough textlayout.Strikethrough
	Effect        any
}

// Type implements Command.
func (StrikethroughCommand) Type() CommandType { return CmdDrawStrikethrough }

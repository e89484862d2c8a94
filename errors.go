package textlayout

import (
	"errors"
	"fmt"
)

// Sentinel errors for the textlayout package.
var (
	// ErrInvalidArg is returned for out-of-range values, negative sizes and
	// missing required arguments. No state is changed.
	ErrInvalidArg = errors.New("textlayout: invalid argument")

	// ErrNotImplemented is returned by operations the engine does not support.
	ErrNotImplemented = errors.New("textlayout: not implemented")

	// ErrInsufficientBuffer is returned by the Into queries when the
	// destination slice is too short. The returned count is the size needed.
	ErrInsufficientBuffer = errors.New("textlayout: insufficient buffer")

	// ErrFlowDirectionConflicts is returned when the flow direction runs
	// along the reading direction axis.
	ErrFlowDirectionConflicts = errors.New("textlayout: flow direction conflicts with reading direction")
)

// Stage names a recompute stage in an AnalysisError.
type Stage string

// Recompute stages.
const (
	StageScript     Stage = "script"
	StageBidi       Stage = "bidi"
	StageBreakpoint Stage = "linebreak"
	StageShaping    Stage = "shaping"
	StagePlacement  Stage = "placement"
)

// AnalysisError is returned when an analyzer or shaper fails. The layout
// keeps its previous state.
type AnalysisError struct {
	Stage  Stage
	Pos    int
	Length int
	Err    error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("textlayout: %s analysis of [%d,%d) failed: %v", e.Stage, e.Pos, e.Pos+e.Length, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// RangeError reports a text range that falls outside the text.
type RangeError struct {
	Range TextRange
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("textlayout: range [%d,%d) outside text of length %d",
		e.Range.Start, e.Range.Start+e.Range.Length, e.Len)
}

// Is reports whether target is ErrInvalidArg.
func (e *RangeError) Is(target error) bool { return target == ErrInvalidArg }

func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArg}, args...)...)
}

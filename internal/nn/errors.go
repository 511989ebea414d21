package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/fixnet-ml/fixnet/internal/buffer"
)

// Error kinds reported by the core. All of them are detected synchronously at
// the offending call and returned to the immediate caller; none are retried
// or silently corrected, and a failed call never modifies parameter storage.
var (
	// ErrInvalidShape reports a non-positive dimension at construction.
	ErrInvalidShape = errors.New("invalid shape: dimensions must be positive")

	// ErrShapeMismatch reports a buffer whose length disagrees with what an
	// operation declared it expects. Distinguishing it from ErrInvalidShape
	// matters to callers: a shape mismatch is a programming bug at the call
	// site, an invalid shape is a configuration error.
	ErrShapeMismatch = errors.New("shape mismatch: buffer length disagrees with declared dimension")

	// ErrTopologyMismatch reports adjacent layers whose dimensions disagree
	// at network build time.
	ErrTopologyMismatch = errors.New("topology mismatch: adjacent layer dimensions disagree")
)

// ShapeError carries the details behind an ErrShapeMismatch: which operation
// rejected which buffer, and the two lengths that disagreed.
type ShapeError struct {
	Op   string // operation that rejected the buffer, e.g. "Full.Forward"
	Arg  string // which buffer, e.g. "input"
	Want int
	Got  int
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s buffer has length %d, want %d", e.Op, e.Arg, e.Got, e.Want)
}

// Unwrap makes every ShapeError match ErrShapeMismatch under errors.Is.
func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// checkLen validates one buffer length against the length an operation
// declared. Validation happens before any write, so a rejected call leaves
// all storage untouched.
func checkLen(op, arg string, v buffer.View, want int) error {
	if v.Len() != want {
		return &ShapeError{Op: op, Arg: arg, Want: want, Got: v.Len()}
	}
	return nil
}

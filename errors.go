package hvec

import "fmt"

// ErrKindMismatch indicates a checked conversion applied to a tuple of the
// wrong kind, e.g. ToDirection on a tuple whose w is not exactly 1.
type ErrKindMismatch struct {
	Expected Kind
	W        float32
}

func (e *ErrKindMismatch) Error() string {
	return fmt.Sprintf("kind mismatch: expected %s, got w=%g", e.Expected, e.W)
}

// ErrDimensionMismatch indicates a slice of the wrong length passed to
// FromSlice.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

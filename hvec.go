package hvec

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/hupe1980/hvec/internal/math32"
)

// Vec is a homogeneous-coordinate tuple [x, y, z, w]. Points, directions and
// raw tuples all share this one representation; they differ only in the value
// of w, read back via Kind, IsPoint and IsDirection.
//
// Vec has array value semantics: assignment and passing copy all four
// components, so no two Vec values ever alias.
type Vec f32.Vec4

// Kind classifies a tuple by its homogeneous component.
type Kind int

const (
	// KindRaw is any tuple whose w is neither 0 nor 1 (including NaN).
	KindRaw Kind = iota
	// KindPoint is a tuple with w exactly 1.
	KindPoint
	// KindDirection is a tuple with w exactly 0.
	KindDirection
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "Raw"
	case KindPoint:
		return "Point"
	case KindDirection:
		return "Direction"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Zero returns the zero tuple [0, 0, 0, 0].
func Zero() Vec {
	return Vec{}
}

// New returns the tuple [x, y, z, w].
func New(x, y, z, w float32) Vec {
	return Vec{x, y, z, w}
}

// NewPoint returns the point [x, y, z, 1].
func NewPoint(x, y, z float32) Vec {
	return Vec{x, y, z, 1}
}

// NewDirection returns the direction [x, y, z, 0].
func NewDirection(x, y, z float32) Vec {
	return Vec{x, y, z, 0}
}

// FromSlice copies a 4-element slice into a fresh Vec.
// It returns *ErrDimensionMismatch if len(s) != 4.
func FromSlice(s []float32) (Vec, error) {
	if len(s) != 4 {
		return Vec{}, &ErrDimensionMismatch{Expected: 4, Actual: len(s)}
	}

	return Vec{s[0], s[1], s[2], s[3]}, nil
}

// FromF32 converts an x/image f32.Vec4 into a Vec.
func FromF32(v f32.Vec4) Vec {
	return Vec(v)
}

// F32 converts v into an x/image f32.Vec4 for use with float32 graphics
// pipelines.
func (v Vec) F32() f32.Vec4 {
	return f32.Vec4(v)
}

// X returns the first component.
func (v Vec) X() float32 { return v[0] }

// Y returns the second component.
func (v Vec) Y() float32 { return v[1] }

// Z returns the third component.
func (v Vec) Z() float32 { return v[2] }

// W returns the homogeneous component.
func (v Vec) W() float32 { return v[3] }

// IsPoint reports whether v is a point (w exactly 1).
func (v Vec) IsPoint() bool {
	return v[3] == 1
}

// IsDirection reports whether v is a direction (w exactly 0).
func (v Vec) IsDirection() bool {
	return v[3] == 0
}

// Kind returns the classification of v. A NaN w classifies as KindRaw.
func (v Vec) Kind() Kind {
	switch v[3] {
	case 1:
		return KindPoint
	case 0:
		return KindDirection
	default:
		return KindRaw
	}
}

// ToDirection converts a point into the direction [x, y, z, 0], dropping its
// positional meaning. It returns *ErrKindMismatch if v is not a point.
func (v Vec) ToDirection() (Vec, error) {
	if !v.IsPoint() {
		return Vec{}, &ErrKindMismatch{Expected: KindPoint, W: v[3]}
	}

	return NewDirection(v[0], v[1], v[2]), nil
}

// ToPoint converts a direction into the point [x, y, z, 1].
// It returns *ErrKindMismatch if v is not a direction.
func (v Vec) ToPoint() (Vec, error) {
	if !v.IsDirection() {
		return Vec{}, &ErrKindMismatch{Expected: KindDirection, W: v[3]}
	}

	return NewPoint(v[0], v[1], v[2]), nil
}

// Clone returns an independent copy of v.
func (v Vec) Clone() Vec {
	return v
}

// Equal reports exact elementwise equality of all four components.
// Per IEEE 754, a tuple containing NaN is not equal to itself.
func (v Vec) Equal(o Vec) bool {
	return math32.Equal(v[:], o[:])
}

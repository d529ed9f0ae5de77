// Package hvec implements homogeneous-coordinate vector algebra for 3D
// geometry and rendering pipelines.
//
// A Vec is a single-precision 4-tuple [x, y, z, w]. The homogeneous
// component w distinguishes positions from free directions:
//
//   - w == 1: a point, a position in affine space
//   - w == 0: a direction, a translation-invariant displacement
//   - anything else: a raw tuple, a legal arithmetic result with no
//     geometric tag
//
// # Quick Start
//
//	p := hvec.NewPoint(1, 2, 3)
//	d := hvec.NewDirection(0, 1, 0)
//	q := p.Add(d.Scale(2)) // still a point: w = 1 + 2*0
//
// # Tag Propagation
//
// Arithmetic treats w like any other component. Point minus point yields a
// direction, point plus direction stays a point, and point plus point yields
// a raw tuple with w == 2. Use Kind, IsPoint and IsDirection to classify a
// result, and ToPoint/ToDirection to convert with validation.
//
// # Numeric Edge Cases
//
// Division by zero and normalization of a zero-length tuple follow IEEE 754:
// they produce Inf or NaN values that propagate silently through subsequent
// arithmetic instead of returning an error. Callers needing strict validation
// must check explicitly.
//
// Every operation returns a fresh value and never mutates its operands, so
// values may be shared freely across goroutines without coordination.
package hvec

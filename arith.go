package hvec

import "github.com/hupe1980/hvec/internal/math32"

// Add returns the elementwise sum v + o over all four components, w included.
// Adding two points yields a raw tuple with w == 2; this is intentional.
func (v Vec) Add(o Vec) Vec {
	var dst Vec
	math32.Add(dst[:], v[:], o[:])

	return dst
}

// Sub returns the elementwise difference v - o over all four components.
// Point minus point yields a direction.
func (v Vec) Sub(o Vec) Vec {
	var dst Vec
	math32.Sub(dst[:], v[:], o[:])

	return dst
}

// Scale returns v with all four components multiplied by s, w included.
func (v Vec) Scale(s float32) Vec {
	var dst Vec
	math32.Scale(dst[:], v[:], s)

	return dst
}

// Div returns v with all four components divided by s. Division by zero
// follows IEEE 754 and yields Inf or NaN components.
func (v Vec) Div(s float32) Vec {
	var dst Vec
	math32.Div(dst[:], v[:], s)

	return dst
}

// Neg returns v with all four components negated.
func (v Vec) Neg() Vec {
	return v.Scale(-1)
}

// Dot returns the dot product over all four components. Since w contributes
// to the sum, the result is geometrically meaningful only when both operands
// are directions; this is not enforced.
func (v Vec) Dot(o Vec) float32 {
	return math32.Dot(v[:], o[:])
}

// Hadamard returns the elementwise product of v and o.
func (v Vec) Hadamard(o Vec) Vec {
	var dst Vec
	math32.Mul(dst[:], v[:], o[:])

	return dst
}

// Length returns the Euclidean length sqrt(v·v) over all four components.
// Convert a point to a direction first: its w of 1 contributes to the sum.
func (v Vec) Length() float32 {
	return math32.Length(v[:])
}

// Normalize returns v divided by its length. A zero-length input yields
// Inf or NaN components per IEEE 754; there is no guard.
func (v Vec) Normalize() Vec {
	var dst Vec
	math32.Normalize(dst[:], v[:])

	return dst
}

// Distance returns the Euclidean length of v - o.
func (v Vec) Distance(o Vec) float32 {
	return v.Sub(o).Length()
}

// Lerp returns the elementwise linear interpolation v + (o-v)*t over all
// four components.
func (v Vec) Lerp(o Vec, t float32) Vec {
	var dst Vec
	math32.Lerp(dst[:], v[:], o[:], t)

	return dst
}

// Cross returns the 3D cross product of v and o as a direction (w == 0).
// It is defined only for directions; operands are not validated.
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
		0,
	}
}

// Min returns the elementwise minimum of v and all tuples in rest.
func Min(v Vec, rest ...Vec) Vec {
	acc := v.Clone()
	for _, o := range rest {
		math32.MinInPlace(acc[:], o[:])
	}

	return acc
}

// Max returns the elementwise maximum of v and all tuples in rest.
func Max(v Vec, rest ...Vec) Vec {
	acc := v.Clone()
	for _, o := range rest {
		math32.MaxInPlace(acc[:], o[:])
	}

	return acc
}

// Package math32 provides the raw float32 buffer kernels behind package hvec.
// This is an internal package - external users should use the hvec API.
//
// All kernels iterate over the length of their first input and are free of
// side effects on their inputs; dst may not alias a or b.
package math32

import "math"

// Equal reports exact elementwise equality.
// Per IEEE 754, NaN compares unequal to itself.
func Equal(a, b []float32) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Add writes the elementwise sum a + b into dst.
func Add(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// Sub writes the elementwise difference a - b into dst.
func Sub(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// Scale writes a multiplied by scalar s into dst.
func Scale(dst, a []float32, s float32) {
	for i := range a {
		dst[i] = a[i] * s
	}
}

// Div writes a divided by scalar s into dst.
// Division by zero yields Inf or NaN per IEEE 754; there is no guard.
func Div(dst, a []float32, s float32) {
	for i := range a {
		dst[i] = a[i] / s
	}
}

// Mul writes the elementwise (Hadamard) product of a and b into dst.
func Mul(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

// Dot returns the sum of elementwise products of a and b.
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// Sqrt returns the float32 square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Length returns the Euclidean norm sqrt(a·a).
func Length(a []float32) float32 {
	return Sqrt(Dot(a, a))
}

// Normalize writes a divided by its Euclidean norm into dst.
// A zero-norm input yields Inf or NaN components per IEEE 754.
func Normalize(dst, a []float32) {
	Div(dst, a, Length(a))
}

// Lerp writes the elementwise interpolation a + (b-a)*t into dst.
func Lerp(dst, a, b []float32, t float32) {
	for i := range a {
		dst[i] = a[i] + (b[i]-a[i])*t
	}
}

// MinInPlace lowers each element of acc to the corresponding element of a
// where a is smaller.
func MinInPlace(acc, a []float32) {
	for i := range acc {
		acc[i] = min(acc[i], a[i])
	}
}

// MaxInPlace raises each element of acc to the corresponding element of a
// where a is larger.
func MaxInPlace(acc, a []float32) {
	for i := range acc {
		acc[i] = max(acc[i], a[i])
	}
}

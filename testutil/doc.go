// Package testutil provides testing utilities for hvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic generation of random tuples of every kind.
//
//	rng := testutil.NewRNG(seed)
//	p := rng.Point(10)      // random point, components in [-10, 10)
//	d := rng.Direction(1)   // random direction, components in [-1, 1)
//	v := rng.Vec(5)         // random tuple, w included in [-5, 5)
package testutil

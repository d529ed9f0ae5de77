package hvec_test

import (
	"fmt"

	"github.com/hupe1980/hvec"
)

// Example demonstrates building tuples and how the homogeneous component
// propagates through arithmetic.
func Example() {
	p := hvec.NewPoint(1, 2, 3)
	d := hvec.NewDirection(4, 5, 6)

	// Point plus direction stays a point.
	q := p.Add(d)
	fmt.Println(q, q.Kind())

	// Point plus point yields a raw tuple.
	r := p.Add(q)
	fmt.Println(r, r.Kind())

	// Output:
	// [5 7 9 1] Point
	// [6 9 12 2] Raw
}

func ExampleNewPoint() {
	p := hvec.NewPoint(1, 2, 3)

	fmt.Println(p, p.IsPoint(), p.IsDirection())
	// Output: [1 2 3 1] true false
}

func ExampleVec_Cross() {
	x := hvec.NewDirection(1, 0, 0)
	y := hvec.NewDirection(0, 1, 0)

	fmt.Println(x.Cross(y))
	// Output: [0 0 1 0]
}

func ExampleVec_Lerp() {
	a := hvec.NewPoint(0, 0, 0)
	b := hvec.NewPoint(10, 0, 0)

	fmt.Println(a.Lerp(b, 0.5))
	// Output: [5 0 0 1]
}

func ExampleVec_ToDirection() {
	d := hvec.NewDirection(1, 2, 3)

	if _, err := d.ToDirection(); err != nil {
		fmt.Println(err)
	}
	// Output: kind mismatch: expected Point, got w=0
}

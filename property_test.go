package hvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hvec"
	"github.com/hupe1980/hvec/testutil"
)

const propertyRounds = 100

func TestConversionRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < propertyRounds; i++ {
		p := rng.Point(10)

		d, err := p.ToDirection()
		require.NoError(t, err)

		back, err := d.ToPoint()
		require.NoError(t, err)

		assert.True(t, p.Equal(back))
	}

	for i := 0; i < propertyRounds; i++ {
		d := rng.Direction(10)

		p, err := d.ToPoint()
		require.NoError(t, err)

		back, err := p.ToDirection()
		require.NoError(t, err)

		assert.True(t, d.Equal(back))
	}
}

func TestAddSubInverse(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < propertyRounds; i++ {
		a := rng.Vec(8)
		b := rng.Vec(8)

		got := a.Add(b).Sub(b)
		for i := 0; i < 4; i++ {
			assert.InDelta(t, a.F32()[i], got.F32()[i], 1e-4)
		}
	}
}

func TestAddSubInverseExact(t *testing.T) {
	// Small integer components are exact in float32, so sub(add(a,b), b)
	// recovers a bit for bit.
	a := hvec.New(3, -7, 12, 1)
	b := hvec.New(-5, 2, 9, 0)

	assert.True(t, a.Equal(a.Add(b).Sub(b)))
}

func TestDotLengthRelation(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < propertyRounds; i++ {
		v := rng.Direction(4)

		l := v.Length()
		assert.InDelta(t, l*l, v.Dot(v), 1e-3)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < propertyRounds; i++ {
		v := rng.Direction(4)
		if v.Length() == 0 {
			continue
		}

		assert.InDelta(t, 1.0, v.Normalize().Length(), 1e-5)
	}
}

func TestCrossOrthogonality(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < propertyRounds; i++ {
		a := rng.Direction(1)
		b := rng.Direction(1)

		c := a.Cross(b)
		assert.True(t, c.IsDirection())
		assert.InDelta(t, 0.0, float64(c.Dot(a)), 1e-4)
		assert.InDelta(t, 0.0, float64(c.Dot(b)), 1e-4)
	}
}

func TestMinMaxBounds(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < propertyRounds; i++ {
		a := rng.Vec(8)
		b := rng.Vec(8)
		c := rng.Vec(8)

		lo := hvec.Min(a, b, c)
		hi := hvec.Max(a, b, c)

		for i := 0; i < 4; i++ {
			assert.LessOrEqual(t, lo.F32()[i], a.F32()[i])
			assert.LessOrEqual(t, lo.F32()[i], b.F32()[i])
			assert.LessOrEqual(t, lo.F32()[i], c.F32()[i])
			assert.GreaterOrEqual(t, hi.F32()[i], a.F32()[i])
			assert.GreaterOrEqual(t, hi.F32()[i], b.F32()[i])
			assert.GreaterOrEqual(t, hi.F32()[i], c.F32()[i])
		}
	}
}

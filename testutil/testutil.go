package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/hvec"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// component returns a pseudo-random number in [-span, span).
// Caller must hold mu.
func (r *RNG) component(span float32) float32 {
	return (r.rand.Float32()*2 - 1) * span
}

// Vec returns a random tuple with all four components, w included,
// in [-span, span).
func (r *RNG) Vec(span float32) hvec.Vec {
	r.mu.Lock()
	defer r.mu.Unlock()
	return hvec.New(r.component(span), r.component(span), r.component(span), r.component(span))
}

// Point returns a random point with x, y, z in [-span, span).
func (r *RNG) Point(span float32) hvec.Vec {
	r.mu.Lock()
	defer r.mu.Unlock()
	return hvec.NewPoint(r.component(span), r.component(span), r.component(span))
}

// Direction returns a random direction with x, y, z in [-span, span).
func (r *RNG) Direction(span float32) hvec.Vec {
	r.mu.Lock()
	defer r.mu.Unlock()
	return hvec.NewDirection(r.component(span), r.component(span), r.component(span))
}

package engine

import "math/rand"

// Source is the randomness the engine draws from. Intn returns a value in
// [0, n); Float64 returns a value in [0, 1).
type Source interface {
	Intn(n int) int
	Float64() float64
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position counts draws from the underlying source and is reported in
// the session state alongside the seed.
type RNG struct {
	src *countingSource
	rnd *rand.Rand
}

// countingSource counts every step taken on the wrapped source.
type countingSource struct {
	inner rand.Source64
	pos   int64
}

func (c *countingSource) Int63() int64 {
	c.pos++
	return c.inner.Int63()
}

func (c *countingSource) Uint64() uint64 {
	c.pos++
	return c.inner.Uint64()
}

func (c *countingSource) Seed(seed int64) {
	c.inner.Seed(seed)
	c.pos = 0
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	cs := &countingSource{inner: rand.NewSource(seed).(rand.Source64)}
	return &RNG{
		src: cs,
		rnd: rand.New(cs),
	}
}

// Intn returns a uniform integer in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	return r.rnd.Intn(n)
}

// Float64 returns a uniform float in [0, 1).
func (r *RNG) Float64() float64 {
	return r.rnd.Float64()
}

// Position returns the number of source steps taken since creation.
func (r *RNG) Position() int64 {
	return r.src.pos
}

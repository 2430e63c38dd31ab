package rng

import "math/rand"

// MathStream wraps a seeded math/rand source. Its sequences are deterministic
// for a seed but unrelated to the Python stream.
type MathStream struct {
	r *rand.Rand
}

// NewMath returns a MathStream seeded with seed.
func NewMath(seed int64) *MathStream {
	return &MathStream{r: rand.New(rand.NewSource(seed))}
}

func (m *MathStream) RandInt(lo, hi int) int {
	return lo + m.r.Intn(hi-lo+1)
}

func (m *MathStream) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*m.r.Float64()
}

// Shuffle is an explicit Fisher-Yates pass so the swap sequence does not
// depend on the math/rand version.
func (m *MathStream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, m.r.Intn(i+1))
	}
}

// CountingStream decorates a Stream and counts the draws made through it.
type CountingStream struct {
	Stream
	Ints     int
	Floats   int
	Shuffles int
}

// Count wraps s.
func Count(s Stream) *CountingStream {
	return &CountingStream{Stream: s}
}

func (c *CountingStream) RandInt(lo, hi int) int {
	c.Ints++
	return c.Stream.RandInt(lo, hi)
}

func (c *CountingStream) Uniform(lo, hi float64) float64 {
	c.Floats++
	return c.Stream.Uniform(lo, hi)
}

func (c *CountingStream) Shuffle(n int, swap func(i, j int)) {
	c.Shuffles++
	c.Stream.Shuffle(n, swap)
}

// Draws is the total number of calls observed.
func (c *CountingStream) Draws() int {
	return c.Ints + c.Floats + c.Shuffles
}

package rng

import "math/bits"

// MT19937 parameters.
const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// MT19937 is the 32-bit Mersenne Twister as used by CPython's random module.
type MT19937 struct {
	mt  [mtN]uint32
	mti int
}

// NewMT19937 returns an unseeded generator. Call SeedScalar or SeedArray before use.
func NewMT19937() *MT19937 {
	return &MT19937{mti: mtN + 1}
}

// SeedScalar is the reference init_genrand.
func (g *MT19937) SeedScalar(s uint32) {
	g.mt[0] = s
	for i := 1; i < mtN; i++ {
		prev := g.mt[i-1]
		g.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	g.mti = mtN
}

// SeedArray is the reference init_by_array.
func (g *MT19937) SeedArray(key []uint32) {
	g.SeedScalar(19650218)
	i, j := 1, 0
	k := mtN
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		prev := g.mt[i-1]
		g.mt[i] = (g.mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			g.mt[0] = g.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		prev := g.mt[i-1]
		g.mt[i] = (g.mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			g.mt[0] = g.mt[mtN-1]
			i = 1
		}
	}
	g.mt[0] = 0x80000000
}

// Uint32 returns the next tempered output word.
func (g *MT19937) Uint32() uint32 {
	if g.mti >= mtN {
		if g.mti == mtN+1 {
			g.SeedScalar(5489)
		}
		g.generate()
	}
	y := g.mt[g.mti]
	g.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

func (g *MT19937) generate() {
	mag := func(y uint32) uint32 {
		if y&1 == 0 {
			return 0
		}
		return mtMatrixA
	}
	var kk int
	for kk = 0; kk < mtN-mtM; kk++ {
		y := (g.mt[kk] & mtUpperMask) | (g.mt[kk+1] & mtLowerMask)
		g.mt[kk] = g.mt[kk+mtM] ^ (y >> 1) ^ mag(y)
	}
	for ; kk < mtN-1; kk++ {
		y := (g.mt[kk] & mtUpperMask) | (g.mt[kk+1] & mtLowerMask)
		g.mt[kk] = g.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag(y)
	}
	y := (g.mt[mtN-1] & mtUpperMask) | (g.mt[0] & mtLowerMask)
	g.mt[mtN-1] = g.mt[mtM-1] ^ (y >> 1) ^ mag(y)
	g.mti = 0
}

// PythonStream follows the draw semantics of CPython's random.Random on top of
// MT19937, so that a seed yields the same sequence as random.seed(seed).
type PythonStream struct {
	mt *MT19937
}

// NewPython seeds like random.seed(seed) for an int argument: the absolute
// value is split into little-endian 32-bit words and fed to init_by_array.
func NewPython(seed int64) *PythonStream {
	u := uint64(seed)
	if seed < 0 {
		u = uint64(-seed)
	}
	key := []uint32{uint32(u)}
	if hi := uint32(u >> 32); hi != 0 {
		key = append(key, hi)
	}
	mt := NewMT19937()
	mt.SeedArray(key)
	return &PythonStream{mt: mt}
}

// Random is random.random(): 53 bits from two output words.
func (p *PythonStream) Random() float64 {
	a := p.mt.Uint32() >> 5
	b := p.mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// getRandBits covers k <= 32, which is all the generator ever asks for.
func (p *PythonStream) getRandBits(k int) uint32 {
	if k == 0 {
		return 0
	}
	return p.mt.Uint32() >> (32 - k)
}

// randBelow is _randbelow_with_getrandbits.
func (p *PythonStream) randBelow(n int) int {
	k := bits.Len(uint(n))
	r := int(p.getRandBits(k))
	for r >= n {
		r = int(p.getRandBits(k))
	}
	return r
}

// RandInt is random.randint(lo, hi).
func (p *PythonStream) RandInt(lo, hi int) int {
	return lo + p.randBelow(hi-lo+1)
}

// Uniform is random.uniform(lo, hi).
func (p *PythonStream) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*p.Random()
}

// Shuffle is random.shuffle.
func (p *PythonStream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, p.randBelow(i+1))
	}
}

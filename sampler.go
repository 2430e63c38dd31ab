package cvrp

import (
	"fmt"
	"math"

	"git.solver4all.com/azaryc2s/cvrp/rng"
)

const (
	// MinSeeds and MaxSeeds bound the seed-count draw.
	MinSeeds = 2
	MaxSeeds = 6

	// decay of the seed attraction: weight halves every decay units of distance
	decay = 40.0
)

// PointSet is an insertion-ordered set of coordinates.
type PointSet struct {
	order []Coordinate
	index map[Coordinate]struct{}
}

func NewPointSet(capacity int) *PointSet {
	return &PointSet{
		order: make([]Coordinate, 0, capacity),
		index: make(map[Coordinate]struct{}, capacity),
	}
}

func (ps *PointSet) Has(c Coordinate) bool {
	_, ok := ps.index[c]
	return ok
}

// Add inserts c and reports whether it was new.
func (ps *PointSet) Add(c Coordinate) bool {
	if ps.Has(c) {
		return false
	}
	ps.index[c] = struct{}{}
	ps.order = append(ps.order, c)
	return true
}

func (ps *PointSet) Len() int { return len(ps.order) }

// Points returns the coordinates in insertion order. The slice is shared.
func (ps *PointSet) Points() []Coordinate { return ps.order }

// Distance is the Euclidean distance between a and b.
func Distance(a, b Coordinate) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// SeedField is the normalised attraction field spanned by the seeds.
type SeedField struct {
	Seeds []Coordinate
	Norm  float64
}

func attraction(c Coordinate, seeds []Coordinate) float64 {
	w := 0.0
	for _, s := range seeds {
		w += math.Pow(2, -Distance(c, s)/decay)
	}
	return w
}

// NewSeedField normalises the field so that the densest seed has weight 1.
func NewSeedField(seeds []Coordinate) (SeedField, error) {
	maxWeight := 0.0
	for _, s := range seeds {
		if w := attraction(s, seeds); w > maxWeight {
			maxWeight = w
		}
	}
	if maxWeight <= 0 {
		return SeedField{}, fmt.Errorf("cvrp: seed field has no weight (%d seeds)", len(seeds))
	}
	return SeedField{Seeds: seeds, Norm: 1.0 / maxWeight}, nil
}

// Weight is the acceptance probability of c.
func (f SeedField) Weight(c Coordinate) float64 {
	return attraction(c, f.Seeds) * f.Norm
}

// sampler draws free coordinates: not yet in points and not the depot.
type sampler struct {
	stream rng.Stream
	depot  Coordinate
	points *PointSet
	stats  *Stats
}

func (sp *sampler) free() Coordinate {
	c := Coordinate{sp.stream.RandInt(0, MaxCoord), sp.stream.RandInt(0, MaxCoord)}
	for sp.points.Has(c) || c == sp.depot {
		sp.stats.Collisions++
		c = Coordinate{sp.stream.RandInt(0, MaxCoord), sp.stream.RandInt(0, MaxCoord)}
	}
	return c
}

// NextAccepted runs the accept-reject step until one candidate passes
// u <= field.Weight(candidate). It does not insert the returned point.
// The number of rejected candidates is returned alongside.
func NextAccepted(s rng.Stream, points *PointSet, depot Coordinate, field SeedField) (Coordinate, int) {
	var st Stats
	sp := &sampler{stream: s, depot: depot, points: points, stats: &st}
	return sp.nextAccepted(field)
}

func (sp *sampler) nextAccepted(field SeedField) (Coordinate, int) {
	rejected := 0
	for {
		c := sp.free()
		weight := field.Weight(c)
		u := sp.stream.Uniform(0, 1)
		if u <= weight {
			return c, rejected
		}
		rejected++
	}
}

// PlaceCustomers fills the customer set with p.N coordinates: uniform customers
// first, then the seeds, then accept-reject clustered customers. nSeeds is the
// already drawn seed count and is ignored for CustomersRandom.
func PlaceCustomers(s rng.Stream, p Params, depot Coordinate, nSeeds int) (*PointSet, []Coordinate, Stats, error) {
	var st Stats
	nRand := 0
	switch p.CustPos {
	case CustomersRandom:
		nRand = p.N
		nSeeds = 0
	case CustomersClustered:
		nRand = 0
	case CustomersMixed:
		nRand = p.N / 2
	default:
		return nil, nil, st, &RangeError{Param: "customer positioning", Value: int(p.CustPos), Min: 1, Max: 3}
	}
	nClust := p.N - nRand
	st.Seeds = nSeeds

	sp := &sampler{stream: s, depot: depot, points: NewPointSet(p.N), stats: &st}
	for i := 0; i < nRand; i++ {
		sp.points.Add(sp.free())
	}

	seeds := []Coordinate{}
	if nClust > 0 {
		if nClust < nSeeds {
			return nil, nil, st, &ConstraintError{Clustered: nClust, Seeds: nSeeds}
		}
		for i := 0; i < nSeeds; i++ {
			c := sp.free()
			sp.points.Add(c)
			seeds = append(seeds, c)
		}
		field, err := NewSeedField(seeds)
		if err != nil {
			return nil, nil, st, err
		}
		for sp.points.Len() < p.N {
			c, rejected := sp.nextAccepted(field)
			st.Candidates += rejected + 1
			st.Rejections += rejected
			sp.points.Add(c)
		}
	}
	return sp.points, seeds, st, nil
}

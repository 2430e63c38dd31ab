package cvrp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.solver4all.com/azaryc2s/cvrp/rng"
)

// fixedStream returns the queued uniform values in order.
type fixedStream struct {
	u []float64
}

func (f *fixedStream) RandInt(lo, _ int) int { return lo }

func (f *fixedStream) Uniform(lo, hi float64) float64 {
	v := f.u[0]
	f.u = f.u[1:]
	return lo + (hi-lo)*v
}

func (f *fixedStream) Shuffle(int, func(i, j int)) {}

func TestDemandRangeDraw(t *testing.T) {
	r := DemandRange{5, 10}
	assert.Equal(t, 5, r.Draw(&fixedStream{u: []float64{0}}))
	assert.Equal(t, 10, r.Draw(&fixedStream{u: []float64{0.9999999}}))
	assert.Equal(t, 8, r.Draw(&fixedStream{u: []float64{0.5}}))
}

func TestDemandTable(t *testing.T) {
	want := map[DemandType]DemandRange{
		DemandUnitary:           {1, 1},
		DemandSmallLargeVar:     {1, 10},
		DemandSmallSmallVar:     {5, 10},
		DemandLargeLargeVar:     {50, 100},
		DemandLargeSmallVar:     {51, 100},
		DemandQuadrant:          {1, 50},
		DemandFewLargeManySmall: {1, 100},
	}
	for dt, r := range want {
		assert.Equal(t, r, dt.Range(), dt.String())
	}
}

func TestPolicyFor(t *testing.T) {
	p, err := PolicyFor(DemandSmallSmallVar, 100, 4)
	require.NoError(t, err)
	assert.Equal(t, Flat{Range: DemandRange{5, 10}}, p)

	p, err = PolicyFor(DemandQuadrant, 100, 4)
	require.NoError(t, err)
	assert.IsType(t, QuadrantAware{}, p)
	assert.Equal(t, DemandRange{1, 100}, p.Bounds())

	p, err = PolicyFor(DemandFewLargeManySmall, 100, 4)
	require.NoError(t, err)
	rs, ok := p.(RouteSizeAware)
	require.True(t, ok)
	assert.Equal(t, 37.5, rs.Threshold)

	_, err = PolicyFor(DemandType(8), 100, 4)
	var re *RangeError
	assert.ErrorAs(t, err, &re)
}

func TestEvenQuadrant(t *testing.T) {
	assert.True(t, EvenQuadrant(Coordinate{0, 0}))
	assert.True(t, EvenQuadrant(Coordinate{499, 499}))
	assert.True(t, EvenQuadrant(Coordinate{500, 500}))
	assert.True(t, EvenQuadrant(Coordinate{1000, 1000}))
	assert.False(t, EvenQuadrant(Coordinate{499, 500}))
	assert.False(t, EvenQuadrant(Coordinate{1000, 0}))
}

func TestQuadrantAwareConsumesBaseDraw(t *testing.T) {
	q := QuadrantAware{Base: DemandRange{1, 50}, Even: DemandRange{51, 100}}

	// odd quadrant: only the base draw
	s := &fixedStream{u: []float64{0, 0.5}}
	assert.Equal(t, 1, q.Demand(s, 2, Coordinate{0, 900}))
	assert.Len(t, s.u, 1)

	// even quadrant: base draw discarded, second draw used
	s = &fixedStream{u: []float64{0, 0.5}}
	assert.Equal(t, 76, q.Demand(s, 2, Coordinate{900, 900}))
	assert.Empty(t, s.u)
}

func TestRouteSizeAwareThreshold(t *testing.T) {
	r := RouteSizeAware{Base: DemandRange{1, 100}, Large: DemandRange{50, 100}, Small: DemandRange{1, 10}, Threshold: 3.5}

	s := &fixedStream{u: []float64{0.9, 0, 0.9, 0, 0.9, 0}}
	assert.Equal(t, 50, r.Demand(s, 2, Coordinate{}))
	assert.Equal(t, 50, r.Demand(s, 3, Coordinate{}))
	assert.Equal(t, 1, r.Demand(s, 4, Coordinate{}))
	assert.Empty(t, s.u)
}

func TestAssignDemandsAggregates(t *testing.T) {
	s := &fixedStream{u: []float64{0, 0.95, 0.5}}
	d, sum, maxDemand := AssignDemands(s, Flat{Range: DemandRange{1, 10}}, make([]Coordinate, 3))
	assert.Equal(t, []int{1, 10, 6}, d)
	assert.Equal(t, 17, sum)
	assert.Equal(t, 10, maxDemand)
}

func TestAssignDemandsUsesVertexPositions(t *testing.T) {
	// positions start at 2: with threshold 3 only the first customer is heavy
	r := RouteSizeAware{Base: DemandRange{1, 100}, Large: DemandRange{50, 100}, Small: DemandRange{1, 10}, Threshold: 3}
	s := rng.NewPython(2)
	d, _, _ := AssignDemands(s, r, make([]Coordinate, 4))
	assert.True(t, r.Large.Contains(d[0]))
	for _, v := range d[1:] {
		assert.True(t, r.Small.Contains(v))
	}
}

func TestDeriveCapacity(t *testing.T) {
	cases := []struct {
		n, sum, maxDemand int
		r                 float64
		capacity, fleet   int
	}{
		{10, 10, 1, 4.7, 4, 3},
		{10, 55, 10, 4.2, 24, 3},
		{10, 101, 100, 3.0, 100, 2},
		{100, 5050, 100, 16.0, 808, 7},
	}
	for _, c := range cases {
		capacity, fleet := DeriveCapacity(c.n, c.sum, c.maxDemand, c.r)
		assert.Equal(t, c.capacity, capacity, "%+v", c)
		assert.Equal(t, c.fleet, fleet, "%+v", c)
	}
}

func TestRouteSizeIntervals(t *testing.T) {
	lo, hi := RouteShort.Interval()
	assert.Equal(t, 5.0, lo)
	assert.Equal(t, 8.0, hi)
	lo, hi = RouteUltraLong.Interval()
	assert.Equal(t, 25.0, lo)
	assert.Equal(t, 50.0, hi)
}

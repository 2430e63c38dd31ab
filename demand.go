package cvrp

import (
	"git.solver4all.com/azaryc2s/cvrp/rng"
)

// DemandRange is an inclusive demand interval.
type DemandRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Draw returns floor((Max-Min+1)*u + Min) for u ~ U(0,1).
func (r DemandRange) Draw(s rng.Stream) int {
	return int(float64(r.Max-r.Min+1)*s.Uniform(0, 1) + float64(r.Min))
}

func (r DemandRange) Contains(d int) bool {
	return d >= r.Min && d <= r.Max
}

var demandTable = [...]DemandRange{
	{1, 1},
	{1, 10},
	{5, 10},
	{50, 100},
	{51, 100},
	{1, 50},
	{1, 100},
}

var (
	evenQuadrantDemand = DemandRange{51, 100}
	largeDemand        = DemandRange{50, 100}
	smallDemand        = DemandRange{1, 10}
)

// largePerRoute is the expected number of heavy customers per route for type 7.
const largePerRoute = 1.5

// Range is the default table entry of the demand type.
func (d DemandType) Range() DemandRange {
	return demandTable[d-1]
}

// DemandPolicy assigns the demand of the customer at vertex position pos
// (1-based, depot-inclusive, so customers run 2..n+1) located at c.
type DemandPolicy interface {
	Demand(s rng.Stream, pos int, c Coordinate) int
	// Bounds covers every value Demand can return.
	Bounds() DemandRange
}

// Flat draws from a single range.
type Flat struct {
	Range DemandRange
}

func (f Flat) Demand(s rng.Stream, _ int, _ Coordinate) int {
	return f.Range.Draw(s)
}

func (f Flat) Bounds() DemandRange { return f.Range }

// QuadrantAware gives heavier demands to customers in the lower-left and
// upper-right quadrants. The base draw is always consumed first.
type QuadrantAware struct {
	Base DemandRange
	Even DemandRange
}

// EvenQuadrant reports whether both coordinates fall on the same side of the
// map centre.
func EvenQuadrant(c Coordinate) bool {
	const mid = MaxCoord / 2.0
	x, y := float64(c[0]), float64(c[1])
	return (x < mid && y < mid) || (x >= mid && y >= mid)
}

func (q QuadrantAware) Demand(s rng.Stream, _ int, c Coordinate) int {
	d := q.Base.Draw(s)
	if EvenQuadrant(c) {
		d = q.Even.Draw(s)
	}
	return d
}

func (q QuadrantAware) Bounds() DemandRange {
	return DemandRange{min(q.Base.Min, q.Even.Min), max(q.Base.Max, q.Even.Max)}
}

// RouteSizeAware makes the first positions below Threshold heavy and the rest
// light. The base draw is always consumed and then overwritten.
type RouteSizeAware struct {
	Base      DemandRange
	Large     DemandRange
	Small     DemandRange
	Threshold float64
}

func (r RouteSizeAware) Demand(s rng.Stream, pos int, _ Coordinate) int {
	r.Base.Draw(s)
	if float64(pos) < r.Threshold {
		return r.Large.Draw(s)
	}
	return r.Small.Draw(s)
}

func (r RouteSizeAware) Bounds() DemandRange {
	return DemandRange{min(r.Large.Min, r.Small.Min), max(r.Large.Max, r.Small.Max)}
}

// PolicyFor returns the policy of demand type t for n customers and route size r.
func PolicyFor(t DemandType, n int, r float64) (DemandPolicy, error) {
	if err := checkRange("demand type", int(t), 1, len(demandTable)); err != nil {
		return nil, err
	}
	switch t {
	case DemandQuadrant:
		return QuadrantAware{Base: t.Range(), Even: evenQuadrantDemand}, nil
	case DemandFewLargeManySmall:
		return RouteSizeAware{
			Base:      t.Range(),
			Large:     largeDemand,
			Small:     smallDemand,
			Threshold: float64(n) / r * largePerRoute,
		}, nil
	}
	return Flat{Range: t.Range()}, nil
}

// AssignDemands draws one demand per customer, in vertex order. customers are
// V[1..n], the depot excluded.
func AssignDemands(s rng.Stream, policy DemandPolicy, customers []Coordinate) (demands []int, sum, maxDemand int) {
	demands = make([]int, len(customers))
	for i, c := range customers {
		d := policy.Demand(s, i+2, c)
		demands[i] = d
		sum += d
		if d > maxDemand {
			maxDemand = d
		}
	}
	return demands, sum, maxDemand
}

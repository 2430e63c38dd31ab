package cvrp

import (
	"git.solver4all.com/azaryc2s/cvrp/rng"
)

const (
	instanceComment = "Generated as the XML100 dataset from the CVRPLIB"
	instanceType    = "CVRP"
	edgeWeightType  = "EUC_2D"
)

// Generator builds instances from parameters. The zero value uses the
// Python-compatible stream.
type Generator struct {
	// Streams creates the random stream of one generation. It is called at
	// most once per Run, and only after the parameters validated.
	Streams rng.Factory
}

// NewGenerator returns a Generator using streams of the given kind.
func NewGenerator(kind rng.Kind) (*Generator, error) {
	f, err := rng.FactoryFor(kind)
	if err != nil {
		return nil, err
	}
	return &Generator{Streams: f}, nil
}

// Result bundles everything one generation produces.
type Result struct {
	Instance *Instance
	Dataset  *Dataset
	Stats    Stats
}

func (g *Generator) stream(seed int64) rng.Stream {
	if g == nil || g.Streams == nil {
		return rng.NewPython(seed)
	}
	return g.Streams(seed)
}

// Run generates the instance described by p. The draw order is: seed count,
// route size, depot, customers, demands, demand shuffle.
func (g *Generator) Run(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := g.stream(p.Seed)

	nSeeds := s.RandInt(MinSeeds, MaxSeeds)
	lo, hi := p.AvgRouteSize.Interval()
	r := s.Uniform(lo, hi)

	depot, err := PlaceDepot(s, p.RootPos)
	if err != nil {
		return nil, err
	}
	points, seeds, st, err := PlaceCustomers(s, p, depot, nSeeds)
	if err != nil {
		return nil, err
	}
	vertices := make([]Coordinate, 0, p.N+1)
	vertices = append(vertices, depot)
	vertices = append(vertices, points.Points()...)

	policy, err := PolicyFor(p.DemandType, p.N, r)
	if err != nil {
		return nil, err
	}
	demands, sum, maxDemand := AssignDemands(s, policy, vertices[1:])
	capacity, vehicles := DeriveCapacity(p.N, sum, maxDemand, r)

	// type 6 keeps its spatial correlation
	if p.DemandType != DemandQuadrant {
		s.Shuffle(len(demands), func(i, j int) { demands[i], demands[j] = demands[j], demands[i] })
	}

	st.SumDemands = sum
	st.MaxDemand = maxDemand
	st.Vehicles = vehicles
	st.RouteSize = r

	name := p.Name()
	inst := &Instance{
		Name:            name,
		Comment:         instanceComment,
		Type:            instanceType,
		Dimension:       p.N + 1,
		EdgeWeightType:  edgeWeightType,
		Capacity:        capacity,
		Depots:          []int{0},
		NodeCoordinates: vertices,
		Demands:         append([]int{0}, demands...),
		Stats:           &st,
	}
	ds := &Dataset{
		Name:     name,
		Depot:    depot,
		Vertices: vertices,
		Seeds:    seeds,
	}
	return &Result{Instance: inst, Dataset: ds, Stats: st}, nil
}

// Generate runs the default generator and returns the instance text together
// with the spatial dataset.
func Generate(p Params) (string, *Dataset, error) {
	res, err := (&Generator{}).Run(p)
	if err != nil {
		return "", nil, err
	}
	return string(res.Instance.MarshalVRP()), res.Dataset, nil
}

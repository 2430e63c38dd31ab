package cvrp

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGenerationInvariants checks the structural guarantees of generated
// instances over random parameter tuples.
func TestGenerationInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	if testing.Short() {
		parameters.MinSuccessfulTests = 15
	}
	properties := gopter.NewProperties(parameters)

	run := func(n, root, cust, demand, route int, seed int64) (*Result, bool) {
		res, err := (&Generator{}).Run(params(n, root, cust, demand, route, seed))
		if err != nil {
			// only clustered layouts on tiny instances may run out of room for seeds
			var ce *ConstraintError
			return nil, errors.As(err, &ce) && cust != int(CustomersRandom) && ce.Clustered < ce.Seeds
		}
		return res, true
	}

	properties.Property("vertices are unique and exclude the depot", prop.ForAll(
		func(n, root, cust, demand, route int, seed int64) bool {
			res, ok := run(n, root, cust, demand, route, seed)
			if res == nil {
				return ok
			}
			seen := map[Coordinate]bool{}
			for _, c := range res.Instance.NodeCoordinates {
				if seen[c] {
					return false
				}
				seen[c] = true
			}
			return len(seen) == n+1 && res.Instance.Validate() == nil
		},
		gen.IntRange(1, 60), gen.IntRange(1, 3), gen.IntRange(1, 3),
		gen.IntRange(1, 7), gen.IntRange(1, 6), gen.Int64(),
	))

	properties.Property("cardinality and depot demand", prop.ForAll(
		func(n, root, cust, demand, route int, seed int64) bool {
			res, ok := run(n, root, cust, demand, route, seed)
			if res == nil {
				return ok
			}
			inst := res.Instance
			return inst.Dimension == n+1 &&
				len(inst.NodeCoordinates) == n+1 &&
				len(inst.Demands) == n+1 &&
				inst.Demands[0] == 0
		},
		gen.IntRange(1, 60), gen.IntRange(1, 3), gen.IntRange(1, 3),
		gen.IntRange(1, 7), gen.IntRange(1, 6), gen.Int64(),
	))

	properties.Property("demands stay within policy bounds", prop.ForAll(
		func(n, root, cust, demand, route int, seed int64) bool {
			res, ok := run(n, root, cust, demand, route, seed)
			if res == nil {
				return ok
			}
			policy, err := PolicyFor(DemandType(demand), n, res.Stats.RouteSize)
			if err != nil {
				return false
			}
			for _, d := range res.Instance.Demands[1:] {
				if !policy.Bounds().Contains(d) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 60), gen.IntRange(1, 3), gen.IntRange(1, 3),
		gen.IntRange(1, 7), gen.IntRange(1, 6), gen.Int64(),
	))

	properties.Property("capacity covers the largest demand", prop.ForAll(
		func(n, root, cust, demand, route int, seed int64) bool {
			res, ok := run(n, root, cust, demand, route, seed)
			if res == nil {
				return ok
			}
			st := res.Stats
			if st.SumDemands != n && res.Instance.Capacity < st.MaxDemand {
				return false
			}
			return st.Vehicles*res.Instance.Capacity >= st.SumDemands
		},
		gen.IntRange(1, 60), gen.IntRange(1, 3), gen.IntRange(1, 3),
		gen.IntRange(1, 7), gen.IntRange(1, 6), gen.Int64(),
	))

	properties.Property("same seed, same text", prop.ForAll(
		func(n, demand int, seed int64) bool {
			p := params(n, 1, 3, demand, 3, seed)
			a, _, errA := Generate(p)
			b, _, errB := Generate(p)
			return (errA == nil) == (errB == nil) && a == b
		},
		gen.IntRange(1, 40), gen.IntRange(1, 7), gen.Int64(),
	))

	properties.TestingRun(t)
}

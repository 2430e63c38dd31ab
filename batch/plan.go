// Package batch generates whole instance grids: it expands a configured plan
// into jobs, runs them on a worker pool and stores the results.
package batch

import (
	"git.solver4all.com/azaryc2s/cvrp"
	"git.solver4all.com/azaryc2s/cvrp/config"
)

// Job is one generation of a plan. Index is its position in plan order.
type Job struct {
	Index  int
	Params cvrp.Params
}

// Jobs expands b in the order size, depot, customers, demand, route size,
// instance id. Job j gets seed BaseSeed+j, so a plan always maps to the same
// instances regardless of how many workers run it.
func Jobs(b config.Batch) []Job {
	var jobs []Job
	for _, n := range b.Sizes {
		for _, root := range b.RootPos {
			for _, cust := range b.CustPos {
				for _, demand := range b.DemandTypes {
					for _, route := range b.RouteSizes {
						for id := 1; id <= b.Count; id++ {
							idx := len(jobs)
							jobs = append(jobs, Job{
								Index: idx,
								Params: cvrp.Params{
									N:            n,
									RootPos:      cvrp.DepotPlacement(root),
									CustPos:      cvrp.CustomerPlacement(cust),
									DemandType:   cvrp.DemandType(demand),
									AvgRouteSize: cvrp.RouteSize(route),
									InstanceID:   id,
									Seed:         b.BaseSeed + int64(idx),
								},
							})
						}
					}
				}
			}
		}
	}
	return jobs
}

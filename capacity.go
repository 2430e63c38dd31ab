package cvrp

import "math"

// DeriveCapacity returns the vehicle capacity for n customers with the given
// demand aggregates and target route size r, and the fleet size it implies.
//
// With unit demands everywhere (sum == n) the capacity is floor(r); otherwise
// it is ceil(r*sum/n), raised to maxDemand when smaller.
func DeriveCapacity(n, sum, maxDemand int, r float64) (capacity, vehicles int) {
	if sum == n {
		capacity = int(math.Floor(r))
	} else {
		capacity = max(maxDemand, int(math.Ceil(r*float64(sum)/float64(n))))
	}
	vehicles = int(math.Ceil(float64(sum) / float64(capacity)))
	return capacity, vehicles
}

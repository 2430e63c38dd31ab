package cvrp

import "git.solver4all.com/azaryc2s/cvrp/rng"

// PlaceDepot draws the depot coordinate. Only DepotRandom consumes draws
// (x first, then y).
func PlaceDepot(s rng.Stream, mode DepotPlacement) (Coordinate, error) {
	switch mode {
	case DepotRandom:
		x := s.RandInt(0, MaxCoord)
		y := s.RandInt(0, MaxCoord)
		return Coordinate{x, y}, nil
	case DepotCentered:
		return Coordinate{MaxCoord / 2, MaxCoord / 2}, nil
	case DepotCornered:
		return Coordinate{0, 0}, nil
	}
	return Coordinate{}, &RangeError{Param: "depot positioning", Value: int(mode), Min: 1, Max: 3}
}

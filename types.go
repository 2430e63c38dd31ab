package cvrp

import "fmt"

// MaxCoord bounds both axes of the square grid, inclusive.
const MaxCoord = 1000

// Coordinate is an integer grid point (x, y). It marshals to JSON as [x, y].
type Coordinate [2]int

func (c Coordinate) X() int { return c[0] }
func (c Coordinate) Y() int { return c[1] }

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c[0], c[1])
}

type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Type    string `json:"type"`

	Dimension       int          `json:"dimension"`
	EdgeWeightType  string       `json:"edge_weight_type"`
	Capacity        int          `json:"capacity"`
	Depots          []int        `json:"depots"`
	NodeCoordinates []Coordinate `json:"node_coordinates"`
	EdgeWeights     [][]int      `json:"edge_weights,omitempty"`
	Demands         []int        `json:"demands"`

	Stats *Stats `json:"stats,omitempty"`
}

// Dataset is the spatial side output, meant for plotting only.
type Dataset struct {
	Name     string       `json:"name"`
	Depot    Coordinate   `json:"depot"`
	Vertices []Coordinate `json:"vertices"`
	Seeds    []Coordinate `json:"seeds"`
}

// Stats are the aggregates computed while generating an instance.
type Stats struct {
	SumDemands int     `json:"sum_demands"`
	MaxDemand  int     `json:"max_demand"`
	Vehicles   int     `json:"vehicles"`
	RouteSize  float64 `json:"route_size"`
	Seeds      int     `json:"seeds"`

	// accept-reject sampler counters
	Candidates int `json:"candidates"`
	Rejections int `json:"rejections"`
	Collisions int `json:"collisions"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}

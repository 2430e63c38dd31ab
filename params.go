package cvrp

import (
	"fmt"
	"strconv"
)

// DepotPlacement selects where the depot goes.
type DepotPlacement int

const (
	DepotRandom   DepotPlacement = 1
	DepotCentered DepotPlacement = 2
	DepotCornered DepotPlacement = 3
)

// CustomerPlacement selects the spatial point process for customers.
type CustomerPlacement int

const (
	CustomersRandom    CustomerPlacement = 1
	CustomersClustered CustomerPlacement = 2
	CustomersMixed     CustomerPlacement = 3
)

// DemandType selects one of the seven demand distributions.
type DemandType int

const (
	DemandUnitary DemandType = iota + 1
	DemandSmallLargeVar
	DemandSmallSmallVar
	DemandLargeLargeVar
	DemandLargeSmallVar
	DemandQuadrant
	DemandFewLargeManySmall
)

// RouteSize selects the target average number of customers per route.
type RouteSize int

const (
	RouteVeryShort RouteSize = iota + 1
	RouteShort
	RouteMedium
	RouteLong
	RouteVeryLong
	RouteUltraLong
)

// MaxCustomers is the largest n the grid can hold next to a depot.
const MaxCustomers = (MaxCoord+1)*(MaxCoord+1) - 1

var (
	depotLabels    = []string{"Random", "Centered", "Cornered"}
	customerLabels = []string{"Random", "Clustered", "Random-clustered"}
	demandLabels   = []string{
		"Unitary",
		"Small, large var",
		"Small, small var",
		"Large, large var",
		"Large, small var",
		"Large, depending on quadrant",
		"Few large, many small",
	}
	routeLabels = []string{"Very short", "Short", "Medium", "Long", "Very long", "Ultra long"}

	// route size intervals (lo, hi) for r
	routeIntervals = [][2]float64{{3, 5}, {5, 8}, {8, 12}, {12, 16}, {16, 25}, {25, 50}}
)

func label(labels []string, v int) string {
	if v < 1 || v > len(labels) {
		return strconv.Itoa(v)
	}
	return labels[v-1]
}

func (d DepotPlacement) String() string    { return label(depotLabels, int(d)) }
func (c CustomerPlacement) String() string { return label(customerLabels, int(c)) }
func (d DemandType) String() string        { return label(demandLabels, int(d)) }
func (r RouteSize) String() string         { return label(routeLabels, int(r)) }

// Interval returns the bounds r is drawn from.
func (r RouteSize) Interval() (lo, hi float64) {
	iv := routeIntervals[r-1]
	return iv[0], iv[1]
}

// Params are the inputs of one generation.
type Params struct {
	N            int               `json:"n"`
	RootPos      DepotPlacement    `json:"root_pos"`
	CustPos      CustomerPlacement `json:"cust_pos"`
	DemandType   DemandType        `json:"demand_type"`
	AvgRouteSize RouteSize         `json:"avg_route_size"`
	InstanceID   int               `json:"instance_id"`
	Seed         int64             `json:"seed"`
}

// Validate returns a *RangeError for the first parameter out of its domain.
func (p Params) Validate() error {
	checks := []error{
		checkRange("demand type", int(p.DemandType), 1, len(demandLabels)),
		checkRange("average route size", int(p.AvgRouteSize), 1, len(routeLabels)),
		checkRange("depot positioning", int(p.RootPos), 1, len(depotLabels)),
		checkRange("customer positioning", int(p.CustPos), 1, len(customerLabels)),
		checkRange("number of customers", p.N, 1, MaxCustomers),
		checkRange("instance id", p.InstanceID, 1, maxInt),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

const maxInt = int(^uint(0) >> 1)

// Name is XML<n>_<rootPos><custPos><demandType><avgRouteSize>_<id:02d>.
func (p Params) Name() string {
	return fmt.Sprintf("XML%d_%d%d%d%d_%02d", p.N, p.RootPos, p.CustPos, p.DemandType, p.AvgRouteSize, p.InstanceID)
}

// OptionValue is one selectable value of a categorical parameter.
type OptionValue struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Option lists the values of one categorical parameter.
type Option struct {
	Param  string        `json:"param"`
	Values []OptionValue `json:"values"`
}

// Options returns the categorical parameters with their human-readable labels.
func Options() []Option {
	build := func(param string, labels []string) Option {
		o := Option{Param: param}
		for i, l := range labels {
			o.Values = append(o.Values, OptionValue{Value: i + 1, Label: l})
		}
		return o
	}
	return []Option{
		build("root", depotLabels),
		build("cust", customerLabels),
		build("demand", demandLabels),
		build("route", routeLabels),
	}
}

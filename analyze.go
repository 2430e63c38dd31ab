package cvrp

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// Summary holds the figures the analyzer reports per instance.
type Summary struct {
	Name         string
	Dimension    int
	Capacity     int
	SumDemands   int
	MaxDemand    int
	Vehicles     int
	AvgRouteSize float64
	// RadialBound is 2 * sum(d_i * dist(depot, i)) / capacity, a lower bound
	// on the total route length.
	RadialBound float64
}

func (inst *Instance) Summarize() Summary {
	sum, maxDemand := inst.DemandStats()
	s := Summary{
		Name:       inst.Name,
		Dimension:  inst.Dimension,
		Capacity:   inst.Capacity,
		SumDemands: sum,
		MaxDemand:  maxDemand,
	}
	if inst.Capacity <= 0 || len(inst.Depots) == 0 || len(inst.Demands) != len(inst.NodeCoordinates) {
		return s
	}
	s.Vehicles = int(math.Ceil(float64(sum) / float64(inst.Capacity)))
	if s.Vehicles > 0 {
		s.AvgRouteSize = float64(inst.Dimension-len(inst.Depots)) / float64(s.Vehicles)
	}

	depot := inst.NodeCoordinates[inst.Depots[0]]
	radial := 0.0
	for i, c := range inst.NodeCoordinates {
		radial += float64(inst.Demands[i]) * Distance(depot, c)
	}
	s.RadialBound = 2 * radial / float64(inst.Capacity)
	return s
}

// ReadVRPFile parses the instance stored at path. Files ending in .sz are
// read through a snappy framed reader.
func ReadVRPFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".sz") {
		r = snappy.NewReader(f)
	}
	inst, err := ParseVRP(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

package cvrp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MarshalVRP renders the instance in the CVRPLIB text format. Table fields are
// left-justified to four characters.
func (inst *Instance) MarshalVRP() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "NAME : %s\n", inst.Name)
	fmt.Fprintf(&b, "COMMENT : %s\n", inst.Comment)
	fmt.Fprintf(&b, "TYPE : %s\n", inst.Type)
	fmt.Fprintf(&b, "DIMENSION : %d\n", inst.Dimension)
	fmt.Fprintf(&b, "EDGE_WEIGHT_TYPE : %s\n", inst.EdgeWeightType)
	fmt.Fprintf(&b, "CAPACITY : %d\n", inst.Capacity)
	b.WriteString("NODE_COORD_SECTION\n")
	for i, c := range inst.NodeCoordinates {
		fmt.Fprintf(&b, "%-4d %-4d %-4d\n", i+1, c[0], c[1])
	}
	b.WriteString("DEMAND_SECTION\n")
	for i, d := range inst.Demands {
		fmt.Fprintf(&b, "%-4d %-4d\n", i+1, d)
	}
	b.WriteString("DEPOT_SECTION\n")
	for _, d := range inst.Depots {
		fmt.Fprintf(&b, "%d\n", d+1)
	}
	b.WriteString("-1\nEOF\n")
	return b.Bytes()
}

// ParseVRP reads an instance in the format written by MarshalVRP. Depots are
// returned 0-indexed.
func ParseVRP(r io.Reader) (*Instance, error) {
	inst := &Instance{}
	malformed := func(line int, format string, args ...interface{}) error {
		return fmt.Errorf("%w: line %d: %s", ErrMalformedVRP, line, fmt.Sprintf(format, args...))
	}

	scanner := bufio.NewScanner(r)
	line := 0
	metaData := true
	var nodeCoordSection, demandSection, depotSection bool
	for scanner.Scan() {
		line++
		t := strings.TrimSpace(scanner.Text())
		if t == "" {
			continue
		}
		switch t {
		case "NODE_COORD_SECTION":
			metaData, nodeCoordSection, demandSection, depotSection = false, true, false, false
			continue
		case "DEMAND_SECTION":
			metaData, nodeCoordSection, demandSection, depotSection = false, false, true, false
			continue
		case "DEPOT_SECTION":
			metaData, nodeCoordSection, demandSection, depotSection = false, false, false, true
			continue
		case "EOF":
			return inst, scanner.Err()
		}

		if metaData {
			key, value, ok := strings.Cut(t, ":")
			if !ok {
				return nil, malformed(line, "expected KEY : VALUE, got %q", t)
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			var err error
			switch key {
			case "NAME":
				inst.Name = value
			case "COMMENT":
				inst.Comment = value
			case "TYPE":
				inst.Type = value
			case "DIMENSION":
				inst.Dimension, err = strconv.Atoi(value)
			case "CAPACITY":
				inst.Capacity, err = strconv.Atoi(value)
			case "EDGE_WEIGHT_TYPE":
				inst.EdgeWeightType = value
			}
			if err != nil {
				return nil, malformed(line, "%s: %s", key, err.Error())
			}
			continue
		}

		fields := strings.Fields(t)
		switch {
		case nodeCoordSection:
			if len(fields) != 3 {
				return nil, malformed(line, "expected index x y, got %q", t)
			}
			xy, err := atoiAll(fields)
			if err != nil {
				return nil, malformed(line, "coordinate: %s", err.Error())
			}
			if xy[0] != len(inst.NodeCoordinates)+1 {
				return nil, malformed(line, "node index %d out of order", xy[0])
			}
			inst.NodeCoordinates = append(inst.NodeCoordinates, Coordinate{xy[1], xy[2]})
		case demandSection:
			if len(fields) != 2 {
				return nil, malformed(line, "expected index demand, got %q", t)
			}
			v, err := atoiAll(fields)
			if err != nil {
				return nil, malformed(line, "demand: %s", err.Error())
			}
			if v[0] != len(inst.Demands)+1 {
				return nil, malformed(line, "demand index %d out of order", v[0])
			}
			inst.Demands = append(inst.Demands, v[1])
		case depotSection:
			depot, err := strconv.Atoi(t)
			if err != nil {
				return nil, malformed(line, "depot: %s", err.Error())
			}
			if depot < 0 {
				depotSection = false
				continue
			}
			inst.Depots = append(inst.Depots, depot-1)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, malformed(line, "missing EOF")
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Validate checks the structural invariants of a generated instance.
func (inst *Instance) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidInstance, fmt.Sprintf(format, args...))
	}
	if inst.Dimension < 2 {
		return invalid("dimension %d", inst.Dimension)
	}
	if len(inst.NodeCoordinates) != inst.Dimension {
		return invalid("%d coordinates for dimension %d", len(inst.NodeCoordinates), inst.Dimension)
	}
	if len(inst.Demands) != inst.Dimension {
		return invalid("%d demands for dimension %d", len(inst.Demands), inst.Dimension)
	}
	if len(inst.Depots) == 0 {
		return invalid("no depot")
	}
	seen := make(map[Coordinate]int, inst.Dimension)
	for i, c := range inst.NodeCoordinates {
		if c[0] < 0 || c[0] > MaxCoord || c[1] < 0 || c[1] > MaxCoord {
			return invalid("node %d at %v outside the grid", i+1, c)
		}
		if j, ok := seen[c]; ok {
			return invalid("nodes %d and %d share %v", j+1, i+1, c)
		}
		seen[c] = i
	}
	for _, d := range inst.Depots {
		if d < 0 || d >= inst.Dimension {
			return invalid("depot %d out of range", d+1)
		}
		if inst.Demands[d] != 0 {
			return invalid("depot %d has demand %d", d+1, inst.Demands[d])
		}
	}
	maxDemand := 0
	for i, d := range inst.Demands {
		if d < 0 {
			return invalid("node %d has negative demand %d", i+1, d)
		}
		maxDemand = max(maxDemand, d)
	}
	if inst.Capacity < 1 || inst.Capacity < maxDemand {
		return invalid("capacity %d below max demand %d", inst.Capacity, maxDemand)
	}
	return nil
}

// DemandStats returns the customer demand sum and maximum.
func (inst *Instance) DemandStats() (sum, maxDemand int) {
	for _, d := range inst.Demands {
		sum += d
		maxDemand = max(maxDemand, d)
	}
	return sum, maxDemand
}

package cvrp

import (
	"errors"
	"fmt"
)

// RangeError reports a generation parameter outside its domain. It is returned
// before any random draw is made.
type RangeError struct {
	Param string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cvrp: %s %d out of range [%d,%d]", e.Param, e.Value, e.Min, e.Max)
}

// ConstraintError reports fewer clustered customers than drawn seeds.
type ConstraintError struct {
	Clustered int
	Seeds     int
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("cvrp: too many seeds: %d seeds for %d clustered customers", e.Seeds, e.Clustered)
}

// ErrInvalidInstance wraps every failure of Instance.Validate.
var ErrInvalidInstance = errors.New("cvrp: invalid instance")

// ErrMalformedVRP wraps every failure of ParseVRP.
var ErrMalformedVRP = errors.New("cvrp: malformed vrp file")

func checkRange(param string, value, min, max int) error {
	if value < min || value > max {
		return &RangeError{Param: param, Value: value, Min: min, Max: max}
	}
	return nil
}

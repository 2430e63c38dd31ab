package cvrp

import (
	"fmt"
	"strconv"
	"strings"
)

// Repeatable flag values. Each occurrence appends; a single occurrence may also
// carry a comma separated list ("-n 100,200").

type ArrayIntFlags []int

func (i *ArrayIntFlags) String() string {
	return fmt.Sprintf("%v", *i)
}

func (i *ArrayIntFlags) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		val, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*i = append(*i, val)
	}
	return nil
}

package cvrp

import (
	"math"
	"regexp"
)

// EdgeWeight is the TSPLIB distance between a and b for EUC_2D (rounded to
// nearest) or CEIL_2D. Other weight types yield -1.
func EdgeWeight(a, b Coordinate, distType string) int {
	d := Distance(a, b)
	switch distType {
	case "EUC_2D":
		return int(d + 0.5)
	case "CEIL_2D":
		return int(math.Ceil(d))
	}
	return -1
}

func CalcEdgeDist(coordinates []Coordinate, distType string) [][]int {
	n := len(coordinates)
	result := make([][]int, n)
	for node := 0; node < n; node++ {
		result[node] = make([]int, n)
		for node2 := 0; node2 < node; node2++ {
			distance := EdgeWeight(coordinates[node], coordinates[node2], distType)
			result[node][node2] = distance
			result[node2][node] = distance
		}
	}
	return result
}

var (
	jsonNumbers  = regexp.MustCompile(`\s*([-]?[0-9]+(\.[0-9]+)?),\s+([-]?[0-9]+(\.[0-9]+)?)(,)?`)
	jsonBrackets = regexp.MustCompile(`\[(([-]?[0-9]+(\.[0-9]+)?,)+[-]?[0-9]+(\.[0-9]+)?)\s+\](,?)(\s+)`)
)

// SanitizeJSONArrayLineBreaks compacts json.MarshalIndent output so that
// every flat numeric array of two or more elements (a coordinate pair, the
// demand list, a row of the edge weight matrix) sits on one line. Enclosing
// arrays keep one element per line, so node_coordinates reads as one [x,y]
// per line. Single-element arrays are left as they are.
func SanitizeJSONArrayLineBreaks(json string) string {
	json = collapse(json, jsonNumbers, "$1,$3$5")
	return collapse(json, jsonBrackets, "[$1]$5$6")
}

// collapse applies re until nothing matches.
func collapse(s string, re *regexp.Regexp, repl string) string {
	for re.MatchString(s) {
		s = re.ReplaceAllString(s, repl)
	}
	return s
}

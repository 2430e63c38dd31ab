// Package rng provides the explicitly seeded random streams that drive
// instance generation. A stream is created once per generation and threaded
// through every component; nothing in this module reads a global source.
//
// Streams are NOT goroutine-safe. Each concurrent generation owns its own.
package rng

import (
	"fmt"
	"strings"
)

// Stream is the set of draws the generator needs.
type Stream interface {
	// RandInt returns an integer uniformly drawn from [lo, hi], both inclusive.
	RandInt(lo, hi int) int
	// Uniform returns lo + (hi-lo)*u for u uniform in [0, 1).
	Uniform(lo, hi float64) float64
	// Shuffle permutes n elements in place through swap.
	Shuffle(n int, swap func(i, j int))
}

// Kind names a stream implementation.
type Kind string

const (
	// Python reproduces the draw sequence of CPython's random module.
	Python Kind = "python"
	// Go uses math/rand.
	Go Kind = "go"
)

// ParseKind maps a configuration string to a Kind. The empty string selects Python.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", Python:
		return Python, nil
	case Go:
		return Go, nil
	}
	return "", fmt.Errorf("rng: unknown stream kind %q", s)
}

// New returns a fresh stream of the given kind seeded with seed.
func New(kind Kind, seed int64) (Stream, error) {
	switch kind {
	case "", Python:
		return NewPython(seed), nil
	case Go:
		return NewMath(seed), nil
	}
	return nil, fmt.Errorf("rng: unknown stream kind %q", kind)
}

// Factory builds a stream for a seed. Generators hold one so the stream is only
// created after parameters have been validated.
type Factory func(seed int64) Stream

// FactoryFor returns a Factory producing streams of kind.
func FactoryFor(kind Kind) (Factory, error) {
	if _, err := New(kind, 0); err != nil {
		return nil, err
	}
	return func(seed int64) Stream {
		s, _ := New(kind, seed)
		return s
	}, nil
}

// Package houserobber defines methods, options, results and sentinel errors
// for the maximum non-adjacent sum problem.
package houserobber

import "errors"

// Sentinel errors for houserobber operations.
var (
	// ErrNegativeValue indicates a house value below zero.
	ErrNegativeValue = errors.New("houserobber: house values must be non-negative")
	// ErrUnknownMethod indicates Options.Method is not one of the Method* constants.
	ErrUnknownMethod = errors.New("houserobber: unknown method")
)

// Method selects the solving strategy used by Solve.
type Method int

const (
	// MethodOptimal keeps two rolling scalars.
	MethodOptimal Method = iota
	// MethodTabulated fills one (skip, rob) pair per prefix.
	MethodTabulated
	// MethodMemo caches the best loot reachable from each index.
	MethodMemo
	// MethodRecursive runs the exhaustive search.
	MethodRecursive
)

// String returns the lower-case name of the method.
func (m Method) String() string {
	switch m {
	case MethodOptimal:
		return "optimal"
	case MethodTabulated:
		return "tabulated"
	case MethodMemo:
		return "memo"
	case MethodRecursive:
		return "recursive"
	default:
		return "unknown"
	}
}

// Options configures Solve.
type Options struct {
	// Method is the strategy to run.
	Method Method
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the solving strategy.
func WithMethod(m Method) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// DefaultOptions returns Options with Method = MethodOptimal, applying any
// supplied Option on top.
func DefaultOptions(opts ...Option) Options {
	o := Options{Method: MethodOptimal}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// Result is an optimal selection of houses.
type Result struct {
	// Houses holds the robbed indices in ascending order; no two are adjacent.
	Houses []int

	// Loot is the sum of values over Houses.
	Loot int
}

// pair is one row of the tabulated state: the best loot for a prefix when
// its last house is skipped or robbed.
type pair struct {
	skip, rob int
}

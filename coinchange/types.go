// Package coinchange defines methods, options, results and sentinel errors
// for minimum-coin change.
package coinchange

import "errors"

// Infeasible is returned by the MinCoins* functions when no combination of
// denominations makes the requested amount.
const Infeasible = -1

// Sentinel errors for coinchange operations.
var (
	// ErrNoDenominations indicates a nil or empty denomination set.
	ErrNoDenominations = errors.New("coinchange: at least one denomination is required")
	// ErrBadDenomination indicates a zero or negative denomination.
	ErrBadDenomination = errors.New("coinchange: denominations must be positive")
	// ErrNegativeAmount indicates a target amount below zero.
	ErrNegativeAmount = errors.New("coinchange: amount must be non-negative")
	// ErrInfeasible indicates the amount cannot be made from the denominations.
	ErrInfeasible = errors.New("coinchange: amount cannot be made from denominations")
	// ErrUnknownMethod indicates Options.Method is not one of the Method* constants.
	ErrUnknownMethod = errors.New("coinchange: unknown method")
)

// Method selects the solving strategy used by Solve.
type Method int

const (
	// MethodTabulated fills the full (m+1)×(amount+1) table.
	MethodTabulated Method = iota
	// MethodRecursive runs the exhaustive skip/reuse search.
	MethodRecursive
	// MethodRolling keeps a single row of amount+1 cells.
	MethodRolling
)

// String returns the lower-case name of the method.
func (m Method) String() string {
	switch m {
	case MethodTabulated:
		return "tabulated"
	case MethodRecursive:
		return "recursive"
	case MethodRolling:
		return "rolling"
	default:
		return "unknown"
	}
}

// Options configures Solve.
//
// Fields:
//
//	Method — strategy to run; see the Method* constants.
type Options struct {
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

// DefaultOptions returns Options with Method = MethodTabulated, applying any
// supplied Option on top.
func DefaultOptions(opts ...Option) Options {
	o := Options{Method: MethodTabulated}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// Result is a concrete way to make an amount with the fewest coins.
type Result struct {
	// Coins lists every coin used, largest first.
	Coins []int

	// Count is len(Coins), the minimum number of coins.
	Count int

	// Breakdown maps each used denomination to how many times it appears.
	Breakdown map[int]int
}

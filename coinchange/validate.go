package coinchange

import "fmt"

// Validate reports whether denominations and amount form a well-posed
// coin-change instance.
//
// Contract:
//   - denominations must be non-empty and every value must be > 0.
//     A zero denomination would let the recursive search reuse it forever.
//   - amount must be ≥ 0.
//
// Errors: ErrNoDenominations, ErrBadDenomination (wrapped with the offending
// index), ErrNegativeAmount.
//
// Complexity: O(m).
func Validate(denominations []int, amount int) error {
	if len(denominations) == 0 {
		return ErrNoDenominations
	}
	for i, d := range denominations {
		if d <= 0 {
			return fmt.Errorf("%w: denominations[%d]=%d", ErrBadDenomination, i, d)
		}
	}
	if amount < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeAmount, amount)
	}

	return nil
}

// valid is the allocation-free form of Validate used by the MinCoins*
// functions, which report bad input as Infeasible instead of an error.
func valid(denominations []int, amount int) bool {
	if len(denominations) == 0 || amount < 0 {
		return false
	}
	for _, d := range denominations {
		if d <= 0 {
			return false
		}
	}

	return true
}

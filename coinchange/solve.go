package coinchange

// Solve validates the instance and runs the strategy selected by opts.Method.
//
// Unlike the MinCoins* functions, bad input and unreachable amounts are
// reported as errors; the returned count is Infeasible whenever err != nil.
//
// Errors: ErrUnknownMethod, those of Validate, and ErrInfeasible.
func Solve(denominations []int, amount int, opts Options) (int, error) {
	var solve func([]int, int) int
	switch opts.Method {
	case MethodTabulated:
		solve = MinCoinsTabulated
	case MethodRecursive:
		solve = MinCoinsRecursive
	case MethodRolling:
		solve = MinCoinsRolling
	default:
		return Infeasible, ErrUnknownMethod
	}

	if err := Validate(denominations, amount); err != nil {
		return Infeasible, err
	}
	count := solve(denominations, amount)
	if count == Infeasible {
		return Infeasible, ErrInfeasible
	}

	return count, nil
}

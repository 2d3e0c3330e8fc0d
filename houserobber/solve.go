package houserobber

// Solve validates values and runs the strategy selected by opts.Method.
//
// Errors: ErrUnknownMethod, ErrNegativeValue.
func Solve(values []int, opts Options) (int, error) {
	var solve func([]int) int
	switch opts.Method {
	case MethodOptimal:
		solve = MaxLootOptimal
	case MethodTabulated:
		solve = MaxLootTabulated
	case MethodMemo:
		solve = MaxLootMemo
	case MethodRecursive:
		solve = MaxLootRecursive
	default:
		return 0, ErrUnknownMethod
	}
	if err := Validate(values); err != nil {
		return 0, err
	}

	return solve(values), nil
}

package houserobber

// Plan returns an optimal set of houses to rob together with its loot.
//
// It fills the same table as MaxLootTabulated and walks it back from row n:
// a robbed house forces the previous row's skip state, and a skipped house
// continues from whichever state of the previous row was larger. Ties favour
// skipping, so zero-value houses are left out of the plan.
//
// Errors: ErrNegativeValue.
//
// Complexity: O(n) time and memory.
func Plan(values []int) (Result, error) {
	if err := Validate(values); err != nil {
		return Result{}, err
	}
	if len(values) == 0 {
		return Result{Houses: []int{}}, nil
	}

	var (
		dp     = buildTable(values)
		i      = len(values)
		robbed = dp[i].rob > dp[i].skip
		houses []int
	)
	loot := max(dp[i].skip, dp[i].rob)
	for ; i > 0; i-- {
		if robbed {
			houses = append(houses, i-1)
			robbed = false
			continue
		}
		robbed = dp[i-1].rob > dp[i-1].skip
	}

	// reverse in place into ascending order
	for l, r := 0, len(houses)-1; l < r; l, r = l+1, r-1 {
		houses[l], houses[r] = houses[r], houses[l]
	}
	if houses == nil {
		houses = []int{}
	}

	return Result{Houses: houses, Loot: loot}, nil
}

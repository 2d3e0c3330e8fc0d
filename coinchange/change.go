package coinchange

import "sort"

// Change returns one concrete minimum-coin way to make amount.
//
// It fills the same table as MinCoinsTabulated and walks it back from
// (m, amount): when dp[i][j] equals dp[i-1][j] the i-th denomination is not
// needed and the walk moves up a row, otherwise one coin of it was spent
// and the walk moves left by its value.
//
// Errors: those of Validate, or ErrInfeasible when the amount cannot be made.
//
// Complexity: O(m·amount) time and memory, plus O(k log k) to order the k coins.
func Change(denominations []int, amount int) (Result, error) {
	if err := Validate(denominations, amount); err != nil {
		return Result{}, err
	}

	var (
		dp = buildTable(denominations, amount)
		i  = len(denominations)
		j  = amount
	)
	if dp[i][j] > amount {
		return Result{}, ErrInfeasible
	}

	coins := make([]int, 0, dp[i][j])
	for j > 0 {
		if dp[i][j] == dp[i-1][j] {
			i--
			continue
		}
		coin := denominations[i-1]
		coins = append(coins, coin)
		j -= coin
	}
	sort.Sort(sort.Reverse(sort.IntSlice(coins)))

	breakdown := make(map[int]int, len(denominations))
	for _, c := range coins {
		breakdown[c]++
	}

	return Result{Coins: coins, Count: len(coins), Breakdown: breakdown}, nil
}

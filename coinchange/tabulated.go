package coinchange

// MinCoinsTabulated returns the minimum number of coins summing to amount
// using a bottom-up (m+1)×(amount+1) table, or Infeasible.
//
// Row i holds the best counts using only the first i denominations. Row 0
// is 0 at column 0 and the unreached sentinel amount+1 elsewhere; amount+1
// exceeds any real coin count and cannot overflow the 1+x step.
//
// Complexity: O(m·amount) time and memory.
func MinCoinsTabulated(denominations []int, amount int) int {
	if !valid(denominations, amount) {
		return Infeasible
	}
	dp := buildTable(denominations, amount)

	return finish(dp[len(denominations)][amount], amount)
}

// MinCoinsRolling returns the same answer as MinCoinsTabulated while keeping
// only one row of amount+1 cells. Updating the row in place for j ascending
// reads dp[j-d] after it already includes denomination d, which is the same
// same-row reuse the full table performs.
//
// Complexity: O(m·amount) time, O(amount) memory.
func MinCoinsRolling(denominations []int, amount int) int {
	if !valid(denominations, amount) {
		return Infeasible
	}
	unreached := amount + 1
	row := make([]int, amount+1)
	for j := 1; j <= amount; j++ {
		row[j] = unreached
	}
	for _, coin := range denominations {
		for j := coin; j <= amount; j++ {
			row[j] = min(row[j], 1+row[j-coin])
		}
	}

	return finish(row[amount], amount)
}

// buildTable fills dp[i][j] = fewest coins making j from denominations[:i].
// Inputs must already be valid.
func buildTable(denominations []int, amount int) [][]int {
	var (
		m         = len(denominations)
		unreached = amount + 1
		dp        = make([][]int, m+1)
	)
	for i := range dp {
		dp[i] = make([]int, amount+1)
	}
	for j := 1; j <= amount; j++ {
		dp[0][j] = unreached
	}

	for i := 1; i <= m; i++ {
		coin := denominations[i-1]
		for j := 1; j <= amount; j++ {
			if coin > j {
				dp[i][j] = dp[i-1][j]
				continue
			}
			dp[i][j] = min(dp[i-1][j], 1+dp[i][j-coin])
		}
	}

	return dp
}

// finish translates the unreached sentinel back to Infeasible.
func finish(count, amount int) int {
	if count > amount {
		return Infeasible
	}

	return count
}

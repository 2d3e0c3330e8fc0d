package coinchange

// MinCoinsRecursive returns the minimum number of coins summing to amount by
// exhaustive search, or Infeasible.
//
// At every step the search either skips the current denomination for good
// (index+1) or spends one more coin of it while keeping the index fixed, so
// each multiset of coins is explored once rather than every permutation.
//
// Returns Infeasible for empty denominations, a negative amount, a
// non-positive denomination, or an unreachable amount.
//
// Complexity: exponential; use it as an oracle on small inputs only.
func MinCoinsRecursive(denominations []int, amount int) int {
	if !valid(denominations, amount) {
		return Infeasible
	}

	return searchCoins(denominations, amount, 0, 0)
}

// searchCoins explores denominations[index:] for the remaining amount with
// used coins already spent.
func searchCoins(denominations []int, amount, index, used int) int {
	if amount < 0 {
		return Infeasible
	}
	if amount == 0 {
		return used
	}
	if index == len(denominations) {
		return Infeasible
	}

	skip := searchCoins(denominations, amount, index+1, used)
	take := searchCoins(denominations, amount-denominations[index], index, used+1)

	return combine(skip, take)
}

// combine merges two branch results: a failed branch yields to the other,
// otherwise the smaller count wins.
func combine(a, b int) int {
	if a == Infeasible {
		return b
	}
	if b == Infeasible {
		return a
	}

	return min(a, b)
}

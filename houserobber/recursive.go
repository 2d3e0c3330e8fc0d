package houserobber

// MaxLootRecursive returns the maximum non-adjacent sum by trying both
// choices at every house: rob it and jump to index+2, or skip to index+1.
// It returns 0 for nil or empty input.
//
// Complexity: exponential; use it as an oracle on small inputs only.
func MaxLootRecursive(values []int) int {
	if len(values) == 0 {
		return 0
	}

	return searchLoot(values, 0, 0)
}

// searchLoot returns the best total reachable from index with sum already collected.
func searchLoot(values []int, index, sum int) int {
	if index >= len(values) {
		return sum
	}
	rob := searchLoot(values, index+2, sum+values[index])
	skip := searchLoot(values, index+1, sum)

	return max(rob, skip)
}

package houserobber

// unset marks a memo slot not yet computed. Loot from any index is at least
// 0 (rob nothing), so it never collides with a real entry.
const unset = -1

// MaxLootMemo returns the maximum non-adjacent sum by top-down recursion,
// caching the best loot obtainable from each index onward. The cache is
// owned by this call and has one slot per position 0..n.
//
// Complexity: O(n) time, O(n) memory and recursion depth.
func MaxLootMemo(values []int) int {
	if len(values) == 0 {
		return 0
	}
	memo := make([]int, len(values)+1)
	for i := range memo {
		memo[i] = unset
	}

	return lootFrom(values, 0, memo)
}

// lootFrom returns the best loot from values[index:]. Only the loot beyond
// index is cached; the running total differs between call paths.
func lootFrom(values []int, index int, memo []int) int {
	if index >= len(values) {
		return 0
	}
	if memo[index] != unset {
		return memo[index]
	}
	rob := values[index] + lootFrom(values, index+2, memo)
	skip := lootFrom(values, index+1, memo)
	memo[index] = max(rob, skip)

	return memo[index]
}

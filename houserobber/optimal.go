package houserobber

// MaxLootOptimal returns the maximum non-adjacent sum using two rolling
// scalars in place of the tabulated pairs:
//
//	skip — best loot so far with the current house left alone
//	rob  — best loot so far with the current house robbed
//
// Both are seeded from house 0 and updated left to right from house 1.
//
// Complexity: O(n) time, O(1) memory.
func MaxLootOptimal(values []int) int {
	if len(values) == 0 {
		return 0
	}
	skip, rob := 0, values[0]
	for _, v := range values[1:] {
		prev := skip
		skip = max(skip, rob)
		rob = prev + v
	}

	return max(skip, rob)
}

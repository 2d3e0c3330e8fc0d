package houserobber

// MaxLootTabulated returns the maximum non-adjacent sum from a bottom-up
// table holding, for every prefix length 0..n, the best loot when the last
// house of the prefix is skipped and when it is robbed.
//
// Row 0 is the empty prefix (0, 0); robbing the first house appears in row 1
// as skip[0] + values[0].
//
// Complexity: O(n) time and memory.
func MaxLootTabulated(values []int) int {
	if len(values) == 0 {
		return 0
	}
	last := buildTable(values)[len(values)]

	return max(last.skip, last.rob)
}

// buildTable fills dp[i] for the prefix values[:i].
func buildTable(values []int) []pair {
	dp := make([]pair, len(values)+1)
	for i := 1; i <= len(values); i++ {
		dp[i].skip = max(dp[i-1].skip, dp[i-1].rob)
		// robbing house i-1 requires house i-2 to be skipped
		dp[i].rob = dp[i-1].skip + values[i-1]
	}

	return dp
}

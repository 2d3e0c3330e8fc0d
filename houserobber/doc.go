// Package houserobber computes the maximum sum of a subsequence in which no
// two chosen elements are adjacent (the "house robber" problem).
//
// What:
//
//   - MaxLootRecursive: exhaustive rob/skip search carrying the running sum.
//   - MaxLootMemo:      top-down search caching the best loot from each index.
//   - MaxLootTabulated: bottom-up table of (skip, rob) pairs per prefix.
//   - MaxLootOptimal:   the table collapsed to two rolling scalars.
//   - Plan:             the table plus a backtrack returning the robbed houses.
//   - Solve:            validating dispatcher over the four strategies.
//
// Recurrence (prefix of length i, house i-1 is the last one considered):
//
//	skip[0], rob[0] = 0, 0
//	skip[i] = max(skip[i-1], rob[i-1])
//	rob[i]  = skip[i-1] + values[i-1]
//	answer  = max(skip[n], rob[n])
//
// Complexity:
//
//   - MaxLootRecursive: O(φⁿ) time, O(n) stack.
//   - MaxLootMemo:      O(n) time, O(n) memory and stack.
//   - MaxLootTabulated: O(n) time, O(n) memory.
//   - MaxLootOptimal:   O(n) time, O(1) memory.
//
// Nil and empty inputs yield 0. The MaxLoot* functions never fail; Solve and
// Plan additionally reject negative house values with ErrNegativeValue.
//
// All functions are pure and safe for concurrent use.
package houserobber

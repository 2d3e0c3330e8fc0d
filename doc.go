// Package lvdp is a small catalogue of classic dynamic-programming
// problems, each solved by several strategies of increasing efficiency so
// the results can be cross-checked against one another.
//
// What is inside?
//
//	coinchange/  — minimum number of coins making an amount
//	               (exhaustive search, full table, single rolling row,
//	               plus the concrete coins of an optimal answer)
//	houserobber/ — maximum sum of non-adjacent elements
//	               (exhaustive search, memoization, pair table,
//	               two rolling scalars, plus the chosen indices)
//
// Every function is pure: inputs are never modified, scratch tables live
// for a single call, and all entry points are safe for concurrent use.
//
// Quick example:
//
//	coinchange.MinCoinsTabulated([]int{1, 2, 5}, 11) // 3 (5+5+1)
//	houserobber.MaxLootOptimal([]int{2, 7, 9, 3, 1}) // 12 (2+9+1)
//
//	go get github.com/katalvlaran/lvdp
package lvdp

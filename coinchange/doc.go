// Package coinchange computes the minimum number of coins needed to make a
// target amount from an unlimited supply of each denomination.
//
// What:
//
//   - MinCoinsRecursive: exhaustive skip/reuse search (reference oracle).
//   - MinCoinsTabulated: bottom-up (m+1)×(amount+1) table.
//   - MinCoinsRolling:   the same recurrence on a single row of amount+1 cells.
//   - Change:            the full table plus a backtrack returning the chosen coins.
//   - Solve:             validating dispatcher over the strategies above.
//
// Recurrence (tabulated, i = denominations considered, j = amount):
//
//	dp[0][0] = 0, dp[0][j] = amount+1 for j > 0   (amount+1 means "unreached")
//	dp[i][j] = dp[i-1][j]                            if d[i-1] > j
//	dp[i][j] = min(dp[i-1][j], 1+dp[i][j-d[i-1]])    otherwise
//
// Reading dp[i][j-d] from the same row is what allows a denomination to be
// reused any number of times.
//
// Complexity:
//
//   - MinCoinsRecursive: exponential in amount/min(d); recursion depth O(amount).
//   - MinCoinsTabulated: O(m·amount) time, O(m·amount) memory.
//   - MinCoinsRolling:   O(m·amount) time, O(amount) memory.
//
// Results:
//
//   - Infeasible (-1) is returned by the MinCoins* functions when the amount
//     cannot be made, when no denominations are given, when the amount is
//     negative, or when any denomination is not positive.
//   - Amount 0 always needs 0 coins, given at least one valid denomination.
//
// Errors (Solve, Change, Validate):
//
//   - ErrNoDenominations: nil or empty denomination set.
//   - ErrBadDenomination: a denomination ≤ 0.
//   - ErrNegativeAmount:  amount < 0.
//   - ErrInfeasible:      no combination reaches the amount.
//   - ErrUnknownMethod:   Options.Method is not recognised.
//
// All functions are pure and safe for concurrent use.
package coinchange

package coinchange_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvdp/coinchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChange_ElevenCents checks the unique optimal breakdown of 11 from {1,2,5}.
func TestChange_ElevenCents(t *testing.T) {
	res, err := coinchange.Change([]int{1, 2, 5}, 11)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5, 1}, res.Coins)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, map[int]int{5: 2, 1: 1}, res.Breakdown)
}

// TestChange_ZeroAmount verifies amount 0 yields an empty, non-nil result.
func TestChange_ZeroAmount(t *testing.T) {
	res, err := coinchange.Change([]int{3}, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Coins)
	assert.NotNil(t, res.Coins)
	assert.Equal(t, 0, res.Count)
	assert.Empty(t, res.Breakdown)
}

// TestChange_Errors verifies that Change reports each failure with its sentinel.
func TestChange_Errors(t *testing.T) {
	cases := []struct {
		name   string
		coins  []int
		amount int
		err    error
	}{
		{"Empty", nil, 4, coinchange.ErrNoDenominations},
		{"ZeroCoin", []int{1, 0}, 4, coinchange.ErrBadDenomination},
		{"NegativeAmount", []int{1}, -1, coinchange.ErrNegativeAmount},
		{"Unreachable", []int{3}, 7, coinchange.ErrInfeasible},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coinchange.Change(tc.coins, tc.amount)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestChange_ConsistentWithTable checks that every breakdown sums to the
// amount, uses only given denominations and has the minimum size.
func TestChange_ConsistentWithTable(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for iter := 0; iter < 300; iter++ {
		coins := randomDenominations(r)
		amount := r.Intn(60)
		want := coinchange.MinCoinsTabulated(coins, amount)

		res, err := coinchange.Change(coins, amount)
		if want == coinchange.Infeasible {
			require.ErrorIs(t, err, coinchange.ErrInfeasible, "coins=%v amount=%d", coins, amount)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, want, res.Count, "coins=%v amount=%d", coins, amount)
		require.Len(t, res.Coins, res.Count)

		sum := 0
		for _, c := range res.Coins {
			require.Contains(t, coins, c)
			sum += c
		}
		require.Equal(t, amount, sum, "coins=%v breakdown=%v", coins, res.Coins)
		for k := 1; k < len(res.Coins); k++ {
			require.GreaterOrEqual(t, res.Coins[k-1], res.Coins[k], "coins must be ordered largest first")
		}
	}
}

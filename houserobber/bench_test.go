package houserobber_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvdp/houserobber"
)

// benchValues returns n deterministic house values in [0, 100).
func benchValues(n int) []int {
	r := rand.New(rand.NewSource(1))
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(100)
	}

	return values
}

// benchmarkMaxLoot runs fn on n houses.
func benchmarkMaxLoot(b *testing.B, fn func([]int) int, n int) {
	values := benchValues(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fn(values)
	}
}

// BenchmarkMaxLootRecursive_20 benchmarks the exhaustive search on 20 houses.
func BenchmarkMaxLootRecursive_20(b *testing.B) {
	benchmarkMaxLoot(b, houserobber.MaxLootRecursive, 20)
}

// BenchmarkMaxLootMemo_1000 benchmarks memoized recursion.
func BenchmarkMaxLootMemo_1000(b *testing.B) {
	benchmarkMaxLoot(b, houserobber.MaxLootMemo, 1000)
}

// BenchmarkMaxLootTabulated_1000 benchmarks the pair table.
func BenchmarkMaxLootTabulated_1000(b *testing.B) {
	benchmarkMaxLoot(b, houserobber.MaxLootTabulated, 1000)
}

// BenchmarkMaxLootOptimal_1000 benchmarks the constant-space loop.
func BenchmarkMaxLootOptimal_1000(b *testing.B) {
	benchmarkMaxLoot(b, houserobber.MaxLootOptimal, 1000)
}

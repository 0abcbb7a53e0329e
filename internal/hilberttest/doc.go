// Package hilberttest provides helpers for testing curves.
//
// This package is intended for use in tests only.
//
// # Random Points
//
//	rng := hilberttest.NewRNG(seed)
//	x := make([]uint64, 3)
//	rng.FillCoords(x, []int{4, 4, 10})
//
// # Exhaustive Walks
//
//	hilberttest.ForEachPoint([]int{2, 3}, func(x []uint64) { ... })
//
// # Index Coverage
//
//	cov := hilberttest.NewCoverage()
//	cov.Add(h)             // false when h was already seen
//	cov.Contiguous(count)  // true when exactly [0, count) was seen
package hilberttest

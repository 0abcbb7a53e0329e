package hilberttest

import (
	"math/rand"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bits returns a pseudo-random value in [0, 2^n), n in [0, 64].
func (r *RNG) Bits(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n >= 64:
		return r.Uint64()
	default:
		return r.Uint64() >> uint(64-n)
	}
}

// FillCoords fills dst with random coordinates, dst[i] in [0, 2^axisBits[i]).
func (r *RNG) FillCoords(dst []uint64, axisBits []int) {
	for i := range dst {
		dst[i] = r.Bits(axisBits[i])
	}
}

// ForEachPoint calls fn with every coordinate vector of the box whose axes
// have the given widths, last axis fastest. fn must not retain x.
func ForEachPoint(axisBits []int, fn func(x []uint64)) {
	x := make([]uint64, len(axisBits))
	for {
		fn(x)
		i := len(x) - 1
		for ; i >= 0; i-- {
			x[i]++
			if x[i] < uint64(1)<<uint(axisBits[i]) {
				break
			}
			x[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// Coverage records which indices a walk produced.
type Coverage struct {
	seen *roaring64.Bitmap
}

// NewCoverage creates an empty Coverage.
func NewCoverage() *Coverage {
	return &Coverage{seen: roaring64.New()}
}

// Add records h and reports whether it was new.
func (c *Coverage) Add(h uint64) bool {
	return c.seen.CheckedAdd(h)
}

// Count is the number of distinct indices recorded.
func (c *Coverage) Count() uint64 {
	return c.seen.GetCardinality()
}

// Contiguous reports whether exactly the indices [0, count) were recorded.
func (c *Coverage) Contiguous(count uint64) bool {
	if count == 0 {
		return c.seen.IsEmpty()
	}
	return c.Count() == count && c.seen.Minimum() == 0 && c.seen.Maximum() == count-1
}

package hilbert

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/samber/lo"
)

// SortByIndex returns the permutation that orders coords by their zero-based
// index on c. Points with equal indices keep their input order.
func SortByIndex(c Curve, coords [][]uint64) ([]int, error) {
	keys := make([]Index, len(coords))
	for i, x := range coords {
		h, err := c.EncodeZero(x)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		keys[i] = h
	}
	perm := lo.Range(len(coords))
	sort.SliceStable(perm, func(a, b int) bool {
		return keys[perm[a]].Cmp(keys[perm[b]]) < 0
	})
	return perm, nil
}

// Order returns the permutation that orders real-valued points along a
// GlobalGray curve. The bounding box of the points is cut into subdivisions
// cells per side and every point is snapped to its cell first.
func Order(points [][]float64, subdivisions int, opts ...Option) ([]int, error) {
	const op = "order"
	if subdivisions < 1 {
		return nil, configErrorf("subdivisions", "%d is below 1", subdivisions)
	}
	if len(points) == 0 {
		return []int{}, nil
	}
	dims := len(points[0])
	if dims == 0 {
		return nil, configErrorf("dimensions", "points have no coordinates")
	}

	lower := make([]float64, dims)
	upper := make([]float64, dims)
	for j := range lower {
		lower[j], upper[j] = math.Inf(1), math.Inf(-1)
	}
	for i, p := range points {
		if len(p) != dims {
			return nil, &DomainError{
				Op:     op,
				Axis:   -1,
				Value:  fmt.Sprintf("point %d with %d coordinates", i, len(p)),
				Reason: fmt.Sprintf("does not match %d dimensions", dims),
			}
		}
		for j, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &DomainError{Op: op, Axis: j, Value: strconv.FormatFloat(v, 'g', -1, 64), Reason: "is not finite"}
			}
			lower[j] = min(lower[j], v)
			upper[j] = max(upper[j], v)
		}
	}

	bits := max(bitLen64(uint64(subdivisions-1)), 1)
	c, err := NewGlobalGray(bits, dims, opts...)
	if err != nil {
		return nil, err
	}
	cells := uint64(subdivisions)
	coords := lo.Map(points, func(p []float64, _ int) []uint64 {
		x := make([]uint64, dims)
		for j, v := range p {
			if span := upper[j] - lower[j]; span > 0 {
				x[j] = min(uint64((v-lower[j])/span*float64(cells)), cells-1)
			}
		}
		return x
	})
	return SortByIndex(c, coords)
}

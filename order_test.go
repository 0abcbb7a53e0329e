package hilbert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByIndex(t *testing.T) {
	g, err := NewGlobalGray(2, 2)
	require.NoError(t, err)

	// Reverse curve order, then the first point twice.
	points := make([][]uint64, 0, 17)
	for i := len(square4) - 1; i >= 0; i-- {
		points = append(points, square4[i])
	}
	points = append(points, square4[0])

	perm, err := SortByIndex(g, points)
	require.NoError(t, err)
	require.Len(t, perm, 17)
	assert.Equal(t, []int{15, 16, 14, 13}, perm[:4])
	assert.Equal(t, 0, perm[16])

	_, err = SortByIndex(g, [][]uint64{{0, 0}, {4, 0}})
	assert.ErrorIs(t, err, ErrDomain)
	assert.Contains(t, err.Error(), "point 1")

	perm, err = SortByIndex(g, nil)
	require.NoError(t, err)
	assert.Empty(t, perm)
}

func TestOrder(t *testing.T) {
	t.Run("follows the curve", func(t *testing.T) {
		// The 4x4 walk scaled into [0, 1.5] and shuffled.
		shuffle := []int{9, 2, 14, 0, 7, 11, 4, 13, 1, 6, 15, 3, 10, 8, 12, 5}
		points := make([][]float64, len(shuffle))
		for i, k := range shuffle {
			points[i] = []float64{float64(square4[k][0]) * 0.5, float64(square4[k][1]) * 0.5}
		}
		perm, err := Order(points, 4)
		require.NoError(t, err)
		for rank, i := range perm {
			assert.Equal(t, rank, shuffle[i])
		}
	})

	t.Run("coarse grid keeps input order within a cell", func(t *testing.T) {
		points := [][]float64{{0.9, 0.9}, {0.1, 0.1}, {0.2, 0.2}, {0, 0}}
		perm, err := Order(points, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3}, perm)
	})

	t.Run("degenerate axis", func(t *testing.T) {
		points := [][]float64{{5, 1}, {5, 0}}
		perm, err := Order(points, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0}, perm)
	})

	t.Run("empty", func(t *testing.T) {
		perm, err := Order(nil, 8)
		require.NoError(t, err)
		assert.Empty(t, perm)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := Order([][]float64{{1, 2}}, 0)
		assert.ErrorIs(t, err, ErrConfiguration)

		_, err = Order([][]float64{{}}, 4)
		assert.ErrorIs(t, err, ErrConfiguration)

		_, err = Order([][]float64{{1, 2}, {3}}, 4)
		assert.ErrorIs(t, err, ErrDomain)

		_, err = Order([][]float64{{1, math.NaN()}}, 4)
		assert.ErrorIs(t, err, ErrDomain)

		_, err = Order([][]float64{{math.Inf(-1), 0}}, 4)
		assert.ErrorIs(t, err, ErrDomain)
	})
}

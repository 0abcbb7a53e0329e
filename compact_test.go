package hilbert

import (
	"fmt"
	"testing"

	"github.com/Jsewill/hilbert/internal/hilberttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactFixtures(t *testing.T) {
	t.Run("2x8", func(t *testing.T) {
		c, err := NewCompact([]int{1, 3})
		require.NoError(t, err)
		assert.Equal(t, [][]uint64{
			{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 2}, {1, 2}, {1, 3}, {0, 3},
			{0, 4}, {1, 4}, {1, 5}, {0, 5}, {0, 6}, {1, 6}, {1, 7}, {0, 7},
		}, decodeRange(t, c, 16))
	})

	t.Run("4x2", func(t *testing.T) {
		c, err := NewCompact([]int{2, 1})
		require.NoError(t, err)
		assert.Equal(t, [][]uint64{
			{0, 0}, {0, 1}, {1, 1}, {1, 0}, {2, 0}, {2, 1}, {3, 1}, {3, 0},
		}, decodeRange(t, c, 8))
	})

	t.Run("4x8", func(t *testing.T) {
		c, err := NewCompact([]int{2, 3})
		require.NoError(t, err)
		assert.Equal(t, [][]uint64{
			{0, 0}, {0, 1}, {1, 1}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {2, 1},
			{2, 2}, {3, 2}, {3, 3}, {2, 3}, {1, 3}, {1, 2}, {0, 2}, {0, 3},
			{0, 4}, {0, 5}, {1, 5}, {1, 4}, {2, 4}, {3, 4}, {3, 5}, {2, 5},
			{2, 6}, {3, 6}, {3, 7}, {2, 7}, {1, 7}, {1, 6}, {0, 6}, {0, 7},
		}, decodeRange(t, c, 32))
	})

	t.Run("wide axis", func(t *testing.T) {
		c, err := NewCompact([]int{3, 64, 1})
		require.NoError(t, err)
		h, err := c.EncodeZero([]uint64{5, 1<<63 + 9, 1})
		require.NoError(t, err)
		assert.Equal(t, mustIndex(t, "147573952589676413093"), h)
	})
}

func TestCompactAxisLists(t *testing.T) {
	c, err := NewCompact([]int{3, 1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 0}, {2, 0}, {0}}, c.axes)
	assert.Equal(t, []int{2, 0, 1, -1}, c.pos[0])
	assert.Equal(t, []int{0, -1, -1, -1}, c.pos[2])
}

func TestCompactPacking(t *testing.T) {
	c, err := NewCompact([]int{4, 4, 4, 10})
	require.NoError(t, err)
	assert.Equal(t, 22, c.IndexBits())
	assert.Equal(t, Uint32, c.Width())
	assert.Equal(t, []int{4, 4, 4, 10}, c.AxisBits())

	h, err := Encode[uint32](c, []uint16{3, 9, 15, 1000})
	require.NoError(t, err)
	assert.Equal(t, uint32(4109711), h)

	h, err = Encode[uint32](c, []uint16{15, 15, 15, 1023})
	require.NoError(t, err)
	assert.Equal(t, uint32(4172008), h)

	x, err := Decode[uint16](c, uint32(4109711))
	require.NoError(t, err)
	assert.Equal(t, []uint16{3, 9, 15, 1000}, x)

	rng := hilberttest.NewRNG(3)
	x64 := make([]uint64, 4)
	for i := 0; i < 2000; i++ {
		rng.FillCoords(x64, []int{4, 4, 4, 10})
		h, err := c.EncodeZero(x64)
		require.NoError(t, err)
		require.Less(t, h.Lo, uint64(1)<<22)
		require.Zero(t, h.Hi)
	}

	t.Run("32-bit index fits", func(t *testing.T) {
		_, err := NewCompact([]int{4, 4, 4, 10}, WithIndexWidth(Uint32))
		require.NoError(t, err)
		_, err = NewCompact([]int{4, 4, 4, 10}, WithIndexWidth(Uint16))
		assert.ErrorIs(t, err, ErrTruncation)
	})
}

// Every step of the walk moves to a neighbouring cell, whatever the widths.
func TestCompactContinuity(t *testing.T) {
	for _, axisBits := range [][]int{
		{1, 3}, {2, 3}, {1, 4}, {2, 2, 1}, {3, 1, 2}, {5, 2, 7},
		{1, 2, 3, 4}, {4, 4, 1, 1, 2}, {0, 1, 5}, {6, 1},
	} {
		t.Run(fmt.Sprint(axisBits), func(t *testing.T) {
			c, err := NewCompact(axisBits)
			require.NoError(t, err)
			prev := make([]uint64, len(axisBits))
			require.NoError(t, c.DecodeZeroInto(prev, idx(0)))
			x := make([]uint64, len(axisBits))
			for h := uint64(1); h < 1<<uint(c.IndexBits()); h++ {
				require.NoError(t, c.DecodeZeroInto(x, idx(h)))
				require.True(t, unitStep(prev, x), "index %d: %v -> %v", h, prev, x)
				copy(prev, x)
			}
		})
	}
}

// With equal widths no axis ever drops out and Compact is SpaceGray.
func TestCompactEqualWidths(t *testing.T) {
	for _, grid := range []struct{ bits, dims int }{{3, 3}, {4, 2}, {2, 5}} {
		c, err := NewCompact(uniformBits(grid.bits, grid.dims))
		require.NoError(t, err)
		s, err := NewSpaceGray(grid.bits, grid.dims)
		require.NoError(t, err)
		hilberttest.ForEachPoint(uniformBits(grid.bits, grid.dims), func(x []uint64) {
			hc, err := c.EncodeZero(x)
			require.NoError(t, err)
			hs, err := s.EncodeZero(x)
			require.NoError(t, err)
			require.Equal(t, hs, hc, "point %v", x)
		})
	}
}

func TestCompactZeroWidthAxis(t *testing.T) {
	c, err := NewCompact([]int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, [][]uint64{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, decodeRange(t, c, 4))

	_, err = c.EncodeZero([]uint64{1, 0})
	assert.ErrorIs(t, err, ErrDomain)
}

func TestCompactConfig(t *testing.T) {
	for name, axisBits := range map[string][]int{
		"empty":    {},
		"negative": {2, -1},
		"too wide": {65},
		"all zero": {0, 0},
		"too many": make([]int, 65),
		"over 128": {64, 64, 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewCompact(axisBits)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}

	t.Run("input is copied", func(t *testing.T) {
		in := []int{2, 2}
		c, err := NewCompact(in)
		require.NoError(t, err)
		in[0] = 9
		assert.Equal(t, []int{2, 2}, c.AxisBits())
	})
}

package hilbert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square4 is the 4x4 walk shared by GlobalGray, SpaceGray and FaceContinuous.
var square4 = [][]uint64{
	{0, 0}, {1, 0}, {1, 1}, {0, 1},
	{0, 2}, {0, 3}, {1, 3}, {1, 2},
	{2, 2}, {2, 3}, {3, 3}, {3, 2},
	{3, 1}, {2, 1}, {2, 0}, {3, 0},
}

var cube3Points = [][]uint64{{1, 2, 3}, {3, 3, 3}, {0, 3, 0}, {2, 1, 0}}

func encodeAll(t *testing.T, c Curve, points [][]uint64) []uint64 {
	t.Helper()
	out := make([]uint64, len(points))
	for i, x := range points {
		h, err := c.EncodeZero(x)
		require.NoError(t, err)
		out[i] = h.Lo
	}
	return out
}

func TestGlobalGrayFixtures(t *testing.T) {
	t.Run("4x4", func(t *testing.T) {
		g, err := NewGlobalGray(2, 2)
		require.NoError(t, err)
		assert.Equal(t, square4, decodeRange(t, g, 16))
	})

	t.Run("unit cube", func(t *testing.T) {
		g, err := NewGlobalGray(1, 3)
		require.NoError(t, err)
		assert.Equal(t, [][]uint64{
			{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0},
			{1, 1, 0}, {1, 1, 1}, {1, 0, 1}, {1, 0, 0},
		}, decodeRange(t, g, 8))
	})

	t.Run("4x4x4", func(t *testing.T) {
		g, err := NewGlobalGray(2, 3)
		require.NoError(t, err)
		assert.Equal(t, []uint64{22, 45, 29, 61}, encodeAll(t, g, cube3Points))
	})
}

func TestGlobalGrayFullWidth(t *testing.T) {
	g, err := NewGlobalGray(64, 2)
	require.NoError(t, err)
	assert.Equal(t, Uint128, g.Width())

	cases := []struct {
		x    []uint64
		want string
	}{
		{[]uint64{^uint64(0), 0}, "340282366920938463463374607431768211455"},
		{[]uint64{0, ^uint64(0)}, "113427455640312821154458202477256070485"},
		{[]uint64{1<<63 + 5, 12345678901234567}, "311925416389313549646115031346294647438"},
	}
	for _, tc := range cases {
		h, err := g.EncodeZero(tc.x)
		require.NoError(t, err)
		assert.Equal(t, mustIndex(t, tc.want), h)
		back, err := g.DecodeZero(h)
		require.NoError(t, err)
		assert.Equal(t, tc.x, back)
	}

	t.Run("three axes of 40 bits", func(t *testing.T) {
		g, err := NewGlobalGray(40, 3)
		require.NoError(t, err)
		x := []uint64{1<<40 - 3, 987654321, 1<<39 + 17}
		h, err := g.EncodeZero(x)
		require.NoError(t, err)
		assert.Equal(t, mustIndex(t, "1163074495076136804138735623672771141"), h)
	})
}

func TestGlobalGrayAxisOrder(t *testing.T) {
	g, err := NewGlobalGray(2, 2)
	require.NoError(t, err)
	a, err := g.EncodeZero([]uint64{1, 2})
	require.NoError(t, err)
	b, err := g.EncodeZero([]uint64{2, 1})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGlobalGrayConfig(t *testing.T) {
	_, err := NewGlobalGray(64, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.True(t, errors.Is(err, ErrTruncation))

	g, err := NewGlobalGray(1, 128)
	require.NoError(t, err)
	assert.Equal(t, 128, g.IndexBits())

	_, err = NewGlobalGray(0, 2)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = NewGlobalGray(65, 1)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = NewGlobalGray(4, 0)
	assert.ErrorIs(t, err, ErrConfiguration)
}

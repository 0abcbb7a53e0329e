package hilbert

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func idx(v uint64) Index { return uint128.From64(v) }

func mustIndex(t *testing.T, s string) Index {
	t.Helper()
	h, err := uint128.FromString(s)
	require.NoError(t, err)
	return h
}

// decodeRange decodes the indices [0, count) in order.
func decodeRange(t *testing.T, c Curve, count uint64) [][]uint64 {
	t.Helper()
	out := make([][]uint64, 0, count)
	for h := uint64(0); h < count; h++ {
		x, err := c.DecodeZero(idx(h))
		require.NoError(t, err, "index %d", h)
		out = append(out, x)
	}
	return out
}

// unitStep reports whether a and b differ by exactly one along one axis.
func unitStep(a, b []uint64) bool {
	steps := 0
	for i := range a {
		switch {
		case a[i] == b[i]:
		case a[i]+1 == b[i], b[i]+1 == a[i]:
			steps++
		default:
			return false
		}
	}
	return steps == 1
}

func mustCurve(t *testing.T, cfg Config, opts ...Option) Curve {
	t.Helper()
	c, err := New(cfg, opts...)
	require.NoError(t, err)
	return c
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newDebugHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
}

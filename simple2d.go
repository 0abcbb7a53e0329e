package hilbert

import (
	"github.com/Jsewill/hilbert/internal/conv"
	"lukechampine.com/uint128"
)

// Simple2D is a two-dimensional Hilbert curve that needs no grid size up
// front (Chen, Wang and Shi). The curve over a 2^k square always ends on an
// outside corner, alternating between (2^k-1, 0) and (0, 2^k-1) as k grows,
// so each larger square starts by retracing the smaller one and an index
// never changes when the grid is enlarged.
//
// The declared Width bounds the index instead of a per-axis bit count.
type Simple2D struct {
	descriptor
}

// NewSimple2D creates the curve. Without WithIndexWidth the index is a
// Uint64, which covers coordinates below 2^32.
func NewSimple2D(opts ...Option) (*Simple2D, error) {
	o := applyOptions(opts)
	if o.width == 0 {
		o.width = Uint64
	}
	if !o.width.valid() {
		err := configErrorf("width", "unsupported index width %d", int(o.width))
		o.logger.LogRejected("configure", err)
		return nil, err
	}
	d, err := newDescriptor(AlgorithmSimple2D, []int{64, 64}, o.width.Bits(), o)
	if err != nil {
		return nil, err
	}
	return &Simple2D{descriptor: d}, nil
}

func (s *Simple2D) EncodeZero(x []uint64) (Index, error) {
	const op = "encode"
	if err := s.checkCoords(op, x); err != nil {
		return Index{}, err
	}
	px, py := x[0], x[1]
	k := max(bitLen64(px), bitLen64(py), 1)
	if k%2 == 0 {
		px, py = py, px
	}
	var h Index
	for level := k - 1; level >= 0; level-- {
		rx := px >> uint(level) & 1
		ry := py >> uint(level) & 1
		h = h.Or(uint128.From64(3*rx ^ ry).Lsh(uint(2 * level)))
		if ry == 0 {
			if rx == 1 {
				m := lowMask(level)
				px, py = m-px&m, m-py&m
			}
			px, py = py, px
		}
	}
	if have := s.width.Bits(); !conv.FitsBits(h, have) {
		return Index{}, s.reject(op, &TruncationError{Op: op, Need: conv.BitLen(h), Have: have})
	}
	return h, nil
}

func (s *Simple2D) DecodeZero(h Index) ([]uint64, error) {
	x := make([]uint64, 2)
	if err := s.DecodeZeroInto(x, h); err != nil {
		return nil, err
	}
	return x, nil
}

func (s *Simple2D) DecodeZeroInto(dst []uint64, h Index) error {
	if err := s.checkIndex("decode", dst, h); err != nil {
		return err
	}
	k := max((conv.BitLen(h)+1)/2, 1)
	var px, py uint64
	for level := 0; level < k; level++ {
		q := h.Rsh(uint(2*level)).Lo & 3
		rx := q >> 1
		ry := (q ^ rx) & 1
		if ry == 0 {
			if rx == 1 {
				m := lowMask(level)
				px, py = m-px, m-py
			}
			px, py = py, px
		}
		px |= rx << uint(level)
		py |= ry << uint(level)
	}
	if k%2 == 0 {
		px, py = py, px
	}
	dst[0], dst[1] = px, py
	return nil
}

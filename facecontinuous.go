package hilbert

import (
	"lukechampine.com/uint128"
)

// FaceContinuous is Butz's Hilbert curve in Lawder's formulation, the oldest
// non-recursive n-dimensional construction. It is slower than GlobalGray and
// SpaceGray and traces a different path through the grid.
//
// Each level is described by its entry/exit bookkeeping: the Gray-code
// principal position P, the intra-cell direction J, the exit transform T,
// and an accumulated rotation xJ.
type FaceContinuous struct {
	descriptor
	bits int
}

// NewFaceContinuous creates a curve over dims axes of bits bits each.
func NewFaceContinuous(bits, dims int, opts ...Option) (*FaceContinuous, error) {
	o := applyOptions(opts)
	if err := validateUniform(bits, dims, 64); err != nil {
		o.logger.LogRejected("configure", err)
		return nil, err
	}
	d, err := newDescriptor(AlgorithmFaceContinuous, uniformBits(bits, dims), bits*dims, o)
	if err != nil {
		return nil, err
	}
	return &FaceContinuous{descriptor: d, bits: bits}, nil
}

func (f *FaceContinuous) EncodeZero(x []uint64) (Index, error) {
	if err := f.checkCoords("encode", x); err != nil {
		return Index{}, err
	}
	n := f.dims
	// The level counter starts from the curve's own bit width, never from
	// the width of the coordinate type.
	level := f.bits - 1
	p := GrayDecode(gatherHigh(x, level, n))
	h := uint128.From64(p).Lsh(uint(level * n))
	xJ := butzJ(p, n) - 1
	tT := butzT(p)
	var w uint64
	for level--; level >= 0; level-- {
		w ^= tT
		p = GrayDecode(rotl(gatherHigh(x, level, n)^w, xJ%n, n))
		h = h.Or(uint128.From64(p).Lsh(uint(level * n)))
		if level > 0 {
			tT = rotr(butzT(p), xJ%n, n)
			xJ += butzJ(p, n) - 1
		}
	}
	return h, nil
}

func (f *FaceContinuous) DecodeZero(h Index) ([]uint64, error) {
	x := make([]uint64, f.dims)
	if err := f.DecodeZeroInto(x, h); err != nil {
		return nil, err
	}
	return x, nil
}

func (f *FaceContinuous) DecodeZeroInto(dst []uint64, h Index) error {
	if err := f.checkIndex("decode", dst, h); err != nil {
		return err
	}
	n := f.dims
	m := lowMask(n)
	level := f.bits - 1
	p := h.Rsh(uint(level*n)).Lo & m
	xJ := butzJ(p, n) - 1
	tT := butzT(p)
	// The top coordinate bits come from the Gray code of the top index bits.
	scatterHigh(dst, GrayEncode(p), level, n)
	var w uint64
	for level--; level >= 0; level-- {
		p = h.Rsh(uint(level*n)).Lo & m
		w ^= tT
		scatterHigh(dst, w^rotr(GrayEncode(p), xJ%n, n), level, n)
		if level > 0 {
			tT = rotr(butzT(p), xJ%n, n)
			xJ += butzJ(p, n) - 1
		}
	}
	return nil
}

// butzJ is the principal position of p: n less the length of the run of
// bits equal to the lowest bit, or n when every bit matches.
func butzJ(p uint64, n int) int {
	i := 1
	for i < n && p>>uint(i)&1 == p&1 {
		i++
	}
	if i == n {
		return n
	}
	return n - i
}

// butzT is the Gray code of the sub-cube preceding p at an even position.
func butzT(p uint64) uint64 {
	switch {
	case p < 3:
		return 0
	case p&1 != 0:
		return GrayEncode(p - 1)
	default:
		return GrayEncode(p - 2)
	}
}

// gatherHigh collects bit level of every coordinate with the first axis on
// the highest of n bits.
func gatherHigh(x []uint64, level, n int) uint64 {
	var a uint64
	for j, v := range x {
		a |= (v >> uint(level) & 1) << uint(n-1-j)
	}
	return a
}

func scatterHigh(dst []uint64, a uint64, level, n int) {
	for j := range dst {
		dst[j] |= (a >> uint(n-1-j) & 1) << uint(level)
	}
}

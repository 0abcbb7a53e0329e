package hilbert

import (
	"lukechampine.com/uint128"
)

// Table spreads the bits of one byte so that bit k lands at bit k*stride.
// Interleaving a coordinate ORs one table entry per byte of the coordinate,
// shifted into place.
type Table [256]Index

func createTable(stride int) *Table {
	t := new(Table)
	for v := range t {
		t[v] = interleaveBits(uint64(v), stride)
	}
	return t
}

func interleaveBits(value uint64, stride int) Index {
	var spread Index
	for i := 0; value>>uint(i) != 0; i++ {
		if value>>uint(i)&1 != 0 {
			spread = spread.Or(uint128.From64(1).Lsh(uint(i * stride)))
		}
	}
	return spread
}

// lacer interleaves n coordinates of b bits into one n*b-bit word. Within
// each level the first coordinate supplies the highest-order bit, so for two
// axes a and b the word reads a_{b-1} b_{b-1} ... a_0 b_0.
type lacer struct {
	dims  int
	bits  int
	table *Table
}

func newLacer(bits, dims int) lacer {
	return lacer{dims: dims, bits: bits, table: createTable(dims)}
}

func (l lacer) interleave(x []uint64) Index {
	var h Index
	for axis, v := range x {
		shift := l.dims - 1 - axis
		for chunk := 0; v != 0; chunk, v = chunk+1, v>>8 {
			h = h.Or(l.table[v&0xff].Lsh(uint(chunk*8*l.dims + shift)))
		}
	}
	return h
}

func (l lacer) deinterleave(dst []uint64, h Index) {
	for level := 0; level < l.bits && !h.IsZero(); level++ {
		for axis := l.dims - 1; axis >= 0; axis-- {
			dst[axis] |= (h.Lo & 1) << uint(level)
			h = h.Rsh(1)
		}
	}
}

// ZOrder is the Morton (Z-order) curve: plain bit interleaving with no
// rotation. It shares the interleaving rule of GlobalGray and is kept as the
// non-Hilbert baseline for locality comparisons.
type ZOrder struct {
	descriptor
	lace lacer
}

// NewZOrder creates a Z-order curve over dims axes of bits bits each.
func NewZOrder(bits, dims int, opts ...Option) (*ZOrder, error) {
	o := applyOptions(opts)
	if err := validateUniform(bits, dims, Uint128.Bits()); err != nil {
		o.logger.LogRejected("configure", err)
		return nil, err
	}
	d, err := newDescriptor(AlgorithmZOrder, uniformBits(bits, dims), bits*dims, o)
	if err != nil {
		return nil, err
	}
	return &ZOrder{descriptor: d, lace: newLacer(bits, dims)}, nil
}

func (z *ZOrder) EncodeZero(x []uint64) (Index, error) {
	if err := z.checkCoords("encode", x); err != nil {
		return Index{}, err
	}
	return z.lace.interleave(x), nil
}

func (z *ZOrder) DecodeZero(h Index) ([]uint64, error) {
	x := make([]uint64, z.dims)
	if err := z.DecodeZeroInto(x, h); err != nil {
		return nil, err
	}
	return x, nil
}

func (z *ZOrder) DecodeZeroInto(dst []uint64, h Index) error {
	if err := z.checkIndex("decode", dst, h); err != nil {
		return err
	}
	z.lace.deinterleave(dst, h)
	return nil
}

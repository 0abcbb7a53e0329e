package hilbert

// GlobalGray is Skilling's n-dimensional Hilbert curve. Instead of walking
// the levels and rotating a Gray code at each one, it Gray-codes all n*b
// interleaved bits at once and then untwists the result with one exchange
// pass per level.
//
// The index interleaves the axes so that the first coordinate supplies the
// highest-order bit of every level. Reversing the axis order yields a
// different, equally bijective curve.
type GlobalGray struct {
	descriptor
	bits int
	lace lacer
}

// NewGlobalGray creates a curve over dims axes of bits bits each.
func NewGlobalGray(bits, dims int, opts ...Option) (*GlobalGray, error) {
	o := applyOptions(opts)
	if err := validateUniform(bits, dims, Uint128.Bits()); err != nil {
		o.logger.LogRejected("configure", err)
		return nil, err
	}
	d, err := newDescriptor(AlgorithmGlobalGray, uniformBits(bits, dims), bits*dims, o)
	if err != nil {
		return nil, err
	}
	return &GlobalGray{descriptor: d, bits: bits, lace: newLacer(bits, dims)}, nil
}

func (g *GlobalGray) EncodeZero(x []uint64) (Index, error) {
	if err := g.checkCoords("encode", x); err != nil {
		return Index{}, err
	}
	t := make([]uint64, len(x))
	copy(t, x)
	axesToTranspose(t, g.bits)
	return g.lace.interleave(t), nil
}

func (g *GlobalGray) DecodeZero(h Index) ([]uint64, error) {
	x := make([]uint64, g.dims)
	if err := g.DecodeZeroInto(x, h); err != nil {
		return nil, err
	}
	return x, nil
}

func (g *GlobalGray) DecodeZeroInto(dst []uint64, h Index) error {
	if err := g.checkIndex("decode", dst, h); err != nil {
		return err
	}
	g.lace.deinterleave(dst, h)
	transposeToAxes(dst, g.bits)
	return nil
}

// axesToTranspose turns coordinates into the transposed Hilbert index: bit
// level s of x[i] becomes index bit s*n + (n-1-i) once interleaved.
func axesToTranspose(x []uint64, bits int) {
	n := len(x)
	// Inverse undo.
	for s := bits - 1; s >= 1; s-- {
		q := uint64(1) << uint(s)
		p := q - 1
		for i := 0; i < n; i++ {
			if x[i]&q != 0 {
				x[0] ^= p
			} else {
				t := (x[0] ^ x[i]) & p
				x[0] ^= t
				x[i] ^= t
			}
		}
	}
	// Gray encode.
	for i := 1; i < n; i++ {
		x[i] ^= x[i-1]
	}
	var t uint64
	for s := bits - 1; s >= 1; s-- {
		q := uint64(1) << uint(s)
		if x[n-1]&q != 0 {
			t ^= q - 1
		}
	}
	for i := range x {
		x[i] ^= t
	}
}

// transposeToAxes is the inverse of axesToTranspose.
func transposeToAxes(x []uint64, bits int) {
	n := len(x)
	// Gray decode by H ^ (H/2).
	t := x[n-1] >> 1
	for i := n - 1; i > 0; i-- {
		x[i] ^= x[i-1]
	}
	x[0] ^= t
	// Undo excess work.
	for s := 1; s < bits; s++ {
		q := uint64(1) << uint(s)
		p := q - 1
		for i := n - 1; i >= 0; i-- {
			if x[i]&q != 0 {
				x[0] ^= p
			} else {
				t := (x[0] ^ x[i]) & p
				x[0] ^= t
				x[i] ^= t
			}
		}
	}
}

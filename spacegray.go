package hilbert

// SpaceGray is the classical space-key Hilbert curve. It walks the levels
// from the most significant down and carries the rotation and reflection of
// the current sub-cube from one level to the next.
type SpaceGray struct {
	descriptor
	bits int
}

// NewSpaceGray creates a curve over dims axes of bits bits each. dims is
// limited to 64 because one level of the key is held in a uint64.
func NewSpaceGray(bits, dims int, opts ...Option) (*SpaceGray, error) {
	o := applyOptions(opts)
	if err := validateUniform(bits, dims, 64); err != nil {
		o.logger.LogRejected("configure", err)
		return nil, err
	}
	d, err := newDescriptor(AlgorithmSpaceGray, uniformBits(bits, dims), bits*dims, o)
	if err != nil {
		return nil, err
	}
	return &SpaceGray{descriptor: d, bits: bits}, nil
}

func (s *SpaceGray) EncodeZero(x []uint64) (Index, error) {
	if err := s.checkCoords("encode", x); err != nil {
		return Index{}, err
	}
	n := s.dims
	var h Index
	var st spaceKey
	for level := s.bits - 1; level >= 0; level-- {
		w := GrayDecode(st.transform(gatherLevel(x, level), n))
		h = h.Lsh(uint(n)).Or64(w)
		st.advance(w, n)
	}
	return h, nil
}

func (s *SpaceGray) DecodeZero(h Index) ([]uint64, error) {
	x := make([]uint64, s.dims)
	if err := s.DecodeZeroInto(x, h); err != nil {
		return nil, err
	}
	return x, nil
}

func (s *SpaceGray) DecodeZeroInto(dst []uint64, h Index) error {
	if err := s.checkIndex("decode", dst, h); err != nil {
		return err
	}
	n := s.dims
	m := lowMask(n)
	var st spaceKey
	for level := s.bits - 1; level >= 0; level-- {
		w := h.Rsh(uint(level*n)).Lo & m
		scatterLevel(dst, st.inverse(GrayEncode(w), n), level)
		st.advance(w, n)
	}
	return nil
}

// spaceKey is the per-level state of the space-key walk: the entry corner e
// and the intra-cell direction d of the current sub-cube.
type spaceKey struct {
	e uint64
	d int
}

// transform maps the level bits of a point into the frame of the current
// sub-cube.
func (k *spaceKey) transform(l uint64, n int) uint64 {
	return rotr(l^k.e, k.d+1, n)
}

func (k *spaceKey) inverse(t uint64, n int) uint64 {
	return rotl(t, k.d+1, n) ^ k.e
}

// advance moves the state into sub-cell w.
func (k *spaceKey) advance(w uint64, n int) {
	k.e ^= rotl(entryCorner(w), k.d+1, n)
	k.d = (k.d + direction(w, n) + 1) % n
}

// entryCorner is the corner through which the curve enters sub-cell w.
func entryCorner(w uint64) uint64 {
	if w == 0 {
		return 0
	}
	return GrayEncode((w - 1) &^ 1)
}

// direction is the axis along which the curve leaves sub-cell w.
func direction(w uint64, n int) int {
	switch {
	case w == 0:
		return 0
	case w&1 != 0:
		return trailingOnes(w) % n
	default:
		return trailingOnes(w-1) % n
	}
}

// gatherLevel collects bit level of every coordinate; axis j lands on bit j.
func gatherLevel(x []uint64, level int) uint64 {
	var l uint64
	for j, v := range x {
		l |= (v >> uint(level) & 1) << uint(j)
	}
	return l
}

func scatterLevel(dst []uint64, l uint64, level int) {
	for j := range dst {
		dst[j] |= (l >> uint(j) & 1) << uint(level)
	}
}

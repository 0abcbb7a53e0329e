package hilbert

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// Compact is the compact Hilbert index over axes of different widths. The
// index uses only the sum of the widths rather than dims times the widest
// axis.
//
// The walk is the SpaceGray one, but each level works only on the axes that
// still have a bit there. Those axes are ordered by (width, axis), so the
// narrow axes drop out from the low end of the level word. When a level
// gains axes the entry corner and direction are carried over to the wider
// word, which keeps every step of the curve between neighbouring cells.
type Compact struct {
	descriptor
	maxBits int
	// axes[level] lists the axes with a bit at level; list position j is
	// bit j of that level's word.
	axes [][]int
	// pos[level][axis] is the position of axis in axes[level], or -1.
	pos [][]int
}

// NewCompact creates a curve with one axis per entry of axisBits. An axis of
// width 0 only admits the coordinate 0.
func NewCompact(axisBits []int, opts ...Option) (*Compact, error) {
	o := applyOptions(opts)
	if err := validateAxisBits(axisBits); err != nil {
		o.logger.LogRejected("configure", err)
		return nil, err
	}
	axisBits = slices.Clone(axisBits)
	d, err := newDescriptor(AlgorithmCompact, axisBits, lo.Sum(axisBits), o)
	if err != nil {
		return nil, err
	}

	order := lo.Range(len(axisBits))
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(axisBits[a], axisBits[b])
	})
	c := &Compact{descriptor: d, maxBits: lo.Max(axisBits)}
	c.axes = make([][]int, c.maxBits)
	c.pos = make([][]int, c.maxBits)
	for level := range c.axes {
		c.axes[level] = lo.Filter(order, func(axis, _ int) bool {
			return axisBits[axis] > level
		})
		c.pos[level] = lo.Times(len(axisBits), func(int) int { return -1 })
		for j, axis := range c.axes[level] {
			c.pos[level][axis] = j
		}
	}
	return c, nil
}

func validateAxisBits(axisBits []int) error {
	if len(axisBits) == 0 {
		return configErrorf("dimensions", "no axes")
	}
	if len(axisBits) > 64 {
		return configErrorf("dimensions", "%d exceeds 64", len(axisBits))
	}
	for j, b := range axisBits {
		if b < 0 || b > 64 {
			return configErrorf("bits", "axis %d width %d is outside [0, 64]", j, b)
		}
	}
	if lo.Sum(axisBits) == 0 {
		return configErrorf("bits", "every axis has width 0")
	}
	return nil
}

func (c *Compact) EncodeZero(x []uint64) (Index, error) {
	if err := c.checkCoords("encode", x); err != nil {
		return Index{}, err
	}
	var h Index
	var st spaceKey
	for level := c.maxBits - 1; level >= 0; level-- {
		axes := c.axes[level]
		k := len(axes)
		w := GrayDecode(st.transform(gatherAxes(x, axes, level), k))
		h = h.Lsh(uint(k)).Or64(w)
		st.advance(w, k)
		c.widen(&st, level)
	}
	return h, nil
}

func (c *Compact) DecodeZero(h Index) ([]uint64, error) {
	x := make([]uint64, c.dims)
	if err := c.DecodeZeroInto(x, h); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *Compact) DecodeZeroInto(dst []uint64, h Index) error {
	if err := c.checkIndex("decode", dst, h); err != nil {
		return err
	}
	pos := c.indexBits
	var st spaceKey
	for level := c.maxBits - 1; level >= 0; level-- {
		axes := c.axes[level]
		k := len(axes)
		pos -= k
		w := h.Rsh(uint(pos)).Lo & lowMask(k)
		scatterAxes(dst, axes, st.inverse(GrayEncode(w), k), level)
		st.advance(w, k)
		c.widen(&st, level)
	}
	return nil
}

// widen re-expresses st in the axis list of the next level down when that
// list is longer. Entry bits and the direction follow their axes.
func (c *Compact) widen(st *spaceKey, level int) {
	if level == 0 || len(c.axes[level-1]) == len(c.axes[level]) {
		return
	}
	from, to := c.axes[level], c.pos[level-1]
	var e uint64
	for j, axis := range from {
		e |= (st.e >> uint(j) & 1) << uint(to[axis])
	}
	st.e = e
	st.d = to[from[st.d]]
}

// gatherAxes collects bit level of the listed axes; axes[j] lands on bit j.
func gatherAxes(x []uint64, axes []int, level int) uint64 {
	var l uint64
	for j, axis := range axes {
		l |= (x[axis] >> uint(level) & 1) << uint(j)
	}
	return l
}

func scatterAxes(dst []uint64, axes []int, l uint64, level int) {
	for j, axis := range axes {
		dst[axis] |= (l >> uint(j) & 1) << uint(level)
	}
}

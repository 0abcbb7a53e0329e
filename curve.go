package hilbert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Jsewill/hilbert/internal/conv"
	"github.com/samber/lo"
	"lukechampine.com/uint128"
)

// Algorithm selects a curve variant.
type Algorithm int

const (
	AlgorithmGlobalGray Algorithm = iota
	AlgorithmSpaceGray
	AlgorithmCompact
	AlgorithmFaceContinuous
	AlgorithmSimple2D
	AlgorithmZOrder
)

var algorithmNames = map[Algorithm]string{
	AlgorithmGlobalGray:     "globalgray",
	AlgorithmSpaceGray:      "spacegray",
	AlgorithmCompact:        "compact",
	AlgorithmFaceContinuous: "facecontinuous",
	AlgorithmSimple2D:       "simple2d",
	AlgorithmZOrder:         "zorder",
}

var algorithmAliases = map[string]Algorithm{
	"gg":     AlgorithmGlobalGray,
	"sg":     AlgorithmSpaceGray,
	"fc":     AlgorithmFaceContinuous,
	"s2d":    AlgorithmSimple2D,
	"morton": AlgorithmZOrder,
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "algorithm(" + strconv.Itoa(int(a)) + ")"
}

// ParseAlgorithm maps a name such as "globalgray", "compact" or "gg" to an
// Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	if a, ok := algorithmAliases[name]; ok {
		return a, nil
	}
	return 0, configErrorf("algorithm", "unknown algorithm %q", s)
}

// Curve is the contract shared by every variant. Implementations are
// immutable and safe for concurrent use.
type Curve interface {
	// Algorithm reports which variant the curve implements.
	Algorithm() Algorithm
	// Dims is the number of coordinates per point.
	Dims() int
	// IndexBits is the number of significant index bits. For Simple2D, whose
	// index grows with its inputs, it is the width of the declared type.
	IndexBits() int
	// Width is the declared numeric type of the index.
	Width() Width
	// EncodeZero maps a zero-based coordinate vector to a zero-based index.
	EncodeZero(x []uint64) (Index, error)
	// DecodeZero maps a zero-based index to a new coordinate vector.
	DecodeZero(h Index) ([]uint64, error)
	// DecodeZeroInto is DecodeZero writing into dst, which must hold Dims
	// values. It exists for callers decoding in a loop.
	DecodeZeroInto(dst []uint64, h Index) error
}

// Config selects a variant and its parameters for New.
type Config struct {
	Algorithm Algorithm
	// Bits per axis for every variant but Compact and Simple2D.
	Bits int
	// Dims is the number of axes for every variant but Compact and Simple2D.
	Dims int
	// AxisBits are Compact's per-axis widths. When empty, Compact uses Bits
	// for each of Dims axes.
	AxisBits []int
}

// New builds the curve named by cfg.Algorithm.
func New(cfg Config, opts ...Option) (Curve, error) {
	switch cfg.Algorithm {
	case AlgorithmGlobalGray:
		return asCurve(NewGlobalGray(cfg.Bits, cfg.Dims, opts...))
	case AlgorithmSpaceGray:
		return asCurve(NewSpaceGray(cfg.Bits, cfg.Dims, opts...))
	case AlgorithmCompact:
		axisBits := cfg.AxisBits
		if len(axisBits) == 0 {
			axisBits = lo.Times(cfg.Dims, func(int) int { return cfg.Bits })
		}
		return asCurve(NewCompact(axisBits, opts...))
	case AlgorithmFaceContinuous:
		return asCurve(NewFaceContinuous(cfg.Bits, cfg.Dims, opts...))
	case AlgorithmSimple2D:
		return asCurve(NewSimple2D(opts...))
	case AlgorithmZOrder:
		return asCurve(NewZOrder(cfg.Bits, cfg.Dims, opts...))
	}
	return nil, configErrorf("algorithm", "unknown algorithm %d", int(cfg.Algorithm))
}

func asCurve[C Curve](c C, err error) (Curve, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

// EncodeZero maps a zero-based coordinate vector to a zero-based index.
func EncodeZero(c Curve, x []uint64) (Index, error) {
	return c.EncodeZero(x)
}

// DecodeZero maps a zero-based index to a zero-based coordinate vector.
func DecodeZero(c Curve, h Index) ([]uint64, error) {
	return c.DecodeZero(h)
}

// EncodeOne is EncodeZero with axes and index counted from one.
func EncodeOne(c Curve, x []uint64) (Index, error) {
	const op = "encode one-based"
	zero := make([]uint64, len(x))
	for i, v := range x {
		if v == 0 {
			return Index{}, &DomainError{Op: op, Axis: i, Value: "0", Reason: "is below the one-based origin"}
		}
		zero[i] = v - 1
	}
	h, err := c.EncodeZero(zero)
	if err != nil {
		return Index{}, err
	}
	have := c.Width().Bits()
	if h.Equals(uint128.Max) || !conv.FitsBits(h.Add64(1), have) {
		return Index{}, &TruncationError{Op: op, Need: have + 1, Have: have}
	}
	return h.Add64(1), nil
}

// DecodeOne is DecodeZero with axes and index counted from one.
func DecodeOne(c Curve, h Index) ([]uint64, error) {
	const op = "decode one-based"
	if h.IsZero() {
		return nil, &DomainError{Op: op, Axis: -1, Value: "index 0", Reason: "is below the one-based origin"}
	}
	x, err := c.DecodeZero(h.Sub64(1))
	if err != nil {
		return nil, err
	}
	for i := range x {
		if x[i] == math.MaxUint64 {
			return nil, &TruncationError{Op: op, Need: 65, Have: 64}
		}
		x[i]++
	}
	return x, nil
}

// descriptor holds the immutable bookkeeping every variant shares.
type descriptor struct {
	alg       Algorithm
	dims      int
	axisBits  []int
	indexBits int
	width     Width
	log       *Logger
}

func (d *descriptor) Algorithm() Algorithm { return d.alg }

func (d *descriptor) Dims() int { return d.dims }

func (d *descriptor) IndexBits() int { return d.indexBits }

func (d *descriptor) Width() Width { return d.width }

// AxisBits returns a copy of the per-axis bit widths.
func (d *descriptor) AxisBits() []int {
	return append([]int(nil), d.axisBits...)
}

// newDescriptor resolves the index width for a curve that needs indexBits
// bits and validates it against the options.
func newDescriptor(alg Algorithm, axisBits []int, indexBits int, o options) (descriptor, error) {
	d := descriptor{
		alg:       alg,
		dims:      len(axisBits),
		axisBits:  axisBits,
		indexBits: indexBits,
		log:       o.logger.WithAlgorithm(alg),
	}
	if indexBits > Uint128.Bits() {
		return d, d.reject("configure", &ConfigError{
			Param:  "bits",
			Reason: fmt.Sprintf("%d index bits exceed %d", indexBits, Uint128.Bits()),
			cause:  &TruncationError{Op: "configure", Need: indexBits, Have: Uint128.Bits()},
		})
	}
	switch {
	case o.width == 0:
		w, err := SmallestWidth(indexBits)
		if err != nil {
			return d, d.reject("configure", err)
		}
		d.width = w
	case !o.width.valid():
		return d, d.reject("configure", configErrorf("width", "unsupported index width %d", int(o.width)))
	case o.width.Bits() < indexBits:
		return d, d.reject("configure", &ConfigError{
			Param:  "width",
			Reason: fmt.Sprintf("%s cannot hold %d index bits", o.width, indexBits),
			cause:  &TruncationError{Op: "configure", Need: indexBits, Have: o.width.Bits()},
		})
	default:
		d.width = o.width
	}
	d.log.LogConfigured(d.dims, d.indexBits, d.width)
	return d, nil
}

func (d *descriptor) reject(op string, err error) error {
	d.log.LogRejected(op, err)
	return err
}

// checkCoords validates a coordinate vector against the per-axis widths.
func (d *descriptor) checkCoords(op string, x []uint64) error {
	if len(x) != d.dims {
		return d.reject(op, &DomainError{
			Op:     op,
			Axis:   -1,
			Value:  fmt.Sprintf("%d coordinates", len(x)),
			Reason: fmt.Sprintf("do not match %d dimensions", d.dims),
		})
	}
	for i, v := range x {
		if b := d.axisBits[i]; b < 64 && v>>uint(b) != 0 {
			return d.reject(op, &DomainError{
				Op:     op,
				Axis:   i,
				Value:  strconv.FormatUint(v, 10),
				Reason: fmt.Sprintf("is outside [0, 2^%d)", b),
			})
		}
	}
	return nil
}

// checkIndex validates an index and destination buffer before decoding.
func (d *descriptor) checkIndex(op string, dst []uint64, h Index) error {
	if len(dst) != d.dims {
		return d.reject(op, &DomainError{
			Op:     op,
			Axis:   -1,
			Value:  fmt.Sprintf("buffer of %d coordinates", len(dst)),
			Reason: fmt.Sprintf("does not match %d dimensions", d.dims),
		})
	}
	if !conv.FitsBits(h, d.indexBits) {
		return d.reject(op, &DomainError{
			Op:     op,
			Axis:   -1,
			Value:  "index " + h.String(),
			Reason: fmt.Sprintf("is outside [0, 2^%d)", d.indexBits),
		})
	}
	clear(dst)
	return nil
}

func uniformBits(bits, dims int) []int {
	return lo.Times(dims, func(int) int { return bits })
}

// validateUniform checks the (bits, dims) pair shared by the equal-width
// variants. maxDims bounds the per-level word the variant works with.
func validateUniform(bits, dims, maxDims int) error {
	if dims < 1 {
		return configErrorf("dimensions", "%d is below 1", dims)
	}
	if dims > maxDims {
		return configErrorf("dimensions", "%d exceeds %d", dims, maxDims)
	}
	if bits < 1 {
		return configErrorf("bits", "%d is below 1", bits)
	}
	if bits > 64 {
		return configErrorf("bits", "%d exceeds 64 bits per axis", bits)
	}
	return nil
}

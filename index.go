package hilbert

import (
	"fmt"
	"strings"

	"github.com/Jsewill/hilbert/internal/conv"
	"lukechampine.com/uint128"
)

// Index is a Hilbert index. Every curve computes in 128 bits and checks the
// result against its declared Width.
type Index = uint128.Uint128

// Unsigned is the set of unsigned Go integer types.
type Unsigned = conv.Unsigned

// Integer is the set of Go integer types, signed or unsigned, accepted as
// coordinates or index values by Encode, Decode, Narrow and Widen.
type Integer = conv.Integer

// Width is the declared numeric type of a curve's index.
type Width uint8

const (
	Uint8   Width = 8
	Uint16  Width = 16
	Uint32  Width = 32
	Uint64  Width = 64
	Uint128 Width = 128
)

var widths = []Width{Uint8, Uint16, Uint32, Uint64, Uint128}

// Bits returns the number of bits in w.
func (w Width) Bits() int { return int(w) }

func (w Width) String() string {
	return fmt.Sprintf("uint%d", int(w))
}

func (w Width) valid() bool {
	for _, v := range widths {
		if v == w {
			return true
		}
	}
	return false
}

// SmallestWidth returns the narrowest Width that holds bits bits.
func SmallestWidth(bits int) (Width, error) {
	for _, w := range widths {
		if bits <= w.Bits() {
			return w, nil
		}
	}
	return 0, &ConfigError{
		Param:  "width",
		Reason: fmt.Sprintf("%d index bits exceed the widest supported index", bits),
		cause:  &TruncationError{Op: "configure", Need: bits, Have: Uint128.Bits()},
	}
}

// ParseWidth parses "uint8" ... "uint128" (the "uint" prefix is optional).
func ParseWidth(s string) (Width, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "uint")
	for _, w := range widths {
		if name == fmt.Sprint(w.Bits()) {
			return w, nil
		}
	}
	return 0, configErrorf("width", "unknown index width %q", s)
}

// Narrow converts h to T, failing with a TruncationError when h needs more
// bits than T has. A signed T holds one bit less than its width.
func Narrow[T Integer](h Index) (T, error) {
	v, err := conv.ToInteger[T](h)
	if err != nil {
		return 0, &TruncationError{Op: "narrow", Need: conv.BitLen(h), Have: conv.BitsOf[T](), cause: err}
	}
	return v, nil
}

// Widen converts v to an Index. Negative values are a DomainError.
func Widen[T Integer](v T) (Index, error) {
	h, err := conv.FromInteger(v)
	if err != nil {
		return Index{}, &DomainError{Op: "widen", Axis: -1, Value: fmt.Sprintf("index %d", v), Reason: "is negative"}
	}
	return h, nil
}

// Encode is EncodeZero over caller-chosen coordinate and index types, signed
// or unsigned.
func Encode[T, A Integer](c Curve, x []A) (T, error) {
	coords := make([]uint64, len(x))
	for i, v := range x {
		if v < 0 {
			return 0, &DomainError{Op: "encode", Axis: i, Value: fmt.Sprint(v), Reason: "is negative"}
		}
		coords[i] = uint64(v)
	}
	h, err := c.EncodeZero(coords)
	if err != nil {
		return 0, err
	}
	return Narrow[T](h)
}

// Decode is DecodeZero over caller-chosen coordinate and index types. It
// fails with a TruncationError when a decoded coordinate does not fit A.
func Decode[A, T Integer](c Curve, h T) ([]A, error) {
	wide, err := Widen(h)
	if err != nil {
		return nil, err
	}
	coords, err := c.DecodeZero(wide)
	if err != nil {
		return nil, err
	}
	out := make([]A, len(coords))
	for i, v := range coords {
		a, err := conv.Uint64ToInteger[A](v)
		if err != nil {
			return nil, &TruncationError{Op: "decode", Need: bitLen64(v), Have: conv.BitsOf[A](), cause: err}
		}
		out[i] = a
	}
	return out, nil
}

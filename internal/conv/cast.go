package conv

import (
	"errors"
	"fmt"

	"lukechampine.com/uint128"
)

// ErrOverflow is wrapped by every conversion failure in this package.
var ErrOverflow = errors.New("integer overflow")

// Unsigned is the set of fixed-width unsigned types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Signed is the set of fixed-width signed types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Integer is the set of integer types accepted at the boundary.
type Integer interface {
	Signed | Unsigned
}

// BitsOf returns the number of bits T holds for non-negative values: the
// full width for unsigned types and one less for signed ones.
func BitsOf[T Integer]() int {
	n := 0
	for v := T(1); v > 0; v <<= 1 {
		n++
	}
	return n
}

// BitLen returns the minimum number of bits needed to represent v.
func BitLen(v uint128.Uint128) int {
	return 128 - v.LeadingZeros()
}

// FitsBits reports whether v can be represented in n bits.
func FitsBits(v uint128.Uint128, n int) bool {
	if n >= 128 {
		return true
	}
	return BitLen(v) <= n
}

// ToInteger converts v to T safely.
func ToInteger[T Integer](v uint128.Uint128) (T, error) {
	n := BitsOf[T]()
	if !FitsBits(v, n) {
		return 0, fmt.Errorf("%w: %s cannot be converted to an integer holding %d bits (needs %d bits)", ErrOverflow, v, n, BitLen(v))
	}
	return T(v.Lo), nil
}

// FromInteger widens a non-negative v to 128 bits.
func FromInteger[T Integer](v T) (uint128.Uint128, error) {
	if v < 0 {
		return uint128.Zero, fmt.Errorf("%w: %d cannot be converted to an unsigned integer (negative)", ErrOverflow, v)
	}
	return uint128.From64(uint64(v)), nil
}

// Uint64ToInteger converts a uint64 to T safely.
func Uint64ToInteger[T Integer](v uint64) (T, error) {
	n := BitsOf[T]()
	if n < 64 && v>>uint(n) != 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to an integer holding %d bits (too large)", ErrOverflow, v, n)
	}
	return T(v), nil
}

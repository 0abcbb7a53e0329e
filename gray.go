package hilbert

import (
	"math/bits"
)

// GrayEncode returns the binary-reflected Gray code of i.
func GrayEncode[T Unsigned](i T) T {
	return i ^ (i >> 1)
}

// GrayDecode is the inverse of GrayEncode.
func GrayDecode[T Unsigned](g T) T {
	i := g
	for s := g >> 1; s != 0; s >>= 1 {
		i ^= s
	}
	return i
}

// lowMask returns a word with the low n bits set, n in [0, 64].
func lowMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(n) - 1
}

// rotr rotates the low n bits of x right by r.
func rotr(x uint64, r, n int) uint64 {
	m := lowMask(n)
	x &= m
	r %= n
	if r == 0 {
		return x
	}
	return (x>>uint(r) | x<<uint(n-r)) & m
}

// rotl rotates the low n bits of x left by r.
func rotl(x uint64, r, n int) uint64 {
	m := lowMask(n)
	x &= m
	r %= n
	if r == 0 {
		return x
	}
	return (x<<uint(r) | x>>uint(n-r)) & m
}

func trailingOnes(x uint64) int {
	return bits.TrailingZeros64(^x)
}

func bitLen64(x uint64) int {
	return bits.Len64(x)
}

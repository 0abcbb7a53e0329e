// Package conv provides checked integer conversions between the 128-bit
// working type and the fixed-width Go integer types callers hand in and get
// back.
//
// Every function reports an overflow instead of wrapping. Callers that can
// prove a value fits by construction (loop counters, masked level bits) use a
// plain cast instead.
package conv

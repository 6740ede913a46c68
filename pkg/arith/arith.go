package arith

import (
	"math"
	"math/bits"
)

// Add returns a + b modulo 2^64.
func Add(a, b uint64) uint64 {
	return a + b
}

// Mult returns a * b modulo 2^64.
func Mult(a, b uint64) uint64 {
	return a * b
}

// AddChecked returns the wrapped sum and whether it overflowed.
func AddChecked(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry != 0
}

// MultChecked returns the wrapped product and whether it overflowed.
func MultChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}

// AddSaturating returns a + b, or math.MaxUint64 if the sum overflows.
func AddSaturating(a, b uint64) uint64 {
	sum, overflow := AddChecked(a, b)
	if overflow {
		return math.MaxUint64
	}
	return sum
}

// MultSaturating returns a * b, or math.MaxUint64 if the product overflows.
func MultSaturating(a, b uint64) uint64 {
	product, overflow := MultChecked(a, b)
	if overflow {
		return math.MaxUint64
	}
	return product
}

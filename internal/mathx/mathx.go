// SPDX-License-Identifier: MIT
// Package mathx holds the overflow-aware integer helpers shared by the
// calendar, duration and instant packages.
//
// Floor division is used everywhere a value is split into a larger and a
// smaller unit (epoch seconds into days, proleptic months into years), so that
// negative inputs round towards minus infinity and remainders stay
// non-negative.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// FloorDiv returns ⌊a/b⌋. b must be non-zero.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

// FloorMod returns a - b*⌊a/b⌋, which has the sign of b.
func FloorMod[T constraints.Signed](a, b T) T {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}

	return m
}

// Clamp bounds v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Abs returns |v|. Abs(math.MinInt64) is math.MinInt64, callers that may
// see it must check first.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Add64 returns a+b and reports whether the sum overflowed int64.
func Add64(a, b int64) (int64, bool) {
	s := a + b
	// overflow iff both operands share a sign the sum does not
	return s, (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0)
}

// Sub64 returns a-b and reports whether the difference overflowed int64.
func Sub64(a, b int64) (int64, bool) {
	d := a - b

	return d, (a >= 0 && b < 0 && d < 0) || (a < 0 && b > 0 && d >= 0)
}

// Mul64 returns a*b and reports whether the product overflowed int64.
func Mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	p := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return p, true
	}

	return p, p/b != a
}

// SaturatingAdd64 returns a+b clamped to the int64 range.
func SaturatingAdd64(a, b int64) int64 {
	s, overflow := Add64(a, b)
	if !overflow {
		return s
	}
	if a > 0 {
		return math.MaxInt64
	}

	return math.MinInt64
}

// SaturatingMul64 returns a*b clamped to the int64 range.
func SaturatingMul64(a, b int64) int64 {
	p, overflow := Mul64(a, b)
	if !overflow {
		return p
	}
	if (a < 0) == (b < 0) {
		return math.MaxInt64
	}

	return math.MinInt64
}

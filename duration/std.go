// SPDX-License-Identifier: MIT
// Package: lvtime/duration
//
// std.go — the saturating bridge to time.Duration.

package duration

import (
	"math"
	"time"

	"github.com/katalvlaran/lvtime/internal/mathx"
)

// Std converts to time.Duration, saturating at its bounds. Sentinels map to
// math.MaxInt64 and math.MinInt64.
func (d Duration) Std() time.Duration {
	switch {
	case d.IsInfinite() && d.sec > 0:
		return math.MaxInt64
	case d.IsInfinite():
		return math.MinInt64
	}
	ns := mathx.SaturatingMul64(d.sec, nanosPerSecond)
	return time.Duration(mathx.SaturatingAdd64(ns, int64(d.nsec)))
}

// FromStd converts from time.Duration. math.MaxInt64 and math.MinInt64 are
// read as the sentinels, so Std followed by FromStd maps every duration
// beyond the time.Duration range to a sentinel.
func FromStd(td time.Duration) Duration {
	switch td {
	case math.MaxInt64:
		return Infinite
	case math.MinInt64:
		return NegInfinite
	}
	return New(0, int64(td))
}

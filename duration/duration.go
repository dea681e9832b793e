// SPDX-License-Identifier: MIT
// Package: lvtime/duration
//
// duration.go — representation, construction and accessors.

package duration

import (
	"math"
	"math/big"

	"github.com/katalvlaran/lvtime/internal/mathx"
)

// Duration is a signed elapsed time. The zero value is zero.
type Duration struct {
	sec  int64
	nsec int32 // same sign as sec, |nsec| < 1e9
}

// Unit is a fixed length of time in nanoseconds.
type Unit int64

const (
	Nanosecond  Unit = 1
	Microsecond      = 1000 * Nanosecond
	Millisecond      = 1000 * Microsecond
	Second           = 1000 * Millisecond
	Minute           = 60 * Second
	Hour             = 60 * Minute
	Day              = 24 * Hour
)

// MaxSeconds bounds the whole seconds of a finite Duration.
const MaxSeconds int64 = 1<<62 - 1

const nanosPerSecond = 1_000_000_000

var (
	// Infinite is greater than every finite Duration.
	Infinite = Duration{sec: math.MaxInt64}
	// NegInfinite is less than every finite Duration.
	NegInfinite = Duration{sec: math.MinInt64}
	// Zero is the empty duration.
	Zero = Duration{}
)

var (
	bigBillion    = big.NewInt(nanosPerSecond)
	bigMaxSeconds = big.NewInt(MaxSeconds)
)

// New returns seconds + nanos. nanos may be any value and carries into
// seconds. Magnitudes beyond MaxSeconds saturate to a sentinel.
func New(seconds, nanos int64) Duration {
	sec, overflow := mathx.Add64(seconds, nanos/nanosPerSecond)
	if overflow {
		return sentinel(seconds)
	}
	ns := nanos % nanosPerSecond
	switch {
	case sec > 0 && ns < 0:
		sec, ns = sec-1, ns+nanosPerSecond
	case sec < 0 && ns > 0:
		sec, ns = sec+1, ns-nanosPerSecond
	}
	if sec > MaxSeconds || sec < -MaxSeconds {
		return sentinel(sec)
	}

	return Duration{sec: sec, nsec: int32(ns)}
}

// Of returns n units, saturating.
func Of(n int64, u Unit) Duration {
	if u <= 0 {
		return Zero
	}
	if u%Second == 0 {
		s, overflow := mathx.Mul64(n, int64(u/Second))
		if overflow {
			return sentinel(n)
		}
		return New(s, 0)
	}
	if nanosPerSecond%int64(u) == 0 {
		per := nanosPerSecond / int64(u)
		return New(n/per, (n%per)*int64(u))
	}
	return fromBigNanos(new(big.Int).Mul(big.NewInt(n), big.NewInt(int64(u))))
}

func sentinel(sign int64) Duration {
	if sign < 0 {
		return NegInfinite
	}
	return Infinite
}

// bigNanos returns the finite duration as a nanosecond count.
func (d Duration) bigNanos() *big.Int {
	n := big.NewInt(d.sec)
	n.Mul(n, bigBillion)
	return n.Add(n, big.NewInt(int64(d.nsec)))
}

// fromBigNanos saturates n nanoseconds to a Duration.
func fromBigNanos(n *big.Int) Duration {
	var sec, ns big.Int
	sec.QuoRem(n, bigBillion, &ns) // truncated, so ns takes the sign of n
	if sec.CmpAbs(bigMaxSeconds) > 0 {
		return sentinel(int64(n.Sign()))
	}
	return Duration{sec: sec.Int64(), nsec: int32(ns.Int64())}
}

// IsInfinite reports whether d is a sentinel.
func (d Duration) IsInfinite() bool { return d.sec == math.MaxInt64 || d.sec == math.MinInt64 }

func (d Duration) IsZero() bool { return d.sec == 0 && d.nsec == 0 }

// Sign returns -1, 0 or +1.
func (d Duration) Sign() int {
	switch {
	case d.sec > 0 || d.nsec > 0:
		return 1
	case d.sec < 0 || d.nsec < 0:
		return -1
	}
	return 0
}

// Seconds returns the whole seconds, truncated towards zero. Sentinels
// return math.MaxInt64 or math.MinInt64.
func (d Duration) Seconds() int64 { return d.sec }

// Nanos returns the fraction of second, with the sign of d.
func (d Duration) Nanos() int32 { return d.nsec }

// Compare returns -1, 0 or +1. The sentinels are the extremes.
func (d Duration) Compare(o Duration) int {
	switch {
	case d.sec < o.sec:
		return -1
	case d.sec > o.sec:
		return 1
	case d.nsec < o.nsec:
		return -1
	case d.nsec > o.nsec:
		return 1
	}
	return 0
}

// InWhole returns d in whole units, truncated towards zero and saturated
// to the int64 range.
func (d Duration) InWhole(u Unit) int64 {
	if d.IsInfinite() || u <= 0 {
		if d.sec < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	q := new(big.Int).Quo(d.bigNanos(), big.NewInt(int64(u)))
	if !q.IsInt64() {
		if q.Sign() < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return q.Int64()
}

// Truncate rounds d towards zero to a multiple of u. Sentinels are kept.
func (d Duration) Truncate(u Unit) Duration {
	if d.IsInfinite() || u <= 1 {
		return d
	}
	n := d.bigNanos()
	r := new(big.Int).Rem(n, big.NewInt(int64(u)))
	return fromBigNanos(n.Sub(n, r))
}

// Components splits d into hours, minutes, seconds and nanoseconds, each
// carrying the sign of d. Sentinels report saturated hours only.
func (d Duration) Components() (hours int64, minutes, seconds, nanoseconds int) {
	if d.IsInfinite() {
		return d.sec, 0, 0, 0
	}
	return d.sec / 3600, int(d.sec / 60 % 60), int(d.sec % 60), int(d.nsec)
}

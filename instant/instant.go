// SPDX-License-Identifier: MIT
// Package: lvtime/instant
//
// instant.go — Instant: a point on the UTC timeline, its construction,
// bounds and saturating arithmetic.

package instant

import (
	"math"
	"time"

	"github.com/katalvlaran/lvtime/civil"
	"github.com/katalvlaran/lvtime/duration"
	"github.com/katalvlaran/lvtime/internal/mathx"
)

// Bounds in epoch seconds: -999999999-01-01T00:00Z and
// +999999999-12-31T23:59:59Z, the civil range seen in UTC.
var (
	MinEpochSecond = civil.MinDate.AtStartOfDay().EpochSecondsAt(0)
	MaxEpochSecond = civil.MaxDate.AtTime(civil.MustTime(23, 59, 59, 0)).EpochSecondsAt(0)
)

// Instant is seconds and nanoseconds since 1970-01-01T00:00Z, without leap
// seconds. nsec is always in [0, 1e9). The zero value is the epoch.
type Instant struct {
	sec  int64
	nsec int32
}

var (
	// Min is the earliest representable instant.
	Min = Instant{sec: MinEpochSecond}
	// Max is the latest representable instant.
	Max = Instant{sec: MaxEpochSecond, nsec: civil.NanosPerSecond - 1}
	// Epoch is 1970-01-01T00:00Z.
	Epoch = Instant{}
)

func bounded(sec int64, nsec int64) Instant {
	switch {
	case sec < MinEpochSecond:
		return Min
	case sec > MaxEpochSecond:
		return Max
	}
	return Instant{sec: sec, nsec: int32(nsec)}
}

// FromEpochSeconds returns sec + nanos. nanos may be any value and carries
// into the seconds; results beyond the bounds clamp to Min or Max.
func FromEpochSeconds(sec, nanos int64) Instant {
	s, overflow := mathx.Add64(sec, mathx.FloorDiv(nanos, civil.NanosPerSecond))
	if overflow {
		if sec < 0 {
			return Min
		}
		return Max
	}
	return bounded(s, mathx.FloorMod(nanos, civil.NanosPerSecond))
}

// FromEpochMilliseconds clamps like FromEpochSeconds.
func FromEpochMilliseconds(ms int64) Instant {
	return FromEpochSeconds(mathx.FloorDiv(ms, 1000), mathx.FloorMod(ms, 1000)*1_000_000)
}

// FromStd converts a time.Time; its location is ignored.
func FromStd(t time.Time) Instant { return FromEpochSeconds(t.Unix(), int64(t.Nanosecond())) }

// Now reads the system clock.
func Now() Instant { return FromStd(time.Now()) }

func (i Instant) EpochSeconds() int64 { return i.sec }
func (i Instant) Nanosecond() int     { return int(i.nsec) }

// EpochMilliseconds truncates towards minus infinity and saturates at the
// int64 range.
func (i Instant) EpochMilliseconds() int64 {
	ms, overflow := mathx.Mul64(i.sec, 1000)
	if overflow {
		if i.sec < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return mathx.SaturatingAdd64(ms, int64(i.nsec/1_000_000))
}

// Std converts to a UTC time.Time.
func (i Instant) Std() time.Time { return time.Unix(i.sec, int64(i.nsec)).UTC() }

func (i Instant) Compare(o Instant) int {
	switch {
	case i.sec < o.sec:
		return -1
	case i.sec > o.sec:
		return 1
	case i.nsec < o.nsec:
		return -1
	case i.nsec > o.nsec:
		return 1
	}
	return 0
}

func (i Instant) Before(o Instant) bool { return i.Compare(o) < 0 }
func (i Instant) After(o Instant) bool  { return i.Compare(o) > 0 }

// Add moves i by d, saturating at Min and Max. Infinite durations land on
// the matching bound.
func (i Instant) Add(d duration.Duration) Instant {
	if d.IsInfinite() {
		if d.Sign() > 0 {
			return Max
		}
		return Min
	}
	// |d.Seconds()| < 2^62 and |i.sec| < 2^55, so the sum cannot overflow
	return FromEpochSeconds(i.sec+d.Seconds(), int64(i.nsec)+int64(d.Nanos()))
}

// Sub is Add(d.Neg()).
func (i Instant) Sub(d duration.Duration) Instant { return i.Add(d.Neg()) }

// Until returns the exact duration from i to o.
func (i Instant) Until(o Instant) duration.Duration {
	return duration.New(o.sec-i.sec, int64(o.nsec)-int64(i.nsec))
}

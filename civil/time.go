// SPDX-License-Identifier: MIT
// Package: lvtime/civil
//
// time.go — Time: a time of day with nanosecond precision and no leap
// seconds.

package civil

import (
	"fmt"

	"github.com/katalvlaran/lvtime"
)

// Unit sizes used by the civil and instant layers.
const (
	NanosPerSecond   = 1_000_000_000
	SecondsPerMinute = 60
	SecondsPerHour   = 3_600
	SecondsPerDay    = 86_400
	NanosPerDay      = SecondsPerDay * NanosPerSecond
)

// Time is a time of day, 00:00 .. 23:59:59.999999999.
type Time struct {
	hour, minute, second uint8
	nano                 uint32
}

// Midnight is 00:00.
var Midnight = Time{}

// NewTime validates and returns h:m:s.ns.
func NewTime(h, m, s, ns int) (Time, error) {
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 || ns < 0 || ns >= NanosPerSecond {
		return Time{}, fmt.Errorf("civil: NewTime(%d, %d, %d, %d): %w", h, m, s, ns, lvtime.ErrInvalidCalendarField)
	}
	return Time{hour: uint8(h), minute: uint8(m), second: uint8(s), nano: uint32(ns)}, nil
}

// MustTime is NewTime for literals; it panics on an invalid time.
func MustTime(h, m, s, ns int) Time {
	t, err := NewTime(h, m, s, ns)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfNanoOfDay returns the time n nanoseconds after midnight.
func TimeOfNanoOfDay(n int64) (Time, error) {
	if n < 0 || n >= NanosPerDay {
		return Time{}, fmt.Errorf("civil: TimeOfNanoOfDay(%d): %w", n, lvtime.ErrInvalidCalendarField)
	}
	sod := n / NanosPerSecond
	return Time{
		hour:   uint8(sod / SecondsPerHour),
		minute: uint8(sod / 60 % 60),
		second: uint8(sod % 60),
		nano:   uint32(n % NanosPerSecond),
	}, nil
}

// TimeOfSecondOfDay returns the time s seconds after midnight.
func TimeOfSecondOfDay(s int) (Time, error) {
	if s < 0 || s >= SecondsPerDay {
		return Time{}, fmt.Errorf("civil: TimeOfSecondOfDay(%d): %w", s, lvtime.ErrInvalidCalendarField)
	}
	return Time{hour: uint8(s / SecondsPerHour), minute: uint8(s / 60 % 60), second: uint8(s % 60)}, nil
}

// Hour returns the hour in [0, 23].
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute in [0, 59].
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second in [0, 59].
func (t Time) Second() int { return int(t.second) }

// Nanosecond returns the fraction of the second in [0, 999999999].
func (t Time) Nanosecond() int { return int(t.nano) }

// SecondOfDay returns whole seconds since midnight.
func (t Time) SecondOfDay() int {
	return int(t.hour)*SecondsPerHour + int(t.minute)*SecondsPerMinute + int(t.second)
}

// NanoOfDay returns nanoseconds since midnight.
func (t Time) NanoOfDay() int64 {
	return int64(t.SecondOfDay())*NanosPerSecond + int64(t.nano)
}

// Compare returns -1, 0 or +1.
func (t Time) Compare(o Time) int { return cmp64(t.NanoOfDay(), o.NanoOfDay()) }

func (t Time) Before(o Time) bool { return t.Compare(o) < 0 }
func (t Time) After(o Time) bool  { return t.Compare(o) > 0 }

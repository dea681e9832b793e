// SPDX-License-Identifier: MIT
// Package: lvtime/civil
//
// datetime.go — DateTime: a Date and a Time with no zone, ordered by date
// then time, plus the bridge to epoch seconds at a fixed offset.

package civil

import (
	"fmt"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/internal/mathx"
)

// DateTime is a calendar date and a time of day.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime validates every field.
func NewDateTime(y int64, mo Month, d, h, mi, s, ns int) (DateTime, error) {
	date, err := NewDate(y, mo, d)
	if err != nil {
		return DateTime{}, err
	}
	t, err := NewTime(h, mi, s, ns)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, time: t}, nil
}

// MustDateTime is NewDateTime for literals; it panics on invalid input.
func MustDateTime(y int64, mo Month, d, h, mi, s, ns int) DateTime {
	dt, err := NewDateTime(y, mo, d, h, mi, s, ns)
	if err != nil {
		panic(err)
	}
	return dt
}

// DateTimeFromEpochSeconds returns the local date-time of the instant
// (sec, nano) seen at offsetSeconds east of UTC. nano must be in
// [0, 999_999_999]. Results outside the year range fail with
// lvtime.ErrRangeOverflow.
func DateTimeFromEpochSeconds(sec int64, nano int, offsetSeconds int) (DateTime, error) {
	if nano < 0 || nano >= NanosPerSecond {
		return DateTime{}, fmt.Errorf("civil: DateTimeFromEpochSeconds: nano %d: %w", nano, lvtime.ErrInvalidCalendarField)
	}
	local, overflow := mathx.Add64(sec, int64(offsetSeconds))
	if overflow {
		return DateTime{}, fmt.Errorf("civil: DateTimeFromEpochSeconds(%d): %w", sec, lvtime.ErrRangeOverflow)
	}
	date, err := DateFromEpochDays(mathx.FloorDiv(local, SecondsPerDay))
	if err != nil {
		return DateTime{}, err
	}
	sod := int(mathx.FloorMod(local, SecondsPerDay))
	t := Time{hour: uint8(sod / SecondsPerHour), minute: uint8(sod / 60 % 60), second: uint8(sod % 60), nano: uint32(nano)}

	return DateTime{date: date, time: t}, nil
}

// Date returns the date part of dt.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time-of-day part of dt.
func (dt DateTime) Time() Time { return dt.time }

// Year returns the year of the date part.
func (dt DateTime) Year() int64 { return dt.date.year }

// Month returns the month of the date part.
func (dt DateTime) Month() Month { return dt.date.Month() }

// Day returns the day of the month of the date part.
func (dt DateTime) Day() int { return dt.date.Day() }

// Hour returns the hour of the time part.
func (dt DateTime) Hour() int { return dt.time.Hour() }

// Minute returns the minute of the time part.
func (dt DateTime) Minute() int { return dt.time.Minute() }

// Second returns the second of the time part.
func (dt DateTime) Second() int { return dt.time.Second() }

// Nanosecond returns the fraction of the second of the time part.
func (dt DateTime) Nanosecond() int { return dt.time.Nanosecond() }

// WithTime replaces the time of day.
func (dt DateTime) WithTime(t Time) DateTime { return DateTime{date: dt.date, time: t} }

// WithDate replaces the date.
func (dt DateTime) WithDate(d Date) DateTime { return DateTime{date: d, time: dt.time} }

// EpochSecondsAt returns the epoch second of dt read at offsetSeconds east
// of UTC. It cannot overflow over the supported year range.
func (dt DateTime) EpochSecondsAt(offsetSeconds int) int64 {
	return dt.date.EpochDays()*SecondsPerDay + int64(dt.time.SecondOfDay()) - int64(offsetSeconds)
}

// AddDays keeps the time of day.
func (dt DateTime) AddDays(n int64) (DateTime, error) {
	d, err := dt.date.AddDays(n)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: dt.time}, nil
}

// AddMonths keeps the time of day and clamps the day of month.
func (dt DateTime) AddMonths(n int64) (DateTime, error) {
	d, err := dt.date.AddMonths(n)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: dt.time}, nil
}

// AddSeconds moves along a uniform 86400-second-day timeline.
func (dt DateTime) AddSeconds(n int64) (DateTime, error) {
	local, overflow := mathx.Add64(dt.EpochSecondsAt(0), n)
	if overflow {
		return DateTime{}, fmt.Errorf("civil: %v.AddSeconds(%d): %w", dt, n, lvtime.ErrRangeOverflow)
	}
	return DateTimeFromEpochSeconds(local, dt.time.Nanosecond(), 0)
}

// Compare orders by date, then time.
func (dt DateTime) Compare(o DateTime) int {
	if c := dt.date.Compare(o.date); c != 0 {
		return c
	}
	return dt.time.Compare(o.time)
}

func (dt DateTime) Before(o DateTime) bool { return dt.Compare(o) < 0 }
func (dt DateTime) After(o DateTime) bool  { return dt.Compare(o) > 0 }

// SPDX-License-Identifier: MIT
// Package: lvtime/civil
//
// date.go — Date: construction, calendar queries and arithmetic.

package civil

import (
	"fmt"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/internal/mathx"
)

// Date is a proleptic-Gregorian calendar date. Month and day are stored
// zero-based so that the zero Date is 0000-01-01.
type Date struct {
	year   int64
	month0 uint8
	day0   uint8
}

// NewDate validates and returns y-m-d.
func NewDate(y int64, m Month, d int) (Date, error) {
	if y < MinYear || y > MaxYear {
		return Date{}, fmt.Errorf("civil: NewDate(%d, %d, %d): year outside [%d, %d]: %w",
			y, m, d, MinYear, MaxYear, lvtime.ErrInvalidCalendarField)
	}
	if m < January || m > December {
		return Date{}, fmt.Errorf("civil: NewDate(%d, %d, %d): month: %w", y, m, d, lvtime.ErrInvalidCalendarField)
	}
	if d < 1 || d > DaysInMonth(y, m) {
		return Date{}, fmt.Errorf("civil: NewDate(%d, %d, %d): day: %w", y, m, d, lvtime.ErrInvalidCalendarField)
	}

	return Date{year: y, month0: uint8(m - 1), day0: uint8(d - 1)}, nil
}

// MustDate is NewDate for literals; it panics on an invalid date.
func MustDate(y int64, m Month, d int) Date {
	v, err := NewDate(y, m, d)
	if err != nil {
		panic(err)
	}
	return v
}

// DateFromEpochDays returns the date days after 1970-01-01. Days outside
// the supported range fail with lvtime.ErrRangeOverflow.
func DateFromEpochDays(days int64) (Date, error) {
	if days < minEpochDay || days > maxEpochDay {
		return Date{}, fmt.Errorf("civil: DateFromEpochDays(%d): %w", days, lvtime.ErrRangeOverflow)
	}
	y, m, d := civilOf(days)

	return Date{year: y, month0: uint8(m - 1), day0: uint8(d - 1)}, nil
}

// MinDate and MaxDate bound the supported range.
var (
	MinDate = Date{year: MinYear}
	MaxDate = Date{year: MaxYear, month0: 11, day0: 30}
)

// Year returns the proleptic ISO year; year 0 is 1 BCE.
func (d Date) Year() int64 { return d.year }

// Month returns the month of the year.
func (d Date) Month() Month { return Month(d.month0) + 1 }

// Day returns the day of the month, starting at 1.
func (d Date) Day() int { return int(d.day0) + 1 }

// EpochDays returns the number of days since 1970-01-01.
func (d Date) EpochDays() int64 { return epochDaysOf(d.year, d.Month(), d.Day()) }

// Weekday returns the ISO day of week. 1970-01-01 was a Thursday.
func (d Date) Weekday() Weekday {
	return Weekday(mathx.FloorMod(d.EpochDays()+3, 7) + 1)
}

// DayOfYear returns 1..366.
func (d Date) DayOfYear() int {
	n := daysBefore[d.month0] + d.Day()
	if d.month0 >= 2 && IsLeap(d.year) {
		n++
	}
	return n
}

// ProlepticMonth counts months since January of year 0.
func (d Date) ProlepticMonth() int64 { return d.year*12 + int64(d.month0) }

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmp64(d.year, o.year)
	case d.month0 != o.month0:
		return cmp64(int64(d.month0), int64(o.month0))
	default:
		return cmp64(int64(d.day0), int64(o.day0))
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// AddDays moves n days along the calendar.
func (d Date) AddDays(n int64) (Date, error) {
	if n == 0 {
		return d, nil
	}
	days, overflow := mathx.Add64(d.EpochDays(), n)
	if overflow || days < minEpochDay || days > maxEpochDay {
		return Date{}, fmt.Errorf("civil: %v.AddDays(%d): %w", d, n, lvtime.ErrRangeOverflow)
	}
	y, m, dd := civilOf(days)

	return Date{year: y, month0: uint8(m - 1), day0: uint8(dd - 1)}, nil
}

// AddMonths moves n months, clamping the day to the target month's length.
func (d Date) AddMonths(n int64) (Date, error) {
	if n == 0 {
		return d, nil
	}
	pm, overflow := mathx.Add64(d.ProlepticMonth(), n)
	y := mathx.FloorDiv(pm, 12)
	if overflow || y < MinYear || y > MaxYear {
		return Date{}, fmt.Errorf("civil: %v.AddMonths(%d): %w", d, n, lvtime.ErrRangeOverflow)
	}
	m := Month(mathx.FloorMod(pm, 12)) + 1
	day := min(d.Day(), DaysInMonth(y, m))

	return Date{year: y, month0: uint8(m - 1), day0: uint8(day - 1)}, nil
}

// AddYears moves n years; February 29 clamps to February 28.
func (d Date) AddYears(n int64) (Date, error) {
	months, overflow := mathx.Mul64(n, 12)
	if overflow {
		return Date{}, fmt.Errorf("civil: %v.AddYears(%d): %w", d, n, lvtime.ErrRangeOverflow)
	}
	return d.AddMonths(months)
}

// MonthsUntil returns the whole months from d to o, truncated towards zero.
// Month and day are packed as month*32+day so that a later day-of-month
// completes a month and an earlier one does not.
func (d Date) MonthsUntil(o Date) int64 {
	p1 := d.ProlepticMonth()*32 + int64(d.Day())
	p2 := o.ProlepticMonth()*32 + int64(o.Day())
	return (p2 - p1) / 32
}

// DaysUntil returns o minus d in days.
func (d Date) DaysUntil(o Date) int64 { return o.EpochDays() - d.EpochDays() }

// AtTime combines d with a time of day.
func (d Date) AtTime(t Time) DateTime { return DateTime{date: d, time: t} }

// AtStartOfDay is d at 00:00.
func (d Date) AtStartOfDay() DateTime { return DateTime{date: d} }

func cmp64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

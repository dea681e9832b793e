// SPDX-License-Identifier: MIT
// Package: lvtime/civil
//
// calendar.go — month and weekday enums, the leap-year rule and the
// conversion between (year, month, day) and days since 1970-01-01.

package civil

import (
	"strconv"

	"github.com/katalvlaran/lvtime/internal/mathx"
)

// Month of year, January=1.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// String returns the English month name.
func (m Month) String() string {
	if m >= January && m <= December {
		return monthNames[m-1]
	}
	return "Month(" + strconv.Itoa(int(m)) + ")"
}

// Weekday in ISO numbering, Monday=1 .. Sunday=7.
type Weekday int

const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// String returns the English day name.
func (w Weekday) String() string {
	if w >= Monday && w <= Sunday {
		return weekdayNames[w-1]
	}
	return "Weekday(" + strconv.Itoa(int(w)) + ")"
}

// Year range.
const (
	MinYear int64 = -999_999_999
	MaxYear int64 = 999_999_999
)

// daysBefore[m] counts the days before month m+1 in a common year.
var daysBefore = [...]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

// IsLeap reports whether y is a leap year: divisible by 4, except
// centuries not divisible by 400.
func IsLeap(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DaysInMonth returns the length of month m in year y, or 0 for an invalid
// month.
func DaysInMonth(y int64, m Month) int {
	if m < January || m > December {
		return 0
	}
	if m == February && IsLeap(y) {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

// LengthOfYear returns 365 or 366.
func LengthOfYear(y int64) int {
	if IsLeap(y) {
		return 366
	}
	return 365
}

// epochDaysOf converts a valid civil date to days since 1970-01-01.
// The computation runs in 400-year eras of 146097 days with March as the
// first month, which puts the leap day at the end of the era-year.
func epochDaysOf(y int64, m Month, d int) int64 {
	if m <= February {
		y--
	}
	era := mathx.FloorDiv(y, 400)
	yoe := y - era*400                     // [0, 399]
	mp := int64((int(m) + 9) % 12)         // March=0 .. February=11
	doy := (153*mp+2)/5 + int64(d) - 1     // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]

	return era*146097 + doe - 719468
}

// civilOf is the inverse of epochDaysOf.
func civilOf(days int64) (int64, Month, int) {
	z := days + 719468
	era := mathx.FloorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := int(doy - (153*mp+2)/5 + 1)
	m := Month(mp + 3)
	if mp >= 10 {
		m = Month(mp - 9)
	}
	y := yoe + era*400
	if m <= February {
		y++
	}

	return y, m, d
}

// Epoch-day bounds of the supported year range.
var (
	minEpochDay = epochDaysOf(MinYear, January, 1)
	maxEpochDay = epochDaysOf(MaxYear, December, 31)
)

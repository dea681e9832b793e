// SPDX-License-Identifier: MIT
// Package: lvtime/format
//
// types.go — the field bag, field sets, directive styles, name tables and
// build options.

package format

// FieldSet is a bitmask of civil fields.
type FieldSet uint16

const (
	FieldYear FieldSet = 1 << iota
	FieldMonth
	FieldDay
	FieldWeekday
	FieldHour
	FieldHour12 // clock-hour 1..12, parse side only
	FieldAmPm   // parse side only
	FieldMinute
	FieldSecond
	FieldNanosecond
	FieldOffset
	FieldZoneID
)

// Common unions used by the typed wrappers.
const (
	DateFields     = FieldYear | FieldMonth | FieldDay | FieldWeekday
	TimeFields     = FieldHour | FieldMinute | FieldSecond | FieldNanosecond
	DateTimeFields = DateFields | TimeFields
)

// zeroDefault lists the fields that take the value 0 when a parse skipped
// every directive producing them.
const zeroDefault = FieldMinute | FieldSecond | FieldNanosecond | FieldOffset

// Has reports whether every field of o is in s.
func (s FieldSet) Has(o FieldSet) bool { return s&o == o }

// Fields is the neutral value the engine reads when formatting and fills
// when parsing. Set records which fields hold meaningful values.
type Fields struct {
	Year          int64
	Month         int // 1..12 once validated
	Day           int
	Weekday       int // ISO numbering, Monday=1 .. Sunday=7
	Hour          int // 0..23
	Hour12        int // 1..12, filled by AmPmHour on parse
	PM            bool
	Minute        int
	Second        int
	Nanosecond    int
	OffsetSeconds int
	ZoneID        string

	Set FieldSet
}

// Pad selects the width of small numeric fields.
type Pad uint8

const (
	// PadZero prints and parses exactly two digits.
	PadZero Pad = iota
	// PadNone prints the minimal digits and parses one or two.
	PadNone
)

// YearStyle selects the year grammar.
type YearStyle uint8

const (
	// YearISO is the ISO-8601 year: exactly four digits for 0000..9999,
	// a mandatory sign otherwise. '-' requires at least four digits and
	// '+' requires more than four.
	YearISO YearStyle = iota
	// YearVariable prints the minimal digits with '-' for negative years
	// and accepts any digit count with an optional sign.
	YearVariable
)

// OffsetStyle selects the UTC offset grammar.
type OffsetStyle uint8

const (
	// OffsetISO prints Z or ±HH:MM[:SS]; parses Z, z, ±HH, ±HH:MM, ±HH:MM:SS.
	OffsetISO OffsetStyle = iota
	// OffsetISOBasic prints Z or ±HH[MM[SS]]; parses the same without colons.
	OffsetISOBasic
	// OffsetFourDigits prints and parses ±HHMM. Seconds are dropped when
	// printing.
	OffsetFourDigits
)

// MonthNames maps January..December to display names.
type MonthNames [12]string

// DayOfWeekNames maps Monday..Sunday to display names.
type DayOfWeekNames [7]string

// English name tables.
var (
	EnglishFullMonths = MonthNames{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	EnglishAbbreviatedMonths = MonthNames{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	EnglishFullDays = DayOfWeekNames{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	}
	EnglishAbbreviatedDays = DayOfWeekNames{
		"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
	}
)

// Option customizes Build.
type Option func(*options)

type options struct {
	foldNames bool
}

// WithCaseInsensitiveNames makes month names, day names and AM/PM markers
// match regardless of case when parsing. Formatting is unaffected.
func WithCaseInsensitiveNames() Option {
	return func(o *options) { o.foldNames = true }
}

// Package civil provides the zone-less calendar values of lvtime: Date,
// Time and DateTime on the proleptic Gregorian calendar.
//
// Supported years are [MinYear, MaxYear] = [-999_999_999, 999_999_999].
// Year 0 exists and is a leap year; year -1 precedes it. Every value is
// immutable, comparable with == and safe to share between goroutines. The
// zero values are 0000-01-01, 00:00 and 0000-01-01T00:00.
//
// Arithmetic:
//
//   - AddDays walks the calendar and never clamps.
//   - AddMonths and AddYears clamp the day to the target month's length,
//     so 2021-01-31 plus one month is 2021-02-28 and never spills into March.
//   - Results outside the year range fail with lvtime.ErrRangeOverflow;
//     constructors fail with lvtime.ErrInvalidCalendarField.
//
// Text:
//
// String and ParseDate/ParseTime/ParseDateTime are the extended ISO-8601
// forms. Other formats are built with package format and wrapped with
// NewDateFormat, NewTimeFormat or NewDateTimeFormat, which reject formats
// needing fields the value type does not carry. ParseEpochDays is the
// lenient whole-number path.
package civil

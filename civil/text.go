// SPDX-License-Identifier: MIT
// Package: lvtime/civil
//
// text.go — typed formats over package format, the canonical ISO text
// forms and the lenient epoch-day path.

package civil

import (
	"fmt"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/format"
)

// Fields exposes d to the format engine.
func (d Date) Fields() format.Fields {
	return format.Fields{
		Year: d.year, Month: int(d.Month()), Day: d.Day(), Weekday: int(d.Weekday()),
		Set: format.DateFields,
	}
}

// Fields exposes t to the format engine.
func (t Time) Fields() format.Fields {
	return format.Fields{
		Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond(),
		Set: format.TimeFields,
	}
}

// Fields exposes dt to the format engine.
func (dt DateTime) Fields() format.Fields {
	f := dt.date.Fields()
	f.Hour, f.Minute, f.Second, f.Nanosecond = dt.Hour(), dt.Minute(), dt.Second(), dt.Nanosecond()
	f.Set |= format.TimeFields
	return f
}

// DateFromFields validates parsed fields. A parsed day of week must agree
// with the date.
func DateFromFields(text string, f format.Fields) (Date, error) {
	if !f.Set.Has(format.FieldYear | format.FieldMonth | format.FieldDay) {
		return Date{}, lvtime.NewParseError(text, len(text), "year, month and day are required")
	}
	if f.Month < 1 || f.Month > 12 {
		return Date{}, fmt.Errorf("civil: month %d: %w", f.Month, lvtime.ErrInvalidCalendarField)
	}
	d, err := NewDate(f.Year, Month(f.Month), f.Day)
	if err != nil {
		return Date{}, err
	}
	if f.Set.Has(format.FieldWeekday) && Weekday(f.Weekday) != d.Weekday() {
		return Date{}, fmt.Errorf("civil: %v is a %v, not a %v: %w", d, d.Weekday(), Weekday(f.Weekday), lvtime.ErrInvalidCalendarField)
	}
	return d, nil
}

// TimeFromFields validates parsed fields; minute, second and fraction
// default to zero.
func TimeFromFields(text string, f format.Fields) (Time, error) {
	if !f.Set.Has(format.FieldHour) {
		return Time{}, lvtime.NewParseError(text, len(text), "hour is required")
	}
	return NewTime(f.Hour, f.Minute, f.Second, f.Nanosecond)
}

// DateTimeFromFields validates parsed fields.
func DateTimeFromFields(text string, f format.Fields) (DateTime, error) {
	d, err := DateFromFields(text, f)
	if err != nil {
		return DateTime{}, err
	}
	t, err := TimeFromFields(text, f)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: t}, nil
}

// checkRequires rejects formats printing fields outside avail.
func checkRequires(name string, f *format.Format, avail format.FieldSet) error {
	if f == nil {
		return fmt.Errorf("civil: %s(nil): %w", name, lvtime.ErrInvalidFormat)
	}
	if missing := f.Requires() &^ avail; missing != 0 {
		return fmt.Errorf("civil: %s: format needs fields %b the value does not have: %w",
			name, missing, lvtime.ErrInvalidFormat)
	}
	return nil
}

// DateFormat formats and parses Date values.
type DateFormat struct{ f *format.Format }

// NewDateFormat wraps f, which may only print date fields.
func NewDateFormat(f *format.Format) (DateFormat, error) {
	if err := checkRequires("NewDateFormat", f, format.DateFields); err != nil {
		return DateFormat{}, err
	}
	return DateFormat{f: f}, nil
}

// MustDateFormat is NewDateFormat for package-level presets.
func MustDateFormat(f *format.Format) DateFormat {
	df, err := NewDateFormat(f)
	if err != nil {
		panic(err)
	}
	return df
}

// Format renders d.
func (df DateFormat) Format(d Date) string { return df.f.Format(d.Fields()) }

// Parse reads a Date written in the format. Malformed text yields a
// *lvtime.ParseError; an impossible date yields lvtime.ErrInvalidCalendarField.
func (df DateFormat) Parse(text string) (Date, error) {
	f, err := df.f.Parse(text)
	if err != nil {
		return Date{}, err
	}
	return DateFromFields(text, f)
}

// TimeFormat formats and parses Time values.
type TimeFormat struct{ f *format.Format }

// NewTimeFormat wraps f, which may only print time fields.
func NewTimeFormat(f *format.Format) (TimeFormat, error) {
	if err := checkRequires("NewTimeFormat", f, format.TimeFields); err != nil {
		return TimeFormat{}, err
	}
	return TimeFormat{f: f}, nil
}

// MustTimeFormat is NewTimeFormat for package-level presets.
func MustTimeFormat(f *format.Format) TimeFormat {
	tf, err := NewTimeFormat(f)
	if err != nil {
		panic(err)
	}
	return tf
}

// Format renders t.
func (tf TimeFormat) Format(t Time) string { return tf.f.Format(t.Fields()) }

// Parse reads a Time written in the format.
func (tf TimeFormat) Parse(text string) (Time, error) {
	f, err := tf.f.Parse(text)
	if err != nil {
		return Time{}, err
	}
	return TimeFromFields(text, f)
}

// DateTimeFormat formats and parses DateTime values.
type DateTimeFormat struct{ f *format.Format }

// NewDateTimeFormat wraps f, which may print date and time fields.
func NewDateTimeFormat(f *format.Format) (DateTimeFormat, error) {
	if err := checkRequires("NewDateTimeFormat", f, format.DateTimeFields); err != nil {
		return DateTimeFormat{}, err
	}
	return DateTimeFormat{f: f}, nil
}

// MustDateTimeFormat is NewDateTimeFormat for package-level presets.
func MustDateTimeFormat(f *format.Format) DateTimeFormat {
	dtf, err := NewDateTimeFormat(f)
	if err != nil {
		panic(err)
	}
	return dtf
}

// Format renders dt.
func (dtf DateTimeFormat) Format(dt DateTime) string { return dtf.f.Format(dt.Fields()) }

// Parse reads a DateTime written in the format.
func (dtf DateTimeFormat) Parse(text string) (DateTime, error) {
	f, err := dtf.f.Parse(text)
	if err != nil {
		return DateTime{}, err
	}
	return DateTimeFromFields(text, f)
}

// Presets.
var (
	ISODate          = MustDateFormat(format.ISODate)
	ISOBasicDate     = MustDateFormat(format.ISOBasicDate)
	ISOTime          = MustTimeFormat(format.ISOTime)
	ISOBasicTime     = MustTimeFormat(format.ISOBasicTime)
	ISODateTime      = MustDateTimeFormat(format.ISODateTime)
	ISOBasicDateTime = MustDateTimeFormat(format.ISOBasicDateTime)
)

// String returns the extended ISO form, e.g. 2021-03-07 or -0044-03-15.
func (d Date) String() string { return ISODate.Format(d) }

// String returns HH:MM:SS with a fraction in groups of three when non-zero.
func (t Time) String() string { return ISOTime.Format(t) }

// String returns the extended ISO date-time.
func (dt DateTime) String() string { return ISODateTime.Format(dt) }

// ParseDate parses the extended ISO date.
func ParseDate(text string) (Date, error) {
	d, err := ISODate.Parse(text)
	if err != nil {
		return Date{}, fmt.Errorf("civil: ParseDate: %w", err)
	}
	return d, nil
}

// ParseTime parses the extended ISO time.
func ParseTime(text string) (Time, error) {
	t, err := ISOTime.Parse(text)
	if err != nil {
		return Time{}, fmt.Errorf("civil: ParseTime: %w", err)
	}
	return t, nil
}

// ParseDateTime parses the extended ISO date-time.
func ParseDateTime(text string) (DateTime, error) {
	dt, err := ISODateTime.Parse(text)
	if err != nil {
		return DateTime{}, fmt.Errorf("civil: ParseDateTime: %w", err)
	}
	return dt, nil
}

// ParseEpochDays reads a bare signed integer as days since 1970-01-01.
// It bypasses the format engine; out-of-range counts fail with
// lvtime.ErrRangeOverflow.
func ParseEpochDays(text string) (Date, error) {
	n, _, err := format.ParseInteger(text)
	if err != nil {
		return Date{}, fmt.Errorf("civil: ParseEpochDays: %w", err)
	}
	return DateFromEpochDays(n)
}

// MarshalText implements encoding.TextMarshaler using the ISO date form.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler; it accepts what
// ParseDate accepts.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler using the ISO time form.
func (t Time) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(b []byte) error {
	v, err := ParseTime(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler using the ISO date-time form.
func (dt DateTime) MarshalText() ([]byte, error) { return []byte(dt.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (dt *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseDateTime(string(b))
	if err != nil {
		return err
	}
	*dt = v
	return nil
}

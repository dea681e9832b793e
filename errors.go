// SPDX-License-Identifier: MIT
// Package: lvtime
//
// errors.go — sentinel errors shared by every lvtime package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Packages attach context with %w, e.g.
//       fmt.Errorf("civil: NewDate(%d, %d, %d): %w", y, m, d, ErrInvalidCalendarField)
//   • Parse failures are *ParseError values that unwrap to ErrFormatMismatch,
//     unless the text was well formed and only a field value was out of range,
//     in which case ErrInvalidCalendarField (or ErrInvalidOffset) is returned.

package lvtime

import (
	"errors"
	"strconv"
)

// ErrInvalidCalendarField indicates a value constructed outside its type's
// validity domain: month 13, February 30, hour 24 and the like.
var ErrInvalidCalendarField = errors.New("lvtime: invalid calendar field")

// ErrFormatMismatch indicates text that does not match a format's grammar.
// The concrete error is a *ParseError carrying the offending position.
var ErrFormatMismatch = errors.New("lvtime: text does not match format")

// ErrZoneNotFound indicates an unrecognised time-zone identifier.
var ErrZoneNotFound = errors.New("lvtime: zone not found")

// ErrInvalidOffset indicates a UTC offset outside ±18:00 or with
// inconsistent component signs.
var ErrInvalidOffset = errors.New("lvtime: invalid UTC offset")

// ErrRangeOverflow indicates an arithmetic result outside the representable
// range of a type that has no saturating sentinel (dates, periods).
var ErrRangeOverflow = errors.New("lvtime: result out of range")

// ErrArithmeticIndeterminate indicates an undefined operation on infinite
// durations, such as infinity minus infinity or zero times infinity.
var ErrArithmeticIndeterminate = errors.New("lvtime: indeterminate arithmetic")

// ErrInvalidFormat indicates a format description rejected at build time:
// impossible widths, empty alternatives, or a directive needing a field the
// target value type does not carry.
var ErrInvalidFormat = errors.New("lvtime: invalid format")

// ParseError reports where and why a text failed to match a format.
type ParseError struct {
	Input string // the complete text being parsed
	Pos   int    // byte offset of the first unmatched character
	Msg   string // what the parser expected at Pos
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "lvtime: cannot parse " + strconv.Quote(e.Input) +
		" at position " + strconv.Itoa(e.Pos) + ": " + e.Msg
}

// Unwrap exposes ErrFormatMismatch to errors.Is.
func (e *ParseError) Unwrap() error { return ErrFormatMismatch }

// NewParseError is a small constructor used by the parsing layers.
func NewParseError(input string, pos int, msg string) *ParseError {
	return &ParseError{Input: input, Pos: pos, Msg: msg}
}

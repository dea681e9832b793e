// SPDX-License-Identifier: MIT
// Package: lvtime/format
//
// builder.go — Builder accumulates directive descriptors.
//
// Contract:
//   • Every directive method appends one descriptor and returns the receiver,
//     so calls chain.
//   • Misuse (nil sub-builders, bad widths, empty name tables) is recorded
//     and reported by Build as lvtime.ErrInvalidFormat; no method panics.
//   • A Builder is not safe for concurrent use. The *Format it builds is.

package format

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/lvtime"
)

type kind uint8

const (
	kYear kind = iota
	kTwoDigitYear
	kMonth
	kMonthName
	kDay
	kDayOfWeek
	kHour
	kAmPmHour
	kAmPmMarker
	kMinute
	kSecond
	kFraction
	kOffset
	kZoneID
	kLiteral
	kOptional
	kAlternatives
)

// directive is one compiled step. Only the fields relevant to kind are set.
type directive struct {
	kind     kind
	pad      Pad
	year     YearStyle
	base     int64
	min, max int
	offset   OffsetStyle
	text     string   // literal text, or the ifZero text of an Optional
	names    []string // month/day names, or {am, pm}
	folded   []string // case-folded names when WithCaseInsensitiveNames
	subs     [][]directive
	hasAlt   bool // Optional carries an ifZero text
	reserve  int  // digits left for the fixed-width numeric directives after this one
}

// Builder accumulates an ordered sequence of directives.
type Builder struct {
	steps []step
	errs  []error
}

// step is a directive before compilation; sub-builders are compiled by Build.
type step struct {
	d    directive
	subs []*Builder
	emb  *Format
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) add(d directive) *Builder {
	b.steps = append(b.steps, step{d: d})
	return b
}

func (b *Builder) fail(format string, args ...any) *Builder {
	b.errs = append(b.errs, fmt.Errorf("format: "+format+": %w", append(args, lvtime.ErrInvalidFormat)...))
	return b
}

// Year appends a year field.
func (b *Builder) Year(style YearStyle) *Builder {
	if style > YearVariable {
		return b.fail("Year(%d): unknown style", style)
	}
	return b.add(directive{kind: kYear, year: style})
}

// TwoDigitYear appends a year printed as two digits when it lies in
// [base, base+99] and in full with a sign otherwise. Parsing two digits
// yields the year in that window.
func (b *Builder) TwoDigitYear(base int64) *Builder {
	return b.add(directive{kind: kTwoDigitYear, base: base})
}

// Month appends the numeric month.
func (b *Builder) Month(p Pad) *Builder { return b.numeric(kMonth, p, "Month") }

// Day appends the day of month.
func (b *Builder) Day(p Pad) *Builder { return b.numeric(kDay, p, "Day") }

// Hour appends the hour of day, 00..23.
func (b *Builder) Hour(p Pad) *Builder { return b.numeric(kHour, p, "Hour") }

// AmPmHour appends the clock hour 1..12. Pair it with AmPmMarker so that a
// parse can recover the hour of day.
func (b *Builder) AmPmHour(p Pad) *Builder { return b.numeric(kAmPmHour, p, "AmPmHour") }

// Minute appends the minute of hour.
func (b *Builder) Minute(p Pad) *Builder { return b.numeric(kMinute, p, "Minute") }

// Second appends the second of minute.
func (b *Builder) Second(p Pad) *Builder { return b.numeric(kSecond, p, "Second") }

func (b *Builder) numeric(k kind, p Pad, name string) *Builder {
	if p > PadNone {
		return b.fail("%s(%d): unknown padding", name, p)
	}
	return b.add(directive{kind: k, pad: p})
}

// MonthName appends the month as a name from t.
func (b *Builder) MonthName(t MonthNames) *Builder {
	if err := checkNames(t[:]); err != nil {
		return b.fail("MonthName: %v", err)
	}
	return b.add(directive{kind: kMonthName, names: append([]string(nil), t[:]...)})
}

// DayOfWeek appends the day of week as a name from t.
func (b *Builder) DayOfWeek(t DayOfWeekNames) *Builder {
	if err := checkNames(t[:]); err != nil {
		return b.fail("DayOfWeek: %v", err)
	}
	return b.add(directive{kind: kDayOfWeek, names: append([]string(nil), t[:]...)})
}

// AmPmMarker appends the am or pm marker.
func (b *Builder) AmPmMarker(am, pm string) *Builder {
	if err := checkNames([]string{am, pm}); err != nil {
		return b.fail("AmPmMarker: %v", err)
	}
	return b.add(directive{kind: kAmPmMarker, names: []string{am, pm}})
}

// Fraction appends the fraction of second with between min and max digits,
// 1 <= min <= max <= 9. Trailing zeros are dropped down to min digits; with
// Fraction(1, 9) the printed length is rounded up to a multiple of three.
func (b *Builder) Fraction(min, max int) *Builder {
	if min < 1 || max > 9 || min > max {
		return b.fail("Fraction(%d, %d): need 1 <= min <= max <= 9", min, max)
	}
	return b.add(directive{kind: kFraction, min: min, max: max})
}

// Offset appends a UTC offset.
func (b *Builder) Offset(style OffsetStyle) *Builder {
	if style > OffsetFourDigits {
		return b.fail("Offset(%d): unknown style", style)
	}
	return b.add(directive{kind: kOffset, offset: style})
}

// ZoneID appends a zone identifier such as Europe/Berlin or UTC+01:00.
func (b *Builder) ZoneID() *Builder { return b.add(directive{kind: kZoneID}) }

// Char appends a single literal character.
func (b *Builder) Char(c rune) *Builder {
	if !utf8.ValidRune(c) {
		return b.fail("Char(%U): invalid rune", c)
	}
	return b.Literal(string(c))
}

// Literal appends literal text that is printed verbatim and must match
// exactly on parse.
func (b *Builder) Literal(s string) *Builder {
	if s == "" {
		return b.fail("Literal: empty text")
	}
	// merge with a preceding literal
	if n := len(b.steps); n > 0 && b.steps[n-1].d.kind == kLiteral && b.steps[n-1].emb == nil {
		b.steps[n-1].d.text += s
		return b
	}
	return b.add(directive{kind: kLiteral, text: s})
}

// Optional appends a section that is omitted when printing if every field it
// prints is zero, and that may be absent when parsing, in which case its
// fields take the value zero. With ifZero the given text is printed instead
// of nothing and accepted on parse. Only minute, second, fraction and offset
// fields may appear inside.
func (b *Builder) Optional(sub *Builder, ifZero ...string) *Builder {
	if sub == nil {
		return b.fail("Optional(nil)")
	}
	if len(ifZero) > 1 {
		return b.fail("Optional: at most one ifZero text")
	}
	d := directive{kind: kOptional}
	if len(ifZero) == 1 {
		if ifZero[0] == "" {
			return b.fail("Optional: empty ifZero text")
		}
		d.text, d.hasAlt = ifZero[0], true
	}
	b.steps = append(b.steps, step{d: d, subs: []*Builder{sub}})
	return b
}

// Alternatives appends a choice. Printing always uses primary; parsing tries
// primary and then each of others in order, committing to the first that
// matches.
func (b *Builder) Alternatives(primary *Builder, others ...*Builder) *Builder {
	if primary == nil {
		return b.fail("Alternatives: nil primary")
	}
	if len(others) == 0 {
		return b.fail("Alternatives: no alternative to primary")
	}
	subs := make([]*Builder, 0, 1+len(others))
	subs = append(subs, primary)
	for i, o := range others {
		if o == nil {
			return b.fail("Alternatives: nil alternative #%d", i)
		}
		subs = append(subs, o)
	}
	b.steps = append(b.steps, step{d: directive{kind: kAlternatives}, subs: subs})
	return b
}

// Embed appends every directive of a compiled format.
func (b *Builder) Embed(f *Format) *Builder {
	if f == nil {
		return b.fail("Embed(nil)")
	}
	b.steps = append(b.steps, step{emb: f})
	return b
}

func checkNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for i, n := range names {
		if n == "" {
			return fmt.Errorf("empty name #%d", i)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("duplicate name %q", n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// SPDX-License-Identifier: MIT
// Package: lvtime/format
//
// format.go — compilation of a Builder into an immutable Format, and the
// printing half of the engine.

package format

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/internal/mathx"
	"golang.org/x/text/cases"
)

// Format is a compiled, immutable directive sequence. It is safe for
// concurrent use.
type Format struct {
	dirs     []directive
	requires FieldSet
	parses   FieldSet
	fold     bool
}

// Build compiles the accumulated directives. Errors recorded by directive
// methods, and structural errors found here, wrap lvtime.ErrInvalidFormat.
func (b *Builder) Build(opts ...Option) (*Format, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	// Stage 1 (Validate): builder-recorded errors and nested sections.
	dirs, err := b.compile()
	if err != nil {
		return nil, err
	}

	// Stage 2 (Prepare): digit reservations and folded name tables.
	var caser cases.Caser
	if o.foldNames {
		caser = cases.Fold()
	}
	prepare(dirs, o.foldNames, caser)

	f := &Format{dirs: dirs, fold: o.foldNames}
	f.requires, f.parses = fieldsOf(dirs)

	return f, nil
}

// MustBuild is Build for package-level presets; it panics on error.
func MustBuild(b *Builder, opts ...Option) *Format {
	f, err := b.Build(opts...)
	if err != nil {
		panic(err)
	}

	return f
}

// Requires returns the fields read when printing.
func (f *Format) Requires() FieldSet { return f.requires }

// Produces returns the fields a successful parse may fill.
func (f *Format) Produces() FieldSet { return f.parses }

func (b *Builder) compile() ([]directive, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	out := make([]directive, 0, len(b.steps))
	for _, s := range b.steps {
		switch {
		case s.emb != nil:
			out = append(out, cloneDirs(s.emb.dirs)...)
		case s.d.kind == kOptional || s.d.kind == kAlternatives:
			d := s.d
			d.subs = make([][]directive, 0, len(s.subs))
			for _, sb := range s.subs {
				sd, err := sb.compile()
				if err != nil {
					return nil, err
				}
				d.subs = append(d.subs, sd)
			}
			if d.kind == kOptional {
				req, _ := fieldsOf(d.subs[0])
				if req == 0 {
					return nil, fmt.Errorf("format: Optional: section prints no field: %w", lvtime.ErrInvalidFormat)
				}
				if req&^zeroDefault != 0 {
					return nil, fmt.Errorf("format: Optional: fields %b have no zero default: %w",
						req&^zeroDefault, lvtime.ErrInvalidFormat)
				}
			}
			out = append(out, d)
		default:
			out = append(out, s.d)
		}
	}

	return out, nil
}

func cloneDirs(src []directive) []directive {
	out := make([]directive, len(src))
	copy(out, src)
	for i := range out {
		if out[i].subs != nil {
			subs := make([][]directive, len(out[i].subs))
			for j, s := range out[i].subs {
				subs[j] = cloneDirs(s)
			}
			out[i].subs = subs
		}
	}

	return out
}

// fieldsOf returns the fields printed by dirs and the fields parsing them
// may produce.
func fieldsOf(dirs []directive) (requires, parses FieldSet) {
	for _, d := range dirs {
		switch d.kind {
		case kYear, kTwoDigitYear:
			requires, parses = requires|FieldYear, parses|FieldYear
		case kMonth, kMonthName:
			requires, parses = requires|FieldMonth, parses|FieldMonth
		case kDay:
			requires, parses = requires|FieldDay, parses|FieldDay
		case kDayOfWeek:
			requires, parses = requires|FieldWeekday, parses|FieldWeekday
		case kHour:
			requires, parses = requires|FieldHour, parses|FieldHour
		case kAmPmHour:
			requires, parses = requires|FieldHour, parses|FieldHour12|FieldHour
		case kAmPmMarker:
			requires, parses = requires|FieldHour, parses|FieldAmPm|FieldHour
		case kMinute:
			requires, parses = requires|FieldMinute, parses|FieldMinute
		case kSecond:
			requires, parses = requires|FieldSecond, parses|FieldSecond
		case kFraction:
			requires, parses = requires|FieldNanosecond, parses|FieldNanosecond
		case kOffset:
			requires, parses = requires|FieldOffset, parses|FieldOffset
		case kZoneID:
			requires, parses = requires|FieldZoneID, parses|FieldZoneID
		case kOptional:
			r, p := fieldsOf(d.subs[0])
			requires, parses = requires|r, parses|p
		case kAlternatives:
			r, _ := fieldsOf(d.subs[0])
			requires |= r
			for _, s := range d.subs {
				_, p := fieldsOf(s)
				parses |= p
			}
		}
	}

	return requires, parses
}

// fixedDigits is the exact digit count a directive consumes, or 0 when it
// is not a fixed-width numeric field.
func fixedDigits(d directive) int {
	switch d.kind {
	case kMonth, kDay, kHour, kAmPmHour, kMinute, kSecond:
		if d.pad == PadZero {
			return 2
		}
	case kTwoDigitYear:
		return 2
	}

	return 0
}

func prepare(dirs []directive, fold bool, caser cases.Caser) {
	for i := range dirs {
		d := &dirs[i]
		switch d.kind {
		case kYear, kFraction, kMonth, kDay, kHour, kAmPmHour, kMinute, kSecond:
			d.reserve = 0
			if fixedDigits(*d) == 0 {
				for j := i + 1; j < len(dirs) && fixedDigits(dirs[j]) > 0; j++ {
					d.reserve += fixedDigits(dirs[j])
				}
			}
		case kMonthName, kDayOfWeek, kAmPmMarker:
			d.folded = nil
			if fold {
				d.folded = make([]string, len(d.names))
				for k, n := range d.names {
					d.folded[k] = caser.String(n)
				}
			}
		case kOptional, kAlternatives:
			for _, s := range d.subs {
				prepare(s, fold, caser)
			}
		}
	}
}

// Format prints v. Fields outside their natural range print as numbers (or
// an empty name) rather than failing.
func (f *Format) Format(v Fields) string {
	return string(f.AppendFormat(make([]byte, 0, 32), v))
}

// AppendFormat appends the printed form of v to dst.
func (f *Format) AppendFormat(dst []byte, v Fields) []byte {
	return appendDirs(dst, f.dirs, &v)
}

func appendDirs(dst []byte, dirs []directive, v *Fields) []byte {
	for i := range dirs {
		d := &dirs[i]
		switch d.kind {
		case kYear:
			dst = appendYear(dst, d.year, v.Year)
		case kTwoDigitYear:
			if v.Year >= d.base && v.Year-d.base < 100 {
				dst = appendPadded(dst, uint64(mathx.FloorMod(v.Year, 100)), 2)
			} else {
				if v.Year >= 0 {
					dst = append(dst, '+')
				}
				dst = strconv.AppendInt(dst, v.Year, 10)
			}
		case kMonth:
			dst = appendSmall(dst, d.pad, v.Month)
		case kDay:
			dst = appendSmall(dst, d.pad, v.Day)
		case kHour:
			dst = appendSmall(dst, d.pad, v.Hour)
		case kAmPmHour:
			h := v.Hour % 12
			if h == 0 {
				h = 12
			}
			dst = appendSmall(dst, d.pad, h)
		case kMinute:
			dst = appendSmall(dst, d.pad, v.Minute)
		case kSecond:
			dst = appendSmall(dst, d.pad, v.Second)
		case kMonthName:
			if v.Month >= 1 && v.Month <= len(d.names) {
				dst = append(dst, d.names[v.Month-1]...)
			}
		case kDayOfWeek:
			if v.Weekday >= 1 && v.Weekday <= len(d.names) {
				dst = append(dst, d.names[v.Weekday-1]...)
			}
		case kAmPmMarker:
			if v.Hour < 12 {
				dst = append(dst, d.names[0]...)
			} else {
				dst = append(dst, d.names[1]...)
			}
		case kFraction:
			dst = appendFraction(dst, v.Nanosecond, d.min, d.max)
		case kOffset:
			dst = appendOffset(dst, d.offset, v.OffsetSeconds)
		case kZoneID:
			dst = append(dst, v.ZoneID...)
		case kLiteral:
			dst = append(dst, d.text...)
		case kOptional:
			req, _ := fieldsOf(d.subs[0])
			if allZero(req, v) {
				if d.hasAlt {
					dst = append(dst, d.text...)
				}
				continue
			}
			dst = appendDirs(dst, d.subs[0], v)
		case kAlternatives:
			dst = appendDirs(dst, d.subs[0], v)
		}
	}

	return dst
}

func allZero(fs FieldSet, v *Fields) bool {
	return (!fs.Has(FieldMinute) || v.Minute == 0) &&
		(!fs.Has(FieldSecond) || v.Second == 0) &&
		(!fs.Has(FieldNanosecond) || v.Nanosecond == 0) &&
		(!fs.Has(FieldOffset) || v.OffsetSeconds == 0)
}

func uabs(v int64) uint64 {
	if v < 0 {
		return uint64(-v) // two's complement makes MinInt64 come out right
	}
	return uint64(v)
}

func appendPadded(dst []byte, v uint64, width int) []byte {
	var buf [20]byte
	s := strconv.AppendUint(buf[:0], v, 10)
	for n := len(s); n < width; n++ {
		dst = append(dst, '0')
	}

	return append(dst, s...)
}

func appendSmall(dst []byte, p Pad, v int) []byte {
	if v < 0 {
		return strconv.AppendInt(dst, int64(v), 10)
	}
	if p == PadZero {
		return appendPadded(dst, uint64(v), 2)
	}

	return strconv.AppendInt(dst, int64(v), 10)
}

func appendYear(dst []byte, style YearStyle, y int64) []byte {
	if style == YearVariable {
		return strconv.AppendInt(dst, y, 10)
	}
	switch {
	case y >= 0 && y <= 9999:
		return appendPadded(dst, uint64(y), 4)
	case y > 9999:
		return strconv.AppendInt(append(dst, '+'), y, 10)
	default:
		return appendPadded(append(dst, '-'), uabs(y), 4)
	}
}

func appendFraction(dst []byte, ns, min, max int) []byte {
	if ns < 0 || ns > 999_999_999 {
		ns = 0
	}
	var buf [9]byte
	for i := 8; i >= 0; i-- {
		buf[i] = byte('0' + ns%10)
		ns /= 10
	}
	n := max
	for n > min && buf[n-1] == '0' {
		n--
	}
	if min == 1 && max == 9 {
		n = (n + 2) / 3 * 3
	}

	return append(dst, buf[:n]...)
}

func appendOffset(dst []byte, style OffsetStyle, total int) []byte {
	if total == 0 && style != OffsetFourDigits {
		return append(dst, 'Z')
	}
	sign := byte('+')
	if total < 0 {
		sign, total = '-', -total
	}
	h, m, s := total/3600, total/60%60, total%60
	dst = appendPadded(append(dst, sign), uint64(h), 2)
	switch style {
	case OffsetISO:
		dst = appendPadded(append(dst, ':'), uint64(m), 2)
		if s != 0 {
			dst = appendPadded(append(dst, ':'), uint64(s), 2)
		}
	case OffsetISOBasic:
		if m != 0 || s != 0 {
			dst = appendPadded(dst, uint64(m), 2)
		}
		if s != 0 {
			dst = appendPadded(dst, uint64(s), 2)
		}
	case OffsetFourDigits:
		dst = appendPadded(dst, uint64(m), 2)
	}

	return dst
}

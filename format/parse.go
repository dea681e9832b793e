// SPDX-License-Identifier: MIT
// Package: lvtime/format
//
// parse.go — the parsing half of the engine.

package format

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/internal/mathx"
	"golang.org/x/text/cases"
)

// Parse matches the whole of text against f and returns the fields found.
// Mismatches are *lvtime.ParseError values; an offset beyond ±18:00 wraps
// lvtime.ErrInvalidOffset and an impossible clock hour wraps
// lvtime.ErrInvalidCalendarField.
func (f *Format) Parse(text string) (Fields, error) {
	p := parser{in: text}
	if f.fold {
		// a Caser is stateful, so every parse gets its own
		p.caser, p.fold = cases.Fold(), true
	}

	var v Fields
	pos, err := p.dirs(0, f.dirs, &v)
	if err != nil {
		return Fields{}, err
	}
	if pos != len(text) {
		return Fields{}, lvtime.NewParseError(text, pos, "unexpected trailing text")
	}
	if err = resolve(&v, f.parses); err != nil {
		return Fields{}, err
	}

	return v, nil
}

type parser struct {
	in    string
	fold  bool
	caser cases.Caser
}

func (p *parser) mismatch(pos int, format string, args ...any) error {
	return lvtime.NewParseError(p.in, pos, fmt.Sprintf(format, args...))
}

func (p *parser) dirs(pos int, dirs []directive, v *Fields) (int, error) {
	var err error
	for i := range dirs {
		if pos, err = p.one(pos, &dirs[i], v); err != nil {
			return pos, err
		}
	}

	return pos, nil
}

func (p *parser) one(pos int, d *directive, v *Fields) (int, error) {
	switch d.kind {
	case kYear:
		return p.year(pos, d, v)
	case kTwoDigitYear:
		return p.twoDigitYear(pos, d, v)
	case kMonth:
		return p.small(pos, d, &v.Month, FieldMonth, v, "month")
	case kDay:
		return p.small(pos, d, &v.Day, FieldDay, v, "day")
	case kHour:
		return p.small(pos, d, &v.Hour, FieldHour, v, "hour")
	case kAmPmHour:
		return p.small(pos, d, &v.Hour12, FieldHour12, v, "clock hour")
	case kMinute:
		return p.small(pos, d, &v.Minute, FieldMinute, v, "minute")
	case kSecond:
		return p.small(pos, d, &v.Second, FieldSecond, v, "second")
	case kMonthName:
		i, end := p.name(pos, d)
		if i < 0 {
			return pos, p.mismatch(pos, "expected month name")
		}
		v.Month, v.Set = i+1, v.Set|FieldMonth
		return end, nil
	case kDayOfWeek:
		i, end := p.name(pos, d)
		if i < 0 {
			return pos, p.mismatch(pos, "expected day-of-week name")
		}
		v.Weekday, v.Set = i+1, v.Set|FieldWeekday
		return end, nil
	case kAmPmMarker:
		i, end := p.name(pos, d)
		if i < 0 {
			return pos, p.mismatch(pos, "expected %q or %q", d.names[0], d.names[1])
		}
		v.PM, v.Set = i == 1, v.Set|FieldAmPm
		return end, nil
	case kFraction:
		return p.fraction(pos, d, v)
	case kOffset:
		return p.offset(pos, d, v)
	case kZoneID:
		end := pos
		for end < len(p.in) && isZoneIDByte(p.in[end]) {
			end++
		}
		if end == pos {
			return pos, p.mismatch(pos, "expected zone identifier")
		}
		v.ZoneID, v.Set = p.in[pos:end], v.Set|FieldZoneID
		return end, nil
	case kLiteral:
		if !strings.HasPrefix(p.in[pos:], d.text) {
			return pos, p.mismatch(pos, "expected %q", d.text)
		}
		return pos + len(d.text), nil
	case kOptional:
		tmp := *v
		end, err := p.dirs(pos, d.subs[0], &tmp)
		if err == nil {
			*v = tmp
			return end, nil
		}
		if !errors.Is(err, lvtime.ErrFormatMismatch) {
			return end, err
		}
		if !d.hasAlt {
			return pos, nil
		}
		if strings.HasPrefix(p.in[pos:], d.text) {
			return pos + len(d.text), nil
		}
		return pos, furthest(err, p.mismatch(pos, "expected %q", d.text))
	case kAlternatives:
		var last error
		for _, sub := range d.subs {
			tmp := *v
			end, err := p.dirs(pos, sub, &tmp)
			if err == nil {
				*v = tmp
				return end, nil
			}
			if !errors.Is(err, lvtime.ErrFormatMismatch) {
				return end, err
			}
			last = furthest(last, err)
		}
		return pos, last
	}

	return pos, p.mismatch(pos, "unknown directive")
}

// furthest keeps the parse error that got further into the input.
func furthest(a, b error) error {
	var pa, pb *lvtime.ParseError
	if !errors.As(a, &pa) {
		return b
	}
	if !errors.As(b, &pb) || pa.Pos >= pb.Pos {
		return a
	}

	return b
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isZoneIDByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) ||
		c == '/' || c == '_' || c == '-' || c == '+' || c == ':'
}

func (p *parser) digitRun(pos int) int {
	n := 0
	for pos+n < len(p.in) && isDigit(p.in[pos+n]) {
		n++
	}

	return n
}

// number reads n digits at pos, saturating at math.MaxInt64.
func (p *parser) number(pos, n int) int64 {
	var v int64
	for i := 0; i < n; i++ {
		dgt := int64(p.in[pos+i] - '0')
		if v > (math.MaxInt64-dgt)/10 {
			v = math.MaxInt64
			continue
		}
		v = v*10 + dgt
	}

	return v
}

func (p *parser) small(pos int, d *directive, dst *int, f FieldSet, v *Fields, what string) (int, error) {
	run := p.digitRun(pos)
	n := 2
	if d.pad == PadNone {
		n = min(run-d.reserve, 2)
		if n < 1 {
			return pos, p.mismatch(pos, "expected %s", what)
		}
	} else if run < 2 {
		return pos, p.mismatch(pos, "expected two-digit %s", what)
	}
	*dst, v.Set = int(p.number(pos, n)), v.Set|f

	return pos + n, nil
}

func (p *parser) year(pos int, d *directive, v *Fields) (int, error) {
	start := pos
	var sign byte
	if pos < len(p.in) && (p.in[pos] == '+' || p.in[pos] == '-') {
		sign = p.in[pos]
		pos++
	}
	n := p.digitRun(pos) - d.reserve
	switch {
	case d.year == YearVariable:
		if n < 1 {
			return start, p.mismatch(pos, "expected year")
		}
	case sign == 0 && n < 4:
		return start, p.mismatch(pos, "expected four-digit year")
	case sign == 0 && n > 4:
		return start, p.mismatch(start, "a year outside 0000..9999 needs a sign")
	case sign == '-' && n < 4:
		return start, p.mismatch(pos, "expected at least four digits after '-'")
	case sign == '+' && n <= 4:
		return start, p.mismatch(pos, "a '+' year needs more than four digits")
	}
	y := p.number(pos, n)
	if sign == '-' {
		y = -y
	}
	v.Year, v.Set = y, v.Set|FieldYear

	return pos + n, nil
}

func (p *parser) twoDigitYear(pos int, d *directive, v *Fields) (int, error) {
	if pos < len(p.in) && (p.in[pos] == '+' || p.in[pos] == '-') {
		n := p.digitRun(pos + 1)
		if n < 1 {
			return pos, p.mismatch(pos+1, "expected year")
		}
		y := p.number(pos+1, n)
		if p.in[pos] == '-' {
			y = -y
		}
		v.Year, v.Set = y, v.Set|FieldYear
		return pos + 1 + n, nil
	}
	if p.digitRun(pos) < 2 {
		return pos, p.mismatch(pos, "expected two-digit year")
	}
	yy := p.number(pos, 2)
	v.Year, v.Set = d.base+mathx.FloorMod(yy-d.base, 100), v.Set|FieldYear

	return pos + 2, nil
}

func (p *parser) fraction(pos int, d *directive, v *Fields) (int, error) {
	n := min(p.digitRun(pos)-d.reserve, d.max)
	if n < d.min {
		return pos, p.mismatch(pos, "expected at least %d fraction digits", d.min)
	}
	ns := int(p.number(pos, n))
	for i := n; i < 9; i++ {
		ns *= 10
	}
	v.Nanosecond, v.Set = ns, v.Set|FieldNanosecond

	return pos + n, nil
}

func (p *parser) two(pos int) (int, bool) {
	if p.digitRun(pos) < 2 {
		return 0, false
	}
	return int(p.number(pos, 2)), true
}

func (p *parser) offset(pos int, d *directive, v *Fields) (int, error) {
	start := pos
	if pos >= len(p.in) {
		return pos, p.mismatch(pos, "expected offset")
	}
	if c := p.in[pos]; d.offset != OffsetFourDigits && (c == 'Z' || c == 'z') {
		v.OffsetSeconds, v.Set = 0, v.Set|FieldOffset
		return pos + 1, nil
	}
	neg := p.in[pos] == '-'
	if !neg && p.in[pos] != '+' {
		return pos, p.mismatch(pos, "expected offset sign or Z")
	}
	pos++
	h, ok := p.two(pos)
	if !ok {
		return start, p.mismatch(pos, "expected two-digit offset hours")
	}
	pos += 2
	var m, s int
	switch d.offset {
	case OffsetISO:
		if pos < len(p.in) && p.in[pos] == ':' {
			if m, ok = p.two(pos + 1); ok {
				pos += 3
				if pos < len(p.in) && p.in[pos] == ':' {
					if s, ok = p.two(pos + 1); ok {
						pos += 3
					}
				}
			}
		}
	case OffsetISOBasic:
		if m, ok = p.two(pos); ok {
			pos += 2
			if s, ok = p.two(pos); ok {
				pos += 2
			}
		}
	case OffsetFourDigits:
		if m, ok = p.two(pos); !ok {
			return start, p.mismatch(pos, "expected two-digit offset minutes")
		}
		pos += 2
	}
	total := h*3600 + m*60 + s
	if h > 18 || m > 59 || s > 59 || total > 18*3600 {
		return start, fmt.Errorf("format: offset %q: %w", p.in[start:pos], lvtime.ErrInvalidOffset)
	}
	if neg {
		total = -total
	}
	v.OffsetSeconds, v.Set = total, v.Set|FieldOffset

	return pos, nil
}

// name returns the index of the longest table entry at pos and the end of
// the match, or -1.
func (p *parser) name(pos int, d *directive) (int, int) {
	best, bestEnd := -1, pos
	rest := p.in[pos:]
	for i, n := range d.names {
		end := -1
		if !p.fold {
			if strings.HasPrefix(rest, n) {
				end = pos + len(n)
			}
		} else if k := prefixRunes(rest, utf8.RuneCountInString(n)); k > 0 &&
			p.caser.String(rest[:k]) == d.folded[i] {
			end = pos + k
		}
		if end > bestEnd {
			best, bestEnd = i, end
		}
	}

	return best, bestEnd
}

// prefixRunes returns the byte length of the first n runes of s, or 0 when
// s is shorter.
func prefixRunes(s string, n int) int {
	k := 0
	for i := 0; i < n; i++ {
		if k >= len(s) {
			return 0
		}
		_, size := utf8.DecodeRuneInString(s[k:])
		k += size
	}

	return k
}

// resolve derives the hour of day from a clock hour and marker, and gives
// fields with a zero default their value when no directive produced them.
func resolve(v *Fields, parses FieldSet) error {
	if v.Set.Has(FieldHour12 | FieldAmPm) {
		if v.Hour12 < 1 || v.Hour12 > 12 {
			return fmt.Errorf("format: clock hour %d: %w", v.Hour12, lvtime.ErrInvalidCalendarField)
		}
		h := v.Hour12 % 12
		if v.PM {
			h += 12
		}
		if v.Set.Has(FieldHour) && v.Hour != h {
			return fmt.Errorf("format: hour %d conflicts with clock hour %d: %w", v.Hour, v.Hour12, lvtime.ErrInvalidCalendarField)
		}
		v.Hour, v.Set = h, v.Set|FieldHour
	}
	v.Set |= parses & zeroDefault

	return nil
}

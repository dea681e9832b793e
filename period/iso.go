// SPDX-License-Identifier: MIT
// Package: lvtime/period
//
// iso.go — ISO-8601 period text.
//
// Printing: P{y}Y{m}M{d}D[T{h}H{m}M{s}[.f]S] with zero components left out,
// P0D for the empty period, and a single leading minus when no component is
// positive. Mixed signs are printed per component.
//
// Parsing: [-+]P[nY][nM][nW][nD][T[nH][nM][n[.f]S]] with optionally signed
// components, case-insensitive designators, weeks folded into days, and a
// '.' or ',' fraction of 1..9 digits on the seconds only.

package period

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/duration"
	"github.com/katalvlaran/lvtime/internal/mathx"
)

func (p DatePeriod) String() string { return DateTimePeriod{DatePeriod: p}.String() }

func (p DateTimePeriod) String() string {
	h, mi, s, ns := p.Time.Components()
	y, mo, d := int64(p.Years), int64(p.Months), int64(p.Days)
	if y == 0 && mo == 0 && d == 0 && p.Time.IsZero() {
		return "P0D"
	}

	buf := make([]byte, 0, 32)
	sign := int64(1)
	if y <= 0 && mo <= 0 && d <= 0 && p.Time.Sign() <= 0 {
		buf = append(buf, '-')
		sign = -1
	}
	buf = append(buf, 'P')
	unit := func(v int64, c byte) {
		if v != 0 {
			buf = append(strconv.AppendInt(buf, sign*v, 10), c)
		}
	}
	unit(y, 'Y')
	unit(mo, 'M')
	unit(d, 'D')
	if p.Time.IsZero() {
		return string(buf)
	}

	buf = append(buf, 'T')
	unit(h, 'H')
	unit(int64(mi), 'M')
	if s != 0 || ns != 0 {
		sec, frac := sign*int64(s), sign*int64(ns)
		if sec == 0 && frac < 0 {
			buf = append(buf, '-')
		}
		buf = strconv.AppendInt(buf, sec, 10)
		if frac != 0 {
			buf = appendFraction(append(buf, '.'), int(mathx.Abs(frac)))
		}
		buf = append(buf, 'S')
	}
	return string(buf)
}

// appendFraction prints ns as nine digits trimmed to a multiple of three.
func appendFraction(dst []byte, ns int) []byte {
	var digits [9]byte
	for i := 8; i >= 0; i-- {
		digits[i] = byte('0' + ns%10)
		ns /= 10
	}
	n := 9
	for n > 3 && string(digits[n-3:n]) == "000" {
		n -= 3
	}
	return append(dst, digits[:n]...)
}

func (p DatePeriod) MarshalText() ([]byte, error)     { return []byte(p.String()), nil }
func (p DateTimePeriod) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *DatePeriod) UnmarshalText(b []byte) error {
	v, err := ParseDatePeriod(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p *DateTimePeriod) UnmarshalText(b []byte) error {
	v, err := ParseDateTimePeriod(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

type scanner struct {
	in  string
	pos int
}

func (s *scanner) mismatch(msg string) error { return lvtime.NewParseError(s.in, s.pos, msg) }

func (s *scanner) overflow(what string) error {
	return fmt.Errorf("%s of %q: %w", what, s.in, lvtime.ErrRangeOverflow)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// number reads [+-]digits[.f] and the designator after it.
func (s *scanner) number() (v int64, frac int64, hasFrac bool, unit byte, err error) {
	start := s.pos
	neg := false
	if s.pos < len(s.in) && (s.in[s.pos] == '+' || s.in[s.pos] == '-') {
		neg = s.in[s.pos] == '-'
		s.pos++
	}
	digits := s.pos
	for s.pos < len(s.in) && isDigit(s.in[s.pos]) {
		d := int64(s.in[s.pos] - '0')
		if v > (math.MaxInt64-d)/10 {
			return 0, 0, false, 0, s.overflow("component")
		}
		v = v*10 + d
		s.pos++
	}
	if s.pos == digits {
		s.pos = start
		return 0, 0, false, 0, s.mismatch("expected number")
	}
	if s.pos < len(s.in) && (s.in[s.pos] == '.' || s.in[s.pos] == ',') {
		s.pos++
		at := s.pos
		for s.pos < len(s.in) && isDigit(s.in[s.pos]) {
			s.pos++
		}
		n := s.pos - at
		if n < 1 || n > 9 {
			return 0, 0, false, 0, s.mismatch("expected 1 to 9 fraction digits")
		}
		frac, _ = strconv.ParseInt(s.in[at:s.pos]+"000000000"[n:], 10, 64)
		hasFrac = true
	}
	if s.pos >= len(s.in) {
		return 0, 0, false, 0, s.mismatch("expected designator")
	}
	unit = upper(s.in[s.pos])
	s.pos++
	if neg {
		v, frac = -v, -frac
	}
	return v, frac, hasFrac, unit, nil
}

func toInt(v int64) (int, bool) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

// ParseDateTimePeriod reads the ISO period grammar including a time part.
func ParseDateTimePeriod(text string) (DateTimePeriod, error) {
	p, err := parse(text)
	if err != nil {
		return DateTimePeriod{}, fmt.Errorf("period: ParseDateTimePeriod: %w", err)
	}
	return p, nil
}

// ParseDatePeriod is ParseDateTimePeriod for text whose time part, if
// any, is zero.
func ParseDatePeriod(text string) (DatePeriod, error) {
	p, err := parse(text)
	if err != nil {
		return DatePeriod{}, fmt.Errorf("period: ParseDatePeriod: %w", err)
	}
	if !p.Time.IsZero() {
		return DatePeriod{}, fmt.Errorf("period: ParseDatePeriod: %w",
			lvtime.NewParseError(text, 0, "a date period has no time components"))
	}
	return p.DatePeriod, nil
}

func parse(text string) (DateTimePeriod, error) {
	s := &scanner{in: text}
	neg := false
	if s.pos < len(text) && (text[0] == '+' || text[0] == '-') {
		neg = text[0] == '-'
		s.pos++
	}
	if s.pos >= len(text) || upper(text[s.pos]) != 'P' {
		return DateTimePeriod{}, s.mismatch("expected 'P'")
	}
	s.pos++

	var years, months, weeks, days int64
	t := duration.Zero
	seen := 0

	// Stage 1: date part, designators in Y, M, W, D order.
	order := "YMWD"
	for s.pos < len(text) && upper(text[s.pos]) != 'T' {
		at := s.pos
		v, _, hasFrac, unit, err := s.number()
		if err != nil {
			return DateTimePeriod{}, err
		}
		i := strings.IndexByte(order, unit)
		if i < 0 || hasFrac {
			s.pos = at
			return DateTimePeriod{}, s.mismatch("expected a whole number of Y, M, W or D in that order")
		}
		order = order[i+1:]
		switch unit {
		case 'Y':
			years = v
		case 'M':
			months = v
		case 'W':
			weeks = v
		case 'D':
			days = v
		}
		seen++
	}

	// Stage 2: time part, designators in H, M, S order.
	if s.pos < len(text) {
		s.pos++
		order = "HMS"
		timeSeen := 0
		for s.pos < len(text) {
			at := s.pos
			v, frac, hasFrac, unit, err := s.number()
			if err != nil {
				return DateTimePeriod{}, err
			}
			i := strings.IndexByte(order, unit)
			if i < 0 || (hasFrac && unit != 'S') {
				s.pos = at
				return DateTimePeriod{}, s.mismatch("expected H, M or S in that order, with a fraction on S only")
			}
			order = order[i+1:]
			var part duration.Duration
			switch unit {
			case 'H':
				part = duration.Of(v, duration.Hour)
			case 'M':
				part = duration.Of(v, duration.Minute)
			case 'S':
				part = duration.New(v, frac)
			}
			if t, err = t.Add(part); err != nil || t.IsInfinite() || part.IsInfinite() {
				return DateTimePeriod{}, s.overflow("time part")
			}
			timeSeen++
		}
		if timeSeen == 0 {
			return DateTimePeriod{}, s.mismatch("expected a time component after 'T'")
		}
		seen += timeSeen
	}
	if seen == 0 {
		return DateTimePeriod{}, s.mismatch("expected at least one component")
	}

	// Stage 3: weeks fold into days, then everything must fit an int.
	wd, overflow := mathx.Mul64(weeks, 7)
	if !overflow {
		days, overflow = mathx.Add64(days, wd)
	}
	y, ok1 := toInt(years)
	mo, ok2 := toInt(months)
	d, ok3 := toInt(days)
	if overflow || !ok1 || !ok2 || !ok3 {
		return DateTimePeriod{}, s.overflow("date part")
	}
	p := DateTimePeriod{DatePeriod: DatePeriod{Years: y, Months: mo, Days: d}, Time: t}
	if neg {
		var err error
		if p, err = p.Neg(); err != nil {
			return DateTimePeriod{}, err
		}
	}
	return p, nil
}

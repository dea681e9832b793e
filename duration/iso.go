// SPDX-License-Identifier: MIT
// Package: lvtime/duration
//
// iso.go — ISO-8601 duration text.
//
// Printing: [-]PT{h}H{m}M{s}[.f]S with hours unbounded (no day part), only
// non-zero components, a seconds part whenever nothing else is printed, and
// the fraction in groups of three digits. Zero is PT0S; the sentinels are
// INF and -INF.
//
// Parsing: [-+]P[nD][T[nH][nM][n[.f]S]] where every n may carry its own
// sign, designators are case-insensitive, the fraction uses '.' or ','
// with 1..9 digits, and at least one component is present. INF, +INF and
// -INF are accepted. Magnitudes beyond the finite range saturate.

package duration

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtime"
)

// String returns the ISO-8601 form.
func (d Duration) String() string {
	switch d {
	case Infinite:
		return "INF"
	case NegInfinite:
		return "-INF"
	case Zero:
		return "PT0S"
	}

	buf := make([]byte, 0, 32)
	if d.Sign() < 0 {
		buf = append(buf, '-')
	}
	h, m, s, ns := d.Abs().Components()
	buf = append(buf, 'P', 'T')
	if h != 0 {
		buf = append(strconv.AppendInt(buf, h, 10), 'H')
	}
	if m != 0 {
		buf = append(strconv.AppendInt(buf, int64(m), 10), 'M')
	}
	if s != 0 || ns != 0 || (h == 0 && m == 0) {
		buf = strconv.AppendInt(buf, int64(s), 10)
		if ns != 0 {
			buf = appendFraction(append(buf, '.'), ns)
		}
		buf = append(buf, 'S')
	}

	return string(buf)
}

// appendFraction prints ns as digits trimmed to a multiple of three.
func appendFraction(dst []byte, ns int) []byte {
	var digits [9]byte
	for i := 8; i >= 0; i-- {
		digits[i] = byte('0' + ns%10)
		ns /= 10
	}
	n := 9
	for n > 3 && digits[n-1] == '0' && digits[n-2] == '0' && digits[n-3] == '0' {
		n -= 3
	}
	return append(dst, digits[:n]...)
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

type scanner struct {
	in  string
	pos int
}

func (s *scanner) fail(msg string) error {
	return fmt.Errorf("duration: Parse: %w", lvtime.NewParseError(s.in, s.pos, msg))
}

func (s *scanner) peek() byte {
	if s.pos < len(s.in) {
		return s.in[s.pos]
	}
	return 0
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// component is one [-+]n[.f] and its designator.
type component struct {
	whole *big.Int
	frac  int64 // nanoseconds, sign applied
	has   bool  // a fraction was present
	unit  byte  // upper-case designator
}

func (s *scanner) component() (component, error) {
	start := s.pos
	neg := false
	if c := s.peek(); c == '+' || c == '-' {
		neg = c == '-'
		s.pos++
	}
	digitsAt := s.pos
	for s.pos < len(s.in) && s.in[s.pos] >= '0' && s.in[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == digitsAt {
		s.pos = start
		return component{}, s.fail("expected number")
	}
	whole, _ := new(big.Int).SetString(s.in[digitsAt:s.pos], 10)
	c := component{whole: whole}
	if p := s.peek(); p == '.' || p == ',' {
		s.pos++
		fracAt := s.pos
		for s.pos < len(s.in) && s.in[s.pos] >= '0' && s.in[s.pos] <= '9' {
			s.pos++
		}
		n := s.pos - fracAt
		if n < 1 || n > 9 {
			return component{}, s.fail("expected 1 to 9 fraction digits")
		}
		f, _ := strconv.ParseInt(s.in[fracAt:s.pos], 10, 64)
		for i := n; i < 9; i++ {
			f *= 10
		}
		c.frac, c.has = f, true
	}
	if s.pos >= len(s.in) {
		return component{}, s.fail("expected designator")
	}
	c.unit = upper(s.in[s.pos])
	s.pos++
	if neg {
		c.whole.Neg(c.whole)
		c.frac = -c.frac
	}
	return c, nil
}

// Parse reads the ISO-8601 duration grammar.
func Parse(text string) (Duration, error) {
	switch text {
	case "INF", "+INF":
		return Infinite, nil
	case "-INF":
		return NegInfinite, nil
	}

	s := &scanner{in: text}
	neg := false
	if c := s.peek(); c == '+' || c == '-' {
		neg = c == '-'
		s.pos++
	}
	if upper(s.peek()) != 'P' {
		return Zero, s.fail("expected 'P'")
	}
	s.pos++

	total := new(big.Int)
	add := func(c component, unit int64) {
		v := new(big.Int).Mul(c.whole, big.NewInt(unit))
		total.Add(total, v)
	}

	// Stage 1: optional day part.
	seen := 0
	if s.pos < len(text) && upper(s.peek()) != 'T' {
		c, err := s.component()
		if err != nil {
			return Zero, err
		}
		if c.unit != 'D' || c.has {
			s.pos--
			return Zero, s.fail("expected 'D' or 'T'")
		}
		add(c, int64(Day))
		seen++
	}

	// Stage 2: time part, designators strictly in H, M, S order.
	if upper(s.peek()) == 'T' {
		s.pos++
		order := "HMS"
		timeSeen := 0
		for s.pos < len(text) {
			c, err := s.component()
			if err != nil {
				return Zero, err
			}
			i := strings.IndexByte(order, c.unit)
			if i < 0 {
				s.pos--
				return Zero, s.fail("expected 'H', 'M' or 'S' in that order")
			}
			if c.has && c.unit != 'S' {
				s.pos--
				return Zero, s.fail("only seconds may have a fraction")
			}
			order = order[i+1:]
			switch c.unit {
			case 'H':
				add(c, int64(Hour))
			case 'M':
				add(c, int64(Minute))
			case 'S':
				add(c, int64(Second))
				total.Add(total, big.NewInt(c.frac))
			}
			timeSeen++
		}
		if timeSeen == 0 {
			return Zero, s.fail("expected a time component after 'T'")
		}
		seen += timeSeen
	}

	if s.pos != len(text) {
		return Zero, s.fail("unexpected trailing text")
	}
	if seen == 0 {
		return Zero, s.fail("expected at least one component")
	}
	if neg {
		total.Neg(total)
	}

	return fromBigNanos(total), nil
}

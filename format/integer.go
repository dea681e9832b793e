// SPDX-License-Identifier: MIT
// Package: lvtime/format
//
// integer.go — the lenient whole-number path used by epoch-based
// constructors. It bypasses the directive engine.

package format

import (
	"math"

	"github.com/katalvlaran/lvtime"
)

// ParseInteger reads an optionally signed decimal integer of any length.
// Values beyond the int64 range saturate and saturated reports it; the
// callers clamp further to their own range. Anything but [+-]digits is a
// *lvtime.ParseError.
func ParseInteger(text string) (n int64, saturated bool, err error) {
	pos := 0
	neg := false
	if pos < len(text) && (text[pos] == '+' || text[pos] == '-') {
		neg = text[pos] == '-'
		pos++
	}
	if pos == len(text) {
		return 0, false, lvtime.NewParseError(text, pos, "expected digits")
	}

	// accumulate the magnitude as a negative number so MinInt64 fits
	var acc int64
	for ; pos < len(text); pos++ {
		c := text[pos]
		if !isDigit(c) {
			return 0, false, lvtime.NewParseError(text, pos, "expected digit")
		}
		d := int64(c - '0')
		if saturated || acc < (math.MinInt64+d)/10 {
			saturated = true
			continue
		}
		acc = acc*10 - d
	}

	switch {
	case saturated && neg:
		return math.MinInt64, true, nil
	case saturated:
		return math.MaxInt64, true, nil
	case neg:
		return acc, false, nil
	case acc == math.MinInt64:
		return math.MaxInt64, true, nil
	default:
		return -acc, false, nil
	}
}

// SPDX-License-Identifier: MIT
// Package: lvtime/zone
//
// offset.go — Offset: a fixed distance from UTC in whole seconds.

package zone

import (
	"fmt"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/format"
)

// MaxOffsetSeconds bounds an Offset in either direction (18:00).
const MaxOffsetSeconds = 18 * 3600

// Offset is a UTC offset in seconds east of Greenwich, within ±18:00.
// The zero value is UTC.
type Offset struct {
	seconds int32
}

// UTC is the zero offset.
var UTC = Offset{}

// OffsetOfSeconds validates s.
func OffsetOfSeconds(s int) (Offset, error) {
	if s < -MaxOffsetSeconds || s > MaxOffsetSeconds {
		return Offset{}, fmt.Errorf("zone: OffsetOfSeconds(%d): %w", s, lvtime.ErrInvalidOffset)
	}
	return Offset{seconds: int32(s)}, nil
}

// NewOffset builds an offset from components that must share a sign:
// NewOffset(-5, -30, 0) is -05:30.
func NewOffset(h, m, s int) (Offset, error) {
	pos := h > 0 || m > 0 || s > 0
	neg := h < 0 || m < 0 || s < 0
	if pos && neg {
		return Offset{}, fmt.Errorf("zone: NewOffset(%d, %d, %d): mixed signs: %w", h, m, s, lvtime.ErrInvalidOffset)
	}
	if m < -59 || m > 59 || s < -59 || s > 59 {
		return Offset{}, fmt.Errorf("zone: NewOffset(%d, %d, %d): %w", h, m, s, lvtime.ErrInvalidOffset)
	}
	if h < -18 || h > 18 {
		return Offset{}, fmt.Errorf("zone: NewOffset(%d, %d, %d): %w", h, m, s, lvtime.ErrInvalidOffset)
	}
	return OffsetOfSeconds(h*3600 + m*60 + s)
}

// MustOffset is OffsetOfSeconds for literals; it panics on error.
func MustOffset(s int) Offset {
	o, err := OffsetOfSeconds(s)
	if err != nil {
		panic(err)
	}
	return o
}

// Seconds returns the total offset.
func (o Offset) Seconds() int { return int(o.seconds) }

// Fields exposes o to the format engine.
func (o Offset) Fields() format.Fields {
	return format.Fields{OffsetSeconds: int(o.seconds), Set: format.FieldOffset}
}

// OffsetFormat formats and parses Offset values.
type OffsetFormat struct{ f *format.Format }

// NewOffsetFormat wraps f, which may only print the offset field.
func NewOffsetFormat(f *format.Format) (OffsetFormat, error) {
	if f == nil {
		return OffsetFormat{}, fmt.Errorf("zone: NewOffsetFormat(nil): %w", lvtime.ErrInvalidFormat)
	}
	if f.Requires()&^format.FieldOffset != 0 {
		return OffsetFormat{}, fmt.Errorf("zone: NewOffsetFormat: format needs more than an offset: %w", lvtime.ErrInvalidFormat)
	}
	return OffsetFormat{f: f}, nil
}

// MustOffsetFormat is NewOffsetFormat for package-level presets.
func MustOffsetFormat(f *format.Format) OffsetFormat {
	of, err := NewOffsetFormat(f)
	if err != nil {
		panic(err)
	}
	return of
}

func (of OffsetFormat) Format(o Offset) string { return of.f.Format(o.Fields()) }

func (of OffsetFormat) Parse(text string) (Offset, error) {
	v, err := of.f.Parse(text)
	if err != nil {
		return Offset{}, err
	}
	if !v.Set.Has(format.FieldOffset) {
		return Offset{}, lvtime.NewParseError(text, len(text), "offset is required")
	}
	return OffsetOfSeconds(v.OffsetSeconds)
}

// Offset presets.
var (
	ISOOffset      = MustOffsetFormat(format.ISOOffset)
	ISOBasicOffset = MustOffsetFormat(format.ISOBasicOffset)
)

// String returns Z, ±HH:MM or ±HH:MM:SS.
func (o Offset) String() string { return ISOOffset.Format(o) }

// ParseOffset accepts Z, z, ±HH, ±HH:MM and ±HH:MM:SS.
func ParseOffset(text string) (Offset, error) {
	o, err := ISOOffset.Parse(text)
	if err != nil {
		return Offset{}, fmt.Errorf("zone: ParseOffset: %w", err)
	}
	return o, nil
}

func (o Offset) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Offset) UnmarshalText(b []byte) error {
	v, err := ParseOffset(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

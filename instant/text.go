// SPDX-License-Identifier: MIT
// Package: lvtime/instant
//
// text.go — ISO text, typed formats and the lenient epoch paths.

package instant

import (
	"fmt"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/civil"
	"github.com/katalvlaran/lvtime/format"
	"github.com/katalvlaran/lvtime/zone"
)

const instantFields = format.DateTimeFields | format.FieldOffset | format.FieldZoneID

// Format formats instants and parses them back. A parse needs an offset
// or a zone identifier in the text.
type Format struct{ f *format.Format }

// NewFormat wraps f, which must be able to read an offset or a zone.
func NewFormat(f *format.Format) (Format, error) {
	if f == nil {
		return Format{}, fmt.Errorf("instant: NewFormat(nil): %w", lvtime.ErrInvalidFormat)
	}
	if f.Requires()&^instantFields != 0 {
		return Format{}, fmt.Errorf("instant: NewFormat: format needs fields an instant lacks: %w", lvtime.ErrInvalidFormat)
	}
	if f.Produces()&(format.FieldOffset|format.FieldZoneID) == 0 {
		return Format{}, fmt.Errorf("instant: NewFormat: format has no offset or zone: %w", lvtime.ErrInvalidFormat)
	}
	return Format{f: f}, nil
}

// MustFormat is NewFormat for package-level presets.
func MustFormat(f *format.Format) Format {
	ff, err := NewFormat(f)
	if err != nil {
		panic(err)
	}
	return ff
}

// Format prints i in UTC.
func (ff Format) Format(i Instant) string {
	s, err := ff.FormatIn(i, zone.UTCZone)
	if err != nil {
		// the bounds are the civil range in UTC
		panic(err)
	}
	return s
}

// FormatIn prints i as seen in z.
func (ff Format) FormatIn(i Instant, z zone.Zone) (string, error) {
	dt, err := i.ToDateTime(z)
	if err != nil {
		return "", err
	}
	f := dt.Fields()
	f.OffsetSeconds = i.OffsetIn(z).Seconds()
	f.ZoneID = z.ID()
	f.Set |= format.FieldOffset | format.FieldZoneID
	return ff.f.Format(f), nil
}

// Parse reads an instant. A parsed offset wins over a parsed zone; a zone
// alone resolves the local time with ResolveEarlier.
func (ff Format) Parse(text string) (Instant, error) {
	v, err := ff.f.Parse(text)
	if err != nil {
		return Instant{}, err
	}
	dt, err := civil.DateTimeFromFields(text, v)
	if err != nil {
		return Instant{}, err
	}
	var sec int64
	switch {
	case v.Set.Has(format.FieldOffset):
		o, err := zone.OffsetOfSeconds(v.OffsetSeconds)
		if err != nil {
			return Instant{}, err
		}
		sec = dt.EpochSecondsAt(o.Seconds())
	case v.Set.Has(format.FieldZoneID):
		z, err := zone.Of(v.ZoneID)
		if err != nil {
			return Instant{}, err
		}
		sec = z.ToEpochSeconds(dt, zone.ResolveEarlier)
	default:
		return Instant{}, lvtime.NewParseError(text, len(text), "offset or zone is required")
	}
	if sec < MinEpochSecond || sec > MaxEpochSecond {
		return Instant{}, fmt.Errorf("instant: %q is outside [%v, %v]: %w", text, Min, Max, lvtime.ErrRangeOverflow)
	}
	return Instant{sec: sec, nsec: int32(dt.Nanosecond())}, nil
}

// Presets.
var (
	ISO      = MustFormat(format.ISODateTimeOffset)
	ISOBasic = MustFormat(format.ISOBasicDateTimeOffset)
	RFC1123  = MustFormat(format.RFC1123)
)

// String is the extended ISO form in UTC, e.g. 2021-03-28T01:30:00Z.
func (i Instant) String() string { return ISO.Format(i) }

// Parse reads the extended ISO form with any offset.
func Parse(text string) (Instant, error) {
	i, err := ISO.Parse(text)
	if err != nil {
		return Instant{}, fmt.Errorf("instant: Parse: %w", err)
	}
	return i, nil
}

// ParseEpochSeconds reads a signed integer of any length and clamps.
func ParseEpochSeconds(text string) (Instant, error) {
	n, _, err := format.ParseInteger(text)
	if err != nil {
		return Instant{}, fmt.Errorf("instant: ParseEpochSeconds: %w", err)
	}
	return FromEpochSeconds(n, 0), nil
}

// ParseEpochMilliseconds reads a signed integer of any length and clamps.
func ParseEpochMilliseconds(text string) (Instant, error) {
	n, _, err := format.ParseInteger(text)
	if err != nil {
		return Instant{}, fmt.Errorf("instant: ParseEpochMilliseconds: %w", err)
	}
	return FromEpochMilliseconds(n), nil
}

func (i Instant) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *Instant) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

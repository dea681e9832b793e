// SPDX-License-Identifier: MIT
// Package: lvtime/instant
//
// zoned.go — conversion between instants and local date-times in a zone.

package instant

import (
	"fmt"

	"github.com/katalvlaran/lvtime/civil"
	"github.com/katalvlaran/lvtime/zone"
)

// OffsetIn returns the offset z applies at i.
func (i Instant) OffsetIn(z zone.Zone) zone.Offset { return z.OffsetAt(i.sec) }

// ToDateTime returns the local date-time of i in z. Near Min and Max a
// positive or negative offset can leave the civil range, which fails with
// lvtime.ErrRangeOverflow.
func (i Instant) ToDateTime(z zone.Zone) (civil.DateTime, error) {
	dt, err := civil.DateTimeFromEpochSeconds(i.sec, int(i.nsec), i.OffsetIn(z).Seconds())
	if err != nil {
		return civil.DateTime{}, fmt.Errorf("instant: ToDateTime(%d.%09ds, %s): %w", i.sec, i.nsec, z.ID(), err)
	}
	return dt, nil
}

// Zoned is an instant together with its local date-time and offset in a
// zone.
type Zoned struct {
	at     Instant
	local  civil.DateTime
	offset zone.Offset
	zone   zone.Zone
}

// AtZone pairs i with its view in z.
func (i Instant) AtZone(z zone.Zone) (Zoned, error) {
	dt, err := i.ToDateTime(z)
	if err != nil {
		return Zoned{}, err
	}
	return Zoned{at: i, local: dt, offset: i.OffsetIn(z), zone: z}, nil
}

func (zd Zoned) DateTime() civil.DateTime { return zd.local }
func (zd Zoned) Offset() zone.Offset      { return zd.offset }
func (zd Zoned) Zone() zone.Zone          { return zd.zone }

// Instant recomputes the instant from the local date-time and offset.
func (zd Zoned) Instant() Instant {
	return FromEpochSeconds(zd.local.EpochSecondsAt(zd.offset.Seconds()), int64(zd.local.Nanosecond()))
}

// String is the ISO date-time with offset, followed by the zone in brackets
// unless the zone is the offset itself.
func (zd Zoned) String() string {
	s := zd.local.String() + zd.offset.String()
	if id := zd.zone.ID(); id != "" && id != zd.offset.String() {
		s += "[" + id + "]"
	}
	return s
}

// FromDateTime resolves dt in z; gaps shift forward and overlaps follow p.
func FromDateTime(dt civil.DateTime, z zone.Zone, p zone.Policy) Instant {
	return FromEpochSeconds(z.ToEpochSeconds(dt, p), int64(dt.Nanosecond()))
}

// FromDateTimePreferring resolves dt in z keeping preferred through an
// overlap.
func FromDateTimePreferring(dt civil.DateTime, z zone.Zone, preferred zone.Offset) Instant {
	return FromEpochSeconds(z.ToEpochSecondsPreferring(dt, preferred), int64(dt.Nanosecond()))
}

// FromDateTimeOffset treats dt as local time at o.
func FromDateTimeOffset(dt civil.DateTime, o zone.Offset) Instant {
	return FromEpochSeconds(dt.EpochSecondsAt(o.Seconds()), int64(dt.Nanosecond()))
}

// StartOfDay returns the first instant of d in z. When midnight is skipped
// that is the transition ending the gap.
func StartOfDay(d civil.Date, z zone.Zone) Instant {
	dt := d.AtStartOfDay()
	if r := z.Resolve(dt); r.Kind == zone.Gap {
		return FromEpochSeconds(r.At, 0)
	}
	return FromDateTime(dt, z, zone.ResolveEarlier)
}

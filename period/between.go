// SPDX-License-Identifier: MIT
// Package: lvtime/period
//
// between.go — the difference algorithm and its inverse.
//
// Dates: whole months first, compared by (month, day) so that a day-of-month
// that does not exist yet does not count the month; then the days left after
// adding those months with month-end clamping. Adding the result back always
// lands on the end date. The operation is not antisymmetric:
// Between(2021-05-31, 2021-04-01) is -P1M29D while Between(2021-04-01,
// 2021-05-31) is P1M30D.
//
// Instants: the same on local date-times in a zone, where the end date is
// pulled one day towards the start when its time of day has not yet reached
// the start's. Every intermediate local date-time is resolved in the zone
// keeping the previous offset where it is still valid, and the remainder is
// the exact duration to the end instant.

package period

import (
	"fmt"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/civil"
	"github.com/katalvlaran/lvtime/duration"
	"github.com/katalvlaran/lvtime/instant"
	"github.com/katalvlaran/lvtime/internal/mathx"
	"github.com/katalvlaran/lvtime/zone"
)

// Between returns the period from a to b, with a + Between(a, b) == b.
func Between(a, b civil.Date) DatePeriod {
	months := a.MonthsUntil(b)
	// a + months lies between a and b
	mid, _ := a.AddMonths(months)
	return DatePeriod{Years: int(months / 12), Months: int(months % 12), Days: int(mid.DaysUntil(b))}
}

// AddToDate adds the months of p (clamping to month end) and then its days.
func AddToDate(d civil.Date, p DatePeriod) (civil.Date, error) {
	r, err := d.AddMonths(p.TotalMonths())
	if err == nil {
		r, err = r.AddDays(int64(p.Days))
	}
	if err != nil {
		return civil.Date{}, fmt.Errorf("period: AddToDate(%v, %v): %w", d, p, err)
	}
	return r, nil
}

// SubFromDate subtracts months and then days.
func SubFromDate(d civil.Date, p DatePeriod) (civil.Date, error) {
	r, err := d.AddMonths(mathx.SaturatingMul64(p.TotalMonths(), -1))
	if err == nil {
		r, err = r.AddDays(-int64(p.Days))
	}
	if err != nil {
		return civil.Date{}, fmt.Errorf("period: SubFromDate(%v, %v): %w", d, p, err)
	}
	return r, nil
}

// endDate is the date of end, moved one day towards start when the time of
// day has not completed a full day.
func endDate(start, end civil.DateTime) civil.Date {
	sd, ed := start.Date(), end.Date()
	var shifted civil.Date
	var err error
	switch {
	case ed.After(sd) && end.Time().Before(start.Time()):
		shifted, err = ed.AddDays(-1)
	case ed.Before(sd) && end.Time().After(start.Time()):
		shifted, err = ed.AddDays(1)
	default:
		return ed
	}
	if err != nil {
		return ed
	}
	return shifted
}

// local is an instant's view in a zone.
type local struct {
	dt  civil.DateTime
	off zone.Offset
}

func localOf(i instant.Instant, z zone.Zone) (local, error) {
	zd, err := i.AtZone(z)
	if err != nil {
		return local{}, err
	}
	return local{dt: zd.DateTime(), off: zd.Offset()}, nil
}

// plusMonths and plusDays step a local date-time and resolve it in z.
func plusMonths(l local, n int64, z zone.Zone) (instant.Instant, local, error) {
	dt, err := l.dt.AddMonths(n)
	if err != nil {
		return instant.Instant{}, local{}, err
	}
	return resolve(dt, l.off, z)
}

func plusDays(l local, n int64, z zone.Zone) (instant.Instant, local, error) {
	dt, err := l.dt.AddDays(n)
	if err != nil {
		return instant.Instant{}, local{}, err
	}
	return resolve(dt, l.off, z)
}

func resolve(dt civil.DateTime, preferred zone.Offset, z zone.Zone) (instant.Instant, local, error) {
	i := instant.FromDateTimePreferring(dt, z, preferred)
	l, err := localOf(i, z)
	return i, l, err
}

// BetweenInstants returns the period from a to b as seen in z, with
// AddToInstant(a, BetweenInstants(a, b, z), z) == b.
func BetweenInstants(a, b instant.Instant, z zone.Zone) (DateTimePeriod, error) {
	la, err := localOf(a, z)
	if err != nil {
		return DateTimePeriod{}, fmt.Errorf("period: BetweenInstants: %w", err)
	}
	lb, err := localOf(b, z)
	if err != nil {
		return DateTimePeriod{}, fmt.Errorf("period: BetweenInstants: %w", err)
	}

	// Stage 1: whole months on the local timeline.
	months := la.dt.Date().MonthsUntil(endDate(la.dt, lb.dt))
	_, l1, err := plusMonths(la, months, z)
	if err != nil {
		return DateTimePeriod{}, fmt.Errorf("period: BetweenInstants: %w", err)
	}

	// Stage 2: whole days after those months.
	days := l1.dt.Date().DaysUntil(endDate(l1.dt, lb.dt))
	i2, _, err := plusDays(l1, days, z)
	if err != nil {
		return DateTimePeriod{}, fmt.Errorf("period: BetweenInstants: %w", err)
	}

	// Stage 3: exact remainder on the timeline.
	return DateTimePeriod{
		DatePeriod: DatePeriod{Years: int(months / 12), Months: int(months % 12), Days: int(days)},
		Time:       i2.Until(b),
	}, nil
}

// AddToInstant applies p in z: months, then days on the local timeline,
// then the exact time part. Results outside the civil range of z fail with
// lvtime.ErrRangeOverflow; the time part saturates like Instant.Add.
func AddToInstant(i instant.Instant, p DateTimePeriod, z zone.Zone) (instant.Instant, error) {
	l, err := localOf(i, z)
	if err != nil {
		return instant.Instant{}, fmt.Errorf("period: AddToInstant: %w", err)
	}
	at := i
	if months := p.TotalMonths(); months != 0 {
		if at, l, err = plusMonths(l, months, z); err != nil {
			return instant.Instant{}, fmt.Errorf("period: AddToInstant: %w", err)
		}
	}
	if p.Days != 0 {
		if at, _, err = plusDays(l, int64(p.Days), z); err != nil {
			return instant.Instant{}, fmt.Errorf("period: AddToInstant: %w", err)
		}
	}
	return at.Add(p.Time), nil
}

// Unit is a unit for UnitsBetween.
type Unit uint8

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
	Century
)

var timeUnits = [...]duration.Unit{
	Nanosecond:  duration.Nanosecond,
	Microsecond: duration.Microsecond,
	Millisecond: duration.Millisecond,
	Second:      duration.Second,
	Minute:      duration.Minute,
	Hour:        duration.Hour,
}

// UnitsBetween counts whole units from a to b, truncated towards zero. Units
// up to Hour are exact; Day and longer are calendar units in z.
func UnitsBetween(a, b instant.Instant, u Unit, z zone.Zone) (int64, error) {
	if u <= Hour {
		return a.Until(b).InWhole(timeUnits[u]), nil
	}
	if u > Century {
		return 0, fmt.Errorf("period: UnitsBetween: unit %d: %w", u, lvtime.ErrInvalidCalendarField)
	}
	la, err := localOf(a, z)
	if err != nil {
		return 0, fmt.Errorf("period: UnitsBetween: %w", err)
	}
	lb, err := localOf(b, z)
	if err != nil {
		return 0, fmt.Errorf("period: UnitsBetween: %w", err)
	}
	end := endDate(la.dt, lb.dt)

	switch u {
	case Day:
		return la.dt.Date().DaysUntil(end), nil
	case Week:
		return la.dt.Date().DaysUntil(end) / 7, nil
	}
	months := la.dt.Date().MonthsUntil(end)
	switch u {
	case Quarter:
		return months / 3, nil
	case Year:
		return months / 12, nil
	case Century:
		return months / 1200, nil
	}
	return months, nil
}

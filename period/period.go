// SPDX-License-Identifier: MIT
// Package: lvtime/period
//
// period.go — DatePeriod and DateTimePeriod values.

package period

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/duration"
	"github.com/katalvlaran/lvtime/internal/mathx"
)

// DatePeriod is a calendar amount. Components are kept as given: P14M is
// not folded into P1Y2M, and months never convert into days.
type DatePeriod struct {
	Years  int
	Months int
	Days   int
}

// TotalMonths returns Years*12 + Months, saturating at the int64 range.
func (p DatePeriod) TotalMonths() int64 {
	return mathx.SaturatingAdd64(mathx.SaturatingMul64(int64(p.Years), 12), int64(p.Months))
}

// Equal compares total months and days, so P1Y equals P12M.
func (p DatePeriod) Equal(o DatePeriod) bool {
	return p.TotalMonths() == o.TotalMonths() && p.Days == o.Days
}

// Normalized folds months into years; both end up with the same sign.
func (p DatePeriod) Normalized() DatePeriod {
	total := p.TotalMonths()
	return DatePeriod{Years: int(total / 12), Months: int(total % 12), Days: p.Days}
}

func (p DatePeriod) IsZero() bool { return p.Years == 0 && p.Months == 0 && p.Days == 0 }

func negInt(v int) (int, bool) {
	if v == math.MinInt {
		return 0, false
	}
	return -v, true
}

func addInt(a, b int) (int, bool) {
	s := a + b
	if (s > a) != (b > 0) {
		return 0, false
	}
	return s, true
}

// Neg negates every component.
func (p DatePeriod) Neg() (DatePeriod, error) {
	y, ok1 := negInt(p.Years)
	m, ok2 := negInt(p.Months)
	d, ok3 := negInt(p.Days)
	if !ok1 || !ok2 || !ok3 {
		return DatePeriod{}, fmt.Errorf("period: Neg(%v): %w", p, lvtime.ErrRangeOverflow)
	}
	return DatePeriod{Years: y, Months: m, Days: d}, nil
}

// Plus adds componentwise.
func (p DatePeriod) Plus(o DatePeriod) (DatePeriod, error) {
	y, ok1 := addInt(p.Years, o.Years)
	m, ok2 := addInt(p.Months, o.Months)
	d, ok3 := addInt(p.Days, o.Days)
	if !ok1 || !ok2 || !ok3 {
		return DatePeriod{}, fmt.Errorf("period: %v.Plus(%v): %w", p, o, lvtime.ErrRangeOverflow)
	}
	return DatePeriod{Years: y, Months: m, Days: d}, nil
}

// DateTimePeriod is a DatePeriod plus an exact time amount.
type DateTimePeriod struct {
	DatePeriod
	Time duration.Duration
}

// NewDateTimePeriod sums the time components into Time. A time amount
// beyond the finite duration range fails with lvtime.ErrRangeOverflow.
func NewDateTimePeriod(years, months, days int, hours, minutes, seconds, nanos int64) (DateTimePeriod, error) {
	t := duration.Zero
	for _, part := range []duration.Duration{
		duration.Of(hours, duration.Hour),
		duration.Of(minutes, duration.Minute),
		duration.Of(seconds, duration.Second),
		duration.Of(nanos, duration.Nanosecond),
	} {
		var err error
		if part.IsInfinite() {
			return DateTimePeriod{}, fmt.Errorf("period: NewDateTimePeriod: time part: %w", lvtime.ErrRangeOverflow)
		}
		if t, err = t.Add(part); err != nil || t.IsInfinite() {
			return DateTimePeriod{}, fmt.Errorf("period: NewDateTimePeriod: time part: %w", lvtime.ErrRangeOverflow)
		}
	}
	return DateTimePeriod{DatePeriod: DatePeriod{Years: years, Months: months, Days: days}, Time: t}, nil
}

// Hours and the other accessors read the components of Time; they share
// its sign.
func (p DateTimePeriod) Hours() int64 {
	h, _, _, _ := p.Time.Components()
	return h
}

func (p DateTimePeriod) Minutes() int {
	_, m, _, _ := p.Time.Components()
	return m
}

func (p DateTimePeriod) Seconds() int {
	_, _, s, _ := p.Time.Components()
	return s
}

func (p DateTimePeriod) Nanoseconds() int {
	_, _, _, ns := p.Time.Components()
	return ns
}

func (p DateTimePeriod) IsZero() bool { return p.DatePeriod.IsZero() && p.Time.IsZero() }

// Equal compares the date parts like DatePeriod.Equal and the exact times.
func (p DateTimePeriod) Equal(o DateTimePeriod) bool {
	return p.DatePeriod.Equal(o.DatePeriod) && p.Time == o.Time
}

// Neg negates the date and time parts.
func (p DateTimePeriod) Neg() (DateTimePeriod, error) {
	d, err := p.DatePeriod.Neg()
	if err != nil {
		return DateTimePeriod{}, err
	}
	return DateTimePeriod{DatePeriod: d, Time: p.Time.Neg()}, nil
}

// Plus adds componentwise.
func (p DateTimePeriod) Plus(o DateTimePeriod) (DateTimePeriod, error) {
	d, err := p.DatePeriod.Plus(o.DatePeriod)
	if err != nil {
		return DateTimePeriod{}, err
	}
	t, err := p.Time.Add(o.Time)
	if err != nil || t.IsInfinite() {
		return DateTimePeriod{}, fmt.Errorf("period: %v.Plus(%v): %w", p, o, lvtime.ErrRangeOverflow)
	}
	return DateTimePeriod{DatePeriod: d, Time: t}, nil
}

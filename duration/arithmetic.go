// SPDX-License-Identifier: MIT
// Package: lvtime/duration
//
// arithmetic.go — saturating, sentinel-aware arithmetic.

package duration

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvtime"
)

// Add returns d+o. Opposite sentinels are indeterminate.
func (d Duration) Add(o Duration) (Duration, error) {
	// Stage 1: sentinels absorb finite operands.
	switch di, oi := d.IsInfinite(), o.IsInfinite(); {
	case di && oi && d.sec != o.sec:
		return Zero, fmt.Errorf("duration: %v + %v: %w", d, o, lvtime.ErrArithmeticIndeterminate)
	case di:
		return d, nil
	case oi:
		return o, nil
	}

	// Stage 2: |sec| <= 2^62-1 on both sides, so the sum fits in int64.
	return New(d.sec+o.sec, int64(d.nsec)+int64(o.nsec)), nil
}

// Sub returns d-o. Equal sentinels are indeterminate.
func (d Duration) Sub(o Duration) (Duration, error) {
	r, err := d.Add(o.Neg())
	if err != nil {
		return Zero, fmt.Errorf("duration: %v - %v: %w", d, o, lvtime.ErrArithmeticIndeterminate)
	}
	return r, nil
}

// Neg returns -d; the sentinels swap.
func (d Duration) Neg() Duration {
	switch d {
	case Infinite:
		return NegInfinite
	case NegInfinite:
		return Infinite
	}
	return Duration{sec: -d.sec, nsec: -d.nsec}
}

// Abs returns |d|.
func (d Duration) Abs() Duration {
	if d.Sign() < 0 {
		return d.Neg()
	}
	return d
}

// Mul returns d*k, saturating. Zero times a sentinel is indeterminate.
func (d Duration) Mul(k int64) (Duration, error) {
	if d.IsInfinite() {
		if k == 0 {
			return Zero, fmt.Errorf("duration: %v * 0: %w", d, lvtime.ErrArithmeticIndeterminate)
		}
		if k < 0 {
			return d.Neg(), nil
		}
		return d, nil
	}
	if k == 0 || d.IsZero() {
		return Zero, nil
	}
	return fromBigNanos(d.bigNanos().Mul(d.bigNanos(), big.NewInt(k))), nil
}

// Div returns d/k truncated towards zero at nanosecond precision. A
// non-zero duration divided by zero is the sentinel of its sign; zero
// divided by zero is indeterminate.
func (d Duration) Div(k int64) (Duration, error) {
	if k == 0 {
		if d.IsZero() {
			return Zero, fmt.Errorf("duration: 0 / 0: %w", lvtime.ErrArithmeticIndeterminate)
		}
		return sentinel(int64(d.Sign())), nil
	}
	if d.IsInfinite() {
		if k < 0 {
			return d.Neg(), nil
		}
		return d, nil
	}
	return fromBigNanos(new(big.Int).Quo(d.bigNanos(), big.NewInt(k))), nil
}

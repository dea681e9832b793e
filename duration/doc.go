// Package duration provides Duration: an exact, signed, nanosecond-precision
// elapsed time with two sentinel values, Infinite and NegInfinite.
//
// A finite Duration holds at most MaxSeconds whole seconds plus a fraction,
// both with the same sign. Arithmetic never wraps:
//
//   - results beyond the finite range become the signed sentinel;
//   - a sentinel absorbs finite operands (Infinite + 5s == Infinite);
//   - Infinite - Infinite, Infinite + NegInfinite, 0 * Infinite and 0 / 0
//     are undefined and return lvtime.ErrArithmeticIndeterminate.
//
// The sentinels sit at the ends of the total order used by Compare.
//
// Conversion to time.Duration saturates at math.MaxInt64 and math.MinInt64,
// and FromStd reads those two values back as the sentinels. Round-tripping
// a value beyond roughly 292 years through time.Duration therefore yields a
// sentinel, not the original value. This boundary is part of the contract.
//
// Text is the ISO-8601 duration grammar, e.g. PT1H30M, -PT0.500S, PT0S,
// with INF and -INF for the sentinels.
package duration

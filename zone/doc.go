// Package zone maps between instants and local date-times.
//
// A Zone is either Fixed (one Offset forever) or RuleBased (a table of
// Transitions, each changing the offset at an instant). Zones are immutable
// values and safe to share between goroutines.
//
// Resolving local time:
//
//   - Resolve classifies a civil.DateTime as Unique, Gap (skipped by a
//     forward transition) or Overlap (repeated by a backward one).
//   - ToEpochSeconds moves gap times forward by the length of the gap and
//     picks the earlier or later instant of an overlap according to Policy.
//   - ToEpochSecondsPreferring keeps a preferred offset when an overlap
//     allows it, which keeps repeated arithmetic stable across a fold.
//
// Region data:
//
// A Database loads regions through time.LoadLocation (with the tzdata
// embedded in this package as fallback) or from TZif files on an afero
// filesystem, and caches the resulting tables. Tables are precomputed for
// [DefaultFromYear, DefaultToYear); later instants repeat the final 400-year
// Gregorian cycle, which reproduces recurring daylight saving rules exactly.
// Identifiers UTC, Z, GMT, UT, ±HH:MM and UTC±/GMT±/UT± prefixed offsets are
// recognised without any data.
package zone

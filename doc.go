// Package lvtime is a civil calendar and temporal-arithmetic engine: instants
// on the UTC timeline, calendar dates and clock times with no zone attached,
// exact durations, and calendar periods, together with correct arithmetic and
// ISO-8601 text conversion over all of them.
//
// What is in the box?
//
//   - civil/: Date, Time, DateTime: proleptic-Gregorian values with validation
//   - duration/: exact signed Duration with saturating, infinite-aware arithmetic
//   - zone/: UTC offsets, fixed and rule-based zones, the zone database
//   - instant/: Instant: a point on the timeline, zone-aware conversions
//   - period/: DatePeriod / DateTimePeriod and the difference algorithm
//   - format/: composable directive engine: one description, parser and formatter
//   - cmd/lvtime: command-line front end: parse, between, resolve, zones
//
// Guarantees:
//
//   - Every value type is immutable and safe to share between goroutines.
//   - Nothing panics at runtime; failures are sentinel errors declared in this
//     package and are matched with errors.Is.
//   - Duration and Instant saturate instead of wrapping; calendar types that
//     have no sentinel report ErrRangeOverflow.
//
// Quick example:
//
//	a := civil.MustDate(2021, civil.January, 31)
//	b := civil.MustDate(2021, civil.March, 1)
//	p := period.Between(a, b) // P1M1D: Jan 31 + 1 month clamps to Feb 28
//
//	go get github.com/katalvlaran/lvtime
package lvtime

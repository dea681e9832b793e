// Package instant provides Instant, a point on the UTC timeline with
// nanosecond precision and no leap seconds.
//
// Instants are bounded by Min and Max, the civil range seen in UTC, so every
// Instant has an ISO text form. Arithmetic with durations saturates at the
// bounds instead of failing, and infinite durations land on them; Until is
// exact because any two instants are less than 2^62 seconds apart.
//
// Conversion to local time goes through a zone.Zone: ToDateTime and AtZone
// for the total direction, FromDateTime and its variants for the partial
// one, where gaps and overlaps are settled by a zone.Policy or a preferred
// offset.
package instant

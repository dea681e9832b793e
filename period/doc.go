// Package period provides calendar periods and the difference algorithm
// between dates and between instants in a zone.
//
// A DatePeriod counts years, months and days; a DateTimePeriod adds an
// exact time part. Neither folds its components automatically (P14M stays
// P14M until Normalized), and months never convert into days because their
// length depends on where they are applied.
//
// Between and BetweenInstants compute periods such that adding the result
// back to the start gives the end exactly. They are not antisymmetric:
// month-end clamping makes Between(b, a) differ from the negation of
// Between(a, b) for some pairs.
package period

// Package format is the directive engine behind every text conversion in
// lvtime: a Builder accumulates an ordered list of directives (year, month,
// day, hour, fraction, offset, names, literals, optional and alternative
// sections) and compiles them into an immutable *Format that both parses and
// formats.
//
// The engine knows nothing about dates or instants. It reads and writes a
// neutral Fields bag, and the value packages (civil, zone, instant) wrap a
// *Format into a typed format that checks at build time that every field the
// format needs exists on the value type.
//
// Parsing contract:
//
//   - Directives consume input left to right; a fixed-width field consumes
//     exactly its width, a variable-width numeric field consumes the longest
//     digit run that still leaves room for the fixed-width numeric fields
//     directly after it.
//   - A mismatch fails the whole parse with a *lvtime.ParseError carrying
//     the byte position. Only Optional and Alternatives sections retry, and
//     only locally: once a branch matches it is committed.
//   - Field values are not range-checked here (month 13 parses as 13); the
//     typed wrappers validate and report lvtime.ErrInvalidCalendarField.
//     Offsets are the exception and are checked against ±18:00 at once.
//
// Formatting is deterministic and total.
//
// Example:
//
//	f, err := format.NewBuilder().
//		Day(format.PadNone).Char(' ').
//		MonthName(format.EnglishAbbreviatedMonths).Char(' ').
//		Year(format.YearISO).
//		Build()
//	fields, err := f.Parse("3 Jun 2008")
//
// Presets cover the extended and basic ISO-8601 families and RFC 1123.
package format

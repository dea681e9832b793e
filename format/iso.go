// SPDX-License-Identifier: MIT
// Package: lvtime/format
//
// iso.go — preset formats: extended and basic ISO-8601, RFC 1123.

package format

func secondsTail(sep bool) *Builder {
	b := NewBuilder()
	if sep {
		b.Char(':')
	}
	b.Second(PadZero).Optional(NewBuilder().Char('.').Fraction(1, 9))

	// seconds are always printed, but a parse may stop after the minutes
	return NewBuilder().Alternatives(b, NewBuilder())
}

func dateTimeSep() *Builder {
	return NewBuilder().Alternatives(NewBuilder().Char('T'), NewBuilder().Char('t'))
}

var (
	// ISODate is YYYY-MM-DD with the ISO year rules.
	ISODate = MustBuild(NewBuilder().
		Year(YearISO).Char('-').Month(PadZero).Char('-').Day(PadZero))

	// ISOBasicDate is YYYYMMDD.
	ISOBasicDate = MustBuild(NewBuilder().
			Year(YearISO).Month(PadZero).Day(PadZero))

	// ISOTime is HH:MM:SS[.fff], accepting HH:MM and 1..9 fraction digits.
	ISOTime = MustBuild(NewBuilder().
		Hour(PadZero).Char(':').Minute(PadZero).Embed(MustBuild(secondsTail(true))))

	// ISOBasicTime is HHMMSS[.fff].
	ISOBasicTime = MustBuild(NewBuilder().
			Hour(PadZero).Minute(PadZero).Embed(MustBuild(secondsTail(false))))

	// ISODateTime is the extended date and time joined by T (t on parse).
	ISODateTime = MustBuild(NewBuilder().
			Embed(ISODate).Embed(MustBuild(dateTimeSep())).Embed(ISOTime))

	// ISOBasicDateTime joins the basic date and time.
	ISOBasicDateTime = MustBuild(NewBuilder().
				Embed(ISOBasicDate).Embed(MustBuild(dateTimeSep())).Embed(ISOBasicTime))

	// ISOOffset is Z or ±HH:MM[:SS].
	ISOOffset = MustBuild(NewBuilder().Offset(OffsetISO))

	// ISOBasicOffset is Z or ±HH[MM[SS]].
	ISOBasicOffset = MustBuild(NewBuilder().Offset(OffsetISOBasic))

	// ISODateTimeOffset is ISODateTime followed by ISOOffset.
	ISODateTimeOffset = MustBuild(NewBuilder().Embed(ISODateTime).Embed(ISOOffset))

	// ISOBasicDateTimeOffset is ISOBasicDateTime followed by ISOBasicOffset.
	ISOBasicDateTimeOffset = MustBuild(NewBuilder().Embed(ISOBasicDateTime).Embed(ISOBasicOffset))

	// RFC1123 is "Tue, 3 Jun 2008 11:05:30 GMT". The day name is optional
	// on parse, zero seconds are omitted, and UT, Z or ±HHMM are accepted
	// in place of GMT.
	RFC1123 = MustBuild(NewBuilder().
		Alternatives(NewBuilder().DayOfWeek(EnglishAbbreviatedDays).Literal(", "), NewBuilder()).
		Day(PadNone).Char(' ').
		MonthName(EnglishAbbreviatedMonths).Char(' ').
		Year(YearISO).Char(' ').
		Hour(PadZero).Char(':').Minute(PadZero).
		Optional(NewBuilder().Char(':').Second(PadZero)).
		Char(' ').
		Alternatives(
			NewBuilder().Optional(NewBuilder().Offset(OffsetFourDigits), "GMT"),
			NewBuilder().Literal("UT"),
			NewBuilder().Literal("Z"),
		))
)

package format_test

import (
	"fmt"

	"github.com/katalvlaran/lvtime/format"
)

// ExampleBuilder builds a day-month-name-year format and uses it both ways.
func ExampleBuilder() {
	f, err := format.NewBuilder().
		Day(format.PadNone).Char(' ').
		MonthName(format.EnglishFullMonths).Char(' ').
		Year(format.YearISO).
		Build(format.WithCaseInsensitiveNames())
	if err != nil {
		fmt.Println(err)
		return
	}

	v, err := f.Parse("14 july 1789")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Year, v.Month, v.Day)
	fmt.Println(f.Format(v))
	// Output:
	// 1789 7 14
	// 14 July 1789
}

// ExampleFormat_Parse shows the position carried by a mismatch.
func ExampleFormat_Parse() {
	_, err := format.ISODateTime.Parse("2021-03-07 12:00")
	fmt.Println(err)
	// Output:
	// lvtime: cannot parse "2021-03-07 12:00" at position 10: expected "T"
}

package instant_test

import (
	"fmt"

	"github.com/katalvlaran/lvtime/civil"
	"github.com/katalvlaran/lvtime/duration"
	"github.com/katalvlaran/lvtime/instant"
	"github.com/katalvlaran/lvtime/zone"
)

// ExampleFromDateTime resolves a local time that falls into a gap.
func ExampleFromDateTime() {
	z, err := zone.Of("Europe/Berlin")
	if err != nil {
		fmt.Println(err)
		return
	}
	i := instant.FromDateTime(civil.MustDateTime(2021, civil.March, 28, 2, 30, 0, 0), z, zone.ResolveEarlier)
	zd, _ := i.AtZone(z)
	fmt.Println(i)
	fmt.Println(zd)
	// Output:
	// 2021-03-28T01:30:00Z
	// 2021-03-28T03:30:00+02:00[Europe/Berlin]
}

// ExampleInstant_Add saturates instead of overflowing.
func ExampleInstant_Add() {
	fmt.Println(instant.Max.Add(duration.Of(1, duration.Day)) == instant.Max)
	fmt.Println(instant.Epoch.Add(duration.Of(90, duration.Minute)))
	// Output:
	// true
	// 1970-01-01T01:30:00Z
}

package duration_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/duration"
)

// ExampleDuration_Add shows saturation and the indeterminate case.
func ExampleDuration_Add() {
	d, _ := duration.Infinite.Add(duration.Of(5, duration.Second))
	fmt.Println(d)

	_, err := duration.Infinite.Sub(duration.Infinite)
	fmt.Println(errors.Is(err, lvtime.ErrArithmeticIndeterminate))

	p, _ := duration.Parse("P1DT-1H")
	fmt.Println(p)
	// Output:
	// INF
	// true
	// PT23H
}

package zone_test

import (
	"fmt"

	"github.com/katalvlaran/lvtime/civil"
	"github.com/katalvlaran/lvtime/zone"
)

// ExampleZone_Resolve looks at the hour New York skips in March.
func ExampleZone_Resolve() {
	ny, err := zone.Of("America/New_York")
	if err != nil {
		fmt.Println(err)
		return
	}
	r := ny.Resolve(civil.MustDateTime(2024, civil.March, 10, 2, 30, 0, 0))
	fmt.Println(r.Kind, r.Before, r.After)

	r = ny.Resolve(civil.MustDateTime(2024, civil.November, 3, 1, 30, 0, 0))
	fmt.Println(r.Kind, r.Offsets())
	// Output:
	// Gap -05:00 -04:00
	// Overlap [-04:00 -05:00]
}

package lvtime_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvtime"
	"github.com/stretchr/testify/assert"
)

// TestParseError_UnwrapsToFormatMismatch verifies that positioned parse
// errors still match the shared sentinel after wrapping.
func TestParseError_UnwrapsToFormatMismatch(t *testing.T) {
	err := lvtime.NewParseError("2021-1x-01", 6, "expected digit")
	wrapped := fmt.Errorf("civil: ParseDate: %w", err)

	assert.ErrorIs(t, wrapped, lvtime.ErrFormatMismatch)
	assert.NotErrorIs(t, wrapped, lvtime.ErrInvalidCalendarField)

	var pe *lvtime.ParseError
	assert.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, 6, pe.Pos)
	assert.Contains(t, pe.Error(), `"2021-1x-01"`)
	assert.Contains(t, pe.Error(), "position 6")
}

// TestSentinels_Distinct guards against two kinds sharing one value.
func TestSentinels_Distinct(t *testing.T) {
	all := []error{
		lvtime.ErrInvalidCalendarField,
		lvtime.ErrFormatMismatch,
		lvtime.ErrZoneNotFound,
		lvtime.ErrInvalidOffset,
		lvtime.ErrRangeOverflow,
		lvtime.ErrArithmeticIndeterminate,
		lvtime.ErrInvalidFormat,
	}
	for i := range all {
		for j := range all {
			if i != j {
				assert.NotErrorIs(t, all[i], all[j])
			}
		}
	}
}

package duration_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Normalises carries nanoseconds and aligns signs.
func TestNew_Normalises(t *testing.T) {
	d := duration.New(1, -1)
	assert.Equal(t, int64(0), d.Seconds())
	assert.Equal(t, int32(999_999_999), d.Nanos())

	d = duration.New(-1, 1)
	assert.Equal(t, int64(0), d.Seconds())
	assert.Equal(t, int32(-999_999_999), d.Nanos())

	d = duration.New(0, 3_500_000_000)
	assert.Equal(t, int64(3), d.Seconds())
	assert.Equal(t, int32(500_000_000), d.Nanos())

	assert.Equal(t, duration.Of(90, duration.Minute), duration.New(5400, 0))
	assert.Equal(t, duration.Of(-1500, duration.Millisecond), duration.New(-1, -500_000_000))
	assert.Equal(t, duration.Of(2, duration.Day), duration.New(172800, 0))
}

// TestNew_Saturates maps magnitudes beyond MaxSeconds to the sentinels.
func TestNew_Saturates(t *testing.T) {
	assert.Equal(t, duration.Infinite, duration.New(duration.MaxSeconds+1, 0))
	assert.Equal(t, duration.NegInfinite, duration.New(-duration.MaxSeconds-1, 0))
	assert.Equal(t, duration.Infinite, duration.New(math.MaxInt64, math.MaxInt64))
	assert.False(t, duration.New(duration.MaxSeconds, 999_999_999).IsInfinite())
	assert.Equal(t, duration.Infinite, duration.Of(math.MaxInt64, duration.Hour))
	assert.Equal(t, duration.NegInfinite, duration.Of(math.MinInt64, duration.Day))
	assert.False(t, duration.Of(math.MaxInt64, duration.Nanosecond).IsInfinite())
}

// TestAdd_Sentinels covers absorption and indeterminate sums.
func TestAdd_Sentinels(t *testing.T) {
	five := duration.Of(5, duration.Second)

	r, err := duration.Infinite.Add(five)
	require.NoError(t, err)
	assert.Equal(t, duration.Infinite, r)

	r, err = five.Sub(duration.Infinite)
	require.NoError(t, err)
	assert.Equal(t, duration.NegInfinite, r)

	_, err = duration.Infinite.Sub(duration.Infinite)
	assert.ErrorIs(t, err, lvtime.ErrArithmeticIndeterminate)
	_, err = duration.Infinite.Add(duration.NegInfinite)
	assert.ErrorIs(t, err, lvtime.ErrArithmeticIndeterminate)

	r, err = duration.Infinite.Add(duration.Infinite)
	require.NoError(t, err)
	assert.Equal(t, duration.Infinite, r)
}

// TestAdd_SaturatesAtRange turns overflow into the sentinel.
func TestAdd_SaturatesAtRange(t *testing.T) {
	big := duration.New(duration.MaxSeconds, 0)
	r, err := big.Add(duration.Of(1, duration.Second))
	require.NoError(t, err)
	assert.Equal(t, duration.Infinite, r)

	r, err = big.Neg().Sub(big)
	require.NoError(t, err)
	assert.Equal(t, duration.NegInfinite, r)
}

// TestAddSub_Inverse checks (a + b) - b == a on random finite values.
func TestAddSub_Inverse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5_000; i++ {
		a := duration.New(rng.Int63n(1<<50)-(1<<49), rng.Int63n(2e9)-1e9)
		b := duration.New(rng.Int63n(1<<50)-(1<<49), rng.Int63n(2e9)-1e9)
		s, err := a.Add(b)
		require.NoError(t, err)
		back, err := s.Sub(b)
		require.NoError(t, err)
		require.Equal(t, a, back)
	}
}

// TestMulDiv covers scaling, division by zero and indeterminate forms.
func TestMulDiv(t *testing.T) {
	d := duration.New(1, 500_000_000)

	r, err := d.Mul(3)
	require.NoError(t, err)
	assert.Equal(t, duration.New(4, 500_000_000), r)

	r, err = d.Mul(-2)
	require.NoError(t, err)
	assert.Equal(t, duration.New(-3, 0), r)

	r, err = d.Mul(math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, duration.Infinite, r)

	_, err = duration.Infinite.Mul(0)
	assert.ErrorIs(t, err, lvtime.ErrArithmeticIndeterminate)
	r, err = duration.Infinite.Mul(-1)
	require.NoError(t, err)
	assert.Equal(t, duration.NegInfinite, r)

	r, err = d.Div(2)
	require.NoError(t, err)
	assert.Equal(t, duration.New(0, 750_000_000), r)

	r, err = duration.New(0, 1).Div(-3)
	require.NoError(t, err)
	assert.Equal(t, duration.Zero, r, "truncates towards zero")

	r, err = d.Neg().Div(0)
	require.NoError(t, err)
	assert.Equal(t, duration.NegInfinite, r)

	_, err = duration.Zero.Div(0)
	assert.ErrorIs(t, err, lvtime.ErrArithmeticIndeterminate)
}

// TestCompare puts the sentinels at the ends of the order.
func TestCompare(t *testing.T) {
	max := duration.New(duration.MaxSeconds, 999_999_999)
	assert.Equal(t, 1, duration.Infinite.Compare(max))
	assert.Equal(t, -1, duration.NegInfinite.Compare(max.Neg()))
	assert.Equal(t, -1, duration.New(0, -1).Compare(duration.Zero))
	assert.Equal(t, 0, duration.Of(60, duration.Second).Compare(duration.Of(1, duration.Minute)))
	assert.Equal(t, -1, duration.NegInfinite.Sign())
	assert.Equal(t, duration.Infinite, duration.NegInfinite.Abs())
}

// TestInWholeTruncateComponents covers unit conversion.
func TestInWholeTruncateComponents(t *testing.T) {
	d := duration.New(-3725, -5_000_000)
	assert.Equal(t, int64(-1), d.InWhole(duration.Hour))
	assert.Equal(t, int64(-3725005), d.InWhole(duration.Millisecond))
	assert.Equal(t, duration.New(-3720, 0), d.Truncate(duration.Minute))

	h, m, s, ns := d.Components()
	assert.Equal(t, int64(-1), h)
	assert.Equal(t, -2, m)
	assert.Equal(t, -5, s)
	assert.Equal(t, -5_000_000, ns)

	assert.Equal(t, int64(math.MaxInt64), duration.New(duration.MaxSeconds, 0).InWhole(duration.Nanosecond))
	assert.Equal(t, int64(math.MinInt64), duration.NegInfinite.InWhole(duration.Day))
}

// TestStd_LossyBoundary documents that the time.Duration bridge saturates.
func TestStd_LossyBoundary(t *testing.T) {
	d := duration.Of(90, duration.Minute)
	assert.Equal(t, 90*time.Minute, d.Std())
	assert.Equal(t, d, duration.FromStd(d.Std()))

	assert.Equal(t, time.Duration(math.MaxInt64), duration.Infinite.Std())
	assert.Equal(t, duration.Infinite, duration.FromStd(math.MaxInt64))
	assert.Equal(t, duration.NegInfinite, duration.FromStd(math.MinInt64))

	// finite but beyond ~292 years: the round trip lands on the sentinel
	huge := duration.Of(1000*365, duration.Day)
	assert.Equal(t, time.Duration(math.MaxInt64), huge.Std())
	assert.Equal(t, duration.Infinite, duration.FromStd(huge.Std()))
	assert.NotEqual(t, huge, duration.FromStd(huge.Std()))

	assert.Equal(t, duration.New(-1, -1), duration.FromStd(-time.Second-1))
}

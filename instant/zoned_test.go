package instant_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/civil"
	"github.com/katalvlaran/lvtime/instant"
	"github.com/katalvlaran/lvtime/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func berlin(t *testing.T) zone.Zone {
	t.Helper()
	z, err := zone.Of("Europe/Berlin")
	require.NoError(t, err)
	return z
}

// TestToDateTime_MatchesStdlib compares local views with time.Location.
func TestToDateTime_MatchesStdlib(t *testing.T) {
	z := berlin(t)
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(21))
	for n := 0; n < 5_000; n++ {
		sec := rng.Int63n(2*300*365*86400) - 200*365*86400
		i := instant.FromEpochSeconds(sec, rng.Int63n(1e9))
		dt, err := i.ToDateTime(z)
		require.NoError(t, err)

		ref := i.Std().In(loc)
		require.Equal(t, int64(ref.Year()), dt.Year())
		require.Equal(t, civil.Month(ref.Month()), dt.Month())
		require.Equal(t, ref.Day(), dt.Day())
		require.Equal(t, ref.Hour(), dt.Hour())
		require.Equal(t, ref.Minute(), dt.Minute())
		require.Equal(t, ref.Second(), dt.Second())
		require.Equal(t, ref.Nanosecond(), dt.Nanosecond())
	}
}

// TestToDateTime_RangeOverflow fails where an offset leaves the civil range.
func TestToDateTime_RangeOverflow(t *testing.T) {
	_, err := instant.Max.ToDateTime(zone.FixedZone(zone.MustOffset(3600)))
	assert.ErrorIs(t, err, lvtime.ErrRangeOverflow)
	_, err = instant.Min.AtZone(zone.FixedZone(zone.MustOffset(-60)))
	assert.ErrorIs(t, err, lvtime.ErrRangeOverflow)

	dt, err := instant.Max.ToDateTime(zone.UTCZone)
	require.NoError(t, err)
	assert.Equal(t, civil.MaxDate, dt.Date())
}

// TestBounds_CivilRange pins Min and Max to the civil range in UTC.
func TestBounds_CivilRange(t *testing.T) {
	assert.Equal(t, int64(-31557014135596800), instant.MinEpochSecond)
	assert.Equal(t, int64(31556889832780799), instant.MaxEpochSecond)

	dt, err := instant.Min.ToDateTime(zone.UTCZone)
	require.NoError(t, err)
	assert.Equal(t, civil.MinDate.AtStartOfDay(), dt)

	dt, err = instant.Max.ToDateTime(zone.UTCZone)
	require.NoError(t, err)
	assert.Equal(t, civil.MaxDate.AtTime(civil.MustTime(23, 59, 59, 999_999_999)), dt)

	// one second outside either bound clamps back onto it
	assert.Equal(t, instant.Min, instant.FromEpochSeconds(instant.MinEpochSecond-1, 0))
	assert.Equal(t, instant.Max, instant.FromEpochSeconds(instant.MaxEpochSecond+1, 0))

	// the error for an out-of-range view names the raw seconds
	_, err = instant.Min.ToDateTime(zone.FixedZone(zone.MustOffset(-3600)))
	require.ErrorIs(t, err, lvtime.ErrRangeOverflow)
	assert.Contains(t, err.Error(), "-31557014135596800.000000000s")
}

// TestAtZone_FixedRoundTrip never loses an instant in a fixed zone.
func TestAtZone_FixedRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for n := 0; n < 5_000; n++ {
		o := zone.MustOffset(rng.Intn(2*zone.MaxOffsetSeconds+1) - zone.MaxOffsetSeconds)
		i := instant.FromEpochSeconds(rng.Int63n(1<<54)-(1<<53), rng.Int63n(1e9))
		zd, err := i.AtZone(zone.FixedZone(o))
		require.NoError(t, err)
		require.Equal(t, i, zd.Instant())
		require.Equal(t, o, zd.Offset())
	}
}

// TestFromDateTime_Policies follows the gap and overlap rules in Berlin.
func TestFromDateTime_Policies(t *testing.T) {
	z := berlin(t)

	gap := civil.MustDateTime(2021, civil.March, 28, 2, 30, 0, 7)
	i := instant.FromDateTime(gap, z, zone.ResolveEarlier)
	assert.Equal(t, instant.FromEpochSeconds(1616895000, 7), i)
	assert.Equal(t, "2021-03-28T01:30:00.000000007Z", i.String())

	fold := civil.MustDateTime(2021, civil.October, 31, 2, 30, 0, 0)
	earlier := instant.FromDateTime(fold, z, zone.ResolveEarlier)
	later := instant.FromDateTime(fold, z, zone.ResolveLater)
	assert.Equal(t, "2021-10-31T00:30:00Z", earlier.String())
	assert.Equal(t, "2021-10-31T01:30:00Z", later.String())
	assert.Equal(t, later, instant.FromDateTimePreferring(fold, z, zone.MustOffset(3600)))

	zd, err := later.AtZone(z)
	require.NoError(t, err)
	assert.Equal(t, "2021-10-31T02:30:00+01:00[Europe/Berlin]", zd.String())
	assert.Equal(t, fold, zd.DateTime())
	assert.Equal(t, later, zd.Instant())

	off := instant.FromDateTimeOffset(fold, zone.MustOffset(-3600))
	assert.Equal(t, "2021-10-31T03:30:00Z", off.String())
}

// TestStartOfDay handles a skipped midnight.
func TestStartOfDay(t *testing.T) {
	minusThree, minusTwo := zone.MustOffset(-3*3600), zone.MustOffset(-2*3600)
	z, err := zone.NewRuleZone("Test/Midnight", minusThree, []zone.Transition{
		{At: 1541300400, Before: minusThree, After: minusTwo},
	})
	require.NoError(t, err)

	day := civil.MustDate(2018, civil.November, 4)
	assert.Equal(t, instant.FromEpochSeconds(1541300400, 0), instant.StartOfDay(day, z))

	zd, err := instant.StartOfDay(day, z).AtZone(z)
	require.NoError(t, err)
	assert.Equal(t, "2018-11-04T01:00:00-02:00[Test/Midnight]", zd.String())

	assert.Equal(t, "2021-03-27T23:00:00Z", instant.StartOfDay(civil.MustDate(2021, civil.March, 28), berlin(t)).String())
}

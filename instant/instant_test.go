package instant_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/lvtime/duration"
	"github.com/katalvlaran/lvtime/instant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromEpochSeconds_Carries normalises nanoseconds and clamps.
func TestFromEpochSeconds_Carries(t *testing.T) {
	i := instant.FromEpochSeconds(1, -1)
	assert.Equal(t, int64(0), i.EpochSeconds())
	assert.Equal(t, 999_999_999, i.Nanosecond())

	i = instant.FromEpochSeconds(0, 3_500_000_000)
	assert.Equal(t, int64(3), i.EpochSeconds())
	assert.Equal(t, 500_000_000, i.Nanosecond())

	assert.Equal(t, instant.Max, instant.FromEpochSeconds(math.MaxInt64, math.MaxInt64))
	assert.Equal(t, instant.Min, instant.FromEpochSeconds(math.MinInt64, -1))
	assert.Equal(t, instant.Max, instant.FromEpochSeconds(instant.MaxEpochSecond+1, 0))
	assert.Equal(t, instant.Min, instant.FromEpochSeconds(instant.MinEpochSecond, -1))

	ms := instant.FromEpochMilliseconds(-1)
	assert.Equal(t, int64(-1), ms.EpochSeconds())
	assert.Equal(t, 999_000_000, ms.Nanosecond())
	assert.Equal(t, int64(-1), ms.EpochMilliseconds())
	assert.Equal(t, int64(math.MaxInt64), instant.Max.EpochMilliseconds())
	assert.Equal(t, int64(math.MinInt64), instant.Min.EpochMilliseconds())
}

// TestAdd_Saturates pins arithmetic at the bounds.
func TestAdd_Saturates(t *testing.T) {
	assert.Equal(t, instant.Max, instant.Max.Add(duration.Of(1, duration.Nanosecond)))
	assert.Equal(t, instant.Min, instant.Min.Sub(duration.Of(1, duration.Second)))
	assert.Equal(t, instant.Max, instant.Epoch.Add(duration.Infinite))
	assert.Equal(t, instant.Min, instant.Epoch.Add(duration.NegInfinite))
	assert.Equal(t, instant.Min, instant.Max.Sub(duration.Infinite))

	span := instant.Min.Until(instant.Max)
	assert.False(t, span.IsInfinite())
	assert.Equal(t, instant.Max, instant.Min.Add(span))
	assert.Equal(t, span.Neg(), instant.Max.Until(instant.Min))
}

// TestAddSub_Inverse checks (i + d) - d == i away from the bounds.
func TestAddSub_Inverse(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 0; n < 5_000; n++ {
		i := instant.FromEpochSeconds(rng.Int63n(1<<50)-(1<<49), rng.Int63n(1e9))
		d := duration.New(rng.Int63n(1<<50)-(1<<49), rng.Int63n(2e9)-1e9)
		require.Equal(t, i, i.Add(d).Sub(d))
		require.Equal(t, d, i.Until(i.Add(d)))
	}
}

// TestCompare orders by seconds then nanoseconds.
func TestCompare(t *testing.T) {
	a := instant.FromEpochSeconds(10, 5)
	b := instant.FromEpochSeconds(10, 6)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(instant.FromEpochSeconds(9, 1_000_000_005)))
	assert.True(t, instant.Min.Before(instant.Epoch))
}

// TestStd bridges to time.Time.
func TestStd(t *testing.T) {
	ref := time.Date(2021, time.March, 28, 1, 30, 0, 123, time.FixedZone("x", 3600))
	i := instant.FromStd(ref)
	assert.Equal(t, ref.Unix(), i.EpochSeconds())
	assert.Equal(t, 123, i.Nanosecond())
	assert.True(t, ref.Equal(i.Std()))
	assert.Equal(t, time.UTC, i.Std().Location())

	before := instant.Now()
	assert.False(t, instant.Now().Before(before))
}

package duration_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestString pins the printed forms.
func TestString(t *testing.T) {
	cases := map[string]duration.Duration{
		"PT0S":             duration.Zero,
		"PT1H30M":          duration.Of(90, duration.Minute),
		"PT48H":            duration.Of(2, duration.Day),
		"PT0.500S":         duration.Of(500, duration.Millisecond),
		"-PT0.000000001S":  duration.New(0, -1),
		"PT1M0.001S":       duration.New(60, 1_000_000),
		"-PT1H2M3.120S":    duration.New(-3723, -120_000_000),
		"PT1.000001S":      duration.New(1, 1000),
		"INF":              duration.Infinite,
		"-INF":             duration.NegInfinite,
		"PT1281023894007H": duration.Of(1281023894007, duration.Hour),
	}
	for want, d := range cases {
		assert.Equal(t, want, d.String())
	}
}

// TestParse accepts the grammar's optional pieces.
func TestParse(t *testing.T) {
	cases := map[string]duration.Duration{
		"PT0S":                     duration.Zero,
		"P1D":                      duration.Of(1, duration.Day),
		"p1dt1h":                   duration.Of(25, duration.Hour),
		"PT-1H30M":                 duration.Of(-30, duration.Minute),
		"-PT1H-30M":                duration.Of(-30, duration.Minute),
		"+PT1,5S":                  duration.New(1, 500_000_000),
		"PT-0.5S":                  duration.New(0, -500_000_000),
		"-P1DT-1S":                 duration.New(-86399, 0),
		"PT0.123456789S":           duration.New(0, 123_456_789),
		"+INF":                     duration.Infinite,
		"PT99999999999999999999H":  duration.Infinite,
		"-PT99999999999999999999S": duration.NegInfinite,
	}
	for text, want := range cases {
		got, err := duration.Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
}

// TestParse_Rejects malformed text with ErrFormatMismatch.
func TestParse_Rejects(t *testing.T) {
	for _, bad := range []string{
		"", "P", "PT", "1S", "P1Y", "P1M", "PT1S1M", "PT1.S", "PT1.1234567890S",
		"PT1.5H", "P1.5D", "PT1", "PT1SX", "PTS", "P1DT", "INFINITY",
	} {
		_, err := duration.Parse(bad)
		assert.ErrorIs(t, err, lvtime.ErrFormatMismatch, bad)
	}
}

// TestParse_RoundTrip checks Parse(d.String()) == d on random values.
func TestParse_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 5_000; i++ {
		sec := rng.Int63n(2*duration.MaxSeconds) - duration.MaxSeconds
		if i%2 == 0 {
			sec = rng.Int63n(200_000) - 100_000
		}
		d := duration.New(sec, rng.Int63n(2e9)-1e9)
		got, err := duration.Parse(d.String())
		require.NoError(t, err, d.String())
		require.Equal(t, d, got, d.String())
	}
}

// TestText_JSON uses the text marshalers.
func TestText_JSON(t *testing.T) {
	in := []duration.Duration{duration.Of(90, duration.Second), duration.Infinite}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `["PT1M30S","INF"]`, string(b))

	var out []duration.Duration
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

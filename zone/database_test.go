package zone_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/civil"
	"github.com/katalvlaran/lvtime/zone"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDatabase_FixedIDs recognises offsets without region data.
func TestDatabase_FixedIDs(t *testing.T) {
	cases := map[string]struct {
		id   string
		secs int
	}{
		"UTC":       {"UTC", 0},
		"Z":         {"Z", 0},
		"GMT":       {"GMT", 0},
		"+05:30":    {"+05:30", 19800},
		"-0330":     {"-03:30", -12600},
		"UTC+1":     {"UTC+01:00", 3600},
		"GMT-03:30": {"GMT-03:30", -12600},
		"UT+00":     {"UT", 0},
	}
	for in, want := range cases {
		z, err := zone.Of(in)
		require.NoError(t, err, in)
		assert.Equal(t, want.id, z.ID(), in)
		off, ok := z.FixedOffset()
		assert.True(t, ok, in)
		assert.Equal(t, want.secs, off.Seconds(), in)
	}

	_, err := zone.Of("+19")
	assert.ErrorIs(t, err, lvtime.ErrZoneNotFound)
	assert.ErrorIs(t, err, lvtime.ErrInvalidOffset)
	for _, bad := range []string{"", "Local", "Nowhere/Atlantis", "../etc/passwd", "/etc/localtime", "Europe//Berlin"} {
		_, err := zone.Of(bad)
		assert.ErrorIs(t, err, lvtime.ErrZoneNotFound, bad)
	}
}

// TestDatabase_MatchesStdlib compares offsets with time.Location, including
// years past the precomputed table where the 400-year cycle is folded.
func TestDatabase_MatchesStdlib(t *testing.T) {
	from := time.Date(1850, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	to := time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	rng := rand.New(rand.NewSource(11))

	for _, name := range []string{"Europe/Berlin", "America/New_York", "Australia/Lord_Howe", "Asia/Kolkata", "America/Sao_Paulo"} {
		z, err := zone.Of(name)
		require.NoError(t, err, name)
		loc, err := time.LoadLocation(name)
		require.NoError(t, err, name)

		for i := 0; i < 2_000; i++ {
			sec := from + rng.Int63n(to-from)
			_, want := time.Unix(sec, 0).In(loc).Zone()
			require.Equal(t, want, z.OffsetAt(sec).Seconds(), "%s at %d", name, sec)
		}
	}
}

// TestDatabase_BerlinGap finds the 2021 spring gap in real data and again
// a thousand years later.
func TestDatabase_BerlinGap(t *testing.T) {
	z, err := zone.Of("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, zone.RuleBased, z.Kind())

	r := z.Resolve(civil.MustDateTime(2021, civil.March, 28, 2, 30, 0, 0))
	assert.Equal(t, zone.Gap, r.Kind)
	assert.Equal(t, springAt, r.At)

	far := z.Resolve(civil.MustDateTime(3021, civil.October, 28, 2, 30, 0, 0))
	assert.Equal(t, zone.Overlap, far.Kind)
	assert.Equal(t, time.Date(3021, time.October, 28, 1, 0, 0, 0, time.UTC).Unix(), far.At)

	tr, ok := z.NextTransition(far.At - 1)
	require.True(t, ok)
	assert.Equal(t, far.At, tr.At)
}

// tzif assembles a version 1 TZif blob: two types, AAA (+01:00) and BBB
// (+02:00, daylight), and the given transitions.
func tzif(at []int32, types []uint8) []byte {
	var b bytes.Buffer
	b.WriteString("TZif")
	b.WriteByte(0)
	b.Write(make([]byte, 15))

	abbrev := []byte("AAA\x00BBB\x00")
	for _, n := range []uint32{0, 0, 0, uint32(len(at)), 2, uint32(len(abbrev))} {
		_ = binary.Write(&b, binary.BigEndian, n)
	}
	for _, v := range at {
		_ = binary.Write(&b, binary.BigEndian, v)
	}
	b.Write(types)
	for i, off := range []int32{3600, 7200} {
		_ = binary.Write(&b, binary.BigEndian, off)
		b.WriteByte(uint8(i))
		b.WriteByte(uint8(4 * i))
	}
	b.Write(abbrev)

	return b.Bytes()
}

func memZoneinfo(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	blob := tzif([]int32{int32(springAt), int32(autumnAt)}, []uint8{1, 0})
	require.NoError(t, afero.WriteFile(fs, "/zoneinfo/Test/Shift", blob, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/zoneinfo/README", []byte("not a zone"), 0o644))
	return fs
}

// TestDatabase_DSTZonesLoadPromptly builds tables for rule-based zones whose
// rules run past their explicit transitions, each well inside a deadline.
func TestDatabase_DSTZonesLoadPromptly(t *testing.T) {
	db := zone.NewDatabase()
	for _, id := range []string{"Europe/Paris", "Europe/Berlin", "America/Chicago", "America/New_York", "Australia/Lord_Howe"} {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		done := make(chan error, 1)
		var z zone.Zone
		go func() {
			var err error
			z, err = db.Zone(id)
			done <- err
		}()
		select {
		case err := <-done:
			require.NoError(t, err, id)
		case <-ctx.Done():
			cancel()
			t.Fatalf("%s: not loaded within the deadline", id)
		}
		cancel()
		assert.Equal(t, zone.RuleBased, z.Kind(), id)

		// offsets after the explicit transitions still follow the rules
		loc, err := time.LoadLocation(id)
		require.NoError(t, err)
		for y := 2038; y <= 2045; y++ {
			for _, m := range []time.Month{time.January, time.July} {
				at := time.Date(y, m, 15, 12, 0, 0, 0, time.UTC)
				_, want := at.In(loc).Zone()
				assert.Equal(t, want, z.OffsetAt(at.Unix()).Seconds(), "%s %v", id, at)
			}
		}
	}
}

// TestDatabase_FS loads TZif data from an in-memory filesystem.
func TestDatabase_FS(t *testing.T) {
	db := zone.NewDatabase(zone.WithFS(memZoneinfo(t), "/zoneinfo"))

	names, err := db.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Test/Shift"}, names)

	z, err := db.Zone("Test/Shift")
	require.NoError(t, err)
	assert.Equal(t, "Test/Shift", z.ID())
	assert.Equal(t, []zone.Transition{
		{At: springAt, Before: plusOne, After: plusTwo},
		{At: autumnAt, Before: plusTwo, After: plusOne},
	}, z.Transitions())
	assert.Equal(t, zone.Gap, z.Resolve(civil.MustDateTime(2021, civil.March, 28, 2, 30, 0, 0)).Kind)
	assert.Equal(t, plusOne, z.OffsetAt(unixOf(2700, time.July, 1, 0, 0)))

	_, err = db.Zone("README")
	assert.ErrorIs(t, err, lvtime.ErrZoneNotFound)
	_, err = db.Zone("Europe/Berlin")
	assert.ErrorIs(t, err, lvtime.ErrZoneNotFound)
}

// TestNames lists the embedded regions in order.
func TestNames(t *testing.T) {
	names, err := zone.Names()
	require.NoError(t, err)
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "Europe/Berlin")
	assert.Contains(t, names, "America/Argentina/Buenos_Aires")

	names[0] = "mutated"
	again, _ := zone.Names()
	assert.NotEqual(t, "mutated", again[0])
}

// TestWithTableRange_Panics needs a full cycle.
func TestWithTableRange_Panics(t *testing.T) {
	assert.Panics(t, func() { zone.WithTableRange(1900, 2100) })
	assert.Panics(t, func() { zone.WithFS(nil, "/") })
	assert.NotPanics(t, func() { zone.NewDatabase(zone.WithTableRange(1900, 2300), zone.WithSystemLocations()) })
}

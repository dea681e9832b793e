// SPDX-License-Identifier: MIT
// Package: lvtime/zone
//
// database.go — Database: zone lookup by identifier with a concurrent cache.
//
// Lookups of the same region from many goroutines load the underlying data
// once (singleflight) and then hit a sync.Map. Zones are immutable, so the
// cached values are shared freely.

package zone

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/lvtime"
	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"
)

// Default table range: before fromYear the earliest offset applies, from
// toYear on the last 400 years repeat.
const (
	DefaultFromYear = 1800
	DefaultToYear   = 2500
)

type options struct {
	src      source
	fromYear int
	toYear   int
}

// Option configures a Database.
type Option func(*options)

// WithSystemLocations loads regions with time.LoadLocation, which falls back
// to the tzdata embedded in this package. This is the default.
func WithSystemLocations() Option {
	return func(o *options) { o.src = systemSource{} }
}

// WithFS loads TZif files from root on fsys, e.g. an afero.OsFs rooted at
// /usr/share/zoneinfo or an in-memory filesystem. It panics on a nil fsys.
func WithFS(fsys afero.Fs, root string) Option {
	if fsys == nil {
		panic("zone: WithFS(nil)")
	}
	return func(o *options) { o.src = fsSource{fs: fsys, root: root} }
}

// WithTableRange sets the years covered by precomputed transition tables.
// The range must span at least one 400-year cycle; it panics otherwise.
func WithTableRange(fromYear, toYear int) Option {
	if toYear-fromYear < 400 {
		panic(fmt.Sprintf("zone: WithTableRange(%d, %d): need at least 400 years", fromYear, toYear))
	}
	return func(o *options) { o.fromYear, o.toYear = fromYear, toYear }
}

// Database resolves zone identifiers. It is safe for concurrent use.
type Database struct {
	opts  options
	cache sync.Map // string → Zone
	group singleflight.Group
}

// NewDatabase applies opts over the defaults.
func NewDatabase(opts ...Option) *Database {
	o := options{src: systemSource{}, fromYear: DefaultFromYear, toYear: DefaultToYear}
	for _, opt := range opts {
		opt(&o)
	}
	return &Database{opts: o}
}

// Default is the process-wide database over the system locations.
var Default = sync.OnceValue(func() *Database { return NewDatabase() })

// Of looks id up in the Default database.
func Of(id string) (Zone, error) { return Default().Zone(id) }

// Names lists the region identifiers of the Default database.
func Names() ([]string, error) { return Default().Names() }

// Zone returns the zone called id: UTC, Z, GMT or UT, a fixed offset such as
// +05:30 or UTC-3, or a region such as Europe/Berlin. Unknown identifiers
// fail with lvtime.ErrZoneNotFound.
func (db *Database) Zone(id string) (Zone, error) {
	if z, ok, err := fixedFromID(id); ok || err != nil {
		if err != nil {
			return Zone{}, fmt.Errorf("zone: Zone(%q): %w: %w", id, lvtime.ErrZoneNotFound, err)
		}
		return z, nil
	}
	if v, ok := db.cache.Load(id); ok {
		return v.(Zone), nil
	}
	if !validName(id) {
		return Zone{}, fmt.Errorf("zone: Zone(%q): %w", id, lvtime.ErrZoneNotFound)
	}

	v, err, _ := db.group.Do(id, func() (any, error) {
		if v, ok := db.cache.Load(id); ok {
			return v, nil
		}
		z, err := db.load(id)
		if err != nil {
			return nil, err
		}
		db.cache.Store(id, z)
		return z, nil
	})
	if err != nil {
		return Zone{}, err
	}
	return v.(Zone), nil
}

func (db *Database) load(id string) (Zone, error) {
	loc, err := db.opts.src.load(id)
	if err != nil {
		return Zone{}, fmt.Errorf("zone: Zone(%q): %w: %v", id, lvtime.ErrZoneNotFound, err)
	}
	r, err := buildRules(loc, db.opts.fromYear, db.opts.toYear)
	if err != nil {
		return Zone{}, fmt.Errorf("zone: Zone(%q): %w: %v", id, lvtime.ErrZoneNotFound, err)
	}
	if len(r.ts) == 0 {
		return namedFixed(id, r.initial), nil
	}
	r.fold = true
	return Zone{kind: RuleBased, id: id, fixed: r.initial, rules: r}, nil
}

// Names lists the region identifiers the database can load, sorted.
func (db *Database) Names() ([]string, error) { return db.opts.src.names() }

// fixedFromID recognises the identifiers that never need the database. ok is
// false when id is not of that shape at all.
func fixedFromID(id string) (z Zone, ok bool, err error) {
	switch id {
	case "UTC", "Z", "GMT", "UT":
		return namedFixed(id, UTC), true, nil
	}
	if id != "" && (id[0] == '+' || id[0] == '-') {
		o, err := parseOffsetID(id)
		if err != nil {
			return Zone{}, false, err
		}
		return FixedZone(o), true, nil
	}
	for _, prefix := range []string{"UTC", "GMT", "UT"} {
		rest, found := strings.CutPrefix(id, prefix)
		if !found || rest == "" || (rest[0] != '+' && rest[0] != '-') {
			continue
		}
		o, err := parseOffsetID(rest)
		if err != nil {
			return Zone{}, false, err
		}
		if o == UTC {
			return namedFixed(prefix, o), true, nil
		}
		return namedFixed(prefix+o.String(), o), true, nil
	}
	return Zone{}, false, nil
}

// parseOffsetID accepts the lenient forms used inside zone identifiers:
// ±H, ±HH, ±HH:MM, ±HHMM, ±HH:MM:SS and ±HHMMSS.
func parseOffsetID(s string) (Offset, error) {
	bad := fmt.Errorf("offset %q: %w", s, lvtime.ErrInvalidOffset)
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return Offset{}, bad
	}
	neg := s[0] == '-'
	body := s[1:]
	if len(body) == 1 {
		body = "0" + body
	}

	var parts []string
	switch {
	case strings.Contains(body, ":"):
		parts = strings.Split(body, ":")
	case len(body) == 2 || len(body) == 4 || len(body) == 6:
		for i := 0; i < len(body); i += 2 {
			parts = append(parts, body[i:i+2])
		}
	default:
		return Offset{}, bad
	}
	if len(parts) > 3 {
		return Offset{}, bad
	}

	var comp [3]int
	for i, p := range parts {
		if len(p) != 2 || p[0] < '0' || p[0] > '9' || p[1] < '0' || p[1] > '9' {
			return Offset{}, bad
		}
		comp[i] = int(p[0]-'0')*10 + int(p[1]-'0')
		if neg {
			comp[i] = -comp[i]
		}
	}
	return NewOffset(comp[0], comp[1], comp[2])
}

// SPDX-License-Identifier: MIT
// Package: lvtime/zone
//
// loader.go — turning *time.Location data into transition tables, and the
// two places that data comes from: the system (with the embedded tzdata as
// fallback) and an afero filesystem holding TZif files.

package zone

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/afero"
)

// tzifMagic starts every compiled zone file.
var tzifMagic = []byte("TZif")

// source resolves region names to locations.
type source interface {
	load(name string) (*time.Location, error)
	names() ([]string, error)
}

// validName rejects names that could escape a zoneinfo root.
func validName(name string) bool {
	if name == "" || name == "Local" || strings.HasPrefix(name, "/") {
		return false
	}
	if path.Clean(name) != name {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." || part == "." {
			return false
		}
	}
	return true
}

// systemSource uses time.LoadLocation.
type systemSource struct{}

func (systemSource) load(name string) (*time.Location, error) { return time.LoadLocation(name) }
func (systemSource) names() ([]string, error) {
	return append([]string(nil), embeddedNames()...), nil
}

// fsSource reads TZif files below root on an afero filesystem.
type fsSource struct {
	fs   afero.Fs
	root string
}

func (s fsSource) load(name string) (*time.Location, error) {
	data, err := afero.ReadFile(s.fs, path.Join(s.root, name))
	if err != nil {
		return nil, err
	}
	return time.LoadLocationFromTZData(name, data)
}

func (s fsSource) names() ([]string, error) {
	var out []string
	err := afero.Walk(s.fs, s.root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		f, err := s.fs.Open(p)
		if err != nil {
			return err
		}
		head := make([]byte, len(tzifMagic))
		_, rerr := f.Read(head)
		f.Close()
		if rerr != nil || !bytes.Equal(head, tzifMagic) {
			return nil
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, s.root), "/")
		if validName(rel) {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("zone: Names: walk %q: %w", s.root, err)
	}
	sort.Strings(out)
	return out, nil
}

var errOffsetRange = errors.New("location offset outside ±18:00")

// buildRules walks loc's zone bounds from fromYear up to toYear and records
// every change of total offset. Abbreviation or DST flag changes alone are
// not transitions.
func buildRules(loc *time.Location, fromYear, toYear int) (*rules, error) {
	t := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC).In(loc)
	end := time.Date(toYear, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, off := t.Zone()
	initial, err := OffsetOfSeconds(off)
	if err != nil {
		return nil, errOffsetRange
	}

	var ts []Transition
	prev := initial
	for {
		_, next := t.ZoneBounds()
		if next.IsZero() {
			break
		}
		if !next.After(t) {
			// past the explicit transitions the bound can be t itself
			next = t.Add(time.Second)
		}
		if !next.Before(end) {
			break
		}
		t = next.In(loc)
		_, off = t.Zone()
		o, err := OffsetOfSeconds(off)
		if err != nil {
			return nil, errOffsetRange
		}
		if o != prev {
			ts = append(ts, Transition{At: next.Unix(), Before: prev, After: o})
			prev = o
		}
	}

	return &rules{initial: initial, ts: ts, foldEnd: end.Unix()}, nil
}

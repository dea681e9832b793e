// SPDX-License-Identifier: MIT
// Package: lvtime/cmd/lvtime
//
// commands.go — subcommand dispatch.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/katalvlaran/lvtime/civil"
	"github.com/katalvlaran/lvtime/duration"
	"github.com/katalvlaran/lvtime/instant"
	"github.com/katalvlaran/lvtime/period"
	"github.com/katalvlaran/lvtime/zone"
)

var errUsage = errors.New("usage: lvtime parse|between|resolve|zones ...")

// env is what a command runs against.
type env struct {
	cfg    Config
	db     *zone.Database
	out    io.Writer
	logger *slog.Logger
}

type command func(e *env, args []string) error

var commands = map[string]command{
	"parse":   parseCmd,
	"between": betweenCmd,
	"resolve": resolveCmd,
	"zones":   zonesCmd,
}

// run executes args and returns the process exit code.
func run(args []string, cfg Config, fsys afero.Fs, out io.Writer, logger *slog.Logger) int {
	if len(args) == 0 {
		logger.Error(errUsage.Error())
		return 1
	}
	cmd, ok := commands[args[0]]
	if !ok {
		logger.Error("unknown command", slog.String("command", args[0]))
		return 1
	}
	e := &env{cfg: cfg, db: cfg.database(fsys), out: out, logger: logger}
	if err := cmd(e, args[1:]); err != nil {
		logger.Error("command failed", slog.String("command", args[0]), slog.Any("error", err))
		return 1
	}
	return 0
}

// parsers turn text into its canonical form.
var parsers = map[string]func(string) (fmt.Stringer, error){
	"date":     func(s string) (fmt.Stringer, error) { return civil.ParseDate(s) },
	"time":     func(s string) (fmt.Stringer, error) { return civil.ParseTime(s) },
	"datetime": func(s string) (fmt.Stringer, error) { return civil.ParseDateTime(s) },
	"instant":  func(s string) (fmt.Stringer, error) { return instant.Parse(s) },
	"offset":   func(s string) (fmt.Stringer, error) { return zone.ParseOffset(s) },
	"duration": func(s string) (fmt.Stringer, error) { return duration.Parse(s) },
	"period":   func(s string) (fmt.Stringer, error) { return period.ParseDateTimePeriod(s) },
}

func parseCmd(e *env, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("parse <kind> <text>: %w", errUsage)
	}
	p, ok := parsers[args[0]]
	if !ok {
		return fmt.Errorf("parse: unknown kind %q", args[0])
	}
	v, err := p(args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, v)
	return err
}

// betweenCmd prints the calendar period between two dates, or between two
// instants in a zone followed by the exact duration.
func betweenCmd(e *env, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("between <a> <b> [zone]: %w", errUsage)
	}
	da, errA := civil.ParseDate(args[0])
	db, errB := civil.ParseDate(args[1])
	if errA == nil && errB == nil && len(args) == 2 {
		_, err := fmt.Fprintln(e.out, period.Between(da, db))
		return err
	}

	a, err := instant.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := instant.Parse(args[1])
	if err != nil {
		return err
	}
	id := e.cfg.Zone
	if len(args) == 3 {
		id = args[2]
	}
	z, err := e.zone(id)
	if err != nil {
		return err
	}
	p, err := period.BetweenInstants(a, b, z)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, p, a.Until(b))
	return err
}

// resolveCmd classifies a local date-time and prints its instants in the
// zone: one for a unique time, two for an overlap, and the shifted time for
// a gap.
func resolveCmd(e *env, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("resolve <local> <zone>: %w", errUsage)
	}
	dt, err := civil.ParseDateTime(args[0])
	if err != nil {
		return err
	}
	z, err := e.zone(args[1])
	if err != nil {
		return err
	}

	r := z.Resolve(dt)
	var at []instant.Instant
	switch r.Kind {
	case zone.Gap:
		_, err = fmt.Fprintln(e.out, r.Kind, r.Before, r.After)
		at = append(at, instant.FromDateTime(dt, z, zone.ResolveEarlier))
	default:
		_, err = fmt.Fprintln(e.out, r.Kind)
		for _, o := range r.Offsets() {
			at = append(at, instant.FromDateTimeOffset(dt, o))
		}
	}
	if err != nil {
		return err
	}
	for _, i := range at {
		zd, err := i.AtZone(z)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(e.out, zd); err != nil {
			return err
		}
	}
	return nil
}

func zonesCmd(e *env, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("zones: %w", errUsage)
	}
	names, err := e.db.Names()
	if err != nil {
		return err
	}
	for _, n := range names {
		if _, err = fmt.Fprintln(e.out, n); err != nil {
			return err
		}
	}
	return nil
}

func (e *env) zone(id string) (zone.Zone, error) {
	z, err := e.db.Zone(id)
	if err != nil {
		return zone.Zone{}, err
	}
	e.logger.Debug("zone loaded", slog.String("zone", z.ID()), slog.String("kind", z.Kind().String()))
	return z, nil
}

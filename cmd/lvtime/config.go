// SPDX-License-Identifier: MIT
// Package: lvtime/cmd/lvtime
//
// config.go — environment configuration.

package main

import (
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"

	"github.com/katalvlaran/lvtime/zone"
)

// Config is read from the environment.
type Config struct {
	// ZoneInfo is a TZif directory such as /usr/share/zoneinfo. Empty means
	// the system locations with the embedded tzdata as fallback.
	ZoneInfo string `env:"LVTIME_ZONEINFO" env-description:"TZif directory to load zones from"`
	LogLevel string `env:"LVTIME_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	// Zone is used by between when no zone argument is given.
	Zone string `env:"LVTIME_ZONE" env-default:"UTC" env-description:"default zone identifier"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("lvtime: reading environment: %w", err)
	}
	return cfg, nil
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("lvtime: LVTIME_LOG_LEVEL=%q: %w", c.LogLevel, err)
	}
	return l, nil
}

// database opens the zone database the configuration asks for; fsys backs
// ZoneInfo when it is set.
func (c Config) database(fsys afero.Fs) *zone.Database {
	if c.ZoneInfo == "" {
		return zone.NewDatabase(zone.WithSystemLocations())
	}
	return zone.NewDatabase(zone.WithFS(fsys, c.ZoneInfo))
}

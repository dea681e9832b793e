// SPDX-License-Identifier: MIT
// Package: lvtime/cmd/lvtime
//
// main.go — command-line front end for the lvtime packages.
//
// Usage:
//
//	lvtime parse <date|time|datetime|instant|offset|duration|period> <text>
//	lvtime between <a> <b> [zone]
//	lvtime resolve <local date-time> <zone>
//	lvtime zones
//
// Results go to stdout; failures are logged to stderr and exit with 1.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	lvl, err := cfg.level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	os.Exit(run(os.Args[1:], cfg, afero.NewOsFs(), os.Stdout, logger))
}

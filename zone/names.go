// SPDX-License-Identifier: MIT
// Package: lvtime/zone
//
// names.go — region identifiers known to the embedded tzdata.

package zone

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed zonenames.txt
var rawNames string

var embeddedNames = sync.OnceValue(func() []string {
	return strings.Fields(rawNames)
})

// SPDX-License-Identifier: MIT
// Package: lvtime/zone
//
// zone.go — Zone: a fixed offset or a table of offset transitions, and the
// mapping between local date-times and instants.

package zone

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvtime"
	"github.com/katalvlaran/lvtime/civil"
	"github.com/katalvlaran/lvtime/internal/mathx"
)

// Kind tells the two zone variants apart.
type Kind uint8

const (
	// Fixed zones have one offset forever.
	Fixed Kind = iota
	// RuleBased zones change offset at transitions.
	RuleBased
)

func (k Kind) String() string {
	if k == Fixed {
		return "Fixed"
	}
	return "RuleBased"
}

// Transition is a change of offset at the instant At (epoch seconds).
type Transition struct {
	At     int64
	Before Offset
	After  Offset
}

// Gap reports whether the transition skips local time.
func (tr Transition) Gap() bool { return tr.After.seconds > tr.Before.seconds }

// cycleSeconds is the length of the 400-year Gregorian cycle.
const cycleSeconds = 146097 * civil.SecondsPerDay

// rules is an immutable transition table. When fold is set, instants at or
// after foldEnd are mapped back by whole cycles into [foldEnd-cycle, foldEnd).
type rules struct {
	initial Offset
	ts      []Transition
	fold    bool
	foldEnd int64
}

// Zone is a value type; copies share the immutable table.
// The zero value is a fixed UTC zone with an empty ID.
type Zone struct {
	kind  Kind
	id    string
	fixed Offset
	rules *rules
}

// UTCZone is the fixed zone called UTC.
var UTCZone = Zone{kind: Fixed, id: "UTC"}

// FixedZone returns a zone pinned to o; its ID is o's ISO text.
func FixedZone(o Offset) Zone { return Zone{kind: Fixed, id: o.String(), fixed: o} }

func namedFixed(id string, o Offset) Zone { return Zone{kind: Fixed, id: id, fixed: o} }

// NewRuleZone builds a zone from its offset before the first transition and
// transitions in increasing order. Each transition must start from the offset
// the previous one ended at; transitions that change nothing are dropped.
func NewRuleZone(id string, initial Offset, ts []Transition) (Zone, error) {
	r, err := newRules(initial, ts)
	if err != nil {
		return Zone{}, fmt.Errorf("zone: NewRuleZone(%q): %w", id, err)
	}
	return Zone{kind: RuleBased, id: id, fixed: initial, rules: r}, nil
}

func newRules(initial Offset, ts []Transition) (*rules, error) {
	out := make([]Transition, 0, len(ts))
	prev := initial
	for i, tr := range ts {
		if tr.Before != prev {
			return nil, fmt.Errorf("transition %d starts at %v, want %v: %w", i, tr.Before, prev, lvtime.ErrInvalidOffset)
		}
		if i > 0 && tr.At <= ts[i-1].At {
			return nil, fmt.Errorf("transition %d is not after its predecessor: %w", i, lvtime.ErrInvalidOffset)
		}
		prev = tr.After
		if tr.Before == tr.After {
			continue
		}
		out = append(out, tr)
	}
	return &rules{initial: initial, ts: out}, nil
}

func (z Zone) ID() string     { return z.id }
func (z Zone) String() string { return z.id }
func (z Zone) Kind() Kind     { return z.kind }

// FixedOffset returns the offset of a fixed zone and false for rule-based ones.
func (z Zone) FixedOffset() (Offset, bool) { return z.fixed, z.kind == Fixed }

// Transitions returns a copy of the table; it is empty for fixed zones.
func (z Zone) Transitions() []Transition {
	if z.rules == nil {
		return nil
	}
	return append([]Transition(nil), z.rules.ts...)
}

// OffsetAt returns the offset in force at the instant sec (epoch seconds).
func (z Zone) OffsetAt(sec int64) Offset {
	if z.rules == nil {
		return z.fixed
	}
	r := z.rules
	if r.fold && sec >= r.foldEnd {
		sec = r.foldEnd - cycleSeconds + mathx.FloorMod(sec-r.foldEnd, cycleSeconds)
	}
	i := sort.Search(len(r.ts), func(i int) bool { return r.ts[i].At > sec })
	if i == 0 {
		return r.initial
	}
	return r.ts[i-1].After
}

// NextTransition returns the first transition strictly after sec.
func (z Zone) NextTransition(sec int64) (Transition, bool) {
	if z.rules == nil {
		return Transition{}, false
	}
	r := z.rules
	shift := int64(0)
	if r.fold && sec >= r.foldEnd {
		k := mathx.FloorDiv(sec-r.foldEnd, cycleSeconds) + 1
		shift = k * cycleSeconds
		sec -= shift
	}
	i := sort.Search(len(r.ts), func(i int) bool { return r.ts[i].At > sec })
	if i < len(r.ts) {
		tr := r.ts[i]
		tr.At += shift
		return tr, true
	}
	if r.fold && len(r.ts) > 0 {
		// wrap into the next cycle
		j := sort.Search(len(r.ts), func(i int) bool { return r.ts[i].At >= r.foldEnd-cycleSeconds })
		if j < len(r.ts) {
			tr := r.ts[j]
			tr.At += shift + cycleSeconds
			return tr, true
		}
	}
	return Transition{}, false
}

// ResolutionKind classifies a local date-time.
type ResolutionKind uint8

const (
	// Unique local times have exactly one offset.
	Unique ResolutionKind = iota
	// Gap local times were skipped by a forward transition.
	Gap
	// Overlap local times occur twice around a backward transition.
	Overlap
)

func (k ResolutionKind) String() string {
	switch k {
	case Gap:
		return "Gap"
	case Overlap:
		return "Overlap"
	}
	return "Unique"
}

// Resolution describes how a local date-time maps onto a zone. For Unique
// results Before and After are equal; otherwise they are the offsets on
// either side of the transition at epoch second At.
type Resolution struct {
	Kind   ResolutionKind
	Before Offset
	After  Offset
	At     int64
}

// Offsets returns the valid offsets: one for Unique, two for Overlap and
// none for Gap.
func (r Resolution) Offsets() []Offset {
	switch r.Kind {
	case Gap:
		return nil
	case Overlap:
		return []Offset{r.Before, r.After}
	}
	return []Offset{r.Before}
}

// Resolve classifies dt in z.
func (z Zone) Resolve(dt civil.DateTime) Resolution {
	if z.rules == nil {
		return Resolution{Kind: Unique, Before: z.fixed, After: z.fixed}
	}
	r := z.rules
	local := dt.EpochSecondsAt(0)

	shift := int64(0)
	if r.fold && local >= r.foldEnd {
		folded := r.foldEnd - cycleSeconds + mathx.FloorMod(local-r.foldEnd, cycleSeconds)
		shift = local - folded
		local = folded
	}

	// Stage 1: the first transition whose local window has not ended yet.
	i := sort.Search(len(r.ts), func(i int) bool {
		tr := r.ts[i]
		return tr.At+int64(max(tr.Before.seconds, tr.After.seconds)) > local
	})
	if i == len(r.ts) {
		last := r.initial
		if len(r.ts) > 0 {
			last = r.ts[len(r.ts)-1].After
		}
		return Resolution{Kind: Unique, Before: last, After: last}
	}

	// Stage 2: inside the window the time is skipped or repeated.
	tr := r.ts[i]
	if local < tr.At+int64(min(tr.Before.seconds, tr.After.seconds)) {
		return Resolution{Kind: Unique, Before: tr.Before, After: tr.Before}
	}
	kind := Overlap
	if tr.Gap() {
		kind = Gap
	}
	return Resolution{Kind: kind, Before: tr.Before, After: tr.After, At: tr.At + shift}
}

// Policy picks an offset for ambiguous local times.
type Policy uint8

const (
	// ResolveEarlier takes the earlier instant of an overlap.
	ResolveEarlier Policy = iota
	// ResolveLater takes the later instant of an overlap.
	ResolveLater
)

// ToEpochSeconds maps dt to epoch seconds. Times in a gap are moved forward
// by the length of the gap; overlaps follow p.
func (z Zone) ToEpochSeconds(dt civil.DateTime, p Policy) int64 {
	r := z.Resolve(dt)
	local := dt.EpochSecondsAt(0)
	if r.Kind == Overlap && p == ResolveLater {
		return local - int64(r.After.seconds)
	}
	return local - int64(r.Before.seconds)
}

// ToEpochSecondsPreferring is ToEpochSeconds that keeps preferred when it is
// one of the two offsets of an overlap.
func (z Zone) ToEpochSecondsPreferring(dt civil.DateTime, preferred Offset) int64 {
	r := z.Resolve(dt)
	local := dt.EpochSecondsAt(0)
	if r.Kind == Overlap && preferred == r.After {
		return local - int64(r.After.seconds)
	}
	return local - int64(r.Before.seconds)
}

package schedule

import (
	"strings"

	"golang.org/x/exp/maps"
)

// The Google Calendar event color palette. Index 7 ("8", graphite) is
// reserved for free periods and vacations and is skipped by the allocator.
var palette = [...]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}

const neutralIndex = 7

// NeutralColorID is the reserved palette entry used for free periods and
// vacation events.
const NeutralColorID = "8"

// Titles containing one of these markers are free periods regardless of
// anything else on the line.
var freeMarkers = []string{"свободен час", "ваканция"}

// ColorMap binds each distinct subject title to a stable calendar color for
// the lifetime of one pipeline run. Bindings are append-only: a title keeps
// its color for the whole run, and the neutral color is reachable only
// through the free-period markers, never through allocation.
type ColorMap struct {
	assigned map[string]string
}

func NewColorMap() *ColorMap {
	return &ColorMap{assigned: make(map[string]string)}
}

// ColorFor returns the color for a subject title, allocating the next unused
// palette slot on first sight. Free-period and vacation titles are forced to
// the neutral color and do not occupy a slot.
func (m *ColorMap) ColorFor(title string) string {
	lower := strings.ToLower(title)
	for _, marker := range freeMarkers {
		if strings.Contains(lower, marker) {
			return NeutralColorID
		}
	}
	if id, ok := m.assigned[title]; ok {
		return id
	}
	idx := len(m.assigned)
	if idx >= neutralIndex {
		idx++
	}
	id := palette[idx%len(palette)]
	m.assigned[title] = id
	return id
}

// Titles returns the subject titles bound so far, in no particular order.
func (m *ColorMap) Titles() []string {
	return maps.Keys(m.assigned)
}

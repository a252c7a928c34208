// Package reldate resolves relative-date expressions like "2hours",
// "1day" or "3weeks" into absolute timestamps. Resolution is lenient:
// anything that does not match the pattern reports !ok so the calling
// comparison degrades to "no match" instead of failing the whole search.
package reldate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit durations. Months and years are deliberately unsupported, matching
// the simulated API.
const (
	hour = time.Hour
	day  = 24 * time.Hour
	week = 7 * 24 * time.Hour
)

var pattern = regexp.MustCompile(`^(\d+)(hour|day|week)s?$`)

// Parse extracts the (quantity, unit) pair from expr. The unit may be
// singular or plural, matching is case-insensitive and surrounding quotes
// are tolerated.
func Parse(expr string) (quantity int, unit time.Duration, ok bool) {
	expr = strings.Trim(strings.ToLower(strings.TrimSpace(expr)), `'"`)
	m := pattern.FindStringSubmatch(expr)
	if m == nil {
		return 0, 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Only reachable for quantities overflowing int.
		return 0, 0, false
	}
	switch m[2] {
	case "hour":
		unit = hour
	case "day":
		unit = day
	case "week":
		unit = week
	}
	return n, unit, true
}

// Resolve converts expr into the absolute boundary now − quantity×unit.
func Resolve(expr string, now time.Time) (time.Time, bool) {
	n, unit, ok := Parse(expr)
	if !ok {
		return time.Time{}, false
	}
	return now.Add(-time.Duration(n) * unit), true
}

package search

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain/search/reldate"
	"github.com/mockdesk/mockdesk/internal/domain/search/term"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
)

// evaluator matches one record against classified terms. Terms combine
// with AND; an empty term list matches everything. All lookups are
// lenient: unknown keys, uncoercible values and unparsable dates evaluate
// to "no match" rather than erroring.
type evaluator struct {
	now time.Time
}

func (e evaluator) matches(rec Record, terms []term.Term) bool {
	for _, t := range terms {
		if !e.matchTerm(rec, t) {
			return false
		}
	}
	return true
}

func (e evaluator) matchTerm(rec Record, t term.Term) bool {
	switch t := t.(type) {
	case term.Negated:
		return !e.matchTerm(rec, t.Inner)
	case term.TypeFilter:
		return rec.Kind() == t.Kind
	case term.FreeText:
		return matchText(rec, func(field string) bool {
			return strings.Contains(strings.ToLower(field), strings.ToLower(t.Text))
		})
	case term.Phrase:
		return matchText(rec, func(field string) bool {
			return strings.Contains(strings.ToLower(field), strings.ToLower(t.Text))
		})
	case term.Wildcard:
		prefix := strings.ToLower(t.Prefix)
		return matchText(rec, func(field string) bool {
			for _, word := range strings.Fields(strings.ToLower(field)) {
				if strings.HasPrefix(word, prefix) {
					return true
				}
			}
			return false
		})
	case term.PropertyEqual:
		return matchEqual(rec, t)
	case term.PropertyCompare:
		return e.matchCompare(rec, t)
	default:
		return false
	}
}

func matchText(rec Record, pred func(string) bool) bool {
	for _, field := range rec.SearchText() {
		if pred(field) {
			return true
		}
	}
	return false
}

func matchEqual(rec Record, t term.PropertyEqual) bool {
	v, ok := rec.Field(t.Key)
	if !ok {
		return false
	}
	// Null foreign keys match the "none" sentinel (assignee:none and kin).
	if v == nil {
		return strings.EqualFold(t.Value, "none")
	}

	switch v := v.(type) {
	case string:
		return strings.EqualFold(v, t.Value)
	case []string:
		for _, member := range v {
			if strings.EqualFold(member, t.Value) {
				return true
			}
		}
		return false
	case int64:
		n, err := strconv.ParseInt(t.Value, 10, 64)
		if err != nil {
			// Non-integer IDs degrade to no-match.
			return false
		}
		return v == n
	case bool:
		b, err := strconv.ParseBool(strings.ToLower(t.Value))
		if err != nil {
			return false
		}
		return v == b
	case time.Time:
		return t.Value == v.UTC().Format(time.RFC3339) ||
			t.Value == v.UTC().Format("2006-01-02")
	default:
		return strings.EqualFold(fmt.Sprint(v), t.Value)
	}
}

func (e evaluator) matchCompare(rec Record, t term.PropertyCompare) bool {
	v, ok := rec.Field(t.Key)
	if !ok || v == nil {
		return false
	}

	switch t.Key {
	case "created", "created_at", "updated", "updated_at":
		ts, ok := v.(time.Time)
		if !ok {
			return false
		}
		boundary, ok := resolveDateValue(t.Value, e.now)
		if !ok {
			return false
		}
		if t.Op == term.Greater {
			return ts.After(boundary)
		}
		return ts.Before(boundary)
	case "priority":
		return compareOrdinal(v, t, zendesk.PriorityOrder)
	case "status":
		return compareOrdinal(v, t, zendesk.StatusOrder)
	}

	// Numeric when both sides parse, lexical otherwise.
	left := fmt.Sprint(v)
	if a, errA := strconv.ParseFloat(left, 64); errA == nil {
		if b, errB := strconv.ParseFloat(t.Value, 64); errB == nil {
			if t.Op == term.Greater {
				return a > b
			}
			return a < b
		}
	}
	if t.Op == term.Greater {
		return left > t.Value
	}
	return left < t.Value
}

// resolveDateValue turns a comparison value for created/updated into an
// absolute boundary: relative-date expressions resolve against now,
// date-only and RFC 3339 literals parse directly, anything else reports
// !ok so the term matches nothing.
func resolveDateValue(value string, now time.Time) (time.Time, bool) {
	if boundary, ok := reldate.Resolve(value, now); ok {
		return boundary, true
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func compareOrdinal(v any, t term.PropertyCompare, order []string) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	a, b := ordinalRank(s, order), ordinalRank(t.Value, order)
	if a < 0 || b < 0 {
		return false
	}
	if t.Op == term.Greater {
		return a > b
	}
	return a < b
}

func ordinalRank(value string, order []string) int {
	for i, v := range order {
		if strings.EqualFold(v, value) {
			return i
		}
	}
	return -1
}

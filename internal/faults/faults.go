// Package faults injects simulated API failures. Services consult the
// injector before touching the store, so a matched rule produces exactly
// the error the real endpoint would return without mutating state.
package faults

import (
	"strings"

	"github.com/mockdesk/mockdesk/internal/domain"
)

// Rule describes one failure to inject. Operation is the dotted endpoint
// name (e.g. "zendesk.tickets.create"); a trailing "*" matches any
// operation with that prefix. Times bounds how many calls fail; zero
// means every call.
type Rule struct {
	Operation string
	Status    int
	Detail    string
	Times     int
}

type ruleState struct {
	rule      Rule
	remaining int
	unbounded bool
}

// Injector evaluates fault rules in registration order. The zero value
// and the nil injector are inert.
type Injector struct {
	rules []*ruleState
}

// New creates an injector preloaded with rules.
func New(rules ...Rule) *Injector {
	in := &Injector{}
	for _, r := range rules {
		in.Add(r)
	}
	return in
}

// Add registers another rule.
func (in *Injector) Add(r Rule) {
	in.rules = append(in.rules, &ruleState{
		rule:      r,
		remaining: r.Times,
		unbounded: r.Times == 0,
	})
}

// Reset drops all rules.
func (in *Injector) Reset() {
	in.rules = nil
}

// Intercept returns the injected error for operation, or nil when no rule
// matches. Bounded rules burn one use per match.
func (in *Injector) Intercept(operation string) error {
	if in == nil {
		return nil
	}
	for _, st := range in.rules {
		if !matches(st.rule.Operation, operation) {
			continue
		}
		if !st.unbounded {
			if st.remaining == 0 {
				continue
			}
			st.remaining--
		}
		return domain.NewStatusError(st.rule.Status, st.rule.Detail)
	}
	return nil
}

func matches(pattern, operation string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(operation, prefix)
	}
	return pattern == operation
}

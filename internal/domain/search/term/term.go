// Package term defines the classified-term AST for the Zendesk search
// mini-language. A parsed query is a flat sequence of terms combined with
// AND semantics; Negated inverts its inner term.
package term

import "github.com/mockdesk/mockdesk/internal/domain/search/kind"

// Operator is a comparison direction in a PropertyCompare term.
type Operator string

// Comparison operators.
const (
	Greater Operator = ">"
	Less    Operator = "<"
)

// Term is one classified unit of a search query. The concrete variants are
// FreeText, Phrase, Wildcard, Negated, PropertyEqual, PropertyCompare and
// TypeFilter; evaluation dispatches over them.
type Term interface {
	term()
}

// FreeText is a case-insensitive substring match against a record's
// searchable text fields.
type FreeText struct {
	Text string
}

// Phrase is an exact (contiguous) substring match against a record's
// searchable text fields.
type Phrase struct {
	Text string
}

// Wildcard is a prefix match against whitespace-delimited words in a
// record's searchable text fields.
type Wildcard struct {
	Prefix string
}

// Negated inverts the truth value of its inner term.
type Negated struct {
	Inner Term
}

// PropertyEqual is a case-insensitive equality filter on a named field.
// For list-valued fields the value must be a member.
type PropertyEqual struct {
	Key   string
	Value string
}

// PropertyCompare is an ordered comparison on a named field. The value is
// interpreted per key: relative dates for created/updated, the priority
// ordinal for priority, numerics when both sides parse, lexical otherwise.
type PropertyCompare struct {
	Key   string
	Op    Operator
	Value string
}

// TypeFilter restricts candidate records to one resource kind.
type TypeFilter struct {
	Kind kind.Kind
}

func (FreeText) term()        {}
func (Phrase) term()          {}
func (Wildcard) term()        {}
func (Negated) term()         {}
func (PropertyEqual) term()   {}
func (PropertyCompare) term() {}
func (TypeFilter) term()      {}

// TypeRestriction returns the kind restriction present in terms, if any.
// Negated type filters do not restrict the candidate set; they only
// exclude during evaluation.
func TypeRestriction(terms []Term) (kind.Kind, bool) {
	for _, t := range terms {
		if tf, ok := t.(TypeFilter); ok {
			return tf.Kind, true
		}
	}
	return "", false
}

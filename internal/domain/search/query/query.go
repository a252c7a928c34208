// Package query parses the raw Zendesk search string into classified
// terms. Parsing is a two-stage pipeline: Tokenize splits the string on
// whitespace while honoring quoting, and Classify maps each token onto the
// term AST. The whole pipeline is lenient: malformed input narrows the
// result set, it never produces an error.
package query

import (
	"strings"
	"unicode"

	"github.com/mockdesk/mockdesk/internal/domain/search/kind"
	"github.com/mockdesk/mockdesk/internal/domain/search/term"
)

// Token is one raw query token. Quoted reports that the token body was a
// single quoted span, which exempts it from filter-pattern matching.
// Negated reports a leading "-" found outside quotes.
type Token struct {
	Text    string
	Quoted  bool
	Negated bool
}

// Tokenize splits raw into tokens. Whitespace separates tokens except
// inside single or double quotes; quote characters are stripped from the
// token text. An unterminated quote swallows the remainder of the string
// into its token rather than failing.
func Tokenize(raw string) []Token {
	runes := []rune(raw)
	var tokens []Token

	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		var b strings.Builder
		negated := false
		if runes[i] == '-' && i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			negated = true
			i++
		}

		quotedSpans, plainChars := 0, 0
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			c := runes[i]
			if c == '"' || c == '\'' {
				i++
				for i < len(runes) && runes[i] != c {
					b.WriteRune(runes[i])
					i++
				}
				if i < len(runes) {
					i++ // closing quote
				}
				quotedSpans++
				continue
			}
			b.WriteRune(c)
			plainChars++
			i++
		}

		tokens = append(tokens, Token{
			Text:    b.String(),
			Quoted:  quotedSpans == 1 && plainChars == 0,
			Negated: negated,
		})
	}
	return tokens
}

// Classify maps one token onto exactly one term, checking patterns in
// priority order: negation, type restriction, property filter, comparison
// filter, quoted phrase, wildcard, free text. A fully quoted token is
// always a phrase; filter patterns only apply to bare tokens.
func Classify(tok Token) term.Term {
	inner := classifyBody(tok)
	if tok.Negated {
		return term.Negated{Inner: inner}
	}
	return inner
}

func classifyBody(tok Token) term.Term {
	text := tok.Text

	if !tok.Quoted {
		if rest, ok := strings.CutPrefix(text, "type:"); ok {
			k := kind.Kind(strings.ToLower(rest))
			if k.IsValid() {
				return term.TypeFilter{Kind: k}
			}
			// Unknown type values degrade to an ordinary property
			// filter so the query matches nothing instead of failing.
			return term.PropertyEqual{Key: "type", Value: rest}
		}

		if key, value, ok := splitFilter(text, ':'); ok {
			return term.PropertyEqual{Key: key, Value: value}
		}

		if key, value, op, ok := splitCompare(text); ok {
			return term.PropertyCompare{Key: key, Op: op, Value: value}
		}
	}

	if tok.Quoted {
		return term.Phrase{Text: text}
	}

	if prefix, ok := strings.CutSuffix(text, "*"); ok && prefix != "" {
		return term.Wildcard{Prefix: prefix}
	}

	return term.FreeText{Text: text}
}

// Parse tokenizes and classifies raw in one step. An empty query yields no
// terms, which evaluation treats as "match everything".
func Parse(raw string) []term.Term {
	tokens := Tokenize(raw)
	terms := make([]term.Term, 0, len(tokens))
	for _, tok := range tokens {
		terms = append(terms, Classify(tok))
	}
	return terms
}

// splitFilter splits "key:value" on the first sep with a non-empty key.
func splitFilter(text string, sep byte) (key, value string, ok bool) {
	idx := strings.IndexByte(text, sep)
	if idx <= 0 {
		return "", "", false
	}
	return text[:idx], text[idx+1:], true
}

// splitCompare splits "key>value" or "key<value" on the first operator with
// a non-empty key.
func splitCompare(text string) (key, value string, op term.Operator, ok bool) {
	idx := strings.IndexAny(text, "><")
	if idx <= 0 {
		return "", "", "", false
	}
	return text[:idx], text[idx+1:], term.Operator(text[idx : idx+1]), true
}

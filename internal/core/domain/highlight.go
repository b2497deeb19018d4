package domain

import "strings"

// HighlightClassNone is the neutral class for tokens that match no query
// term. Matching tokens receive classes 1..N assigned cyclically.
const HighlightClassNone = 0

// HighlightSpan is one whitespace-delimited token of a record's free-text
// field with its assigned highlight class.
type HighlightSpan struct {
	Token string
	Class int
}

// HighlightSpans tokenises text on whitespace and assigns each token a
// highlight class keyed to the query. Query terms are matched
// case-insensitively; a matching token's class is the term's position among
// the query's tokens modulo classes, offset by one so that class 0 stays
// reserved for non-matches. Tokens are never reordered or dropped;
// reconstructing the field is a space-join of the spans.
func HighlightSpans(text, query string, classes int) []HighlightSpan {
	classFor := make(map[string]int)
	if classes > 0 {
		for i, key := range strings.Fields(strings.ToLower(query)) {
			if _, ok := classFor[key]; ok {
				continue
			}
			classFor[key] = (i % classes) + 1
		}
	}

	tokens := strings.Fields(text)
	spans := make([]HighlightSpan, 0, len(tokens))
	for _, tok := range tokens {
		spans = append(spans, HighlightSpan{
			Token: tok,
			Class: classFor[strings.ToLower(tok)],
		})
	}
	return spans
}

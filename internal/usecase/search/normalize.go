package search

import (
	"strings"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
	"golang.org/x/text/unicode/norm"
)

// normalized is the canonical form of a raw query. Every downstream
// strategy works from this one value; nothing re-normalizes later.
type normalized struct {
	// Query is the compatibility-composed, percent-expanded,
	// whitespace-collapsed query with its original case preserved.
	Query string
	// Lower is Query case-folded, used for TAG equality and stems.
	Lower string
	// Words is Lower split on whitespace.
	Words []string
	// Stems is the Porter stem set of Words.
	Stems map[string]struct{}
}

// normalize canonicalizes raw user input. Rules, in order: Unicode
// NFKC composition, trim, "%" expanded to the word "percent" (the
// index treats a bare percent sign as a reserved character), internal
// whitespace runs collapsed to single spaces.
func normalize(raw string) normalized {
	q := norm.NFKC.String(raw)
	q = strings.TrimSpace(q)
	q = strings.ReplaceAll(q, "%", " percent")
	q = strings.Join(strings.Fields(q), " ")

	lower := strings.ToLower(q)
	words := strings.Fields(lower)

	stems := make(map[string]struct{}, len(words))
	for _, w := range words {
		stems[stem(w)] = struct{}{}
	}

	return normalized{Query: q, Lower: lower, Words: words, Stems: stems}
}

// stem reduces a single lowercase word to its Porter stem.
func stem(word string) string {
	return porterstemmer.StemString(word)
}

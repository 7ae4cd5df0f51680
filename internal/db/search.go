package db

// TagQuery is the input for an exact TAG equality lookup.
type TagQuery struct {
	IndexName    string
	Field        string
	Value        string
	Limit        int
	ReturnFields []string
}

// Clause is one disjunct of a ranked relevance query. Terms are joined
// with AND semantics inside the clause; Phrase requires them in order.
// Fuzzy wraps every term of at least FuzzyMinLen runes in edit-distance
// markers.
type Clause struct {
	Field       string
	Terms       []string
	Phrase      bool
	Fuzzy       bool
	FuzzyMinLen int
	Weight      float64
}

// RankedQuery is the input for a disjunctive relevance search. At least
// one clause must match.
type RankedQuery struct {
	IndexName    string
	Clauses      []Clause
	Limit        int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}

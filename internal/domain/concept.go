package domain

// CodeEntry is one vocabulary-source code attached to a concept.
type CodeEntry struct {
	SAB           string   `json:"SAB"`
	Code          string   `json:"CODE"`
	PreferredName string   `json:"preferred_name"`
	Strings       []string `json:"strings"`
}

// Concept is one controlled-vocabulary entry as materialized by the
// ingestion pipeline. The engine never mutates a Concept; it only
// annotates projections of it.
type Concept struct {
	CUI           string      `json:"CUI"`
	PreferredName string      `json:"preferred_name"`
	SemanticTypes []string    `json:"STY"`
	Codes         []CodeEntry `json:"codes"`
	Definitions   []string    `json:"definitions"`

	// SearchableText is the denormalized preferred name plus all code
	// strings. Stem coverage is computed against this field.
	SearchableText string `json:"searchable_text"`
}

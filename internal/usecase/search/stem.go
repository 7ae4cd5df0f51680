package search

import (
	"strings"

	"github.com/openvocab/cuisearch/internal/domain/search/hit"
)

// ScoringMode selects the primary ranking signal for ranked hits.
type ScoringMode string

const (
	// ScoreStemCoverage ranks by the fraction of query word-stems
	// present in a hit's searchable text.
	ScoreStemCoverage ScoringMode = "stem-coverage"
	// ScoreIndex ranks by the index's own relevance score.
	ScoreIndex ScoringMode = "index-score"
)

// IsValid reports whether the mode is a recognized scoring policy.
func (m ScoringMode) IsValid() bool {
	return m == ScoreStemCoverage || m == ScoreIndex
}

// coverageRatio computes the fraction of query stems found among the
// stems of the text's whitespace-split words. Returns 0 for an empty
// query stem set.
func coverageRatio(text string, queryStems map[string]struct{}) float64 {
	if len(queryStems) == 0 {
		return 0
	}

	fieldStems := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		fieldStems[stem(w)] = struct{}{}
	}

	matched := 0
	for s := range queryStems {
		if _, ok := fieldStems[s]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(queryStems))
}

// scoreHits assigns a fused score to every ranked hit according to the
// active scoring policy. Pure: returns new hits, input order preserved.
func scoreHits(hits []hit.Hit, queryStems map[string]struct{}, mode ScoringMode) []hit.Hit {
	scored := make([]hit.Hit, len(hits))
	for i, h := range hits {
		switch mode {
		case ScoreIndex:
			scored[i] = h.WithFusedScore(h.IndexScore())
		default:
			c := h.Concept()
			scored[i] = h.WithFusedScore(coverageRatio(c.SearchableText, queryStems))
		}
	}
	return scored
}

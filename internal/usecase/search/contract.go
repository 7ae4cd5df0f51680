package search

import (
	"context"

	"github.com/openvocab/cuisearch/internal/domain/search/hit"
)

// Repository defines the retrieval contract against the full-text index.
type Repository interface {
	// ExactMatches returns hits whose normalized preferred name,
	// identifier, code string or code value equals the query.
	ExactMatches(ctx context.Context, query string) ([]hit.Hit, error)

	// RankedMatches returns the over-fetched relevance candidate
	// window for the given query words.
	RankedMatches(ctx context.Context, words []string, fuzzy bool) ([]hit.Hit, error)
}

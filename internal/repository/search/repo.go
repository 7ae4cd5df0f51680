package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/openvocab/cuisearch/internal/db"
	"github.com/openvocab/cuisearch/internal/domain"
	"github.com/openvocab/cuisearch/internal/domain/search/hit"
)

// Index field names, matching the layout materialized by the ingestion
// pipeline.
const (
	fieldCUI         = "cui"
	fieldNameExact   = "name_exact"
	fieldCodeStrings = "code_strings"
	fieldCodeValues  = "code_values"
	fieldTextLiteral = "text_literal"
	fieldTextSyn     = "text_syn"
	fieldDefinitions = "definitions"
	fieldDoc         = "doc"
)

// exactFields are the normalized TAG fields probed by the exact-match
// step, in deterministic probe order.
var exactFields = []string{fieldNameExact, fieldCUI, fieldCodeStrings, fieldCodeValues}

// Relevance clause weights, descending by intended strength.
const (
	weightLiteralPhrase = 10
	weightLiteralAnd    = 5
	weightSynPhrase     = 4
	weightSynAnd        = 3
	weightDefinitions   = 2
	weightFuzzy         = 1
)

// Config tunes the retrieval behavior.
type Config struct {
	// IndexName is the FT index holding concept documents.
	IndexName string
	// ExactLimit bounds each per-field equality lookup.
	ExactLimit int
	// Overfetch bounds the ranked candidate window. Result sets larger
	// than this are truncated before fusion; deep pagination beyond the
	// window is approximate. This is a capacity bound, not a bug: an
	// unbounded fetch would let a single query exhaust the index.
	Overfetch int
	// MinWordLengthForFuzzy suppresses the fuzzy clause for queries
	// with no sufficiently long word.
	MinWordLengthForFuzzy int
	// SynonymExpansion enables the synonym-analyzed clause variants.
	SynonymExpansion bool
}

func (c *Config) applyDefaults() {
	if c.IndexName == "" {
		c.IndexName = "umls-cui"
	}
	if c.ExactLimit <= 0 {
		c.ExactLimit = 100
	}
	if c.Overfetch <= 0 {
		c.Overfetch = 1000
	}
	if c.MinWordLengthForFuzzy <= 0 {
		c.MinWordLengthForFuzzy = 4
	}
}

// store is the consumer interface for search operations.
type store interface {
	SearchTag(ctx context.Context, q *db.TagQuery) (*db.SearchResult, error)
	SearchRanked(ctx context.Context, q *db.RankedQuery) (*db.SearchResult, error)
}

// Repo retrieves concept hits from the full-text index.
type Repo struct {
	store  store
	cfg    Config
	logger *zap.Logger
}

// New creates a search repository.
func New(s store, cfg Config, logger *zap.Logger) *Repo {
	cfg.applyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repo{store: s, cfg: cfg, logger: logger}
}

// ExactMatches issues one equality lookup per exact-match field and
// unions the hits, deduplicated by document key. The probes run
// concurrently; any failure aborts the whole step. A partial exact set
// would silently under-report, so there is no degraded mode here.
func (r *Repo) ExactMatches(ctx context.Context, query string) ([]hit.Hit, error) {
	results := make([]*db.SearchResult, len(exactFields))

	g, ctx := errgroup.WithContext(ctx)
	for i, field := range exactFields {
		g.Go(func() error {
			sr, err := r.store.SearchTag(ctx, &db.TagQuery{
				IndexName:    r.cfg.IndexName,
				Field:        field,
				Value:        query,
				Limit:        r.cfg.ExactLimit,
				ReturnFields: []string{fieldDoc},
			})
			if err != nil {
				return fmt.Errorf("exact match on %s: %w", field, err)
			}
			results[i] = sr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRetrieval, err)
	}

	seen := make(map[string]struct{})
	var hits []hit.Hit
	for _, sr := range results {
		if sr == nil {
			continue
		}
		for _, entry := range sr.Entries {
			if _, ok := seen[entry.Key]; ok {
				continue
			}
			seen[entry.Key] = struct{}{}
			if h, ok := r.parseEntry(entry, hit.Exact); ok {
				hits = append(hits, h)
			}
		}
	}
	return hits, nil
}

// RankedMatches issues the disjunctive relevance query and returns the
// over-fetched candidate window in index order.
func (r *Repo) RankedMatches(ctx context.Context, words []string, fuzzy bool) ([]hit.Hit, error) {
	if len(words) == 0 {
		return nil, nil
	}

	sr, err := r.store.SearchRanked(ctx, &db.RankedQuery{
		IndexName:    r.cfg.IndexName,
		Clauses:      r.buildClauses(words, fuzzy),
		Limit:        r.cfg.Overfetch,
		ReturnFields: []string{fieldDoc},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: ranked match: %w", domain.ErrRetrieval, err)
	}

	hits := make([]hit.Hit, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		if h, ok := r.parseEntry(entry, hit.Ranked); ok {
			hits = append(hits, h)
		}
	}
	return hits, nil
}

// buildClauses assembles the relevance clause list in descending
// intended weight. At least one clause must match.
func (r *Repo) buildClauses(words []string, fuzzy bool) []db.Clause {
	clauses := []db.Clause{
		{Field: fieldTextLiteral, Terms: words, Phrase: true, Weight: weightLiteralPhrase},
		{Field: fieldTextLiteral, Terms: words, Weight: weightLiteralAnd},
	}

	if r.cfg.SynonymExpansion {
		clauses = append(clauses,
			db.Clause{Field: fieldTextSyn, Terms: words, Phrase: true, Weight: weightSynPhrase},
			db.Clause{Field: fieldTextSyn, Terms: words, Weight: weightSynAnd},
		)
	}

	clauses = append(clauses,
		db.Clause{Field: fieldDefinitions, Terms: words, Weight: weightDefinitions},
	)

	if fuzzy && r.fuzzyApplies(words) {
		clauses = append(clauses, db.Clause{
			Field:       fieldTextLiteral,
			Terms:       words,
			Fuzzy:       true,
			FuzzyMinLen: r.cfg.MinWordLengthForFuzzy,
			Weight:      weightFuzzy,
		})
	}

	return clauses
}

// fuzzyApplies reports whether at least one query word is long enough
// for an edit-distance clause to be meaningful.
func (r *Repo) fuzzyApplies(words []string) bool {
	for _, w := range words {
		if len([]rune(w)) >= r.cfg.MinWordLengthForFuzzy {
			return true
		}
	}
	return false
}

// Package search implements the result fusion and ranking engine: it
// fans out to the exact and ranked retrieval strategies, reconciles
// their outputs into one total order, and serves stable pages of the
// merged ranking.
package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/openvocab/cuisearch/internal/domain"
	"github.com/openvocab/cuisearch/internal/domain/search/hit"
	"github.com/openvocab/cuisearch/internal/domain/search/page"
	"github.com/openvocab/cuisearch/internal/domain/search/request"
)

// Service handles concept search. It is stateless across requests:
// every page request re-runs the full retrieval and fusion pipeline.
type Service struct {
	repo Repository
	mode ScoringMode
}

// New creates a search service ranking by stem coverage.
func New(repo Repository) *Service {
	return &Service{repo: repo, mode: ScoreStemCoverage}
}

// WithScoring overrides the scoring policy. The policy changes result
// order for every multi-strategy query, so it is fixed per deployment.
func (s *Service) WithScoring(mode ScoringMode) *Service {
	if mode.IsValid() {
		s.mode = mode
	}
	return s
}

// Search executes one fusion pipeline run and returns the requested
// page of the merged ranking.
func (s *Service) Search(ctx context.Context, req request.Request) (page.Page, error) {
	norm := normalize(req.Query())
	if len(norm.Words) == 0 {
		return page.Page{}, fmt.Errorf("%w: query is empty after normalization", domain.ErrInvalidQuery)
	}

	// The two retrieval strategies share no data dependency and run
	// concurrently. This is a join point: the fuser needs both result
	// sets in full, and either failure fails the request. No partial
	// results, no automatic retry.
	var exact, ranked []hit.Hit

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		exact, err = s.repo.ExactMatches(gctx, norm.Lower)
		return err
	})
	g.Go(func() error {
		var err error
		ranked, err = s.repo.RankedMatches(gctx, norm.Words, req.Fuzzy())
		return err
	})
	if err := g.Wait(); err != nil {
		return page.Page{}, err
	}

	// Concepts already surfaced exactly are dropped from the ranked
	// set before scoring; an exact match always represents its CUI.
	ranked = excludeCUIs(ranked, exact)

	scored := scoreHits(ranked, norm.Stems, s.mode)
	fused := fuse(exact, scored)

	return paginate(fused, req.PageIndex(), req.Size()), nil
}

func excludeCUIs(hits, surfaced []hit.Hit) []hit.Hit {
	if len(surfaced) == 0 {
		return hits
	}
	excluded := make(map[string]struct{}, len(surfaced))
	for _, h := range surfaced {
		excluded[h.CUI()] = struct{}{}
	}
	// A fresh slice: the input aliases the repository's result and must
	// not be rewritten in place.
	kept := make([]hit.Hit, 0, len(hits))
	for _, h := range hits {
		if _, ok := excluded[h.CUI()]; !ok {
			kept = append(kept, h)
		}
	}
	return kept
}

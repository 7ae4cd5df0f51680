package hit

import (
	"math"

	"github.com/openvocab/cuisearch/internal/domain"
)

// Kind describes which retrieval strategy surfaced a hit.
type Kind string

const (
	// Exact marks a hit found by normalized-field equality.
	Exact Kind = "exact"
	// Ranked marks a hit found by relevance search.
	Ranked Kind = "ranked"
)

// Hit is a single candidate result surfaced by one retrieval call.
type Hit struct {
	concept    domain.Concept
	indexScore float64
	kind       Kind
	fusedScore float64
}

// New creates a hit. The fused score starts unassigned (zero); the
// fuser and scorer assign it.
func New(concept domain.Concept, indexScore float64, kind Kind) Hit {
	return Hit{concept: concept, indexScore: indexScore, kind: kind}
}

// Concept returns the concept projection carried by the hit.
func (h *Hit) Concept() domain.Concept { return h.concept }

// CUI returns the concept identifier, the dedup key.
func (h *Hit) CUI() string { return h.concept.CUI }

// IndexScore returns the index-assigned relevance score. It is not
// comparable across different query types.
func (h *Hit) IndexScore() float64 { return h.indexScore }

// Kind returns the retrieval strategy that produced the hit.
func (h *Hit) Kind() Kind { return h.kind }

// FusedScore returns the single comparable rank value.
func (h *Hit) FusedScore() float64 { return h.fusedScore }

// WithFusedScore returns a copy of the hit with the fused score set.
func (h Hit) WithFusedScore(score float64) Hit {
	h.fusedScore = score
	return h
}

// WithInfiniteScore returns a copy ranked above every scored hit.
// Exact matches carry infinite priority.
func (h Hit) WithInfiniteScore() Hit {
	h.fusedScore = math.Inf(1)
	return h
}

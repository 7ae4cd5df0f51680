package search

import (
	"sort"

	"github.com/openvocab/cuisearch/internal/domain/search/hit"
)

// fuse merges exact and ranked hits into the authoritative ranking for
// the whole query. Exact hits carry infinite priority and are
// concatenated first, so on a CUI collision the exact hit always wins
// (first-seen-wins). The order is total: score descending, ties broken
// by CUI ascending, so repeated identical requests return identical
// orderings.
func fuse(exact, ranked []hit.Hit) []hit.Hit {
	seen := make(map[string]struct{}, len(exact)+len(ranked))
	fused := make([]hit.Hit, 0, len(exact)+len(ranked))

	for _, h := range exact {
		if _, ok := seen[h.CUI()]; ok {
			continue
		}
		seen[h.CUI()] = struct{}{}
		fused = append(fused, h.WithInfiniteScore())
	}

	for _, h := range ranked {
		if _, ok := seen[h.CUI()]; ok {
			continue
		}
		seen[h.CUI()] = struct{}{}
		fused = append(fused, h)
	}

	sort.Slice(fused, func(i, j int) bool {
		if fused[i].FusedScore() != fused[j].FusedScore() {
			return fused[i].FusedScore() > fused[j].FusedScore()
		}
		return fused[i].CUI() < fused[j].CUI()
	})

	return fused
}

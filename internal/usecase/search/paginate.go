package search

import (
	"github.com/openvocab/cuisearch/internal/domain/search/hit"
	"github.com/openvocab/cuisearch/internal/domain/search/page"
)

// paginate slices the fused ranking into the requested page. A page
// beyond the end yields an empty result list, not an error. The total
// is the deduplicated length of the whole ranking, not the index's
// pre-dedup count.
func paginate(fused []hit.Hit, pageIndex, size int) page.Page {
	if pageIndex < 0 {
		pageIndex = 0
	}

	from := pageIndex * size
	to := from + size
	if from > len(fused) {
		from = len(fused)
	}
	if to > len(fused) {
		to = len(fused)
	}

	return page.New(len(fused), pageIndex+1, size, fused[from:to])
}

package page

import "github.com/openvocab/cuisearch/internal/domain/search/hit"

// Page is the externally visible result of one search request: a slice
// of the fully fused ranking plus the corrected total after dedup.
type Page struct {
	total   int
	number  int
	size    int
	results []hit.Hit
}

// New creates a page.
func New(total, number, size int, results []hit.Hit) Page {
	return Page{total: total, number: number, size: size, results: results}
}

// Total returns the deduplicated result count for the whole query.
func (p *Page) Total() int { return p.total }

// Number returns the 1-based page number.
func (p *Page) Number() int { return p.number }

// Size returns the requested page size.
func (p *Page) Size() int { return p.size }

// Results returns the ordered hits of this page.
func (p *Page) Results() []hit.Hit { return p.results }

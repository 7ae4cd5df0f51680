package request

import (
	"fmt"
	"strings"

	"github.com/openvocab/cuisearch/internal/domain"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength  = 4096
	DefaultPageSize = 100
	MaxPageSize     = 500
)

// Request is a validated, immutable search request. One Request flows
// through the whole pipeline; no state is shared between requests.
type Request struct {
	query string
	page  int
	size  int
	fuzzy bool
}

// New validates and normalizes search parameters.
// The query must be non-blank. Page is 1-based and clamps to 1; size
// defaults to DefaultPageSize and clamps to MaxPageSize.
func New(query string, page, size int, fuzzy bool) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, fmt.Errorf("%w: query must not be empty", domain.ErrInvalidQuery)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Request{query: query, page: page, size: size, fuzzy: fuzzy}, nil
}

// Query returns the trimmed raw query text.
func (r *Request) Query() string { return r.query }

// Page returns the 1-based requested page number.
func (r *Request) Page() int { return r.page }

// PageIndex returns the 0-based page index used for slicing.
func (r *Request) PageIndex() int { return r.page - 1 }

// Size returns the page size.
func (r *Request) Size() int { return r.size }

// Fuzzy reports whether the edit-distance clause was requested.
func (r *Request) Fuzzy() bool { return r.fuzzy }

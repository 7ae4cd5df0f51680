package db

import (
	"context"
	"time"
)

// Store is the database facade. Consumers depend on the narrow
// sub-interfaces, not on Store itself.
type Store interface {
	Pinger
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Searcher provides read-only search operations over FT indexes.
type Searcher interface {
	SearchTag(ctx context.Context, q *TagQuery) (*SearchResult, error)
	SearchRanked(ctx context.Context, q *RankedQuery) (*SearchResult, error)
}

package domain

import "errors"

var (
	// ErrInvalidQuery signals a missing or blank search query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrRetrieval signals an index retrieval failure.
	ErrRetrieval = errors.New("retrieval failed")
)

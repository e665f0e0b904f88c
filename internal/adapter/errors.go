package adapter

import "errors"

// Sentinel errors returned by the catalog client. Callers should match
// against them with [errors.Is].
var (
	// ErrContentNotFound is returned when the upstream metadata service
	// answers 404 for the requested title or category.
	ErrContentNotFound = errors.New("content was not found upstream")

	// ErrUpstreamFailure is returned for any other non-2xx upstream answer.
	ErrUpstreamFailure = errors.New("upstream catalog request failed")
)

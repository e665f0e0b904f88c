package models

import "encoding/json"

// MediaType selects which upstream catalog namespace a request targets.
type MediaType string

const (
	// MediaTypeMovie targets the movie catalog.
	MediaTypeMovie MediaType = "movie"

	// MediaTypeTV targets the television catalog.
	MediaTypeTV MediaType = "tv"

	// MediaTypePerson targets people search. Only valid for search requests.
	MediaTypePerson MediaType = "person"
)

// CatalogPage is one page of results returned by the upstream metadata
// service. Individual entries are passed through untouched: the server
// proxies catalog payloads, it does not interpret them.
type CatalogPage struct {
	Page         int               `json:"page"`
	Results      []json.RawMessage `json:"results"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
}

// Package adapter implements clients for external collaborators.
// Its only member today is the catalog client proxying the TMDB-compatible
// metadata API that supplies movie and TV data for the browse endpoints.
package adapter

import (
	"context"

	"github.com/voddeck/voddeck/models"
)

// CatalogClient is the boundary to the upstream metadata service. Payloads
// are returned as opaque JSON: the server forwards them to API clients
// without interpreting their structure.
type CatalogClient interface {
	// Trending returns the current trending page for the given media type.
	Trending(ctx context.Context, mediaType models.MediaType) (models.CatalogPage, error)

	// Videos returns the trailers/teasers attached to one title.
	Videos(ctx context.Context, mediaType models.MediaType, id string) (models.CatalogPage, error)

	// Details returns the full metadata document for one title.
	Details(ctx context.Context, mediaType models.MediaType, id string) ([]byte, error)

	// Similar returns titles related to the given one.
	Similar(ctx context.Context, mediaType models.MediaType, id string) (models.CatalogPage, error)

	// Category returns a named list such as "popular" or "top_rated".
	Category(ctx context.Context, mediaType models.MediaType, category string) (models.CatalogPage, error)

	// Search runs a text search in the movie, tv or person namespace.
	Search(ctx context.Context, mediaType models.MediaType, query string) (models.CatalogPage, error)
}

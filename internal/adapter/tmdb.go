package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/voddeck/voddeck/internal/config"
	"github.com/voddeck/voddeck/internal/logger"
	"github.com/voddeck/voddeck/models"
)

// tmdbClient is the resty-backed implementation of [CatalogClient] against a
// TMDB-compatible HTTP API. The API key is sent as a bearer token on every
// request. The client is safe for concurrent use.
type tmdbClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewTMDBClient constructs a [CatalogClient] for the metadata API described
// by cfg. Base URL and timeout fall back to sane defaults when unset.
func NewTMDBClient(cfg config.Adapter, log *logger.Logger) CatalogClient {
	baseURL := cfg.TMDBBaseURL
	if baseURL == "" {
		baseURL = "https://api.themoviedb.org/3"
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.TMDBAPIKey).
		SetHeader("Accept", "application/json")

	log.Debug().Str("base_url", baseURL).Msg("catalog client created")

	return &tmdbClient{client: cli, logger: log}
}

func (t *tmdbClient) Trending(ctx context.Context, mediaType models.MediaType) (models.CatalogPage, error) {
	return t.fetchPage(ctx, fmt.Sprintf("/trending/%s/day", mediaType), nil)
}

func (t *tmdbClient) Videos(ctx context.Context, mediaType models.MediaType, id string) (models.CatalogPage, error) {
	return t.fetchPage(ctx, fmt.Sprintf("/%s/%s/videos", mediaType, id), nil)
}

func (t *tmdbClient) Details(ctx context.Context, mediaType models.MediaType, id string) ([]byte, error) {
	return t.fetch(ctx, fmt.Sprintf("/%s/%s", mediaType, id), nil)
}

func (t *tmdbClient) Similar(ctx context.Context, mediaType models.MediaType, id string) (models.CatalogPage, error) {
	return t.fetchPage(ctx, fmt.Sprintf("/%s/%s/similar", mediaType, id), nil)
}

func (t *tmdbClient) Category(ctx context.Context, mediaType models.MediaType, category string) (models.CatalogPage, error) {
	return t.fetchPage(ctx, fmt.Sprintf("/%s/%s", mediaType, category), nil)
}

func (t *tmdbClient) Search(ctx context.Context, mediaType models.MediaType, query string) (models.CatalogPage, error) {
	return t.fetchPage(ctx, fmt.Sprintf("/search/%s", mediaType), map[string]string{"query": query})
}

// fetch performs one GET against the upstream API and returns the raw body.
// Upstream 404 maps to [ErrContentNotFound]; any other non-2xx answer maps
// to [ErrUpstreamFailure] with the status attached.
func (t *tmdbClient) fetch(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	log := logger.FromContext(ctx)

	req := t.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("catalog request failed")
		return nil, fmt.Errorf("catalog request: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, ErrContentNotFound
	case resp.IsError():
		log.Error().Str("path", path).Int("status", resp.StatusCode()).Msg("upstream returned error status")
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamFailure, resp.StatusCode())
	}

	return resp.Body(), nil
}

// fetchPage performs one GET and decodes the body as a results page.
func (t *tmdbClient) fetchPage(ctx context.Context, path string, query map[string]string) (models.CatalogPage, error) {
	body, err := t.fetch(ctx, path, query)
	if err != nil {
		return models.CatalogPage{}, err
	}

	var page models.CatalogPage
	if err = json.Unmarshal(body, &page); err != nil {
		return models.CatalogPage{}, fmt.Errorf("decoding catalog page: %w", err)
	}

	return page, nil
}

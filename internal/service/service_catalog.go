package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/voddeck/voddeck/internal/adapter"
	"github.com/voddeck/voddeck/internal/logger"
	"github.com/voddeck/voddeck/internal/metrics"
	"github.com/voddeck/voddeck/models"
)

// catalogService proxies the upstream metadata service. Every upstream call
// is timed on the shared metrics collector.
type catalogService struct {
	client    adapter.CatalogClient
	collector *metrics.Collector
	logger    *logger.Logger
}

// NewCatalogService constructs a CatalogService over the given upstream
// client. collector may not be nil; upstream latencies are observed on it.
func NewCatalogService(client adapter.CatalogClient, collector *metrics.Collector, logger *logger.Logger) CatalogService {
	return &catalogService{
		client:    client,
		collector: collector,
		logger:    logger,
	}
}

// TrendingTitle picks one title uniformly at random from the current
// trending page, mirroring a "play something" style entry point.
func (c *catalogService) TrendingTitle(ctx context.Context, mediaType models.MediaType) (json.RawMessage, error) {
	page, err := c.timedPage(ctx, func() (models.CatalogPage, error) {
		return c.client.Trending(ctx, mediaType)
	})
	if err != nil {
		return nil, err
	}

	if len(page.Results) == 0 {
		return nil, ErrNoTrendingContent
	}

	return page.Results[rand.IntN(len(page.Results))], nil
}

func (c *catalogService) Trailers(ctx context.Context, mediaType models.MediaType, id string) ([]json.RawMessage, error) {
	page, err := c.timedPage(ctx, func() (models.CatalogPage, error) {
		return c.client.Videos(ctx, mediaType, id)
	})
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

func (c *catalogService) Details(ctx context.Context, mediaType models.MediaType, id string) (json.RawMessage, error) {
	start := time.Now()
	body, err := c.client.Details(ctx, mediaType, id)
	c.collector.ObserveUpstream(time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("fetching %s details: %w", mediaType, err)
	}

	return json.RawMessage(body), nil
}

func (c *catalogService) Similar(ctx context.Context, mediaType models.MediaType, id string) ([]json.RawMessage, error) {
	page, err := c.timedPage(ctx, func() (models.CatalogPage, error) {
		return c.client.Similar(ctx, mediaType, id)
	})
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

func (c *catalogService) Category(ctx context.Context, mediaType models.MediaType, category string) ([]json.RawMessage, error) {
	page, err := c.timedPage(ctx, func() (models.CatalogPage, error) {
		return c.client.Category(ctx, mediaType, category)
	})
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

func (c *catalogService) Search(ctx context.Context, mediaType models.MediaType, query string) ([]json.RawMessage, error) {
	page, err := c.timedPage(ctx, func() (models.CatalogPage, error) {
		return c.client.Search(ctx, mediaType, query)
	})
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

// timedPage runs one upstream page fetch and observes its duration.
func (c *catalogService) timedPage(ctx context.Context, fetch func() (models.CatalogPage, error)) (models.CatalogPage, error) {
	start := time.Now()
	page, err := fetch()
	c.collector.ObserveUpstream(time.Since(start))
	if err != nil {
		return models.CatalogPage{}, err
	}

	return page, nil
}

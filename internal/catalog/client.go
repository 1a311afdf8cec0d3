package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/logger"
)

// Client fetches the weapon and content tier catalogs over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a catalog client. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, maxRetries int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		retryDelay: DefaultRetryDelay,
	}
}

// FetchCatalog fetches weapons and content tiers concurrently and returns once both are in.
func (c *Client) FetchCatalog(ctx context.Context) (*Catalog, error) {
	var cat Catalog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		weapons, err := c.FetchWeapons(gctx)
		if err != nil {
			return err
		}
		cat.Weapons = weapons
		return nil
	})
	g.Go(func() error {
		tiers, err := c.FetchContentTiers(gctx)
		if err != nil {
			return err
		}
		cat.Tiers = tiers
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// FetchWeapons returns every weapon with its nested skins.
func (c *Client) FetchWeapons(ctx context.Context) ([]Weapon, error) {
	return getData[Weapon](ctx, c, PathWeapons)
}

// FetchContentTiers returns the content tier metadata.
func (c *Client) FetchContentTiers(ctx context.Context) ([]ContentTier, error) {
	return getData[ContentTier](ctx, c, PathContentTiers)
}

func getData[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	resp, err := c.doRequest(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", domain.ErrCatalogUnavailable, path, resp.StatusCode)
	}

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToDecode, path, err)
	}
	if env.Status != 0 && env.Status != http.StatusOK {
		return nil, fmt.Errorf("%w: %s envelope status %d", domain.ErrCatalogUnavailable, path, env.Status)
	}

	return env.Data, nil
}

// doRequest performs a GET with retry on transport errors and 5xx responses
func (c *Client) doRequest(ctx context.Context, path string) (*http.Response, error) {
	log := logger.FromContext(ctx)
	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(rand.IntN(maxRetryJitterMillis)) * time.Millisecond //nolint:gosec // backoff jitter
			delay := c.retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			log.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateRequest, err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			log.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt, "path", path)
			continue
		}

		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		log.Warn(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt, "path", path)
	}

	return nil, fmt.Errorf("%w: %s: %w", domain.ErrCatalogUnavailable, ErrContextMaxRetriesExceeded, lastErr)
}

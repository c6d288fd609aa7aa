// Package catalog talks to the remote collection: one paginated listing
// endpoint and one point-lookup endpoint. Listing failures are returned as
// errors; per-item failures are reported as absent (nil) results.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dexview/internal/config"
	"dexview/internal/errors"
	"dexview/internal/log"
	"dexview/pkg/types"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// maxBodySize caps how much of a response body is read
const maxBodySize = 8 << 20

// Client reads listing pages and items from the remote catalog
type Client struct {
	baseURL     string
	pageSize    int
	timeout     time.Duration
	concurrency int
	userAgent   string
	httpClient  *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL sets the collection resource URL
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithPageSize sets the number of references per listing page
func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithTimeout bounds every request; zero disables the bound
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithConcurrency limits parallel item fetches; zero means unlimited
func WithConcurrency(n int) Option {
	return func(c *Client) {
		c.concurrency = n
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the default collection unless overridden
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    config.DefaultBaseURL,
		pageSize:   config.DefaultPageSize,
		userAgent:  "dexview",
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates a client from the api section of cfg
func NewFromConfig(cfg *config.Config) *Client {
	return NewClient(
		WithBaseURL(cfg.API.BaseURL),
		WithPageSize(cfg.API.PageSize),
		WithTimeout(cfg.RequestTimeout()),
		WithConcurrency(cfg.API.Concurrency),
		WithUserAgent(cfg.API.UserAgent),
	)
}

// ListingURL builds a listing URL for an explicit offset and limit
func (c *Client) ListingURL(offset, limit int) string {
	if limit <= 0 {
		limit = c.pageSize
	}
	if offset < 0 {
		offset = 0
	}
	return fmt.Sprintf("%s?limit=%d&offset=%d", c.baseURL, limit, offset)
}

// DefaultListingURL is the first page at the configured page size
func (c *Client) DefaultListingURL() string {
	return c.ListingURL(0, c.pageSize)
}

// LookupURL builds the point-lookup URL for a name or numeric id
func (c *Client) LookupURL(nameOrID string) string {
	return c.baseURL + "/" + url.PathEscape(nameOrID)
}

// FetchListing reads one listing page. Transport failures, non-success
// statuses and undecodable bodies all surface as a listing fetch error.
func (c *Client) FetchListing(ctx context.Context, cursorURL string) (*types.ListingPage, error) {
	body, err := c.get(ctx, cursorURL, errors.ListingFetchFailed)
	if err != nil {
		return nil, err
	}

	var payload listingPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.NewListingFetchError(cursorURL, 0, errors.Wrap(err, "decode listing"))
	}
	return payload.toPage(), nil
}

// FetchItem reads one item by its reference URL. Any failure yields nil.
func (c *Client) FetchItem(ctx context.Context, referenceURL string) *types.Item {
	item, err := c.fetchItem(ctx, referenceURL)
	if err != nil {
		log.LogWithError(err).Debug("Item unavailable")
		return nil
	}
	return item
}

// FetchItemByQuery looks up one item by an already normalized name or id.
// Any failure, including not found, yields nil.
func (c *Client) FetchItemByQuery(ctx context.Context, nameOrID string) *types.Item {
	if nameOrID == "" {
		return nil
	}
	return c.FetchItem(ctx, c.LookupURL(nameOrID))
}

// FetchItems fetches every reference concurrently and returns once all of
// them resolved. The result is index-aligned with refs; absent items are nil.
func (c *Client) FetchItems(ctx context.Context, refs []types.Reference) []*types.Item {
	results := make([]*types.Item, len(refs))

	var g errgroup.Group
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			results[i] = c.FetchItem(ctx, ref.URL)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// FetchImage returns the raw bytes behind an image reference
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	if imageURL == "" {
		return nil, errors.NewFetchError("no image reference", "", 0, errors.ImageFetchFailed, nil)
	}
	return c.get(ctx, imageURL, errors.ImageFetchFailed)
}

func (c *Client) fetchItem(ctx context.Context, referenceURL string) (*types.Item, error) {
	body, err := c.get(ctx, referenceURL, errors.ItemFetchFailed)
	if err != nil {
		return nil, err
	}

	var payload itemPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.NewFetchError("item fetch failed", referenceURL, 0, errors.ItemFetchFailed, errors.Wrap(err, "decode item"))
	}
	if payload.ID <= 0 {
		return nil, errors.NewFetchError("item has no positive id", referenceURL, 0, errors.ItemFetchFailed, nil)
	}
	return payload.toItem(), nil
}

func (c *Client) get(ctx context.Context, target string, kind errors.ErrorKind) ([]byte, error) {
	msg := fetchMessage(kind)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	logger := log.LogWithFields(log.F("request_id", requestID), log.F("url", target))
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.NewFetchError(msg, target, 0, kind, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewFetchError(msg, target, 0, kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, errors.NewFetchError(msg, target, resp.StatusCode, kind, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.NewFetchError(msg, target, resp.StatusCode, kind, err)
	}

	logger.With(
		log.F("status", resp.StatusCode),
		log.F("size", humanize.Bytes(uint64(len(body)))),
		log.F("elapsed", time.Since(start).Round(time.Millisecond)),
	).Debug("GET complete")

	return body, nil
}

func fetchMessage(kind errors.ErrorKind) string {
	switch kind {
	case errors.ListingFetchFailed:
		return "listing fetch failed"
	case errors.ImageFetchFailed:
		return "image fetch failed"
	default:
		return "item fetch failed"
	}
}

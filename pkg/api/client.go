// Package api is a client for the Magic: The Gathering REST API.
//
// See: https://docs.magicthegathering.io/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/flanksource/commons/logger"
	"github.com/mtgdex/mtgdex/pkg/cache"
	"github.com/mtgdex/mtgdex/pkg/card"
	"github.com/mtgdex/mtgdex/pkg/httpclient"
)

// DefaultBaseURL is the production endpoint of the MTG API.
const DefaultBaseURL = "https://api.magicthegathering.io/v1"

// Client talks to the MTG API. The zero value is not usable; construct
// with NewClient.
type Client struct {
	baseURL  string
	client   *http.Client
	pageSize int
	cacheDir string
	cacheTTL time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint, normally
// a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithPageSize sets the default page size for list requests.
func WithPageSize(n int) Option {
	return func(c *Client) {
		c.pageSize = n
	}
}

// WithCache enables on-disk response caching. A ttl of zero keeps
// entries forever.
func WithCache(dir string, ttl time.Duration) Option {
	return func(c *Client) {
		c.cacheDir = dir
		c.cacheTTL = ttl
	}
}

// NewClient creates an MTG API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  httpclient.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type response struct {
	body   []byte
	header http.Header
}

type cardEnvelope struct {
	Card *card.Card `json:"card"`
}

type cardsEnvelope struct {
	Cards []card.Card `json:"cards"`
}

type setsEnvelope struct {
	Sets []card.Set `json:"sets"`
}

// CardByID fetches a single card by its multiverse ID.
func (c *Client) CardByID(ctx context.Context, id uint64) (*card.Card, error) {
	res, err := c.get(ctx, fmt.Sprintf("%s/cards/%d", c.baseURL, id))
	if err != nil {
		return nil, err
	}

	var env cardEnvelope
	if err := json.Unmarshal(res.body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode card %d: %w", id, err)
	}
	if env.Card == nil || env.Card.Name == "" {
		return nil, &ErrCardNotFound{ID: id}
	}

	return env.Card, nil
}

// CardsByExactName returns every printing of the card with exactly the
// given name. An empty result is an ErrNoSuchCardName.
func (c *Client) CardsByExactName(ctx context.Context, name string) ([]card.Card, error) {
	cards, _, err := c.SearchCards(ctx, SearchQuery{Name: name, ExactName: true})
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, &ErrNoSuchCardName{Name: name}
	}
	return cards, nil
}

// SearchCards runs a /cards query and returns the matching page along
// with pagination info. PageInfo is nil when the response headers are
// unusable; the cards are still returned.
func (c *Client) SearchCards(ctx context.Context, q SearchQuery) ([]card.Card, *PageInfo, error) {
	if q.PageSize == 0 && c.pageSize > 0 {
		q.PageSize = c.pageSize
	}

	u := c.baseURL + "/cards"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	res, err := c.get(ctx, u)
	if err != nil {
		return nil, nil, err
	}

	var env cardsEnvelope
	if err := json.Unmarshal(res.body, &env); err != nil {
		return nil, nil, fmt.Errorf("failed to decode cards from %s: %w", u, err)
	}

	info, err := ParsePageInfo(res.header)
	if err != nil {
		logger.V(3).Infof("page info unavailable for %s: %v", u, err)
		info = nil
	}

	return env.Cards, info, nil
}

// CardsPage fetches one page of the full card catalog. Pages are
// 1-based; a page past the end is an ErrNoSuchPage.
func (c *Client) CardsPage(ctx context.Context, page uint64) ([]card.Card, *PageInfo, error) {
	cards, info, err := c.SearchCards(ctx, SearchQuery{Page: page})
	if err != nil {
		return nil, nil, err
	}
	if len(cards) == 0 {
		return nil, info, &ErrNoSuchPage{Page: page}
	}
	return cards, info, nil
}

// Sets lists expansions, optionally filtered by (partial) name.
func (c *Client) Sets(ctx context.Context, name string) ([]card.Set, error) {
	u := c.baseURL + "/sets"
	if name != "" {
		u += "?name=" + url.QueryEscape(name)
	}

	res, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var env setsEnvelope
	if err := json.Unmarshal(res.body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode sets from %s: %w", u, err)
	}

	return env.Sets, nil
}

// Ratelimit reports the remaining request budget by issuing the
// smallest list request the API serves.
func (c *Client) Ratelimit(ctx context.Context) (*PageInfo, error) {
	_, info, err := c.SearchCards(ctx, SearchQuery{Page: 1, PageSize: 1})
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, &ErrHeaderMissing{Name: headerRatelimitRemaining}
	}
	return info, nil
}

// get performs a GET against the API, consulting the response cache
// first. Successful bodies are cached together with the pagination
// headers.
func (c *Client) get(ctx context.Context, rawURL string) (*response, error) {
	if entry, ok := cache.Get(c.cacheDir, rawURL, c.cacheTTL); ok {
		header := http.Header{}
		for k, v := range entry.Headers {
			header.Set(k, v)
		}
		return &response{body: entry.Body, header: header}, nil
	}

	logger.Tracef("GET %s", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", rawURL, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ErrFailedRequest{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}

	if c.cacheDir != "" {
		headers := map[string]string{}
		for _, name := range pageInfoHeaders {
			if v := resp.Header.Get(name); v != "" {
				headers[name] = v
			}
		}
		if err := cache.Put(c.cacheDir, rawURL, cache.Entry{Body: body, Headers: headers}); err != nil {
			logger.Warnf("failed to cache response for %s: %v", rawURL, err)
		}
	}

	return &response{body: body, header: resp.Header}, nil
}

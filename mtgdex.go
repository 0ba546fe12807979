// Package mtgdex is a client library for the Magic: The Gathering API.
//
// The root package wraps pkg/api with one-call helpers:
//
//	c, err := mtgdex.FindCardByID(ctx, 386616)
//	cards, err := mtgdex.FindCardsByName(ctx, "Narset, Enlightened Master")
//	page, info, err := mtgdex.BrowsePage(ctx, 1)
//
// Callers needing more control (custom endpoint, caching, page sizes)
// should construct an api.Client directly.
package mtgdex

import (
	"context"

	"github.com/mtgdex/mtgdex/pkg/api"
	"github.com/mtgdex/mtgdex/pkg/card"
)

// Re-export commonly used types for the public API
type (
	Card        = card.Card
	Set         = card.Set
	PageInfo    = api.PageInfo
	SearchQuery = api.SearchQuery
)

// Re-export client options
type Option = api.Option

var (
	WithBaseURL    = api.WithBaseURL
	WithHTTPClient = api.WithHTTPClient
	WithPageSize   = api.WithPageSize
	WithCache      = api.WithCache
)

// FindCardByID fetches a single card by its multiverse ID.
func FindCardByID(ctx context.Context, id uint64, opts ...Option) (*Card, error) {
	return api.NewClient(opts...).CardByID(ctx, id)
}

// FindCardsByName returns every printing of the card with exactly the
// given name.
func FindCardsByName(ctx context.Context, name string, opts ...Option) ([]Card, error) {
	return api.NewClient(opts...).CardsByExactName(ctx, name)
}

// SearchCards runs an arbitrary card search.
func SearchCards(ctx context.Context, q SearchQuery, opts ...Option) ([]Card, *PageInfo, error) {
	return api.NewClient(opts...).SearchCards(ctx, q)
}

// BrowsePage fetches one page of the full card catalog (1-based).
func BrowsePage(ctx context.Context, page uint64, opts ...Option) ([]Card, *PageInfo, error) {
	return api.NewClient(opts...).CardsPage(ctx, page)
}

// ListSets lists expansions, optionally filtered by partial name.
func ListSets(ctx context.Context, name string, opts ...Option) ([]Set, error) {
	return api.NewClient(opts...).Sets(ctx, name)
}

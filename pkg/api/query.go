package api

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchQuery describes a /cards search. Zero-value fields are omitted
// from the request.
type SearchQuery struct {
	// Name filters by card name; partial matches by default
	Name string
	// ExactName quotes the name so only exact matches are returned
	ExactName bool
	// Set filters by three-letter set code
	Set string
	// Rarity filters by printed rarity (Common, Uncommon, Rare, Mythic, ...)
	Rarity string
	// Colors filters by color names, AND-combined
	Colors []string
	// Type matches against the full type line
	Type string
	// Page selects the result page, 1-based
	Page uint64
	// PageSize overrides the server default of 100 cards per page
	PageSize int
}

// Encode renders the query as a URL query string.
func (q SearchQuery) Encode() string {
	v := url.Values{}

	if q.Name != "" {
		name := q.Name
		// The API treats a quoted name as an exact match
		if q.ExactName {
			name = `"` + name + `"`
		}
		v.Set("name", name)
	}
	if q.Set != "" {
		v.Set("set", q.Set)
	}
	if q.Rarity != "" {
		v.Set("rarity", q.Rarity)
	}
	if len(q.Colors) > 0 {
		v.Set("colors", strings.Join(q.Colors, ","))
	}
	if q.Type != "" {
		v.Set("types", q.Type)
	}
	if q.Page > 0 {
		v.Set("page", strconv.FormatUint(q.Page, 10))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	return v.Encode()
}

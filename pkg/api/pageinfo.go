package api

import (
	"fmt"
	"net/http"
	"strconv"
)

// Header names the MTG API uses for pagination and rate limiting.
const (
	headerLink               = "Link"
	headerPageSize           = "Page-Size"
	headerCount              = "Count"
	headerTotalCount         = "Total-Count"
	headerRatelimitLimit     = "Ratelimit-Limit"
	headerRatelimitRemaining = "Ratelimit-Remaining"
)

// pageInfoHeaders lists the headers worth caching alongside a body.
var pageInfoHeaders = []string{
	headerLink,
	headerPageSize,
	headerCount,
	headerTotalCount,
	headerRatelimitLimit,
	headerRatelimitRemaining,
}

// PageInfo carries the pagination and rate-limit state the API reports
// on list responses.
type PageInfo struct {
	// Link is the raw RFC 5988 Link header with first/last/next relations
	Link string `json:"link,omitempty"`
	// PageSize is the server-side page size
	PageSize int `json:"pageSize"`
	// Count is the number of cards on this page
	Count int `json:"count"`
	// TotalCount is the number of cards matching the query across all pages
	TotalCount int `json:"totalCount"`
	// RatelimitLimit is the hourly request budget for this client IP
	RatelimitLimit int `json:"ratelimitLimit"`
	// RatelimitRemaining is the remaining request budget
	RatelimitRemaining int `json:"ratelimitRemaining"`
}

// TotalPages derives the page count from TotalCount and PageSize.
func (p PageInfo) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// ParsePageInfo extracts PageInfo from response headers. All headers
// are required; list endpoints behind header-stripping proxies should
// treat the error as advisory.
func ParsePageInfo(h http.Header) (*PageInfo, error) {
	link, err := headerValue(h, headerLink)
	if err != nil {
		return nil, err
	}

	info := &PageInfo{Link: link}
	for _, field := range []struct {
		name string
		dst  *int
	}{
		{headerPageSize, &info.PageSize},
		{headerCount, &info.Count},
		{headerTotalCount, &info.TotalCount},
		{headerRatelimitLimit, &info.RatelimitLimit},
		{headerRatelimitRemaining, &info.RatelimitRemaining},
	} {
		raw, err := headerValue(h, field.name)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("header %s is not an integer: %w", field.name, err)
		}
		*field.dst = n
	}

	return info, nil
}

func headerValue(h http.Header, name string) (string, error) {
	v := h.Get(name)
	if v == "" {
		return "", &ErrHeaderMissing{Name: name}
	}
	return v, nil
}

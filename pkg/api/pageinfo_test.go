package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullHeaders() http.Header {
	h := http.Header{}
	h.Set("Link", `<https://api.magicthegathering.io/v1/cards?page=937>; rel="last"`)
	h.Set("Page-Size", "100")
	h.Set("Count", "100")
	h.Set("Total-Count", "93643")
	h.Set("Ratelimit-Limit", "1000")
	h.Set("Ratelimit-Remaining", "976")
	return h
}

func TestParsePageInfo(t *testing.T) {
	info, err := ParsePageInfo(fullHeaders())
	require.NoError(t, err)

	assert.Equal(t, 100, info.PageSize)
	assert.Equal(t, 100, info.Count)
	assert.Equal(t, 93643, info.TotalCount)
	assert.Equal(t, 1000, info.RatelimitLimit)
	assert.Equal(t, 976, info.RatelimitRemaining)
	assert.Contains(t, info.Link, `rel="last"`)
}

func TestParsePageInfoMissingHeader(t *testing.T) {
	for _, name := range pageInfoHeaders {
		t.Run(name, func(t *testing.T) {
			h := fullHeaders()
			h.Del(name)

			_, err := ParsePageInfo(h)
			var missing *ErrHeaderMissing
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, name, missing.Name)
		})
	}
}

func TestParsePageInfoConversionError(t *testing.T) {
	h := fullHeaders()
	h.Set("Count", " 12 ")

	_, err := ParsePageInfo(h)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Count is not an integer")
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name string
		info PageInfo
		want int
	}{
		{name: "exact multiple", info: PageInfo{PageSize: 100, TotalCount: 200}, want: 2},
		{name: "partial last page", info: PageInfo{PageSize: 100, TotalCount: 93643}, want: 937},
		{name: "zero page size", info: PageInfo{TotalCount: 100}, want: 0},
		{name: "empty result", info: PageInfo{PageSize: 100}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.TotalPages())
		})
	}
}

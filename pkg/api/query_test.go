package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQueryEncode(t *testing.T) {
	tests := []struct {
		name  string
		query SearchQuery
		want  url.Values
	}{
		{
			name:  "empty query",
			query: SearchQuery{},
			want:  url.Values{},
		},
		{
			name:  "partial name",
			query: SearchQuery{Name: "Narset"},
			want:  url.Values{"name": {"Narset"}},
		},
		{
			name:  "exact name is quoted",
			query: SearchQuery{Name: "Narset, Enlightened Master", ExactName: true},
			want:  url.Values{"name": {`"Narset, Enlightened Master"`}},
		},
		{
			name: "full filter set",
			query: SearchQuery{
				Set:      "KTK",
				Rarity:   "Mythic",
				Colors:   []string{"Blue", "Red"},
				Type:     "Creature",
				Page:     3,
				PageSize: 50,
			},
			want: url.Values{
				"set":      {"KTK"},
				"rarity":   {"Mythic"},
				"colors":   {"Blue,Red"},
				"types":    {"Creature"},
				"page":     {"3"},
				"pageSize": {"50"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := url.ParseQuery(tt.query.Encode())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

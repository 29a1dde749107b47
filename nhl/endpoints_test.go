package nhl

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointBaseURLs(t *testing.T) {
	assert.Equal(t, "https://api-web.nhle.com/v1/", EndpointWeb.BaseURL())
	assert.Equal(t, "https://api.nhle.com/", EndpointCore.BaseURL())
	assert.Equal(t, "https://api.nhle.com/stats/rest/", EndpointStats.BaseURL())
	assert.Equal(t, "https://search.d3.nhle.com/api/v1/", EndpointSearch.BaseURL())
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		query    url.Values
		segments []string
		want     string
		wantErr  bool
	}{
		{
			name:     "single segment",
			base:     "https://api-web.nhle.com/v1/",
			segments: []string{"standings-season"},
			want:     "https://api-web.nhle.com/v1/standings-season",
		},
		{
			name:     "multiple segments",
			base:     "https://api-web.nhle.com/v1/",
			segments: []string{"gamecenter", "2023020001", "boxscore"},
			want:     "https://api-web.nhle.com/v1/gamecenter/2023020001/boxscore",
		},
		{
			name:     "base without trailing slash",
			base:     "https://api.nhle.com",
			segments: []string{"stats"},
			want:     "https://api.nhle.com/stats",
		},
		{
			name:     "query string",
			base:     "https://search.d3.nhle.com/api/v1/",
			query:    url.Values{"q": {"mcdavid"}, "culture": {"en-us"}},
			segments: []string{"search", "player"},
			want:     "https://search.d3.nhle.com/api/v1/search/player?culture=en-us&q=mcdavid",
		},
		{
			name:     "segment needing escape",
			base:     "https://api-web.nhle.com/v1/",
			segments: []string{"club-schedule", "a b/c", "week"},
			want:     "https://api-web.nhle.com/v1/club-schedule/a%20b%2Fc/week",
		},
		{
			name:     "empty segment rejected",
			base:     "https://api-web.nhle.com/v1/",
			segments: []string{"standings", ""},
			wantErr:  true,
		},
		{
			name:    "no segments rejected",
			base:    "https://api-web.nhle.com/v1/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveURL(tt.base, tt.query, tt.segments...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, strings.TrimPrefix(got, "https://"), "//")
		})
	}
}

func TestResolveURLSeasonPlacement(t *testing.T) {
	season := NewSeason(2023)
	got, err := resolveURL(EndpointWeb.BaseURL(), nil, "club-stats", "TOR", season.String(), "2")
	require.NoError(t, err)

	// The season value lands in exactly one path slot.
	assert.Equal(t, 1, strings.Count(got, "20232024"))
	assert.True(t, strings.HasSuffix(got, "/club-stats/TOR/20232024/2"))
}

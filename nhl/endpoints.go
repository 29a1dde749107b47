package nhl

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoint selects one of the fixed base URL groups the NHL exposes.
type Endpoint int

const (
	// EndpointWeb is the primary versioned web API (standings,
	// schedules, gamecenter, players).
	EndpointWeb Endpoint = iota
	// EndpointCore is the unversioned core API.
	EndpointCore
	// EndpointStats is the stats REST API (franchises, league metadata).
	EndpointStats
	// EndpointSearch is the player search service.
	EndpointSearch
)

var endpointBaseURLs = map[Endpoint]string{
	EndpointWeb:    "https://api-web.nhle.com/v1/",
	EndpointCore:   "https://api.nhle.com/",
	EndpointStats:  "https://api.nhle.com/stats/rest/",
	EndpointSearch: "https://search.d3.nhle.com/api/v1/",
}

// BaseURL returns the production base URL for the endpoint group.
func (e Endpoint) BaseURL() string {
	return endpointBaseURLs[e]
}

func (e Endpoint) String() string {
	switch e {
	case EndpointWeb:
		return "web"
	case EndpointCore:
		return "core"
	case EndpointStats:
		return "stats"
	case EndpointSearch:
		return "search"
	default:
		return fmt.Sprintf("endpoint(%d)", int(e))
	}
}

// resolveURL builds the absolute request URL from a base URL, path
// segments and an optional query. Every segment is escaped on its own,
// an empty segment is a construction failure rather than a silent
// double slash, and base/path joining never produces "//".
func resolveURL(base string, query url.Values, segments ...string) (string, error) {
	if len(segments) == 0 {
		return "", fmt.Errorf("build url: no path segments")
	}
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		if seg == "" {
			return "", fmt.Errorf("build url: empty path segment at position %d", i)
		}
		escaped[i] = url.PathEscape(seg)
	}
	full := strings.TrimRight(base, "/") + "/" + strings.Join(escaped, "/")
	if len(query) > 0 {
		full += "?" + query.Encode()
	}
	return full, nil
}

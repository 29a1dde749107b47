package nhl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient points every endpoint group at the given server.
func testClient(server *httptest.Server) *Client {
	opts := DefaultOptions()
	opts.BaseURLs = map[Endpoint]string{
		EndpointWeb:    server.URL + "/v1/",
		EndpointCore:   server.URL + "/",
		EndpointStats:  server.URL + "/stats/rest/",
		EndpointSearch: server.URL + "/api/v1/",
	}
	return NewClientWithOptions(opts)
}

func TestClientGetSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/standings/now", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"standings": []}`))
	}))
	defer server.Close()

	client := testClient(server)
	body, err := client.get(context.Background(), EndpointWeb, nil, "standings", "now")
	require.NoError(t, err)
	assert.JSONEq(t, `{"standings": []}`, string(body))
}

func TestClientGetNotFoundSkipsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Empty, non-JSON body: classification must not try to decode it.
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := testClient(server)
	_, err := client.StandingsByDate(context.Background(), Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var decodeErr *DecodeError
	assert.NotErrorAs(t, err, &decodeErr)
}

func TestClientGetStatusClassification(t *testing.T) {
	var status atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	defer server.Close()

	client := testClient(server)

	tests := []struct {
		status int
		want   error
	}{
		{status: 400, want: ErrBadRequest},
		{status: 401, want: ErrUnauthorized},
		{status: 429, want: ErrRateLimited},
		{status: 503, want: ErrServer},
	}
	for _, tt := range tests {
		status.Store(int32(tt.status))
		_, err := client.get(context.Background(), EndpointWeb, nil, "standings", "now")
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
	}
}

func TestClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := testClient(server)
	server.Close() // connection refused from here on

	_, err := client.get(context.Background(), EndpointWeb, nil, "standings", "now")
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)

	// Transport failures are never confused with classified HTTP errors.
	var apiErr *APIError
	assert.NotErrorAs(t, err, &apiErr)
}

func TestClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.Timeout = 20 * time.Millisecond
	opts.BaseURLs = map[Endpoint]string{EndpointWeb: server.URL + "/v1/"}
	client := NewClientWithOptions(opts)

	_, err := client.get(context.Background(), EndpointWeb, nil, "standings", "now")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
}

func TestClientRedirectPolicy(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer target.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusMovedPermanently)
	}))
	defer server.Close()

	follow := DefaultOptions()
	follow.BaseURLs = map[Endpoint]string{EndpointWeb: server.URL + "/v1/"}
	body, err := NewClientWithOptions(follow).get(context.Background(), EndpointWeb, nil, "standings", "now")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))

	noFollow := DefaultOptions()
	noFollow.FollowRedirects = false
	noFollow.BaseURLs = map[Endpoint]string{EndpointWeb: server.URL + "/v1/"}
	_, err = NewClientWithOptions(noFollow).get(context.Background(), EndpointWeb, nil, "standings", "now")
	// The 301 is surfaced to the classifier instead of being chased.
	assert.ErrorIs(t, err, ErrServer)
}

func TestClientContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := testClient(server)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.get(ctx, EndpointWeb, nil, "standings", "now")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
}

func TestFetchDecodesTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"seasons":[{"id":20232024,"standingsStart":"2023-10-10","standingsEnd":"2024-04-18"}]}`))
	}))
	defer server.Close()

	client := testClient(server)
	resp, err := fetch[SeasonsResponse](context.Background(), client, EndpointWeb, nil, "standings-season")
	require.NoError(t, err)
	require.Len(t, resp.Seasons, 1)
	assert.Equal(t, int64(20232024), resp.Seasons[0].ID)
}

func TestFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"seasons": [`))
	}))
	defer server.Close()

	client := testClient(server)
	_, err := fetch[SeasonsResponse](context.Background(), client, EndpointWeb, nil, "standings-season")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "SeasonsResponse", decodeErr.Shape)
}

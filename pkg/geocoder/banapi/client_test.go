package banapi_test

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketplace/pkg/geocoder"
	"marketplace/pkg/geocoder/banapi"
	"marketplace/pkg/serrors"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc, opts ...banapi.Option) *banapi.Client {
	return banapi.New(&http.Client{Transport: fn}, "https://ban.test/", opts...)
}

const parisBody = `{
  "type": "FeatureCollection",
  "version": "draft",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [2.380143, 48.859733]},
      "properties": {
        "label": "Paris 11e Arrondissement",
        "score": 0.96,
        "id": "75111",
        "type": "municipality",
        "postcode": "75011",
        "citycode": "75111",
        "city": "Paris",
        "context": null,
        "population": 142583
      }
    },
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [0, 0]},
      "properties": {"label": "ignored"}
    }
  ],
  "query": "75011"
}`

func rateLimitHeader(limit, remaining int, reset time.Time) http.Header {
	h := http.Header{}
	h.Set("X-RateLimit-Limit", strconv.Itoa(limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

	return h
}

func TestParseRateLimit(t *testing.T) {
	resetAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	rl, err := banapi.ParseRateLimit(rateLimitHeader(50, 12, resetAt))
	require.NoError(t, err)
	require.Equal(t, 50, rl.Limit)
	require.Equal(t, 12, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
	require.True(t, rl.Known())

	rl, err = banapi.ParseRateLimit(http.Header{})
	require.NoError(t, err)
	require.False(t, rl.Known())

	h := http.Header{}
	h.Set("X-RateLimit-Limit", "50")
	h.Set("X-RateLimit-Reset", "tomorrow")
	_, err = banapi.ParseRateLimit(h)
	require.Error(t, err)
}

func TestClient_Geocode_success(t *testing.T) {
	resetAt := time.Now().Add(time.Second).Truncate(time.Second).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "ban.test", r.URL.Host)
		require.Equal(t, "/search/", r.URL.Path)
		require.Equal(t, "75011 Paris", r.URL.Query().Get("q"))
		require.Equal(t, "75011", r.URL.Query().Get("postcode"))
		require.Equal(t, "municipality", r.URL.Query().Get("type"))
		require.Equal(t, "1", r.URL.Query().Get("limit"))
		require.Equal(t, "marketplace-test", r.Header.Get("User-Agent"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     rateLimitHeader(50, 49, resetAt),
			Body:       io.NopCloser(strings.NewReader(parisBody)),
		}, nil
	}, banapi.WithUserAgent("marketplace-test"))

	res, rl, err := c.Geocode(context.Background(), geocoder.Query{PostalCode: "75011", City: "Paris"})
	require.NoError(t, err)
	require.InDelta(t, 48.859733, res.Location.Lat, 1e-9)
	require.InDelta(t, 2.380143, res.Location.Lon, 1e-9)
	require.Equal(t, "Paris 11e Arrondissement", res.Label)
	require.Equal(t, "Paris", res.City)
	require.Equal(t, "75011", res.PostalCode)
	require.InDelta(t, 0.96, res.Confidence, 1e-9)
	require.Equal(t, 49, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func TestClient_Geocode_notFound(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(`{"type":"FeatureCollection","features":[]}`)),
		}, nil
	})

	_, rl, err := c.Geocode(context.Background(), geocoder.Query{PostalCode: "00000"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.False(t, rl.Known())
}

func TestClient_Geocode_lowScore(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(parisBody)),
		}, nil
	}, banapi.WithMinScore(0.99))

	_, _, err := c.Geocode(context.Background(), geocoder.Query{PostalCode: "75011"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_Geocode_rateLimited429(t *testing.T) {
	resetAt := time.Now().Add(5 * time.Second).Truncate(time.Second).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     rateLimitHeader(50, 0, resetAt),
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}, nil
	})

	_, rl, err := c.Geocode(context.Background(), geocoder.Query{PostalCode: "75011"})
	require.ErrorIs(t, err, serrors.ErrRateLimited, "expected ErrRateLimited kind: %v", err)
	require.Equal(t, 0, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func TestClient_Geocode_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("upstream bad")),
		}, nil
	})

	_, _, err := c.Geocode(context.Background(), geocoder.Query{PostalCode: "75011"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream bad")
	require.NotErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_Geocode_badBody(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body: io.NopCloser(strings.NewReader(
				`{"features":[{"geometry":{"coordinates":["east","north"]}}]}`)),
		}, nil
	})

	_, _, err := c.Geocode(context.Background(), geocoder.Query{PostalCode: "75011"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not decode response")
}

func TestClient_Geocode_transportError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	_, _, err := c.Geocode(context.Background(), geocoder.Query{PostalCode: "75011"})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestClient_Geocode_invalidProperty(t *testing.T) {
	body := `{"features":[{"geometry":{"coordinates":[2.38,48.86]},"properties":{"label":"Paris","score":"high"}}]}`
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})

	_, _, err := c.Geocode(context.Background(), geocoder.Query{PostalCode: "75011"})
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
	require.Contains(t, err.Error(), `property "score"`)
}

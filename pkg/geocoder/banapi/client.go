// Package banapi provides a geocoder.Client backed by the French Base Adresse
// Nationale search API (api-adresse.data.gouv.fr).
package banapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"marketplace/pkg/domain"
	"marketplace/pkg/geocoder"
	"marketplace/pkg/serrors"
)

// DefaultBaseURL is the public BAN endpoint.
const DefaultBaseURL = "https://api-adresse.data.gouv.fr"

// Client talks to the BAN search API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	minScore   float64
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithMinScore rejects matches whose relevance score is below score.
func WithMinScore(score float64) Option {
	return func(c *Client) { c.minScore = score }
}

// ParseRateLimit extracts the rate-limit headers of a response. Missing
// headers yield the zero status; X-RateLimit-Reset is a unix timestamp.
func ParseRateLimit(h http.Header) (geocoder.RateLimitStatus, error) {
	if h.Get("X-RateLimit-Limit") == "" && h.Get("X-RateLimit-Reset") == "" {
		return geocoder.RateLimitStatus{}, nil
	}

	atoi := func(s string) int {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}

		return 0
	}
	rl := geocoder.RateLimitStatus{
		Limit:     atoi(h.Get("X-RateLimit-Limit")),
		Remaining: atoi(h.Get("X-RateLimit-Remaining")),
	}

	if reset := strings.TrimSpace(h.Get("X-RateLimit-Reset")); reset != "" {
		sec, err := strconv.ParseInt(reset, 10, 64)
		if err != nil {
			return rl, fmt.Errorf("could not parse reset at: %w", err)
		}
		rl.ResetAt = time.Unix(sec, 0).UTC()
	}

	return rl, nil
}

// Geocode looks up the municipality of q.PostalCode.
func (c *Client) Geocode(ctx context.Context, q geocoder.Query) (geocoder.Result, geocoder.RateLimitStatus, error) {
	// https://adresse.data.gouv.fr/outils/api-doc/adresse
	params := url.Values{}
	params.Set("q", strings.TrimSpace(q.PostalCode+" "+q.City))
	params.Set("type", "municipality")
	params.Set("postcode", q.PostalCode)
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/?"+params.Encode(), nil)
	if err != nil {
		return geocoder.Result{}, geocoder.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geocoder.Result{}, geocoder.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return geocoder.Result{}, rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return geocoder.Result{}, rl, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return geocoder.Result{},
			rl,
			serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return geocoder.Result{}, rl, fmt.Errorf("search failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	res, found, err := decodeSearch(jx.DecodeBytes(b))
	if err != nil {
		return geocoder.Result{}, rl, fmt.Errorf("could not decode response: %w", err)
	}
	if !found || res.Confidence < c.minScore {
		return geocoder.Result{}, rl, serrors.With(serrors.ErrNotFound, "no municipality for postal code %q", q.PostalCode)
	}

	return res, rl, nil
}

// decodeSearch reads the first feature of a GeoJSON FeatureCollection.
func decodeSearch(d *jx.Decoder) (geocoder.Result, bool, error) {
	var (
		res   geocoder.Result
		found bool
	)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "features" {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			if found {
				return d.Skip()
			}
			f, ok, err := decodeFeature(d)
			if err != nil {
				return errors.Wrap(err, "feature")
			}
			res, found = f, ok

			return nil
		})
	})
	if err != nil {
		return geocoder.Result{}, false, errors.Wrap(err, "feature collection")
	}

	return res, found, nil
}

func decodeFeature(d *jx.Decoder) (geocoder.Result, bool, error) {
	var (
		res    geocoder.Result
		coords []float64
	)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "geometry":
			return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
				if string(key) != "coordinates" {
					return d.Skip()
				}

				return d.Arr(func(d *jx.Decoder) error {
					v, err := d.Float64()
					if err != nil {
						return errors.Wrap(err, "coordinate")
					}
					coords = append(coords, v)

					return nil
				})
			})
		case "properties":
			return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
				if d.Next() == jx.Null {
					return d.Null()
				}

				var err error
				switch string(key) {
				case "label":
					res.Label, err = d.Str()
				case "city":
					res.City, err = d.Str()
				case "postcode":
					res.PostalCode, err = d.Str()
				case "score":
					res.Confidence, err = d.Float64()
				default:
					err = d.Skip()
				}

				if err != nil {
					return errors.Wrapf(err, "property %q", key)
				}

				return nil
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return geocoder.Result{}, false, err
	}

	// GeoJSON positions are [longitude, latitude]
	if len(coords) < 2 {
		return geocoder.Result{}, false, nil
	}
	res.Location = domain.Coordinates{Lat: coords[1], Lon: coords[0]}
	if !res.Location.Valid() {
		return geocoder.Result{}, false, errors.Errorf("invalid position %v", coords)
	}

	return res, true, nil
}

// Ensure Client conforms to the geocoder.Client interface at compile time.
var _ geocoder.Client = (*Client)(nil)

// New constructs a Client using httpClient against baseURL (DefaultBaseURL
// when empty).
func New(httpClient *http.Client, baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

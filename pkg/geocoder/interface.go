// Package geocoder defines the client used to turn a French postal code into
// coordinates, and the rate-limit status reported by the provider.
package geocoder

import (
	"context"
	"time"

	"marketplace/pkg/domain"
)

// RateLimitStatus describes the current API rate-limit status returned by the
// geocoding provider. The zero value means the provider reported none.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Known reports whether the provider sent rate-limit information.
func (s RateLimitStatus) Known() bool {
	return s.Limit > 0 || !s.ResetAt.IsZero()
}

// Query is a place to geocode.
type Query struct {
	// PostalCode is the 5-digit French postal code. Required.
	PostalCode string
	// City narrows down postal codes shared by several municipalities.
	City string
}

// Result is the best match of a Query.
type Result struct {
	Location   domain.Coordinates
	Label      string
	City       string
	PostalCode string
	// Confidence is the provider's relevance score in [0, 1].
	Confidence float64
}

// Client is the abstraction for geocoding providers.
//
//go:generate mockgen -package mockgeocoder -source=interface.go -destination=mock/mockgeocoder.go *
type Client interface {
	// Geocode resolves q and returns the best match plus the current
	// rate-limit status. It returns serrors.ErrNotFound when nothing matches
	// and serrors.ErrRateLimited when the provider throttles the caller.
	Geocode(ctx context.Context, q Query) (Result, RateLimitStatus, error)
}

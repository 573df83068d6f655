package locator

import (
	"context"

	"marketplace/pkg/geocoder"
)

//go:generate mockgen -package mocklocator -source=interface.go -destination=mock/mocklocator.go *
type Locator interface {
	// Locate geocodes the postal code of a talent or a project and stores the
	// coordinates. It returns the rate-limit status reported by the geocoder,
	// even on error.
	Locate(ctx context.Context, args JobArgs) (geocoder.RateLimitStatus, error)
}

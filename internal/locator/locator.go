// Package locator resolves the postal codes of talents and projects into
// coordinates, outside of the request path.
package locator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"marketplace/pkg/domain"
	"marketplace/pkg/geocoder"
	"marketplace/pkg/logger"
	"marketplace/pkg/metrics"
	"marketplace/pkg/serrors"
	"marketplace/pkg/storage"
)

type locator struct {
	storage  storage.Storage
	geocoder geocoder.Client
	metrics  *metrics.Recorder
}

// Locate geocodes args.PostalCode and stores the coordinates on the target.
// A target whose postal code changed since the job was queued is left alone:
// the job queued for the new postal code will locate it.
func (l *locator) Locate(ctx context.Context, args JobArgs) (geocoder.RateLimitStatus, error) {
	if args.Target != TargetTalent && args.Target != TargetProject {
		return geocoder.RateLimitStatus{}, serrors.With(serrors.ErrBadRequest, "unknown target %q", args.Target)
	}

	res, rl, err := l.geocoder.Geocode(ctx, geocoder.Query{PostalCode: args.PostalCode, City: args.City})
	l.metrics.GeocodeRequest(geocodeResult(err))
	if err != nil {
		return rl, fmt.Errorf("could not geocode %s: %w", args.PostalCode, err)
	}

	var updated bool
	switch args.Target {
	case TargetTalent:
		updated, err = l.storage.UpdateTalentLocation(ctx, domain.UserID(args.ID), args.PostalCode, res.Location)
	case TargetProject:
		updated, err = l.storage.UpdateProjectLocation(ctx, domain.ProjectID(args.ID), args.PostalCode, res.Location)
	}
	if err != nil {
		return rl, fmt.Errorf("could not update %s location: %w", args.Target, err)
	}

	if !updated {
		logger.Info(ctx, "postal code changed or record deleted, location dropped")

		return rl, nil
	}

	logger.Debug(ctx, "located",
		zap.String("label", res.Label),
		zap.Float64("lat", res.Location.Lat),
		zap.Float64("lon", res.Location.Lon),
		zap.Float64("confidence", res.Confidence))

	return rl, nil
}

func geocodeResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, serrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, serrors.ErrRateLimited):
		return "rate_limited"
	default:
		return "error"
	}
}

// New creates a Locator persisting the results of client into storage.
// recorder may be nil.
func New(storage storage.Storage, client geocoder.Client, recorder *metrics.Recorder) Locator {
	return &locator{
		storage:  storage,
		geocoder: client,
		metrics:  recorder,
	}
}

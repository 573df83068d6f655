package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"marketplace/internal/locator"
	"marketplace/pkg/geocoder"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
)

// defaultRateLimitSnooze is how long a rate-limited job sleeps when the
// geocoder did not say when its window resets.
const defaultRateLimitSnooze = 30 * time.Second

// GeocodeWorker is a River worker locating talents and projects through a
// locator.Locator. It embeds River's WorkerDefaults to integrate with the job
// runtime and provides its own cooperative rate limiting, so that concurrent
// jobs never exceed the geocoder's rate limit while still running in
// parallel when budget remains.
//
// # Rate limiting overview
//
// The worker tracks the last known rate-limit status (lastRLStatus) and the
// number of requests currently in flight (inFlightRequests). Before calling
// the geocoder, reserveRL reserves a slot from the current budget. The
// effective remaining budget is computed as:
//
//	remaining := lastRLStatus.Remaining
//	if now > lastRLStatus.ResetAt { remaining = lastRLStatus.Limit }
//
// A request may start if remaining - inFlightRequests > 0. When there is no
// budget left, reserveRL waits until either:
//   - the ResetAt time is reached (budget replenishes to Limit), or
//   - another in-flight request finishes and signals requestFinishedChan.
//
// After a request completes, requestFinished is called with the status
// reported by the geocoder. It decrements inFlightRequests, wakes one waiter
// without blocking, and merges the status: a new ResetAt is always adopted,
// otherwise Remaining is only replaced when it decreases.
//
// Bootstrap: before any response carried a status, lastRLStatus is a
// synthetic status with Limit=1, Remaining=1 and a far-future ResetAt. Exactly
// one request goes through to learn the real limits. A geocoder that never
// reports a status keeps the worker at one request at a time.
//
// Error handling: a target that cannot be located (unknown postal code,
// malformed job) cancels the job. A rate-limited request snoozes the job until
// ResetAt. Other errors are returned so River retries with backoff.
type GeocodeWorker struct {
	river.WorkerDefaults[locator.JobArgs]

	// locator geocodes and stores the coordinates, returning the geocoder's
	// rate-limit status alongside any error.
	locator locator.Locator
	// mu protects inFlightRequests and lastRLStatus.
	mu sync.Mutex
	// inFlightRequests counts the geocoding calls currently running.
	inFlightRequests int
	// lastRLStatus stores the most recent view of the geocoder rate limit.
	lastRLStatus *geocoder.RateLimitStatus
	// requestFinishedChan wakes goroutines waiting in reserveRL when any
	// in-flight request completes.
	requestFinishedChan chan struct{}
}

// NewGeocodeWorker constructs a GeocodeWorker using the provided locator.
func NewGeocodeWorker(locator locator.Locator) *GeocodeWorker {
	return &GeocodeWorker{
		locator:             locator,
		requestFinishedChan: make(chan struct{}),
	}
}

// Work locates the job's target while respecting the geocoder rate limit and
// maps errors to River actions.
func (g *GeocodeWorker) Work(ctx context.Context, job *river.Job[locator.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("target", string(job.Args.Target)),
		zap.String("targetID", job.Args.ID.String()),
		zap.String("postalCode", job.Args.PostalCode))

	if err := g.reserveRL(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	rlStatus, err := g.locator.Locate(ctx, job.Args)
	g.requestFinished(ctx, rlStatus)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrBadRequest) {
			logger.Warn(ctx, "target cannot be located", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error locating target", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(snoozeUntil(rlStatus)) //nolint: wrapcheck
		}

		return fmt.Errorf("could not locate target: %w", err)
	}

	logger.Info(ctx, "target located")

	return nil
}

func snoozeUntil(status geocoder.RateLimitStatus) time.Duration {
	if status.ResetAt.IsZero() {
		return defaultRateLimitSnooze
	}

	return max(time.Until(status.ResetAt), 0)
}

// requestFinished is called after every geocoding attempt. It decrements the
// in-flight counter, wakes a waiter and merges the new status conservatively.
func (g *GeocodeWorker) requestFinished(ctx context.Context, newRLStatus geocoder.RateLimitStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inFlightRequests > 0 {
		g.inFlightRequests--
	}

	select {
	case g.requestFinishedChan <- struct{}{}:
	default:
	}

	// No rate-limit information, keep our view.
	if newRLStatus.ResetAt.IsZero() {
		return
	}

	log := func() {
		logger.Debug(ctx, "received rate limit status",
			zap.Int("limit", newRLStatus.Limit),
			zap.Int("remaining", newRLStatus.Remaining),
			zap.Time("resetAt", newRLStatus.ResetAt),
			zap.Int("inFlight", g.inFlightRequests))
	}

	switch {
	case g.lastRLStatus == nil,
		!g.lastRLStatus.ResetAt.Equal(newRLStatus.ResetAt),
		newRLStatus.Remaining < g.lastRLStatus.Remaining:
		g.lastRLStatus = &newRLStatus
		log()
	}
}

// reserveRL reserves one unit of the rate-limit budget or blocks until one
// becomes available. It returns an error if ctx is done while waiting.
func (g *GeocodeWorker) reserveRL(ctx context.Context) error {
	for {
		g.mu.Lock()

		if g.lastRLStatus == nil {
			// one request to learn the real limits
			g.lastRLStatus = &geocoder.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := g.lastRLStatus.Remaining
		if time.Now().UTC().After(g.lastRLStatus.ResetAt) {
			remaining = g.lastRLStatus.Limit
		}

		if remaining-g.inFlightRequests > 0 {
			logger.Debug(ctx, "reserved rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", g.lastRLStatus.Limit),
				zap.Time("resetAt", g.lastRLStatus.ResetAt),
				zap.Int("inFlight", g.inFlightRequests))
			g.inFlightRequests++
			g.mu.Unlock()

			return nil
		}

		resetAt := g.lastRLStatus.ResetAt
		limit := g.lastRLStatus.Limit
		inFlight := g.inFlightRequests
		g.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Int("limit", limit),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		timer := time.NewTimer(time.Until(resetAt))
		select {
		case <-ctx.Done():
			timer.Stop()

			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-g.requestFinishedChan:
			timer.Stop()
		case <-timer.C:
		}
	}
}

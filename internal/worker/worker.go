// Package worker runs the background jobs: geocoding talents and projects,
// and notifying talents of the projects they match.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"marketplace/internal/config"
	"marketplace/internal/locator"
	"marketplace/internal/matcher"
	"marketplace/pkg/logger"
)

// Options configure the job processing.
type Options struct {
	// MaxWorkers is the number of jobs run concurrently on each queue.
	MaxWorkers int
	// WaitLocation is how long a notification waits for its project to be located.
	WaitLocation time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:   cfg.Worker.MaxWorkers,
		WaitLocation: time.Minute,
	}
}

// Workers registers the marketplace workers.
func Workers(options Options, loc locator.Locator, match matcher.Matcher) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewGeocodeWorker(loc))
	river.AddWorker(workers, NewNotifyWorker(match, options.WaitLocation))

	return workers
}

// Start builds a River client processing the default and geocoding queues
// and starts it. The caller stops it with Stop.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	options Options,
	loc locator.Locator,
	match matcher.Matcher) (*river.Client[pgx.Tx], error) {
	maxWorkers := max(options.MaxWorkers, 1)

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
			locator.Queue:      {MaxWorkers: maxWorkers},
		},
		Workers: Workers(options, loc, match),
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"marketplace/internal/matcher"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
)

// NotifyWorker notifies the talents matching a newly published project.
type NotifyWorker struct {
	river.WorkerDefaults[matcher.NotifyJobArgs]

	matcher matcher.Matcher
	// waitLocation is how long a job sleeps while the project is not located.
	waitLocation time.Duration
}

// NewNotifyWorker constructs a NotifyWorker. Jobs of projects that are not
// geocoded yet are snoozed for waitLocation.
func NewNotifyWorker(matcher matcher.Matcher, waitLocation time.Duration) *NotifyWorker {
	return &NotifyWorker{
		matcher:      matcher,
		waitLocation: waitLocation,
	}
}

// Work runs the notification of a project. A project deleted, unpublished or
// closed in the meantime cancels the job.
func (n *NotifyWorker) Work(ctx context.Context, job *river.Job[matcher.NotifyJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("projectID", job.Args.ProjectID.String()))

	count, err := n.matcher.NotifyTalents(ctx, domain.ProjectID(job.Args.ProjectID))
	if err != nil {
		switch {
		case errors.Is(err, serrors.ErrNotFound), errors.Is(err, serrors.ErrConflict):
			logger.Warn(ctx, "project no longer notifiable", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrUnavailable):
			logger.Info(ctx, "project not located yet, snoozing", zap.Duration("snooze", n.waitLocation))

			return river.JobSnooze(n.waitLocation) //nolint: wrapcheck
		}

		logger.Error(ctx, "error notifying talents", zap.Error(err))

		return fmt.Errorf("could not notify talents: %w", err)
	}

	logger.Info(ctx, "talents notified", zap.Int("count", count))

	return nil
}

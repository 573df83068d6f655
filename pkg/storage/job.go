package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. The insert is atomic with respect to
// any surrounding transaction, so a job enqueued inside WithTx only becomes
// visible to workers once the transaction commits.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It reports false when
	// the job was skipped as a duplicate of a unique job already queued.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

package matcher

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// NotifyJobArgs contains the arguments of the job notifying the talents
// matching a newly published project.
type NotifyJobArgs struct {
	// ProjectID is the published project. Unique so a project is notified once.
	ProjectID uuid.UUID `json:"project_id" river:"unique"`

	// MaxAttempts configures the maximum number of times River should retry the job.
	MaxAttempts int `json:"-"`
}

// Kind returns the River job kind used to register and dispatch the notify worker.
func (args NotifyJobArgs) Kind() string { return "NotifyTalentsJob" }

// InsertOpts makes sure a project is only ever notified once, whatever the
// number of times it gets published.
func (args NotifyJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.MaxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

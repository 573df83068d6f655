package locator

import (
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// Queue is the River queue geocoding jobs run on, apart from other jobs so
// that waiting for the geocoder rate limit never delays them.
const Queue = "geocoding"

// Target is the kind of record a geocoding job locates.
type Target string

const (
	// TargetTalent locates a talent profile; ID is the user ID.
	TargetTalent Target = "talent"
	// TargetProject locates a project; ID is the project ID.
	TargetProject Target = "project"
)

// JobArgs contains the arguments for a geocoding job submitted to River.
// Every field takes part in the unique key, so saving the same postal code
// twice queues a single job while a new postal code queues a new one.
type JobArgs struct {
	Target     Target    `json:"target"      river:"unique"`
	ID         uuid.UUID `json:"id"          river:"unique"`
	PostalCode string    `json:"postal_code" river:"unique"`
	City       string    `json:"city"        river:"unique"`

	// MaxAttempts configures the maximum number of times River should retry the job.
	MaxAttempts int `json:"-"`
	// UniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate.
	UniqueJobPeriod time.Duration `json:"-"`
}

// Kind returns the River job kind used to register and dispatch the geocode worker.
func (args JobArgs) Kind() string { return "GeocodeJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// Completed jobs are not part of the unique states: going back to a previous
// postal code must geocode again.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.MaxAttempts,
		Queue:       Queue,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.UniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// newJobClient builds an insert-only River client. It never works jobs, so it
// needs no workers or queues.
func newJobClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and only becomes visible to workers once the transaction commits;
// otherwise it is inserted right away.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	client := p.jobs
	if client == nil {
		db, _ := p.DB.(*sql.DB)
		c, err := newJobClient(db)
		if err != nil {
			return false, err
		}
		client = c
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = client.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = client.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// AddJob enqueues a new River job using the underlying database handle.
//
// When PgSQL is operating inside a transaction (DB is a *sql.Tx) the job is
// inserted with InsertTx so it participates in the surrounding transaction
// and only becomes visible on commit. That property is what makes "create
// user + enqueue verification mail" one unit of work. Outside a transaction
// the insert is immediately visible.
//
// The returned bool reports whether the job was actually inserted, river may
// skip duplicates when uniqueness options are set.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, ok := p.DB.(*sql.Tx)
	if ok {
		riverClient, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river queue client: %w", err)
		}

		job, err := riverClient.InsertTx(ctx, tx, args, opts)
		if err != nil {
			return false, fmt.Errorf("could not insert job: %w", err)
		}

		return !job.UniqueSkippedAsDuplicate, nil
	}

	riverClient, err := river.NewClient(riverdatabasesql.New(p.DB.(*sql.DB)), &river.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create river queue client: %w", err)
	}

	job, err := riverClient.Insert(ctx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert job: %w", err)
	}

	return !job.UniqueSkippedAsDuplicate, nil
}

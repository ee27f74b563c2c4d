package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Insertion is atomic with respect to
// any surrounding transaction when the backend supports it, which is what
// makes "create user + enqueue verification mail" a single unit of work.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The returned bool
	// reports whether the job was actually inserted (uniqueness options may
	// skip it).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// Package worker runs the background job workers on top of River.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"catalog/internal/auth"
	"catalog/pkg/logger"
	"catalog/pkg/mailer"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configures the worker pool.
type Options struct {
	// Queue is the river queue jobs are consumed from.
	Queue string
	// MaxWorkers limits how many jobs run concurrently.
	MaxWorkers int
}

// Start registers all workers and starts consuming jobs. The returned client
// should be stopped on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	m mailer.Mailer,
	signer *auth.Signer,
	opts Options) (*river.Client[pgx.Tx], error) {
	queue := opts.Queue
	if queue == "" {
		queue = river.QueueDefault
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewVerificationMailWorker(m, signer))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			queue: {MaxWorkers: opts.MaxWorkers},
		},
		Workers: workers,
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

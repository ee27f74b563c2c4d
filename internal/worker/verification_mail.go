package worker

import (
	"context"
	"fmt"
	"time"

	"catalog/internal/auth"
	"catalog/pkg/domain"
	"catalog/pkg/logger"
	"catalog/pkg/mailer"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// verificationTokenTTL is how long the link in a verification mail stays
// usable. Generous on purpose, mail delivery can lag.
const verificationTokenTTL = 48 * time.Hour

// VerificationMailArgs is the payload of a verification mail job. Jobs are
// unique by args, so retries of the surrounding registration flow cannot
// spam the same address.
type VerificationMailArgs struct {
	UserID string `json:"user_id" river:"unique"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Kind returns the River job kind used to register and dispatch the worker.
func (args VerificationMailArgs) Kind() string { return "verification_mail" }

// InsertOpts limits retries and enforces one job per user.
func (args VerificationMailArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	}
}

// VerificationMailWorker delivers the email verification mail for freshly
// registered users through the configured Mailer.
type VerificationMailWorker struct {
	river.WorkerDefaults[VerificationMailArgs]

	mailer mailer.Mailer
	signer *auth.Signer
}

func NewVerificationMailWorker(m mailer.Mailer, signer *auth.Signer) *VerificationMailWorker {
	return &VerificationMailWorker{mailer: m, signer: signer}
}

// Work signs a verification token for the user and sends it out. A failed
// send is returned to River for retry.
func (w *VerificationMailWorker) Work(ctx context.Context, job *river.Job[VerificationMailArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("email", job.Args.Email))

	userID, err := domain.ParseUserID(job.Args.UserID)
	if err != nil {
		// a malformed user id never becomes valid, do not retry
		return river.JobCancel(err) //nolint: wrapcheck
	}

	token, err := w.signer.SignVerification(userID, verificationTokenTTL)
	if err != nil {
		return fmt.Errorf("could not sign verification token: %w", err)
	}

	text := fmt.Sprintf(
		"Hi %s,\n\nuse the token below to verify your email address:\n\n%s\n",
		job.Args.Name, token)
	if err := w.mailer.Send(ctx, job.Args.Email, "Verify your email", text); err != nil {
		logger.Error(ctx, "could not send verification mail", zap.Error(err))

		return fmt.Errorf("could not send verification mail: %w", err)
	}

	logger.Info(ctx, "verification mail sent")

	return nil
}

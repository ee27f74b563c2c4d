package service

import (
	"context"
	"errors"
	"time"

	"catalog/internal/auth"
	"catalog/internal/worker"
	"catalog/pkg/domain"
	"catalog/pkg/password"
	"catalog/pkg/serrors"
	"catalog/pkg/storage"
)

type users struct {
	storage    storage.Storage
	hasher     password.Hasher
	signer     *auth.Signer
	verifier   *auth.Verifier
	sessionTTL time.Duration
}

// NewUsers builds the user service. A zero sessionTTL falls back to the
// domain default.
func NewUsers(strg storage.Storage, hasher password.Hasher, signer *auth.Signer, verifier *auth.Verifier, sessionTTL time.Duration) Users {
	if sessionTTL <= 0 {
		sessionTTL = domain.DefaultSessionDuration
	}

	return &users{
		storage:    strg,
		hasher:     hasher,
		signer:     signer,
		verifier:   verifier,
		sessionTTL: sessionTTL,
	}
}

func (u *users) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	name, err := domain.NewUsername(in.Name)
	if err != nil {
		return domain.User{}, err
	}

	email, err := domain.NewEmail(in.Email)
	if err != nil {
		return domain.User{}, err
	}

	if in.Password == "" {
		return domain.User{}, serrors.With(serrors.ErrValidation, "password cannot be empty")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, serrors.Wrap(serrors.ErrInternal, err, "could not hash password")
	}

	user := domain.NewUser(name, email)

	// The account row and the verification mail job commit together, so a
	// stored user always has a pending mail and a mailed user always exists.
	err = u.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.CreateUser(ctx, user, hash); err != nil {
			return err
		}

		_, err := tx.AddJob(ctx, worker.VerificationMailArgs{
			UserID: user.ID().String(),
			Email:  user.Email().String(),
			Name:   user.Name().String(),
		}, nil)

		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (u *users) Login(ctx context.Context, email, plain string) (LoginResult, error) {
	parsedEmail, err := domain.NewEmail(email)
	if err != nil {
		return LoginResult{}, err
	}

	hash, err := u.storage.PasswordByEmail(ctx, parsedEmail)
	if err != nil {
		// Unknown addresses and bad passwords are indistinguishable to the
		// caller.
		if errors.Is(err, serrors.ErrNotFound) {
			return LoginResult{}, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
		}

		return LoginResult{}, err
	}

	if !u.hasher.Verify(hash, plain) {
		return LoginResult{}, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	user, err := u.storage.UserByEmail(ctx, parsedEmail)
	if err != nil {
		return LoginResult{}, err
	}

	session := domain.NewSession(user.ID(), u.sessionTTL)
	if err := u.storage.CreateSession(ctx, session); err != nil {
		return LoginResult{}, err
	}

	token, err := u.signer.SignSession(session)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, Session: session, User: user}, nil
}

func (u *users) Refresh(ctx context.Context, session domain.Session) (LoginResult, error) {
	if session.Expired(time.Now()) {
		return LoginResult{}, serrors.With(serrors.ErrUnauthorized, "session expired")
	}

	session.ExpiresAt = time.Now().UTC().Add(u.sessionTTL)
	if err := u.storage.RefreshSession(ctx, session.ID, session.ExpiresAt); err != nil {
		return LoginResult{}, err
	}

	user, err := u.storage.UserByID(ctx, session.UserID)
	if err != nil {
		return LoginResult{}, err
	}

	token, err := u.signer.SignSession(session)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, Session: session, User: user}, nil
}

func (u *users) Logout(ctx context.Context, sessionID domain.SessionID) error {
	return u.storage.DeleteSession(ctx, sessionID)
}

func (u *users) UserBySession(ctx context.Context, session domain.Session) (domain.User, error) {
	if session.Expired(time.Now()) {
		return domain.User{}, serrors.With(serrors.ErrUnauthorized, "session expired")
	}

	return u.storage.UserByID(ctx, session.UserID)
}

func (u *users) VerifyEmail(ctx context.Context, token string) error {
	userID, err := u.verifier.VerificationUserID(token)
	if err != nil {
		return err
	}

	return u.storage.SetEmailVerified(ctx, userID)
}

package storage

import (
	"context"

	"catalog/pkg/domain"
)

// UserStorage persists user accounts. Password hashes travel separately from
// the domain entity and only ever leave the store through PasswordByEmail.
type UserStorage interface {
	// CreateUser inserts a new user together with its password hash. Fails
	// with CONFLICT when the id or the email is already taken.
	CreateUser(ctx context.Context, user domain.User, passwordHash string) error
	// UserByID loads a user by id.
	UserByID(ctx context.Context, id domain.UserID) (domain.User, error)
	// UserByEmail loads a user by email.
	UserByEmail(ctx context.Context, email domain.Email) (domain.User, error)
	// PasswordByEmail returns the stored password hash for the given email.
	PasswordByEmail(ctx context.Context, email domain.Email) (string, error)
	// SetEmailVerified marks the user's email address as verified.
	SetEmailVerified(ctx context.Context, id domain.UserID) error
}

package postgres

import (
	"context"
	"time"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func userWriteError(err error, user domain.User) error {
	switch constraintName(err) {
	case constraintUserPK:
		return serrors.Wrap(serrors.ErrConflict, &domain.IDConflictError{
			Entity: domain.EntityUser,
			ID:     user.ID().String(),
		}, "could not store user")
	case constraintUserEmail:
		return serrors.Wrap(serrors.ErrConflict, &domain.EmailConflictError{
			Email: user.Email().String(),
		}, "could not store user")
	default:
		return serrors.Wrap(serrors.ErrInternal, err, "could not store user in pg")
	}
}

func userNotFound(key string) error {
	return serrors.Wrap(serrors.ErrNotFound, &domain.NotFoundError{
		Entity: domain.EntityUser,
		Key:    key,
	}, "could not find user")
}

func (p *PgSQL) CreateUser(ctx context.Context, user domain.User, passwordHash string) error {
	var row PgUser
	row.FromDomain(user, passwordHash)

	if _, err := p.Builder.Insert(userTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return userWriteError(err, user)
	}

	return nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(userTable).
		Select(
			goqu.I("id"),
			goqu.I("name"),
			goqu.I("email"),
			goqu.I("email_verified"),
			goqu.I("created_at"),
			goqu.I("updated_at"),
		).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return domain.User{}, serrors.Wrap(serrors.ErrInternal, err, "could not fetch user from pg")
	}
	if !found {
		return domain.User{}, userNotFound(id.String())
	}

	return row.ToDomain()
}

func (p *PgSQL) UserByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(userTable).
		Select(
			goqu.I("id"),
			goqu.I("name"),
			goqu.I("email"),
			goqu.I("email_verified"),
			goqu.I("created_at"),
			goqu.I("updated_at"),
		).
		Where(goqu.I("email").Eq(email.String())).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return domain.User{}, serrors.Wrap(serrors.ErrInternal, err, "could not fetch user from pg")
	}
	if !found {
		return domain.User{}, userNotFound(email.String())
	}

	return row.ToDomain()
}

// PasswordByEmail is the only read that exposes the stored hash. It exists
// for login verification and nothing else.
func (p *PgSQL) PasswordByEmail(ctx context.Context, email domain.Email) (string, error) {
	var hash string
	found, err := p.Builder.From(userTable).
		Select(goqu.I("password")).
		Where(goqu.I("email").Eq(email.String())).
		Executor().ScanValContext(ctx, &hash)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not fetch user password from pg")
	}
	if !found {
		return "", userNotFound(email.String())
	}

	return hash, nil
}

func (p *PgSQL) SetEmailVerified(ctx context.Context, id domain.UserID) error {
	result, err := p.Builder.Update(userTable).
		Set(goqu.Record{
			"email_verified": true,
			"updated_at":     time.Now().UTC(),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not update user in pg")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not read affected rows")
	}
	if affected == 0 {
		return userNotFound(id.String())
	}

	return nil
}

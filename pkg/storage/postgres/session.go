package postgres

import (
	"context"
	"time"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func sessionNotFound(id domain.SessionID) error {
	return serrors.Wrap(serrors.ErrNotFound, &domain.NotFoundError{
		Entity: domain.EntitySession,
		Key:    id.String(),
	}, "could not find session")
}

func (p *PgSQL) CreateSession(ctx context.Context, session domain.Session) error {
	var row PgSession
	row.FromDomain(session)

	if _, err := p.Builder.Insert(sessionTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		switch constraintName(err) {
		case constraintSessionPK:
			return serrors.Wrap(serrors.ErrConflict, &domain.IDConflictError{
				Entity: domain.EntitySession,
				ID:     session.ID.String(),
			}, "could not store session")
		case constraintSessionUserFK:
			return serrors.Wrap(serrors.ErrNotFound, &domain.NotFoundError{
				Entity: domain.EntityUser,
				Key:    session.UserID.String(),
			}, "could not store session")
		default:
			return serrors.Wrap(serrors.ErrInternal, err, "could not store session in pg")
		}
	}

	return nil
}

func (p *PgSQL) SessionByID(ctx context.Context, id domain.SessionID) (domain.Session, error) {
	var row PgSession
	found, err := p.Builder.From(sessionTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return domain.Session{}, serrors.Wrap(serrors.ErrInternal, err, "could not fetch session from pg")
	}
	if !found {
		return domain.Session{}, sessionNotFound(id)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RefreshSession(ctx context.Context, id domain.SessionID, expiresAt time.Time) error {
	result, err := p.Builder.Update(sessionTable).
		Set(goqu.Record{"expires_at": expiresAt}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not refresh session in pg")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not read affected rows")
	}
	if affected == 0 {
		return sessionNotFound(id)
	}

	return nil
}

// DeleteSession is idempotent, deleting an absent session succeeds.
func (p *PgSQL) DeleteSession(ctx context.Context, id domain.SessionID) error {
	if _, err := p.Builder.Delete(sessionTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not delete session from pg")
	}

	return nil
}

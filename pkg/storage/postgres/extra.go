package postgres

import (
	"context"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func extraWriteError(err error, extra domain.Extra) error {
	switch constraintName(err) {
	case constraintExtraPK:
		return serrors.Wrap(serrors.ErrConflict, &domain.IDConflictError{
			Entity: domain.EntityExtra,
			ID:     extra.ID().String(),
		}, "could not store extra")
	case constraintExtraName:
		return serrors.Wrap(serrors.ErrConflict, &domain.NameConflictError{
			Entity: domain.EntityExtra,
			Name:   extra.Name().String(),
		}, "could not store extra")
	default:
		return serrors.Wrap(serrors.ErrInternal, err, "could not store extra in pg")
	}
}

func extraNotFound(id domain.ExtraID) error {
	return serrors.Wrap(serrors.ErrNotFound, &domain.NotFoundError{
		Entity: domain.EntityExtra,
		Key:    id.String(),
	}, "could not find extra")
}

func (p *PgSQL) CreateExtra(ctx context.Context, extra domain.Extra) error {
	var row PgExtra
	row.FromDomain(extra)

	if _, err := p.Builder.Insert(extraTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return extraWriteError(err, extra)
	}

	return nil
}

func (p *PgSQL) ExtraByID(ctx context.Context, id domain.ExtraID) (domain.Extra, error) {
	var row PgExtra
	found, err := p.Builder.From(extraTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return domain.Extra{}, serrors.Wrap(serrors.ErrInternal, err, "could not fetch extra from pg")
	}
	if !found {
		return domain.Extra{}, extraNotFound(id)
	}

	return row.ToDomain()
}

// ExtrasByIDs loads the given extras all-or-nothing. A missing id fails the
// whole call naming the first absent id in input order, and the result
// preserves input order.
func (p *PgSQL) ExtrasByIDs(ctx context.Context, ids []domain.ExtraID) (domain.Extras, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, uuid.UUID(id))
	}

	var rows []PgExtra
	if err := p.Builder.From(extraTable).
		Where(goqu.I("id").In(raw)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not fetch extras from pg")
	}

	byID := make(map[domain.ExtraID]domain.Extra, len(rows))
	for _, row := range rows {
		extra, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		byID[extra.ID()] = extra
	}

	ordered := make([]domain.Extra, 0, len(ids))
	for _, id := range ids {
		extra, ok := byID[id]
		if !ok {
			return nil, extraNotFound(id)
		}

		ordered = append(ordered, extra)
	}

	return domain.NewExtras(ordered)
}

func (p *PgSQL) AllExtras(ctx context.Context) ([]domain.Extra, error) {
	var rows []PgExtra
	if err := p.Builder.From(extraTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not list extras from pg")
	}

	out := make([]domain.Extra, 0, len(rows))
	for _, row := range rows {
		extra, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, extra)
	}

	return out, nil
}

func (p *PgSQL) UpdateExtra(ctx context.Context, extra domain.Extra) error {
	var row PgExtra
	row.FromDomain(extra)

	result, err := p.Builder.Update(extraTable).
		Set(goqu.Record{
			"name":        row.Name,
			"description": row.Description,
			"price":       row.Price,
			"updated_at":  row.UpdatedAt,
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return extraWriteError(err, extra)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not read affected rows")
	}
	if affected == 0 {
		return extraNotFound(extra.ID())
	}

	return nil
}

func (p *PgSQL) DeleteExtra(ctx context.Context, id domain.ExtraID) (domain.Extra, error) {
	var deleted domain.Extra
	err := p.withTx(ctx, func(tx *PgSQL) error {
		extra, err := tx.ExtraByID(ctx, id)
		if err != nil {
			return err
		}

		if _, err := tx.Builder.Delete(extraTable).
			Where(goqu.I("id").Eq(uuid.UUID(id))).
			Executor().ExecContext(ctx); err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not delete extra from pg")
		}

		deleted = extra

		return nil
	})
	if err != nil {
		return domain.Extra{}, err
	}

	return deleted, nil
}

package postgres

import (
	"context"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func productWriteError(err error, product domain.Product) error {
	switch constraintName(err) {
	case constraintProductPK:
		return serrors.Wrap(serrors.ErrConflict, &domain.IDConflictError{
			Entity: domain.EntityProduct,
			ID:     product.ID().String(),
		}, "could not store product")
	case constraintProductName:
		return serrors.Wrap(serrors.ErrConflict, &domain.NameConflictError{
			Entity: domain.EntityProduct,
			Name:   product.Name().String(),
		}, "could not store product")
	case constraintProductCatalogFK:
		return serrors.Wrap(serrors.ErrNotFound, &domain.NotFoundError{
			Entity: domain.EntityCatalog,
			Key:    product.CatalogID().String(),
		}, "could not store product")
	case constraintProductExtrasExtraFK:
		return serrors.Wrap(serrors.ErrNotFound, err, "could not store product: referenced extra does not exist")
	default:
		return serrors.Wrap(serrors.ErrInternal, err, "could not store product in pg")
	}
}

func productNotFound(id domain.ProductID, catalogID domain.CatalogID) error {
	return serrors.Wrap(serrors.ErrNotFound, &domain.NotFoundError{
		Entity: domain.EntityProduct,
		Key:    id.String(),
		Scope:  catalogID.String(),
	}, "could not find product")
}

func extraJoinRows(product domain.Product) []goqu.Record {
	rows := make([]goqu.Record, 0, len(product.Extras()))
	for _, id := range product.ExtraIDs() {
		rows = append(rows, goqu.Record{
			"product_id": uuid.UUID(product.ID()),
			"extra_id":   uuid.UUID(id),
		})
	}

	return rows
}

// productExtras loads the extras bound to a product, ordered by extra id.
func (p *PgSQL) productExtras(ctx context.Context, id domain.ProductID) (domain.Extras, error) {
	var rows []PgExtra
	if err := p.Builder.From(extraTable).
		Select(
			goqu.I("extra.id"),
			goqu.I("extra.name"),
			goqu.I("extra.description"),
			goqu.I("extra.price"),
			goqu.I("extra.created_at"),
			goqu.I("extra.updated_at"),
		).
		Join(goqu.T(productExtrasTable), goqu.On(goqu.I("product_extras.extra_id").Eq(goqu.I("extra.id")))).
		Where(goqu.I("product_extras.product_id").Eq(uuid.UUID(id))).
		Order(goqu.I("extra.id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not fetch product extras from pg")
	}

	return pgExtrasToDomain(rows)
}

func (p *PgSQL) CreateProduct(ctx context.Context, product domain.Product) error {
	var row PgProduct
	row.FromDomain(product)

	return p.withTx(ctx, func(tx *PgSQL) error {
		if _, err := tx.Builder.Insert(productTable).
			Rows(row).
			Executor().ExecContext(ctx); err != nil {
			return productWriteError(err, product)
		}

		joins := extraJoinRows(product)
		if len(joins) == 0 {
			return nil
		}

		// duplicates in the collection collapse to one join row, same as the
		// update path
		if _, err := tx.Builder.Insert(productExtrasTable).
			Rows(joins).
			OnConflict(goqu.DoNothing()).
			Executor().ExecContext(ctx); err != nil {
			return productWriteError(err, product)
		}

		return nil
	})
}

func (p *PgSQL) ProductByID(ctx context.Context,
	id domain.ProductID,
	catalogID domain.CatalogID) (domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.From(productTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("catalog_id").Eq(uuid.UUID(catalogID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return domain.Product{}, serrors.Wrap(serrors.ErrInternal, err, "could not fetch product from pg")
	}
	if !found {
		return domain.Product{}, productNotFound(id, catalogID)
	}

	extras, err := p.productExtras(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	return row.ToDomain(extras)
}

// UpdateProduct persists the product row and reconciles the extras join by
// set difference, all in one transaction. Join rows still referenced stay
// untouched, new ones are inserted, dropped ones are deleted.
func (p *PgSQL) UpdateProduct(ctx context.Context, product domain.Product) error {
	var row PgProduct
	row.FromDomain(product)

	return p.withTx(ctx, func(tx *PgSQL) error {
		result, err := tx.Builder.Update(productTable).
			Set(goqu.Record{
				"name":        row.Name,
				"description": row.Description,
				"price":       row.Price,
				"kind":        row.Kind,
				"updated_at":  row.UpdatedAt,
			}).
			Where(
				goqu.I("id").Eq(row.ID),
				goqu.I("catalog_id").Eq(row.CatalogID),
			).
			Executor().ExecContext(ctx)
		if err != nil {
			return productWriteError(err, product)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not read affected rows")
		}
		if affected == 0 {
			return productNotFound(product.ID(), product.CatalogID())
		}

		keep := make([]uuid.UUID, 0, len(product.Extras()))
		for _, extraID := range product.ExtraIDs() {
			keep = append(keep, uuid.UUID(extraID))
		}

		if len(keep) > 0 {
			if _, err := tx.Builder.Insert(productExtrasTable).
				Rows(extraJoinRows(product)).
				OnConflict(goqu.DoNothing()).
				Executor().ExecContext(ctx); err != nil {
				return productWriteError(err, product)
			}
		}

		unbind := tx.Builder.Delete(productExtrasTable).
			Where(goqu.I("product_id").Eq(row.ID))
		if len(keep) > 0 {
			unbind = unbind.Where(goqu.I("extra_id").NotIn(keep))
		}
		if _, err := unbind.Executor().ExecContext(ctx); err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not unbind product extras in pg")
		}

		return nil
	})
}

func (p *PgSQL) DeleteProduct(ctx context.Context,
	id domain.ProductID,
	catalogID domain.CatalogID) (domain.Product, error) {
	var deleted domain.Product
	err := p.withTx(ctx, func(tx *PgSQL) error {
		product, err := tx.ProductByID(ctx, id, catalogID)
		if err != nil {
			return err
		}

		// join rows go with it through the FK cascade
		if _, err := tx.Builder.Delete(productTable).
			Where(goqu.I("id").Eq(uuid.UUID(id))).
			Executor().ExecContext(ctx); err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not delete product from pg")
		}

		deleted = product

		return nil
	})
	if err != nil {
		return domain.Product{}, err
	}

	return deleted, nil
}

package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"
	"catalog/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// productsAggSQL renders a catalog's products (with their extras) as a single
// json document, so aggregate reads are one round trip instead of N+1.
// Ordering by id gives creation order, ids are uuid v7.
const productsAggSQL = `COALESCE((
SELECT json_agg(json_build_object(
	'id', p.id,
	'catalog_id', p.catalog_id,
	'name', p.name,
	'description', p.description,
	'price', p.price,
	'kind', p.kind,
	'created_at', p.created_at,
	'updated_at', p.updated_at,
	'extras', COALESCE((
		SELECT json_agg(json_build_object(
			'id', e.id,
			'name', e.name,
			'description', e.description,
			'price', e.price,
			'created_at', e.created_at,
			'updated_at', e.updated_at
		) ORDER BY e.id)
		FROM extra e
		JOIN product_extras pe ON pe.extra_id = e.id
		WHERE pe.product_id = p.id
	), '[]'::json)
) ORDER BY p.id)
FROM product p
WHERE p.catalog_id = catalog.id
), '[]'::json)`

type pgCatalogAggRow struct {
	PgCatalog
	Products json.RawMessage `db:"products"`
}

func (r *pgCatalogAggRow) toDomain() (domain.CatalogProducts, error) {
	catalog, err := r.PgCatalog.ToDomain()
	if err != nil {
		return domain.CatalogProducts{}, err
	}

	products, err := decodeProducts(r.Products)
	if err != nil {
		return domain.CatalogProducts{}, fmt.Errorf("could not decode products of catalog %s: %w", r.ID, err)
	}

	return domain.CatalogProducts{Catalog: catalog, Products: products}, nil
}

func (p *PgSQL) catalogAggQuery() *goqu.SelectDataset {
	return p.Builder.From(catalogTable).Select(
		goqu.I("catalog.id"),
		goqu.I("catalog.name"),
		goqu.I("catalog.description"),
		goqu.I("catalog.created_at"),
		goqu.I("catalog.updated_at"),
		goqu.L(productsAggSQL).As("products"),
	)
}

func catalogWriteError(err error, catalog domain.Catalog) error {
	switch constraintName(err) {
	case constraintCatalogPK:
		return serrors.Wrap(serrors.ErrConflict, &domain.IDConflictError{
			Entity: domain.EntityCatalog,
			ID:     catalog.ID().String(),
		}, "could not store catalog")
	case constraintCatalogName:
		return serrors.Wrap(serrors.ErrConflict, &domain.NameConflictError{
			Entity: domain.EntityCatalog,
			Name:   catalog.Name().String(),
		}, "could not store catalog")
	default:
		return serrors.Wrap(serrors.ErrInternal, err, "could not store catalog in pg")
	}
}

func catalogNotFound(id domain.CatalogID) error {
	return serrors.Wrap(serrors.ErrNotFound, &domain.NotFoundError{
		Entity: domain.EntityCatalog,
		Key:    id.String(),
	}, "could not find catalog")
}

func (p *PgSQL) CreateCatalog(ctx context.Context, catalog domain.Catalog) error {
	var row PgCatalog
	row.FromDomain(catalog)

	if _, err := p.Builder.Insert(catalogTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return catalogWriteError(err, catalog)
	}

	return nil
}

func (p *PgSQL) CatalogByID(ctx context.Context, id domain.CatalogID) (domain.CatalogProducts, error) {
	var row pgCatalogAggRow
	found, err := p.catalogAggQuery().
		Where(goqu.I("catalog.id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return domain.CatalogProducts{}, serrors.Wrap(serrors.ErrInternal, err, "could not fetch catalog from pg")
	}
	if !found {
		return domain.CatalogProducts{}, catalogNotFound(id)
	}

	return row.toDomain()
}

func (p *PgSQL) UpdateCatalog(ctx context.Context, catalog domain.Catalog) error {
	var row PgCatalog
	row.FromDomain(catalog)

	result, err := p.Builder.Update(catalogTable).
		Set(goqu.Record{
			"name":        row.Name,
			"description": row.Description,
			"updated_at":  row.UpdatedAt,
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return catalogWriteError(err, catalog)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not read affected rows")
	}
	if affected == 0 {
		return catalogNotFound(catalog.ID())
	}

	return nil
}

func (p *PgSQL) DeleteCatalog(ctx context.Context, id domain.CatalogID) (domain.CatalogProducts, error) {
	var deleted domain.CatalogProducts
	err := p.withTx(ctx, func(tx *PgSQL) error {
		aggregate, err := tx.CatalogByID(ctx, id)
		if err != nil {
			return err
		}

		// products and join rows go with it through the FK cascades
		if _, err := tx.Builder.Delete(catalogTable).
			Where(goqu.I("id").Eq(uuid.UUID(id))).
			Executor().ExecContext(ctx); err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not delete catalog from pg")
		}

		deleted = aggregate

		return nil
	})
	if err != nil {
		return domain.CatalogProducts{}, err
	}

	return deleted, nil
}

func (p *PgSQL) ListCatalogs(ctx context.Context, query storage.ListQuery) (storage.CatalogPage, error) {
	if err := query.Validate(); err != nil {
		return storage.CatalogPage{}, err
	}

	count, err := p.Builder.From(catalogTable).CountContext(ctx)
	if err != nil {
		return storage.CatalogPage{}, serrors.Wrap(serrors.ErrInternal, err, "could not count catalogs in pg")
	}

	var rows []pgCatalogAggRow
	if err := p.catalogAggQuery().
		Order(goqu.I("catalog.id").Asc()).
		Limit(query.Limit).
		Offset(query.Offset()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.CatalogPage{}, serrors.Wrap(serrors.ErrInternal, err, "could not list catalogs from pg")
	}

	items := make([]domain.CatalogProducts, 0, len(rows))
	for _, row := range rows {
		aggregate, err := row.toDomain()
		if err != nil {
			return storage.CatalogPage{}, err
		}

		items = append(items, aggregate)
	}

	return storage.CatalogPage{
		Count: uint(count), //nolint: gosec
		Page:  query.Page,
		Limit: query.Limit,
		Items: items,
	}, nil
}

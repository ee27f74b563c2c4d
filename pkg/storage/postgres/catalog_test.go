package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"
	"catalog/pkg/storage"
	"catalog/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T, name, description string) domain.Catalog {
	t.Helper()

	n, err := domain.NewCatalogName(name)
	require.NoError(t, err)
	d, err := domain.NewDescription(description)
	require.NoError(t, err)

	return domain.NewCatalog(n, d)
}

func seedCatalog(t *testing.T, pg *postgres.PgSQL, name string) domain.Catalog {
	t.Helper()

	c := mustCatalog(t, name, "")
	require.NoError(t, pg.CreateCatalog(context.Background(), c))

	return c
}

func TestPgSQL_CreateCatalog(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	created := mustCatalog(t, "Lunch", "weekday lunch menu")
	require.NoError(t, pg.CreateCatalog(ctx, created))

	got, err := pg.CatalogByID(ctx, created.ID())
	require.NoError(t, err)
	require.Equal(t, created.ID(), got.Catalog.ID())
	require.Equal(t, "Lunch", got.Catalog.Name().String())
	require.Equal(t, "weekday lunch menu", got.Catalog.Description().String())
	require.Empty(t, got.Products)
}

func TestPgSQL_CreateCatalog_NameConflict(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedCatalog(t, pg, "Lunch")

	err := pg.CreateCatalog(ctx, mustCatalog(t, "Lunch", "duplicate"))
	require.ErrorIs(t, err, serrors.ErrConflict)

	var conflict *domain.NameConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, domain.EntityCatalog, conflict.Entity)
	require.Equal(t, "Lunch", conflict.Name)

	// the failed insert left the store unchanged
	page, err := pg.ListCatalogs(ctx, storage.ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Count)
}

func TestPgSQL_CatalogByID_NotFound(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := pg.CatalogByID(context.Background(), domain.NewCatalogID())
	require.ErrorIs(t, err, serrors.ErrNotFound)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, domain.EntityCatalog, notFound.Entity)
}

func TestPgSQL_UpdateCatalog(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")

	name, err := domain.NewCatalogName("Brunch")
	require.NoError(t, err)
	updated := c.Setter().Name(name).Commit()
	require.NoError(t, pg.UpdateCatalog(ctx, updated))

	got, err := pg.CatalogByID(ctx, c.ID())
	require.NoError(t, err)
	require.Equal(t, "Brunch", got.Catalog.Name().String())
	require.False(t, got.Catalog.Metadata().UpdatedAt().Before(got.Catalog.Metadata().CreatedAt()))
}

func TestPgSQL_UpdateCatalog_Errors(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// absent catalog
	err := pg.UpdateCatalog(ctx, mustCatalog(t, "Ghost", ""))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	// rename onto a taken name
	seedCatalog(t, pg, "Lunch")
	victim := seedCatalog(t, pg, "Dinner")

	name, err := domain.NewCatalogName("Lunch")
	require.NoError(t, err)
	err = pg.UpdateCatalog(ctx, victim.Setter().Name(name).Commit())
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestPgSQL_DeleteCatalog_Cascades(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")
	extra := seedExtra(t, pg, "cheese", 150)
	product := mustProduct(t, c.ID(), "Burger", 1890, domain.Extras{extra})
	require.NoError(t, pg.CreateProduct(ctx, product))

	deleted, err := pg.DeleteCatalog(ctx, c.ID())
	require.NoError(t, err)
	require.Equal(t, c.ID(), deleted.Catalog.ID())
	require.Len(t, deleted.Products, 1)
	require.Equal(t, product.ID(), deleted.Products[0].ID())

	_, err = pg.CatalogByID(ctx, c.ID())
	require.ErrorIs(t, err, serrors.ErrNotFound)

	// products went with the catalog
	_, err = pg.ProductByID(ctx, product.ID(), c.ID())
	require.ErrorIs(t, err, serrors.ErrNotFound)

	// the extra itself survives
	_, err = pg.ExtraByID(ctx, extra.ID())
	require.NoError(t, err)

	_, err = pg.DeleteCatalog(ctx, c.ID())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestPgSQL_ListCatalogs_Pagination(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	const total = 15
	for i := range total {
		seedCatalog(t, pg, fmt.Sprintf("catalog-%02d", i))
	}

	seen := make(map[domain.CatalogID]struct{})
	for page := uint(1); page <= 3; page++ {
		result, err := pg.ListCatalogs(ctx, storage.ListQuery{Page: page, Limit: 6})
		require.NoError(t, err)
		require.EqualValues(t, total, result.Count)
		require.Equal(t, page, result.Page)

		// pages are disjoint
		for _, item := range result.Items {
			_, dup := seen[item.Catalog.ID()]
			require.False(t, dup)
			seen[item.Catalog.ID()] = struct{}{}
		}
	}
	require.Len(t, seen, total)

	// past the end is empty, not an error
	result, err := pg.ListCatalogs(ctx, storage.ListQuery{Page: 4, Limit: 6})
	require.NoError(t, err)
	require.Empty(t, result.Items)
	require.EqualValues(t, total, result.Count)
}

func TestPgSQL_CatalogByID_OverfullCatalogIsInternal(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")
	for i := range domain.MaxCatalogProducts + 1 {
		p := mustProduct(t, c.ID(), fmt.Sprintf("product-%02d", i), 100, nil)
		require.NoError(t, pg.CreateProduct(ctx, p))
	}

	// a store holding more products than a catalog may carry is corrupt,
	// not a bad request
	_, err := pg.CatalogByID(ctx, c.ID())
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.NotErrorIs(t, err, serrors.ErrValidation)

	_, err = pg.ListCatalogs(ctx, storage.ListQuery{Page: 1, Limit: 10})
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.NotErrorIs(t, err, serrors.ErrValidation)
}

func TestPgSQL_ListCatalogs_Validation(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := pg.ListCatalogs(ctx, storage.ListQuery{Page: 0, Limit: 10})
	require.ErrorIs(t, err, serrors.ErrValidation)

	_, err = pg.ListCatalogs(ctx, storage.ListQuery{Page: 1, Limit: 0})
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestPgSQL_ListCatalogs_IncludesProducts(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")
	extra := seedExtra(t, pg, "bacon", 300)
	product := mustProduct(t, c.ID(), "Burger", 1890, domain.Extras{extra})
	require.NoError(t, pg.CreateProduct(ctx, product))

	result, err := pg.ListCatalogs(ctx, storage.ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	require.Len(t, result.Items[0].Products, 1)

	got := result.Items[0].Products[0]
	require.Equal(t, product.ID(), got.ID())
	require.True(t, got.Price().Equal(product.Price()))
	require.Equal(t, []domain.ExtraID{extra.ID()}, got.ExtraIDs())
}

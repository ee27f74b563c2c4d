package postgres_test

import (
	"context"
	"testing"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"
	"catalog/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T,
	catalogID domain.CatalogID,
	name string,
	cents int64,
	extras domain.Extras) domain.Product {
	t.Helper()

	n, err := domain.NewProductName(name)
	require.NoError(t, err)

	return domain.NewProduct(catalogID, n, "", domain.PriceFromCents(cents), domain.KindBurger, extras)
}

func extraIDSet(extras domain.Extras) map[domain.ExtraID]struct{} {
	set := make(map[domain.ExtraID]struct{}, len(extras))
	for _, e := range extras {
		set[e.ID()] = struct{}{}
	}

	return set
}

func TestPgSQL_CreateProduct(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")
	cheese := seedExtra(t, pg, "cheese", 150)
	bacon := seedExtra(t, pg, "bacon", 300)

	created := mustProduct(t, c.ID(), "Burger", 1890, domain.Extras{cheese, bacon})
	require.NoError(t, pg.CreateProduct(ctx, created))

	got, err := pg.ProductByID(ctx, created.ID(), c.ID())
	require.NoError(t, err)
	require.Equal(t, created.ID(), got.ID())
	require.True(t, got.Price().Equal(created.Price()))
	// the bound extras match as a set
	require.Equal(t, extraIDSet(created.Extras()), extraIDSet(got.Extras()))
}

func TestPgSQL_CreateProduct_Errors(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")

	// absent catalog
	err := pg.CreateProduct(ctx, mustProduct(t, domain.NewCatalogID(), "Orphan", 100, nil))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	require.NoError(t, pg.CreateProduct(ctx, mustProduct(t, c.ID(), "Burger", 1890, nil)))

	// taken name
	err = pg.CreateProduct(ctx, mustProduct(t, c.ID(), "Burger", 2000, nil))
	require.ErrorIs(t, err, serrors.ErrConflict)

	var conflict *domain.NameConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, domain.EntityProduct, conflict.Entity)
}

func TestPgSQL_CreateProduct_UnstoredExtraRollsBack(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")

	name, err := domain.NewExtraName("phantom")
	require.NoError(t, err)
	unstored := domain.NewExtra(name, "", domain.PriceFromCents(100))

	created := mustProduct(t, c.ID(), "Burger", 1890, domain.Extras{unstored})
	err = pg.CreateProduct(ctx, created)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	// the failed join insert must take the product row down with it
	_, err = pg.ProductByID(ctx, created.ID(), c.ID())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestPgSQL_CreateProduct_RepeatedExtraBindsOnce(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")
	cheese := seedExtra(t, pg, "cheese", 150)

	created := mustProduct(t, c.ID(), "Burger", 1890, domain.Extras{cheese, cheese})
	require.NoError(t, pg.CreateProduct(ctx, created))

	require.Equal(t, 1, countJoinRows(t, pg, created))

	got, err := pg.ProductByID(ctx, created.ID(), c.ID())
	require.NoError(t, err)
	require.Equal(t, []domain.ExtraID{cheese.ID()}, got.ExtraIDs())
}

func TestPgSQL_ProductByID_WrongCatalog(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")
	other := seedCatalog(t, pg, "Dinner")

	created := mustProduct(t, c.ID(), "Burger", 1890, nil)
	require.NoError(t, pg.CreateProduct(ctx, created))

	// reachable through its own catalog only
	_, err := pg.ProductByID(ctx, created.ID(), other.ID())
	require.ErrorIs(t, err, serrors.ErrNotFound)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, other.ID().String(), notFound.Scope)
}

func TestPgSQL_UpdateProduct_ReconcilesExtras(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")
	a := seedExtra(t, pg, "cheese", 150)
	b := seedExtra(t, pg, "bacon", 300)
	d := seedExtra(t, pg, "pickles", 100)

	created := mustProduct(t, c.ID(), "Burger", 1890, domain.Extras{a, b})
	require.NoError(t, pg.CreateProduct(ctx, created))

	// {a, b} -> {b, d}: a unbound, b kept, d bound
	updated := created.Setter().Extras(domain.Extras{b, d}).Commit()
	require.NoError(t, pg.UpdateProduct(ctx, updated))

	got, err := pg.ProductByID(ctx, created.ID(), c.ID())
	require.NoError(t, err)
	require.Equal(t, extraIDSet(domain.Extras{b, d}), extraIDSet(got.Extras()))

	// -> {}: everything unbound
	require.NoError(t, pg.UpdateProduct(ctx, got.Setter().Extras(nil).Commit()))

	got, err = pg.ProductByID(ctx, created.ID(), c.ID())
	require.NoError(t, err)
	require.Empty(t, got.Extras())
}

func TestPgSQL_UpdateProduct_Errors(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")

	// absent product
	err := pg.UpdateProduct(ctx, mustProduct(t, c.ID(), "Ghost", 100, nil))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	// a product reached through the wrong catalog stays untouched
	created := mustProduct(t, c.ID(), "Burger", 1890, nil)
	require.NoError(t, pg.CreateProduct(ctx, created))

	other := seedCatalog(t, pg, "Dinner")
	foreign := domain.ProductFromConfig(domain.ProductConfig{
		ID:        created.ID(),
		CatalogID: other.ID(),
		Name:      created.Name(),
		Price:     domain.PriceFromCents(1),
		Kind:      created.Kind(),
		Metadata:  created.Metadata(),
	})
	err = pg.UpdateProduct(ctx, foreign)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	got, err := pg.ProductByID(ctx, created.ID(), c.ID())
	require.NoError(t, err)
	require.True(t, got.Price().Equal(created.Price()))
}

func TestPgSQL_DeleteProduct(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	c := seedCatalog(t, pg, "Lunch")
	extra := seedExtra(t, pg, "cheese", 150)

	created := mustProduct(t, c.ID(), "Burger", 1890, domain.Extras{extra})
	require.NoError(t, pg.CreateProduct(ctx, created))

	deleted, err := pg.DeleteProduct(ctx, created.ID(), c.ID())
	require.NoError(t, err)
	require.Equal(t, created.ID(), deleted.ID())
	require.Len(t, deleted.Extras(), 1)

	_, err = pg.ProductByID(ctx, created.ID(), c.ID())
	require.ErrorIs(t, err, serrors.ErrNotFound)

	// join rows are gone too
	require.Zero(t, countJoinRows(t, pg, created))
}

func countJoinRows(t *testing.T, pg *postgres.PgSQL, product domain.Product) int {
	t.Helper()

	var c int
	err := pg.DB.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM product_extras WHERE product_id = $1`,
		product.ID().String()).Scan(&c)
	require.NoError(t, err)

	return c
}

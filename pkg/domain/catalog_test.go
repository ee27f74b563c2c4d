package domain_test

import (
	"errors"
	"testing"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func mustCatalogName(t *testing.T, raw string) domain.CatalogName {
	t.Helper()

	name, err := domain.NewCatalogName(raw)
	require.NoError(t, err)

	return name
}

func mustDescription(t *testing.T, raw string) domain.Description {
	t.Helper()

	desc, err := domain.NewDescription(raw)
	require.NoError(t, err)

	return desc
}

func TestNewCatalog(t *testing.T) {
	c := domain.NewCatalog(mustCatalogName(t, "Dinner"), mustDescription(t, "evening menu"))

	require.False(t, c.ID().IsZero())
	require.Equal(t, "Dinner", c.Name().String())
	require.Equal(t, c.Metadata().CreatedAt(), c.Metadata().UpdatedAt())
}

func TestCatalogSetter(t *testing.T) {
	c := domain.NewCatalog(mustCatalogName(t, "Dinner"), mustDescription(t, ""))

	updated := c.Setter().
		Name(mustCatalogName(t, "Supper")).
		Description(mustDescription(t, "late menu")).
		Commit()

	require.Equal(t, c.ID(), updated.ID())
	require.Equal(t, "Supper", updated.Name().String())
	require.Equal(t, "late menu", updated.Description().String())
	require.True(t, updated.Metadata().UpdatedAt().After(c.Metadata().UpdatedAt()) ||
		updated.Metadata().UpdatedAt().Equal(c.Metadata().UpdatedAt()))
	// the original value is untouched
	require.Equal(t, "Dinner", c.Name().String())
}

func TestNewProductsBound(t *testing.T) {
	catalogID := domain.NewCatalogID()
	build := func(n int) []domain.Product {
		products := make([]domain.Product, 0, n)
		for range n {
			products = append(products, domain.NewProduct(
				catalogID, "p", "", domain.PriceFromCents(100), domain.KindBurger, nil))
		}

		return products
	}

	_, err := domain.NewProducts(build(domain.MaxCatalogProducts))
	require.NoError(t, err)

	_, err = domain.NewProducts(build(domain.MaxCatalogProducts + 1))
	require.True(t, errors.Is(err, serrors.ErrValidation))
}

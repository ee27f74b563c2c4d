package domain_test

import (
	"errors"
	"testing"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	catalogID := domain.NewCatalogID()
	extra := domain.NewExtra("cheese", "", domain.PriceFromCents(150))

	p := domain.NewProduct(catalogID, "Smash Burger", "double patty",
		domain.PriceFromCents(1890), domain.KindBurger, domain.Extras{extra})

	require.False(t, p.ID().IsZero())
	require.Equal(t, catalogID, p.CatalogID())
	require.EqualValues(t, 1890, p.Price().Cents())
	require.Equal(t, []domain.ExtraID{extra.ID()}, p.ExtraIDs())
}

func TestProductSetter(t *testing.T) {
	p := domain.NewProduct(domain.NewCatalogID(), "Smash Burger", "",
		domain.PriceFromCents(1890), domain.KindBurger, nil)

	extra := domain.NewExtra("bacon", "", domain.PriceFromCents(300))
	updated := p.Setter().
		Price(domain.PriceFromCents(2090)).
		Kind(domain.KindVegan).
		Extras(domain.Extras{extra}).
		Commit()

	require.Equal(t, p.ID(), updated.ID())
	require.EqualValues(t, 2090, updated.Price().Cents())
	require.Equal(t, domain.KindVegan, updated.Kind())
	require.Len(t, updated.Extras(), 1)
	require.EqualValues(t, 1890, p.Price().Cents())
}

func TestNewExtrasBound(t *testing.T) {
	build := func(n int) []domain.Extra {
		extras := make([]domain.Extra, 0, n)
		for range n {
			extras = append(extras, domain.NewExtra("e", "", domain.PriceFromCents(50)))
		}

		return extras
	}

	_, err := domain.NewExtras(build(domain.MaxProductExtras))
	require.NoError(t, err)

	_, err = domain.NewExtras(build(domain.MaxProductExtras + 1))
	require.True(t, errors.Is(err, serrors.ErrValidation))
}

func TestNewExtrasDeduplicates(t *testing.T) {
	cheese := domain.NewExtra("cheese", "", domain.PriceFromCents(150))
	bacon := domain.NewExtra("bacon", "", domain.PriceFromCents(300))

	extras, err := domain.NewExtras([]domain.Extra{cheese, bacon, cheese, cheese})
	require.NoError(t, err)
	require.Equal(t, domain.Extras{cheese, bacon}, extras)

	// repeats of one id stay within the bound
	repeated := make([]domain.Extra, 0, domain.MaxProductExtras+1)
	for range domain.MaxProductExtras + 1 {
		repeated = append(repeated, cheese)
	}

	extras, err = domain.NewExtras(repeated)
	require.NoError(t, err)
	require.Len(t, extras, 1)
}

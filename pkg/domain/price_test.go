package domain_test

import (
	"errors"
	"testing"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewPriceTruncates(t *testing.T) {
	p := domain.NewPrice(decimal.RequireFromString("12.999"))
	require.Equal(t, "12.99", p.String())
	require.EqualValues(t, 1299, p.Cents())
}

func TestPriceFromCentsRoundTrips(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 12_345, 9_999_999_999} {
		p := domain.PriceFromCents(cents)
		require.Equal(t, cents, p.Cents())
	}
}

func TestParsePrice(t *testing.T) {
	p, err := domain.ParsePrice("7.5")
	require.NoError(t, err)
	require.Equal(t, "7.50", p.String())

	_, err = domain.ParsePrice("seven")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrValidation))
}

func TestPriceComparisons(t *testing.T) {
	a := domain.PriceFromCents(100)
	b := domain.NewPrice(decimal.RequireFromString("1.00"))
	c := domain.PriceFromCents(150)

	require.True(t, a.Equal(b))
	require.True(t, a.LessThan(c))
	require.False(t, c.LessThan(a))
}

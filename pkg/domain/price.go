package domain

import (
	"catalog/pkg/serrors"

	"github.com/shopspring/decimal"
)

// priceScale is the number of decimal places a price carries.
const priceScale = 2

// Price is a currency amount held at exactly two decimal places. Equality and
// ordering are defined on the underlying decimal value; the integer-cents view
// is derived and never used for comparisons, so no float round-trips occur.
type Price struct {
	d decimal.Decimal
}

// NewPrice builds a price from an arbitrary-precision decimal, truncating
// (not rounding) to two places.
func NewPrice(d decimal.Decimal) Price {
	return Price{d: d.Truncate(priceScale)}
}

// PriceFromCents builds a price from an integer cent count. The conversion is
// exact: PriceFromCents(c).Cents() == c for every c.
func PriceFromCents(cents int64) Price {
	return Price{d: decimal.New(cents, -priceScale)}
}

// ParsePrice parses the canonical decimal string form of a price.
func ParsePrice(value string) (Price, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, serrors.With(serrors.ErrValidation, "%q is not a valid price", value)
	}

	return NewPrice(d), nil
}

// Decimal returns the underlying decimal value.
func (p Price) Decimal() decimal.Decimal { return p.d }

// Cents returns the amount as an integer cent count. The price is held at two
// places, so the conversion is lossless.
func (p Price) Cents() int64 {
	return p.d.Shift(priceScale).IntPart()
}

// Equal reports whether two prices represent the same amount.
func (p Price) Equal(other Price) bool { return p.d.Equal(other.d) }

// LessThan reports whether p is strictly smaller than other.
func (p Price) LessThan(other Price) bool { return p.d.LessThan(other.d) }

// String renders the price with exactly two decimal places, e.g. "12.00".
func (p Price) String() string { return p.d.StringFixed(priceScale) }

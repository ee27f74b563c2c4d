package domain

import "catalog/pkg/serrors"

// Kind is the closed set of cuisine categories a product belongs to. It is
// serialized as a fixed lowercase token.
type Kind string

const (
	KindBrazillian Kind = "brazillian"
	KindBurger     Kind = "burger"
	KindFrench     Kind = "french"
	KindIceCream   Kind = "ice_cream"
	KindItalian    Kind = "italian"
	KindJapanese   Kind = "japanese"
	KindKorean     Kind = "korean"
	KindLibanese   Kind = "libanese"
	KindVegan      Kind = "vegan"
)

// Kinds lists every valid product kind.
func Kinds() []Kind {
	return []Kind{
		KindBrazillian,
		KindBurger,
		KindFrench,
		KindIceCream,
		KindItalian,
		KindJapanese,
		KindKorean,
		KindLibanese,
		KindVegan,
	}
}

// ParseKind parses the lowercase token form of a product kind. Unknown tokens
// are a validation error.
func ParseKind(value string) (Kind, error) {
	switch k := Kind(value); k {
	case KindBrazillian, KindBurger, KindFrench, KindIceCream,
		KindItalian, KindJapanese, KindKorean, KindLibanese, KindVegan:
		return k, nil
	default:
		return "", serrors.With(serrors.ErrValidation, "%q is not a valid kind of product", value)
	}
}

func (k Kind) String() string { return string(k) }

package domain

import (
	"catalog/pkg/serrors"
)

// MaxProductExtras bounds how many extras a product may reference.
const MaxProductExtras = 32

// Product is a sellable item inside a catalog, optionally referencing a set
// of extras.
type Product struct {
	id          ProductID
	catalogID   CatalogID
	name        ProductName
	description Description
	price       Price
	kind        Kind
	extras      Extras
	metadata    Metadata
}

// NewProduct mints a product with a fresh id and metadata.
func NewProduct(catalogID CatalogID, name ProductName, description Description, price Price, kind Kind, extras Extras) Product {
	return Product{
		id:          NewProductID(),
		catalogID:   catalogID,
		name:        name,
		description: description,
		price:       price,
		kind:        kind,
		extras:      extras,
		metadata:    NewMetadata(),
	}
}

// ProductConfig rehydrates a Product from storage.
type ProductConfig struct {
	ID          ProductID
	CatalogID   CatalogID
	Name        ProductName
	Description Description
	Price       Price
	Kind        Kind
	Extras      Extras
	Metadata    Metadata
}

func ProductFromConfig(cfg ProductConfig) Product {
	return Product{
		id:          cfg.ID,
		catalogID:   cfg.CatalogID,
		name:        cfg.Name,
		description: cfg.Description,
		price:       cfg.Price,
		kind:        cfg.Kind,
		extras:      cfg.Extras,
		metadata:    cfg.Metadata,
	}
}

func (p Product) ID() ProductID            { return p.id }
func (p Product) CatalogID() CatalogID     { return p.catalogID }
func (p Product) Name() ProductName        { return p.name }
func (p Product) Description() Description { return p.description }
func (p Product) Price() Price             { return p.price }
func (p Product) Kind() Kind               { return p.kind }
func (p Product) Extras() Extras           { return p.extras }
func (p Product) Metadata() Metadata       { return p.metadata }

// ExtraIDs returns the ids of the referenced extras in collection order.
func (p Product) ExtraIDs() []ExtraID {
	ids := make([]ExtraID, 0, len(p.extras))
	for _, extra := range p.extras {
		ids = append(ids, extra.ID())
	}

	return ids
}

// Setter starts a mutation of the product. Commit returns the updated copy
// with a bumped metadata timestamp.
func (p Product) Setter() *ProductSetter {
	return &ProductSetter{product: p}
}

type ProductSetter struct {
	product Product
}

func (s *ProductSetter) Name(name ProductName) *ProductSetter {
	s.product.name = name

	return s
}

func (s *ProductSetter) Description(description Description) *ProductSetter {
	s.product.description = description

	return s
}

func (s *ProductSetter) Price(price Price) *ProductSetter {
	s.product.price = price

	return s
}

func (s *ProductSetter) Kind(kind Kind) *ProductSetter {
	s.product.kind = kind

	return s
}

func (s *ProductSetter) Extras(extras Extras) *ProductSetter {
	s.product.extras = extras

	return s
}

func (s *ProductSetter) Commit() Product {
	s.product.metadata = s.product.metadata.Updated()

	return s.product
}

// Extras is a bounded collection of extras referenced by a product.
type Extras []Extra

// NewExtras drops duplicate ids, keeping the first occurrence, and
// validates the collection bound.
func NewExtras(extras []Extra) (Extras, error) {
	seen := make(map[ExtraID]struct{}, len(extras))
	out := make(Extras, 0, len(extras))
	for _, extra := range extras {
		if _, ok := seen[extra.ID()]; ok {
			continue
		}

		seen[extra.ID()] = struct{}{}
		out = append(out, extra)
	}

	if len(out) > MaxProductExtras {
		return nil, serrors.With(serrors.ErrValidation, "product cannot have more than %d extras", MaxProductExtras)
	}

	return out, nil
}

package domain

import (
	"catalog/pkg/serrors"
)

// MaxCatalogProducts bounds how many products a catalog aggregate may carry.
const MaxCatalogProducts = 64

// Catalog is a named grouping of products. Instances are immutable, mutate
// through Setter.
type Catalog struct {
	id          CatalogID
	name        CatalogName
	description Description
	metadata    Metadata
}

// NewCatalog mints a catalog with a fresh id and metadata.
func NewCatalog(name CatalogName, description Description) Catalog {
	return Catalog{
		id:          NewCatalogID(),
		name:        name,
		description: description,
		metadata:    NewMetadata(),
	}
}

// CatalogConfig rehydrates a Catalog from storage.
type CatalogConfig struct {
	ID          CatalogID
	Name        CatalogName
	Description Description
	Metadata    Metadata
}

func CatalogFromConfig(cfg CatalogConfig) Catalog {
	return Catalog{
		id:          cfg.ID,
		name:        cfg.Name,
		description: cfg.Description,
		metadata:    cfg.Metadata,
	}
}

func (c Catalog) ID() CatalogID            { return c.id }
func (c Catalog) Name() CatalogName        { return c.name }
func (c Catalog) Description() Description { return c.description }
func (c Catalog) Metadata() Metadata       { return c.metadata }

// Setter starts a mutation of the catalog. Commit returns the updated copy
// with a bumped metadata timestamp.
func (c Catalog) Setter() *CatalogSetter {
	return &CatalogSetter{catalog: c}
}

type CatalogSetter struct {
	catalog Catalog
}

func (s *CatalogSetter) Name(name CatalogName) *CatalogSetter {
	s.catalog.name = name

	return s
}

func (s *CatalogSetter) Description(description Description) *CatalogSetter {
	s.catalog.description = description

	return s
}

func (s *CatalogSetter) Commit() Catalog {
	s.catalog.metadata = s.catalog.metadata.Updated()

	return s.catalog
}

// Products is a bounded collection of products belonging to one catalog.
type Products []Product

// NewProducts validates the collection bound.
func NewProducts(products []Product) (Products, error) {
	if len(products) > MaxCatalogProducts {
		return nil, serrors.With(serrors.ErrValidation, "catalog cannot have more than %d products", MaxCatalogProducts)
	}

	return Products(products), nil
}

// CatalogProducts is the read aggregate of a catalog together with its
// products.
type CatalogProducts struct {
	Catalog  Catalog
	Products Products
}

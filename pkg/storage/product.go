package storage

import (
	"context"

	"catalog/pkg/domain"
)

// ProductStorage persists products. Every lookup is scoped by the owning
// catalog id; a product reached through the wrong catalog id is NOT_FOUND,
// never exposed.
type ProductStorage interface {
	// CreateProduct inserts the product row and its extra join rows in one
	// transaction. Fails with CONFLICT on a taken id or name and with
	// NOT_FOUND when the owning catalog does not exist.
	CreateProduct(ctx context.Context, product domain.Product) error
	// ProductByID loads a product with its extras.
	ProductByID(ctx context.Context, id domain.ProductID, catalogID domain.CatalogID) (domain.Product, error)
	// UpdateProduct persists a mutated product and reconciles its extra join
	// rows (missing ones inserted, removed ones deleted) in one transaction.
	UpdateProduct(ctx context.Context, product domain.Product) error
	// DeleteProduct removes the product and its join rows, returning the last
	// state of the product.
	DeleteProduct(ctx context.Context, id domain.ProductID, catalogID domain.CatalogID) (domain.Product, error)
}

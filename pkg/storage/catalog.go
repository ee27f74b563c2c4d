package storage

import (
	"context"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"
)

// DefaultPageLimit is used when a list request does not name a page size.
const DefaultPageLimit = 20

// ListQuery selects a page of catalogs. Page is 1-based.
type ListQuery struct {
	Page  uint
	Limit uint
}

// Validate rejects zero page or limit. Both must be explicit and positive so
// that pagination math never divides a request into ambiguous windows.
func (q ListQuery) Validate() error {
	if q.Page == 0 {
		return serrors.With(serrors.ErrValidation, "page must be positive")
	}
	if q.Limit == 0 {
		return serrors.With(serrors.ErrValidation, "limit must be positive")
	}

	return nil
}

// Offset returns the row offset of the requested page.
func (q ListQuery) Offset() uint {
	return (q.Page - 1) * q.Limit
}

// CatalogPage is one page of the catalog listing. Count is the total number
// of catalogs in the store, not the page size.
type CatalogPage struct {
	Count uint
	Page  uint
	Limit uint
	Items []domain.CatalogProducts
}

// CatalogStorage persists catalogs. Reads return the full aggregate, the
// catalog together with its products and their extras.
type CatalogStorage interface {
	// CreateCatalog inserts a new catalog. Fails with a CONFLICT error when the
	// id or the name is already taken.
	CreateCatalog(ctx context.Context, catalog domain.Catalog) error
	// CatalogByID loads the catalog aggregate. Fails with NOT_FOUND when no
	// such catalog exists.
	CatalogByID(ctx context.Context, id domain.CatalogID) (domain.CatalogProducts, error)
	// UpdateCatalog persists a mutated catalog. Fails with NOT_FOUND when the
	// catalog does not exist and CONFLICT when the new name is taken.
	UpdateCatalog(ctx context.Context, catalog domain.Catalog) error
	// DeleteCatalog removes the catalog and, through the schema, its products
	// and their join rows. It returns the aggregate as it was at deletion time.
	DeleteCatalog(ctx context.Context, id domain.CatalogID) (domain.CatalogProducts, error)
	// ListCatalogs returns one page of catalog aggregates ordered by id
	// ascending, plus the total catalog count.
	ListCatalogs(ctx context.Context, query ListQuery) (CatalogPage, error)
}

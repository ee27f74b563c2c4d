package service

import (
	"context"

	"catalog/pkg/domain"
	"catalog/pkg/storage"
)

type catalogs struct {
	storage storage.Storage
}

// NewCatalogs builds the catalog service on the given storage.
func NewCatalogs(strg storage.Storage) Catalogs {
	return &catalogs{storage: strg}
}

func (c *catalogs) Create(ctx context.Context, in CatalogInput) (domain.Catalog, error) {
	name, err := domain.NewCatalogName(in.Name)
	if err != nil {
		return domain.Catalog{}, err
	}

	description, err := domain.NewDescription(in.Description)
	if err != nil {
		return domain.Catalog{}, err
	}

	catalog := domain.NewCatalog(name, description)
	if err := c.storage.CreateCatalog(ctx, catalog); err != nil {
		return domain.Catalog{}, err
	}

	return catalog, nil
}

func (c *catalogs) Get(ctx context.Context, id string) (domain.CatalogProducts, error) {
	catalogID, err := domain.ParseCatalogID(id)
	if err != nil {
		return domain.CatalogProducts{}, err
	}

	return c.storage.CatalogByID(ctx, catalogID)
}

func (c *catalogs) List(ctx context.Context, page, limit uint) (storage.CatalogPage, error) {
	if limit == 0 {
		limit = storage.DefaultPageLimit
	}

	return c.storage.ListCatalogs(ctx, storage.ListQuery{Page: page, Limit: limit})
}

func (c *catalogs) Update(ctx context.Context, id string, in CatalogUpdate) (domain.Catalog, error) {
	catalogID, err := domain.ParseCatalogID(id)
	if err != nil {
		return domain.Catalog{}, err
	}

	aggregate, err := c.storage.CatalogByID(ctx, catalogID)
	if err != nil {
		return domain.Catalog{}, err
	}

	setter := aggregate.Catalog.Setter()
	if in.Name != nil {
		name, err := domain.NewCatalogName(*in.Name)
		if err != nil {
			return domain.Catalog{}, err
		}
		setter.Name(name)
	}
	if in.Description != nil {
		description, err := domain.NewDescription(*in.Description)
		if err != nil {
			return domain.Catalog{}, err
		}
		setter.Description(description)
	}

	updated := setter.Commit()
	if err := c.storage.UpdateCatalog(ctx, updated); err != nil {
		return domain.Catalog{}, err
	}

	return updated, nil
}

func (c *catalogs) Delete(ctx context.Context, id string) (domain.CatalogProducts, error) {
	catalogID, err := domain.ParseCatalogID(id)
	if err != nil {
		return domain.CatalogProducts{}, err
	}

	return c.storage.DeleteCatalog(ctx, catalogID)
}

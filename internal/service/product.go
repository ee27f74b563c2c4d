package service

import (
	"context"

	"catalog/pkg/domain"
	"catalog/pkg/storage"
)

type products struct {
	storage storage.Storage
}

// NewProducts builds the product service on the given storage.
func NewProducts(strg storage.Storage) Products {
	return &products{storage: strg}
}

// loadExtras resolves raw extra ids into the bounded collection, failing on
// the first unknown id.
func (p *products) loadExtras(ctx context.Context, rawIDs []string) (domain.Extras, error) {
	ids := make([]domain.ExtraID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := domain.ParseExtraID(raw)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return p.storage.ExtrasByIDs(ctx, ids)
}

func (p *products) Create(ctx context.Context, catalogID string, in ProductInput) (domain.Product, error) {
	parentID, err := domain.ParseCatalogID(catalogID)
	if err != nil {
		return domain.Product{}, err
	}

	name, err := domain.NewProductName(in.Name)
	if err != nil {
		return domain.Product{}, err
	}

	description, err := domain.NewDescription(in.Description)
	if err != nil {
		return domain.Product{}, err
	}

	price, err := domain.ParsePrice(in.Price)
	if err != nil {
		return domain.Product{}, err
	}

	kind, err := domain.ParseKind(in.Kind)
	if err != nil {
		return domain.Product{}, err
	}

	extras, err := p.loadExtras(ctx, in.ExtraIDs)
	if err != nil {
		return domain.Product{}, err
	}

	product := domain.NewProduct(parentID, name, description, price, kind, extras)
	if err := p.storage.CreateProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (p *products) Get(ctx context.Context, catalogID, id string) (domain.Product, error) {
	parentID, err := domain.ParseCatalogID(catalogID)
	if err != nil {
		return domain.Product{}, err
	}

	productID, err := domain.ParseProductID(id)
	if err != nil {
		return domain.Product{}, err
	}

	return p.storage.ProductByID(ctx, productID, parentID)
}

func (p *products) Update(ctx context.Context, catalogID, id string, in ProductUpdate) (domain.Product, error) {
	current, err := p.Get(ctx, catalogID, id)
	if err != nil {
		return domain.Product{}, err
	}

	setter := current.Setter()
	if in.Name != nil {
		name, err := domain.NewProductName(*in.Name)
		if err != nil {
			return domain.Product{}, err
		}
		setter.Name(name)
	}
	if in.Description != nil {
		description, err := domain.NewDescription(*in.Description)
		if err != nil {
			return domain.Product{}, err
		}
		setter.Description(description)
	}
	if in.Price != nil {
		price, err := domain.ParsePrice(*in.Price)
		if err != nil {
			return domain.Product{}, err
		}
		setter.Price(price)
	}
	if in.Kind != nil {
		kind, err := domain.ParseKind(*in.Kind)
		if err != nil {
			return domain.Product{}, err
		}
		setter.Kind(kind)
	}
	if in.ExtraIDs != nil {
		extras, err := p.loadExtras(ctx, *in.ExtraIDs)
		if err != nil {
			return domain.Product{}, err
		}
		setter.Extras(extras)
	}

	updated := setter.Commit()
	if err := p.storage.UpdateProduct(ctx, updated); err != nil {
		return domain.Product{}, err
	}

	return updated, nil
}

func (p *products) Delete(ctx context.Context, catalogID, id string) (domain.Product, error) {
	parentID, err := domain.ParseCatalogID(catalogID)
	if err != nil {
		return domain.Product{}, err
	}

	productID, err := domain.ParseProductID(id)
	if err != nil {
		return domain.Product{}, err
	}

	return p.storage.DeleteProduct(ctx, productID, parentID)
}

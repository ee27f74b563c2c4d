package service

import (
	"context"

	"catalog/pkg/domain"
	"catalog/pkg/storage"
)

type extras struct {
	storage storage.Storage
}

// NewExtras builds the extra service on the given storage.
func NewExtras(strg storage.Storage) Extras {
	return &extras{storage: strg}
}

func (e *extras) Create(ctx context.Context, in ExtraInput) (domain.Extra, error) {
	name, err := domain.NewExtraName(in.Name)
	if err != nil {
		return domain.Extra{}, err
	}

	description, err := domain.NewDescription(in.Description)
	if err != nil {
		return domain.Extra{}, err
	}

	price, err := domain.ParsePrice(in.Price)
	if err != nil {
		return domain.Extra{}, err
	}

	extra := domain.NewExtra(name, description, price)
	if err := e.storage.CreateExtra(ctx, extra); err != nil {
		return domain.Extra{}, err
	}

	return extra, nil
}

func (e *extras) Get(ctx context.Context, id string) (domain.Extra, error) {
	extraID, err := domain.ParseExtraID(id)
	if err != nil {
		return domain.Extra{}, err
	}

	return e.storage.ExtraByID(ctx, extraID)
}

func (e *extras) List(ctx context.Context) ([]domain.Extra, error) {
	return e.storage.AllExtras(ctx)
}

func (e *extras) Update(ctx context.Context, id string, in ExtraUpdate) (domain.Extra, error) {
	current, err := e.Get(ctx, id)
	if err != nil {
		return domain.Extra{}, err
	}

	setter := current.Setter()
	if in.Name != nil {
		name, err := domain.NewExtraName(*in.Name)
		if err != nil {
			return domain.Extra{}, err
		}
		setter.Name(name)
	}
	if in.Description != nil {
		description, err := domain.NewDescription(*in.Description)
		if err != nil {
			return domain.Extra{}, err
		}
		setter.Description(description)
	}
	if in.Price != nil {
		price, err := domain.ParsePrice(*in.Price)
		if err != nil {
			return domain.Extra{}, err
		}
		setter.Price(price)
	}

	updated := setter.Commit()
	if err := e.storage.UpdateExtra(ctx, updated); err != nil {
		return domain.Extra{}, err
	}

	return updated, nil
}

func (e *extras) Delete(ctx context.Context, id string) (domain.Extra, error) {
	extraID, err := domain.ParseExtraID(id)
	if err != nil {
		return domain.Extra{}, err
	}

	return e.storage.DeleteExtra(ctx, extraID)
}

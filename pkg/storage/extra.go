package storage

import (
	"context"

	"catalog/pkg/domain"
)

// ExtraStorage persists product extras.
type ExtraStorage interface {
	// CreateExtra inserts a new extra. Fails with CONFLICT when the id or the
	// name is already taken.
	CreateExtra(ctx context.Context, extra domain.Extra) error
	// ExtraByID loads a single extra.
	ExtraByID(ctx context.Context, id domain.ExtraID) (domain.Extra, error)
	// ExtrasByIDs loads the given extras all-or-nothing: if any id is missing
	// the whole call fails with a NOT_FOUND error naming the first missing id
	// in input order. The result preserves input order.
	ExtrasByIDs(ctx context.Context, ids []domain.ExtraID) (domain.Extras, error)
	// AllExtras returns every extra ordered by id ascending.
	AllExtras(ctx context.Context) ([]domain.Extra, error)
	// UpdateExtra persists a mutated extra. Fails with NOT_FOUND when the
	// extra does not exist and CONFLICT when the new name is taken.
	UpdateExtra(ctx context.Context, extra domain.Extra) error
	// DeleteExtra removes the extra, returning its last state. Join rows
	// referencing it are removed through the schema.
	DeleteExtra(ctx context.Context, id domain.ExtraID) (domain.Extra, error)
}

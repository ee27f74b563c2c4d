package domain

import (
	"time"

	"catalog/pkg/serrors"
)

// Metadata is the created/updated timestamp pair attached to every entity.
// The invariant created_at <= updated_at always holds: fresh metadata has
// both set to the same instant, and only Updated moves updated_at forward.
type Metadata struct {
	createdAt time.Time
	updatedAt time.Time
}

// NewMetadata returns metadata for a freshly created entity, with created_at
// and updated_at set to the same "now".
func NewMetadata() Metadata {
	now := time.Now().UTC()

	return Metadata{createdAt: now, updatedAt: now}
}

// ConfiguredMetadata rebuilds metadata from stored timestamps. A created_at
// after updated_at is a data-integrity violation and is reported as an
// internal error, never silently repaired.
func ConfiguredMetadata(createdAt, updatedAt time.Time) (Metadata, error) {
	if createdAt.After(updatedAt) {
		return Metadata{}, serrors.With(serrors.ErrInternal,
			"metadata created at cannot be after updated at")
	}

	return Metadata{createdAt: createdAt, updatedAt: updatedAt}, nil
}

// CreatedAt returns the creation time. It never changes after construction.
func (m Metadata) CreatedAt() time.Time { return m.createdAt }

// UpdatedAt returns the time of the last committed mutation.
func (m Metadata) UpdatedAt() time.Time { return m.updatedAt }

// Updated returns a copy with updated_at set to "now". Entity setters call
// this on commit; nothing else should.
func (m Metadata) Updated() Metadata {
	m.updatedAt = time.Now().UTC()

	return m
}

package domain_test

import (
	"errors"
	"testing"
	"time"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	m := domain.NewMetadata()
	require.Equal(t, m.CreatedAt(), m.UpdatedAt())
	require.False(t, m.CreatedAt().IsZero())
}

func TestConfiguredMetadata(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	m, err := domain.ConfiguredMetadata(created, updated)
	require.NoError(t, err)
	require.Equal(t, created, m.CreatedAt())
	require.Equal(t, updated, m.UpdatedAt())

	_, err = domain.ConfiguredMetadata(updated, created)
	require.True(t, errors.Is(err, serrors.ErrInternal))
}

func TestMetadataUpdated(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	m, err := domain.ConfiguredMetadata(created, created)
	require.NoError(t, err)

	bumped := m.Updated()
	require.Equal(t, created, bumped.CreatedAt())
	require.True(t, bumped.UpdatedAt().After(created))
	// the receiver is untouched
	require.Equal(t, created, m.UpdatedAt())
}

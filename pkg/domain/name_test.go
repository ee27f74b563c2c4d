package domain_test

import (
	"errors"
	"strings"
	"testing"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNewCatalogName(t *testing.T) {
	name, err := domain.NewCatalogName("  Lunch Menu  ")
	require.NoError(t, err)
	require.Equal(t, "Lunch Menu", name.String())

	_, err = domain.NewCatalogName(strings.Repeat("x", domain.MaxCatalogNameLen+1))
	require.True(t, errors.Is(err, serrors.ErrValidation))

	// trimming happens before the bound check, so trailing space does not
	// push an otherwise valid name over the limit
	padded := strings.Repeat("x", domain.MaxCatalogNameLen) + "   "
	name, err = domain.NewCatalogName(padded)
	require.NoError(t, err)
	require.Len(t, name.String(), domain.MaxCatalogNameLen)
}

func TestNewExtraNameBound(t *testing.T) {
	_, err := domain.NewExtraName(strings.Repeat("y", domain.MaxExtraNameLen))
	require.NoError(t, err)

	_, err = domain.NewExtraName(strings.Repeat("y", domain.MaxExtraNameLen+1))
	require.True(t, errors.Is(err, serrors.ErrValidation))
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid", raw: "joe@example.com"},
		{name: "trimmed", raw: "  joe@example.com "},
		{name: "missing at sign", raw: "joe.example.com", wantErr: true},
		{name: "too long", raw: strings.Repeat("a", domain.MaxEmailLen) + "@x", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			email, err := domain.NewEmail(tc.raw)
			if tc.wantErr {
				require.True(t, errors.Is(err, serrors.ErrValidation))

				return
			}
			require.NoError(t, err)
			require.Equal(t, strings.TrimSpace(tc.raw), email.String())
		})
	}
}

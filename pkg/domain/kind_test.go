package domain_test

import (
	"errors"
	"testing"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range domain.Kinds() {
		parsed, err := domain.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}

	_, err := domain.ParseKind("sushi")
	require.True(t, errors.Is(err, serrors.ErrValidation))

	// tokens are case-sensitive
	_, err = domain.ParseKind("Burger")
	require.True(t, errors.Is(err, serrors.ErrValidation))
}

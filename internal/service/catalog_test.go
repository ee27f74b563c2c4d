package service_test

import (
	"context"
	"errors"
	"testing"

	"catalog/internal/service"
	mockstorage "catalog/pkg/storage/mock"

	"go.uber.org/mock/gomock"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"
	"catalog/pkg/storage"

	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (*mockstorage.MockStorage, service.Catalogs) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, service.NewCatalogs(st)
}

func TestCatalogs_Create(t *testing.T) {
	st, svc := newCatalogService(t)

	var stored domain.Catalog
	st.EXPECT().CreateCatalog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, catalog domain.Catalog) error {
			stored = catalog

			return nil
		},
	)

	created, err := svc.Create(context.Background(), service.CatalogInput{
		Name:        "  Lunch Menu ",
		Description: "weekday specials",
	})
	require.NoError(t, err)
	require.Equal(t, "Lunch Menu", created.Name().String())
	require.Equal(t, "weekday specials", created.Description().String())
	require.False(t, created.ID().IsZero())
	require.Equal(t, created.ID(), stored.ID())
}

func TestCatalogs_Create_InvalidName(t *testing.T) {
	_, svc := newCatalogService(t)

	_, err := svc.Create(context.Background(), service.CatalogInput{Name: "   "})
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestCatalogs_Get_BadID(t *testing.T) {
	_, svc := newCatalogService(t)

	_, err := svc.Get(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestCatalogs_Get(t *testing.T) {
	st, svc := newCatalogService(t)

	name, err := domain.NewCatalogName("Dinner")
	require.NoError(t, err)
	catalog := domain.NewCatalog(name, "")

	st.EXPECT().CatalogByID(gomock.Any(), catalog.ID()).Return(
		domain.CatalogProducts{Catalog: catalog}, nil,
	)

	got, err := svc.Get(context.Background(), catalog.ID().String())
	require.NoError(t, err)
	require.Equal(t, catalog.ID(), got.Catalog.ID())
}

func TestCatalogs_List_DefaultsLimit(t *testing.T) {
	st, svc := newCatalogService(t)

	st.EXPECT().ListCatalogs(gomock.Any(), storage.ListQuery{Page: 1, Limit: storage.DefaultPageLimit}).Return(
		storage.CatalogPage{Page: 1, Limit: storage.DefaultPageLimit}, nil,
	)

	page, err := svc.List(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, uint(storage.DefaultPageLimit), page.Limit)
}

func TestCatalogs_Update_PartialFields(t *testing.T) {
	st, svc := newCatalogService(t)

	name, err := domain.NewCatalogName("Dinner")
	require.NoError(t, err)
	description, err := domain.NewDescription("evening menu")
	require.NoError(t, err)
	catalog := domain.NewCatalog(name, description)

	st.EXPECT().CatalogByID(gomock.Any(), catalog.ID()).Return(
		domain.CatalogProducts{Catalog: catalog}, nil,
	)

	var stored domain.Catalog
	st.EXPECT().UpdateCatalog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated domain.Catalog) error {
			stored = updated

			return nil
		},
	)

	newName := "Supper"
	updated, err := svc.Update(context.Background(), catalog.ID().String(), service.CatalogUpdate{Name: &newName})
	require.NoError(t, err)
	require.Equal(t, "Supper", updated.Name().String())
	require.Equal(t, "evening menu", updated.Description().String(), "omitted fields must stay")
	require.Equal(t, updated.Name(), stored.Name())
}

func TestCatalogs_Update_NotFound(t *testing.T) {
	st, svc := newCatalogService(t)

	id := domain.NewCatalogID()
	st.EXPECT().CatalogByID(gomock.Any(), id).Return(
		domain.CatalogProducts{}, serrors.KindOnly(serrors.ErrNotFound),
	)

	_, err := svc.Update(context.Background(), id.String(), service.CatalogUpdate{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalogs_Delete_PropagatesStorageError(t *testing.T) {
	st, svc := newCatalogService(t)

	id := domain.NewCatalogID()
	boom := errors.New("boom")
	st.EXPECT().DeleteCatalog(gomock.Any(), id).Return(domain.CatalogProducts{}, boom)

	_, err := svc.Delete(context.Background(), id.String())
	require.ErrorIs(t, err, boom)
}

package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"catalog/pkg/storage"
	"catalog/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func insertCatalogRaw(t *testing.T, db postgres.DB, name string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO catalog (id, name, created_at, updated_at)
		 VALUES (gen_random_uuid(), $1, now(), now())`, name)
	require.NoError(t, err)
}

func countCatalogs(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM catalog WHERE name = $1`, name)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// nested Begin is rejected
	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Commit outside a transaction is rejected
	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner := txStorage.(*postgres.PgSQL)

	insertCatalogRaw(t, inner.DB, "committed")
	require.NoError(t, inner.Commit())

	require.Equal(t, 1, countCatalogs(t, db, "committed"))
}

func TestPgSQL_Rollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner := txStorage.(*postgres.PgSQL)

	insertCatalogRaw(t, inner.DB, "discarded")
	require.NoError(t, inner.Rollback())

	require.Equal(t, 0, countCatalogs(t, db, "discarded"))
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		insertCatalogRaw(t, s.(*postgres.PgSQL).DB, "kept")

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, countCatalogs(t, db, "kept"))

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		insertCatalogRaw(t, s.(*postgres.PgSQL).DB, "dropped")

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countCatalogs(t, db, "dropped"))
}

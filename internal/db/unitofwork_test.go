package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/dayline/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func markRest(ctx context.Context, tx db.DBTX, date string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO rest_days (date) VALUES (?)`, date)
	return err
}

func isRest(t *testing.T, database *sql.DB, date string) bool {
	t.Helper()
	var n int
	err := database.QueryRow(`SELECT COUNT(*) FROM rest_days WHERE date = ?`, date).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return markRest(ctx, tx, "2026-03-14")
	})
	require.NoError(t, err)
	assert.True(t, isRest(t, database, "2026-03-14"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	errStop := errors.New("stop")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := markRest(ctx, tx, "2026-03-14"); err != nil {
			return err
		}
		return errStop
	})
	assert.ErrorIs(t, err, errStop)
	assert.False(t, isRest(t, database, "2026-03-14"))
}

func TestWithinTx_RollbackKeepsEarlierWrites(t *testing.T) {
	database, uow := openUoW(t)
	ctx := context.Background()

	require.NoError(t, uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return markRest(ctx, tx, "2026-03-14")
	}))

	// The second insert hits the primary key and takes the first one down with it.
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := markRest(ctx, tx, "2026-03-15"); err != nil {
			return err
		}
		return markRest(ctx, tx, "2026-03-14")
	})
	require.Error(t, err)
	assert.True(t, isRest(t, database, "2026-03-14"))
	assert.False(t, isRest(t, database, "2026-03-15"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = markRest(ctx, tx, "2026-03-14")
			panic("boom")
		})
	})
	assert.False(t, isRest(t, database, "2026-03-14"))
}

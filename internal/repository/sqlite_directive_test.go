package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectiveRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDirectiveRepo(db)
	ctx := context.Background()

	d := testutil.NewTestDirective("【食事1】白米150g", 0)
	require.NoError(t, repo.Upsert(ctx, d))

	got, err := repo.Get(ctx, testutil.TestDate)
	require.NoError(t, err)
	assert.Equal(t, "【食事1】白米150g", got.Message)
	assert.Equal(t, []int{0}, got.Completed.Indices())
	assert.Equal(t, d.UpdatedAt.Unix(), got.UpdatedAt.Unix())
}

func TestDirectiveRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDirectiveRepo(db)

	_, err := repo.Get(context.Background(), "2000-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirectiveRepo_UpsertReplacesMessage(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDirectiveRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestDirective("old", 1, 2)))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestDirective("new")))

	got, err := repo.Get(ctx, testutil.TestDate)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Message)
	assert.Equal(t, 0, got.Completed.Len())
}

func TestDirectiveRepo_UpdateCompleted(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDirectiveRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestDirective("text")))
	require.NoError(t, repo.UpdateCompleted(ctx, testutil.TestDate, domain.NewCompletedSet(3, 1)))

	got, err := repo.Get(ctx, testutil.TestDate)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got.Completed.Indices())
	assert.Equal(t, "text", got.Message, "message untouched")
}

func TestDirectiveRepo_UpdateCompleted_MissingDirective(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDirectiveRepo(db)

	err := repo.UpdateCompleted(context.Background(), "2000-01-01", domain.NewCompletedSet(1))
	assert.ErrorIs(t, err, ErrNotFound)
}

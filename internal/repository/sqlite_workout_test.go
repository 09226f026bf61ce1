package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(db)
	ctx := context.Background()

	w := testutil.NewTestWorkout(1020,
		testutil.WithWorkoutDirectiveIndex(4),
		testutil.WithExercises(
			domain.ExerciseDetail{Name: "スクワット", Sets: 4, Reps: 8, DurationMin: 20},
			domain.ExerciseDetail{Name: "ランジ", Sets: 2, Reps: 10, DurationMin: 10},
		),
		testutil.WithBurn(30, 150),
	)
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.Exercises, got.Exercises)
	assert.Equal(t, 30, got.DurationMin)
	assert.Equal(t, 150, got.CaloriesBurned)
	require.NotNil(t, got.DirectiveIndex)
	assert.Equal(t, 4, *got.DirectiveIndex)
}

func TestWorkoutRepo_ListByDateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(db)
	ctx := context.Background()

	evening := testutil.NewTestWorkout(1100)
	morning := testutil.NewTestWorkout(400, testutil.WithWorkoutDirectiveIndex(1))
	require.NoError(t, repo.Create(ctx, evening))
	require.NoError(t, repo.Create(ctx, morning))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkout(500, testutil.WithWorkoutDate("2026-03-13"))))

	list, err := repo.ListByDate(ctx, testutil.TestDate)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, morning.ID, list[0].ID)
	assert.Empty(t, list[1].Exercises)

	found, err := repo.FindByDirectiveIndex(ctx, testutil.TestDate, 1)
	require.NoError(t, err)
	assert.Equal(t, morning.ID, found.ID)
}

func TestWorkoutRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(db)
	ctx := context.Background()

	w := testutil.NewTestWorkout(1020)
	require.NoError(t, repo.Create(ctx, w))

	w.CaloriesBurned = 300
	require.NoError(t, repo.Update(ctx, w))
	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 300, got.CaloriesBurned)

	require.NoError(t, repo.Delete(ctx, w.ID))
	assert.ErrorIs(t, repo.Delete(ctx, w.ID), ErrNotFound)

	missing := testutil.NewTestWorkout(0)
	assert.ErrorIs(t, repo.Update(ctx, missing), ErrNotFound)
}

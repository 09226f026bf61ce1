package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMealRepo(db)
	ctx := context.Background()

	egg := testutil.NewTestNutrition("鶏卵", 128)
	egg.Vitamins = map[string]float64{"vitaminA": 268.8}
	egg.Estimated = true
	meal := testutil.NewTestMeal(450,
		testutil.WithMealName("指示書: 食事1"),
		testutil.WithMealDirectiveIndex(0),
		testutil.WithMealItems(testutil.NewTestNutrition("白米", 150), egg),
	)
	require.NoError(t, repo.Create(ctx, meal))

	got, err := repo.GetByID(ctx, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "指示書: 食事1", got.Name)
	assert.Equal(t, 450, got.Minute)
	require.NotNil(t, got.DirectiveIndex)
	assert.Equal(t, 0, *got.DirectiveIndex)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "白米", got.Items[0].Name, "items keep their order")
	assert.Equal(t, "鶏卵", got.Items[1].Name)
	assert.True(t, got.Items[1].Estimated)
	assert.InDelta(t, 268.8, got.Items[1].Vitamins["vitaminA"], 0.001)
	assert.Nil(t, got.Items[0].Vitamins)
	assert.InDelta(t, meal.Totals().Calories, got.Totals().Calories, 0.001)
}

func TestMealRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMealRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMealRepo_ListByDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMealRepo(db)
	ctx := context.Background()

	late := testutil.NewTestMeal(900)
	early := testutil.NewTestMeal(420)
	other := testutil.NewTestMeal(600, testutil.WithMealDate("2026-03-15"))
	for _, m := range []*domain.MealRecord{late, early, other} {
		require.NoError(t, repo.Create(ctx, m))
	}

	meals, err := repo.ListByDate(ctx, testutil.TestDate)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, early.ID, meals[0].ID)
	assert.Equal(t, late.ID, meals[1].ID)
	assert.Len(t, meals[0].Items, 1)
	assert.Nil(t, meals[0].DirectiveIndex)
}

func TestMealRepo_FindByDirectiveIndex(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMealRepo(db)
	ctx := context.Background()

	linked := testutil.NewTestMeal(720, testutil.WithMealDirectiveIndex(2))
	require.NoError(t, repo.Create(ctx, linked))
	require.NoError(t, repo.Create(ctx, testutil.NewTestMeal(725)))

	got, err := repo.FindByDirectiveIndex(ctx, testutil.TestDate, 2)
	require.NoError(t, err)
	assert.Equal(t, linked.ID, got.ID)

	_, err = repo.FindByDirectiveIndex(ctx, testutil.TestDate, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMealRepo_UpdateReplacesItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMealRepo(db)
	ctx := context.Background()

	meal := testutil.NewTestMeal(720)
	require.NoError(t, repo.Create(ctx, meal))

	meal.Minute = 750
	meal.Items = []domain.Nutrition{testutil.NewTestNutrition("玄米", 100), testutil.NewTestNutrition("納豆", 45)}
	require.NoError(t, repo.Update(ctx, meal))

	got, err := repo.GetByID(ctx, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, 750, got.Minute)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "玄米", got.Items[0].Name)
}

func TestMealRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMealRepo(db)
	ctx := context.Background()

	meal := testutil.NewTestMeal(720)
	require.NoError(t, repo.Create(ctx, meal))
	require.NoError(t, repo.Delete(ctx, meal.ID))

	_, err := repo.GetByID(ctx, meal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, meal.ID)
	assert.ErrorIs(t, err, ErrNotFound, "second delete reports not found")
}

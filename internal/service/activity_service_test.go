package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/logger"
	"github.com/alexanderramin/dayline/internal/repository"
	"github.com/alexanderramin/dayline/internal/testutil"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMeal_ResolvesFoods(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityService(f.meals, f.workouts, f.uow, f.catalog)
	ctx := context.Background()

	m, err := svc.LogMeal(ctx, MealInput{
		Date:   testutil.TestDate,
		Minute: 720,
		Foods: []domain.FoodEntry{
			{Name: "白米", Amount: 200, Unit: "g"},
			{Name: "謎の食べ物", Amount: 100, Unit: "g"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "白米", m.Name, "name defaults to the first food")
	require.Len(t, m.Items, 2)
	assert.True(t, m.Items[1].Estimated)

	meals, days, err := svc.ListDay(ctx, testutil.TestDate)
	require.NoError(t, err)
	assert.Len(t, meals, 1)
	assert.Empty(t, days)
}

func TestLogMeal_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityService(f.meals, f.workouts, f.uow, f.catalog)
	ctx := context.Background()

	_, err := svc.LogMeal(ctx, MealInput{Date: testutil.TestDate, Minute: 1440, Foods: []domain.FoodEntry{{Name: "白米", Amount: 1, Unit: "g"}}})
	assert.Error(t, err)

	_, err = svc.LogMeal(ctx, MealInput{Date: testutil.TestDate, Minute: 600})
	assert.Error(t, err)
}

func TestLogWorkout(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityService(f.meals, f.workouts, f.uow, f.catalog)
	ctx := context.Background()

	w := &domain.WorkoutRecord{Date: testutil.TestDate, Minute: 1080, Name: "ラン", DurationMin: 20, CaloriesBurned: 180}
	require.NoError(t, svc.LogWorkout(ctx, w))
	assert.NotEmpty(t, w.ID)

	bad := &domain.WorkoutRecord{Date: testutil.TestDate, Minute: 1080, Name: "ラン", DurationMin: -1}
	assert.Error(t, svc.LogWorkout(ctx, bad))
}

func ptr[T any](v T) *T { return &v }

func TestEditMeal_KeepsLinkAndCompletion(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	ctx := context.Background()

	res, err := f.completion(nil).Execute(ctx, testutil.TestDate, 0)
	require.NoError(t, err)

	svc := NewActivityService(f.meals, f.workouts, f.uow, f.catalog)
	m, err := svc.EditMeal(ctx, res.Meal.ID, RecordEdit{
		Minute: ptr(480),
		Name:   ptr(" 朝ごはん "),
		Foods:  []domain.FoodEntry{{Name: "白米", Amount: 200, Unit: "g"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "朝ごはん", m.Name)

	stored, err := f.meals.GetByID(ctx, res.Meal.ID)
	require.NoError(t, err)
	assert.Equal(t, 480, stored.Minute)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 200.0, stored.Items[0].Grams)
	require.NotNil(t, stored.DirectiveIndex)
	assert.Equal(t, 0, *stored.DirectiveIndex)
	assert.Equal(t, []int{0}, f.completed(t))
}

func TestEditWorkout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testutil.NewTestWorkout(1100)
	require.NoError(t, f.workouts.Create(ctx, w))

	svc := NewActivityService(f.meals, f.workouts, f.uow, f.catalog)
	got, err := svc.EditWorkout(ctx, w.ID, RecordEdit{DurationMin: ptr(45), CaloriesBurned: ptr(320)})
	require.NoError(t, err)
	assert.Equal(t, w.Name, got.Name, "unset fields are kept")

	stored, err := f.workouts.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 1100, stored.Minute)
	assert.Equal(t, 45, stored.DurationMin)
	assert.Equal(t, 320, stored.CaloriesBurned)
}

func TestEditRecord_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testutil.NewTestWorkout(1100)
	require.NoError(t, f.workouts.Create(ctx, w))
	svc := NewActivityService(f.meals, f.workouts, f.uow, f.catalog)

	tests := []struct {
		name string
		edit RecordEdit
	}{
		{"minute past the day", RecordEdit{Minute: ptr(1440)}},
		{"blank name", RecordEdit{Name: ptr("  ")}},
		{"negative duration", RecordEdit{DurationMin: ptr(-5)}},
		{"foods on a workout", RecordEdit{Foods: []domain.FoodEntry{{Name: "白米", Amount: 1, Unit: "g"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.EditWorkout(ctx, w.ID, tt.edit)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrPersistence)
		})
	}

	_, err := svc.EditMeal(ctx, "missing", RecordEdit{CaloriesBurned: ptr(10)})
	assert.Error(t, err, "meals take no calories burned")
	_, err = svc.EditMeal(ctx, "missing", RecordEdit{Minute: ptr(600)})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteMeal_UncompletesLinkedItem(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	ctx := context.Background()

	res, err := f.completion(nil).Execute(ctx, testutil.TestDate, 0)
	require.NoError(t, err)

	svc := NewActivityService(f.meals, f.workouts, f.uow, f.catalog)
	require.NoError(t, svc.DeleteMeal(ctx, res.Meal.ID))
	assert.Empty(t, f.completed(t))

	err = svc.DeleteMeal(ctx, res.Meal.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteWorkout_UnlinkedLeavesDirective(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText, 2)
	ctx := context.Background()

	w := testutil.NewTestWorkout(1100)
	require.NoError(t, f.workouts.Create(ctx, w))

	svc := NewActivityService(f.meals, f.workouts, f.uow, f.catalog)
	require.NoError(t, svc.DeleteWorkout(ctx, w.ID))
	assert.Equal(t, []int{2}, f.completed(t))
}

func TestLogUseCaseObserver_WritesEvents(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(logger.New(&buf, log.InfoLevel, false))
	svc := NewActivityService(f.meals, f.workouts, f.uow, f.catalog, obs)

	err := svc.DeleteMeal(context.Background(), "missing")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "delete-meal")
	assert.Contains(t, out, "success=false")
}

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_MealCreatesLinkedRecord(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	ctx := context.Background()

	res, err := f.completion(nil).Execute(ctx, testutil.TestDate, 0)
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.True(t, res.Changed)
	require.NotNil(t, res.Meal)
	assert.Equal(t, 450, res.Meal.Minute, "explicit 07:30 wins over the slot time")

	stored, err := f.meals.FindByDirectiveIndex(ctx, testutil.TestDate, 0)
	require.NoError(t, err)
	assert.Equal(t, res.Meal.ID, stored.ID)
	assert.Equal(t, "指示書: 食事1", stored.Name)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 150.0, stored.Items[0].Grams)

	assert.Equal(t, []int{0}, f.completed(t))
	assert.Equal(t, 1, f.reward.count())
}

func TestExecute_SlotBeforeMidnightWrapsIntoDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.profiles.Upsert(ctx, &domain.ScheduleProfile{
		WakeTime:          "07:00",
		SleepTime:         "23:00",
		TrainingTime:      "01:00",
		MealsPerDay:       3,
		TrainingAfterMeal: 2,
	}))
	f.seedDirective(t, "【食事1】 白米150g\n【食事2】 鮭100g")

	// Slot 2 is training-120, one hour before midnight.
	res, err := f.completion(nil).Execute(ctx, testutil.TestDate, 1)
	require.NoError(t, err)
	require.NotNil(t, res.Meal)
	assert.Equal(t, 1380, res.Meal.Minute)
	assert.Equal(t, []int{1}, f.completed(t))
}

func TestExecute_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	svc := f.completion(nil)
	ctx := context.Background()

	_, err := svc.Execute(ctx, testutil.TestDate, 0)
	require.NoError(t, err)
	res, err := svc.Execute(ctx, testutil.TestDate, 0)
	require.NoError(t, err)
	assert.False(t, res.Changed)

	meals, err := f.meals.ListByDate(ctx, testutil.TestDate)
	require.NoError(t, err)
	assert.Len(t, meals, 1, "second execute must not add a record")
	assert.Equal(t, 1, f.reward.count(), "reward is granted once per transition")
}

func TestExecute_WorkoutUsesPredictedBurn(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	ctx := context.Background()

	res, err := f.completion(nil).Execute(ctx, testutil.TestDate, 1)
	require.NoError(t, err)
	require.NotNil(t, res.Workout)
	assert.Equal(t, 1020, res.Workout.Minute, "exercise is planned at the profile's training time")
	assert.Equal(t, 30, res.Workout.DurationMin)
	assert.Equal(t, 150, res.Workout.CaloriesBurned)
	require.Len(t, res.Workout.Exercises, 1)
	assert.Equal(t, 5, res.Workout.Exercises[0].Sets)
}

func TestExecute_ConditionMarksOnly(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	ctx := context.Background()

	res, err := f.completion(nil).Execute(ctx, testutil.TestDate, 2)
	require.NoError(t, err)
	assert.Nil(t, res.Meal)
	assert.Nil(t, res.Workout)
	assert.Equal(t, []int{2}, f.completed(t))
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture(t)
	svc := f.completion(nil)
	ctx := context.Background()

	_, err := svc.Execute(ctx, testutil.TestDate, 0)
	assert.ErrorIs(t, err, ErrNoDirective)

	f.seedDirective(t, planText)
	_, err = svc.Execute(ctx, testutil.TestDate, 3)
	assert.ErrorIs(t, err, ErrNotExecutable)

	_, err = svc.Execute(ctx, testutil.TestDate, 9)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.Execute(ctx, testutil.TestDate, -1)
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.Empty(t, f.completed(t))
	assert.Zero(t, f.reward.count())
}

func TestExecute_ReusesExistingLinkedRecord(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	ctx := context.Background()

	orphan := testutil.NewTestMeal(460, testutil.WithMealDirectiveIndex(0))
	require.NoError(t, f.meals.Create(ctx, orphan))

	res, err := f.completion(nil).Execute(ctx, testutil.TestDate, 0)
	require.NoError(t, err)
	assert.Equal(t, orphan.ID, res.Meal.ID)

	meals, err := f.meals.ListByDate(ctx, testutil.TestDate)
	require.NoError(t, err)
	assert.Len(t, meals, 1)
}

func TestUndo_DeletesLinkedRecord(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	svc := f.completion(nil)
	ctx := context.Background()

	_, err := svc.Execute(ctx, testutil.TestDate, 1)
	require.NoError(t, err)

	res, err := svc.Undo(ctx, testutil.TestDate, 1)
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.True(t, res.Changed)

	workouts, err := f.workouts.ListByDate(ctx, testutil.TestDate)
	require.NoError(t, err)
	assert.Empty(t, workouts)
	assert.Empty(t, f.completed(t))
}

func TestUndo_MissingRecordStillUncompletes(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText, 0)

	res, err := f.completion(nil).Undo(context.Background(), testutil.TestDate, 0)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Empty(t, f.completed(t))
}

func TestUndo_NotCompletedIsNoop(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	ctx := context.Background()

	keep := testutil.NewTestMeal(450, testutil.WithMealDirectiveIndex(0))
	require.NoError(t, f.meals.Create(ctx, keep))

	res, err := f.completion(nil).Undo(ctx, testutil.TestDate, 0)
	require.NoError(t, err)
	assert.False(t, res.Changed)

	_, err = f.meals.GetByID(ctx, keep.ID)
	assert.NoError(t, err, "undo of an uncompleted item leaves records alone")
}

func TestToggle_RoundTrip(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	svc := f.completion(nil)
	ctx := context.Background()

	res, err := svc.Toggle(ctx, testutil.TestDate, 0)
	require.NoError(t, err)
	assert.True(t, res.Completed)

	res, err = svc.Toggle(ctx, testutil.TestDate, 0)
	require.NoError(t, err)
	assert.False(t, res.Completed)

	meals, err := f.meals.ListByDate(ctx, testutil.TestDate)
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestCompleteAll(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText, 2)

	res, err := f.completion(nil).CompleteAll(context.Background(), testutil.TestDate)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total, "advice and already-completed items are skipped")
	assert.Equal(t, 2, res.Completed)
	assert.Empty(t, res.Failures)
	assert.Equal(t, "2 of 2 items completed", res.Summary())
	assert.Equal(t, []int{0, 1, 2}, f.completed(t))
}

func TestCompleteAll_CancelledContext(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	ctx, cancel := context.WithCancel(context.Background())

	svc := f.completion(nil)
	_, err := svc.Execute(ctx, testutil.TestDate, 2)
	require.NoError(t, err)
	cancel()

	res, err := svc.CompleteAll(ctx, testutil.TestDate)
	if err != nil {
		// The day itself may fail to load once the context is done.
		assert.ErrorIs(t, err, context.Canceled)
		return
	}
	assert.Equal(t, 2, res.Total)
	assert.Zero(t, res.Completed)
	require.Len(t, res.Failures, 2)
	assert.ErrorIs(t, res.Failures[0].Err, context.Canceled)
}

func TestExecute_RollbackOnCompletedUpdateFailure(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, "【食事1】07:30 白米150g")
	ctx := context.Background()

	// ExecContext #1 = meals insert, #2 = meal_items insert, #3 = completed set update
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     f.db,
		FailOn: 3,
		Err:    fmt.Errorf("injected completed update failure"),
	}

	_, err := f.completion(failUoW).Execute(ctx, testutil.TestDate, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Contains(t, err.Error(), "injected completed update failure")

	meals, err := f.meals.ListByDate(ctx, testutil.TestDate)
	require.NoError(t, err)
	assert.Empty(t, meals, "meal insert should be rolled back")
	assert.Empty(t, f.completed(t))
	assert.Zero(t, f.reward.count(), "no reward for a rolled back completion")
}

func TestUndo_RollbackOnDeleteFailure(t *testing.T) {
	f := newFixture(t)
	f.seedDirective(t, planText)
	ctx := context.Background()

	_, err := f.completion(nil).Execute(ctx, testutil.TestDate, 1)
	require.NoError(t, err)

	failUoW := &testutil.FailOnNthExecUoW{
		DB:     f.db,
		FailOn: 1,
		Err:    fmt.Errorf("injected delete failure"),
	}
	_, err = f.completion(failUoW).Undo(ctx, testutil.TestDate, 1)
	require.Error(t, err)

	workouts, err := f.workouts.ListByDate(ctx, testutil.TestDate)
	require.NoError(t, err)
	assert.Len(t, workouts, 1)
	assert.Equal(t, []int{1}, f.completed(t))
}

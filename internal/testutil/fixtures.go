package testutil

import (
	"time"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/google/uuid"
)

// TestDate is the date fixtures are logged against unless overridden.
const TestDate = "2026-03-14"

// Meal options
type MealOption func(*domain.MealRecord)

func WithMealDate(d string) MealOption {
	return func(m *domain.MealRecord) {
		m.Date = d
	}
}

func WithMealName(n string) MealOption {
	return func(m *domain.MealRecord) {
		m.Name = n
	}
}

func WithMealDirectiveIndex(i int) MealOption {
	return func(m *domain.MealRecord) {
		m.DirectiveIndex = &i
	}
}

func WithMealItems(items ...domain.Nutrition) MealOption {
	return func(m *domain.MealRecord) {
		m.Items = items
	}
}

func NewTestMeal(minute int, opts ...MealOption) *domain.MealRecord {
	m := &domain.MealRecord{
		ID:        uuid.New().String(),
		Date:      TestDate,
		Minute:    minute,
		Name:      "テスト食事",
		Items:     []domain.Nutrition{NewTestNutrition("白米", 150)},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// NewTestNutrition returns a resolved item with round macro values per gram
// so totals are easy to assert.
func NewTestNutrition(name string, grams float64) domain.Nutrition {
	return domain.Nutrition{
		Name:    name,
		Amount:  grams,
		Unit:    "g",
		Grams:   grams,
		Protein: grams * 0.1,
		Fat:     grams * 0.01,
		Carbs:   grams * 0.3,
		GI:      70,
		Source:  "exact_name",
	}
}

// Workout options
type WorkoutOption func(*domain.WorkoutRecord)

func WithWorkoutDate(d string) WorkoutOption {
	return func(w *domain.WorkoutRecord) {
		w.Date = d
	}
}

func WithWorkoutDirectiveIndex(i int) WorkoutOption {
	return func(w *domain.WorkoutRecord) {
		w.DirectiveIndex = &i
	}
}

func WithExercises(ex ...domain.ExerciseDetail) WorkoutOption {
	return func(w *domain.WorkoutRecord) {
		w.Exercises = ex
	}
}

func WithBurn(durationMin, kcal int) WorkoutOption {
	return func(w *domain.WorkoutRecord) {
		w.DurationMin = durationMin
		w.CaloriesBurned = kcal
	}
}

func NewTestWorkout(minute int, opts ...WorkoutOption) *domain.WorkoutRecord {
	w := &domain.WorkoutRecord{
		ID:             uuid.New().String(),
		Date:           TestDate,
		Minute:         minute,
		Name:           "テストワークアウト",
		DurationMin:    30,
		CaloriesBurned: 150,
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// NewTestDirective returns a directive for TestDate with the given text.
func NewTestDirective(message string, completed ...int) *domain.Directive {
	return &domain.Directive{
		Date:      TestDate,
		Message:   message,
		Completed: domain.NewCompletedSet(completed...),
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

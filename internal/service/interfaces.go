package service

import (
	"context"

	"github.com/alexanderramin/dayline/internal/catalog"
	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/nutrition"
)

type TimelineService interface {
	// Day builds the Unified Timeline for date as seen at minute now.
	Day(ctx context.Context, date string, now int) (*DayView, error)
}

type CompletionService interface {
	Execute(ctx context.Context, date string, index int) (*CompletionResult, error)
	Undo(ctx context.Context, date string, index int) (*CompletionResult, error)
	Toggle(ctx context.Context, date string, index int) (*CompletionResult, error)
	CompleteAll(ctx context.Context, date string) (*BatchResult, error)
}

type DirectiveService interface {
	Set(ctx context.Context, date, message string) (*DirectiveUpdate, error)
	Get(ctx context.Context, date string) (*domain.Directive, []domain.ActionItem, error)
	Clear(ctx context.Context, date string) error
}

type ActivityService interface {
	LogMeal(ctx context.Context, in MealInput) (*domain.MealRecord, error)
	LogWorkout(ctx context.Context, w *domain.WorkoutRecord) error
	ListDay(ctx context.Context, date string) ([]*domain.MealRecord, []*domain.WorkoutRecord, error)
	EditMeal(ctx context.Context, id string, e RecordEdit) (*domain.MealRecord, error)
	EditWorkout(ctx context.Context, id string, e RecordEdit) (*domain.WorkoutRecord, error)
	DeleteMeal(ctx context.Context, id string) error
	DeleteWorkout(ctx context.Context, id string) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.ScheduleProfile, error)
	Update(ctx context.Context, p *domain.ScheduleProfile) error
	SetRestDay(ctx context.Context, date string, rest bool) error
	IsRestDay(ctx context.Context, date string) (bool, error)
}

type FoodService interface {
	Resolve(name string, amount float64, unit string) domain.Nutrition
	Lookup(query string) (nutrition.Match, bool)
	Search(query string, limit int) []catalog.Food
}

// RecordEdit changes a logged record. Nil fields and empty Foods keep the
// stored value. Foods applies to meals, DurationMin and CaloriesBurned to
// workouts.
type RecordEdit struct {
	Minute         *int
	Name           *string
	Foods          []domain.FoodEntry
	DurationMin    *int
	CaloriesBurned *int
}

// MealInput is a manually logged meal before resolution.
type MealInput struct {
	Date   string
	Minute int
	Name   string
	Foods  []domain.FoodEntry
}

// Package completion decides what executing or undoing a directive item
// changes. It only plans; the service layer applies the plan in a transaction.
package completion

import (
	"errors"

	"github.com/alexanderramin/dayline/internal/domain"
)

// ErrNotExecutable is returned when asked to complete an Advice item.
var ErrNotExecutable = errors.New("item is not executable")

// Step is the mutation one transition requires. Create names the record to
// insert (Meal or Workout holds it); DeleteMealID and DeleteWorkoutID name
// records to remove. Next is the completed set after the transition.
type Step struct {
	Index           int
	Create          domain.RecordKind
	Meal            *domain.MealRecord
	Workout         *domain.WorkoutRecord
	DeleteMealID    string
	DeleteWorkoutID string
	Next            domain.CompletedSet
	Changed         bool
	Reward          bool
}

// Noop reports whether applying the step would change nothing.
func (s Step) Noop() bool {
	return !s.Changed && s.Create == domain.RecordNone && s.DeleteMealID == "" && s.DeleteWorkoutID == ""
}

// Context carries what record builders need beyond the item itself.
type Context struct {
	Date   string
	Minute int
	Foods  FoodResolver
}

// FoodResolver resolves directive food entries to nutrition.
type FoodResolver interface {
	Resolve(name string, amount float64, unit string) domain.Nutrition
}

// PlanExecute plans Uncompleted -> Completed for item. Completing an index
// already in the set is a no-op step.
func PlanExecute(item domain.ActionItem, completed domain.CompletedSet, c Context) (Step, error) {
	if !item.Executable() {
		return Step{}, ErrNotExecutable
	}
	next, changed := completed.With(item.Index)
	step := Step{Index: item.Index, Next: next, Changed: changed}
	if !changed {
		return step, nil
	}
	step.Reward = true

	switch item.Kind {
	case domain.ItemMeal:
		m := BuildMealRecord(item, c)
		step.Create = domain.RecordMeal
		step.Meal = &m
	case domain.ItemExercise:
		w := BuildWorkoutRecord(item, c)
		step.Create = domain.RecordWorkout
		step.Workout = &w
	}
	return step, nil
}

// PlanUndo plans Completed -> Uncompleted. Undoing an index that is not in
// the set is a no-op. Linked records, when present, are scheduled for
// deletion.
func PlanUndo(index int, completed domain.CompletedSet, meal *domain.MealRecord, workout *domain.WorkoutRecord) Step {
	next, changed := completed.Without(index)
	step := Step{Index: index, Next: next, Changed: changed}
	if !changed {
		return step
	}
	if meal != nil {
		step.DeleteMealID = meal.ID
	}
	if workout != nil {
		step.DeleteWorkoutID = workout.ID
	}
	return step
}

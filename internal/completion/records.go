package completion

import (
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
)

const (
	recordPrefix = "指示書: "

	defaultFoodGrams   = 100
	legacySets         = 3
	legacyReps         = 10
	legacyDurationMin  = 10
	legacyCaloriesBurn = 50
)

// BuildMealRecord resolves the item's foods into a meal logged at c.Minute.
// A meal line without food entries resolves its own name instead.
func BuildMealRecord(item domain.ActionItem, c Context) domain.MealRecord {
	foods := item.Foods
	if len(foods) == 0 {
		foods = []domain.FoodEntry{fallbackFood(item)}
	}
	items := make([]domain.Nutrition, 0, len(foods))
	for _, f := range foods {
		items = append(items, c.Foods.Resolve(f.Name, f.Amount, f.Unit))
	}
	idx := item.Index
	return domain.MealRecord{
		Date:           c.Date,
		Minute:         c.Minute,
		Name:           recordPrefix + item.Label,
		Items:          items,
		DirectiveIndex: &idx,
	}
}

func fallbackFood(item domain.ActionItem) domain.FoodEntry {
	f := domain.FoodEntry{Name: item.Name, Amount: defaultFoodGrams, Unit: "g"}
	if f.Name == "" {
		f.Name = item.Label
	}
	if item.Amount != nil && item.Unit != "" {
		f.Amount = *item.Amount
		f.Unit = item.Unit
	}
	return f
}

// BuildWorkoutRecord turns an exercise item into a workout logged at
// c.Minute. Items with exercise lines use them; a bare line is logged as
// 3 sets of 10 reps over 10 minutes burning 50 kcal unless it gives sets or
// reps itself.
func BuildWorkoutRecord(item domain.ActionItem, c Context) domain.WorkoutRecord {
	idx := item.Index
	w := domain.WorkoutRecord{
		Date:           c.Date,
		Minute:         c.Minute,
		Name:           recordPrefix + item.Name,
		DirectiveIndex: &idx,
	}

	if len(item.Exercises) > 0 {
		w.Exercises = append([]domain.ExerciseDetail(nil), item.Exercises...)
		w.DurationMin = item.PredictedMinute
		if w.DurationMin == 0 {
			for _, e := range item.Exercises {
				w.DurationMin += e.DurationMin
			}
		}
		w.CaloriesBurned = item.PredictedKcal
		if w.CaloriesBurned == 0 {
			w.CaloriesBurned = w.DurationMin * burnRate(item.Name+" "+item.Content)
		}
		return w
	}

	sets, reps := legacySets, legacyReps
	if item.Amount != nil {
		switch item.Unit {
		case "セット":
			sets = int(*item.Amount)
		case "回":
			reps = int(*item.Amount)
		}
	}
	w.Exercises = []domain.ExerciseDetail{{Name: item.Name, Sets: sets, Reps: reps, DurationMin: legacyDurationMin}}
	w.DurationMin = legacyDurationMin
	w.CaloriesBurned = legacyCaloriesBurn
	if item.PredictedMinute > 0 {
		w.DurationMin = item.PredictedMinute
	}
	if item.PredictedKcal > 0 {
		w.CaloriesBurned = item.PredictedKcal
	}
	return w
}

var (
	heavyParts = []string{"脚", "下半身", "背中", "プル", "leg", "back", "pull", "lower"}
	lightParts = []string{"腕", "二頭", "三頭", "腹", "体幹", "arm", "bicep", "tricep"}
)

// burnRate is kcal per minute by body part trained.
func burnRate(text string) int {
	t := strings.ToLower(text)
	for _, kw := range heavyParts {
		if strings.Contains(t, kw) {
			return 5
		}
	}
	for _, kw := range lightParts {
		if strings.Contains(t, kw) {
			return 2
		}
	}
	return 3
}

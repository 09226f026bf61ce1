package domain

import "time"

// MealRecord is a logged meal. DirectiveIndex links it to the action item
// that created it, if any.
type MealRecord struct {
	ID             string
	Date           string
	Minute         int
	Name           string
	Items          []Nutrition
	DirectiveIndex *int
	CreatedAt      time.Time
}

// MealTotals is the sum of a meal's items.
type MealTotals struct {
	Calories     float64
	Protein      float64
	Fat          float64
	Carbs        float64
	Fiber        float64
	GlycemicLoad float64
}

func (m MealRecord) Totals() MealTotals {
	var t MealTotals
	for _, it := range m.Items {
		t.Calories += it.Calories()
		t.Protein += it.Protein
		t.Fat += it.Fat
		t.Carbs += it.Carbs
		t.Fiber += it.Fiber
		t.GlycemicLoad += it.GlycemicLoad()
	}
	return t
}

type WorkoutRecord struct {
	ID             string
	Date           string
	Minute         int
	Name           string
	Exercises      []ExerciseDetail
	DurationMin    int
	CaloriesBurned int
	DirectiveIndex *int
	CreatedAt      time.Time
}

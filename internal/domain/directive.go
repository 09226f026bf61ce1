package domain

import "time"

// ActionItem is one parsed line of a directive. Index is the item's position
// among merged lines and is the identity used for completion tracking.
type ActionItem struct {
	Index      int
	Kind       ItemKind
	Source     string
	Label      string
	Tag        string
	SlotNumber int
	Time       *int
	Name       string
	Amount     *float64
	Unit       string
	Content    string
	Foods      []FoodEntry

	Exercises       []ExerciseDetail
	PredictedKcal   int
	PredictedMinute int
}

func (a ActionItem) Executable() bool {
	return a.Kind.Executable()
}

// TrainingRelated reports whether the item's tag marks it as a training meal.
func (a ActionItem) TrainingRelated() bool {
	return containsAny(a.Tag, "トレ", "training")
}

type FoodEntry struct {
	Name   string
	Amount float64
	Unit   string
}

type ExerciseDetail struct {
	Name        string
	Sets        int
	Reps        int
	DurationMin int
}

// Directive is the stored plan text for a date along with its completed set.
type Directive struct {
	Date      string
	Message   string
	Completed CompletedSet
	UpdatedAt time.Time
}

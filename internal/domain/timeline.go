package domain

// TimelineEntry is one row of the Unified Timeline. Entries with a record
// attached carry it in Meal or Workout; planned entries carry ItemIndex.
type TimelineEntry struct {
	ID              string
	Kind            EntryKind
	Minutes         int
	Title           string
	Subtitle        string
	Status          EntryStatus
	TrainingRelated bool
	SlotNumber      int
	ItemIndex       *int
	Meal            *MealRecord
	Workout         *WorkoutRecord
}

func (e TimelineEntry) HasRecord() bool {
	return e.Meal != nil || e.Workout != nil
}

package domain

type ItemKind string

const (
	ItemMeal      ItemKind = "meal"
	ItemExercise  ItemKind = "exercise"
	ItemCondition ItemKind = "condition"
	ItemAdvice    ItemKind = "advice"
)

// Executable reports whether items of this kind may be completed.
func (k ItemKind) Executable() bool {
	return k == ItemMeal || k == ItemExercise || k == ItemCondition
}

type EntryKind string

const (
	EntryMeal      EntryKind = "meal"
	EntryWorkout   EntryKind = "workout"
	EntryCondition EntryKind = "condition"
)

type EntryStatus string

const (
	StatusUpcoming  EntryStatus = "upcoming"
	StatusCurrent   EntryStatus = "current"
	StatusCompleted EntryStatus = "completed"
)

type AnchorKind string

const (
	AnchorWake     AnchorKind = "wake"
	AnchorSleep    AnchorKind = "sleep"
	AnchorTraining AnchorKind = "training"
	AnchorSlot     AnchorKind = "slot"
)

type TimeRefKind string

const (
	RefAbsolute TimeRefKind = "absolute"
	RefRelative TimeRefKind = "relative"
)

type FoodCategory string

const (
	CategoryProtein    FoodCategory = "protein"
	CategoryCarb       FoodCategory = "carb"
	CategoryVegetable  FoodCategory = "vegetable"
	CategorySupplement FoodCategory = "supplement"
)

// RecordKind identifies which logged record a completion creates.
type RecordKind string

const (
	RecordNone    RecordKind = ""
	RecordMeal    RecordKind = "meal"
	RecordWorkout RecordKind = "workout"
)

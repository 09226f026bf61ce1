// Package timeline merges the planned schedule with logged records into the
// day's Unified Timeline.
package timeline

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/dayline/internal/domain"
)

const (
	// Tolerance is how far apart, in minutes, a record and a planned entry
	// may be and still be matched. The bound is inclusive.
	Tolerance = 30

	defaultTrainingMinute = 18 * 60
	defaultSleepMinute    = 23 * 60
)

// Input is everything Build needs for one day. Without a directive the
// planned entries come from Slots alone. Training and Sleep are nil when the
// profile does not provide them; Training is nil on rest days.
type Input struct {
	HasDirective bool
	Slots        []domain.ResolvedSlot
	Items        []domain.ActionItem
	Completed    domain.CompletedSet
	Meals        []domain.MealRecord
	Workouts     []domain.WorkoutRecord
	Now          int
	Training     *int
	Sleep        *int
}

// Build produces the ordered timeline. It is pure.
func Build(in Input) []domain.TimelineEntry {
	var entries []domain.TimelineEntry
	if in.HasDirective {
		entries = plannedFromDirective(in)
	} else {
		entries = plannedFromSlots(in)
	}
	sortEntries(entries)

	for i := range in.Meals {
		m := &in.Meals[i]
		if idx := attachTarget(entries, domain.EntryMeal, m.Minute, m.DirectiveIndex); idx >= 0 {
			attachMeal(&entries[idx], m)
			continue
		}
		entries = append(entries, standaloneMeal(m))
	}
	for i := range in.Workouts {
		w := &in.Workouts[i]
		if idx := attachTarget(entries, domain.EntryWorkout, w.Minute, w.DirectiveIndex); idx >= 0 {
			attachWorkout(&entries[idx], w)
			continue
		}
		if in.Training != nil && within(w.Minute, *in.Training) {
			continue
		}
		entries = append(entries, standaloneWorkout(w))
	}

	entries = dedupe(entries)
	sortEntries(entries)
	markCurrent(entries, in.Now)
	return entries
}

func plannedFromDirective(in Input) []domain.TimelineEntry {
	slotTimes := make(map[int]domain.ResolvedSlot, len(in.Slots))
	for _, s := range in.Slots {
		slotTimes[s.Number] = s
	}

	var out []domain.TimelineEntry
	for _, item := range in.Items {
		idx := item.Index
		e := domain.TimelineEntry{
			Status:    domain.StatusUpcoming,
			ItemIndex: &idx,
			Subtitle:  firstLine(item.Content),
		}
		switch item.Kind {
		case domain.ItemMeal:
			slot, hasSlot := slotTimes[item.SlotNumber]
			e.ID = fmt.Sprintf("directive_meal_%d", item.SlotNumber)
			e.Kind = domain.EntryMeal
			e.Minutes = PlannedMealMinute(item, slot.Minutes, hasSlot)
			e.Title = mealTitle(item)
			e.SlotNumber = item.SlotNumber
			e.TrainingRelated = item.TrainingRelated() || (hasSlot && slot.TrainingAdjacent)
		case domain.ItemExercise:
			e.ID = fmt.Sprintf("directive_workout_%d", idx)
			e.Kind = domain.EntryWorkout
			e.Minutes = orDefault(in.Training, defaultTrainingMinute)
			e.Title = item.Name
			e.TrainingRelated = true
		case domain.ItemCondition:
			e.ID = fmt.Sprintf("directive_sleep_%d", idx)
			e.Kind = domain.EntryCondition
			e.Minutes = orDefault(in.Sleep, defaultSleepMinute)
			e.Title = item.Label
		default:
			continue
		}
		if in.Completed.Has(idx) {
			e.Status = domain.StatusCompleted
		}
		out = append(out, e)
	}
	return out
}

// PlannedMealMinute is the time a meal item is planned for: its explicit
// clock time, else its resolved slot, else 06:00 plus three hours per slot.
func PlannedMealMinute(item domain.ActionItem, slotMinute int, hasSlot bool) int {
	switch {
	case item.Time != nil:
		return *item.Time
	case hasSlot:
		return slotMinute
	default:
		return 6*60 + item.SlotNumber*180
	}
}

// PlannedMinute returns the planned time of any executable item.
func PlannedMinute(item domain.ActionItem, slots []domain.ResolvedSlot, training, sleep *int) int {
	switch item.Kind {
	case domain.ItemExercise:
		return orDefault(training, defaultTrainingMinute)
	case domain.ItemCondition:
		return orDefault(sleep, defaultSleepMinute)
	}
	for _, s := range slots {
		if s.Number == item.SlotNumber {
			return PlannedMealMinute(item, s.Minutes, true)
		}
	}
	return PlannedMealMinute(item, 0, false)
}

func mealTitle(item domain.ActionItem) string {
	if item.Tag != "" {
		return fmt.Sprintf("%s (%s)", item.Label, item.Tag)
	}
	return item.Label
}

func plannedFromSlots(in Input) []domain.TimelineEntry {
	out := make([]domain.TimelineEntry, 0, len(in.Slots)+1)
	for _, s := range in.Slots {
		out = append(out, domain.TimelineEntry{
			ID:              fmt.Sprintf("slot_%d", s.Number),
			Kind:            domain.EntryMeal,
			Minutes:         s.Minutes,
			Title:           s.Label,
			Status:          domain.StatusUpcoming,
			TrainingRelated: s.TrainingAdjacent,
			SlotNumber:      s.Number,
		})
	}
	if in.Training != nil {
		out = append(out, domain.TimelineEntry{
			ID:              "workout_routine",
			Kind:            domain.EntryWorkout,
			Minutes:         *in.Training,
			Title:           "トレ",
			Status:          domain.StatusUpcoming,
			TrainingRelated: true,
		})
	}
	return out
}

// attachTarget finds the planned entry a record belongs to: the entry for
// the record's directive item if there is one, otherwise the first entry of
// the same kind within tolerance. Returns -1 when nothing fits.
func attachTarget(entries []domain.TimelineEntry, kind domain.EntryKind, minute int, directiveIndex *int) int {
	if directiveIndex != nil {
		for i, e := range entries {
			if e.Kind == kind && !e.HasRecord() && e.ItemIndex != nil && *e.ItemIndex == *directiveIndex {
				return i
			}
		}
	}
	for i, e := range entries {
		if e.Kind == kind && !e.HasRecord() && within(e.Minutes, minute) {
			return i
		}
	}
	return -1
}

func attachMeal(e *domain.TimelineEntry, m *domain.MealRecord) {
	e.Meal = m
	e.Status = domain.StatusCompleted
	e.Subtitle = mealSubtitle(m)
}

func attachWorkout(e *domain.TimelineEntry, w *domain.WorkoutRecord) {
	e.Workout = w
	e.Status = domain.StatusCompleted
	e.Subtitle = workoutSubtitle(w)
}

func standaloneMeal(m *domain.MealRecord) domain.TimelineEntry {
	return domain.TimelineEntry{
		ID:       "meal_" + m.ID,
		Kind:     domain.EntryMeal,
		Minutes:  m.Minute,
		Title:    m.Name,
		Subtitle: mealSubtitle(m),
		Status:   domain.StatusCompleted,
		Meal:     m,
	}
}

func standaloneWorkout(w *domain.WorkoutRecord) domain.TimelineEntry {
	return domain.TimelineEntry{
		ID:              "workout_" + w.ID,
		Kind:            domain.EntryWorkout,
		Minutes:         w.Minute,
		Title:           w.Name,
		Subtitle:        workoutSubtitle(w),
		Status:          domain.StatusCompleted,
		TrainingRelated: true,
		Workout:         w,
	}
}

func mealSubtitle(m *domain.MealRecord) string {
	t := m.Totals()
	return fmt.Sprintf("%.0fkcal | P%dg", t.Calories, int(t.Protein))
}

func workoutSubtitle(w *domain.WorkoutRecord) string {
	return fmt.Sprintf("%d分 | %dkcal", w.DurationMin, w.CaloriesBurned)
}

// markCurrent flags the first open entry within tolerance of now. Entries
// must already be sorted.
func markCurrent(entries []domain.TimelineEntry, now int) {
	for i := range entries {
		if entries[i].Status != domain.StatusUpcoming {
			continue
		}
		if within(entries[i].Minutes, now) {
			entries[i].Status = domain.StatusCurrent
			return
		}
	}
}

// dedupe keeps the first entry for each ID. A dropped duplicate's record
// comes back as a standalone entry so it never leaves the timeline.
func dedupe(entries []domain.TimelineEntry) []domain.TimelineEntry {
	seen := make(map[string]bool, len(entries))
	out := make([]domain.TimelineEntry, 0, len(entries))
	var orphans []domain.TimelineEntry
	for _, e := range entries {
		if !seen[e.ID] {
			seen[e.ID] = true
			out = append(out, e)
			continue
		}
		if e.Meal != nil {
			orphans = append(orphans, standaloneMeal(e.Meal))
		}
		if e.Workout != nil {
			orphans = append(orphans, standaloneWorkout(e.Workout))
		}
	}
	return append(out, orphans...)
}

func sortEntries(entries []domain.TimelineEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Minutes < entries[j].Minutes })
}

func within(a, b int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= Tolerance
}

func orDefault(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

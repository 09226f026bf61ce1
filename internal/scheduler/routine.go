package scheduler

import (
	"fmt"

	"github.com/alexanderramin/dayline/internal/domain"
)

// DefaultRoutine builds the slot layout used when no slots are configured.
// Meal 1 is at wake; the pre-training meal is two hours before training, the
// next meal at training, the one after an hour later, and every other meal
// three hours after the previous one. trainingAfterMeal of 0 disables the
// training-relative slots.
func DefaultRoutine(mealsPerDay, trainingAfterMeal int) []domain.SlotDefinition {
	defs := make([]domain.SlotDefinition, 0, mealsPerDay)
	for n := 1; n <= mealsPerDay; n++ {
		var ref domain.TimeRef
		switch {
		case n == 1:
			ref = domain.RelativeTo(domain.WakeAnchor, 0)
		case trainingAfterMeal > 0 && n == trainingAfterMeal:
			ref = domain.RelativeTo(domain.TrainingAnchor, -120)
		case trainingAfterMeal > 0 && n == trainingAfterMeal+1:
			ref = domain.RelativeTo(domain.TrainingAnchor, 0)
		case trainingAfterMeal > 0 && n == trainingAfterMeal+2:
			ref = domain.RelativeTo(domain.SlotAnchor(n-1), 60)
		default:
			ref = domain.RelativeTo(domain.SlotAnchor(n-1), 180)
		}
		defs = append(defs, domain.SlotDefinition{Number: n, Name: "食事{n}", Ref: ref})
	}
	return defs
}

// AnchorsFor derives the day's anchors from a profile. Training is left nil
// on rest days or when the profile has no training time.
func AnchorsFor(p *domain.ScheduleProfile, restDay bool) (Anchors, error) {
	wake, err := ParseClock(p.WakeTime)
	if err != nil {
		return Anchors{}, fmt.Errorf("wake time: %w", err)
	}
	sleep, err := ParseClock(p.SleepTime)
	if err != nil {
		return Anchors{}, fmt.Errorf("sleep time: %w", err)
	}
	a := Anchors{Wake: wake, Sleep: sleep}
	if restDay || p.TrainingTime == "" {
		return a, nil
	}
	training, err := ParseClock(p.TrainingTime)
	if err != nil {
		return Anchors{}, fmt.Errorf("training time: %w", err)
	}
	a.Training = &training
	return a, nil
}

// EffectiveTrainingSlot returns the profile's training-after-meal slot, or 0
// when the day has no training.
func EffectiveTrainingSlot(p *domain.ScheduleProfile, a Anchors) int {
	if a.Training == nil {
		return 0
	}
	return p.TrainingAfterMeal
}

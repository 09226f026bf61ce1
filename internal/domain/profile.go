package domain

import "fmt"

// ScheduleProfile holds the day-defining anchors. TrainingTime is "HH:MM" or
// empty when the user does not train.
type ScheduleProfile struct {
	WakeTime          string
	SleepTime         string
	TrainingTime      string
	MealsPerDay       int
	TrainingAfterMeal int
}

func DefaultScheduleProfile() *ScheduleProfile {
	return &ScheduleProfile{
		WakeTime:          "07:00",
		SleepTime:         "23:00",
		TrainingTime:      "17:00",
		MealsPerDay:       5,
		TrainingAfterMeal: 3,
	}
}

func (p *ScheduleProfile) Validate() error {
	if p.MealsPerDay < 1 || p.MealsPerDay > 10 {
		return fmt.Errorf("meals per day must be between 1 and 10, got %d", p.MealsPerDay)
	}
	if p.TrainingAfterMeal < 0 || p.TrainingAfterMeal > p.MealsPerDay {
		return fmt.Errorf("training after meal must be between 0 and %d, got %d", p.MealsPerDay, p.TrainingAfterMeal)
	}
	return nil
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/service"
)

func FormatProfile(p *domain.ScheduleProfile) string {
	training := p.TrainingTime
	if training == "" {
		training = Dim("none")
	}
	rows := [][]string{
		{"wake", p.WakeTime},
		{"sleep", p.SleepTime},
		{"training", training},
		{"meals per day", fmt.Sprintf("%d", p.MealsPerDay)},
		{"training after meal", fmt.Sprintf("%d", p.TrainingAfterMeal)},
	}
	return RenderBox("Profile", RenderTable([]string{"SETTING", "VALUE"}, rows))
}

// FormatCompletion reports one execute, undo or toggle.
func FormatCompletion(res *service.CompletionResult) string {
	var verb string
	switch {
	case !res.Changed && res.Completed:
		return Dim(fmt.Sprintf("Item %d was already completed.", res.Index)) + "\n"
	case !res.Changed:
		return Dim(fmt.Sprintf("Item %d was not completed.", res.Index)) + "\n"
	case res.Completed:
		verb = StyleGreen.Render("✔ Completed")
	default:
		verb = StyleYellow.Render("↺ Undone")
	}

	line := fmt.Sprintf("%s item %d", verb, res.Index)
	switch {
	case res.Meal != nil:
		line += Dim(fmt.Sprintf(" (meal %s, %s)", res.Meal.Name, FormatKcal(res.Meal.Totals().Calories)))
	case res.Workout != nil:
		line += Dim(fmt.Sprintf(" (workout %s, %dkcal)", res.Workout.Name, res.Workout.CaloriesBurned))
	}
	return line + "\n"
}

// FormatBatch reports a CompleteAll run, one line per failure.
func FormatBatch(res *service.BatchResult) string {
	var b strings.Builder
	style := StyleGreen
	if len(res.Failures) > 0 {
		style = StyleYellow
	}
	b.WriteString(style.Render(res.Summary()) + "\n")
	for _, f := range res.Failures {
		b.WriteString(StyleRed.Render(fmt.Sprintf("  item %d: %v", f.Index, f.Err)) + "\n")
	}
	return b.String()
}

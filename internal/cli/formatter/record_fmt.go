package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
)

// FormatDayLog lists a day's logged meals and workouts.
func FormatDayLog(date string, meals []*domain.MealRecord, workouts []*domain.WorkoutRecord) string {
	var b strings.Builder

	b.WriteString(Header("Meals") + "\n")
	if len(meals) == 0 {
		b.WriteString(Dim("No meals logged.") + "\n")
	} else {
		rows := make([][]string, 0, len(meals))
		for _, m := range meals {
			t := m.Totals()
			rows = append(rows, []string{
				TruncID(m.ID),
				Clock(m.Minute),
				Bold(m.Name) + linkMarker(m.DirectiveIndex),
				FormatKcal(t.Calories),
				FormatGrams(t.Protein),
				FormatGrams(t.Fat),
				FormatGrams(t.Carbs),
			})
		}
		b.WriteString(RenderTableAligned([]string{"ID", "TIME", "MEAL", "KCAL", "P", "F", "C"}, rows, []int{3, 4, 5, 6}))
	}

	b.WriteString("\n" + Header("Workouts") + "\n")
	if len(workouts) == 0 {
		b.WriteString(Dim("No workouts logged.") + "\n")
	} else {
		rows := make([][]string, 0, len(workouts))
		for _, w := range workouts {
			rows = append(rows, []string{
				TruncID(w.ID),
				Clock(w.Minute),
				Bold(w.Name) + linkMarker(w.DirectiveIndex),
				FormatMinutes(w.DurationMin),
				fmt.Sprintf("%dkcal", w.CaloriesBurned),
			})
		}
		b.WriteString(RenderTableAligned([]string{"ID", "TIME", "WORKOUT", "TIME SPENT", "BURNED"}, rows, []int{3, 4}))
	}

	return RenderBox("Log "+date, b.String())
}

// FormatMeal renders one meal with a row per item.
func FormatMeal(m *domain.MealRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n\n", Clock(m.Minute), Bold(m.Name), TruncID(m.ID)))
	b.WriteString(FormatNutritionRows(m.Items))
	return b.String()
}

// FormatNutritionRows tabulates resolved items. Estimated values are
// flagged with "~".
func FormatNutritionRows(items []domain.Nutrition) string {
	rows := make([][]string, 0, len(items)+1)
	var total domain.MealRecord
	for _, n := range items {
		name := n.Name
		if n.Estimated {
			name = StyleYellow.Render("~") + name
		}
		rows = append(rows, []string{
			name,
			FormatGrams(n.Grams),
			FormatKcal(n.Calories()),
			FormatGrams(n.Protein),
			FormatGrams(n.Fat),
			FormatGrams(n.Carbs),
			Dim(n.Source),
		})
	}
	total.Items = items
	t := total.Totals()
	rows = append(rows, []string{
		Bold("Total"), "", Bold(FormatKcal(t.Calories)), FormatGrams(t.Protein), FormatGrams(t.Fat), FormatGrams(t.Carbs), "",
	})
	return RenderTableAligned([]string{"FOOD", "AMOUNT", "KCAL", "P", "F", "C", "SOURCE"}, rows, []int{1, 2, 3, 4, 5})
}

func linkMarker(index *int) string {
	if index == nil {
		return ""
	}
	return Dim(fmt.Sprintf(" [%d]", *index))
}

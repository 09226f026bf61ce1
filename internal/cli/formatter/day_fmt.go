package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/service"
)

const dayProgressBarWidth = 10

// FormatDay renders the Unified Timeline with a completion summary and the
// day's intake totals.
func FormatDay(view *service.DayView) string {
	var b strings.Builder

	headers := []string{"", "TIME", "KIND", "ENTRY", "DETAIL"}
	rows := make([][]string, 0, len(view.Entries))
	for _, e := range view.Entries {
		title := e.Title
		if e.TrainingRelated && e.Kind == domain.EntryMeal {
			title += " " + StyleYellow.Render("★")
		}
		switch e.Status {
		case domain.StatusCompleted:
			title = Dim(title)
		case domain.StatusCurrent:
			title = StyleYellowBold.Render(title)
		}
		rows = append(rows, []string{
			StatusIndicator(e.Status),
			Clock(e.Minutes),
			KindBadge(e.Kind),
			title,
			Dim(Truncate(e.Subtitle, 40)),
		})
	}
	if len(rows) == 0 {
		b.WriteString(Dim("Nothing planned.") + "\n")
	} else {
		b.WriteString(RenderTable(headers, rows))
	}

	b.WriteString("\n")
	if view.HasDirective {
		done, total := executableProgress(view.Items, view.Completed)
		b.WriteString(fmt.Sprintf("%s %s\n", Bold("Plan"), RenderCompletion(done, total, dayProgressBarWidth)))
	} else {
		b.WriteString(Dim("No directive for this date; showing the daily routine.") + "\n")
	}

	t := view.Totals
	b.WriteString(fmt.Sprintf("%s %s  P %s  F %s  C %s  GL %.0f\n",
		Bold("Intake"),
		FormatKcal(t.Calories),
		FormatGrams(t.Protein),
		FormatGrams(t.Fat),
		FormatGrams(t.Carbs),
		t.GlycemicLoad,
	))
	if t.Workouts > 0 {
		b.WriteString(fmt.Sprintf("%s %dkcal (%d)\n", Bold("Burned"), t.CaloriesBurned, t.Workouts))
	}

	if view.RestDay {
		b.WriteString("\n" + StylePurple.Render("Rest day: no training planned.") + "\n")
	}
	if len(view.Unresolved) > 0 {
		nums := make([]string, 0, len(view.Unresolved))
		for _, n := range view.Unresolved {
			nums = append(nums, fmt.Sprintf("%d", n))
		}
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("  WARNING: slot time unresolvable for meal %s", strings.Join(nums, ", "))) + "\n")
	}

	return RenderBox(view.Date, b.String())
}

func executableProgress(items []domain.ActionItem, completed domain.CompletedSet) (done, total int) {
	for _, it := range items {
		if !it.Executable() {
			continue
		}
		total++
		if completed.Has(it.Index) {
			done++
		}
	}
	return done, total
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
)

// FormatItems renders the directive's action items as a tree. Foods and
// exercises hang under their item; advice is dimmed.
func FormatItems(items []domain.ActionItem, completed domain.CompletedSet) string {
	if len(items) == 0 {
		return Dim("No action items.") + "\n"
	}

	var tree []TreeItem
	for _, it := range items {
		tree = append(tree, TreeItem{
			Title:  itemTitle(it),
			Index:  it.Index,
			Done:   completed.Has(it.Index),
			Muted:  !it.Executable(),
			Detail: itemDetail(it),
		})

		children := itemChildren(it)
		for i, c := range children {
			tree = append(tree, TreeItem{
				Title:  c,
				Index:  -1,
				Level:  1,
				IsLast: i == len(children)-1,
				Muted:  true,
			})
		}
	}
	return RenderTree(tree)
}

func itemTitle(it domain.ActionItem) string {
	switch it.Kind {
	case domain.ItemMeal:
		title := it.Label
		if it.Tag != "" {
			title += " (" + it.Tag + ")"
		}
		if it.Time != nil {
			title = Clock(*it.Time) + " " + title
		}
		return title
	case domain.ItemExercise, domain.ItemCondition:
		if it.Name != "" && it.Name != it.Label {
			return it.Label + " " + it.Name
		}
		return it.Label
	default:
		return Truncate(it.Content, 50)
	}
}

func itemDetail(it domain.ActionItem) string {
	switch it.Kind {
	case domain.ItemExercise:
		var parts []string
		if it.PredictedMinute > 0 {
			parts = append(parts, fmt.Sprintf("%d分", it.PredictedMinute))
		}
		if it.PredictedKcal > 0 {
			parts = append(parts, fmt.Sprintf("%dkcal", it.PredictedKcal))
		}
		return strings.Join(parts, " | ")
	case domain.ItemCondition:
		if it.Amount != nil {
			return FormatAmount(*it.Amount, it.Unit)
		}
	}
	return ""
}

func itemChildren(it domain.ActionItem) []string {
	var out []string
	for _, f := range it.Foods {
		out = append(out, f.Name+" "+FormatAmount(f.Amount, f.Unit))
	}
	for _, e := range it.Exercises {
		out = append(out, fmt.Sprintf("%s %d×%d", e.Name, e.Sets, e.Reps))
	}
	return out
}

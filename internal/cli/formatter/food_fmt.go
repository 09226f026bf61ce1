package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/dayline/internal/catalog"
	"github.com/alexanderramin/dayline/internal/domain"
)

// FormatNutrition renders one resolved food in detail, including
// micronutrients when the catalog has them.
func FormatNutrition(n domain.Nutrition) string {
	var b strings.Builder
	b.WriteString(FormatNutritionRows([]domain.Nutrition{n}))

	if n.GI > 0 {
		b.WriteString(fmt.Sprintf("\nGI %d  GL %.1f", n.GI, n.GlycemicLoad()))
	}
	if n.DIAAS > 0 {
		b.WriteString(fmt.Sprintf("  DIAAS %.2f", n.DIAAS))
	}
	if n.GI > 0 || n.DIAAS > 0 {
		b.WriteString("\n")
	}
	if line := nutrientLine(n.Vitamins); line != "" {
		b.WriteString(Dim("vitamins: ") + line + "\n")
	}
	if line := nutrientLine(n.Minerals); line != "" {
		b.WriteString(Dim("minerals: ") + line + "\n")
	}
	if n.Estimated {
		b.WriteString(StyleYellow.Render("Not in catalog; values are estimated.") + "\n")
	}
	return b.String()
}

// FormatFoodSearch lists catalog foods with their per-100g macros.
func FormatFoodSearch(query string, foods []catalog.Food) string {
	if len(foods) == 0 {
		return Dim(fmt.Sprintf("No foods match %q.", query)) + "\n"
	}
	rows := make([][]string, 0, len(foods))
	for _, f := range foods {
		kcal := 4*f.Protein + 9*f.Fat + 4*f.Carbs
		rows = append(rows, []string{
			Bold(f.Name),
			Dim(f.Category),
			FormatKcal(kcal),
			FormatGrams(f.Protein),
			FormatGrams(f.Fat),
			FormatGrams(f.Carbs),
		})
	}
	return RenderTableAligned([]string{"FOOD", "CATEGORY", "KCAL/100G", "P", "F", "C"}, rows, []int{2, 3, 4, 5})
}

func nutrientLine(m map[string]float64) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %.2f", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

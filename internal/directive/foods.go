package directive

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/nutrition"
)

var (
	labelPrefix   = regexp.MustCompile(`^-?\s*【[^】]+】\s*`)
	tagPattern    = regexp.MustCompile(`\[[^\]]+\]\s*`)
	pfcSummary    = regexp.MustCompile(`P\d+g\s*[・/\s]*F\d+g\s*[・/\s]*C\d+g\s*`)
	choiceMarker  = regexp.MustCompile(`[（(][ABC][）)]\s*`)
	clauseSplit   = regexp.MustCompile(`[,、，\n+＋]`)
	foodClause    = regexp.MustCompile(`^(.+?)(\d+(?:\.\d+)?)\s*(kg|g|ml|L|個|枚|杯|本|切れ|丁)`)
	bulletPrefix  = regexp.MustCompile(`^[・\-\*]\s*`)
	macroLetterRe = regexp.MustCompile(`^[PFC]$`)
)

// ExtractFoods pulls "<name><number><unit>" entries out of a meal line.
// Clauses without a quantity are ignored.
func ExtractFoods(line string) []domain.FoodEntry {
	s := labelPrefix.ReplaceAllString(strings.TrimSpace(line), "")
	s = leadingClock.ReplaceAllString(s, "")
	s = tagPattern.ReplaceAllString(s, "")
	s = pfcSummary.ReplaceAllString(s, "")
	s = choiceMarker.ReplaceAllString(s, "")

	var foods []domain.FoodEntry
	for _, clause := range clauseSplit.Split(s, -1) {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		m := foodClause.FindStringSubmatch(clause)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(bulletPrefix.ReplaceAllString(strings.TrimSpace(m[1]), ""))
		if name == "" || macroLetterRe.MatchString(name) {
			continue
		}
		amount, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		foods = append(foods, nutrition.EggPieces(domain.FoodEntry{Name: name, Amount: amount, Unit: m[3]}))
	}
	return foods
}

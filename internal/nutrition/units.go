package nutrition

import (
	"math"
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
	"golang.org/x/text/width"
)

const defaultUnitWeight = 100.0

// ToGrams converts an amount in unit to grams. Mass and volume units convert
// directly; anything else uses the food's standard unit weight.
func ToGrams(name string, amount float64, unit string) float64 {
	switch strings.ToLower(width.Fold.String(unit)) {
	case "g", "ml":
		return amount
	case "kg", "l":
		return amount * 1000
	}
	return amount * StandardUnitWeight(name, unit)
}

// StandardUnitWeight is the gram weight of one piece, slice, cup or fillet of
// the named food.
func StandardUnitWeight(name, unit string) float64 {
	n := foldName(name)

	if isEgg(n) {
		return eggWeight(n)
	}

	switch {
	case strings.Contains(n, "バナナ"):
		return 100
	case strings.Contains(n, "りんご"), strings.Contains(n, "リンゴ"):
		return 250
	case strings.Contains(n, "みかん"):
		return 80
	case strings.Contains(n, "オレンジ"):
		return 150
	case strings.Contains(n, "キウイ"):
		return 80
	case strings.Contains(n, "もち"), strings.Contains(n, "餅"):
		return 50
	case strings.Contains(n, "パン") && unit == "枚":
		return 60
	case strings.Contains(n, "おにぎり"):
		return 100
	case strings.Contains(n, "豆腐") && unit == "丁":
		return 300
	case strings.Contains(n, "プロテイン") && unit == "杯":
		return 30
	case unit == "杯":
		return 200
	case unit == "切れ":
		return 80
	}
	return defaultUnitWeight
}

// EggPieces rewrites a gram quantity of egg as a whole piece count using the
// size-specific egg weight. Entries that are not eggs in grams, or that round
// to less than one piece, are returned unchanged.
func EggPieces(e domain.FoodEntry) domain.FoodEntry {
	if e.Unit != "g" {
		return e
	}
	n := foldName(e.Name)
	if !isEgg(n) {
		return e
	}
	count := math.Round(e.Amount / eggWeight(n))
	if count < 1 {
		return e
	}
	return domain.FoodEntry{Name: e.Name, Amount: count, Unit: "個"}
}

func foldName(name string) string {
	return strings.ToLower(width.Fold.String(name))
}

func isEgg(n string) bool {
	return strings.Contains(n, "卵") || strings.Contains(n, "たまご") || strings.Contains(n, "egg")
}

// eggWeight picks the egg size from an LL/L/M/S marker in an already folded name.
func eggWeight(n string) float64 {
	stripped := strings.ReplaceAll(n, "egg", "")
	switch {
	case strings.Contains(stripped, "ll"):
		return 70
	case strings.Contains(stripped, "l"):
		return 64
	case strings.Contains(stripped, "m"):
		return 58
	case strings.Contains(stripped, "s"):
		return 52
	}
	return 64
}

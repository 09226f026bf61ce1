package nutrition

import (
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
)

// estimateProfile holds per-gram macro estimates for a food category.
type estimateProfile struct {
	Category string
	Keywords []string
	Protein  float64
	Carbs    float64
	Fat      float64
	DIAAS    float64
}

var estimateProfiles = []estimateProfile{
	{
		Category: "carb",
		Keywords: []string{"米", "ごはん", "ご飯", "麺", "パン", "餅", "もち", "うどん", "そば", "rice", "bread", "noodle", "pasta"},
		Protein:  0.025,
		Carbs:    0.35,
		Fat:      0.005,
		DIAAS:    0.5,
	},
	{
		Category: "protein",
		Keywords: []string{"肉", "チキン", "魚", "サーモン", "鮭", "サバ", "chicken", "beef", "pork", "fish", "salmon"},
		Protein:  0.20,
		Carbs:    0,
		Fat:      0.05,
		DIAAS:    1.0,
	},
	{
		Category: "egg",
		Keywords: []string{"卵", "たまご", "egg"},
		Protein:  0.12,
		Carbs:    0.005,
		Fat:      0.10,
		DIAAS:    1.1,
	},
	{
		Category: "vegetable",
		Keywords: []string{"ブロッコリー", "野菜", "サラダ", "broccoli", "salad", "vegetable"},
		Protein:  0.03,
		Carbs:    0.05,
		Fat:      0.005,
		DIAAS:    0.8,
	},
	{
		Category: "supplement",
		Keywords: []string{"プロテイン", "ホエイ", "protein", "whey"},
		Protein:  0.75,
		Carbs:    0.05,
		Fat:      0.03,
		DIAAS:    1.0,
	},
}

var defaultEstimate = estimateProfile{Category: "default", Protein: 0.08, Carbs: 0.15, Fat: 0.05, DIAAS: 0.7}

func estimateFor(name string) estimateProfile {
	n := foldName(name)
	for _, p := range estimateProfiles {
		for _, kw := range p.Keywords {
			if strings.Contains(n, kw) {
				return p
			}
		}
	}
	return defaultEstimate
}

// Estimate produces category-based nutrition for a food missing from the
// catalog. Calories follow from the estimated macros.
func Estimate(name string, amount float64, unit string) domain.Nutrition {
	grams := ToGrams(name, amount, unit)
	p := estimateFor(name)
	return domain.Nutrition{
		Name:      name,
		Amount:    amount,
		Unit:      unit,
		Grams:     grams,
		Protein:   grams * p.Protein,
		Fat:       grams * p.Fat,
		Carbs:     grams * p.Carbs,
		DIAAS:     p.DIAAS,
		Estimated: true,
		Source:    "estimate:" + p.Category,
	}
}

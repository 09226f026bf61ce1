package domain

import "strings"

// Nutrition is a resolved food entry scaled to the grams actually eaten.
// Calories are derived from macros and never stored.
type Nutrition struct {
	Name   string
	Amount float64
	Unit   string
	Grams  float64

	Protein float64
	Fat     float64
	Carbs   float64
	Fiber   float64
	Sugar   float64
	GI      int
	DIAAS   float64

	Vitamins map[string]float64
	Minerals map[string]float64

	Estimated bool
	Source    string
}

func (n Nutrition) Calories() float64 {
	return 4*n.Protein + 9*n.Fat + 4*n.Carbs
}

// GlycemicLoad is GI times carbs over 100. Zero when GI is unknown.
func (n Nutrition) GlycemicLoad() float64 {
	if n.GI <= 0 || n.Carbs <= 0 {
		return 0
	}
	return float64(n.GI) * n.Carbs / 100
}

func containsAny(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

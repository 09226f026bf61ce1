package nutrition

import (
	"testing"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestToGrams(t *testing.T) {
	tests := []struct {
		name   string
		food   string
		amount float64
		unit   string
		want   float64
	}{
		{"grams", "白米", 150, "g", 150},
		{"kilograms", "白米", 0.5, "kg", 500},
		{"millilitres", "牛乳", 200, "ml", 200},
		{"litres", "牛乳", 1, "L", 1000},
		{"full-width unit", "牛乳", 200, "ｍｌ", 200},
		{"egg LL", "卵LL", 1, "個", 70},
		{"egg M", "卵(M)", 2, "個", 116},
		{"egg default", "ゆで卵", 1, "個", 64},
		{"banana", "バナナ", 2, "本", 200},
		{"mochi", "切り餅", 2, "個", 100},
		{"bread slice", "食パン", 1, "枚", 60},
		{"tofu block", "木綿豆腐", 1, "丁", 300},
		{"protein scoop", "プロテイン", 1, "杯", 30},
		{"generic cup", "味噌汁", 1, "杯", 200},
		{"fillet", "鮭", 1, "切れ", 80},
		{"fallback", "何か", 3, "個", 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ToGrams(tt.food, tt.amount, tt.unit), 0.001)
		})
	}
}

func TestEggPieces(t *testing.T) {
	assert.Equal(t, domain.FoodEntry{Name: "全卵", Amount: 3, Unit: "個"},
		EggPieces(domain.FoodEntry{Name: "全卵", Amount: 192, Unit: "g"}))

	small := domain.FoodEntry{Name: "卵", Amount: 20, Unit: "g"}
	assert.Equal(t, small, EggPieces(small), "less than half an egg stays in grams")

	rice := domain.FoodEntry{Name: "白米", Amount: 150, Unit: "g"}
	assert.Equal(t, rice, EggPieces(rice))
}

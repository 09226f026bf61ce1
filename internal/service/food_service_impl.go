package service

import (
	"github.com/alexanderramin/dayline/internal/catalog"
	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/nutrition"
)

type foodService struct {
	catalog *catalog.Catalog
}

// NewFoodService exposes catalog lookups. Each call gets a fresh resolver,
// so results never outlive a catalog reload.
func NewFoodService(cat *catalog.Catalog) FoodService {
	return &foodService{catalog: cat}
}

func (s *foodService) Resolve(name string, amount float64, unit string) domain.Nutrition {
	return nutrition.NewResolver(s.catalog).Resolve(name, amount, unit)
}

func (s *foodService) Lookup(query string) (nutrition.Match, bool) {
	return nutrition.NewResolver(s.catalog).Lookup(query)
}

// Search ranks general-table foods by fuzzy match on name.
func (s *foodService) Search(query string, limit int) []catalog.Food {
	return s.catalog.General.Fuzzy(query, limit)
}

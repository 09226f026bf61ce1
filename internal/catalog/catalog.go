package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/dayline/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Food is a general-table entry. Nutrient values are per 100 g.
type Food struct {
	Name     string             `yaml:"name"`
	Category string             `yaml:"category"`
	Protein  float64            `yaml:"protein"`
	Fat      float64            `yaml:"fat"`
	Carbs    float64            `yaml:"carbs"`
	Fiber    float64            `yaml:"fiber"`
	Sugar    float64            `yaml:"sugar"`
	GI       int                `yaml:"gi"`
	DIAAS    float64            `yaml:"diaas"`
	Vitamins map[string]float64 `yaml:"vitamins"`
	Minerals map[string]float64 `yaml:"minerals"`
}

// BodymakingFood is a curated entry. SearchKey names its general-table record.
type BodymakingFood struct {
	ID            string              `yaml:"id"`
	DisplayName   string              `yaml:"display_name"`
	SearchKey     string              `yaml:"search_key"`
	Category      domain.FoodCategory `yaml:"category"`
	DefaultAmount int                 `yaml:"default_amount"`
	Tags          []string            `yaml:"tags"`
}

type seedFile struct {
	Bodymaking []BodymakingFood `yaml:"bodymaking"`
	General    []Food           `yaml:"general"`
}

// Catalog holds the two ranked lookup tables.
type Catalog struct {
	Bodymaking *BodymakingTable
	General    *Table
}

func New(bodymaking []BodymakingFood, general []Food) *Catalog {
	return &Catalog{
		Bodymaking: newBodymakingTable(bodymaking),
		General:    newTable(general),
	}
}

// Default returns the catalog built from the embedded seed.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(seedYAML))
}

// LoadFile reads a catalog from a YAML file with the same layout as the seed.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) (*Catalog, error) {
	var seed seedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	for i, f := range seed.General {
		if f.Name == "" {
			return nil, fmt.Errorf("general food %d: missing name", i)
		}
	}
	for i, b := range seed.Bodymaking {
		if b.ID == "" || b.SearchKey == "" {
			return nil, fmt.Errorf("bodymaking food %d: id and search_key are required", i)
		}
	}
	return New(seed.Bodymaking, seed.General), nil
}

// ToFood maps a curated entry to its general-table record.
func (c *Catalog) ToFood(b BodymakingFood) (Food, bool) {
	return c.General.ByName(b.SearchKey)
}

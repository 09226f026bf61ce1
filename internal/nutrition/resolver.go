package nutrition

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alexanderramin/dayline/internal/catalog"
	"github.com/alexanderramin/dayline/internal/domain"
)

// Stage identifies which step of the lookup cascade produced a match.
type Stage int

const (
	StageNone Stage = iota
	StageBodymakingID
	StageBodymakingName
	StageExactName
	StageNormalizedName
	StageSubstring
	StageBaseName
	StagePrefix
)

var stageNames = map[Stage]string{
	StageNone:           "none",
	StageBodymakingID:   "bodymaking_id",
	StageBodymakingName: "bodymaking_name",
	StageExactName:      "exact_name",
	StageNormalizedName: "normalized_name",
	StageSubstring:      "substring",
	StageBaseName:       "base_name",
	StagePrefix:         "prefix",
}

func (s Stage) String() string {
	return stageNames[s]
}

// Match is a catalog hit and the stage that found it.
type Match struct {
	Food  catalog.Food
	Stage Stage
}

type cached struct {
	match Match
	ok    bool
}

// Resolver turns free-text food entries into nutrition. Lookups are cached
// for the resolver's lifetime, so create one per reconciliation or completion
// pass rather than sharing one across the process.
type Resolver struct {
	catalog *catalog.Catalog

	mu    sync.Mutex
	cache map[string]cached
}

func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c, cache: make(map[string]cached)}
}

// Resolve returns nutrition scaled to the entry's grams. It never fails: a
// name missing from the catalog falls back to a category estimate.
func (r *Resolver) Resolve(name string, amount float64, unit string) domain.Nutrition {
	cleaned := CleanFoodName(name)
	m, ok := r.Lookup(cleaned)
	if !ok && cleaned != name {
		m, ok = r.Lookup(name)
	}
	if !ok {
		return Estimate(name, amount, unit)
	}
	return scale(m, name, amount, unit)
}

func (r *Resolver) ResolveEntries(entries []domain.FoodEntry) []domain.Nutrition {
	out := make([]domain.Nutrition, 0, len(entries))
	for _, e := range entries {
		out = append(out, r.Resolve(e.Name, e.Amount, e.Unit))
	}
	return out
}

// Lookup runs the cascade for query, first hit wins.
func (r *Resolver) Lookup(query string) (Match, bool) {
	r.mu.Lock()
	if c, ok := r.cache[query]; ok {
		r.mu.Unlock()
		return c.match, c.ok
	}
	r.mu.Unlock()

	m, ok := r.cascade(query)

	r.mu.Lock()
	r.cache[query] = cached{match: m, ok: ok}
	r.mu.Unlock()
	return m, ok
}

var bracketChars = regexp.MustCompile(`[（()）]|\s+`)

func (r *Resolver) cascade(query string) (Match, bool) {
	if strings.TrimSpace(query) == "" {
		return Match{}, false
	}
	c := r.catalog
	normalized := catalog.Normalize(query)

	if b, ok := c.Bodymaking.ByID(query); ok {
		if f, ok := c.ToFood(b); ok {
			return Match{Food: f, Stage: StageBodymakingID}, true
		}
	}

	if normalized != "" {
		for _, b := range c.Bodymaking.All() {
			if !containsEither(catalog.Normalize(b.DisplayName), normalized) {
				continue
			}
			if f, ok := c.ToFood(b); ok {
				return Match{Food: f, Stage: StageBodymakingName}, true
			}
			break
		}
	}

	if f, ok := c.General.ByName(query); ok {
		return Match{Food: f, Stage: StageExactName}, true
	}

	if normalized != "" {
		for _, f := range c.General.All() {
			if containsEither(catalog.Normalize(f.Name), normalized) {
				return Match{Food: f, Stage: StageNormalizedName}, true
			}
		}
	}

	if hits := c.General.Search(query); len(hits) > 0 {
		return Match{Food: hits[0], Stage: StageSubstring}, true
	}

	base := strings.TrimSpace(bracketChars.ReplaceAllString(query, ""))
	if base != "" && base != normalized {
		if hits := c.General.Search(base); len(hits) > 0 {
			return Match{Food: hits[0], Stage: StageBaseName}, true
		}
	}

	if utf8.RuneCountInString(normalized) >= 2 {
		short := prefix(normalized, 3)
		for _, b := range c.Bodymaking.All() {
			if !strings.Contains(catalog.Normalize(b.DisplayName), short) {
				continue
			}
			if f, ok := c.ToFood(b); ok {
				return Match{Food: f, Stage: StagePrefix}, true
			}
			break
		}

		var best *catalog.Food
		for i, f := range c.General.All() {
			if !strings.Contains(catalog.Normalize(f.Name), short) {
				continue
			}
			if best == nil || utf8.RuneCountInString(f.Name) < utf8.RuneCountInString(best.Name) {
				best = &c.General.All()[i]
			}
		}
		if best != nil {
			return Match{Food: *best, Stage: StagePrefix}, true
		}
	}

	return Match{}, false
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

var (
	bracketTag   = regexp.MustCompile(`\[.+?\]\s*`)
	labelTag     = regexp.MustCompile(`【.+?】\s*`)
	instructions = strings.NewReplacer("を", "", "追加", "", "食べる", "", "摂る", "")
)

// CleanFoodName strips tags and instruction verbs from a directive food name.
func CleanFoodName(name string) string {
	name = bracketTag.ReplaceAllString(name, "")
	name = labelTag.ReplaceAllString(name, "")
	return strings.TrimSpace(instructions.Replace(name))
}

func scale(m Match, name string, amount float64, unit string) domain.Nutrition {
	grams := ToGrams(name, amount, unit)
	ratio := grams / 100
	f := m.Food
	return domain.Nutrition{
		Name:     f.Name,
		Amount:   amount,
		Unit:     unit,
		Grams:    grams,
		Protein:  f.Protein * ratio,
		Fat:      f.Fat * ratio,
		Carbs:    f.Carbs * ratio,
		Fiber:    f.Fiber * ratio,
		Sugar:    f.Sugar * ratio,
		GI:       f.GI,
		DIAAS:    f.DIAAS,
		Vitamins: scaleMap(f.Vitamins, ratio),
		Minerals: scaleMap(f.Minerals, ratio),
		Source:   m.Stage.String(),
	}
}

func scaleMap(in map[string]float64, ratio float64) map[string]float64 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v * ratio
	}
	return out
}

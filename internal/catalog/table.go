package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Table is the general food table, kept in seed order.
type Table struct {
	foods  []Food
	byName map[string]int
}

func newTable(foods []Food) *Table {
	t := &Table{foods: foods, byName: make(map[string]int, len(foods))}
	for i, f := range foods {
		if _, dup := t.byName[f.Name]; !dup {
			t.byName[f.Name] = i
		}
	}
	return t
}

func (t *Table) ByName(name string) (Food, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Food{}, false
	}
	return t.foods[i], true
}

func (t *Table) All() []Food {
	return t.foods
}

func (t *Table) Len() int {
	return len(t.foods)
}

// Search returns entries whose name contains query, ignoring case, in table order.
func (t *Table) Search(query string) []Food {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Food
	for _, f := range t.foods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	return out
}

type nameSource []Food

func (s nameSource) String(i int) string { return s[i].Name }
func (s nameSource) Len() int            { return len(s) }

// Fuzzy ranks entries by fuzzy match against query, best first.
func (t *Table) Fuzzy(query string, limit int) []Food {
	matches := fuzzy.FindFrom(query, nameSource(t.foods))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Food, 0, len(matches))
	for _, m := range matches {
		out = append(out, t.foods[m.Index])
	}
	return out
}

// BodymakingTable is the curated table, kept in seed order.
type BodymakingTable struct {
	foods []BodymakingFood
	byID  map[string]int
}

func newBodymakingTable(foods []BodymakingFood) *BodymakingTable {
	t := &BodymakingTable{foods: foods, byID: make(map[string]int, len(foods))}
	for i, f := range foods {
		if _, dup := t.byID[f.ID]; !dup {
			t.byID[f.ID] = i
		}
	}
	return t
}

func (t *BodymakingTable) ByID(id string) (BodymakingFood, bool) {
	i, ok := t.byID[id]
	if !ok {
		return BodymakingFood{}, false
	}
	return t.foods[i], true
}

func (t *BodymakingTable) All() []BodymakingFood {
	return t.foods
}

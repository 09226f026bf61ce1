package scheduler

import (
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
)

// Anchors are the day's fixed reference times. Training is nil on rest days.
type Anchors struct {
	Wake     int
	Sleep    int
	Training *int
}

// Resolution maps slot numbers to absolute minutes. Slots whose chain never
// reaches an anchor are listed in Unresolved and absent from Times.
type Resolution struct {
	Times      map[int]int
	Unresolved []int
}

// ResolveSlots computes absolute times for every slot definition.
//
// Absolute and anchor-relative slots resolve directly. Slot-relative ones are
// resolved in repeated passes as their targets become known, bounded to one
// pass per definition so cycles terminate.
func ResolveSlots(defs []domain.SlotDefinition, anchors Anchors) Resolution {
	res := Resolution{Times: make(map[int]int, len(defs))}
	seen := make(map[int]bool, len(defs))

	var pending []domain.SlotDefinition
	for _, d := range defs {
		if seen[d.Number] {
			res.Unresolved = append(res.Unresolved, d.Number)
			continue
		}
		seen[d.Number] = true

		if d.Ref.DependsOnSlot() {
			if d.Ref.Anchor.Slot == d.Number {
				res.Unresolved = append(res.Unresolved, d.Number)
				continue
			}
			pending = append(pending, d)
			continue
		}
		if t, ok := resolveDirect(d.Ref, anchors); ok {
			res.Times[d.Number] = t
		} else {
			res.Unresolved = append(res.Unresolved, d.Number)
		}
	}

	for pass := 0; pass < len(defs) && len(pending) > 0; pass++ {
		var next []domain.SlotDefinition
		for _, d := range pending {
			if base, ok := res.Times[d.Ref.Anchor.Slot]; ok {
				res.Times[d.Number] = base + d.Ref.Offset
				continue
			}
			next = append(next, d)
		}
		if len(next) == len(pending) {
			break
		}
		pending = next
	}

	for _, d := range pending {
		if _, ok := res.Times[d.Number]; !ok {
			res.Unresolved = append(res.Unresolved, d.Number)
		}
	}
	sort.Ints(res.Unresolved)
	return res
}

func resolveDirect(r domain.TimeRef, a Anchors) (int, bool) {
	if r.Kind == domain.RefAbsolute {
		return r.Minutes, true
	}
	switch r.Anchor.Kind {
	case domain.AnchorWake:
		return a.Wake + r.Offset, true
	case domain.AnchorSleep:
		return a.Sleep + r.Offset, true
	case domain.AnchorTraining:
		if a.Training == nil {
			return 0, false
		}
		return *a.Training + r.Offset, true
	}
	return 0, false
}

// ResolveDay resolves defs and decorates the results with labels and the
// training-adjacency flag. trainingAfterMeal of 0 means no training slot.
// The result is ordered by slot number.
func ResolveDay(defs []domain.SlotDefinition, anchors Anchors, trainingAfterMeal int) ([]domain.ResolvedSlot, []int) {
	res := ResolveSlots(defs, anchors)

	out := make([]domain.ResolvedSlot, 0, len(res.Times))
	added := make(map[int]bool, len(res.Times))
	for _, d := range defs {
		t, ok := res.Times[d.Number]
		if !ok || added[d.Number] {
			continue
		}
		added[d.Number] = true
		out = append(out, domain.ResolvedSlot{
			Number:           d.Number,
			Minutes:          t,
			Label:            SlotLabel(d),
			TrainingAdjacent: IsTrainingAdjacent(d.Number, trainingAfterMeal, anchors.Training != nil),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, res.Unresolved
}

// SlotLabel expands the "{n}" placeholder in the slot name.
func SlotLabel(d domain.SlotDefinition) string {
	name := d.Name
	if name == "" {
		name = "食事{n}"
	}
	return strings.ReplaceAll(name, "{n}", strconv.Itoa(d.Number))
}

// IsTrainingAdjacent reports whether slot n is the meal before or after training.
func IsTrainingAdjacent(n, trainingAfterMeal int, trains bool) bool {
	if !trains || trainingAfterMeal <= 0 {
		return false
	}
	return n == trainingAfterMeal || n == trainingAfterMeal+1
}

package program

import (
	"slices"
	"sort"
)

// exerciseIndex holds pre-filtered views over the catalog for one generation
// request: the warmup pool, the cardio pool, and a pattern-keyed map of
// everything else. Each pattern list is sorted hardest-first within the user's
// allowed difficulty band so higher-tier users see harder variants first.
type exerciseIndex struct {
	warmups   []Exercise
	cardio    []Exercise
	byPattern map[MovementPattern][]Exercise
}

// equipmentSatisfied reports whether any of the exercise's equipment options is
// owned by the user. Bodyweight is always available.
func equipmentSatisfied(ex Exercise, owned []string) bool {
	for _, option := range ex.Equipment {
		if option == EquipmentBodyweight || slices.Contains(owned, option) {
			return true
		}
	}
	return false
}

// resolveEquipment picks the equipment the user will actually use: the first
// owned option in the exercise's own preference order, else bodyweight.
func resolveEquipment(ex Exercise, owned []string) string {
	for _, option := range ex.Equipment {
		if slices.Contains(owned, option) {
			return option
		}
	}
	return EquipmentBodyweight
}

// buildIndex filters and groups the catalog. Pure; the catalog slice is not
// mutated.
func buildIndex(catalog []Exercise, profile Profile, ability abilityModel) exerciseIndex {
	idx := exerciseIndex{
		warmups:   nil,
		cardio:    nil,
		byPattern: make(map[MovementPattern][]Exercise),
	}

	for _, ex := range catalog {
		if !equipmentSatisfied(ex, profile.Equipment) {
			continue
		}
		if !ability.allows(ex.Pattern, ex.Difficulty) {
			continue
		}
		switch {
		case ex.Category == CategoryWarmup:
			idx.warmups = append(idx.warmups, ex)
		case ex.Pattern == PatternCardio:
			idx.cardio = append(idx.cardio, ex)
		default:
			// Each exercise lands in exactly one entry keyed by its own pattern.
			idx.byPattern[ex.Pattern] = append(idx.byPattern[ex.Pattern], ex)
		}
	}

	// Hardest-first within the allowed band, name as a deterministic tiebreak.
	for pattern := range idx.byPattern {
		pool := idx.byPattern[pattern]
		sort.SliceStable(pool, func(i, j int) bool {
			ri, rj := levelRank(pool[i].Difficulty), levelRank(pool[j].Difficulty)
			if ri != rj {
				return ri > rj
			}
			return pool[i].Name < pool[j].Name
		})
	}
	sortByName(idx.warmups)
	sortByName(idx.cardio)

	return idx
}

func sortByName(pool []Exercise) {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Name < pool[j].Name
	})
}

// findByName searches the whole index for an exercise by exact name.
func (idx exerciseIndex) findByName(name string) (Exercise, bool) {
	for _, pool := range idx.byPattern {
		for _, ex := range pool {
			if ex.Name == name {
				return ex, true
			}
		}
	}
	for _, ex := range idx.warmups {
		if ex.Name == name {
			return ex, true
		}
	}
	for _, ex := range idx.cardio {
		if ex.Name == name {
			return ex, true
		}
	}
	return Exercise{}, false
}

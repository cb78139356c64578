package program

import (
	"sort"
	"time"
)

// categoryOrder ranks categories by neural demand so the most demanding work
// lands right after the warmup. Cardio always finishes the session.
func categoryOrder(ex GeneratedExercise) int {
	// Warmups first even when the drill itself is a cardio movement.
	if ex.category == CategoryWarmup {
		return 0
	}
	if ex.pattern == PatternCardio {
		return 6
	}
	switch ex.category {
	case CategoryPower:
		return 1
	case CategoryCompound:
		return 2
	case CategoryIsolation:
		return 3
	case CategoryCore:
		return 4
	default:
		return 5
	}
}

// assembleWorkout orders the day's picks, pairs warmups into supersets, pairs
// antagonist strength work when the session is short, and names the day.
func assembleWorkout(plan dayPlan, picked []GeneratedExercise, sessionMinutes int, date *time.Time) GeneratedWorkout {
	exercises := make([]GeneratedExercise, len(picked))
	copy(exercises, picked)
	sort.SliceStable(exercises, func(i, j int) bool {
		return categoryOrder(exercises[i]) < categoryOrder(exercises[j])
	})

	nextGroup := pairWarmups(exercises, 1)
	if sessionMinutes <= supersetSessionCeiling {
		pairAntagonists(exercises, nextGroup)
	}

	return GeneratedWorkout{
		Day:       plan.day,
		Name:      workoutName(exercises),
		Type:      WorkoutStrength,
		Date:      date,
		Exercises: exercises,
	}
}

// pairWarmups groups warmups two by two so they flow without rest. Selection
// borrows an extra warmup for odd counts, so an odd trailing warmup only
// appears when the pool was spent; it stands alone. Returns the next free
// superset group number.
func pairWarmups(exercises []GeneratedExercise, group int) int {
	var warmupIdx []int
	for i := range exercises {
		if exercises[i].category == CategoryWarmup {
			warmupIdx = append(warmupIdx, i)
		}
	}

	for start := 0; start+1 < len(warmupIdx); start += 2 {
		g := group
		for order, idx := range warmupIdx[start : start+2] {
			exercises[idx].SupersetGroup = &g
			exercises[idx].SupersetOrder = order + 1
		}
		group++
	}
	return group
}

// pairAntagonists makes one pairing attempt per strength exercise, matching
// opposing movement patterns first and opposing muscle groups second. Each
// exercise joins at most one superset.
func pairAntagonists(exercises []GeneratedExercise, group int) {
	pairable := func(i int) bool {
		ex := exercises[i]
		if ex.SupersetGroup != nil {
			return false
		}
		return ex.category == CategoryCompound || ex.category == CategoryIsolation
	}

	for i := range exercises {
		if !pairable(i) {
			continue
		}
		partner := -1
		for j := i + 1; j < len(exercises); j++ {
			if !pairable(j) {
				continue
			}
			if antagonistPatterns[exercises[i].pattern] == exercises[j].pattern {
				partner = j
				break
			}
			if partner == -1 && musclesOppose(exercises[i].muscles, exercises[j].muscles) {
				partner = j
			}
		}
		if partner == -1 {
			continue
		}
		g := group
		exercises[i].SupersetGroup = &g
		exercises[i].SupersetOrder = 1
		exercises[partner].SupersetGroup = &g
		exercises[partner].SupersetOrder = 2
		group++
	}
}

func musclesOppose(a, b []string) bool {
	for _, muscle := range a {
		opposite, ok := antagonistMuscles[muscle]
		if !ok {
			continue
		}
		for _, other := range b {
			if other == opposite {
				return true
			}
		}
	}
	return false
}

// totalStrengthMinutes sums the estimated time of the non-warmup, non-cardio
// exercises including transitions.
func totalStrengthMinutes(exercises []GeneratedExercise) float64 {
	total := 0.0
	for _, ex := range exercises {
		if ex.category == CategoryWarmup || ex.pattern == PatternCardio {
			continue
		}
		total += minutesWithTransition(ex)
	}
	return total
}

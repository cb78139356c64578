package program

import (
	"math"
	"strings"

	"github.com/ahelminen/trainweek/internal/ptr"
)

// repScheme is one row of the prescription table.
type repScheme struct {
	sets            int
	minReps         int
	maxReps         int
	durationSeconds int
	restSeconds     int
	targetRPE       *int
	targetRIR       *int
}

// schemeKey addresses the prescription table by goal, category, and whether
// the slot is a primary compound.
type schemeKey struct {
	goal     Goal
	category Category
	primary  bool
}

// repSchemes is the fixed prescription table. Power work is kept explosive and
// low-rep regardless of goal; everything else shifts toward higher reps and
// shorter rest as the goal moves from gain to lose.
var repSchemes = map[schemeKey]repScheme{ //nolint:gochecknoglobals // immutable prescription table.
	{GoalGain, CategoryPower, false}:     {sets: 3, minReps: 3, maxReps: 5, restSeconds: 120, targetRIR: ptr.Ref(4)},
	{GoalMaintain, CategoryPower, false}: {sets: 3, minReps: 3, maxReps: 5, restSeconds: 120, targetRIR: ptr.Ref(4)},
	{GoalLose, CategoryPower, false}:     {sets: 2, minReps: 4, maxReps: 6, restSeconds: 90, targetRIR: ptr.Ref(4)},

	{GoalGain, CategoryCompound, true}:     {sets: 4, minReps: 6, maxReps: 10, restSeconds: 120, targetRIR: ptr.Ref(2)},
	{GoalMaintain, CategoryCompound, true}: {sets: 3, minReps: 8, maxReps: 12, restSeconds: 90, targetRIR: ptr.Ref(2)},
	{GoalLose, CategoryCompound, true}:     {sets: 3, minReps: 10, maxReps: 15, restSeconds: 60, targetRPE: ptr.Ref(8)},

	{GoalGain, CategoryCompound, false}:     {sets: 3, minReps: 8, maxReps: 12, restSeconds: 90, targetRIR: ptr.Ref(2)},
	{GoalMaintain, CategoryCompound, false}: {sets: 3, minReps: 10, maxReps: 12, restSeconds: 75, targetRIR: ptr.Ref(2)},
	{GoalLose, CategoryCompound, false}:     {sets: 2, minReps: 12, maxReps: 15, restSeconds: 60, targetRPE: ptr.Ref(8)},

	{GoalGain, CategoryIsolation, false}:     {sets: 3, minReps: 10, maxReps: 15, restSeconds: 60, targetRPE: ptr.Ref(8)},
	{GoalMaintain, CategoryIsolation, false}: {sets: 2, minReps: 12, maxReps: 15, restSeconds: 60, targetRPE: ptr.Ref(8)},
	{GoalLose, CategoryIsolation, false}:     {sets: 2, minReps: 15, maxReps: 20, restSeconds: 45, targetRPE: ptr.Ref(8)},

	{GoalGain, CategoryCore, false}:     {sets: 3, minReps: 10, maxReps: 15, restSeconds: 45},
	{GoalMaintain, CategoryCore, false}: {sets: 3, minReps: 10, maxReps: 15, restSeconds: 45},
	{GoalLose, CategoryCore, false}:     {sets: 2, minReps: 12, maxReps: 20, restSeconds: 30},
}

const (
	coreHoldSeconds   = 40
	warmupReps        = 10
	warmupHoldSeconds = 30
)

// lookupScheme resolves the prescription row, falling back to the maintain
// column for unknown goals.
func lookupScheme(goal Goal, category Category, primary bool) repScheme {
	if category == CategoryPower || category == CategoryIsolation || category == CategoryCore {
		primary = false
	}
	if scheme, ok := repSchemes[schemeKey{goal, category, primary}]; ok {
		return scheme
	}
	return repSchemes[schemeKey{GoalMaintain, category, primary}]
}

// prescribe turns a catalog exercise into a prescribed slot. Duration-tracked
// work swaps the rep range for a per-set hold time.
func prescribe(ex Exercise, goal Goal, primary bool, owned []string) GeneratedExercise {
	scheme := lookupScheme(goal, ex.Category, primary)
	out := GeneratedExercise{
		Name:        ex.Name,
		Equipment:   resolveEquipment(ex, owned),
		Sets:        scheme.sets,
		MinReps:     scheme.minReps,
		MaxReps:     scheme.maxReps,
		RestSeconds: scheme.restSeconds,
		TargetRPE:   scheme.targetRPE,
		TargetRIR:   scheme.targetRIR,
		Tempo:       ex.Tempo,
		category:    ex.Category,
		pattern:     ex.Pattern,
		muscles:     ex.PrimaryMuscles,
	}
	if ex.Tracking == TrackDuration {
		out.MinReps = 0
		out.MaxReps = 0
		out.DurationSeconds = coreHoldSeconds
	}
	return out
}

// prescribeWarmup produces the single light set used in the warmup block.
func prescribeWarmup(ex Exercise, owned []string) GeneratedExercise {
	out := GeneratedExercise{
		Name:      ex.Name,
		Equipment: resolveEquipment(ex, owned),
		Sets:      1,
		MinReps:   warmupReps,
		MaxReps:   warmupReps,
		Tempo:     ex.Tempo,
		category:  CategoryWarmup,
		pattern:   ex.Pattern,
		muscles:   ex.PrimaryMuscles,
	}
	if ex.Tracking == TrackDuration {
		out.MinReps = 0
		out.MaxReps = 0
		out.DurationSeconds = warmupHoldSeconds
	}
	return out
}

// prescribeCardio fills the remaining cardio budget as one continuous effort.
func prescribeCardio(ex Exercise, owned []string, minutes float64) GeneratedExercise {
	if minutes < 1 {
		minutes = 1
	}
	return GeneratedExercise{
		Name:            ex.Name,
		Equipment:       resolveEquipment(ex, owned),
		Sets:            1,
		DurationSeconds: int(math.Round(minutes)) * 60,
		category:        ex.Category,
		pattern:         ex.Pattern,
		muscles:         ex.PrimaryMuscles,
	}
}

// prescribeNominal builds a synthetic prescription used only for time
// arithmetic when deriving slot counts.
func prescribeNominal(category Category, goal Goal, _ Level, primary bool) GeneratedExercise {
	scheme := lookupScheme(goal, category, primary)
	return GeneratedExercise{
		Sets:        scheme.sets,
		MinReps:     scheme.minReps,
		MaxReps:     scheme.maxReps,
		RestSeconds: scheme.restSeconds,
		category:    category,
	}
}

// oneRMFor matches a barbell lift to the corresponding assessment maximum.
func oneRMFor(ex Exercise, assessment Assessment) *float64 {
	if !strings.Contains(strings.ToLower(ex.Name), "barbell") {
		return nil
	}
	switch {
	case ex.Pattern == PatternSquat:
		return assessment.SquatOneRMKg
	case ex.Pattern == PatternHinge:
		return assessment.DeadliftOneRMKg
	case ex.Pattern == PatternHorizontalPush:
		return assessment.BenchOneRMKg
	case ex.Pattern == PatternVerticalPush:
		return assessment.PressOneRMKg
	}
	return nil
}

// recommendWeight derives a working weight from a tested one-rep max using the
// inverse Epley estimate for the top of the rep range, rounded to the nearest
// 2.5 kg plate increment.
func recommendWeight(ex Exercise, assessment Assessment, maxReps int) *float64 {
	oneRM := oneRMFor(ex, assessment)
	if oneRM == nil || *oneRM <= 0 || maxReps <= 0 {
		return nil
	}
	const epleyFactor = 30.0
	weight := *oneRM / (1 + float64(maxReps)/epleyFactor)
	const plateIncrement = 2.5
	rounded := math.Round(weight/plateIncrement) * plateIncrement
	if rounded <= 0 {
		return nil
	}
	return &rounded
}

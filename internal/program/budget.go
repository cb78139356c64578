package program

import "math"

// Time estimation constants. estimateMinutes and minutesWithTransition are the
// single source of truth for all time arithmetic in the engine; no other code
// may duplicate these numbers.
const (
	secondsPerRep           = 2.5
	transitionMinutes       = 1.0
	warmupSlotMinutes       = 0.5
	strengthShortfallFloor  = 3.0
	strengthFillTolerance   = 1.0
	sessionBucketShort      = 30
	sessionBucketMedium     = 45
	sessionBucketLong       = 60
	maxPrimaryCompounds     = 2
	maxPowerExercises       = 2
	accessoryOverheadSlots  = 2
	averageCardioMinutes    = 6.0
	programDurationWeeks    = 4
	minimumCompoundSpacing  = 2
	supersetSessionCeiling  = 45
	defaultWeeklyFrequency  = 3
	maxSupportedFrequency   = 5
)

// budgetSplit is a percentage split of the session across the four blocks.
type budgetSplit struct {
	warmup   float64
	power    float64
	strength float64
	cardio   float64
}

// splitTable maps nutrition goal and session-length bucket to a percentage
// split. Buckets are 30, 45, and 60 minutes, rounded down.
var splitTable = map[Goal]map[int]budgetSplit{ //nolint:gochecknoglobals // immutable allocation table.
	GoalGain: {
		sessionBucketShort:  {warmup: 10, power: 10, strength: 75, cardio: 5},
		sessionBucketMedium: {warmup: 10, power: 10, strength: 75, cardio: 5},
		sessionBucketLong:   {warmup: 8, power: 12, strength: 72, cardio: 8},
	},
	GoalMaintain: {
		sessionBucketShort:  {warmup: 10, power: 10, strength: 65, cardio: 15},
		sessionBucketMedium: {warmup: 10, power: 10, strength: 62, cardio: 18},
		sessionBucketLong:   {warmup: 10, power: 10, strength: 60, cardio: 20},
	},
	GoalLose: {
		sessionBucketShort:  {warmup: 10, power: 8, strength: 52, cardio: 30},
		sessionBucketMedium: {warmup: 10, power: 8, strength: 50, cardio: 32},
		sessionBucketLong:   {warmup: 8, power: 7, strength: 50, cardio: 35},
	},
}

// timeBudget carries the per-block minute budgets for one session.
type timeBudget struct {
	warmupMinutes   float64
	powerMinutes    float64
	strengthMinutes float64
	cardioMinutes   float64
}

// sessionBucket rounds the session length down to the nearest supported bucket.
func sessionBucket(sessionMinutes int) int {
	switch {
	case sessionMinutes >= sessionBucketLong:
		return sessionBucketLong
	case sessionMinutes >= sessionBucketMedium:
		return sessionBucketMedium
	default:
		return sessionBucketShort
	}
}

// computeBudget converts goal and session length into per-block minute budgets.
func computeBudget(goal Goal, sessionMinutes int) timeBudget {
	splits, ok := splitTable[goal]
	if !ok {
		splits = splitTable[GoalMaintain]
	}
	split := splits[sessionBucket(sessionMinutes)]
	minutes := float64(sessionMinutes)
	const percent = 100.0
	return timeBudget{
		warmupMinutes:   minutes * split.warmup / percent,
		powerMinutes:    minutes * split.power / percent,
		strengthMinutes: minutes * split.strength / percent,
		cardioMinutes:   minutes * split.cardio / percent,
	}
}

// estimateMinutes computes the working time of one prescribed exercise without
// the transition cost. Duration-based work uses the programmed seconds per set,
// rep-based work assumes secondsPerRep per rep on the average of the range.
// Rest is paid between sets, not after the last one.
func estimateMinutes(ex GeneratedExercise) float64 {
	restMinutes := float64(ex.RestSeconds) * float64(ex.Sets-1) / 60
	if ex.Sets <= 1 {
		restMinutes = 0
	}
	if ex.DurationSeconds > 0 {
		return float64(ex.DurationSeconds)*float64(ex.Sets)/60 + restMinutes
	}
	avgReps := float64(ex.MinReps+ex.MaxReps) / 2
	return avgReps*secondsPerRep*float64(ex.Sets)/60 + restMinutes
}

// minutesWithTransition adds the fixed per-exercise overhead used when summing
// toward a block budget. Warmups are superset-paired and cost a flat half
// minute each instead.
func minutesWithTransition(ex GeneratedExercise) float64 {
	if ex.category == CategoryWarmup {
		return warmupSlotMinutes
	}
	return estimateMinutes(ex) + transitionMinutes
}

// exerciseCounts holds the per-day slot targets derived from the time budget.
type exerciseCounts struct {
	warmups            int
	power              int
	primaryCompounds   int
	secondaryCompounds int
	cardio             int
}

// deriveCounts turns minute budgets into slot counts by dividing each block
// budget by the estimated cost of a nominal exercise in that block.
func deriveCounts(budget timeBudget, goal Goal, experience Level, wantCardio bool) exerciseCounts {
	primaryMinutes := minutesWithTransition(prescribeNominal(CategoryCompound, goal, experience, true))
	secondaryMinutes := minutesWithTransition(prescribeNominal(CategoryCompound, goal, experience, false))
	powerMinutes := minutesWithTransition(prescribeNominal(CategoryPower, goal, experience, false))

	primaries := int(budget.strengthMinutes / primaryMinutes)
	if primaries > maxPrimaryCompounds {
		primaries = maxPrimaryCompounds
	}
	remaining := budget.strengthMinutes - float64(primaries)*primaryMinutes
	secondaries := int(remaining / secondaryMinutes)
	if secondaries < 0 {
		secondaries = 0
	}

	power := int(budget.powerMinutes / powerMinutes)
	if power > maxPowerExercises {
		power = maxPowerExercises
	}

	cardio := int(budget.cardioMinutes / averageCardioMinutes)
	if wantCardio && budget.cardioMinutes > 0 && cardio < 1 {
		cardio = 1
	}

	warmups := int(math.Round(budget.warmupMinutes / warmupSlotMinutes))

	return exerciseCounts{
		warmups:            warmups,
		power:              power,
		primaryCompounds:   primaries,
		secondaryCompounds: secondaries,
		cardio:             cardio,
	}
}

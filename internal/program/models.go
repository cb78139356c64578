package program

import (
	"time"

	"github.com/google/uuid"
)

// MovementPattern is one of the fixed functional movement categories plus cardio.
type MovementPattern string

// Movement pattern constants.
const (
	PatternHorizontalPush MovementPattern = "horizontal_push"
	PatternVerticalPush   MovementPattern = "vertical_push"
	PatternHorizontalPull MovementPattern = "horizontal_pull"
	PatternVerticalPull   MovementPattern = "vertical_pull"
	PatternSquat          MovementPattern = "squat"
	PatternLunge          MovementPattern = "lunge"
	PatternHinge          MovementPattern = "hinge"
	PatternCore           MovementPattern = "core"
	PatternRotation       MovementPattern = "rotation"
	PatternCarry          MovementPattern = "carry"
	PatternCardio         MovementPattern = "cardio"
)

// strengthPatterns lists the ten non-cardio patterns in a fixed order so that
// derived structures stay deterministic.
var strengthPatterns = []MovementPattern{ //nolint:gochecknoglobals // immutable taxonomy.
	PatternHorizontalPush,
	PatternVerticalPush,
	PatternHorizontalPull,
	PatternVerticalPull,
	PatternSquat,
	PatternLunge,
	PatternHinge,
	PatternCore,
	PatternRotation,
	PatternCarry,
}

// Category represents the exercise category tier, ordered roughly by neural demand.
type Category string

// Exercise category constants.
const (
	CategoryWarmup    Category = "warmup"
	CategoryPower     Category = "power"
	CategoryCompound  Category = "compound"
	CategoryIsolation Category = "isolation"
	CategoryCore      Category = "core"
	CategoryCardio    Category = "cardio"
)

// Level is a difficulty tier for exercises and an experience tier for users.
type Level string

// Level constants.
const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// levelRank orders levels so they can be compared.
func levelRank(l Level) int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	default:
		return 1
	}
}

// TrackingType tells whether an exercise is performed for reps or for time.
type TrackingType string

// Tracking type constants.
const (
	TrackReps     TrackingType = "reps"
	TrackDuration TrackingType = "duration"
)

// EquipmentBodyweight is always considered available regardless of what the
// user owns.
const EquipmentBodyweight = "bodyweight"

// Exercise represents a single catalog entry, e.g. Goblet Squat.
// Immutable during generation.
type Exercise struct {
	ID                  int
	Name                string
	Pattern             MovementPattern
	Category            Category
	Equipment           []string
	Difficulty          Level
	PrimaryMuscles      []string
	Tracking            TrackingType
	Tempo               string
	DescriptionMarkdown string
}

// Goal is the user's nutrition goal, which steers the session time split.
type Goal string

// Goal constants.
const (
	GoalGain     Goal = "gain"
	GoalMaintain Goal = "maintain"
	GoalLose     Goal = "lose"
)

// Profile stores the user's training setup.
type Profile struct {
	Equipment      []string
	Experience     Level
	Goal           Goal
	Unit           string
	SessionMinutes int
	DaysPerWeek    int
	// Dates optionally pins the week's training days to explicit calendar dates.
	Dates []time.Time
}

// Assessment carries raw performance numbers from the most recent movement
// assessment. All fields are optional; missing values fall back to the
// declared experience level.
type Assessment struct {
	PushUps          *int
	PullUps          *int
	BodyweightSquats *int
	PlankSeconds     *int
	DeadHangSeconds  *int
	SquatOneRMKg     *float64
	DeadliftOneRMKg  *float64
	BenchOneRMKg     *float64
	PressOneRMKg     *float64
}

// GeneratedExercise is a single prescribed exercise inside a generated workout.
type GeneratedExercise struct {
	Name            string
	Equipment       string
	Sets            int
	MinReps         int
	MaxReps         int
	DurationSeconds int
	RestSeconds     int
	TargetRPE       *int
	TargetRIR       *int
	Tempo           string
	WeightKg        *float64
	SupersetGroup   *int
	SupersetOrder   int

	// category and pattern are retained for ordering and bookkeeping.
	// They are not part of the user-facing program.
	category Category
	pattern  MovementPattern
	muscles  []string
}

// WorkoutType tells whether a generated day is a strength or cardio session.
type WorkoutType string

// Workout type constants.
const (
	WorkoutStrength WorkoutType = "strength"
	WorkoutCardio   WorkoutType = "cardio"
)

// GeneratedWorkout is one day of the generated program.
type GeneratedWorkout struct {
	Day       int
	Name      string
	Type      WorkoutType
	Date      *time.Time
	Exercises []GeneratedExercise
}

// GeneratedProgram is the complete multi-week program.
type GeneratedProgram struct {
	ID            uuid.UUID
	TemplateName  string
	DurationWeeks int
	Workouts      []GeneratedWorkout
}

// focusLabel names the per-day training emphasis. It drives anti-movement core
// work and warmup/power exercise choice.
type focusLabel string

// Focus label constants.
const (
	focusSquat     focusLabel = "squat"
	focusHinge     focusLabel = "hinge"
	focusUpperPush focusLabel = "upper_push"
	focusUpperPull focusLabel = "upper_pull"
	focusFullBody  focusLabel = "full_body"
	focusAthletic  focusLabel = "athletic"
)

// dayTheme classifies a day by what its chosen compounds train. It narrows
// the isolation candidates to matching patterns.
type dayTheme string

// Day theme constants.
const (
	themePush  dayTheme = "push"
	themePull  dayTheme = "pull"
	themeLeg   dayTheme = "leg"
	themeMixed dayTheme = "mixed"
)

// dayPlan holds the movement pattern emphasis for one scheduled day.
type dayPlan struct {
	day       int
	primary   []MovementPattern
	secondary []MovementPattern
	fallback  []MovementPattern
	focus     focusLabel
}

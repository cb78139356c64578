package program

import "slices"

// Pattern groups used for theme classification and workout naming.
var (
	pushPatterns = []MovementPattern{PatternHorizontalPush, PatternVerticalPush} //nolint:gochecknoglobals // immutable table.
	pullPatterns = []MovementPattern{PatternHorizontalPull, PatternVerticalPull} //nolint:gochecknoglobals // immutable table.
	legPatterns  = []MovementPattern{PatternSquat, PatternLunge, PatternHinge}   //nolint:gochecknoglobals // immutable table.
)

// accessoryPatternsByTheme restricts isolation candidates to the patterns
// matching what the day's compounds already train. Mixed days stay open.
var accessoryPatternsByTheme = map[dayTheme][]MovementPattern{ //nolint:gochecknoglobals // immutable table.
	themePush:  pushPatterns,
	themePull:  pullPatterns,
	themeLeg:   legPatterns,
	themeMixed: strengthPatterns,
}

// antiMovementByFocus picks the core or trunk pattern that balances the day's
// main emphasis. Heavy spinal loading gets anti-extension work, pressing days
// get rotation, pulling days get anti-flexion.
var antiMovementByFocus = map[focusLabel]MovementPattern{ //nolint:gochecknoglobals // immutable table.
	focusSquat:     PatternCore,
	focusHinge:     PatternCarry,
	focusUpperPush: PatternRotation,
	focusUpperPull: PatternCore,
	focusFullBody:  PatternRotation,
	focusAthletic:  PatternCore,
}

// warmupNamesByFocus lists preferred warmup drills per day focus, in priority
// order. Names not present in the filtered pool are skipped.
var warmupNamesByFocus = map[focusLabel][]string{ //nolint:gochecknoglobals // immutable table.
	focusSquat:     {"Hip Circle", "Leg Swing", "World's Greatest Stretch", "Jumping Jack"},
	focusHinge:     {"Cat-Cow", "Leg Swing", "Bird Dog", "Glute Bridge March"},
	focusUpperPush: {"Arm Circle", "Band Pull-Apart", "Scapular Push-Up", "Shoulder Dislocate"},
	focusUpperPull: {"Band Pull-Apart", "Scapular Pull-Up", "Arm Circle", "Cat-Cow"},
	focusFullBody:  {"Jumping Jack", "World's Greatest Stretch", "Arm Circle", "Hip Circle"},
	focusAthletic:  {"Jumping Jack", "High Knees", "Leg Swing", "Hip Circle"},
}

// powerNamesByFocus lists preferred explosive drills per day focus, in
// priority order.
var powerNamesByFocus = map[focusLabel][]string{ //nolint:gochecknoglobals // immutable table.
	focusSquat:     {"Box Jump", "Jump Squat"},
	focusHinge:     {"Kettlebell Swing", "Broad Jump"},
	focusUpperPush: {"Medicine Ball Chest Pass", "Plyo Push-Up"},
	focusUpperPull: {"Medicine Ball Slam"},
	focusFullBody:  {"Kettlebell Swing", "Box Jump", "Medicine Ball Slam"},
	focusAthletic:  {"Broad Jump", "Box Jump", "Medicine Ball Slam"},
}

// antagonistMuscles pairs opposing muscle groups for accessory scoring and
// superset pairing. The map is symmetric.
var antagonistMuscles = map[string]string{ //nolint:gochecknoglobals // immutable table.
	"chest":       "upper back",
	"upper back":  "chest",
	"shoulders":   "lats",
	"lats":        "shoulders",
	"triceps":     "biceps",
	"biceps":      "triceps",
	"quads":       "hamstrings",
	"hamstrings":  "quads",
	"core":        "lower back",
	"lower back":  "core",
	"glutes":      "hip flexors",
	"hip flexors": "glutes",
}

// antagonistPatterns pairs opposing movement patterns for superset assembly.
// The map is symmetric.
var antagonistPatterns = map[MovementPattern]MovementPattern{ //nolint:gochecknoglobals // immutable table.
	PatternHorizontalPush: PatternHorizontalPull,
	PatternHorizontalPull: PatternHorizontalPush,
	PatternVerticalPush:   PatternVerticalPull,
	PatternVerticalPull:   PatternVerticalPush,
	PatternSquat:          PatternHinge,
	PatternHinge:          PatternSquat,
}

// requiredMovement anchors a day on a foundational lift. Candidates are tried
// in order; an exercise qualifies when it exists in the catalog, its equipment
// is available, and its difficulty is at most one tier above the user's
// ceiling for the pattern.
type requiredMovement struct {
	pattern    MovementPattern
	candidates []string
}

// requiredMovements lists the foundational lifts per experience tier.
var requiredMovements = map[Level][]requiredMovement{ //nolint:gochecknoglobals // immutable table.
	LevelBeginner: {
		{pattern: PatternSquat, candidates: []string{"Goblet Squat", "Bodyweight Squat"}},
		{pattern: PatternHinge, candidates: []string{"Dumbbell Romanian Deadlift", "Glute Bridge"}},
		{pattern: PatternHorizontalPush, candidates: []string{"Push-Up", "Incline Push-Up"}},
	},
	LevelIntermediate: {
		{pattern: PatternSquat, candidates: []string{"Barbell Back Squat", "Goblet Squat"}},
		{pattern: PatternHinge, candidates: []string{"Barbell Deadlift", "Dumbbell Romanian Deadlift"}},
		{pattern: PatternHorizontalPush, candidates: []string{"Barbell Bench Press", "Push-Up"}},
		{pattern: PatternVerticalPull, candidates: []string{"Pull-Up", "Lat Pulldown"}},
	},
	LevelAdvanced: {
		{pattern: PatternSquat, candidates: []string{"Barbell Back Squat", "Barbell Front Squat"}},
		{pattern: PatternHinge, candidates: []string{"Barbell Deadlift", "Barbell Romanian Deadlift"}},
		{pattern: PatternHorizontalPush, candidates: []string{"Barbell Bench Press", "Weighted Dip"}},
		{pattern: PatternVerticalPull, candidates: []string{"Weighted Pull-Up", "Pull-Up"}},
		{pattern: PatternVerticalPush, candidates: []string{"Barbell Overhead Press", "Dumbbell Shoulder Press"}},
	},
}

// workoutNameRule maps one combination of trained pattern groups to a display
// name.
type workoutNameRule struct {
	push bool
	pull bool
	leg  bool
	name string
}

// workoutNameRules is the naming decision table, matched against the pattern
// groups the day's main work actually trains.
var workoutNameRules = []workoutNameRule{ //nolint:gochecknoglobals // immutable table.
	{push: true, pull: true, leg: true, name: "Full Body Strength"},
	{push: true, pull: true, leg: false, name: "Upper Body Strength"},
	{push: true, pull: false, leg: true, name: "Push and Legs"},
	{push: false, pull: true, leg: true, name: "Pull and Legs"},
	{push: true, pull: false, leg: false, name: "Upper Body Push"},
	{push: false, pull: true, leg: false, name: "Upper Body Pull"},
	{push: false, pull: false, leg: true, name: "Lower Body Strength"},
	{push: false, pull: false, leg: false, name: "Strength Training"},
}

// workoutName derives the day's display name from the set of patterns its
// main work trains. Core work appends " + Core", a cardio finisher appends
// " + Cardio".
func workoutName(exercises []GeneratedExercise) string {
	var push, pull, leg, core, cardio bool
	for _, ex := range exercises {
		if ex.category == CategoryWarmup {
			continue
		}
		switch {
		case ex.pattern == PatternCardio:
			cardio = true
		case ex.category == CategoryCore:
			core = true
		case slices.Contains(pushPatterns, ex.pattern):
			push = true
		case slices.Contains(pullPatterns, ex.pattern):
			pull = true
		case slices.Contains(legPatterns, ex.pattern):
			leg = true
		}
	}
	name := "Strength Training"
	for _, rule := range workoutNameRules {
		if rule.push == push && rule.pull == pull && rule.leg == leg {
			name = rule.name
			break
		}
	}
	if core {
		name += " + Core"
	}
	if cardio {
		name += " + Cardio"
	}
	return name
}

// templateNames maps goal and experience to the program's display name.
var templateNames = map[Goal]map[Level]string{ //nolint:gochecknoglobals // immutable table.
	GoalGain: {
		LevelBeginner:     "Foundation Builder",
		LevelIntermediate: "Progressive Overload",
		LevelAdvanced:     "Advanced Hypertrophy",
	},
	GoalMaintain: {
		LevelBeginner:     "Balanced Start",
		LevelIntermediate: "Balanced Athlete",
		LevelAdvanced:     "Performance Maintenance",
	},
	GoalLose: {
		LevelBeginner:     "Lean Foundations",
		LevelIntermediate: "Conditioning Circuit",
		LevelAdvanced:     "Advanced Cut",
	},
}

// programTemplateName resolves the display name for a goal and experience
// combination, falling back to a balanced default.
func programTemplateName(goal Goal, experience Level) string {
	if byLevel, ok := templateNames[goal]; ok {
		if name, ok := byLevel[experience]; ok {
			return name
		}
	}
	return templateNames[GoalMaintain][LevelIntermediate]
}

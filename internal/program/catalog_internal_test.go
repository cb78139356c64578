package program

// testExercise builds a catalog entry for tests with the fields that matter to
// selection. Tracking defaults to reps.
func testExercise(
	name string,
	pattern MovementPattern,
	category Category,
	difficulty Level,
	equipment []string,
	muscles []string,
) Exercise {
	return Exercise{
		ID:                  0,
		Name:                name,
		Pattern:             pattern,
		Category:            category,
		Equipment:           equipment,
		Difficulty:          difficulty,
		PrimaryMuscles:      muscles,
		Tracking:            TrackReps,
		Tempo:               "",
		DescriptionMarkdown: "",
	}
}

func timed(ex Exercise) Exercise {
	ex.Tracking = TrackDuration
	return ex
}

func bw() []string { return []string{EquipmentBodyweight} }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// testCatalog mirrors the shape of the seeded exercise catalog: warmups, power
// drills, compounds across every pattern at several difficulties, isolation
// and core work, and cardio finishers.
func testCatalog() []Exercise {
	return []Exercise{
		// Warmups.
		testExercise("Jumping Jack", PatternCardio, CategoryWarmup, LevelBeginner, bw(), []string{"full body"}),
		timed(testExercise("High Knees", PatternCardio, CategoryWarmup, LevelBeginner, bw(), []string{"hip flexors"})),
		testExercise("Arm Circle", PatternVerticalPush, CategoryWarmup, LevelBeginner, bw(), []string{"shoulders"}),
		testExercise("Band Pull-Apart", PatternHorizontalPull, CategoryWarmup, LevelBeginner,
			[]string{"resistance band", EquipmentBodyweight}, []string{"upper back"}),
		testExercise("Scapular Push-Up", PatternHorizontalPush, CategoryWarmup, LevelBeginner, bw(), []string{"chest"}),
		testExercise("Leg Swing", PatternHinge, CategoryWarmup, LevelBeginner, bw(), []string{"hamstrings"}),
		testExercise("Hip Circle", PatternSquat, CategoryWarmup, LevelBeginner, bw(), []string{"glutes"}),
		testExercise("Cat-Cow", PatternCore, CategoryWarmup, LevelBeginner, bw(), []string{"lower back"}),
		testExercise("Bird Dog", PatternCore, CategoryWarmup, LevelBeginner, bw(), []string{"core"}),
		testExercise("Glute Bridge March", PatternHinge, CategoryWarmup, LevelBeginner, bw(), []string{"glutes"}),
		testExercise("World's Greatest Stretch", PatternLunge, CategoryWarmup, LevelBeginner, bw(),
			[]string{"hip flexors"}),

		// Power.
		testExercise("Jump Squat", PatternSquat, CategoryPower, LevelBeginner, bw(), []string{"quads"}),
		testExercise("Box Jump", PatternSquat, CategoryPower, LevelIntermediate, []string{"box"}, []string{"quads"}),
		testExercise("Broad Jump", PatternHinge, CategoryPower, LevelBeginner, bw(), []string{"glutes"}),
		testExercise("Kettlebell Swing", PatternHinge, CategoryPower, LevelIntermediate,
			[]string{"kettlebell"}, []string{"glutes", "hamstrings"}),
		testExercise("Medicine Ball Chest Pass", PatternHorizontalPush, CategoryPower, LevelBeginner,
			[]string{"medicine ball"}, []string{"chest"}),
		testExercise("Plyo Push-Up", PatternHorizontalPush, CategoryPower, LevelAdvanced, bw(), []string{"chest"}),
		testExercise("Medicine Ball Slam", PatternVerticalPull, CategoryPower, LevelBeginner,
			[]string{"medicine ball"}, []string{"lats", "core"}),

		// Squat compounds.
		testExercise("Bodyweight Squat", PatternSquat, CategoryCompound, LevelBeginner, bw(),
			[]string{"quads", "glutes"}),
		testExercise("Goblet Squat", PatternSquat, CategoryCompound, LevelBeginner,
			[]string{"dumbbells", "kettlebell"}, []string{"quads", "glutes"}),
		testExercise("Barbell Back Squat", PatternSquat, CategoryCompound, LevelIntermediate,
			[]string{"barbell"}, []string{"quads", "glutes"}),
		testExercise("Barbell Front Squat", PatternSquat, CategoryCompound, LevelAdvanced,
			[]string{"barbell"}, []string{"quads", "core"}),

		// Hinge compounds.
		testExercise("Glute Bridge", PatternHinge, CategoryCompound, LevelBeginner, bw(), []string{"glutes"}),
		testExercise("Dumbbell Romanian Deadlift", PatternHinge, CategoryCompound, LevelBeginner,
			[]string{"dumbbells"}, []string{"hamstrings", "glutes"}),
		testExercise("Barbell Deadlift", PatternHinge, CategoryCompound, LevelIntermediate,
			[]string{"barbell"}, []string{"hamstrings", "glutes", "lower back"}),
		testExercise("Barbell Romanian Deadlift", PatternHinge, CategoryCompound, LevelIntermediate,
			[]string{"barbell"}, []string{"hamstrings", "glutes"}),

		// Horizontal push compounds.
		testExercise("Incline Push-Up", PatternHorizontalPush, CategoryCompound, LevelBeginner, bw(),
			[]string{"chest"}),
		testExercise("Push-Up", PatternHorizontalPush, CategoryCompound, LevelBeginner, bw(),
			[]string{"chest", "triceps"}),
		testExercise("Dumbbell Bench Press", PatternHorizontalPush, CategoryCompound, LevelIntermediate,
			[]string{"dumbbells"}, []string{"chest", "triceps"}),
		testExercise("Barbell Bench Press", PatternHorizontalPush, CategoryCompound, LevelIntermediate,
			[]string{"barbell"}, []string{"chest", "triceps"}),
		testExercise("Weighted Dip", PatternHorizontalPush, CategoryCompound, LevelAdvanced,
			[]string{"dip bars"}, []string{"chest", "triceps"}),

		// Vertical push compounds.
		testExercise("Dumbbell Shoulder Press", PatternVerticalPush, CategoryCompound, LevelBeginner,
			[]string{"dumbbells"}, []string{"shoulders", "triceps"}),
		testExercise("Pike Push-Up", PatternVerticalPush, CategoryCompound, LevelIntermediate, bw(),
			[]string{"shoulders"}),
		testExercise("Barbell Overhead Press", PatternVerticalPush, CategoryCompound, LevelIntermediate,
			[]string{"barbell"}, []string{"shoulders", "triceps"}),

		// Horizontal pull compounds.
		testExercise("Inverted Row", PatternHorizontalPull, CategoryCompound, LevelBeginner, bw(),
			[]string{"upper back", "biceps"}),
		testExercise("Dumbbell Row", PatternHorizontalPull, CategoryCompound, LevelBeginner,
			[]string{"dumbbells"}, []string{"upper back", "lats"}),
		testExercise("Barbell Bent-Over Row", PatternHorizontalPull, CategoryCompound, LevelIntermediate,
			[]string{"barbell"}, []string{"upper back", "lats"}),

		// Vertical pull compounds.
		testExercise("Lat Pulldown", PatternVerticalPull, CategoryCompound, LevelBeginner,
			[]string{"cable machine"}, []string{"lats", "biceps"}),
		testExercise("Pull-Up", PatternVerticalPull, CategoryCompound, LevelIntermediate,
			[]string{"pull-up bar"}, []string{"lats", "biceps"}),
		testExercise("Weighted Pull-Up", PatternVerticalPull, CategoryCompound, LevelAdvanced,
			[]string{"pull-up bar"}, []string{"lats"}),

		// Lunge compounds.
		testExercise("Bodyweight Lunge", PatternLunge, CategoryCompound, LevelBeginner, bw(),
			[]string{"quads", "glutes"}),
		testExercise("Walking Lunge", PatternLunge, CategoryCompound, LevelBeginner,
			[]string{"dumbbells", EquipmentBodyweight}, []string{"quads", "glutes"}),
		testExercise("Bulgarian Split Squat", PatternLunge, CategoryCompound, LevelIntermediate,
			[]string{"dumbbells", EquipmentBodyweight}, []string{"quads", "glutes"}),

		// Carries.
		timed(testExercise("Farmer's Carry", PatternCarry, CategoryCompound, LevelBeginner,
			[]string{"dumbbells", "kettlebell"}, []string{"forearms", "core"})),
		timed(testExercise("Suitcase Carry", PatternCarry, CategoryCompound, LevelIntermediate,
			[]string{"kettlebell"}, []string{"core"})),

		// Core.
		timed(testExercise("Plank", PatternCore, CategoryCore, LevelBeginner, bw(), []string{"core"})),
		timed(testExercise("Side Plank", PatternCore, CategoryCore, LevelBeginner, bw(), []string{"core"})),
		testExercise("Dead Bug", PatternCore, CategoryCore, LevelBeginner, bw(), []string{"core"}),
		testExercise("Hanging Leg Raise", PatternCore, CategoryCore, LevelIntermediate,
			[]string{"pull-up bar"}, []string{"core", "hip flexors"}),
		testExercise("Ab Wheel Rollout", PatternCore, CategoryCore, LevelAdvanced,
			[]string{"ab wheel"}, []string{"core"}),
		testExercise("Bicycle Crunch", PatternRotation, CategoryCore, LevelBeginner, bw(), []string{"core"}),
		testExercise("Russian Twist", PatternRotation, CategoryCore, LevelBeginner, bw(), []string{"core"}),
		testExercise("Pallof Press", PatternRotation, CategoryCore, LevelIntermediate,
			[]string{"cable machine", "resistance band"}, []string{"core"}),
		testExercise("Woodchopper", PatternRotation, CategoryCore, LevelIntermediate,
			[]string{"cable machine"}, []string{"core"}),

		// Isolation.
		testExercise("Lateral Raise", PatternVerticalPush, CategoryIsolation, LevelBeginner,
			[]string{"dumbbells"}, []string{"shoulders"}),
		testExercise("Biceps Curl", PatternVerticalPull, CategoryIsolation, LevelBeginner,
			[]string{"dumbbells"}, []string{"biceps"}),
		testExercise("Triceps Pushdown", PatternHorizontalPush, CategoryIsolation, LevelBeginner,
			[]string{"cable machine"}, []string{"triceps"}),
		testExercise("Chest Fly", PatternHorizontalPush, CategoryIsolation, LevelIntermediate,
			[]string{"dumbbells"}, []string{"chest"}),
		testExercise("Face Pull", PatternHorizontalPull, CategoryIsolation, LevelBeginner,
			[]string{"cable machine"}, []string{"upper back", "shoulders"}),
		testExercise("Leg Extension", PatternSquat, CategoryIsolation, LevelBeginner,
			[]string{"leg machine"}, []string{"quads"}),
		testExercise("Leg Curl", PatternHinge, CategoryIsolation, LevelBeginner,
			[]string{"leg machine"}, []string{"hamstrings"}),
		testExercise("Calf Raise", PatternSquat, CategoryIsolation, LevelBeginner, bw(), []string{"calves"}),
		testExercise("Superman", PatternHinge, CategoryIsolation, LevelBeginner, bw(), []string{"lower back"}),
		testExercise("Glute Kickback", PatternHinge, CategoryIsolation, LevelBeginner,
			[]string{"cable machine"}, []string{"glutes"}),

		// Cardio.
		timed(testExercise("Rowing Machine", PatternCardio, CategoryCardio, LevelBeginner,
			[]string{"rowing machine"}, []string{"full body"})),
		timed(testExercise("Stationary Bike", PatternCardio, CategoryCardio, LevelBeginner,
			[]string{"stationary bike"}, []string{"quads"})),
		timed(testExercise("Jump Rope", PatternCardio, CategoryCardio, LevelBeginner,
			[]string{"jump rope"}, []string{"calves"})),
		timed(testExercise("Burpee", PatternCardio, CategoryCardio, LevelIntermediate, bw(),
			[]string{"full body"})),
		timed(testExercise("Shadow Boxing", PatternCardio, CategoryCardio, LevelBeginner, bw(),
			[]string{"full body"})),
		timed(testExercise("Hill Sprint", PatternCardio, CategoryCardio, LevelAdvanced, bw(),
			[]string{"hamstrings"})),
	}
}

// testProfile is a typical well-equipped intermediate.
func testProfile() Profile {
	return Profile{
		Equipment:      []string{"dumbbells", "barbell", "kettlebell", "pull-up bar", "cable machine"},
		Experience:     LevelIntermediate,
		Goal:           GoalGain,
		Unit:           "kg",
		SessionMinutes: 60,
		DaysPerWeek:    4,
		Dates:          nil,
	}
}

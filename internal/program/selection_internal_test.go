package program

import (
	"testing"
)

func newTestSelector(t *testing.T, plan dayPlan, totalDays int) *daySelector {
	t.Helper()
	profile := testProfile()
	ability := deriveAbility(Assessment{}, profile.Experience)
	catalog := testCatalog()
	idx := buildIndex(catalog, profile, ability)
	budget := computeBudget(profile.Goal, profile.SessionMinutes)
	counts := deriveCounts(budget, profile.Goal, profile.Experience, wantsCardio(totalDays, plan.day))
	return newDaySelector(
		discardLogger(), catalog, idx, profile, ability, Assessment{},
		newGenerationContext(), plan, counts, budget, totalDays,
	)
}

func Test_generationContext_recordDay(t *testing.T) {
	ctx := newGenerationContext()
	ctx.recordDay(1, []GeneratedExercise{
		{Name: "Hip Circle", category: CategoryWarmup, pattern: PatternSquat, muscles: []string{"glutes"}},
		{Name: "Barbell Back Squat", category: CategoryCompound, pattern: PatternSquat, muscles: []string{"quads", "glutes"}},
		{Name: "Kettlebell Swing", category: CategoryPower, pattern: PatternHinge, muscles: []string{"glutes"}},
		{Name: "Plank", category: CategoryCore, pattern: PatternCore, muscles: []string{"core"}},
	})

	if _, ok := ctx.exerciseLastUsed["Hip Circle"]; ok {
		t.Error("Expected warmups to be excluded from recovery tracking")
	}
	if ctx.exerciseLastUsed["Barbell Back Squat"] != 1 {
		t.Error("Expected the compound to be recorded for day 1")
	}
	if ctx.patternLastUsed[PatternSquat] != 1 {
		t.Error("Expected the compound's pattern to be recorded")
	}
	if ctx.patternUseCount[PatternSquat] != 1 {
		t.Error("Expected the compound's pattern usage to be counted")
	}
	if _, ok := ctx.patternLastUsed[PatternHinge]; ok {
		t.Error("Expected pattern tracking to cover compounds only")
	}
	if !ctx.weeklyUsed["Kettlebell Swing"] || !ctx.weeklyUsed["Plank"] {
		t.Error("Expected power and core work to be marked used for the week")
	}
	if !ctx.dayOneExercises["Barbell Back Squat"] {
		t.Error("Expected day one names to be remembered")
	}
	if !ctx.previousDayMuscles["quads"] || ctx.previousDayMuscles["calves"] {
		t.Error("Expected previous day muscles to reflect the recorded day")
	}

	// The next recorded day replaces, not extends, the muscle set.
	ctx.recordDay(2, []GeneratedExercise{
		{Name: "Barbell Bench Press", category: CategoryCompound, pattern: PatternHorizontalPush, muscles: []string{"chest"}},
	})
	if ctx.previousDayMuscles["quads"] {
		t.Error("Expected muscle tracking to cover only the most recent day")
	}
}

func Test_daySelector_canUse(t *testing.T) {
	squat := Exercise{Name: "Barbell Back Squat", Pattern: PatternSquat, Category: CategoryCompound}
	frontSquat := Exercise{Name: "Barbell Front Squat", Pattern: PatternSquat, Category: CategoryCompound}
	swing := Exercise{Name: "Kettlebell Swing", Pattern: PatternHinge, Category: CategoryPower}
	curl := Exercise{Name: "Biceps Curl", Pattern: PatternVerticalPull, Category: CategoryIsolation,
		PrimaryMuscles: []string{"biceps"}}
	bike := Exercise{Name: "Stationary Bike", Pattern: PatternCardio, Category: CategoryCardio,
		PrimaryMuscles: []string{"quads"}}

	tests := []struct {
		name  string
		setup func(*generationContext)
		ex    Exercise
		day   int
		want  bool
	}{
		{
			name:  "fresh context allows everything",
			setup: func(*generationContext) {},
			ex:    squat,
			day:   1,
			want:  true,
		},
		{
			name: "compound repeat inside the spacing window",
			setup: func(ctx *generationContext) {
				ctx.exerciseLastUsed[squat.Name] = 1
			},
			ex:   squat,
			day:  2,
			want: false,
		},
		{
			name: "compound pattern repeat inside the spacing window",
			setup: func(ctx *generationContext) {
				ctx.patternLastUsed[PatternSquat] = 1
			},
			ex:   frontSquat,
			day:  2,
			want: false,
		},
		{
			name: "compound allowed after two full days",
			setup: func(ctx *generationContext) {
				ctx.exerciseLastUsed[squat.Name] = 1
				ctx.patternLastUsed[PatternSquat] = 1
			},
			ex:   squat,
			day:  3,
			want: true,
		},
		{
			name: "power work appears once per week",
			setup: func(ctx *generationContext) {
				ctx.weeklyUsed[swing.Name] = true
			},
			ex:   swing,
			day:  4,
			want: false,
		},
		{
			name: "isolation avoids muscles trained yesterday",
			setup: func(ctx *generationContext) {
				ctx.previousDayMuscles["biceps"] = true
			},
			ex:   curl,
			day:  2,
			want: false,
		},
		{
			name: "cardio avoids muscles trained yesterday",
			setup: func(ctx *generationContext) {
				ctx.previousDayMuscles["quads"] = true
			},
			ex:   bike,
			day:  2,
			want: false,
		},
		{
			name: "final day avoids day one picks",
			setup: func(ctx *generationContext) {
				ctx.dayOneExercises[squat.Name] = true
			},
			ex:   squat,
			day:  4,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector := newTestSelector(t, dayPlan{day: tt.day, focus: focusFullBody}, 4)
			tt.setup(selector.ctx)
			if got := selector.canUse(tt.ex, tt.day); got != tt.want {
				t.Errorf("canUse(%s, day %d) = %v, want %v", tt.ex.Name, tt.day, got, tt.want)
			}
		})
	}
}

func Test_daySelector_accessoryScore(t *testing.T) {
	selector := newTestSelector(t, dayPlan{day: 1, focus: focusSquat}, 4)
	covered := map[string]bool{"quads": true, "glutes": true}

	tests := []struct {
		name string
		ex   Exercise
		want int
	}{
		{
			name: "untouched muscle scores highest",
			ex:   Exercise{PrimaryMuscles: []string{"calves"}},
			want: 100,
		},
		{
			name: "antagonist of a trained muscle",
			ex:   Exercise{PrimaryMuscles: []string{"hamstrings"}},
			want: 60,
		},
		{
			name: "repeat of a trained muscle",
			ex:   Exercise{PrimaryMuscles: []string{"quads"}},
			want: 40,
		},
		{
			name: "best muscle wins",
			ex:   Exercise{PrimaryMuscles: []string{"quads", "calves"}},
			want: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selector.accessoryScore(tt.ex, covered); got != tt.want {
				t.Errorf("accessoryScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func Test_daySelector_addStrength_respectsBudget(t *testing.T) {
	selector := newTestSelector(t, dayPlan{day: 1, focus: focusSquat}, 4)
	// Room for one primary compound (about 8.3 minutes plus transition) but
	// not two.
	selector.budget.strengthMinutes = 9

	squat := Exercise{
		Name:      "Barbell Back Squat",
		Pattern:   PatternSquat,
		Category:  CategoryCompound,
		Equipment: []string{"barbell"},
		Tracking:  TrackReps,
	}
	if !selector.addStrength(squat, true) {
		t.Fatal("Expected the first pick to fit the budget with tolerance")
	}
	row := Exercise{
		Name:      "Barbell Bent-Over Row",
		Pattern:   PatternHorizontalPull,
		Category:  CategoryCompound,
		Equipment: []string{"barbell"},
		Tracking:  TrackReps,
	}
	if selector.addStrength(row, true) {
		t.Error("Expected the second pick to be rejected once the budget is spent")
	}
}

func Test_daySelector_selectRequired_neverStarved(t *testing.T) {
	plan := dayPlan{
		day: 1,
		primary: []MovementPattern{
			PatternSquat, PatternHinge, PatternHorizontalPush, PatternVerticalPull,
		},
		focus: focusFullBody,
	}
	selector := newTestSelector(t, plan, 4)
	// No slots and no budget: foundational lifts must still land.
	selector.counts.primaryCompounds = 0
	selector.budget.strengthMinutes = 0

	if added := selector.selectRequired(); added != 4 {
		t.Fatalf("selectRequired() added %d lifts, want 4", added)
	}
	for _, name := range []string{
		"Barbell Back Squat", "Barbell Deadlift", "Barbell Bench Press", "Pull-Up",
	} {
		if !selector.pickedNames[name] {
			t.Errorf("Expected required lift %s to be selected", name)
		}
	}
	if selector.strengthUsed == 0 {
		t.Error("Expected required lifts to be charged against the strength block")
	}
}

func Test_daySelector_selectCoreSingle(t *testing.T) {
	t.Run("core emphasis gets exactly one core pick", func(t *testing.T) {
		plan := dayPlan{day: 1, secondary: []MovementPattern{PatternCore}, focus: focusFullBody}
		selector := newTestSelector(t, plan, 4)

		selector.selectCoreSingle()

		if len(selector.picked) != 1 {
			t.Fatalf("got %d picks, want 1", len(selector.picked))
		}
		if selector.picked[0].category != CategoryCore {
			t.Errorf("picked category = %s, want %s", selector.picked[0].category, CategoryCore)
		}
		if selector.picked[0].Name != "Hanging Leg Raise" {
			t.Errorf("picked %s, want the hardest allowed core exercise", selector.picked[0].Name)
		}
	})

	t.Run("no core emphasis means no pick", func(t *testing.T) {
		plan := dayPlan{day: 1, primary: []MovementPattern{PatternSquat}, focus: focusSquat}
		selector := newTestSelector(t, plan, 4)

		selector.selectCoreSingle()

		if len(selector.picked) != 0 {
			t.Errorf("got %d picks, want none", len(selector.picked))
		}
	})
}

func Test_classifyTheme(t *testing.T) {
	tests := []struct {
		name     string
		patterns []MovementPattern
		want     dayTheme
	}{
		{
			name:     "pushing compounds only",
			patterns: []MovementPattern{PatternHorizontalPush, PatternVerticalPush},
			want:     themePush,
		},
		{
			name:     "pulling compounds only",
			patterns: []MovementPattern{PatternVerticalPull},
			want:     themePull,
		},
		{
			name:     "leg compounds only",
			patterns: []MovementPattern{PatternSquat, PatternLunge, PatternHinge},
			want:     themeLeg,
		},
		{
			name:     "push and legs mix",
			patterns: []MovementPattern{PatternHorizontalPush, PatternSquat},
			want:     themeMixed,
		},
		{
			name:     "carries fit no group",
			patterns: []MovementPattern{PatternCarry},
			want:     themeMixed,
		},
		{
			name:     "no compounds yet",
			patterns: nil,
			want:     themeMixed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyTheme(tt.patterns); got != tt.want {
				t.Errorf("classifyTheme() = %s, want %s", got, tt.want)
			}
		})
	}
}

func Test_daySelector_selectAccessories_matchesTheme(t *testing.T) {
	selector := newTestSelector(t, dayPlan{day: 1, focus: focusSquat}, 4)
	squat := Exercise{
		Name:           "Barbell Back Squat",
		Pattern:        PatternSquat,
		Category:       CategoryCompound,
		Equipment:      []string{"barbell"},
		PrimaryMuscles: []string{"quads", "glutes"},
		Tracking:       TrackReps,
	}
	if !selector.addStrength(squat, true) {
		t.Fatal("Failed to seed the squat compound")
	}

	selector.selectAccessories()

	for _, ex := range selector.picked {
		if ex.category != CategoryIsolation {
			continue
		}
		if ex.pattern != PatternSquat && ex.pattern != PatternLunge && ex.pattern != PatternHinge {
			t.Errorf("leg day admitted %s with pattern %s", ex.Name, ex.pattern)
		}
	}
	if !selector.pickedNames["Calf Raise"] {
		t.Error("Expected the leg-pattern accessory to be selected")
	}
	if selector.pickedNames["Lateral Raise"] || selector.pickedNames["Biceps Curl"] {
		t.Error("Expected upper-body isolations to be excluded on a leg day")
	}
}

func Test_daySelector_fillShortfall(t *testing.T) {
	t.Run("fills until within the tolerance", func(t *testing.T) {
		selector := newTestSelector(t, dayPlan{day: 1, focus: focusFullBody}, 4)
		selector.profile.Goal = GoalLose
		// One compound costs about 3.1 minutes, so the first pick leaves a gap
		// between the tolerance and the trigger floor. The fill must keep
		// going instead of stopping there.
		selector.budget.strengthMinutes = 5.5

		selector.fillShortfall()

		if len(selector.picked) != 2 {
			t.Fatalf("got %d picks, want 2", len(selector.picked))
		}
		for _, ex := range selector.picked {
			if ex.category != CategoryCompound {
				t.Errorf("%s has category %s, want compounds only", ex.Name, ex.category)
			}
		}
		if gap := selector.budget.strengthMinutes - selector.strengthUsed; gap > strengthFillTolerance {
			t.Errorf("strength block left %.2f minutes short of budget", gap)
		}
		if selector.picked[0].pattern == selector.picked[1].pattern {
			t.Error("Expected fill picks to spread across patterns")
		}
	})

	t.Run("least used pattern goes first", func(t *testing.T) {
		selector := newTestSelector(t, dayPlan{day: 1, focus: focusFullBody}, 4)
		selector.profile.Goal = GoalLose
		selector.budget.strengthMinutes = 4
		selector.ctx.patternUseCount[PatternHorizontalPush] = 1

		selector.fillShortfall()

		if len(selector.picked) != 1 {
			t.Fatalf("got %d picks, want 1", len(selector.picked))
		}
		if selector.picked[0].pattern == PatternHorizontalPush {
			t.Errorf("fill picked %s from the most used pattern", selector.picked[0].Name)
		}
	})

	t.Run("small gaps never trigger", func(t *testing.T) {
		selector := newTestSelector(t, dayPlan{day: 1, focus: focusFullBody}, 4)
		selector.budget.strengthMinutes = strengthShortfallFloor - 0.1

		selector.fillShortfall()

		if len(selector.picked) != 0 {
			t.Errorf("got %d picks, want none below the trigger floor", len(selector.picked))
		}
	})
}

func Test_daySelector_selectWarmups_borrowsExtraForOddCounts(t *testing.T) {
	selector := newTestSelector(t, dayPlan{day: 1, focus: focusSquat}, 4)
	selector.counts.warmups = 3

	selector.selectWarmups()

	warmups := 0
	for _, ex := range selector.picked {
		if ex.category == CategoryWarmup {
			warmups++
		}
	}
	if warmups != 4 {
		t.Errorf("got %d warmups, want 4 so they pair two by two", warmups)
	}
}

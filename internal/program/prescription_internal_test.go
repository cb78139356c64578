package program

import (
	"testing"

	"github.com/ahelminen/trainweek/internal/ptr"
	"github.com/google/go-cmp/cmp"
)

func Test_lookupScheme(t *testing.T) {
	tests := []struct {
		name     string
		goal     Goal
		category Category
		primary  bool
		want     repScheme
	}{
		{
			name:     "gain primary compound",
			goal:     GoalGain,
			category: CategoryCompound,
			primary:  true,
			want:     repScheme{sets: 4, minReps: 6, maxReps: 10, restSeconds: 120, targetRIR: ptr.Ref(2)},
		},
		{
			name:     "primary flag is ignored outside compounds",
			goal:     GoalGain,
			category: CategoryIsolation,
			primary:  true,
			want:     repScheme{sets: 3, minReps: 10, maxReps: 15, restSeconds: 60, targetRPE: ptr.Ref(8)},
		},
		{
			name:     "unknown goal falls back to maintain",
			goal:     Goal("bulk"),
			category: CategoryCompound,
			primary:  false,
			want:     repScheme{sets: 3, minReps: 10, maxReps: 12, restSeconds: 75, targetRIR: ptr.Ref(2)},
		},
		{
			name:     "lose trims volume and rest",
			goal:     GoalLose,
			category: CategoryCore,
			primary:  false,
			want:     repScheme{sets: 2, minReps: 12, maxReps: 20, restSeconds: 30},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lookupScheme(tt.goal, tt.category, tt.primary)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(repScheme{})); diff != "" {
				t.Errorf("lookupScheme() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_prescribe(t *testing.T) {
	owned := []string{"dumbbells", "barbell"}

	t.Run("rep tracked compound", func(t *testing.T) {
		ex := Exercise{
			Name:           "Barbell Back Squat",
			Pattern:        PatternSquat,
			Category:       CategoryCompound,
			Equipment:      []string{"barbell"},
			Tracking:       TrackReps,
			PrimaryMuscles: []string{"quads", "glutes"},
		}
		got := prescribe(ex, GoalGain, true, owned)
		if got.Sets != 4 || got.MinReps != 6 || got.MaxReps != 10 || got.RestSeconds != 120 {
			t.Errorf("prescribe() = %d sets %d-%d reps rest %d, want 4 sets 6-10 reps rest 120",
				got.Sets, got.MinReps, got.MaxReps, got.RestSeconds)
		}
		if got.Equipment != "barbell" {
			t.Errorf("prescribe() equipment = %q, want %q", got.Equipment, "barbell")
		}
		if got.DurationSeconds != 0 {
			t.Errorf("prescribe() duration = %d, want 0 for rep tracking", got.DurationSeconds)
		}
	})

	t.Run("duration tracked work swaps reps for a hold", func(t *testing.T) {
		ex := Exercise{
			Name:      "Plank",
			Pattern:   PatternCore,
			Category:  CategoryCore,
			Equipment: []string{EquipmentBodyweight},
			Tracking:  TrackDuration,
		}
		got := prescribe(ex, GoalGain, false, owned)
		if got.MinReps != 0 || got.MaxReps != 0 {
			t.Errorf("prescribe() reps = %d-%d, want none for duration tracking", got.MinReps, got.MaxReps)
		}
		if got.DurationSeconds != coreHoldSeconds {
			t.Errorf("prescribe() duration = %d, want %d", got.DurationSeconds, coreHoldSeconds)
		}
	})
}

func Test_prescribeWarmup(t *testing.T) {
	got := prescribeWarmup(Exercise{Name: "Leg Swing", Tracking: TrackReps}, nil)
	if got.Sets != 1 || got.MinReps != warmupReps || got.MaxReps != warmupReps {
		t.Errorf("prescribeWarmup() = %d x %d-%d, want 1 x %d", got.Sets, got.MinReps, got.MaxReps, warmupReps)
	}
	if got.category != CategoryWarmup {
		t.Errorf("prescribeWarmup() category = %s, want %s", got.category, CategoryWarmup)
	}

	timedGot := prescribeWarmup(Exercise{Name: "High Knees", Tracking: TrackDuration}, nil)
	if timedGot.DurationSeconds != warmupHoldSeconds {
		t.Errorf("prescribeWarmup() duration = %d, want %d", timedGot.DurationSeconds, warmupHoldSeconds)
	}
}

func Test_prescribeCardio(t *testing.T) {
	ex := Exercise{Name: "Burpee", Pattern: PatternCardio, Category: CategoryCardio, Tracking: TrackDuration}

	got := prescribeCardio(ex, nil, 8.4)
	if got.DurationSeconds != 8*60 {
		t.Errorf("prescribeCardio() duration = %d, want %d", got.DurationSeconds, 8*60)
	}
	if got.Sets != 1 {
		t.Errorf("prescribeCardio() sets = %d, want 1", got.Sets)
	}

	// The finisher never shrinks below one minute.
	if got := prescribeCardio(ex, nil, 0.2); got.DurationSeconds != 60 {
		t.Errorf("prescribeCardio() duration = %d, want 60", got.DurationSeconds)
	}
}

func Test_recommendWeight(t *testing.T) {
	squat := Exercise{Name: "Barbell Back Squat", Pattern: PatternSquat}
	bench := Exercise{Name: "Barbell Bench Press", Pattern: PatternHorizontalPush}

	tests := []struct {
		name       string
		ex         Exercise
		assessment Assessment
		maxReps    int
		want       *float64
	}{
		{
			name:       "squat max at the top of the gain range",
			ex:         squat,
			assessment: Assessment{SquatOneRMKg: floatPtr(120)},
			maxReps:    10,
			want:       floatPtr(90),
		},
		{
			name:       "bench rounds to the plate increment",
			ex:         bench,
			assessment: Assessment{BenchOneRMKg: floatPtr(100)},
			maxReps:    12,
			want:       floatPtr(72.5),
		},
		{
			name:       "no matching max",
			ex:         squat,
			assessment: Assessment{BenchOneRMKg: floatPtr(100)},
			maxReps:    10,
			want:       nil,
		},
		{
			name:       "non-barbell lifts get no recommendation",
			ex:         Exercise{Name: "Goblet Squat", Pattern: PatternSquat},
			assessment: Assessment{SquatOneRMKg: floatPtr(120)},
			maxReps:    10,
			want:       nil,
		},
		{
			name:       "duration work gets no recommendation",
			ex:         squat,
			assessment: Assessment{SquatOneRMKg: floatPtr(120)},
			maxReps:    0,
			want:       nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recommendWeight(tt.ex, tt.assessment, tt.maxReps)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("recommendWeight() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_oneRMFor(t *testing.T) {
	assessment := Assessment{
		SquatOneRMKg:    floatPtr(120),
		DeadliftOneRMKg: floatPtr(150),
		BenchOneRMKg:    floatPtr(90),
		PressOneRMKg:    floatPtr(60),
	}
	tests := []struct {
		name string
		ex   Exercise
		want *float64
	}{
		{name: "hinge", ex: Exercise{Name: "Barbell Deadlift", Pattern: PatternHinge}, want: floatPtr(150)},
		{name: "vertical push", ex: Exercise{Name: "Barbell Overhead Press", Pattern: PatternVerticalPush}, want: floatPtr(60)},
		{name: "case insensitive", ex: Exercise{Name: "BARBELL Back Squat", Pattern: PatternSquat}, want: floatPtr(120)},
		{name: "unmatched pattern", ex: Exercise{Name: "Barbell Bent-Over Row", Pattern: PatternHorizontalPull}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, oneRMFor(tt.ex, assessment)); diff != "" {
				t.Errorf("oneRMFor() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

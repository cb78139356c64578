package program

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_equipmentSatisfied(t *testing.T) {
	tests := []struct {
		name  string
		ex    Exercise
		owned []string
		want  bool
	}{
		{
			name:  "bodyweight is always available",
			ex:    Exercise{Equipment: []string{EquipmentBodyweight}},
			owned: nil,
			want:  true,
		},
		{
			name:  "any owned option satisfies",
			ex:    Exercise{Equipment: []string{"barbell", "dumbbells"}},
			owned: []string{"dumbbells"},
			want:  true,
		},
		{
			name:  "no overlap",
			ex:    Exercise{Equipment: []string{"barbell"}},
			owned: []string{"dumbbells"},
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := equipmentSatisfied(tt.ex, tt.owned); got != tt.want {
				t.Errorf("equipmentSatisfied() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_resolveEquipment(t *testing.T) {
	ex := Exercise{Equipment: []string{"kettlebell", "dumbbells"}}

	if got := resolveEquipment(ex, []string{"dumbbells", "kettlebell"}); got != "kettlebell" {
		t.Errorf("resolveEquipment() = %q, want the exercise's preferred option %q", got, "kettlebell")
	}
	if got := resolveEquipment(ex, nil); got != EquipmentBodyweight {
		t.Errorf("resolveEquipment() = %q, want %q when nothing is owned", got, EquipmentBodyweight)
	}
}

func Test_buildIndex(t *testing.T) {
	profile := testProfile()
	ability := deriveAbility(Assessment{}, LevelIntermediate)
	idx := buildIndex(testCatalog(), profile, ability)

	t.Run("filters out unavailable equipment", func(t *testing.T) {
		if _, ok := idx.findByName("Box Jump"); ok {
			t.Error("Expected Box Jump to be filtered, no box is owned")
		}
		if _, ok := idx.findByName("Leg Extension"); ok {
			t.Error("Expected Leg Extension to be filtered, no leg machine is owned")
		}
	})

	t.Run("filters out difficulty above the ceiling", func(t *testing.T) {
		if _, ok := idx.findByName("Weighted Pull-Up"); ok {
			t.Error("Expected the advanced pull variant to be filtered for an intermediate")
		}
	})

	t.Run("keeps allowed exercises", func(t *testing.T) {
		for _, name := range []string{"Barbell Back Squat", "Goblet Squat", "Plank", "Kettlebell Swing"} {
			if _, ok := idx.findByName(name); !ok {
				t.Errorf("Expected %s in the index", name)
			}
		}
	})

	t.Run("pattern pools are hardest-first with name tiebreak", func(t *testing.T) {
		var names []string
		for _, ex := range idx.byPattern[PatternSquat] {
			names = append(names, ex.Name)
		}
		want := []string{"Barbell Back Squat", "Bodyweight Squat", "Calf Raise", "Goblet Squat", "Jump Squat"}
		if diff := cmp.Diff(want, names); diff != "" {
			t.Errorf("squat pool mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("warmups and cardio live in their own pools", func(t *testing.T) {
		for _, ex := range idx.warmups {
			if ex.Category != CategoryWarmup {
				t.Errorf("warmup pool contains %s with category %s", ex.Name, ex.Category)
			}
		}
		for _, ex := range idx.cardio {
			if ex.Pattern != PatternCardio {
				t.Errorf("cardio pool contains %s with pattern %s", ex.Name, ex.Pattern)
			}
		}
		for pattern, pool := range idx.byPattern {
			for _, ex := range pool {
				if ex.Category == CategoryWarmup || ex.Pattern == PatternCardio {
					t.Errorf("pattern pool %s contains %s", pattern, ex.Name)
				}
			}
		}
	})
}

func Test_exerciseIndex_findByName(t *testing.T) {
	idx := buildIndex(testCatalog(), testProfile(), deriveAbility(Assessment{}, LevelIntermediate))

	ex, ok := idx.findByName("Barbell Deadlift")
	if !ok {
		t.Fatal("Expected to find Barbell Deadlift")
	}
	if ex.Pattern != PatternHinge {
		t.Errorf("Barbell Deadlift pattern = %s, want %s", ex.Pattern, PatternHinge)
	}

	if _, ok := idx.findByName("Nonexistent Exercise"); ok {
		t.Error("Expected lookup miss for unknown name")
	}
}

package program

import (
	"log/slog"
	"time"

	"github.com/ahelminen/trainweek/internal/errors"
	"github.com/google/uuid"
)

// Sentinel errors returned by program generation.
var (
	ErrEmptyCatalog     = errors.NewSentinel("exercise catalog is empty")
	ErrNoExercisesMatch = errors.NewSentinel("no exercises match the profile's equipment and ability")
	ErrSessionTooShort  = errors.NewSentinel("session length is below the supported minimum")
	ErrEmptyWorkout     = errors.NewSentinel("selection produced a day without main exercises")
)

const minimumSessionMinutes = 15

// generator produces multi-week training programs from the exercise catalog.
// It holds no per-request state and is safe for concurrent use.
type generator struct {
	logger  *slog.Logger
	catalog []Exercise
}

func newGenerator(logger *slog.Logger, catalog []Exercise) (*generator, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &generator{logger: logger, catalog: catalog}, nil
}

// Generate builds a complete four-week program for the profile. The output is
// deterministic for identical inputs; all cross-day state lives in a context
// created here, so concurrent calls never interfere.
func (g *generator) Generate(profile Profile, assessment Assessment) (GeneratedProgram, error) {
	if profile.SessionMinutes < minimumSessionMinutes {
		return GeneratedProgram{}, errors.Wrap(ErrSessionTooShort, "validate profile",
			slog.Int("sessionMinutes", profile.SessionMinutes))
	}

	ability := deriveAbility(assessment, profile.Experience)
	idx := buildIndex(g.catalog, profile, ability)
	if len(idx.byPattern) == 0 {
		return GeneratedProgram{}, errors.Wrap(ErrNoExercisesMatch, "build exercise index",
			slog.Int("catalogSize", len(g.catalog)),
			slog.Any("equipment", profile.Equipment))
	}

	budget := computeBudget(profile.Goal, profile.SessionMinutes)
	plans := planWeek(g.logger, profile.DaysPerWeek)
	totalDays := len(plans)
	ctx := newGenerationContext()

	workouts := make([]GeneratedWorkout, 0, totalDays)
	for i, plan := range plans {
		counts := deriveCounts(budget, profile.Goal, profile.Experience, wantsCardio(totalDays, plan.day))
		selector := newDaySelector(
			g.logger, g.catalog, idx, profile, ability, assessment,
			ctx, plan, counts, budget, totalDays,
		)
		picked := selector.selectDay()
		workout := assembleWorkout(plan, picked, profile.SessionMinutes, dateFor(profile, i))
		if !hasMainWork(workout.Exercises) {
			return GeneratedProgram{}, errors.Wrap(ErrEmptyWorkout, "select day",
				slog.Int("day", plan.day),
				slog.String("focus", string(plan.focus)))
		}
		ctx.recordDay(plan.day, workout.Exercises)
		workouts = append(workouts, workout)

		g.logger.Debug("selected workout",
			slog.Int("day", plan.day),
			slog.String("name", workout.Name),
			slog.Int("exercises", len(workout.Exercises)),
			slog.Float64("strengthMinutes", totalStrengthMinutes(workout.Exercises)))
	}

	return GeneratedProgram{
		ID:            uuid.New(),
		TemplateName:  programTemplateName(profile.Goal, profile.Experience),
		DurationWeeks: programDurationWeeks,
		Workouts:      workouts,
	}, nil
}

func hasMainWork(exercises []GeneratedExercise) bool {
	for _, ex := range exercises {
		if ex.category == CategoryCompound || ex.category == CategoryIsolation || ex.category == CategoryCore {
			return true
		}
	}
	return false
}

// dateFor pins the workout to an explicit calendar date when the profile
// provides one for the slot.
func dateFor(profile Profile, index int) *time.Time {
	if index >= len(profile.Dates) {
		return nil
	}
	date := profile.Dates[index]
	return &date
}

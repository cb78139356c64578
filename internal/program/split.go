package program

import (
	"log/slog"
	"slices"
)

// dayTemplate is the static part of a day plan. The fallback patterns are
// derived at planning time as every strength pattern not already claimed.
type dayTemplate struct {
	primary   []MovementPattern
	secondary []MovementPattern
	focus     focusLabel
	cardio    bool
}

// weekTemplates maps weekly frequency to a fixed day ordering. Three days is a
// full-body split, four days alternates lower and upper emphasis, five days
// gives every main lift its own day plus an athletic day.
var weekTemplates = map[int][]dayTemplate{ //nolint:gochecknoglobals // immutable split table.
	3: {
		{
			primary:   []MovementPattern{PatternSquat, PatternHorizontalPush},
			secondary: []MovementPattern{PatternHorizontalPull, PatternCore},
			focus:     focusFullBody,
			cardio:    true,
		},
		{
			primary:   []MovementPattern{PatternHinge, PatternVerticalPull},
			secondary: []MovementPattern{PatternVerticalPush, PatternRotation},
			focus:     focusFullBody,
			cardio:    true,
		},
		{
			primary:   []MovementPattern{PatternLunge, PatternHorizontalPush},
			secondary: []MovementPattern{PatternHorizontalPull, PatternCarry},
			focus:     focusFullBody,
			cardio:    true,
		},
	},
	4: {
		{
			primary:   []MovementPattern{PatternSquat},
			secondary: []MovementPattern{PatternLunge, PatternCore},
			focus:     focusSquat,
			cardio:    false,
		},
		{
			primary:   []MovementPattern{PatternHorizontalPush, PatternVerticalPush},
			secondary: []MovementPattern{PatternHorizontalPull, PatternRotation},
			focus:     focusUpperPush,
			cardio:    true,
		},
		{
			primary:   []MovementPattern{PatternHinge},
			secondary: []MovementPattern{PatternLunge, PatternCarry},
			focus:     focusHinge,
			cardio:    false,
		},
		{
			primary:   []MovementPattern{PatternVerticalPull, PatternHorizontalPull},
			secondary: []MovementPattern{PatternHorizontalPush, PatternCore},
			focus:     focusUpperPull,
			cardio:    true,
		},
	},
	5: {
		{
			primary:   []MovementPattern{PatternSquat},
			secondary: []MovementPattern{PatternLunge, PatternCore},
			focus:     focusSquat,
			cardio:    false,
		},
		{
			primary:   []MovementPattern{PatternHorizontalPush, PatternVerticalPush},
			secondary: []MovementPattern{PatternRotation},
			focus:     focusUpperPush,
			cardio:    false,
		},
		{
			primary:   []MovementPattern{PatternHinge},
			secondary: []MovementPattern{PatternCarry},
			focus:     focusHinge,
			cardio:    false,
		},
		{
			primary:   []MovementPattern{PatternVerticalPull, PatternHorizontalPull},
			secondary: []MovementPattern{PatternCore},
			focus:     focusUpperPull,
			cardio:    true,
		},
		{
			primary:   []MovementPattern{PatternLunge, PatternCarry},
			secondary: []MovementPattern{PatternRotation},
			focus:     focusAthletic,
			cardio:    true,
		},
	},
}

// planWeek expands the frequency into concrete day plans. Unsupported
// frequencies are clamped to three days with a warning instead of failing the
// whole generation.
func planWeek(logger *slog.Logger, daysPerWeek int) []dayPlan {
	frequency := daysPerWeek
	if _, ok := weekTemplates[frequency]; !ok {
		logger.Warn("unsupported weekly frequency, using default",
			slog.Int("requested", daysPerWeek),
			slog.Int("using", defaultWeeklyFrequency))
		frequency = defaultWeeklyFrequency
	}

	templates := weekTemplates[frequency]
	plans := make([]dayPlan, 0, len(templates))
	for i, tmpl := range templates {
		plans = append(plans, dayPlan{
			day:       i + 1,
			primary:   tmpl.primary,
			secondary: tmpl.secondary,
			fallback:  fallbackPatterns(tmpl.primary, tmpl.secondary),
			focus:     tmpl.focus,
		})
	}
	return plans
}

// fallbackPatterns returns every strength pattern not already claimed by the
// day, preserving the canonical pattern order.
func fallbackPatterns(primary, secondary []MovementPattern) []MovementPattern {
	var rest []MovementPattern
	for _, pattern := range strengthPatterns {
		if slices.Contains(primary, pattern) || slices.Contains(secondary, pattern) {
			continue
		}
		rest = append(rest, pattern)
	}
	return rest
}

// wantsCardio reports whether the template reserves a cardio slot for the day.
func wantsCardio(daysPerWeek, day int) bool {
	templates, ok := weekTemplates[daysPerWeek]
	if !ok {
		templates = weekTemplates[defaultWeeklyFrequency]
	}
	if day < 1 || day > len(templates) {
		return false
	}
	return templates[day-1].cardio
}

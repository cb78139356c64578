package program

// abilityModel maps each movement pattern to the hardest difficulty tier the
// user is allowed to train. It is derived once per generation request and
// read-only afterwards.
type abilityModel map[MovementPattern]Level

// allows reports whether the given difficulty is within the user's ceiling for
// the pattern.
func (a abilityModel) allows(pattern MovementPattern, difficulty Level) bool {
	return levelRank(difficulty) <= levelRank(a[pattern])
}

// abilityRule gates one pattern's difficulty ceiling on a single assessment
// score. Patterns without a score, or users without the measurement, fall back
// to the declared experience level.
type abilityRule struct {
	patterns       []MovementPattern
	score          func(Assessment) *float64
	intermediateAt float64
	advancedAt     float64
}

func intScore(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// abilityRules encodes the fixed per-pattern performance thresholds.
var abilityRules = []abilityRule{ //nolint:gochecknoglobals // immutable threshold table.
	{
		patterns:       []MovementPattern{PatternHorizontalPush, PatternVerticalPush},
		score:          func(a Assessment) *float64 { return intScore(a.PushUps) },
		intermediateAt: 15,
		advancedAt:     30,
	},
	{
		patterns:       []MovementPattern{PatternVerticalPull, PatternHorizontalPull},
		score:          func(a Assessment) *float64 { return intScore(a.PullUps) },
		intermediateAt: 5,
		advancedAt:     12,
	},
	{
		patterns:       []MovementPattern{PatternSquat, PatternLunge},
		score:          func(a Assessment) *float64 { return intScore(a.BodyweightSquats) },
		intermediateAt: 20,
		advancedAt:     40,
	},
	{
		patterns:       []MovementPattern{PatternCore, PatternRotation},
		score:          func(a Assessment) *float64 { return intScore(a.PlankSeconds) },
		intermediateAt: 60,
		advancedAt:     120,
	},
	{
		patterns:       []MovementPattern{PatternCarry},
		score:          func(a Assessment) *float64 { return intScore(a.DeadHangSeconds) },
		intermediateAt: 30,
		advancedAt:     75,
	},
	{
		patterns:       []MovementPattern{PatternHinge},
		score:          func(a Assessment) *float64 { return a.DeadliftOneRMKg },
		intermediateAt: 80,
		advancedAt:     140,
	},
}

// deriveAbility converts raw assessment scores into per-pattern difficulty
// ceilings. Deterministic and side-effect free.
func deriveAbility(assessment Assessment, experience Level) abilityModel {
	model := make(abilityModel, len(strengthPatterns)+1)
	for _, pattern := range strengthPatterns {
		model[pattern] = experience
	}
	model[PatternCardio] = experience

	for _, rule := range abilityRules {
		score := rule.score(assessment)
		if score == nil {
			continue
		}
		level := LevelBeginner
		switch {
		case *score >= rule.advancedAt:
			level = LevelAdvanced
		case *score >= rule.intermediateAt:
			level = LevelIntermediate
		}
		for _, pattern := range rule.patterns {
			model[pattern] = level
		}
	}

	return model
}

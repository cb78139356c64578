package program

import (
	"log/slog"
	"slices"
	"sort"
)

// generationContext tracks reuse and recovery state across the days of one
// generation request. A fresh context is created per request so concurrent
// generations never share state.
type generationContext struct {
	exerciseLastUsed   map[string]int
	patternLastUsed    map[MovementPattern]int
	patternUseCount    map[MovementPattern]int
	weeklyUsed         map[string]bool
	dayOneExercises    map[string]bool
	previousDayMuscles map[string]bool
}

func newGenerationContext() *generationContext {
	return &generationContext{
		exerciseLastUsed:   make(map[string]int),
		patternLastUsed:    make(map[MovementPattern]int),
		patternUseCount:    make(map[MovementPattern]int),
		weeklyUsed:         make(map[string]bool),
		dayOneExercises:    make(map[string]bool),
		previousDayMuscles: make(map[string]bool),
	}
}

// recordDay folds a finished day back into the context before the next day is
// selected. Warmups do not count toward recovery tracking.
func (c *generationContext) recordDay(day int, exercises []GeneratedExercise) {
	muscles := make(map[string]bool)
	for _, ex := range exercises {
		if ex.category == CategoryWarmup {
			continue
		}
		c.exerciseLastUsed[ex.Name] = day
		if ex.category == CategoryCompound {
			c.patternLastUsed[ex.pattern] = day
			c.patternUseCount[ex.pattern]++
		}
		if ex.category == CategoryPower || ex.category == CategoryCore {
			c.weeklyUsed[ex.Name] = true
		}
		if day == 1 {
			c.dayOneExercises[ex.Name] = true
		}
		for _, muscle := range ex.muscles {
			muscles[muscle] = true
		}
	}
	c.previousDayMuscles = muscles
}

// daySelector selects the exercises for a single day. It is created fresh per
// day and accumulates picks until the day's blocks are filled.
type daySelector struct {
	logger     *slog.Logger
	catalog    []Exercise
	idx        exerciseIndex
	profile    Profile
	ability    abilityModel
	assessment Assessment
	ctx        *generationContext
	plan       dayPlan
	counts     exerciseCounts
	budget     timeBudget
	totalDays  int

	picked       []GeneratedExercise
	pickedNames  map[string]bool
	strengthUsed float64
}

func newDaySelector(
	logger *slog.Logger,
	catalog []Exercise,
	idx exerciseIndex,
	profile Profile,
	ability abilityModel,
	assessment Assessment,
	ctx *generationContext,
	plan dayPlan,
	counts exerciseCounts,
	budget timeBudget,
	totalDays int,
) *daySelector {
	return &daySelector{
		logger:       logger,
		catalog:      catalog,
		idx:          idx,
		profile:      profile,
		ability:      ability,
		assessment:   assessment,
		ctx:          ctx,
		plan:         plan,
		counts:       counts,
		budget:       budget,
		totalDays:    totalDays,
		picked:       nil,
		pickedNames:  make(map[string]bool),
		strengthUsed: 0,
	}
}

// canUse is the recovery predicate. It encodes the reuse spacing rules:
// compounds need two full days between repeats of the same exercise or
// pattern, power and core drills appear at most once per week, and isolation
// or cardio work avoids muscles trained the previous day. The final day also
// avoids everything from day one because the next week starts there.
func (s *daySelector) canUse(ex Exercise, day int) bool {
	if s.pickedNames[ex.Name] {
		return false
	}
	if day == s.totalDays && s.ctx.dayOneExercises[ex.Name] {
		return false
	}

	switch ex.Category {
	case CategoryCompound:
		if last, ok := s.ctx.exerciseLastUsed[ex.Name]; ok && day-last < minimumCompoundSpacing {
			return false
		}
		if last, ok := s.ctx.patternLastUsed[ex.Pattern]; ok && day-last < minimumCompoundSpacing {
			return false
		}
	case CategoryPower, CategoryCore:
		if s.ctx.weeklyUsed[ex.Name] {
			return false
		}
	case CategoryIsolation, CategoryWarmup:
		if last, ok := s.ctx.exerciseLastUsed[ex.Name]; ok && day-last < minimumCompoundSpacing {
			return false
		}
		if ex.Category == CategoryIsolation && s.overlapsPreviousDay(ex) {
			return false
		}
	}
	if ex.Pattern == PatternCardio {
		if last, ok := s.ctx.exerciseLastUsed[ex.Name]; ok && day-last < minimumCompoundSpacing {
			return false
		}
		if s.overlapsPreviousDay(ex) {
			return false
		}
	}
	return true
}

func (s *daySelector) overlapsPreviousDay(ex Exercise) bool {
	for _, muscle := range ex.PrimaryMuscles {
		if s.ctx.previousDayMuscles[muscle] {
			return true
		}
	}
	return false
}

func (s *daySelector) add(ex GeneratedExercise) {
	s.picked = append(s.picked, ex)
	s.pickedNames[ex.Name] = true
}

// addStrength appends a strength-block pick if it still fits the block budget.
func (s *daySelector) addStrength(ex Exercise, primary bool) bool {
	prescribed := prescribe(ex, s.profile.Goal, primary, s.profile.Equipment)
	prescribed.WeightKg = recommendWeight(ex, s.assessment, prescribed.MaxReps)
	cost := minutesWithTransition(prescribed)
	if s.strengthUsed+cost > s.budget.strengthMinutes+strengthFillTolerance {
		return false
	}
	s.strengthUsed += cost
	s.add(prescribed)
	return true
}

// selectDay runs all selection phases and returns the day's exercises in
// selection order. Ordering for presentation happens in the assembler.
func (s *daySelector) selectDay() []GeneratedExercise {
	s.selectWarmups()
	s.selectPower()
	s.selectStrength()
	s.selectCardio()
	return s.picked
}

// selectWarmups fills the warmup block from the focus-preferred drills first,
// then tops up from the general pool. The top-up start index rotates with the
// day so consecutive days vary.
func (s *daySelector) selectWarmups() {
	want := s.counts.warmups
	for _, name := range warmupNamesByFocus[s.plan.focus] {
		if want <= 0 {
			break
		}
		for _, ex := range s.idx.warmups {
			if ex.Name == name && !s.pickedNames[ex.Name] {
				s.add(prescribeWarmup(ex, s.profile.Equipment))
				want--
				break
			}
		}
	}
	if want > 0 && len(s.idx.warmups) > 0 {
		start := (s.plan.day - 1) % len(s.idx.warmups)
		for i := range s.idx.warmups {
			if want <= 0 {
				break
			}
			ex := s.idx.warmups[(start+i)%len(s.idx.warmups)]
			if s.pickedNames[ex.Name] {
				continue
			}
			s.add(prescribeWarmup(ex, s.profile.Equipment))
			want--
		}
	}
	s.evenOutWarmups()
}

// evenOutWarmups borrows one extra warmup when the count is odd so the block
// pairs two by two. When the pool has nothing left the last warmup will stand
// alone.
func (s *daySelector) evenOutWarmups() {
	count := 0
	for _, ex := range s.picked {
		if ex.category == CategoryWarmup {
			count++
		}
	}
	if count%2 == 0 {
		return
	}
	for _, ex := range s.idx.warmups {
		if s.pickedNames[ex.Name] {
			continue
		}
		s.add(prescribeWarmup(ex, s.profile.Equipment))
		return
	}
}

// selectPower fills the power block, preferring drills matched to the day's
// focus before falling back to any available power exercise.
func (s *daySelector) selectPower() {
	want := s.counts.power
	for _, name := range powerNamesByFocus[s.plan.focus] {
		if want <= 0 {
			return
		}
		ex, ok := s.idx.findByName(name)
		if !ok || ex.Category != CategoryPower || !s.canUse(ex, s.plan.day) {
			continue
		}
		s.add(s.prescribePower(ex))
		want--
	}
	if want <= 0 {
		return
	}
	for _, pattern := range strengthPatterns {
		for _, ex := range s.idx.byPattern[pattern] {
			if want <= 0 {
				return
			}
			if ex.Category != CategoryPower || !s.canUse(ex, s.plan.day) {
				continue
			}
			s.add(s.prescribePower(ex))
			want--
		}
	}
}

func (s *daySelector) prescribePower(ex Exercise) GeneratedExercise {
	return prescribe(ex, s.profile.Goal, false, s.profile.Equipment)
}

// selectStrength runs the main block phases in order: required foundational
// lifts, the single core pick for core-emphasis days, remaining primary
// compounds, secondary compounds, one balancing core or trunk exercise,
// scored accessories, and finally a compound fill when the block budget is
// left more than a few minutes short.
func (s *daySelector) selectStrength() {
	primariesLeft := s.counts.primaryCompounds - s.selectRequired()
	if primariesLeft < 0 {
		primariesLeft = 0
	}
	s.selectCoreSingle()
	s.fillCompounds(s.plan.primary, true, primariesLeft)
	s.fillCompounds(s.plan.secondary, false, s.counts.secondaryCompounds)
	s.selectBalancingCore()
	s.selectAccessories()
	s.fillShortfall()
}

// selectRequired injects the experience tier's foundational lifts whose
// pattern the day emphasizes. Required lifts are never starved: they bypass
// the slot and budget gates and consume primary slots afterwards. Candidates
// come from the full catalog so a lift one tier above the derived ceiling
// still qualifies.
func (s *daySelector) selectRequired() int {
	added := 0
	for _, req := range requiredMovements[s.profile.Experience] {
		if !slices.Contains(s.plan.primary, req.pattern) {
			continue
		}
		ex, ok := s.findRequired(req)
		if !ok || !s.canUse(ex, s.plan.day) {
			continue
		}
		prescribed := prescribe(ex, s.profile.Goal, true, s.profile.Equipment)
		prescribed.WeightKg = recommendWeight(ex, s.assessment, prescribed.MaxReps)
		s.strengthUsed += minutesWithTransition(prescribed)
		s.add(prescribed)
		added++
	}
	return added
}

// selectCoreSingle adds the day's one core exercise when the template puts the
// core pattern in the primary or secondary emphasis.
func (s *daySelector) selectCoreSingle() {
	if !slices.Contains(s.plan.primary, PatternCore) && !slices.Contains(s.plan.secondary, PatternCore) {
		return
	}
	for _, ex := range s.idx.byPattern[PatternCore] {
		if ex.Category != CategoryCore || !s.canUse(ex, s.plan.day) {
			continue
		}
		if s.addStrength(ex, false) {
			return
		}
	}
}

// findRequired searches the catalog by exact name. Required lifts may sit one
// difficulty tier above the derived ceiling for their pattern.
func (s *daySelector) findRequired(req requiredMovement) (Exercise, bool) {
	ceiling := levelRank(s.ability[req.pattern]) + 1
	for _, name := range req.candidates {
		for _, ex := range s.catalog {
			if ex.Name != name {
				continue
			}
			if !equipmentSatisfied(ex, s.profile.Equipment) {
				continue
			}
			if levelRank(ex.Difficulty) > ceiling {
				continue
			}
			return ex, true
		}
	}
	return Exercise{}, false
}

// fillCompounds picks up to slots compounds from the given patterns,
// hardest-first within each pattern, rotating the pattern start with the day.
func (s *daySelector) fillCompounds(patterns []MovementPattern, primary bool, slots int) int {
	if slots <= 0 || len(patterns) == 0 {
		return 0
	}
	added := 0
	start := (s.plan.day - 1) % len(patterns)
	for i := range patterns {
		if added >= slots {
			break
		}
		pattern := patterns[(start+i)%len(patterns)]
		if s.patternPickedToday(pattern, CategoryCompound) {
			continue
		}
		for _, ex := range s.idx.byPattern[pattern] {
			if ex.Category != CategoryCompound || !s.canUse(ex, s.plan.day) {
				continue
			}
			if s.addStrength(ex, primary) {
				added++
			}
			break
		}
	}
	return added
}

func (s *daySelector) patternPickedToday(pattern MovementPattern, category Category) bool {
	for _, ex := range s.picked {
		if ex.pattern == pattern && ex.category == category {
			return true
		}
	}
	return false
}

// selectBalancingCore adds at most one core or trunk exercise opposing the
// day's focus.
func (s *daySelector) selectBalancingCore() {
	pattern, ok := antiMovementByFocus[s.plan.focus]
	if !ok {
		pattern = PatternCore
	}
	for _, ex := range s.idx.byPattern[pattern] {
		if ex.Category != CategoryCore && ex.Category != CategoryCompound {
			continue
		}
		if !s.canUse(ex, s.plan.day) {
			continue
		}
		if s.addStrength(ex, false) {
			return
		}
	}
}

// accessoryScore rates an isolation candidate against what the day has
// already trained. Untouched muscles score highest, antagonists of trained
// muscles next, and re-hitting a trained muscle lowest. The best muscle wins.
func (s *daySelector) accessoryScore(ex Exercise, covered map[string]bool) int {
	const (
		scoreNewMuscle  = 100
		scoreAntagonist = 60
		scoreRepeat     = 40
	)
	best := 0
	for _, muscle := range ex.PrimaryMuscles {
		score := scoreRepeat
		switch {
		case !covered[muscle] && !covered[antagonistMuscles[muscle]]:
			score = scoreNewMuscle
		case !covered[muscle]:
			score = scoreAntagonist
		}
		if score > best {
			best = score
		}
	}
	return best
}

// classifyTheme derives the day's theme from the compound patterns chosen so
// far. A day whose compounds all push, all pull, or all load the legs gets the
// matching theme; any other combination counts as mixed.
func classifyTheme(patterns []MovementPattern) dayTheme {
	var push, pull, leg, other bool
	for _, pattern := range patterns {
		switch {
		case slices.Contains(pushPatterns, pattern):
			push = true
		case slices.Contains(pullPatterns, pattern):
			pull = true
		case slices.Contains(legPatterns, pattern):
			leg = true
		default:
			other = true
		}
	}
	switch {
	case push && !pull && !leg && !other:
		return themePush
	case pull && !push && !leg && !other:
		return themePull
	case leg && !push && !pull && !other:
		return themeLeg
	default:
		return themeMixed
	}
}

// selectAccessories fills remaining main-block room with scored isolation
// work, up to two slots beyond the compound count. Candidates are restricted
// to the patterns matching the day's theme so a leg day does not collect
// upper-body finishers.
func (s *daySelector) selectAccessories() {
	mainTarget := s.countStrengthPicks() + accessoryOverheadSlots

	covered := make(map[string]bool)
	var compoundPatterns []MovementPattern
	for _, ex := range s.picked {
		if ex.category == CategoryWarmup {
			continue
		}
		if ex.category == CategoryCompound {
			compoundPatterns = append(compoundPatterns, ex.pattern)
		}
		for _, muscle := range ex.muscles {
			covered[muscle] = true
		}
	}

	type scored struct {
		ex    Exercise
		score int
	}
	var candidates []scored
	for _, pattern := range accessoryPatternsByTheme[classifyTheme(compoundPatterns)] {
		for _, ex := range s.idx.byPattern[pattern] {
			if ex.Category != CategoryIsolation || !s.canUse(ex, s.plan.day) {
				continue
			}
			candidates = append(candidates, scored{ex: ex, score: s.accessoryScore(ex, covered)})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].ex.Name < candidates[j].ex.Name
	})

	for _, candidate := range candidates {
		if s.countStrengthPicks() >= mainTarget {
			return
		}
		// Re-check, earlier accessories may have claimed the slot.
		if !s.canUse(candidate.ex, s.plan.day) {
			continue
		}
		s.addStrength(candidate.ex, false)
	}
}

func (s *daySelector) countStrengthPicks() int {
	count := 0
	for _, ex := range s.picked {
		if ex.category == CategoryCompound || ex.category == CategoryIsolation || ex.category == CategoryCore {
			count++
		}
	}
	return count
}

// fillShortfall tops up the main block with compound work when three or more
// minutes of the block budget would otherwise go unused. Once triggered, the
// fill keeps going until the block is within the fill tolerance of its budget
// or no admissible compound fits.
func (s *daySelector) fillShortfall() {
	if s.budget.strengthMinutes-s.strengthUsed < strengthShortfallFloor {
		return
	}
	for s.budget.strengthMinutes-s.strengthUsed > strengthFillTolerance {
		if !s.addShortfallCompound() {
			return
		}
	}
}

// addShortfallCompound adds one compound from the pattern used least this
// week, today's picks included. Ties keep the canonical pattern order.
func (s *daySelector) addShortfallCompound() bool {
	patterns := make([]MovementPattern, len(strengthPatterns))
	copy(patterns, strengthPatterns)
	sort.SliceStable(patterns, func(i, j int) bool {
		return s.patternUsage(patterns[i]) < s.patternUsage(patterns[j])
	})

	for _, pattern := range patterns {
		if s.patternPickedToday(pattern, CategoryCompound) {
			continue
		}
		for _, ex := range s.idx.byPattern[pattern] {
			if ex.Category != CategoryCompound || !s.canUse(ex, s.plan.day) {
				continue
			}
			if s.addStrength(ex, false) {
				return true
			}
		}
	}
	return false
}

// patternUsage counts this week's compound picks for a pattern, today included.
func (s *daySelector) patternUsage(pattern MovementPattern) int {
	count := s.ctx.patternUseCount[pattern]
	for _, ex := range s.picked {
		if ex.category == CategoryCompound && ex.pattern == pattern {
			count++
		}
	}
	return count
}

// selectCardio appends the cardio finisher sized to the remaining cardio
// budget. The pool start index rotates with the day.
func (s *daySelector) selectCardio() {
	if s.counts.cardio <= 0 || len(s.idx.cardio) == 0 {
		return
	}
	if !wantsCardio(s.totalDays, s.plan.day) {
		return
	}
	start := (s.plan.day - 1) % len(s.idx.cardio)
	for i := range s.idx.cardio {
		ex := s.idx.cardio[(start+i)%len(s.idx.cardio)]
		if !s.canUse(ex, s.plan.day) {
			continue
		}
		s.add(prescribeCardio(ex, s.profile.Equipment, s.budget.cardioMinutes))
		return
	}
}

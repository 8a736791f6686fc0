package planner

import (
	"math"
	"strings"
	"testing"

	"betonfit/coach-app/internal/domain"
)

func fullGymProfile(goal domain.Goal, minutes int) domain.Profile {
	return domain.Profile{
		Goal:           goal,
		EquipLevel:     domain.EquipFull,
		Level:          domain.LevelIntermediaire,
		TimePerSession: minutes,
	}
}

func TestSelectExercisesFillsBudget(t *testing.T) {
	for _, tag := range []FocusTag{FocusBasQuads, FocusHautPush, FocusHautPull, FocusBasIschios, FocusFull} {
		p := fullGymProfile(domain.GoalHypertrophy, 60)
		exercises := SelectExercises(tag, p, 60)
		if len(exercises) == 0 {
			t.Fatalf("%s: empty session", tag)
		}
		total := EstimateSessionMinutes(p.Goal, exercises)
		if math.Abs(total-60) > 6 {
			t.Errorf("%s: estimated %.1f min, want 60±6", tag, total)
		}
	}
}

func TestSelectExercisesBlockOrder(t *testing.T) {
	p := fullGymProfile(domain.GoalHypertrophy, 60)
	exercises := SelectExercises(FocusBasQuads, p, 60)

	if exercises[0].Block != domain.BlockEchauffement {
		t.Errorf("first block = %q, want echauffement", exercises[0].Block)
	}
	lastRank := -1
	for _, ex := range exercises {
		rank := domain.BlockRank(ex.Block)
		if rank < lastRank {
			t.Fatalf("blocks out of order: %v", exercises)
		}
		lastRank = rank
	}
}

// A bodyweight-only user never gets an exercise that still needs a bar,
// bench or machine; everything resolves to the bodyweight variant.
func TestSelectExercisesNoEquipment(t *testing.T) {
	p := domain.Profile{
		Goal:           domain.GoalGeneral,
		EquipLevel:     domain.EquipNone,
		Level:          domain.LevelIntermediaire,
		TimePerSession: 45,
	}
	for tag := range map[FocusTag]struct{}{FocusBasQuads: {}, FocusHautPush: {}, FocusHautPull: {}, FocusFull: {}, FocusCoreGainage: {}} {
		for _, ex := range SelectExercises(tag, p, 45) {
			if ex.Equipment != "poids du corps" {
				t.Errorf("%s: %q kept equipment %q despite equipLevel=none", tag, ex.Name, ex.Equipment)
			}
		}
	}
}

// Contraindicated movements are substituted, never selected as-is.
func TestSelectExercisesBackInjury(t *testing.T) {
	p := fullGymProfile(domain.GoalHypertrophy, 60)
	p.Injuries.Back = true

	banned := []string{"soulevé de terre", "rowing barre", "back squat", "swing"}
	for _, tag := range []FocusTag{FocusBasIschios, FocusHautPull, FocusBasQuads} {
		for _, ex := range SelectExercises(tag, p, 60) {
			folded := Fold(ex.Name)
			for _, b := range banned {
				if strings.Contains(folded, Fold(b)) {
					t.Errorf("%s: contraindicated %q selected as-is", tag, ex.Name)
				}
			}
		}
	}
}

func TestSelectExercisesDislikes(t *testing.T) {
	p := fullGymProfile(domain.GoalHypertrophy, 60)
	p.Dislikes = []string{"squat"}

	for _, ex := range SelectExercises(FocusBasQuads, p, 60) {
		if strings.Contains(Fold(ex.Name), "squat") {
			t.Errorf("disliked exercise selected: %q", ex.Name)
		}
	}
}

func TestSelectExercisesLikesFirst(t *testing.T) {
	p := fullGymProfile(domain.GoalHypertrophy, 60)
	p.Likes = []string{"presse"}

	exercises := SelectExercises(FocusBasQuads, p, 60)
	// exercises[0] is the warm-up; the first working exercise must be the
	// liked one.
	if len(exercises) < 2 || !strings.Contains(Fold(exercises[1].Name), "presse") {
		t.Errorf("liked exercise not first, got %q", exercises[1].Name)
	}
}

// Short sessions must not blow past the budget: oversized items are skipped
// rather than appended.
func TestSelectExercisesShortSession(t *testing.T) {
	p := fullGymProfile(domain.GoalStrength, 25)
	exercises := SelectExercises(FocusBasQuads, p, 25)
	total := EstimateSessionMinutes(p.Goal, exercises)
	if math.Abs(total-25) > 6 {
		t.Errorf("estimated %.1f min, want 25±6", total)
	}
}

// Long sessions keep filling instead of stopping at the three-compound
// early-out, so the estimate still lands near the budget.
func TestSelectExercisesLongSession(t *testing.T) {
	p := fullGymProfile(domain.GoalHypertrophy, 75)
	exercises := SelectExercises(FocusBasQuads, p, 75)
	total := EstimateSessionMinutes(p.Goal, exercises)
	if math.Abs(total-75) > 6 {
		t.Errorf("estimated %.1f min, want 75±6", total)
	}
}

// Several pool items share a bodyweight fallback; a bodyweight-only user must
// still get each movement at most once per session.
func TestSelectExercisesNoDuplicateNames(t *testing.T) {
	injured := domain.Profile{
		Goal:           domain.GoalGeneral,
		EquipLevel:     domain.EquipNone,
		Level:          domain.LevelIntermediaire,
		TimePerSession: 45,
	}
	injured.Injuries.Knee = true

	profiles := []domain.Profile{
		{Goal: domain.GoalHypertrophy, EquipLevel: domain.EquipNone, Level: domain.LevelIntermediaire, TimePerSession: 60},
		injured,
	}
	tags := []FocusTag{FocusBasQuads, FocusBasIschios, FocusHautPush, FocusHautPull, FocusHautMix, FocusBasMix, FocusFull}
	for _, p := range profiles {
		for _, tag := range tags {
			seen := map[string]bool{}
			for _, ex := range SelectExercises(tag, p, p.TimePerSession) {
				if seen[ex.Name] {
					t.Errorf("%s: %q appears twice in one session", tag, ex.Name)
				}
				seen[ex.Name] = true
			}
		}
	}
}

// The cardio, mobility and gainage pools are smaller than the strength pools;
// long budgets are met by scaling working sets, not left half empty.
func TestSelectExercisesScalesSmallPools(t *testing.T) {
	p := fullGymProfile(domain.GoalEndurance, 80)
	for _, tag := range []FocusTag{FocusCardio, FocusMobilite, FocusCoreGainage, FocusFull} {
		exercises := SelectExercises(tag, p, 80)
		total := EstimateSessionMinutes(p.Goal, exercises)
		if math.Abs(total-80) > 6 {
			t.Errorf("%s: estimated %.1f min, want 80±6", tag, total)
		}
		for _, ex := range exercises {
			if ex.Block != domain.BlockEchauffement && ex.Sets > 6 {
				t.Errorf("%s: %q scaled to %d sets", tag, ex.Name, ex.Sets)
			}
		}
	}
}

// A shoulder-injured user must never receive an overhead press or one of the
// pike variants through a fallback substitution.
func TestSelectExercisesShoulderSafeFallbacks(t *testing.T) {
	p := fullGymProfile(domain.GoalHypertrophy, 60)
	p.Injuries.Shoulder = true

	banned := []string{"pike", "piquees", "militaire", "dips"}
	for _, tag := range []FocusTag{FocusHautPush, FocusHautMix, FocusFull} {
		for _, ex := range SelectExercises(tag, p, 60) {
			folded := Fold(ex.Name)
			for _, b := range banned {
				if strings.Contains(folded, b) {
					t.Errorf("%s: shoulder-contraindicated %q selected", tag, ex.Name)
				}
			}
		}
	}
}

// Prescription defaults come from the goal; beginners drop a set.
func TestSelectExercisesPrescription(t *testing.T) {
	p := fullGymProfile(domain.GoalHypertrophy, 60)
	exercises := SelectExercises(FocusBasQuads, p, 60)
	var main domain.Exercise
	for _, ex := range exercises {
		if ex.Block == domain.BlockPrincipal {
			main = ex
			break
		}
	}
	if main.Sets != 4 || main.Reps != "8-12" || main.Rest != "90 s" {
		t.Errorf("hypertrophy main prescription = %d x %s rest %s", main.Sets, main.Reps, main.Rest)
	}

	p.Level = domain.LevelDebutant
	for _, ex := range SelectExercises(FocusBasQuads, p, 60) {
		if ex.Block == domain.BlockPrincipal {
			if ex.Sets != 3 {
				t.Errorf("beginner main sets = %d, want 3", ex.Sets)
			}
			break
		}
	}
}

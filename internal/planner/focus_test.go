package planner

import (
	"reflect"
	"testing"

	"betonfit/coach-app/internal/domain"
)

func TestPlanFocusGoalSplits(t *testing.T) {
	cases := []struct {
		n    int
		goal domain.Goal
		want []FocusTag
	}{
		{4, domain.GoalHypertrophy, []FocusTag{FocusBasQuads, FocusHautPush, FocusBasIschios, FocusHautPull}},
		{3, domain.GoalFatloss, []FocusTag{FocusFull, FocusHautMix, FocusBasQuads}},
		{1, domain.GoalStrength, []FocusTag{FocusFull}},
		{2, domain.GoalEndurance, []FocusTag{FocusCardio, FocusFull}},
	}
	for _, tc := range cases {
		got := PlanFocus(tc.n, tc.goal, "")
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("PlanFocus(%d, %s) = %v, want %v", tc.n, tc.goal, got, tc.want)
		}
	}
}

func TestPlanFocusMuscleOverride(t *testing.T) {
	got := PlanFocus(3, domain.GoalGeneral, domain.FocusShoulders)
	want := []FocusTag{FocusHautPush, FocusHautPull, FocusHautMix}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("shoulders x3 = %v, want %v", got, want)
	}

	if got := PlanFocus(1, domain.GoalFatloss, domain.FocusShoulders); got[0] != FocusHautPush {
		t.Errorf("shoulders x1 = %v, want [haut_push]", got)
	}

	// The override applies whatever the goal is.
	withGoal := PlanFocus(3, domain.GoalHypertrophy, domain.FocusShoulders)
	if !reflect.DeepEqual(withGoal, want) {
		t.Errorf("shoulders override under hypertrophy = %v, want %v", withGoal, want)
	}
}

// Sequences shorter than the session count repeat cyclically.
func TestPlanFocusCyclicReuse(t *testing.T) {
	got := PlanFocus(6, domain.GoalMobility, "")
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	// Mobility's largest row has 4 entries; positions 4 and 5 wrap around.
	if got[4] != got[0] || got[5] != got[1] {
		t.Errorf("expected cyclic reuse, got %v", got)
	}
}

// An unknown goal behaves like the general split rather than panicking.
func TestPlanFocusUnknownGoal(t *testing.T) {
	got := PlanFocus(3, domain.Goal("crossfit"), "")
	want := PlanFocus(3, domain.GoalGeneral, "")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unknown goal = %v, want general split %v", got, want)
	}
}

func TestPlanFocusDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		a := PlanFocus(5, domain.GoalHypertrophy, "")
		b := PlanFocus(5, domain.GoalHypertrophy, "")
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("PlanFocus not deterministic: %v vs %v", a, b)
		}
	}
}

func TestFocusTitles(t *testing.T) {
	if got := FocusHautPush.Title(); got != "Haut (poussée)" {
		t.Errorf("haut_push title = %q", got)
	}
	if got := FocusBasIschios.Title(); got != "Bas (ischios & fessiers)" {
		t.Errorf("bas_iscios_glutes title = %q", got)
	}
}

func TestFocusSessionType(t *testing.T) {
	if got := FocusCardio.SessionType(domain.GoalFatloss); got != domain.SessionHIIT {
		t.Errorf("fatloss metcon type = %q, want hiit", got)
	}
	if got := FocusCardio.SessionType(domain.GoalEndurance); got != domain.SessionCardio {
		t.Errorf("endurance metcon type = %q, want cardio", got)
	}
	if got := FocusMobilite.SessionType(domain.GoalMobility); got != domain.SessionMobilite {
		t.Errorf("mobility type = %q", got)
	}
	if got := FocusBasQuads.SessionType(domain.GoalHypertrophy); got != domain.SessionMuscu {
		t.Errorf("quads type = %q, want muscu", got)
	}
}

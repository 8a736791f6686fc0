package planner

import (
	"math"
	"regexp"
	"strings"
	"testing"
	"time"

	"betonfit/coach-app/internal/domain"
)

// Wednesday 2024-06-05; the following Monday is 2024-06-10.
var testStart = time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC)

func testIntake(objective, availability string) domain.Intake {
	return domain.Intake{
		Email:        "test@example.com",
		Objective:    objective,
		Availability: availability,
		EquipText:    "je m'entraîne à la salle",
		LevelText:    "intermédiaire",
	}
}

func TestPlanProgrammeHypertrophyFourSessions(t *testing.T) {
	profile := NormalizeIntake(testIntake("prise de masse musculaire", "4 séances par semaine"))
	sessions := PlanProgramme(profile, Options{StartDate: testStart})

	if len(sessions) != 4 {
		t.Fatalf("got %d sessions, want 4", len(sessions))
	}
	wantTitles := []string{
		"Séance A — Bas (quadriceps)",
		"Séance B — Haut (poussée)",
		"Séance C — Bas (ischios & fessiers)",
		"Séance D — Haut (tirage)",
	}
	wantDates := []string{"2024-06-10", "2024-06-11", "2024-06-13", "2024-06-14"}
	for i, s := range sessions {
		if s.Title != wantTitles[i] {
			t.Errorf("session %d title = %q, want %q", i, s.Title, wantTitles[i])
		}
		if s.Date != wantDates[i] {
			t.Errorf("session %d date = %q, want %q", i, s.Date, wantDates[i])
		}
		if s.Type != domain.SessionMuscu {
			t.Errorf("session %d type = %q", i, s.Type)
		}
		if s.Intensity != domain.IntensityElevee {
			t.Errorf("session %d intensity = %q", i, s.Intensity)
		}
		if s.PlannedMin != 60 {
			t.Errorf("session %d plannedMin = %d, want 60", i, s.PlannedMin)
		}
		if s.ID == "" || !strings.HasPrefix(s.ID, "sess-") {
			t.Errorf("session %d id = %q", i, s.ID)
		}
	}
}

// A requested body part takes over the split even when the goal text carries
// no other signal.
func TestPlanProgrammeTargetShoulders(t *testing.T) {
	profile := NormalizeIntake(testIntake("cibler les épaules", "1 fois par semaine"))
	sessions := PlanProgramme(profile, Options{StartDate: testStart})

	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if !strings.Contains(sessions[0].Title, "Haut (poussée)") {
		t.Errorf("title = %q, want it to contain Haut (poussée)", sessions[0].Title)
	}
}

// Named days plus an evening mention means six sessions; the named days keep
// their labels and weekday dates, the rest fall back to letters.
func TestPlanProgrammeEveningAvailability(t *testing.T) {
	profile := NormalizeIntake(testIntake("me remettre en forme", "lundi, mardi matin sinon en soirées"))
	sessions := PlanProgramme(profile, Options{StartDate: testStart})

	if len(sessions) != 6 {
		t.Fatalf("got %d sessions, want 6", len(sessions))
	}
	if !strings.HasPrefix(sessions[0].Title, "Séance Lundi") {
		t.Errorf("session 0 title = %q", sessions[0].Title)
	}
	if !strings.HasPrefix(sessions[1].Title, "Séance Mardi") {
		t.Errorf("session 1 title = %q", sessions[1].Title)
	}
	if sessions[0].Date != "2024-06-10" || sessions[1].Date != "2024-06-11" {
		t.Errorf("named-day dates = %q, %q", sessions[0].Date, sessions[1].Date)
	}
	if !strings.HasPrefix(sessions[2].Title, "Séance C") {
		t.Errorf("session 2 title = %q", sessions[2].Title)
	}
}

func TestPlanProgrammeBackInjuryNames(t *testing.T) {
	intake := testIntake("prise de masse", "4 fois par semaine")
	intake.InjuriesText = "j'ai souvent mal au dos"
	profile := NormalizeIntake(intake)

	banned := regexp.MustCompile(`(?i)back squat|deadlift|row à la barre`)
	for _, s := range PlanProgramme(profile, Options{StartDate: testStart}) {
		for _, ex := range s.Exercises {
			if banned.MatchString(ex.Name) {
				t.Errorf("session %q: forbidden exercise %q", s.Title, ex.Name)
			}
		}
	}
}

func TestPlanProgrammeTimeBudget(t *testing.T) {
	for _, objective := range []string{"prise de masse", "perdre du gras", "plus de force", "me remettre en forme"} {
		profile := NormalizeIntake(testIntake(objective, "3 fois par semaine"))
		for _, s := range PlanProgramme(profile, Options{StartDate: testStart}) {
			got := EstimateSessionMinutes(profile.Goal, s.Exercises)
			if math.Abs(got-float64(s.PlannedMin)) > 6 {
				t.Errorf("%s / %q: estimated %.1f min for a %d min budget", objective, s.Title, got, s.PlannedMin)
			}
			if len(s.Exercises) == 0 {
				t.Errorf("%s / %q: empty session", objective, s.Title)
			}
		}
	}
}

func TestPlanProgrammeSessionCountBounds(t *testing.T) {
	for _, tt := range []struct {
		availability string
		want         int
	}{
		{"10 fois par semaine", 6},
		{"0 fois par semaine", 1},
		{"je ne sais pas trop", 3},
	} {
		profile := NormalizeIntake(testIntake("prise de masse", tt.availability))
		sessions := PlanProgramme(profile, Options{StartDate: testStart})
		if len(sessions) != tt.want {
			t.Errorf("%q: got %d sessions, want %d", tt.availability, len(sessions), tt.want)
		}
	}
}

func TestPlanProgrammeMinutesClamped(t *testing.T) {
	profile := NormalizeIntake(testIntake("prise de masse", "3 fois par semaine"))

	profile.TimePerSession = 200
	if got := PlanProgramme(profile, Options{StartDate: testStart})[0].PlannedMin; got != 80 {
		t.Errorf("200 min request clamped to %d, want 80", got)
	}
	profile.TimePerSession = 5
	if got := PlanProgramme(profile, Options{StartDate: testStart})[0].PlannedMin; got != 20 {
		t.Errorf("5 min request clamped to %d, want 20", got)
	}

	mob := NormalizeIntake(testIntake("plus de souplesse", "2 fois par semaine"))
	mob.TimePerSession = 70
	if got := PlanProgramme(mob, Options{StartDate: testStart})[0].PlannedMin; got != 40 {
		t.Errorf("mobility 70 min request clamped to %d, want 40", got)
	}
}

func TestPlanProgrammeSessionsOverride(t *testing.T) {
	profile := NormalizeIntake(testIntake("prise de masse", "je ne sais pas"))
	sessions := PlanProgramme(profile, Options{StartDate: testStart, SessionsOverride: 5})
	if len(sessions) != 5 {
		t.Errorf("got %d sessions, want 5", len(sessions))
	}
}

// Same profile, same options: identical plans apart from the random IDs.
func TestPlanProgrammeDeterministic(t *testing.T) {
	profile := NormalizeIntake(testIntake("perte de poids", "lundi, mercredi et vendredi"))
	a := PlanProgramme(profile, Options{StartDate: testStart})
	b := PlanProgramme(profile, Options{StartDate: testStart})

	if len(a) != len(b) {
		t.Fatalf("session counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		a[i].ID, b[i].ID = "", ""
	}
	for i := range a {
		if a[i].Title != b[i].Title || a[i].Date != b[i].Date || len(a[i].Exercises) != len(b[i].Exercises) {
			t.Fatalf("session %d differs: %+v vs %+v", i, a[i], b[i])
		}
		for j := range a[i].Exercises {
			if a[i].Exercises[j] != b[i].Exercises[j] {
				t.Fatalf("session %d exercise %d differs", i, j)
			}
		}
	}
}

// The estimate must track the stored duration at both ends of the budget
// range, including daily endurance plans whose cardio, gainage and mobility
// pools are small, and stripped-down profiles whose pools shrink further.
func TestPlanProgrammeBudgetAtExtremes(t *testing.T) {
	cases := []struct {
		name    string
		intake  domain.Intake
		minutes int
	}{
		{"endurance every day, full gym", testIntake("améliorer mon endurance", "tous les jours"), 80},
		{"hypertrophy, no equipment", domain.Intake{
			Email:        "test@example.com",
			Objective:    "prise de masse",
			Availability: "3 fois par semaine",
			EquipText:    "rien",
			LevelText:    "intermédiaire",
		}, 80},
		{"fatloss every day, no equipment, injured", domain.Intake{
			Email:        "test@example.com",
			Objective:    "perdre du gras",
			Availability: "tous les jours",
			EquipText:    "rien",
			LevelText:    "intermédiaire",
			InjuriesText: "mal au dos, genou fragile et cheville douloureuse",
		}, 80},
		{"hypertrophy, shortest budget", testIntake("prise de masse", "3 fois par semaine"), 20},
	}
	for _, tt := range cases {
		profile := NormalizeIntake(tt.intake)
		profile.TimePerSession = tt.minutes
		for _, s := range PlanProgramme(profile, Options{StartDate: testStart}) {
			if len(s.Exercises) == 0 {
				t.Errorf("%s / %q: empty session", tt.name, s.Title)
				continue
			}
			if s.PlannedMin < 1 {
				t.Errorf("%s / %q: plannedMin = %d", tt.name, s.Title, s.PlannedMin)
			}
			got := EstimateSessionMinutes(profile.Goal, s.Exercises)
			if math.Abs(got-float64(s.PlannedMin)) > 6 {
				t.Errorf("%s / %q: estimated %.1f min for a %d min budget", tt.name, s.Title, got, s.PlannedMin)
			}
		}
	}
}

// Session dates follow the start date's calendar day in its own time zone,
// not the UTC day. A Tuesday shortly after local midnight is still Monday in
// UTC; the plan must anchor on the following Monday, not the one just past.
func TestPlanProgrammeDatesRespectStartLocation(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*60*60)
	start := time.Date(2024, time.June, 11, 0, 30, 0, 0, loc)

	profile := NormalizeIntake(testIntake("prise de masse", "3 fois par semaine"))
	sessions := PlanProgramme(profile, Options{StartDate: start})
	if sessions[0].Date != "2024-06-17" {
		t.Errorf("first session date = %q, want 2024-06-17", sessions[0].Date)
	}
}

func TestPlanProgrammeDatesAnchorOnMonday(t *testing.T) {
	profile := NormalizeIntake(testIntake("prise de masse", "3 fois par semaine"))
	sessions := PlanProgramme(profile, Options{StartDate: testStart})

	first, err := time.Parse("2006-01-02", sessions[0].Date)
	if err != nil {
		t.Fatalf("bad date %q: %v", sessions[0].Date, err)
	}
	if first.Weekday() != time.Monday {
		t.Errorf("first session on %s, want Monday", first.Weekday())
	}
}

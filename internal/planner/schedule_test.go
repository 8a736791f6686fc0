package planner

import (
	"fmt"
	"testing"
)

func TestInferScheduleScenarios(t *testing.T) {
	cases := []struct {
		text     string
		fallback int
		want     int
		wantDays []string
	}{
		// Two named days plus an evening mention means "very available".
		{"lundi, mardi matin sinon en soirées", 0, 6, []string{"Lundi", "Mardi"}},
		{"3 fois par semaine", 0, 3, nil},
		{"4 jours", 0, 4, nil},
		{"2 séances par semaine", 0, 2, nil},
		{"tous les jours", 0, 6, nil},
		{"toute la semaine", 0, 6, nil},
		{"lundi et jeudi", 0, 2, []string{"Lundi", "Jeudi"}},
		{"mercredi", 0, 1, []string{"Mercredi"}},
		{"", 0, 3, nil},
		{"", 5, 5, nil},
		{"je suis flexible", 0, 3, nil},
		// Explicit counts clamp into [1,6].
		{"10 fois par semaine", 0, 6, nil},
		{"0 jours", 0, 1, nil},
	}
	for _, tc := range cases {
		got := InferSchedule(tc.text, tc.fallback)
		if got.Sessions != tc.want {
			t.Errorf("InferSchedule(%q, %d).Sessions = %d, want %d", tc.text, tc.fallback, got.Sessions, tc.want)
		}
		if len(got.Days) != len(tc.wantDays) {
			t.Errorf("InferSchedule(%q).Days = %v, want %v", tc.text, got.Days, tc.wantDays)
			continue
		}
		for i := range tc.wantDays {
			if got.Days[i] != tc.wantDays[i] {
				t.Errorf("InferSchedule(%q).Days = %v, want %v", tc.text, got.Days, tc.wantDays)
				break
			}
		}
	}
}

// A single named day plus an evening mention must NOT trigger the
// "very available" rule; it needs two or more days.
func TestInferScheduleEveningNeedsTwoDays(t *testing.T) {
	got := InferSchedule("lundi en soirée", 0)
	if got.Sessions != 1 {
		t.Errorf("Sessions = %d, want 1", got.Sessions)
	}
}

// The session count stays in [1,6] whatever the input text.
func TestInferScheduleBounds(t *testing.T) {
	inputs := []string{
		"", "lundi mardi mercredi jeudi vendredi samedi dimanche",
		"15 fois par semaine", "0x", "n'importe quoi", "tous les jours en soirée",
	}
	for i := 0; i < 9; i++ {
		inputs = append(inputs, fmt.Sprintf("%d jours", i))
	}
	for _, text := range inputs {
		got := InferSchedule(text, 0)
		if got.Sessions < 1 || got.Sessions > 6 {
			t.Errorf("InferSchedule(%q).Sessions = %d, out of [1,6]", text, got.Sessions)
		}
	}
}

// An explicit count wins over named days.
func TestInferScheduleCountBeatsDays(t *testing.T) {
	got := InferSchedule("2 fois par semaine, plutôt lundi, mercredi ou vendredi", 0)
	if got.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", got.Sessions)
	}
	if len(got.Days) != 3 {
		t.Errorf("Days = %v, want the three named days kept for labeling", got.Days)
	}
}

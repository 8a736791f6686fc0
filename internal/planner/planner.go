// internal/planner/planner.go
//
// The beton planner: a deterministic, rule-based workout-programme generator.
// It is a pure in-memory computation over static reference tables, safe to
// call concurrently; nothing here does I/O or mutates shared state.
package planner

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"betonfit/coach-app/internal/domain"
)

// Options tunes one planning call. The zero value is a valid default.
type Options struct {
	// Debug makes the planner trace its decisions through the standard
	// logger. Passed explicitly so callers (and tests) control it per call.
	Debug bool
	// SessionsOverride replaces the default of 3 weekly sessions when the
	// availability text carries no usable signal. 0 keeps the default.
	SessionsOverride int
	// StartDate anchors session dates; the zero value means "now". Sessions
	// are placed in the week starting the Monday after this date.
	StartDate time.Time
}

// minute bounds per planning call. The selector's fill model is calibrated
// for these ranges; requests outside are clamped.
const (
	minSessionMinutes = 20
	maxSessionMinutes = 80
	maxMobilityMin    = 40
)

var sessionLetters = []string{"A", "B", "C", "D", "E", "F"}

// spreadOffsets places n unlabeled sessions across the week (days from
// Monday), leaving recovery days where the count allows.
var spreadOffsets = map[int][]int{
	1: {0},
	2: {0, 3},
	3: {0, 2, 4},
	4: {0, 1, 3, 4},
	5: {0, 1, 2, 3, 4},
	6: {0, 1, 2, 3, 4, 5},
}

// intensityByGoal labels the overall session effort.
var intensityByGoal = map[domain.Goal]domain.Intensity{
	domain.GoalHypertrophy: domain.IntensityElevee,
	domain.GoalStrength:    domain.IntensityElevee,
	domain.GoalFatloss:     domain.IntensityElevee,
	domain.GoalHero:        domain.IntensityElevee,
	domain.GoalEndurance:   domain.IntensityModeree,
	domain.GoalMarathon:    domain.IntensityModeree,
	domain.GoalMaintenance: domain.IntensityModeree,
	domain.GoalGeneral:     domain.IntensityModeree,
	domain.GoalMobility:    domain.IntensityFaible,
}

// clampMinutes bounds the per-session budget to the range the fill model is
// calibrated for. Mobility pools are short, so mobility caps lower.
func clampMinutes(minutes int, goal domain.Goal) int {
	max := maxSessionMinutes
	if goal == domain.GoalMobility {
		max = maxMobilityMin
	}
	if minutes < minSessionMinutes {
		return minSessionMinutes
	}
	if minutes > max {
		return max
	}
	return minutes
}

// nextMonday returns the Monday on or after t's calendar date, in t's
// location.
func nextMonday(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// sessionID returns a fresh id with a short random suffix. IDs are the only
// non-deterministic part of a generated programme.
func sessionID() string {
	return "sess-" + uuid.NewString()[:8]
}

// PlanProgramme generates the weekly session list for a normalized profile.
// Identical (profile, options) inputs produce identical sessions apart from
// their random IDs.
func PlanProgramme(p domain.Profile, opts Options) []domain.Session {
	schedule := InferSchedule(p.AvailabilityText, opts.SessionsOverride)
	focuses := PlanFocus(schedule.Sessions, p.Goal, p.MuscleFocus)
	minutes := clampMinutes(p.TimePerSession, p.Goal)

	start := opts.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	monday := nextMonday(start)

	intensity, ok := intensityByGoal[p.Goal]
	if !ok {
		intensity = domain.IntensityModeree
	}

	if opts.Debug {
		log.Printf("planner: goal=%s focus=%v sessions=%d days=%v minutes=%d",
			p.Goal, p.MuscleFocus, schedule.Sessions, schedule.Days, minutes)
	}

	offsets := spreadOffsets[schedule.Sessions]
	sessions := make([]domain.Session, 0, schedule.Sessions)
	for i, tag := range focuses {
		var label string
		offset := offsets[i]
		if i < len(schedule.Days) {
			label = schedule.Days[i]
			if d := dayOffset(label); d >= 0 {
				offset = d
			}
		} else {
			label = sessionLetters[i%len(sessionLetters)]
		}

		exercises := SelectExercises(tag, p, minutes)
		for j, ex := range exercises {
			exercises[j] = AdjustExercise(ex, p)
		}

		// With few usable movements (injuries plus no equipment) a pool can
		// deliver less than the requested budget even after set scaling; the
		// stored duration then reflects what the session actually holds.
		planned := minutes
		est := EstimateSessionMinutes(p.Goal, exercises)
		if float64(planned)-est > underBudgetMin {
			planned = int(math.Round(est))
		}

		if opts.Debug {
			log.Printf("planner: session %d focus=%s exercises=%d estimate=%.1f min",
				i+1, tag, len(exercises), est)
		}

		sessions = append(sessions, domain.Session{
			ID:         sessionID(),
			Title:      fmt.Sprintf("Séance %s — %s", label, tag.Title()),
			Type:       tag.SessionType(p.Goal),
			Date:       monday.AddDate(0, 0, offset).Format("2006-01-02"),
			PlannedMin: planned,
			Intensity:  intensity,
			Exercises:  exercises,
		})
	}
	return sessions
}

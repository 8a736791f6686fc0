// internal/planner/prescribe.go
package planner

import "betonfit/coach-app/internal/domain"

// prescription is the default sets/reps/rest scheme for one goal x role cell.
type prescription struct {
	Sets    int
	Reps    string
	RestSec int
	Tempo   string
	RIR     string
}

// setSecondsByGoal estimates how long one working set takes, execution only.
// Tuned against logged gym sessions; rest time is added separately.
var setSecondsByGoal = map[domain.Goal]int{
	domain.GoalHypertrophy: 40,
	domain.GoalStrength:    30,
	domain.GoalFatloss:     35,
	domain.GoalEndurance:   45,
	domain.GoalMobility:    45,
	domain.GoalMaintenance: 35,
	domain.GoalHero:        40,
	domain.GoalMarathon:    45,
	domain.GoalGeneral:     35,
}

// prescriptions by goal then role. Goals missing a row reuse the general one.
var prescriptions = map[domain.Goal]map[Role]prescription{
	domain.GoalHypertrophy: {
		RoleMain:   {Sets: 4, Reps: "8-12", RestSec: 90, Tempo: "2011", RIR: "2"},
		RoleAssist: {Sets: 3, Reps: "10-12", RestSec: 75, Tempo: "2011", RIR: "2"},
		RoleIso:    {Sets: 3, Reps: "12-15", RestSec: 60, Tempo: "2012", RIR: "1"},
		RoleCore:   {Sets: 3, Reps: "45 s", RestSec: 45, RIR: "1"},
	},
	domain.GoalStrength: {
		RoleMain:   {Sets: 5, Reps: "3-5", RestSec: 180, Tempo: "20X1", RIR: "2"},
		RoleAssist: {Sets: 4, Reps: "6-8", RestSec: 120, Tempo: "2011", RIR: "2"},
		RoleIso:    {Sets: 3, Reps: "8-10", RestSec: 90, Tempo: "2011", RIR: "2"},
		RoleCore:   {Sets: 3, Reps: "30 s", RestSec: 60, RIR: "2"},
	},
	domain.GoalFatloss: {
		RoleMain:   {Sets: 4, Reps: "12-15", RestSec: 60, Tempo: "2010", RIR: "2"},
		RoleAssist: {Sets: 3, Reps: "12-15", RestSec: 45, Tempo: "2010", RIR: "1"},
		RoleIso:    {Sets: 3, Reps: "15-20", RestSec: 40, RIR: "1"},
		RoleCore:   {Sets: 3, Reps: "40 s", RestSec: 30, RIR: "1"},
	},
	domain.GoalEndurance: {
		RoleMain:   {Sets: 4, Reps: "15-20", RestSec: 45, RIR: "3"},
		RoleAssist: {Sets: 3, Reps: "15-20", RestSec: 40, RIR: "3"},
		RoleIso:    {Sets: 3, Reps: "20", RestSec: 30, RIR: "2"},
		RoleCore:   {Sets: 3, Reps: "45 s", RestSec: 30, RIR: "2"},
	},
	domain.GoalMobility: {
		RoleMain:   {Sets: 2, Reps: "8-10 lents", RestSec: 30},
		RoleAssist: {Sets: 2, Reps: "8-10 lents", RestSec: 25},
		RoleIso:    {Sets: 2, Reps: "45 s par côté", RestSec: 20},
		RoleCore:   {Sets: 2, Reps: "60 s", RestSec: 20},
	},
	domain.GoalGeneral: {
		RoleMain:   {Sets: 3, Reps: "10-12", RestSec: 75, Tempo: "2011", RIR: "2"},
		RoleAssist: {Sets: 3, Reps: "10-15", RestSec: 60, Tempo: "2011", RIR: "2"},
		RoleIso:    {Sets: 3, Reps: "12-15", RestSec: 45, RIR: "1"},
		RoleCore:   {Sets: 3, Reps: "40 s", RestSec: 40, RIR: "1"},
	},
}

// prescriptionAlias routes goals without their own table onto a close one.
var prescriptionAlias = map[domain.Goal]domain.Goal{
	domain.GoalMaintenance: domain.GoalGeneral,
	domain.GoalHero:        domain.GoalHypertrophy,
	domain.GoalMarathon:    domain.GoalEndurance,
}

// prescribe returns the default scheme for a goal, role and level. Beginners
// drop one set (never below two); everyone else takes the table as-is.
func prescribe(goal domain.Goal, role Role, level domain.Level) prescription {
	if alias, ok := prescriptionAlias[goal]; ok {
		goal = alias
	}
	rows, ok := prescriptions[goal]
	if !ok {
		rows = prescriptions[domain.GoalGeneral]
	}
	p := rows[role]
	if level == domain.LevelDebutant && p.Sets > 2 {
		p.Sets--
	}
	return p
}

// setSeconds returns the per-set execution time estimate for a goal.
func setSeconds(goal domain.Goal) int {
	if s, ok := setSecondsByGoal[goal]; ok {
		return s
	}
	return setSecondsByGoal[domain.GoalGeneral]
}

// EstimateMinutes converts a prescription into whole-ish session minutes:
// sets x (execution + rest), as a float so greedy accumulation does not lose
// the sub-minute remainders.
func EstimateMinutes(goal domain.Goal, sets, restSec int) float64 {
	if sets <= 0 {
		return 0
	}
	return float64(sets*(setSeconds(goal)+restSec)) / 60.0
}

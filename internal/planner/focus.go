// internal/planner/focus.go
package planner

import "betonfit/coach-app/internal/domain"

// FocusTag labels the body-region / training-emphasis of one session.
type FocusTag string

const (
	FocusFull        FocusTag = "full"
	FocusHautMix     FocusTag = "haut_mix"
	FocusHautPush    FocusTag = "haut_push"
	FocusHautPull    FocusTag = "haut_pull"
	FocusBasQuads    FocusTag = "bas_quads"
	FocusBasIschios  FocusTag = "bas_iscios_glutes"
	FocusBasMix      FocusTag = "bas_mix"
	FocusCoreGainage FocusTag = "core_gainage"
	FocusCardio      FocusTag = "cardio_metcon"
	FocusMobilite    FocusTag = "mobilite_flow"
)

// focusTitles are the display labels used in session titles.
var focusTitles = map[FocusTag]string{
	FocusFull:        "Full body",
	FocusHautMix:     "Haut du corps",
	FocusHautPush:    "Haut (poussée)",
	FocusHautPull:    "Haut (tirage)",
	FocusBasQuads:    "Bas (quadriceps)",
	FocusBasIschios:  "Bas (ischios & fessiers)",
	FocusBasMix:      "Bas du corps",
	FocusCoreGainage: "Gainage & core",
	FocusCardio:      "Cardio / metcon",
	FocusMobilite:    "Mobilité",
}

// Title returns the display label of a focus tag.
func (f FocusTag) Title() string {
	if t, ok := focusTitles[f]; ok {
		return t
	}
	return string(f)
}

// SessionType maps a focus tag to the session category shown to the user.
// Fat-loss metcon sessions render as HIIT, every other cardio focus as plain
// cardio.
func (f FocusTag) SessionType(goal domain.Goal) domain.SessionType {
	switch f {
	case FocusCardio:
		if goal == domain.GoalFatloss {
			return domain.SessionHIIT
		}
		return domain.SessionCardio
	case FocusMobilite:
		return domain.SessionMobilite
	default:
		return domain.SessionMuscu
	}
}

// musclePlans maps an explicitly requested body part to a focus sequence per
// weekly session count. The 3-entry rows serve any count of 3 or more
// (sequences repeat cyclically past their length).
var musclePlans = map[domain.MuscleFocus]map[int][]FocusTag{
	domain.FocusShoulders: {
		1: {FocusHautPush},
		2: {FocusHautPush, FocusHautPull},
		3: {FocusHautPush, FocusHautPull, FocusHautMix},
	},
	domain.FocusChest: {
		1: {FocusHautPush},
		2: {FocusHautPush, FocusHautMix},
		3: {FocusHautPush, FocusHautPull, FocusHautPush},
	},
	domain.FocusBack: {
		1: {FocusHautPull},
		2: {FocusHautPull, FocusHautMix},
		3: {FocusHautPull, FocusHautPush, FocusHautPull},
	},
	domain.FocusQuads: {
		1: {FocusBasQuads},
		2: {FocusBasQuads, FocusBasMix},
		3: {FocusBasQuads, FocusBasIschios, FocusBasQuads},
	},
	domain.FocusHamsGlutes: {
		1: {FocusBasIschios},
		2: {FocusBasIschios, FocusBasQuads},
		3: {FocusBasIschios, FocusBasQuads, FocusBasIschios},
	},
	domain.FocusArms: {
		1: {FocusHautMix},
		2: {FocusHautPush, FocusHautPull},
		3: {FocusHautPush, FocusHautPull, FocusHautMix},
	},
	domain.FocusCore: {
		1: {FocusCoreGainage},
		2: {FocusCoreGainage, FocusFull},
		3: {FocusCoreGainage, FocusFull, FocusCoreGainage},
	},
	domain.FocusCalves: {
		1: {FocusBasMix},
		2: {FocusBasQuads, FocusBasMix},
		3: {FocusBasQuads, FocusBasIschios, FocusBasMix},
	},
}

// goalPlans maps goal x session count to the default weekly split.
var goalPlans = map[domain.Goal]map[int][]FocusTag{
	domain.GoalHypertrophy: {
		1: {FocusFull},
		2: {FocusHautMix, FocusBasMix},
		3: {FocusHautPush, FocusBasQuads, FocusHautPull},
		4: {FocusBasQuads, FocusHautPush, FocusBasIschios, FocusHautPull},
		5: {FocusBasQuads, FocusHautPush, FocusBasIschios, FocusHautPull, FocusHautMix},
		6: {FocusBasQuads, FocusHautPush, FocusBasIschios, FocusHautPull, FocusBasMix, FocusHautMix},
	},
	domain.GoalStrength: {
		1: {FocusFull},
		2: {FocusBasMix, FocusHautMix},
		3: {FocusBasQuads, FocusHautPush, FocusBasIschios},
		4: {FocusBasQuads, FocusHautPush, FocusBasIschios, FocusHautPull},
		5: {FocusBasQuads, FocusHautPush, FocusBasIschios, FocusHautPull, FocusFull},
		6: {FocusBasQuads, FocusHautPush, FocusBasIschios, FocusHautPull, FocusFull, FocusCoreGainage},
	},
	domain.GoalFatloss: {
		1: {FocusFull},
		2: {FocusFull, FocusCardio},
		3: {FocusFull, FocusHautMix, FocusBasQuads},
		4: {FocusFull, FocusHautMix, FocusBasQuads, FocusCardio},
		5: {FocusFull, FocusHautMix, FocusBasQuads, FocusCardio, FocusBasMix},
		6: {FocusFull, FocusHautMix, FocusBasQuads, FocusCardio, FocusBasMix, FocusHautPull},
	},
	domain.GoalEndurance: {
		1: {FocusCardio},
		2: {FocusCardio, FocusFull},
		3: {FocusCardio, FocusFull, FocusCardio},
		4: {FocusCardio, FocusFull, FocusCardio, FocusCoreGainage},
		5: {FocusCardio, FocusFull, FocusCardio, FocusCoreGainage, FocusCardio},
		6: {FocusCardio, FocusFull, FocusCardio, FocusCoreGainage, FocusCardio, FocusMobilite},
	},
	domain.GoalMobility: {
		1: {FocusMobilite},
		2: {FocusMobilite, FocusCoreGainage},
		3: {FocusMobilite, FocusCoreGainage, FocusMobilite},
		4: {FocusMobilite, FocusCoreGainage, FocusMobilite, FocusFull},
	},
	domain.GoalMaintenance: {
		1: {FocusFull},
		2: {FocusFull, FocusCardio},
		3: {FocusFull, FocusHautMix, FocusBasMix},
		4: {FocusFull, FocusHautMix, FocusBasMix, FocusCardio},
	},
	domain.GoalHero: {
		1: {FocusFull},
		2: {FocusHautPush, FocusBasQuads},
		3: {FocusHautPush, FocusHautPull, FocusBasQuads},
		4: {FocusHautPush, FocusHautPull, FocusBasQuads, FocusCoreGainage},
		5: {FocusHautPush, FocusHautPull, FocusBasQuads, FocusHautMix, FocusCoreGainage},
		6: {FocusHautPush, FocusHautPull, FocusBasQuads, FocusHautMix, FocusBasIschios, FocusCoreGainage},
	},
	domain.GoalMarathon: {
		1: {FocusCardio},
		2: {FocusCardio, FocusBasMix},
		3: {FocusCardio, FocusBasMix, FocusCardio},
		4: {FocusCardio, FocusBasMix, FocusCardio, FocusCoreGainage},
		5: {FocusCardio, FocusBasMix, FocusCardio, FocusCoreGainage, FocusCardio},
		6: {FocusCardio, FocusBasMix, FocusCardio, FocusCoreGainage, FocusCardio, FocusMobilite},
	},
	domain.GoalGeneral: {
		1: {FocusFull},
		2: {FocusFull, FocusHautMix},
		3: {FocusFull, FocusHautMix, FocusBasMix},
		4: {FocusFull, FocusHautMix, FocusBasMix, FocusCardio},
	},
}

// PlanFocus returns the ordered focus sequence for n sessions. A requested
// muscle focus overrides the goal split. Sequences shorter than n repeat
// cyclically; the result is fully deterministic.
func PlanFocus(n int, goal domain.Goal, muscle domain.MuscleFocus) []FocusTag {
	n = clampSessions(n)

	var base []FocusTag
	if muscle != "" {
		if rows, ok := musclePlans[muscle]; ok {
			base = rows[pickRow(rows, n)]
		}
	}
	if base == nil {
		rows, ok := goalPlans[goal]
		if !ok {
			rows = goalPlans[domain.GoalGeneral]
		}
		base = rows[pickRow(rows, n)]
	}

	out := make([]FocusTag, n)
	for i := 0; i < n; i++ {
		out[i] = base[i%len(base)]
	}
	return out
}

// pickRow selects the table row for a session count: the exact row when it
// exists, otherwise the largest row below it.
func pickRow(rows map[int][]FocusTag, n int) int {
	if _, ok := rows[n]; ok {
		return n
	}
	best := 1
	for k := range rows {
		if k <= n && k > best {
			best = k
		}
	}
	return best
}

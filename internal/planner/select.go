// internal/planner/select.go
package planner

import (
	"sort"
	"strconv"
	"strings"

	"betonfit/coach-app/internal/domain"
)

const (
	warmupMinutes = 5.0
	// greedy fill stops once the estimate is this close to the budget
	fillToleranceMin = 4.0
	// a session further under budget than this gets one extra core finisher
	underBudgetMin = 6.0
	// early-out once this many heavy compounds are in and 70% of the budget
	// is filled
	minMainExercises = 3
	mainFillRatio    = 0.7
	// minimum leftover budget that still earns a closing core exercise
	closerBudgetMin = 5.0
	// ceiling for per-exercise sets when a small pool is stretched to fill a
	// long budget
	maxScaledSets = 6
)

// blockForRole maps a pool role to the session block it renders in.
func blockForRole(r Role) domain.Block {
	switch r {
	case RoleMain, RoleAssist:
		return domain.BlockPrincipal
	case RoleIso:
		return domain.BlockAccessoires
	default:
		return domain.BlockFin
	}
}

// matchesAny reports whether the folded exercise name contains any of the
// folded keywords.
func matchesAny(name string, keywords []string) bool {
	folded := Fold(name)
	for _, kw := range keywords {
		kw = Fold(kw)
		if kw != "" && strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// resolveItem turns a pool item into a prescribed exercise for this profile,
// substituting the bodyweight fallback when the item is contraindicated or
// its equipment is missing. ok is false when the item must be skipped
// entirely.
func resolveItem(item PoolItem, p domain.Profile) (domain.Exercise, bool) {
	name := item.Name
	equip := item.Equip
	var notes []string

	if item.Contra != nil && item.Contra(p.Injuries) {
		if item.Fallback == "" || fallbackContraindicated(item.Fallback, p.Injuries) {
			return domain.Exercise{}, false
		}
		name = item.Fallback
		equip = "poids du corps"
		notes = append(notes, "variante adaptée à ta blessure")
	} else if !hasAllEquip(p, item) {
		if item.Fallback == "" || fallbackContraindicated(item.Fallback, p.Injuries) {
			return domain.Exercise{}, false
		}
		name = item.Fallback
		equip = "poids du corps"
		notes = append(notes, "matériel indisponible, variante au poids du corps")
	}

	pres := prescribe(p.Goal, item.Role, p.Level)
	return domain.Exercise{
		Name:      name,
		Sets:      pres.Sets,
		Reps:      pres.Reps,
		Rest:      strconv.Itoa(pres.RestSec) + " s",
		Tempo:     pres.Tempo,
		RIR:       pres.RIR,
		Equipment: equip,
		Block:     blockForRole(item.Role),
		Notes:     strings.Join(notes, " ; "),
	}, true
}

// exerciseMinutes estimates the duration of a resolved exercise.
func exerciseMinutes(goal domain.Goal, ex domain.Exercise) float64 {
	rest := 0
	if s, ok := strings.CutSuffix(ex.Rest, " s"); ok {
		if n, err := strconv.Atoi(s); err == nil {
			rest = n
		}
	}
	return EstimateMinutes(goal, ex.Sets, rest)
}

// warmupExercise opens every session.
func warmupExercise() domain.Exercise {
	return domain.Exercise{
		Name:      "Échauffement général",
		Sets:      1,
		Reps:      "5 min",
		Equipment: "poids du corps",
		Block:     domain.BlockEchauffement,
		Notes:     "cardio léger + mobilité articulaire",
	}
}

// appendCoreCloser adds the first core-pool movement not already in the
// session, resolved against the profile, and marks it used. Returns the added
// minutes (0 when nothing could be added).
func appendCoreCloser(exs *[]domain.Exercise, used map[string]bool, p domain.Profile) float64 {
	for _, item := range corePool {
		ex, ok := resolveItem(item, p)
		if !ok || used[ex.Name] {
			continue
		}
		ex.Block = domain.BlockFin
		*exs = append(*exs, ex)
		used[ex.Name] = true
		return exerciseMinutes(p.Goal, ex)
	}
	return 0
}

// SelectExercises fills one session's time budget from the focus pool.
//
// The pool is filtered (contraindicated items without a fallback, disliked
// items), stably sorted (liked names first, then main < assist < iso < core),
// then appended greedily until the estimate lands within tolerance of the
// budget. Once three heavy compounds are in and 70% of the budget is filled
// the session closes early with a core movement when at least five minutes
// remain; a session still more than six minutes short gets one extra core
// finisher, then working sets are scaled up round-robin when the pool ran out
// before the budget. The returned list is never empty: every pool keeps an
// unconstrained bodyweight item.
func SelectExercises(tag FocusTag, p domain.Profile, plannedMin int) []domain.Exercise {
	pool := PoolFor(tag)

	candidates := make([]PoolItem, 0, len(pool))
	for _, item := range pool {
		if item.Contra != nil && item.Contra(p.Injuries) && item.Fallback == "" {
			continue
		}
		if matchesAny(item.Name, p.Dislikes) {
			continue
		}
		candidates = append(candidates, item)
	}

	liked := func(item PoolItem) bool { return matchesAny(item.Name, p.Likes) }
	sort.SliceStable(candidates, func(i, j int) bool {
		li, lj := liked(candidates[i]), liked(candidates[j])
		if li != lj {
			return li
		}
		return candidates[i].Role < candidates[j].Role
	})

	target := float64(plannedMin)
	exercises := []domain.Exercise{warmupExercise()}
	used := map[string]bool{exercises[0].Name: true}
	acc := warmupMinutes
	mains := 0
	closed := false

	for _, item := range candidates {
		if acc >= target-fillToleranceMin {
			break
		}
		if !closed && mains >= minMainExercises && acc >= mainFillRatio*target {
			closed = true
			if target-acc >= closerBudgetMin {
				acc += appendCoreCloser(&exercises, used, p)
			}
			// On long sessions 70% of the budget can still be more than
			// the allowed drift; keep filling until the gap closes.
			if target-acc <= underBudgetMin {
				break
			}
		}
		ex, ok := resolveItem(item, p)
		// Distinct items can resolve to the same fallback movement; keep
		// each movement once per session.
		if !ok || used[ex.Name] {
			continue
		}
		est := exerciseMinutes(p.Goal, ex)
		if acc+est > target+fillToleranceMin {
			continue
		}
		exercises = append(exercises, ex)
		used[ex.Name] = true
		acc += est
		if item.Role == RoleMain {
			mains++
		}
	}

	if target-acc > underBudgetMin {
		acc += appendCoreCloser(&exercises, used, p)
	}

	// Small pools (cardio, mobility, gainage) can run out well before a long
	// budget is met. Add working sets round-robin instead of repeating
	// movements, up to a per-exercise ceiling.
	for target-acc > fillToleranceMin {
		grew := false
		for i := range exercises {
			ex := &exercises[i]
			if ex.Block == domain.BlockEchauffement || ex.Sets <= 0 || ex.Sets >= maxScaledSets {
				continue
			}
			perSet := exerciseMinutes(p.Goal, *ex) / float64(ex.Sets)
			if acc+perSet > target+fillToleranceMin {
				continue
			}
			ex.Sets++
			acc += perSet
			grew = true
			if target-acc <= fillToleranceMin {
				break
			}
		}
		if !grew {
			break
		}
	}

	sort.SliceStable(exercises, func(i, j int) bool {
		return domain.BlockRank(exercises[i].Block) < domain.BlockRank(exercises[j].Block)
	})
	return exercises
}

// EstimateSessionMinutes sums the per-exercise estimates of a session, using
// the same model the selector filled it with.
func EstimateSessionMinutes(goal domain.Goal, exs []domain.Exercise) float64 {
	total := 0.0
	for _, ex := range exs {
		if ex.Block == domain.BlockEchauffement {
			total += warmupMinutes
			continue
		}
		total += exerciseMinutes(goal, ex)
	}
	return total
}

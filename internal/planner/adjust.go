// internal/planner/adjust.go
package planner

import (
	"regexp"

	"betonfit/coach-app/internal/domain"
)

// adjustRule swaps an exercise for a safer variant when the injury flag is
// active and the name matches. Rules run in declared order; the first match
// wins and later rules are not layered on top.
type adjustRule struct {
	active      func(domain.Injuries) bool
	pattern     *regexp.Regexp
	replacement string // "" = keep the exercise, only add the note
	note        string
}

var adjustRules = []adjustRule{
	{
		active:      func(i domain.Injuries) bool { return i.Back },
		pattern:     regexp.MustCompile(`(?i)back squat|squat barre|soulevé de terre|deadlift|row(ing)? (à la )?barre`),
		replacement: "Split squat haltères",
		note:        "charge axiale réduite pour ménager le dos",
	},
	{
		active:      func(i domain.Injuries) bool { return i.Back },
		pattern:     regexp.MustCompile(`(?i)good morning|hyperextension`),
		replacement: "Pont fessier au sol",
		note:        "extension lombaire évitée",
	},
	{
		active:      func(i domain.Injuries) bool { return i.Shoulder },
		pattern:     regexp.MustCompile(`(?i)développé militaire|overhead|développé épaules`),
		replacement: "Développé haltères prise neutre",
		note:        "prise neutre, amplitude confortable pour l'épaule",
	},
	{
		active:      func(i domain.Injuries) bool { return i.Shoulder },
		pattern:     regexp.MustCompile(`(?i)dips`),
		replacement: "Pompes surélevées",
		note:        "moins de contrainte sur l'avant d'épaule",
	},
	{
		active:      func(i domain.Injuries) bool { return i.Knee },
		pattern:     regexp.MustCompile(`(?i)sauté|jump|burpee`),
		replacement: "Step-up contrôlé",
		note:        "impact supprimé pour le genou",
	},
	{
		active:      func(i domain.Injuries) bool { return i.Knee },
		pattern:     regexp.MustCompile(`(?i)fente`),
		note:        "amplitude réduite, le genou ne dépasse pas la pointe de pied",
	},
	{
		active:      func(i domain.Injuries) bool { return i.Wrist },
		pattern:     regexp.MustCompile(`(?i)pompes|push-?up|planche`),
		note:        "sur les poings ou avec poignées pour garder le poignet neutre",
	},
	{
		active:      func(i domain.Injuries) bool { return i.Ankle },
		pattern:     regexp.MustCompile(`(?i)sauté|corde à sauter|course`),
		replacement: "Vélo ou marche inclinée",
		note:        "appuis sans impact le temps que la cheville récupère",
	},
	{
		active:      func(i domain.Injuries) bool { return i.Elbow },
		pattern:     regexp.MustCompile(`(?i)extension triceps|curl`),
		note:        "charge légère et tempo lent, stop si douleur au coude",
	},
	{
		active:      func(i domain.Injuries) bool { return i.Hip },
		pattern:     regexp.MustCompile(`(?i)squat profond|soulevé`),
		note:        "amplitude limitée au seuil de confort de la hanche",
	},
}

// AdjustExercise post-processes one selected exercise against the profile's
// injury flags. It returns the exercise unchanged when no rule matches.
func AdjustExercise(ex domain.Exercise, p domain.Profile) domain.Exercise {
	for _, rule := range adjustRules {
		if !rule.active(p.Injuries) || !rule.pattern.MatchString(ex.Name) {
			continue
		}
		if rule.replacement != "" {
			ex.Name = rule.replacement
			ex.Load = ""
		}
		if ex.Notes != "" {
			ex.Notes += " ; "
		}
		ex.Notes += rule.note
		return ex
	}
	return ex
}

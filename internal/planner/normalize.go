// internal/planner/normalize.go
package planner

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"betonfit/coach-app/internal/domain"
)

// foldTransformer strips combining marks after NFD decomposition, which
// removes the French diacritics the intake answers are full of.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics ("Soirées" -> "soirees"). Every
// matcher in this package runs on folded text; raw answers are never matched
// directly.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// transform only fails on invalid UTF-8; fall back to the raw text
		// rather than dropping the answer.
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// goalRule maps any of its keywords (substring match on folded text) to a
// goal. Rules are evaluated in order; the first hit wins.
type goalRule struct {
	keywords []string
	goal     domain.Goal
}

var goalRules = []goalRule{
	{[]string{"marathon", "semi-marathon", "10 km", "course longue"}, domain.GoalMarathon},
	{[]string{"heros", "super-heros", "superheros", "physique de film"}, domain.GoalHero},
	{[]string{"perte", "gras", "maigrir", "mincir", "seche", "perdre du poids", "affiner"}, domain.GoalFatloss},
	{[]string{"force", "plus fort", "powerlifting", "1rm"}, domain.GoalStrength},
	{[]string{"masse", "muscle", "hypertroph", "volume", "prise de poids"}, domain.GoalHypertrophy},
	{[]string{"endurance", "cardio", "souffle", "condition physique"}, domain.GoalEndurance},
	{[]string{"mobilite", "souplesse", "etirement", "assouplir"}, domain.GoalMobility},
	{[]string{"entretien", "maintien", "rester en forme", "garder la forme"}, domain.GoalMaintenance},
}

// muscleRule maps objective keywords to an explicitly requested body part.
type muscleRule struct {
	keywords []string
	focus    domain.MuscleFocus
}

var muscleRules = []muscleRule{
	{[]string{"epaule", "deltoide"}, domain.FocusShoulders},
	{[]string{"pec", "poitrine", "torse"}, domain.FocusChest},
	{[]string{"dos", "dorsaux", "trapeze"}, domain.FocusBack},
	{[]string{"quadri", "cuisse"}, domain.FocusQuads},
	{[]string{"fessier", "ischio", "glute"}, domain.FocusHamsGlutes},
	{[]string{"bras", "biceps", "triceps"}, domain.FocusArms},
	{[]string{"abdo", "gainage", "ventre plat", "sangle abdominale"}, domain.FocusCore},
	{[]string{"mollet"}, domain.FocusCalves},
}

// injury flag regexes, applied to the folded injury answer. Several phrasings
// may set the same flag; re-matching is idempotent.
var injuryPatterns = map[string]*regexp.Regexp{
	"back":     regexp.MustCompile(`dos|lombaire|hernie|sciatique|lumbago`),
	"shoulder": regexp.MustCompile(`epaule|coiffe`),
	"knee":     regexp.MustCompile(`genou|menisque|rotule|ligament crois`),
	"wrist":    regexp.MustCompile(`poignet|canal carpien`),
	"hip":      regexp.MustCompile(`hanche`),
	"ankle":    regexp.MustCompile(`cheville|entorse`),
	"elbow":    regexp.MustCompile(`coude|epicondylite|tennis elbow`),
}

// equipment item regexes, applied to the folded equipment answer.
var equipPatterns = map[string]*regexp.Regexp{
	"bands":     regexp.MustCompile(`elastique|bande`),
	"kb":        regexp.MustCompile(`kettlebell`),
	"trx":       regexp.MustCompile(`trx|sangle`),
	"bench":     regexp.MustCompile(`banc`),
	"bar":       regexp.MustCompile(`barre`),
	"db":        regexp.MustCompile(`halter|dumbbell`),
	"bike":      regexp.MustCompile(`velo`),
	"rower":     regexp.MustCompile(`rameur`),
	"treadmill": regexp.MustCompile(`tapis`),
}

var (
	fullGymPattern  = regexp.MustCompile(`salle|gym|basic.?fit|fitness park|tout equipe`)
	advancedPattern = regexp.MustCompile(`avance|confirme|expert|competiteur`)
	beginnerPattern = regexp.MustCompile(`debut|jamais|novice|premiere fois`)
)

// defaultMinutesByGoal is the per-session time budget used when the user
// gave no explicit duration.
var defaultMinutesByGoal = map[domain.Goal]int{
	domain.GoalHypertrophy: 60,
	domain.GoalStrength:    60,
	domain.GoalFatloss:     45,
	domain.GoalEndurance:   50,
	domain.GoalMobility:    30,
	domain.GoalMaintenance: 45,
	domain.GoalHero:        60,
	domain.GoalMarathon:    50,
	domain.GoalGeneral:     45,
}

// ParseGoal maps a free-text objective onto the goal enum. Unknown text maps
// to GoalGeneral.
func ParseGoal(objective string) domain.Goal {
	folded := Fold(objective)
	for _, rule := range goalRules {
		for _, kw := range rule.keywords {
			if strings.Contains(folded, kw) {
				return rule.goal
			}
		}
	}
	return domain.GoalGeneral
}

// ParseMuscleFocus extracts an explicitly named target body part from the
// objective text, or "" when the objective does not name one.
func ParseMuscleFocus(objective string) domain.MuscleFocus {
	folded := Fold(objective)
	for _, rule := range muscleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(folded, kw) {
				return rule.focus
			}
		}
	}
	return ""
}

// ParseInjuries derives contraindication flags from the injury answer.
func ParseInjuries(text string) domain.Injuries {
	folded := Fold(text)
	var inj domain.Injuries
	if folded == "" {
		return inj
	}
	inj.Back = injuryPatterns["back"].MatchString(folded)
	inj.Shoulder = injuryPatterns["shoulder"].MatchString(folded)
	inj.Knee = injuryPatterns["knee"].MatchString(folded)
	inj.Wrist = injuryPatterns["wrist"].MatchString(folded)
	inj.Hip = injuryPatterns["hip"].MatchString(folded)
	inj.Ankle = injuryPatterns["ankle"].MatchString(folded)
	inj.Elbow = injuryPatterns["elbow"].MatchString(folded)
	return inj
}

// ParseEquipment derives the equipment item flags and overall level from the
// equipment answer. A gym mention wins over individual items; an empty or
// "nothing" answer means bodyweight only.
func ParseEquipment(text string) (domain.Equipment, domain.EquipLevel) {
	folded := Fold(text)
	var eq domain.Equipment
	if fullGymPattern.MatchString(folded) {
		return eq, domain.EquipFull
	}
	eq.Bands = equipPatterns["bands"].MatchString(folded)
	eq.Kettlebell = equipPatterns["kb"].MatchString(folded)
	eq.TRX = equipPatterns["trx"].MatchString(folded)
	eq.Bench = equipPatterns["bench"].MatchString(folded)
	eq.Bar = equipPatterns["bar"].MatchString(folded)
	eq.Dumbbells = equipPatterns["db"].MatchString(folded)
	eq.Bike = equipPatterns["bike"].MatchString(folded)
	eq.Rower = equipPatterns["rower"].MatchString(folded)
	eq.Treadmill = equipPatterns["treadmill"].MatchString(folded)

	// "rien", "aucun matériel" and friends produce no item hits, so any
	// answer without a recognized item counts as bodyweight only.
	if eq == (domain.Equipment{}) {
		return eq, domain.EquipNone
	}
	return eq, domain.EquipLimited
}

// ParseLevel maps the experience answer onto the level enum, defaulting to
// intermediaire.
func ParseLevel(text string) domain.Level {
	folded := Fold(text)
	switch {
	case beginnerPattern.MatchString(folded):
		return domain.LevelDebutant
	case advancedPattern.MatchString(folded):
		return domain.LevelAvance
	default:
		return domain.LevelIntermediaire
	}
}

// NormalizeIntake builds the canonical Profile from raw intake answers. It is
// a pure function: same answers, same profile.
func NormalizeIntake(in domain.Intake) domain.Profile {
	goal := ParseGoal(in.Objective)
	equipment, level := ParseEquipment(in.EquipText)

	minutes := in.TimePerDay
	if minutes <= 0 {
		minutes = defaultMinutesByGoal[goal]
	}

	return domain.Profile{
		Goal:             goal,
		EquipLevel:       level,
		Level:            ParseLevel(in.LevelText),
		Injuries:         ParseInjuries(in.InjuriesText),
		Equipment:        equipment,
		AvailabilityText: in.Availability,
		TimePerSession:   minutes,
		MuscleFocus:      ParseMuscleFocus(in.Objective),
		Likes:            in.Likes,
		Dislikes:         in.Dislikes,
	}
}

// internal/domain/profile.go
package domain

// Goal is the canonical training objective inferred from the user's free-text
// answers. Unknown or empty objectives map to GoalGeneral.
type Goal string

const (
	GoalHypertrophy Goal = "hypertrophy"
	GoalStrength    Goal = "strength"
	GoalFatloss     Goal = "fatloss"
	GoalEndurance   Goal = "endurance"
	GoalMobility    Goal = "mobility"
	GoalMaintenance Goal = "maintenance"
	GoalHero        Goal = "hero"
	GoalMarathon    Goal = "marathon"
	GoalGeneral     Goal = "general"
)

// EquipLevel summarizes how much equipment the user can reach.
type EquipLevel string

const (
	EquipNone    EquipLevel = "none"    // bodyweight only
	EquipLimited EquipLevel = "limited" // some home equipment
	EquipFull    EquipLevel = "full"    // full gym, machines included
)

// Level is the self-reported experience level. Labels are kept in French
// because they are rendered as-is in the coaching UI.
type Level string

const (
	LevelDebutant      Level = "debutant"
	LevelIntermediaire Level = "intermediaire"
	LevelAvance        Level = "avance"
)

// MuscleFocus is an explicitly requested target body part, parsed from the
// objective text (e.g. "cibler les épaules"). When set it overrides the
// default focus-by-goal split tables.
type MuscleFocus string

const (
	FocusShoulders  MuscleFocus = "shoulders"
	FocusChest      MuscleFocus = "chest"
	FocusBack       MuscleFocus = "back"
	FocusQuads      MuscleFocus = "quads"
	FocusHamsGlutes MuscleFocus = "hams_glutes"
	FocusArms       MuscleFocus = "arms"
	FocusCore       MuscleFocus = "core"
	FocusCalves     MuscleFocus = "calves"
)

// Injuries holds the contraindication flags derived from the injury answer.
// Several source phrasings may set the same flag; setting a flag twice is a
// no-op.
type Injuries struct {
	Back     bool `bson:"back" json:"back"`
	Shoulder bool `bson:"shoulder" json:"shoulder"`
	Knee     bool `bson:"knee" json:"knee"`
	Wrist    bool `bson:"wrist" json:"wrist"`
	Hip      bool `bson:"hip" json:"hip"`
	Ankle    bool `bson:"ankle" json:"ankle"`
	Elbow    bool `bson:"elbow" json:"elbow"`
}

// Any reports whether at least one injury flag is set.
func (i Injuries) Any() bool {
	return i.Back || i.Shoulder || i.Knee || i.Wrist || i.Hip || i.Ankle || i.Elbow
}

// Equipment holds the individual equipment item flags derived from the
// equipment answer. EquipFull implies access to everything regardless of
// individual flags.
type Equipment struct {
	Bands      bool `bson:"bands" json:"bands"`
	Kettlebell bool `bson:"kb" json:"kb"`
	TRX        bool `bson:"trx" json:"trx"`
	Bench      bool `bson:"bench" json:"bench"`
	Bar        bool `bson:"bar" json:"bar"`
	Dumbbells  bool `bson:"db" json:"db"`
	Bike       bool `bson:"bike" json:"bike"`
	Rower      bool `bson:"rower" json:"rower"`
	Treadmill  bool `bson:"treadmill" json:"treadmill"`
}

// Profile is the canonical, fully normalized planning input. It is built once
// per planning request from the raw intake answers and never mutated while a
// plan is being generated.
type Profile struct {
	Goal             Goal        `bson:"goal" json:"goal"`
	EquipLevel       EquipLevel  `bson:"equipLevel" json:"equipLevel"`
	Level            Level       `bson:"level" json:"level"`
	Injuries         Injuries    `bson:"injuries" json:"injuries"`
	Equipment        Equipment   `bson:"equipment" json:"equipment"`
	AvailabilityText string      `bson:"availabilityText" json:"availabilityText"`
	TimePerSession   int         `bson:"timePerSession" json:"timePerSession"` // minutes
	MuscleFocus      MuscleFocus `bson:"muscleFocus,omitempty" json:"muscleFocus,omitempty"`
	Likes            []string    `bson:"likes,omitempty" json:"likes,omitempty"`
	Dislikes         []string    `bson:"dislikes,omitempty" json:"dislikes,omitempty"`
}

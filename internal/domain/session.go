// internal/domain/session.go
package domain

// SessionType categorizes a planned session. Values are French because they
// are displayed verbatim.
type SessionType string

const (
	SessionMuscu    SessionType = "muscu"
	SessionCardio   SessionType = "cardio"
	SessionHIIT     SessionType = "hiit"
	SessionMobilite SessionType = "mobilité"
)

// Intensity is the overall perceived-effort label of a session.
type Intensity string

const (
	IntensityFaible  Intensity = "faible"
	IntensityModeree Intensity = "modérée"
	IntensityElevee  Intensity = "élevée"
)

// Block orders exercises inside a session. Blocks always render in the order
// echauffement, principal, accessoires, fin.
type Block string

const (
	BlockEchauffement Block = "echauffement"
	BlockPrincipal    Block = "principal"
	BlockAccessoires  Block = "accessoires"
	BlockFin          Block = "fin"
)

// BlockRank returns the render precedence of a block (lower first).
func BlockRank(b Block) int {
	switch b {
	case BlockEchauffement:
		return 0
	case BlockPrincipal:
		return 1
	case BlockAccessoires:
		return 2
	case BlockFin:
		return 3
	}
	return 4
}

// Exercise is one prescribed movement inside a session. Reps is a string so
// ranges ("8-12") and timed holds ("45 s") share one field.
type Exercise struct {
	Name      string `bson:"name" json:"name"`
	Sets      int    `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps      string `bson:"reps,omitempty" json:"reps,omitempty"`
	Rest      string `bson:"rest,omitempty" json:"rest,omitempty"`
	Tempo     string `bson:"tempo,omitempty" json:"tempo,omitempty"`
	RIR       string `bson:"rir,omitempty" json:"rir,omitempty"`
	Load      string `bson:"load,omitempty" json:"load,omitempty"`
	Equipment string `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Block     Block  `bson:"block" json:"block"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Session is one planned workout. Sessions are created fresh on every
// planning call and never mutated afterwards.
type Session struct {
	ID         string      `bson:"id" json:"id"`
	Title      string      `bson:"title" json:"title"`
	Type       SessionType `bson:"type" json:"type"`
	Date       string      `bson:"date" json:"date"` // YYYY-MM-DD
	PlannedMin int         `bson:"plannedMin" json:"plannedMin"`
	Intensity  Intensity   `bson:"intensity" json:"intensity"`
	Exercises  []Exercise  `bson:"exercises" json:"exercises"`
}

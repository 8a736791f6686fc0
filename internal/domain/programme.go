// internal/domain/programme.go
package domain

import "time"

// Engine identifies which generator produced a programme.
type Engine string

const (
	EngineBeton Engine = "beton" // deterministic rule-based planner
	EngineLLM   Engine = "llm"   // external model, same output shape
)

// Programme is a stored generation result: the profile snapshot the planner
// saw and the sessions it produced. Programmes are append-only; regenerating
// creates a new document rather than updating an old one.
type Programme struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Engine    Engine    `bson:"engine" json:"engine"`
	Profile   Profile   `bson:"profile" json:"profile"`
	Sessions  []Session `bson:"sessions" json:"sessions"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

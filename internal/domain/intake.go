// internal/domain/intake.go
package domain

import "time"

// Intake stores the raw free-text questionnaire answers for one user, keyed
// by email. Only the answers are persisted; the normalized Profile is rebuilt
// from them on every planning request.
//
// Historically the same answers arrived under several field names depending
// on the intake form version (objectif/objective, dispo/availability). The
// API layer maps every variant onto these canonical fields once, at the
// boundary; nothing below this type ever sees the legacy names.
type Intake struct {
	Email        string    `bson:"_id" json:"email"`
	Objective    string    `bson:"objective" json:"objective"`
	Availability string    `bson:"availability" json:"availability"`
	InjuriesText string    `bson:"injuriesText" json:"injuriesText"`
	EquipText    string    `bson:"equipText" json:"equipText"`
	LevelText    string    `bson:"levelText" json:"levelText"`
	TimePerDay   int       `bson:"timePerDay,omitempty" json:"timePerDay,omitempty"` // minutes, 0 = derive from goal
	Likes        []string  `bson:"likes,omitempty" json:"likes,omitempty"`
	Dislikes     []string  `bson:"dislikes,omitempty" json:"dislikes,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

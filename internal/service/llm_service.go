package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"betonfit/coach-app/internal/domain"
	"betonfit/coach-app/internal/llm"
)

// llmSystemPrompt pins the output contract; everything else is left to the
// model.
const llmSystemPrompt = `Tu es un coach sportif. Réponds UNIQUEMENT avec un objet JSON de la forme
{"sessions":[{"title":"...","type":"muscu|cardio|hiit|mobilité","plannedMin":60,"intensity":"faible|modérée|élevée","exercises":[{"name":"...","sets":3,"reps":"8-12","rest":"90 s","block":"principal"}]}]}
sans texte autour.`

// llmGenerator implements SessionGenerator by delegating the whole planning
// problem to an external model and sanitizing whatever comes back into the
// canonical session shape.
type llmGenerator struct {
	client *llm.Client
}

// NewLLMGenerator wraps a chat client as a SessionGenerator. Returns nil when
// the client is disabled, so wiring stays a one-liner in main.
func NewLLMGenerator(client *llm.Client) SessionGenerator {
	if client == nil || !client.Enabled() {
		return nil
	}
	return &llmGenerator{client: client}
}

type llmSessionsPayload struct {
	Sessions []domain.Session `json:"sessions"`
}

// Generate asks the model for a session list matching the profile.
func (g *llmGenerator) Generate(ctx context.Context, profile domain.Profile, opts GenerateOptions) ([]domain.Session, error) {
	user := buildProfilePrompt(profile, opts.SessionsOverride)

	reply, err := g.client.Chat(ctx, llmSystemPrompt, user)
	if err != nil {
		return nil, fmt.Errorf("llm generation: %w", err)
	}

	var payload llmSessionsPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &payload); err != nil {
		return nil, fmt.Errorf("llm generation: invalid session JSON: %w", err)
	}

	return sanitizeSessions(payload.Sessions, profile), nil
}

// buildProfilePrompt serializes the normalized profile compactly. The model
// only ever sees the canonical profile, never raw answers.
func buildProfilePrompt(p domain.Profile, sessionsOverride int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Objectif: %s\n", p.Goal)
	fmt.Fprintf(&b, "Niveau: %s\n", p.Level)
	fmt.Fprintf(&b, "Matériel: %s\n", p.EquipLevel)
	fmt.Fprintf(&b, "Minutes par séance: %d\n", p.TimePerSession)
	if p.MuscleFocus != "" {
		fmt.Fprintf(&b, "Focus musculaire: %s\n", p.MuscleFocus)
	}
	if p.Injuries.Any() {
		fmt.Fprintf(&b, "Blessures (à contourner): %+v\n", p.Injuries)
	}
	if p.AvailabilityText != "" {
		fmt.Fprintf(&b, "Disponibilités: %s\n", p.AvailabilityText)
	}
	if sessionsOverride > 0 {
		fmt.Fprintf(&b, "Nombre de séances: %d\n", sessionsOverride)
	}
	return b.String()
}

// sanitizeSessions makes model output safe to store next to planner output:
// clamp the count, backfill IDs, dates, budgets and blocks.
func sanitizeSessions(sessions []domain.Session, p domain.Profile) []domain.Session {
	if len(sessions) > 6 {
		sessions = sessions[:6]
	}
	monday := time.Now()
	for monday.Weekday() != time.Monday {
		monday = monday.AddDate(0, 0, 1)
	}
	out := make([]domain.Session, 0, len(sessions))
	for i, s := range sessions {
		if len(s.Exercises) == 0 {
			continue
		}
		if s.ID == "" {
			s.ID = "sess-" + uuid.NewString()[:8]
		}
		if s.Date == "" {
			s.Date = monday.AddDate(0, 0, i).Format("2006-01-02")
		}
		if s.PlannedMin <= 0 {
			s.PlannedMin = p.TimePerSession
		}
		if s.Type == "" {
			s.Type = domain.SessionMuscu
		}
		if s.Intensity == "" {
			s.Intensity = domain.IntensityModeree
		}
		for j, ex := range s.Exercises {
			if ex.Block == "" {
				s.Exercises[j].Block = domain.BlockPrincipal
			}
		}
		out = append(out, s)
	}
	return out
}

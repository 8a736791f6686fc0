package service

import (
	"context"
	"errors"

	"betonfit/coach-app/internal/domain"
	"betonfit/coach-app/internal/planner"
	"betonfit/coach-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrIntakeNotFound    = errors.New("intake not found")
	ErrProgrammeNotFound = errors.New("programme not found")
	ErrUnknownEngine     = errors.New("unknown generation engine")
	ErrEngineUnavailable = errors.New("generation engine unavailable")
)

// SessionGenerator produces a session list for a profile. The rule-based
// planner and the model-backed generator both fit behind it; callers treat
// their output as interchangeable.
type SessionGenerator interface {
	Generate(ctx context.Context, profile domain.Profile, opts GenerateOptions) ([]domain.Session, error)
}

// GenerateOptions carries per-request planning knobs.
type GenerateOptions struct {
	Engine           domain.Engine
	SessionsOverride int
	Debug            bool
}

// PlannerService orchestrates a generation request: load stored answers,
// normalize, plan, persist.
type PlannerService interface {
	GenerateForEmail(ctx context.Context, email string, opts GenerateOptions) (*domain.Programme, error)
	GetLatest(ctx context.Context, email string) (*domain.Programme, error)
	GetByID(ctx context.Context, id string) (*domain.Programme, error)
	SaveIntake(ctx context.Context, intake *domain.Intake) error
	GetIntake(ctx context.Context, email string) (*domain.Intake, error)
}

type plannerService struct {
	intakeRepo      repository.IntakeRepository
	programmeRepo   repository.ProgrammeRepository
	llm             SessionGenerator // nil when the llm engine is disabled
	defaultSessions int
}

// NewPlannerService creates a new planner service. llm may be nil; the llm
// engine then reports ErrEngineUnavailable.
func NewPlannerService(
	intakeRepo repository.IntakeRepository,
	programmeRepo repository.ProgrammeRepository,
	llm SessionGenerator,
	defaultSessions int,
) PlannerService {
	return &plannerService{
		intakeRepo:      intakeRepo,
		programmeRepo:   programmeRepo,
		llm:             llm,
		defaultSessions: defaultSessions,
	}
}

// GenerateForEmail loads the stored intake answers, normalizes them into the
// canonical profile, generates sessions with the requested engine and
// persists the result. Regeneration always appends a new programme.
func (s *plannerService) GenerateForEmail(ctx context.Context, email string, opts GenerateOptions) (*domain.Programme, error) {
	intake, err := s.intakeRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrIntakeNotFound
		}
		return nil, err
	}

	profile := planner.NormalizeIntake(*intake)

	engine := opts.Engine
	if engine == "" {
		engine = domain.EngineBeton
	}

	var sessions []domain.Session
	switch engine {
	case domain.EngineBeton:
		fallback := opts.SessionsOverride
		if fallback <= 0 {
			fallback = s.defaultSessions
		}
		sessions = planner.PlanProgramme(profile, planner.Options{
			Debug:            opts.Debug,
			SessionsOverride: fallback,
		})
	case domain.EngineLLM:
		if s.llm == nil {
			return nil, ErrEngineUnavailable
		}
		sessions, err = s.llm.Generate(ctx, profile, opts)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownEngine
	}

	programme := &domain.Programme{
		Email:    email,
		Engine:   engine,
		Profile:  profile,
		Sessions: sessions,
	}
	if _, err := s.programmeRepo.Create(ctx, programme); err != nil {
		return nil, err
	}
	return programme, nil
}

// GetLatest returns the most recent stored programme for an email.
func (s *plannerService) GetLatest(ctx context.Context, email string) (*domain.Programme, error) {
	programme, err := s.programmeRepo.GetLatestByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgrammeNotFound
		}
		return nil, err
	}
	return programme, nil
}

// GetByID returns one stored programme.
func (s *plannerService) GetByID(ctx context.Context, id string) (*domain.Programme, error) {
	programme, err := s.programmeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgrammeNotFound
		}
		return nil, err
	}
	return programme, nil
}

// SaveIntake upserts the questionnaire answers for an email.
func (s *plannerService) SaveIntake(ctx context.Context, intake *domain.Intake) error {
	if intake.Email == "" {
		return errors.New("intake email is required")
	}
	return s.intakeRepo.Upsert(ctx, intake)
}

// GetIntake fetches the stored answers for an email.
func (s *plannerService) GetIntake(ctx context.Context, email string) (*domain.Intake, error) {
	intake, err := s.intakeRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrIntakeNotFound
		}
		return nil, err
	}
	return intake, nil
}

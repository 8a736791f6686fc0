package repository

import (
	"context"

	"betonfit/coach-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// IntakeRepository persists the raw questionnaire answers, keyed by email.
type IntakeRepository interface {
	Upsert(ctx context.Context, intake *domain.Intake) error
	GetByEmail(ctx context.Context, email string) (*domain.Intake, error)
}

// ProgrammeRepository persists generated programmes. Programmes are
// append-only; regeneration inserts a new document rather than updating the
// previous one.
type ProgrammeRepository interface {
	Create(ctx context.Context, programme *domain.Programme) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Programme, error)
	GetLatestByEmail(ctx context.Context, email string) (*domain.Programme, error)
}

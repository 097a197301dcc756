package repository

import (
	"context"

	"github.com/google/uuid"

	"gymtrack/core/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate record")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository defines the interface for interacting with the exercise
// catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	GetByID(ctx context.Context, id uint) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	// NamesToIDs returns the full catalog as a name -> id mapping. Used as
	// the authoritative vocabulary snapshot during plan generation.
	NamesToIDs(ctx context.Context) (map[string]uint, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// ExerciseResultRepository defines the interface for interacting with logged
// exercise results. All lookups are scoped by the owning user.
type ExerciseResultRepository interface {
	Create(ctx context.Context, result *domain.ExerciseResult) error
	GetByID(ctx context.Context, id uuid.UUID, userID string) (*domain.ExerciseResult, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ExerciseResult, error)
	Update(ctx context.Context, id uuid.UUID, userID string, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}

// UserProfileRepository defines the interface for interacting with user
// profiles. The user id is the primary key, so there is at most one row per
// user.
type UserProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
	GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	Update(ctx context.Context, userID string, fields map[string]any) error
	Delete(ctx context.Context, userID string) error
}

// WeekPlanRepository defines the interface for interacting with generated
// week plans and their nested workout structure.
type WeekPlanRepository interface {
	// CreateGraph persists a week plan together with all of its descendants
	// in a single transaction. Either the whole graph is written or nothing.
	CreateGraph(ctx context.Context, plan *domain.WeekPlan) error
	GetByID(ctx context.Context, id uuid.UUID, userID string) (*domain.WeekPlan, error)
	ListByUser(ctx context.Context, userID string) ([]domain.WeekPlan, error)
	LatestByUser(ctx context.Context, userID string) (*domain.WeekPlan, error)
	// MarkComplete sets complete=true on the plan and cascades the flag to
	// every child workout and exercise plan in one transaction.
	MarkComplete(ctx context.Context, id uuid.UUID, userID string) (*domain.WeekPlan, error)
}

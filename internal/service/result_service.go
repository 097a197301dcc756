package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gymtrack/core/internal/domain"
	"gymtrack/core/internal/repository"
)

// --- Error Definitions ---
var (
	ErrResultNotFound  = errors.New("exercise result not found")
	ErrNothingToUpdate = errors.New("at least one field must be provided")
	ErrUnknownExercise = errors.New("referenced exercise does not exist")
)

// ExerciseResultInput carries the caller-supplied fields for creating a
// logged result.
type ExerciseResultInput struct {
	ExerciseID uint
	Sets       int
	Reps       int
	Weight     float64
	RPE        *int
	Date       *time.Time
}

// ExerciseResultUpdate carries a partial update; nil fields are untouched.
type ExerciseResultUpdate struct {
	ExerciseID *uint
	Sets       *int
	Reps       *int
	Weight     *float64
	RPE        *int
	Date       *time.Time
}

// ExerciseResultService manages logged exercise results, always scoped by
// the owning user.
type ExerciseResultService interface {
	Create(ctx context.Context, userID string, input ExerciseResultInput) (*domain.ExerciseResult, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (*domain.ExerciseResult, error)
	List(ctx context.Context, userID string) ([]domain.ExerciseResult, error)
	Update(ctx context.Context, userID string, id uuid.UUID, update ExerciseResultUpdate) (*domain.ExerciseResult, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// resultService implements the ExerciseResultService interface.
type resultService struct {
	resultRepo   repository.ExerciseResultRepository
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseResultService creates a new instance of resultService.
func NewExerciseResultService(resultRepo repository.ExerciseResultRepository, exerciseRepo repository.ExerciseRepository) ExerciseResultService {
	return &resultService{
		resultRepo:   resultRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (s *resultService) Create(ctx context.Context, userID string, input ExerciseResultInput) (*domain.ExerciseResult, error) {
	if _, err := s.exerciseRepo.GetByID(ctx, input.ExerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownExercise
		}
		return nil, err
	}

	result := &domain.ExerciseResult{
		UserID:     userID,
		ExerciseID: input.ExerciseID,
		Sets:       input.Sets,
		Reps:       input.Reps,
		Weight:     input.Weight,
		RPE:        input.RPE,
	}
	if input.Date != nil {
		result.Date = *input.Date
	}
	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, err
	}
	return s.resultRepo.GetByID(ctx, result.ID, userID)
}

func (s *resultService) Get(ctx context.Context, userID string, id uuid.UUID) (*domain.ExerciseResult, error) {
	result, err := s.resultRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return result, nil
}

func (s *resultService) List(ctx context.Context, userID string) ([]domain.ExerciseResult, error) {
	results, err := s.resultRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []domain.ExerciseResult{}
	}
	return results, nil
}

func (s *resultService) Update(ctx context.Context, userID string, id uuid.UUID, update ExerciseResultUpdate) (*domain.ExerciseResult, error) {
	fields := map[string]any{}
	if update.ExerciseID != nil {
		if _, err := s.exerciseRepo.GetByID(ctx, *update.ExerciseID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUnknownExercise
			}
			return nil, err
		}
		fields["exercise_id"] = *update.ExerciseID
	}
	if update.Sets != nil {
		fields["sets"] = *update.Sets
	}
	if update.Reps != nil {
		fields["reps"] = *update.Reps
	}
	if update.Weight != nil {
		fields["weight"] = *update.Weight
	}
	if update.RPE != nil {
		fields["rpe"] = *update.RPE
	}
	if update.Date != nil {
		fields["date"] = *update.Date
	}
	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	if err := s.resultRepo.Update(ctx, id, userID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return s.resultRepo.GetByID(ctx, id, userID)
}

func (s *resultService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.resultRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrResultNotFound
		}
		return err
	}
	return nil
}

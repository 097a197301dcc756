package gormdb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymtrack/core/internal/domain"
	"gymtrack/core/internal/repository"
)

// gormExerciseResultRepository implements repository.ExerciseResultRepository.
type gormExerciseResultRepository struct {
	db *gorm.DB
}

// NewExerciseResultRepository creates an ExerciseResult repository backed by gorm.
func NewExerciseResultRepository(db *gorm.DB) repository.ExerciseResultRepository {
	return &gormExerciseResultRepository{db: db}
}

func (r *gormExerciseResultRepository) Create(ctx context.Context, result *domain.ExerciseResult) error {
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	if result.Date.IsZero() {
		result.Date = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *gormExerciseResultRepository) GetByID(ctx context.Context, id uuid.UUID, userID string) (*domain.ExerciseResult, error) {
	var result domain.ExerciseResult
	err := r.db.WithContext(ctx).
		Preload("Exercise").
		Where("id = ? AND user_id = ?", id, userID).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *gormExerciseResultRepository) ListByUser(ctx context.Context, userID string) ([]domain.ExerciseResult, error) {
	var results []domain.ExerciseResult
	err := r.db.WithContext(ctx).
		Preload("Exercise").
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *gormExerciseResultRepository) Update(ctx context.Context, id uuid.UUID, userID string, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(&domain.ExerciseResult{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gormExerciseResultRepository) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.ExerciseResult{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

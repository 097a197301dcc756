package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gymtrack/core/internal/domain"
	"gymtrack/core/internal/repository"
)

// gormExerciseRepository implements repository.ExerciseRepository.
type gormExerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates an Exercise repository backed by gorm.
func NewExerciseRepository(db *gorm.DB) repository.ExerciseRepository {
	return &gormExerciseRepository{db: db}
}

func (r *gormExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	if err := r.db.WithContext(ctx).Create(exercise).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *gormExerciseRepository) GetByID(ctx context.Context, id uint) (*domain.Exercise, error) {
	var exercise domain.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *gormExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	if err := r.db.WithContext(ctx).Order("id asc").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *gormExerciseRepository) NamesToIDs(ctx context.Context) (map[string]uint, error) {
	var exercises []domain.Exercise
	if err := r.db.WithContext(ctx).Select("id", "name").Find(&exercises).Error; err != nil {
		return nil, err
	}
	names := make(map[string]uint, len(exercises))
	for _, exercise := range exercises {
		names[exercise.Name] = exercise.ID
	}
	return names, nil
}

func (r *gormExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	result := r.db.WithContext(ctx).Model(&domain.Exercise{}).
		Where("id = ?", exercise.ID).
		Updates(map[string]any{"name": exercise.Name, "video_link": exercise.VideoLink})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicate
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gormExerciseRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Exercise{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gormExerciseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Exercise{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

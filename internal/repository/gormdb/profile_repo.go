package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gymtrack/core/internal/domain"
	"gymtrack/core/internal/repository"
)

// gormUserProfileRepository implements repository.UserProfileRepository.
type gormUserProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a UserProfile repository backed by gorm.
func NewUserProfileRepository(db *gorm.DB) repository.UserProfileRepository {
	return &gormUserProfileRepository{db: db}
}

func (r *gormUserProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *gormUserProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *gormUserProfileRepository) Update(ctx context.Context, userID string, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(&domain.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gormUserProfileRepository) Delete(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.UserProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

package service

import (
	"context"
	"errors"

	"gymtrack/core/internal/domain"
	"gymtrack/core/internal/repository"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound = errors.New("user profile not found")
	ErrProfileExists   = errors.New("a profile already exists for this user")
)

// UserProfileInput carries the caller-supplied fields for creating a profile.
type UserProfileInput struct {
	Age               int
	Gender            string
	NumberOfDays      int
	WorkoutDuration   int
	FitnessLevel      string
	Goal              string
	InjuryDescription *string
}

// UserProfileUpdate carries a partial update; nil fields are untouched.
type UserProfileUpdate struct {
	Age               *int
	Gender            *string
	NumberOfDays      *int
	WorkoutDuration   *int
	FitnessLevel      *string
	Goal              *string
	InjuryDescription *string
}

// UserProfileService manages the one-per-user profile that plan generation
// depends on.
type UserProfileService interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Create(ctx context.Context, userID string, input UserProfileInput) (*domain.UserProfile, error)
	Update(ctx context.Context, userID string, update UserProfileUpdate) (*domain.UserProfile, error)
	Delete(ctx context.Context, userID string) error
}

// profileService implements the UserProfileService interface.
type profileService struct {
	profileRepo repository.UserProfileRepository
}

// NewUserProfileService creates a new instance of profileService.
func NewUserProfileService(profileRepo repository.UserProfileRepository) UserProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Create(ctx context.Context, userID string, input UserProfileInput) (*domain.UserProfile, error) {
	profile := &domain.UserProfile{
		UserID:            userID,
		Age:               input.Age,
		Gender:            input.Gender,
		NumberOfDays:      input.NumberOfDays,
		WorkoutDuration:   input.WorkoutDuration,
		FitnessLevel:      input.FitnessLevel,
		Goal:              input.Goal,
		InjuryDescription: input.InjuryDescription,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrProfileExists
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, userID string, update UserProfileUpdate) (*domain.UserProfile, error) {
	fields := map[string]any{}
	if update.Age != nil {
		fields["age"] = *update.Age
	}
	if update.Gender != nil {
		fields["gender"] = *update.Gender
	}
	if update.NumberOfDays != nil {
		fields["number_of_days"] = *update.NumberOfDays
	}
	if update.WorkoutDuration != nil {
		fields["workout_duration"] = *update.WorkoutDuration
	}
	if update.FitnessLevel != nil {
		fields["fitness_level"] = *update.FitnessLevel
	}
	if update.Goal != nil {
		fields["goal"] = *update.Goal
	}
	if update.InjuryDescription != nil {
		fields["injury_description"] = *update.InjuryDescription
	}
	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	if err := s.profileRepo.Update(ctx, userID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *profileService) Delete(ctx context.Context, userID string) error {
	if err := s.profileRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	return nil
}

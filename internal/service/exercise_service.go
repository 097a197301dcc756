package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gymtrack/core/internal/domain"
	"gymtrack/core/internal/repository"
	"gymtrack/core/internal/storage"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrExerciseExists   = errors.New("an exercise with that name already exists")
	ErrAdminRequired    = errors.New("admin status required")
	ErrValidationFailed = errors.New("exercise validation failed")
	ErrNoVideo          = errors.New("exercise has no video")
)

// ExerciseService manages the exercise catalog. Reads are open to any
// authenticated user; mutations require admin status.
type ExerciseService interface {
	List(ctx context.Context) ([]domain.Exercise, error)
	Create(ctx context.Context, actor domain.Identity, name string, videoLink *string) (*domain.Exercise, error)
	Update(ctx context.Context, actor domain.Identity, id uint, name string, videoLink *string) (*domain.Exercise, error)
	Delete(ctx context.Context, actor domain.Identity, id uint) error

	// VideoUploadURL returns a presigned PUT URL for a demonstration video
	// and records the object key as the exercise's video link.
	VideoUploadURL(ctx context.Context, actor domain.Identity, id uint, contentType string) (string, error)
	// VideoURL resolves the stored video link: managed objects become
	// presigned GET URLs, external links are returned as-is.
	VideoURL(ctx context.Context, id uint) (string, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
	}
}

func (s *exerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

func (s *exerciseService) Create(ctx context.Context, actor domain.Identity, name string, videoLink *string) (*domain.Exercise, error) {
	if !actor.Admin {
		return nil, ErrAdminRequired
	}
	if name == "" {
		return nil, ErrValidationFailed
	}

	exercise := &domain.Exercise{Name: name, VideoLink: videoLink}
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrExerciseExists
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) Update(ctx context.Context, actor domain.Identity, id uint, name string, videoLink *string) (*domain.Exercise, error) {
	if !actor.Admin {
		return nil, ErrAdminRequired
	}
	if name == "" {
		return nil, ErrValidationFailed
	}

	exercise := &domain.Exercise{ID: id, Name: name, VideoLink: videoLink}
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrExerciseNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrExerciseExists
		}
		return nil, err
	}
	return s.exerciseRepo.GetByID(ctx, id)
}

func (s *exerciseService) Delete(ctx context.Context, actor domain.Identity, id uint) error {
	if !actor.Admin {
		return ErrAdminRequired
	}
	if err := s.exerciseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}

func (s *exerciseService) VideoUploadURL(ctx context.Context, actor domain.Identity, id uint, contentType string) (string, error) {
	if !actor.Admin {
		return "", ErrAdminRequired
	}
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrExerciseNotFound
		}
		return "", err
	}

	objectKey := fmt.Sprintf("exercise-videos/%d", exercise.ID)
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, 15*time.Minute)
	if err != nil {
		return "", err
	}

	exercise.VideoLink = &objectKey
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return "", err
	}
	return url, nil
}

func (s *exerciseService) VideoURL(ctx context.Context, id uint) (string, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrExerciseNotFound
		}
		return "", err
	}
	if exercise.VideoLink == nil || *exercise.VideoLink == "" {
		return "", ErrNoVideo
	}
	link := *exercise.VideoLink
	// External links (seeded catalog entries) are stored as full URLs;
	// managed uploads are stored as object keys.
	if strings.Contains(link, "://") {
		return link, nil
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, link, 15*time.Minute)
}

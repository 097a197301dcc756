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

// gormWeekPlanRepository implements repository.WeekPlanRepository.
type gormWeekPlanRepository struct {
	db *gorm.DB
}

// NewWeekPlanRepository creates a WeekPlan repository backed by gorm.
func NewWeekPlanRepository(db *gorm.DB) repository.WeekPlanRepository {
	return &gormWeekPlanRepository{db: db}
}

// CreateGraph persists the full week plan graph in one transaction. IDs,
// positions and the owning user id must already be stamped on every node;
// stampGraph takes care of that.
func (r *gormWeekPlanRepository) CreateGraph(ctx context.Context, plan *domain.WeekPlan) error {
	stampGraph(plan)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(plan).Error
	})
}

// stampGraph assigns ids, insertion positions and the owner to every node of
// the graph so insertion order equals display order.
func stampGraph(plan *domain.WeekPlan) {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	for i := range plan.Workouts {
		workout := &plan.Workouts[i]
		if workout.ID == uuid.Nil {
			workout.ID = uuid.New()
		}
		workout.WeekPlanID = plan.ID
		workout.UserID = plan.UserID
		workout.Position = i
		for j := range workout.WarmUps {
			warmUp := &workout.WarmUps[j]
			if warmUp.ID == uuid.Nil {
				warmUp.ID = uuid.New()
			}
			warmUp.WorkoutPlanID = workout.ID
			warmUp.UserID = plan.UserID
			warmUp.Position = j
		}
		for j := range workout.Exercises {
			exercise := &workout.Exercises[j]
			if exercise.ID == uuid.Nil {
				exercise.ID = uuid.New()
			}
			exercise.WorkoutPlanID = workout.ID
			exercise.UserID = plan.UserID
			exercise.Position = j
		}
	}
}

// withGraph preloads the nested workout structure in display order.
func withGraph(db *gorm.DB) *gorm.DB {
	ordered := func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }
	return db.
		Preload("Workouts", ordered).
		Preload("Workouts.WarmUps", ordered).
		Preload("Workouts.Exercises", ordered)
}

func (r *gormWeekPlanRepository) GetByID(ctx context.Context, id uuid.UUID, userID string) (*domain.WeekPlan, error) {
	var plan domain.WeekPlan
	err := withGraph(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *gormWeekPlanRepository) ListByUser(ctx context.Context, userID string) ([]domain.WeekPlan, error) {
	var plans []domain.WeekPlan
	err := withGraph(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *gormWeekPlanRepository) LatestByUser(ctx context.Context, userID string) (*domain.WeekPlan, error) {
	var plan domain.WeekPlan
	err := withGraph(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// MarkComplete flips the plan and every descendant to complete=true in one
// transaction and returns the refreshed graph.
func (r *gormWeekPlanRepository) MarkComplete(ctx context.Context, id uuid.UUID, userID string) (*domain.WeekPlan, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		result := tx.Model(&domain.WeekPlan{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(map[string]any{"complete": true, "updated_at": now})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}

		if err := tx.Model(&domain.WorkoutPlan{}).
			Where("week_plan_id = ?", id).
			Updates(map[string]any{"complete": true, "updated_at": now}).Error; err != nil {
			return err
		}
		return tx.Model(&domain.ExercisePlan{}).
			Where("workout_plan_id IN (?)",
				tx.Model(&domain.WorkoutPlan{}).Select("id").Where("week_plan_id = ?", id)).
			Updates(map[string]any{"complete": true, "updated_at": now}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id, userID)
}

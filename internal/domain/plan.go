package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeekPlan is the root of one generation result. It is created atomically
// with all of its descendants and is never partially persisted.
type WeekPlan struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   string    `gorm:"size:100;not null;index" json:"user_id"`
	Summary  string    `gorm:"size:2000;not null" json:"summary"`
	Complete bool      `gorm:"not null;default:false" json:"complete"`

	Workouts []WorkoutPlan `gorm:"foreignKey:WeekPlanID" json:"workouts"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkoutPlan is one day of a WeekPlan. Position preserves the order the
// generator emitted the days in.
type WorkoutPlan struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WeekPlanID uuid.UUID `gorm:"type:uuid;not null;index" json:"week_plan_id"`
	UserID     string    `gorm:"size:100;not null" json:"user_id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Position   int       `gorm:"not null" json:"-"`
	Complete   bool      `gorm:"not null;default:false" json:"complete"`

	WarmUps   []WarmUpPlan   `gorm:"foreignKey:WorkoutPlanID" json:"warm_ups"`
	Exercises []ExercisePlan `gorm:"foreignKey:WorkoutPlanID" json:"exercises"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarmUpPlan is a free-text warm-up entry; there is no structured sets/reps
// breakdown for warm-ups.
type WarmUpPlan struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkoutPlanID uuid.UUID `gorm:"type:uuid;not null;index" json:"workout_plan_id"`
	UserID        string    `gorm:"size:100;not null" json:"user_id"`
	Description   string    `gorm:"size:1000;not null" json:"description"`
	Position      int       `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExercisePlan is one prescribed exercise within a workout day. ExerciseName
// is the generator's wording; ExerciseID is resolved against the catalog at
// persistence time. ExerciseResultID links the logged result once the user
// performs it.
type ExercisePlan struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkoutPlanID uuid.UUID `gorm:"type:uuid;not null;index" json:"workout_plan_id"`
	UserID        string    `gorm:"size:100;not null" json:"user_id"`

	ExerciseName string    `gorm:"size:100;not null" json:"exercise"`
	ExerciseID   uint      `gorm:"not null" json:"exercise_id"`
	Exercise     *Exercise `gorm:"foreignKey:ExerciseID" json:"-"`

	Sets     int      `gorm:"not null" json:"sets"`
	Reps     int      `gorm:"not null" json:"reps"`
	Weight   *float64 `json:"weight,omitempty"`
	RPE      *int     `json:"rpe,omitempty"`
	Position int      `gorm:"not null" json:"-"`
	Complete bool     `gorm:"not null;default:false" json:"complete"`

	ExerciseResultID *uuid.UUID `gorm:"type:uuid" json:"exercise_result_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is a catalog entry. Plan generation may only reference exercises
// present in this catalog, matched by name.
type Exercise struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	VideoLink *string   `gorm:"size:200" json:"video_link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExerciseResult is one logged performance of a catalog exercise by a user.
type ExerciseResult struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"size:100;not null;index" json:"user_id"`
	ExerciseID uint      `gorm:"not null" json:"exercise_id"`
	Exercise   *Exercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`

	Sets   int     `gorm:"not null" json:"sets"`
	Reps   int     `gorm:"not null" json:"reps"`
	Weight float64 `gorm:"not null" json:"weight"`
	RPE    *int    `json:"rpe,omitempty"`

	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

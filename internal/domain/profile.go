package domain

import "time"

// UserProfile stores the attributes the plan generator needs to describe a
// user to the model. One row per user; the user id comes from the identity
// provider, so it doubles as the primary key.
type UserProfile struct {
	UserID            string  `gorm:"size:100;primaryKey" json:"user_id"`
	Age               int     `gorm:"not null" json:"age"`
	Gender            string  `gorm:"size:50;not null" json:"gender"`
	NumberOfDays      int     `gorm:"not null" json:"number_of_days"`
	WorkoutDuration   int     `gorm:"not null" json:"workout_duration"`
	FitnessLevel      string  `gorm:"size:50;not null" json:"fitness_level"`
	Goal              string  `gorm:"size:1000;not null" json:"goal"`
	InjuryDescription *string `gorm:"size:1000" json:"injury_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
